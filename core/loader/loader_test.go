package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.err
}

func TestManager(t *testing.T) {
	t.Run("LoadsEnabled", func(t *testing.T) {
		on := &fakeFeature{name: "on", enabled: true}
		off := &fakeFeature{name: "off"}

		mgr := NewManager(nil)
		mgr.Register(on)
		mgr.Register(off)

		assert.NoError(t, mgr.LoadAll(fiber.New()))
		assert.True(t, on.loaded)
		assert.False(t, off.loaded)
		assert.Len(t, mgr.Features(), 2)
	})

	t.Run("StopsOnError", func(t *testing.T) {
		broken := &fakeFeature{name: "broken", enabled: true, err: errors.New("boom")}
		next := &fakeFeature{name: "next", enabled: true}

		mgr := NewManager(nil)
		mgr.Register(broken)
		mgr.Register(next)

		err := mgr.LoadAll(fiber.New())
		assert.EqualError(t, err, "failed to load feature broken: boom")
		assert.False(t, next.loaded)
	})
}
