package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the request and response header carrying the RayID.
const Header = "X-Ray-ID"

// LocalsKey is the fiber.Ctx locals key the RayID is stored under.
const LocalsKey = "ray_id"

// New returns a middleware that assigns a RayID to every request.
// An incoming X-Ray-ID header is reused so callers can correlate across services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
