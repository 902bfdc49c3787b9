package objects

import (
	"fmt"
	"net/url"
	"path"
	"time"

	"bucket-manager/core/logger"
	"bucket-manager/core/server"
	"bucket-manager/core/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DeleteRequest lists keys to delete from the bucket.
type DeleteRequest struct {
	Keys []string `json:"keys" validate:"required,min=1,dive,required"`
	// AllVersions permanently removes every version and delete marker of each key.
	AllVersions bool `json:"all_versions"`
}

// CopyRequest names the source of a server-side copy into the path bucket.
type CopyRequest struct {
	SourceBucket string `json:"source_bucket" validate:"required"`
	SourceKey    string `json:"source_key" validate:"required"`
	// Key is the destination key. Defaults to SourceKey.
	Key string `json:"key"`
}

// FolderRequest names the folder marker to create.
type FolderRequest struct {
	Path string `json:"path" validate:"required"`
}

// Handler handles HTTP requests for objects.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes registers the object routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/buckets/:bucket")
	group.Get("/objects", h.HandleList)
	group.Get("/objects/*", h.HandleDownload)
	group.Put("/objects/*", h.HandleUpload)
	group.Post("/delete", h.HandleDelete)
	group.Post("/copy", h.HandleCopy)
	group.Post("/folders", h.HandleCreateFolder)
	group.Get("/presign/*", h.HandlePresign)
}

// bind parses and validates a JSON body; failures are reported as invalid arguments.
func (h *Handler) bind(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrInvalidArgument, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrInvalidArgument, err)
	}
	return nil
}

// objectKey returns the decoded wildcard segment of the route.
// Fiber leaves route parameters percent-encoded, so "my%20file.txt" becomes "my file.txt".
func objectKey(c *fiber.Ctx) (string, error) {
	key, err := url.PathUnescape(c.Params("*"))
	if err != nil {
		return "", fmt.Errorf("%w: malformed object key: %v", storage.ErrInvalidArgument, err)
	}
	return key, nil
}

// HandleList lists object keys or browsable URLs.
// @Summary List Objects
// @Description Lists every key in the bucket. With urls=true each key is returned as {endpoint}/{bucket}/{key}.
// @Tags objects
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param urls query boolean false "Return URLs instead of keys"
// @Param endpoint query string false "URL prefix, defaults to the configured endpoint"
// @Success 200 {object} map[string][]string "Keys or URLs"
// @Failure 404 {object} map[string]string "No Such Bucket"
// @Router /buckets/{bucket}/objects [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	bucket := c.Params("bucket")
	if c.QueryBool("urls", false) {
		urls, err := h.service.URLs(c.Context(), bucket, c.Query("endpoint"))
		if err != nil {
			return server.Error(c, err)
		}
		return c.JSON(fiber.Map{"urls": urls})
	}

	keys, err := h.service.Keys(c.Context(), bucket)
	if err != nil {
		return server.Error(c, err)
	}
	return c.JSON(fiber.Map{"keys": keys})
}

// HandleDownload streams an object.
// @Summary Download Object
// @Tags objects
// @Produce octet-stream
// @Param bucket path string true "Bucket name"
// @Param key path string true "Object key"
// @Success 200 {file} file "Object content"
// @Failure 404 {object} map[string]string "No Such Key"
// @Router /buckets/{bucket}/objects/{key} [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	key, err := objectKey(c)
	if err != nil {
		return server.Error(c, err)
	}
	bucket := c.Params("bucket")
	rc, err := h.service.Get(c.Context(), bucket, key)
	if err != nil {
		return server.Error(c, err)
	}
	c.Attachment(path.Base(key))
	// fasthttp closes the stream once the body has been written.
	return c.SendStream(rc)
}

// HandleUpload stores the multipart "file" field under the key.
// @Summary Upload Object
// @Description Uploads the multipart file field. An empty key uses the uploaded file name.
// @Tags objects
// @Accept mpfd
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param key path string true "Object key"
// @Param file formData file true "Content"
// @Success 200 {object} storage.UploadResult "Upload Result"
// @Failure 400 {object} map[string]string "Invalid Argument"
// @Router /buckets/{bucket}/objects/{key} [put]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	bucket := c.Params("bucket")

	key, err := objectKey(c)
	if err != nil {
		return server.Error(c, err)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return server.Error(c, fmt.Errorf("%w: file field is required", storage.ErrInvalidArgument))
	}
	if key == "" {
		key = fh.Filename
	}

	f, err := fh.Open()
	if err != nil {
		l.Error("Failed to open uploaded file", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	defer f.Close()

	result, err := h.service.Put(c.Context(), bucket, key, f, fh.Size, fh.Header.Get("Content-Type"))
	if err != nil {
		return server.Error(c, err)
	}
	return c.JSON(result)
}

// HandleDelete deletes keys, optionally with all their versions.
// @Summary Delete Objects
// @Tags objects
// @Accept json
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param request body DeleteRequest true "Keys"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 400 {object} map[string]string "Invalid Argument"
// @Router /buckets/{bucket}/delete [post]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	bucket := c.Params("bucket")
	var req DeleteRequest
	if err := h.bind(c, &req); err != nil {
		return server.Error(c, err)
	}

	if req.AllVersions {
		deleted, err := h.service.Purge(c.Context(), bucket, req.Keys)
		if err != nil {
			return server.Error(c, err)
		}
		if deleted == nil {
			deleted = []storage.ObjectVersion{}
		}
		return c.JSON(fiber.Map{"deleted": deleted})
	}

	if err := h.service.Delete(c.Context(), bucket, req.Keys); err != nil {
		return server.Error(c, err)
	}
	return c.JSON(fiber.Map{"deleted": req.Keys})
}

// HandleCopy copies an object into the path bucket.
// @Summary Copy Object
// @Tags objects
// @Accept json
// @Produce json
// @Param bucket path string true "Destination bucket"
// @Param request body CopyRequest true "Source"
// @Success 200 {object} map[string]string "Copied"
// @Failure 400 {object} map[string]string "Invalid Argument"
// @Router /buckets/{bucket}/copy [post]
func (h *Handler) HandleCopy(c *fiber.Ctx) error {
	bucket := c.Params("bucket")
	var req CopyRequest
	if err := h.bind(c, &req); err != nil {
		return server.Error(c, err)
	}
	if req.Key == "" {
		req.Key = req.SourceKey
	}

	if err := h.service.Copy(c.Context(), req.SourceBucket, bucket, req.SourceKey, req.Key); err != nil {
		return server.Error(c, err)
	}
	return c.JSON(fiber.Map{"status": "copied", "bucket": bucket, "key": req.Key})
}

// HandleCreateFolder creates a folder marker object.
// @Summary Create Folder
// @Tags objects
// @Accept json
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param request body FolderRequest true "Folder"
// @Success 201 {object} map[string]string "Created"
// @Failure 400 {object} map[string]string "Invalid Argument"
// @Router /buckets/{bucket}/folders [post]
func (h *Handler) HandleCreateFolder(c *fiber.Ctx) error {
	var req FolderRequest
	if err := h.bind(c, &req); err != nil {
		return server.Error(c, err)
	}
	key, err := h.service.CreateFolder(c.Context(), c.Params("bucket"), req.Path)
	if err != nil {
		return server.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"key": key})
}

// HandlePresign returns a presigned GET URL.
// @Summary Presign Object
// @Tags objects
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param key path string true "Object key"
// @Param expires query int false "Lifetime in seconds"
// @Success 200 {object} map[string]interface{} "Presigned URL"
// @Failure 400 {object} map[string]string "Invalid Argument"
// @Router /buckets/{bucket}/presign/{key} [get]
func (h *Handler) HandlePresign(c *fiber.Ctx) error {
	key, err := objectKey(c)
	if err != nil {
		return server.Error(c, err)
	}
	requested := time.Duration(c.QueryInt("expires", 0)) * time.Second

	u, expires, err := h.service.Presign(c.Context(), c.Params("bucket"), key, requested)
	if err != nil {
		return server.Error(c, err)
	}
	return c.JSON(fiber.Map{"url": u, "expires_in": int(expires.Seconds())})
}
