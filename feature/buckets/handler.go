package buckets

import (
	"bucket-manager/core/logger"
	"bucket-manager/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for buckets.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the bucket routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/buckets")
	group.Get("/", h.HandleList)
	group.Post("/:bucket", h.HandleCreate)
	group.Delete("/:bucket", h.HandleDelete)
	group.Get("/:bucket/public-access-block", h.HandleGetAccessBlock)
	group.Put("/:bucket/public-access-block", h.HandleBlockPublicAccess)
}

// HandleList lists buckets.
// @Summary List Buckets
// @Description Lists every bucket visible to the configured credentials.
// @Tags buckets
// @Produce json
// @Success 200 {array} storage.BucketInfo "Buckets"
// @Failure 502 {object} map[string]string "Remote Service Error"
// @Router /buckets [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	buckets, err := h.service.List(c.Context())
	if err != nil {
		return server.Error(c, err)
	}
	return c.JSON(buckets)
}

// HandleCreate creates a bucket.
// @Summary Create Bucket
// @Description Creates a bucket. With secure=true the public access block is applied right after creation.
// @Tags buckets
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param secure query boolean false "Block public access"
// @Success 201 {object} map[string]interface{} "Created"
// @Failure 400 {object} map[string]string "Invalid Argument"
// @Failure 502 {object} map[string]string "Remote Service Error"
// @Router /buckets/{bucket} [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	bucket := c.Params("bucket")
	secure := c.QueryBool("secure", false)

	if err := h.service.Create(c.Context(), bucket, secure); err != nil {
		l.Warn("Bucket creation request failed", zap.String("bucket", bucket))
		return server.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "created",
		"bucket": bucket,
		"secure": secure,
	})
}

// HandleDelete deletes a bucket.
// @Summary Delete Bucket
// @Description Deletes an empty bucket.
// @Tags buckets
// @Param bucket path string true "Bucket name"
// @Success 204 "Deleted"
// @Failure 409 {object} map[string]string "Bucket Not Empty"
// @Failure 502 {object} map[string]string "Remote Service Error"
// @Router /buckets/{bucket} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("bucket")); err != nil {
		return server.Error(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetAccessBlock returns the public access block of a bucket.
// @Summary Get Public Access Block
// @Tags buckets
// @Produce json
// @Param bucket path string true "Bucket name"
// @Success 200 {object} storage.AccessBlock "Access Block"
// @Failure 404 {object} map[string]string "Not Configured"
// @Router /buckets/{bucket}/public-access-block [get]
func (h *Handler) HandleGetAccessBlock(c *fiber.Ctx) error {
	block, err := h.service.AccessBlock(c.Context(), c.Params("bucket"))
	if err != nil {
		return server.Error(c, err)
	}
	return c.JSON(block)
}

// HandleBlockPublicAccess enables all public access block flags.
// @Summary Block Public Access
// @Tags buckets
// @Produce json
// @Param bucket path string true "Bucket name"
// @Success 200 {object} map[string]string "Blocked"
// @Failure 502 {object} map[string]string "Remote Service Error"
// @Router /buckets/{bucket}/public-access-block [put]
func (h *Handler) HandleBlockPublicAccess(c *fiber.Ctx) error {
	bucket := c.Params("bucket")
	if err := h.service.BlockPublicAccess(c.Context(), bucket); err != nil {
		return server.Error(c, err)
	}
	return c.JSON(fiber.Map{"status": "blocked", "bucket": bucket})
}
