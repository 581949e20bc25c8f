package objects

import (
	"net/url"
	"strconv"
	"time"

	"object-gateway/core/logger"
	"object-gateway/core/objectstore"
	"object-gateway/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for objects.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the object routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/objects")
	group.Put("/*", h.HandlePut)
	group.Get("/*", h.HandleGet)
	group.Delete("/*", h.HandleRemove)

	app.Get("/exists/*", h.HandleExists)
	app.Get("/stat/*", h.HandleStat)
	app.Get("/presign/*", h.HandlePresign)
	app.Get("/list", h.HandleList)
}

// objectKey extracts the wildcard key from the route.
func objectKey(c *fiber.Ctx) (string, error) {
	raw := c.Params("*")
	if raw == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "object key is required")
	}
	key, err := url.PathUnescape(raw)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid object key")
	}
	return key, nil
}

// presignExpiry parses the expires query. Empty means the service default.
func presignExpiry(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	maxSeconds := int64(objectstore.MaxPresignExpiry / time.Second)
	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || seconds < 1 || seconds > maxSeconds {
		return 0, fiber.NewError(fiber.StatusBadRequest,
			"expires must be between 1 and "+strconv.FormatInt(maxSeconds, 10)+" seconds")
	}
	return time.Duration(seconds) * time.Second, nil
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

// HandlePut uploads the request body.
// @Summary Upload Object
// @Description Stores the raw request body under the key. Creates the bucket if needed.
// @Tags objects
// @Accept octet-stream
// @Produce json
// @Param key path string true "Object key"
// @Param bucket query string false "Bucket (only used when no default bucket is configured)"
// @Success 201 {object} map[string]interface{} "Stored"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /objects/{key} [put]
func (h *Handler) HandlePut(c *fiber.Ctx) error {
	key, err := objectKey(c)
	if err != nil {
		return badRequest(c, err)
	}
	l := logger.WithRayID(h.service.logger, c)

	// The body buffer is reused by fasthttp after the handler returns.
	data := append([]byte(nil), c.Body()...)
	if err := h.service.Put(c.Context(), c.Query("bucket"), key, data); err != nil {
		l.Error("Upload failed", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"key":  key,
		"size": len(data),
	})
}

// HandleGet downloads an object.
// @Summary Download Object
// @Description Returns the full object content.
// @Tags objects
// @Produce octet-stream
// @Param key path string true "Object key"
// @Param bucket query string false "Bucket (only used when no default bucket is configured)"
// @Success 200 {file} binary "Object content"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 502 {object} map[string]string "Storage unavailable"
// @Router /objects/{key} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	key, err := objectKey(c)
	if err != nil {
		return badRequest(c, err)
	}

	data, err := h.service.Get(c.Context(), c.Query("bucket"), key)
	if err != nil {
		if storage.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "object not found", "key": key})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to read object", "key": key})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	return c.Send(data)
}

// HandleRemove deletes an object.
// @Summary Delete Object
// @Description Deletes the object. Failures are logged server-side and never reported.
// @Tags objects
// @Param key path string true "Object key"
// @Param bucket query string false "Bucket (only used when no default bucket is configured)"
// @Success 204 "Deleted"
// @Router /objects/{key} [delete]
func (h *Handler) HandleRemove(c *fiber.Ctx) error {
	key, err := objectKey(c)
	if err != nil {
		return badRequest(c, err)
	}

	h.service.Remove(c.Context(), c.Query("bucket"), key)
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleExists checks whether an object exists.
// @Summary Object Exists
// @Description Probes object metadata. Any error is reported as not existing.
// @Tags objects
// @Produce json
// @Param key path string true "Object key"
// @Param bucket query string false "Bucket (only used when no default bucket is configured)"
// @Success 200 {object} map[string]interface{} "Existence"
// @Router /exists/{key} [get]
func (h *Handler) HandleExists(c *fiber.Ctx) error {
	key, err := objectKey(c)
	if err != nil {
		return badRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"key":    key,
		"exists": h.service.Exists(c.Context(), c.Query("bucket"), key),
	})
}

// HandleStat returns object metadata.
// @Summary Object Properties
// @Description Returns size, ETag, content type and modification time.
// @Tags objects
// @Produce json
// @Param key path string true "Object key"
// @Param bucket query string false "Bucket (only used when no default bucket is configured)"
// @Success 200 {object} storage.ObjectInfo "Object Info"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /stat/{key} [get]
func (h *Handler) HandleStat(c *fiber.Ctx) error {
	key, err := objectKey(c)
	if err != nil {
		return badRequest(c, err)
	}

	info, ok := h.service.Stat(c.Context(), c.Query("bucket"), key)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "object not found", "key": key})
	}
	return c.JSON(info)
}

// HandlePresign returns a presigned download URL.
// @Summary Presigned URL
// @Description Returns a time-limited GET URL for the object.
// @Tags objects
// @Produce json
// @Param key path string true "Object key"
// @Param expires query int false "Lifetime in seconds (1 to 604800)"
// @Param bucket query string false "Bucket (only used when no default bucket is configured)"
// @Success 200 {object} map[string]string "Signed URL"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Storage unavailable"
// @Router /presign/{key} [get]
func (h *Handler) HandlePresign(c *fiber.Ctx) error {
	key, err := objectKey(c)
	if err != nil {
		return badRequest(c, err)
	}
	expiry, err := presignExpiry(c.Query("expires"))
	if err != nil {
		return badRequest(c, err)
	}

	signed, ok := h.service.PresignedURL(c.Context(), c.Query("bucket"), key, expiry)
	if !ok {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to presign object", "key": key})
	}
	return c.JSON(fiber.Map{"url": signed})
}

// HandleList lists objects under a directory.
// @Summary List Objects
// @Description Lists objects under dir (relative to the configured prefix).
// @Tags objects
// @Produce json
// @Param dir query string false "Directory"
// @Param recursive query boolean false "Recurse into sub-directories (default true)"
// @Param bucket query string false "Bucket (only used when no default bucket is configured)"
// @Success 200 {array} storage.ObjectInfo "Objects"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /list [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	objects, err := h.service.List(c.Context(), c.Query("bucket"), c.Query("dir"), c.QueryBool("recursive", true))
	if err != nil {
		l.Error("List failed", zap.String("dir", c.Query("dir")), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if objects == nil {
		objects = []storage.ObjectInfo{}
	}
	return c.JSON(objects)
}
