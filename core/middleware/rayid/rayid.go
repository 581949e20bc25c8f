// Package rayid tags every request with a unique Ray ID.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the request/response header carrying the Ray ID.
const HeaderName = "X-Ray-ID"

// LocalsKey is where the Ray ID is stored in the Fiber context.
const LocalsKey = "ray_id"

// New creates the Ray ID middleware. An incoming X-Ray-ID header is reused
// so IDs survive across proxies.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
