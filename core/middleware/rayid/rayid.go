package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the response header echoing the request id.
	HeaderName = "X-Ray-ID"
	// LocalsKey is where the id is stored on the context.
	LocalsKey = "ray_id"
)

// New returns a middleware assigning every request an id. An id sent by the
// client in HeaderName is kept.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
