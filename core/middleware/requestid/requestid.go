// Package requestid tags every request with an id for log correlation.
package requestid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the request/response header carrying the id.
const HeaderName = "X-Request-ID"

// New returns a middleware that stores the request id in c.Locals("request_id")
// and echoes it in the response. An incoming id is kept.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("request_id", id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
