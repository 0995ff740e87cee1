// Package rayid assigns every request a correlation id.
//
// The id is taken from the X-Ray-ID request header when present, otherwise
// generated. It is stored in the Fiber locals under "ray_id" (read by
// logger.WithRayID) and echoed back in the response header.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

const (
	// Header is the request and response header carrying the id.
	Header = "X-Ray-ID"
	// LocalsKey is the Fiber locals key holding the id.
	LocalsKey = "ray_id"

	maxLength = 128
)

// New returns the middleware.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Header values point into a reused buffer.
		id := utils.CopyString(c.Get(Header))
		if id == "" || len(id) > maxLength {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}
