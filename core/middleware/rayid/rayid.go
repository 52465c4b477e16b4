package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the request and response header carrying the ray id.
const Header = "X-Ray-ID"

// LocalsKey is the fiber locals key holding the ray id.
const LocalsKey = "ray_id"

// New returns a middleware that assigns a ray id to every request.
// An incoming X-Ray-ID header is kept so calls can be traced across services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if _, err := uuid.Parse(rid); err != nil {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}

// FromCtx returns the ray id of the request, or an empty string.
func FromCtx(c *fiber.Ctx) string {
	rid, _ := c.Locals(LocalsKey).(string)
	return rid
}
