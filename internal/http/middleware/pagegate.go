package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// PreviewHost is the only host allowed to view gated pages.
const PreviewHost = "localhost:3000"

// PageGate keeps draft pages local. Requests from any host other than PreviewHost
// get a temporary redirect to "/"; local requests are served with framing denied.
func PageGate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if string(c.Request().Host()) != PreviewHost {
			return c.Redirect("/", fiber.StatusTemporaryRedirect)
		}
		c.Set(fiber.HeaderXFrameOptions, "DENY")
		c.Set(fiber.HeaderAccessControlAllowOrigin, PreviewHost)
		return c.Next()
	}
}
