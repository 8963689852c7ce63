package middleware

import "github.com/gofiber/fiber/v2"

// Noop calls the next handler. It stands in for middleware switched off by configuration.
func Noop() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}

// Unless runs h for every request except those skip matches.
func Unless(skip func(c *fiber.Ctx) bool, h fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if skip(c) {
			return c.Next()
		}
		return h(c)
	}
}

// IsProbe matches liveness, health and metrics scrapes.
func IsProbe(c *fiber.Ctx) bool {
	switch c.Path() {
	case "/healthz", "/health", "/metrics":
		return true
	}
	return false
}
