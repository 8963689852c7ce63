package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"ecobrands/internal/http/middleware"
)

// errorPayload is the body of every error response.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// writeError writes an error response. code is the machine-readable value clients
// switch on (e.g. "INVALID_LIMIT", "BRAND_NOT_FOUND"); message must be safe to show.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return writeErrorPayload(c, status, errorEnvelope{Code: code, Message: message})
}

func writeErrorPayload(c *fiber.Ctx, status int, env errorEnvelope) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: middleware.RequestIDFrom(c.UserContext()),
		Error:     env,
	})
}

var statusCodes = map[int]errorEnvelope{
	fiber.StatusBadRequest:            {Code: "BAD_REQUEST", Message: "bad request"},
	fiber.StatusUnauthorized:          {Code: "UNAUTHORIZED", Message: "unauthorized"},
	fiber.StatusNotFound:              {Code: "NOT_FOUND", Message: "resource not found"},
	fiber.StatusMethodNotAllowed:      {Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"},
	fiber.StatusRequestEntityTooLarge: {Code: "PAYLOAD_TOO_LARGE", Message: "request body too large"},
	fiber.StatusTooManyRequests:       {Code: "RATE_LIMITED", Message: "too many requests"},
	fiber.StatusServiceUnavailable:    {Code: "SERVICE_UNAVAILABLE", Message: "service temporarily unavailable"},
}

// ErrorHandler is the fiber error handler for errors no handler turned into a response.
// Errors that are not *fiber.Error become a logged 500.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else {
			log.Error("unhandled error",
				zap.String("request_id", middleware.RequestIDFrom(c.UserContext())),
				zap.String("method", utils.CopyString(c.Method())),
				zap.String("path", utils.CopyString(c.Path())),
				zap.Error(err),
			)
		}

		env, ok := statusCodes[status]
		if !ok {
			if status < fiber.StatusInternalServerError {
				env = errorEnvelope{Code: "REQUEST_FAILED", Message: "request failed"}
			} else {
				env = errorEnvelope{Code: "INTERNAL_ERROR", Message: "internal server error"}
			}
		}
		return writeErrorPayload(c, status, env)
	}
}
