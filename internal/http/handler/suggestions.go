package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ecobrands/internal/service"
)

// SubmitSuggestion godoc
// @Summary Suggest a brand
// @Description Emails the suggestion to the curators. Accepts JSON or form bodies.
// @Tags suggestions
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param body body service.SuggestionInput true "Suggestion"
// @Success 201 {object} model.Suggestion
// @Failure 400 {object} errorPayload
// @Failure 429 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /api/suggestions [post]
func SubmitSuggestion(svc service.SuggestionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.SuggestionInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body could not be parsed")
		}

		sug, err := svc.Submit(c.UserContext(), in)
		if err != nil {
			var verr *service.ValidationError
			switch {
			case errors.As(err, &verr):
				return writeErrorPayload(c, fiber.StatusBadRequest, errorEnvelope{
					Code:    "INVALID_SUGGESTION",
					Message: "please fill in every field with a valid email",
					Fields:  verr.Fields,
				})
			case errors.Is(err, service.ErrEmailFailed):
				return writeError(c, fiber.StatusBadGateway, "EMAIL_FAILED", "suggestion could not be sent, please try again")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Status(fiber.StatusCreated).JSON(sug)
	}
}
