package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"ecobrands/internal/model"
	"ecobrands/internal/service"
)

// CreateBrand godoc
// @Summary Create a brand
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body model.BrandInput true "Brand"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Router /api/admin/brands [post]
func CreateBrand(svc service.BrandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.BrandInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body could not be parsed")
		}
		id, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return brandError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	}
}

// UpdateBrand godoc
// @Summary Update brand fields
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Record id"
// @Param body body model.BrandPatch true "Fields to change"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Router /api/admin/brands/{id} [patch]
func UpdateBrand(svc service.BrandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var patch model.BrandPatch
		if err := c.BodyParser(&patch); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body could not be parsed")
		}
		if err := svc.Update(c.UserContext(), utils.CopyString(c.Params("id")), patch); err != nil {
			return brandError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteBrand godoc
// @Summary Delete a brand
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Record id"
// @Success 204
// @Failure 401 {object} errorPayload
// @Router /api/admin/brands/{id} [delete]
func DeleteBrand(svc service.BrandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), utils.CopyString(c.Params("id"))); err != nil {
			return brandError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UploadBrandImage godoc
// @Summary Upload a brand image
// @Tags admin
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Slug or record id"
// @Param kind query string true "logo, cover, gallery or founder"
// @Param file formData file true "Image"
// @Success 201 {object} service.UploadResult
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /api/admin/brands/{id}/images [post]
func UploadBrandImage(svc service.BrandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		kind := model.ImageKind(c.Query("kind"))
		if !kind.Valid() {
			return brandError(c, service.ErrInvalidImageKind)
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		res, err := svc.UploadImage(c.UserContext(), utils.CopyString(c.Params("id")), kind, f, fh.Filename, ct, fh.Size)
		if err != nil {
			return brandError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// ListSuggestions godoc
// @Summary List recorded suggestions
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.SuggestionListResult
// @Failure 401 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /api/admin/suggestions [get]
func ListSuggestions(svc service.SuggestionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			if errors.Is(err, service.ErrSuggestionsDisabled) {
				return writeError(c, fiber.StatusServiceUnavailable, "SUGGESTIONS_DISABLED", "suggestion log is not configured")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}
