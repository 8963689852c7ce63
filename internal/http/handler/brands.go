package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"ecobrands/internal/model"
	"ecobrands/internal/service"
)

// brandError translates brand service errors into the standard error envelope.
func brandError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrBrandsUnavailable):
		return writeError(c, fiber.StatusServiceUnavailable, "BRANDS_UNAVAILABLE", "Error Loading Brands")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "brand not found")
	case errors.Is(err, service.ErrIdentifierRequired):
		return writeError(c, fiber.StatusBadRequest, "IDENTIFIER_REQUIRED", "identifier is required")
	case errors.Is(err, service.ErrNameRequired):
		return writeError(c, fiber.StatusBadRequest, "NAME_REQUIRED", "brand name is required")
	case errors.Is(err, service.ErrInvalidImageKind):
		return writeError(c, fiber.StatusBadRequest, "INVALID_IMAGE_KIND", "kind must be one of logo, cover, gallery, founder")
	case errors.Is(err, service.ErrStorageDisabled):
		return writeError(c, fiber.StatusServiceUnavailable, "STORAGE_DISABLED", "image storage is not configured")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// parseCategories reads every category query value. Values may repeat or be comma separated.
// The quick-filter ids are accepted too: "" selects everything and "eco-champion" selects curator's picks.
func parseCategories(c *fiber.Ctx) (cats []model.Category, ecoChampion bool, ok bool) {
	for _, raw := range c.Context().QueryArgs().PeekMulti("category") {
		for _, part := range strings.Split(string(raw), ",") {
			part = strings.TrimSpace(part)
			switch part {
			case "":
				continue
			case service.EcoChampionFilterID:
				ecoChampion = true
				continue
			}
			cat, known := model.ParseCategory(part)
			if !known {
				return nil, false, false
			}
			cats = append(cats, cat)
		}
	}
	return cats, ecoChampion, true
}

func parseNonNegative(c *fiber.Ctx, key string, def int) (int, bool) {
	v := c.Query(key)
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ListBrands godoc
// @Summary List brands
// @Description Filtered, paginated brand list in table order.
// @Tags brands
// @Produce json
// @Param category query []string false "Category filter (repeatable or comma separated)"
// @Param eco_champion query bool false "Curator's picks only"
// @Param q query string false "Name contains"
// @Param limit query int false "Page size" default(16)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.BrandListResult
// @Failure 400 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /api/brands [get]
func ListBrands(svc service.BrandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, ok := parseNonNegative(c, "limit", service.DefaultPageSize)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, ok := parseNonNegative(c, "offset", 0)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}
		cats, eco, ok := parseCategories(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_CATEGORY", "unknown category")
		}

		res, err := svc.List(c.UserContext(), service.BrandQuery{
			Categories:  cats,
			EcoChampion: eco || c.QueryBool("eco_champion", false),
			Q:           c.Query("q"),
			Limit:       limit,
			Offset:      offset,
		})
		if err != nil {
			return brandError(c, err)
		}
		return c.JSON(res)
	}
}

// SearchBrands godoc
// @Summary Search brands by name
// @Tags brands
// @Produce json
// @Param q query string true "Name contains"
// @Success 200 {array} model.BrandSummary
// @Failure 503 {object} errorPayload
// @Router /api/brands/search [get]
func SearchBrands(svc service.BrandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Search(c.UserContext(), c.Query("q"))
		if err != nil {
			return brandError(c, err)
		}
		return c.JSON(fiber.Map{"data": res})
	}
}

// GetBrand godoc
// @Summary Get a brand by slug or record id
// @Tags brands
// @Produce json
// @Param identifier path string true "Slug or record id"
// @Success 200 {object} service.BrandDetail
// @Failure 404 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /api/brands/{identifier} [get]
func GetBrand(svc service.BrandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		detail, err := svc.Get(c.UserContext(), c.Params("identifier"))
		if err != nil {
			return brandError(c, err)
		}
		return c.JSON(detail)
	}
}

// ListCategories godoc
// @Summary Quick filter entries in display order
// @Tags catalog
// @Produce json
// @Success 200 {array} service.QuickFilter
// @Router /api/categories [get]
func ListCategories(svc service.BrandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": svc.Categories()})
	}
}

// ListFeatures godoc
// @Summary Sustainable feature tags with icons
// @Tags catalog
// @Produce json
// @Success 200 {array} model.FeatureDefinition
// @Router /api/features [get]
func ListFeatures(svc service.BrandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": svc.Features()})
	}
}

// ListMarketplaces godoc
// @Summary Supported marketplaces
// @Tags catalog
// @Produce json
// @Success 200 {array} service.MarketplaceInfo
// @Router /api/marketplaces [get]
func ListMarketplaces(svc service.BrandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": svc.Marketplaces()})
	}
}

// AirtableTest godoc
// @Summary Probe the Airtable connection
// @Tags ops
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 500 {object} map[string]any
// @Router /api/airtable/test [get]
func AirtableTest(svc service.BrandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.CheckConnection(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Connection failed",
			})
		}
		return c.JSON(fiber.Map{
			"success":     true,
			"message":     "Connection successful",
			"recordCount": n,
		})
	}
}
