package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ecobrands/internal/http/middleware"
	"ecobrands/internal/service"
)

// Deps groups everything the routes need. DB may be nil when the suggestion log is disabled,
// and an empty AdminToken leaves the admin routes unregistered.
type Deps struct {
	Brands      service.BrandService
	Suggestions service.SuggestionService
	DB          *sql.DB
	SiteURL     string
	AdminToken  string
	StaticDir   string
	// RateLimit guards suggestion submissions. Nil means unlimited.
	RateLimit fiber.Handler
	Log       *zap.Logger
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	if d.RateLimit == nil {
		d.RateLimit = middleware.Noop()
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}

	app.Get("/health", HealthCheck(d.Brands, d.DB))
	app.Get("/healthz", LivenessProbe())
	app.Get("/robots.txt", Robots(d.SiteURL))
	app.Get("/sitemap.xml", Sitemap(d.Brands, d.SiteURL, d.Log))

	api := app.Group("/api")
	api.Get("/brands", ListBrands(d.Brands))
	api.Get("/brands/search", SearchBrands(d.Brands))
	api.Get("/brands/:identifier", GetBrand(d.Brands))
	api.Get("/categories", ListCategories(d.Brands))
	api.Get("/features", ListFeatures(d.Brands))
	api.Get("/marketplaces", ListMarketplaces(d.Brands))
	api.Get("/airtable/test", AirtableTest(d.Brands))
	api.Post("/suggestions", d.RateLimit, SubmitSuggestion(d.Suggestions))

	if d.AdminToken != "" {
		admin := api.Group("/admin", middleware.AdminAuth(d.AdminToken))
		admin.Post("/brands", CreateBrand(d.Brands))
		admin.Patch("/brands/:id", UpdateBrand(d.Brands))
		admin.Delete("/brands/:id", DeleteBrand(d.Brands))
		admin.Post("/brands/:id/images", UploadBrandImage(d.Brands))
		admin.Get("/suggestions", ListSuggestions(d.Suggestions))
	} else {
		d.Log.Info("admin routes disabled, ADMIN_TOKEN is not set")
	}

	// Draft pages stay local.
	app.Use("/about", middleware.PageGate())
	app.Use("/certification", middleware.PageGate())

	if d.StaticDir != "" {
		app.Static("/", d.StaticDir)
	}
}
