package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"ecobrands/docs"
	"ecobrands/internal/cache"
	"ecobrands/internal/database"
	"ecobrands/internal/database/migration"
	"ecobrands/internal/email"
	handlers "ecobrands/internal/http/handler"
	"ecobrands/internal/http/middleware"
	tracing "ecobrands/internal/otel"
	"ecobrands/internal/repository"
	"ecobrands/internal/repository/airtable"
	"ecobrands/internal/repository/postgres"
	"ecobrands/internal/service"
	"ecobrands/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func (c *cli) serve(ctx context.Context) error {
	cfg, log := c.cfg, c.log

	shutdownTracing, err := tracing.Init(ctx, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing shutdown failed", zap.Error(err))
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	brandRepo, err := airtable.NewBrandAirtable(cfg.Airtable, log)
	if err != nil {
		return fmt.Errorf("failed to initialize airtable: %w", err)
	}

	// Redis is optional; without it every request reads through to Airtable.
	var brandCache cache.BrandCache = cache.Noop{}
	if cfg.Redis.Enabled() {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn("redis unavailable, brand cache disabled", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		} else {
			defer client.Close()
			brandCache = cache.NewRedis(client, time.Duration(cfg.Redis.TTLSec)*time.Second)
		}
	}
	cacheMetrics, err := cache.NewMetrics(reg)
	if err != nil {
		return err
	}

	var objStore storage.Storage = storage.Disabled{}
	if cfg.MinIO.Enabled() {
		objStore, err = storage.NewMinIO(ctx, cfg.MinIO, log)
		if err != nil {
			return fmt.Errorf("failed to initialize object storage: %w", err)
		}
	}

	var (
		db             *sql.DB
		suggestionRepo repository.SuggestionRepository
	)
	if cfg.Database.Enabled() {
		db, err = database.NewPostgres(ctx, cfg.Database, log)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.HostName()); err != nil {
			return err
		}
		suggestionRepo = postgres.NewSuggestionPostgres(db)
	} else {
		log.Info("suggestion log disabled, neither DATABASE_URL nor DB_HOST is set")
	}

	brandSvc := service.NewBrandService(service.BrandDeps{
		Repo:    brandRepo,
		Cache:   brandCache,
		Metrics: cacheMetrics,
		Store:   objStore,
		URLs:    storage.PublicURLs{Base: cfg.MinIO.PublicURL, Bucket: cfg.MinIO.Bucket},
		Log:     log,
	})
	suggestionSvc := service.NewSuggestionService(email.NewEmailJS(cfg.Email), suggestionRepo, log)

	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		AppName:                 "ecobrands",
		ErrorHandler:            handlers.ErrorHandler(log),
		BodyLimit:               10 << 20,
		ReadTimeout:             30 * time.Second,
		WriteTimeout:            30 * time.Second,
		DisableStartupMessage:   true,
		ProxyHeader:             cfg.Proxy.Header,
		EnableTrustedProxyCheck: cfg.Proxy.Header != "",
		TrustedProxies:          cfg.Proxy.TrustedProxies,
		EnableIPValidation:      true,
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Unless(middleware.IsProbe, middleware.Logger(log)))
	app.Use(prom.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, handlers.Deps{
		Brands:      brandSvc,
		Suggestions: suggestionSvc,
		DB:          db,
		SiteURL:     cfg.SiteURL,
		AdminToken:  cfg.AdminToken,
		StaticDir:   cfg.StaticDir,
		RateLimit:   middleware.RateLimit(ctx, cfg.RateLimit.RPS, cfg.RateLimit.Burst, log),
		Log:         log,
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", addr), zap.String("site_url", cfg.SiteURL))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
