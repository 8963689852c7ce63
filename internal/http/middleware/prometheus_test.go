package middleware

import (
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPromApp(t *testing.T) (*fiber.App, *PrometheusMiddleware, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(m.Handler())
	return app, m, reg
}

func TestPrometheusMiddleware(t *testing.T) {
	app, m, _ := newPromApp(t)
	app.Get("/api/categories", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Delete("/admin/brands/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/api/brands", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusServiceUnavailable, "airtable down")
	})

	tests := []struct {
		method string
		target string
		route  string
		status string
	}{
		{method: "GET", target: "/api/categories", route: "/api/categories", status: "200"},
		{method: "DELETE", target: "/admin/brands/rec1", route: "/admin/brands/:id", status: "204"},
		{method: "GET", target: "/api/brands?limit=5", route: "/api/brands", status: "503"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, strconv.Itoa(resp.StatusCode))
			assert.Equal(t, float64(1), testutil.ToFloat64(m.requestCount.WithLabelValues(tt.method, tt.route, tt.status)))
		})
	}

	assert.Equal(t, float64(0), testutil.ToFloat64(m.inFlight))
	assert.Equal(t, 3, testutil.CollectAndCount(m.requestDuration))
}

func TestPrometheusMiddleware_SkipsProbes(t *testing.T) {
	app, _, reg := newPromApp(t)
	for _, p := range []string{"/metrics", "/healthz", "/health"} {
		app.Get(p, func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	}

	for _, p := range []string{"/metrics", "/healthz", "/health"} {
		_, err := app.Test(httptest.NewRequest("GET", p, nil))
		require.NoError(t, err)
	}

	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() == "ecobrands_http_requests_total" {
			assert.Empty(t, mf.GetMetric())
		}
	}
}

func TestPrometheusMiddleware_UnmatchedRoutesShareLabel(t *testing.T) {
	app, m, _ := newPromApp(t)

	for _, p := range []string{"/wp-login.php", "/.env", "/api/nope"} {
		_, err := app.Test(httptest.NewRequest("GET", p, nil))
		require.NoError(t, err)
	}

	assert.Equal(t, float64(3), testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "unmatched", "404")))
}

func TestPrometheusMiddleware_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)
	_, err = NewPrometheusMiddleware(reg)
	assert.Error(t, err)
}
