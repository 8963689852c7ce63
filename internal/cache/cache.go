package cache

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"ecobrands/internal/model"
)

// Package cache holds the shared brand list cache. Every read path loads the
// full list once and filters in memory, so a single key is enough.

// BrandsKey is the cache key of the full brand list.
const BrandsKey = "brands:all"

// ErrMiss is returned by Get when nothing is cached.
var ErrMiss = errors.New("cache miss")

// BrandCache stores the full brand list.
type BrandCache interface {
	// Get returns the cached list or ErrMiss.
	Get(ctx context.Context) ([]model.Brand, error)
	// Set stores the list, replacing any previous value.
	Set(ctx context.Context, brands []model.Brand) error
	// Invalidate drops the cached list so the next Get misses.
	Invalidate(ctx context.Context) error
}

// Noop is the BrandCache used when no cache backend is configured. It always misses.
type Noop struct{}

func (Noop) Get(context.Context) ([]model.Brand, error) { return nil, ErrMiss }

func (Noop) Set(context.Context, []model.Brand) error { return nil }

func (Noop) Invalidate(context.Context) error { return nil }

// Metrics counts cache lookups by result (hit, miss or error).
type Metrics struct {
	lookups *prometheus.CounterVec
}

// NewMetrics creates the cache counters and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brand_cache_lookups_total",
				Help: "Brand list cache lookups by result.",
			},
			[]string{"result"},
		),
	}
	if err := reg.Register(m.lookups); err != nil {
		return nil, err
	}
	return m, nil
}

// Observe records the outcome of a Get. A nil Metrics records nothing.
func (m *Metrics) Observe(err error) {
	if m == nil {
		return
	}
	switch {
	case err == nil:
		m.lookups.WithLabelValues("hit").Inc()
	case errors.Is(err, ErrMiss):
		m.lookups.WithLabelValues("miss").Inc()
	default:
		m.lookups.WithLabelValues("error").Inc()
	}
}
