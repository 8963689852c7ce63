package airtable

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/brianloveswords/airtable"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ecobrands/internal/config"
	"ecobrands/internal/model"
	"ecobrands/internal/repository"
)

// table is the subset of airtable.Table used here. Records are decoded with encoding/json,
// so any struct with an ID and a json-tagged Fields struct can be passed.
type table interface {
	List(listPtr interface{}, options *airtable.Options) error
	Create(recordPtr interface{}) error
	Update(recordPtr interface{}) error
	Delete(recordPtr interface{}) error
}

// BrandAirtable is an Airtable implementation of repository.BrandRepository.
// It performs record list/create/update/destroy calls only and contains no business logic.
type BrandAirtable struct {
	brands    table
	retailers table
	timeout   time.Duration
	log       *zap.Logger
}

var _ repository.BrandRepository = (*BrandAirtable)(nil)

const defaultTimeout = 30 * time.Second

// NewBrandAirtable creates the repository for the configured base.
// The personal access token and base ID are required.
func NewBrandAirtable(cfg config.AirtableConfig, log *zap.Logger) (*BrandAirtable, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("airtable token is required")
	}
	if cfg.BaseID == "" {
		return nil, fmt.Errorf("airtable base id is required")
	}
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rootURL := cfg.APIURL
	if rootURL == "" {
		rootURL = airtable.DefaultRootURL
	}
	// Every field is set up front: the client fills missing ones lazily on each
	// request, which races when brands and retailers are listed concurrently.
	client := &airtable.Client{
		APIKey:  cfg.Token,
		BaseID:  cfg.BaseID,
		Version: airtable.DefaultVersion,
		RootURL: strings.TrimRight(rootURL, "/"),
		Limiter: airtable.DefaultLimiter,
		HTTPClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	brands := client.Table(cfg.BrandsTable)
	retailers := client.Table(cfg.RetailersTable)
	r := newBrandAirtable(&brands, &retailers, log)
	r.timeout = timeout
	return r, nil
}

func newBrandAirtable(brands, retailers table, log *zap.Logger) *BrandAirtable {
	if log == nil {
		log = zap.NewNop()
	}
	return &BrandAirtable{brands: brands, retailers: retailers, log: log.With(zap.String("component", "airtable"))}
}

// call runs a blocking client call but returns as soon as ctx is done or the
// configured timeout passes. The airtable client has no context support, so an
// abandoned call finishes in the background, bounded by the HTTP client timeout.
func (r *BrandAirtable) call(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	done := make(chan error, 1)
	go func() { done <- fn() }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// List fetches brands and retailers concurrently and joins them.
// A retailer failure degrades to brands without marketplace links.
func (r *BrandAirtable) List(ctx context.Context) ([]model.Brand, error) {
	var (
		records   []brandRecord
		retailers []model.Retailer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := r.call(gctx, func() error { return r.brands.List(&records, &airtable.Options{}) }); err != nil {
			return fmt.Errorf("list brands: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		list, err := r.listRetailers(gctx)
		if err != nil {
			r.log.Warn("retailer fetch failed, serving brands without retailers", zap.Error(err))
			return nil
		}
		retailers = list
		return nil
	})
	if err := g.Wait(); err != nil {
		r.log.Error("brand fetch failed", zap.Error(err))
		return nil, err
	}

	byID := make(map[string]model.Retailer, len(retailers))
	for _, rt := range retailers {
		byID[rt.ID] = rt
	}

	out := make([]model.Brand, 0, len(records))
	for _, rec := range records {
		out = append(out, toBrand(rec, byID, r.log))
	}
	r.log.Debug("brands fetched", zap.Int("record_count", len(out)), zap.Int("retailer_count", len(retailers)))
	return out, nil
}

func (r *BrandAirtable) listRetailers(ctx context.Context) ([]model.Retailer, error) {
	var records []retailerRecord
	if err := r.call(ctx, func() error { return r.retailers.List(&records, &airtable.Options{}) }); err != nil {
		return nil, fmt.Errorf("list retailers: %w", err)
	}
	out := make([]model.Retailer, 0, len(records))
	for _, rec := range records {
		out = append(out, toRetailer(rec))
	}
	return out, nil
}

// Create inserts a brand row. Retailer links are resolved to record IDs by marketplace name.
func (r *BrandAirtable) Create(ctx context.Context, in model.BrandInput) (string, error) {
	retailerIDs, err := r.retailerIDs(ctx, len(in.Retailers) > 0)
	if err != nil {
		return "", err
	}
	rec := &brandWriteRecord{Fields: toWriteFields(in, retailerIDs)}
	if err := r.call(ctx, func() error { return r.brands.Create(rec) }); err != nil {
		r.log.Error("brand create failed", zap.String("name", in.Name), zap.Error(err))
		return "", fmt.Errorf("create brand: %w", err)
	}
	if rec.ID == "" {
		return "", errors.New("create brand: no record id returned")
	}
	r.log.Info("brand created", zap.String("record_id", rec.ID))
	return rec.ID, nil
}

// Update patches a brand row with the fields set in p.
func (r *BrandAirtable) Update(ctx context.Context, id string, p model.BrandPatch) error {
	retailerIDs, err := r.retailerIDs(ctx, p.Retailers != nil)
	if err != nil {
		return err
	}
	rec := &brandPatchRecord{ID: id, Fields: patchWriteFields(p, retailerIDs)}
	if err := r.call(ctx, func() error { return r.brands.Update(rec) }); err != nil {
		r.log.Error("brand update failed", zap.String("record_id", id), zap.Error(err))
		return fmt.Errorf("update brand: %w", err)
	}
	r.log.Info("brand updated", zap.String("record_id", id))
	return nil
}

// Delete destroys a brand row.
func (r *BrandAirtable) Delete(ctx context.Context, id string) error {
	rec := &brandWriteRecord{ID: id}
	if err := r.call(ctx, func() error { return r.brands.Delete(rec) }); err != nil {
		r.log.Error("brand delete failed", zap.String("record_id", id), zap.Error(err))
		return fmt.Errorf("delete brand: %w", err)
	}
	r.log.Info("brand deleted", zap.String("record_id", id))
	return nil
}

// Ping lists at most one brand record.
func (r *BrandAirtable) Ping(ctx context.Context) (int, error) {
	var records []brandRecord
	if err := r.call(ctx, func() error {
		return r.brands.List(&records, &airtable.Options{MaxRecords: 1})
	}); err != nil {
		return 0, fmt.Errorf("airtable ping: %w", err)
	}
	return len(records), nil
}

func (r *BrandAirtable) retailerIDs(ctx context.Context, needed bool) (map[model.Marketplace]string, error) {
	if !needed {
		return nil, nil
	}
	retailers, err := r.listRetailers(ctx)
	if err != nil {
		return nil, err
	}
	return retailerIndex(retailers), nil
}
