package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"ecobrands/internal/cache"
	"ecobrands/internal/logging"
	"ecobrands/internal/model"
	"ecobrands/internal/repository"
	"ecobrands/internal/slug"
	"ecobrands/internal/storage"
)

const (
	// DefaultPageSize is the number of brands per infinite-scroll page.
	DefaultPageSize = 16
	MaxPageSize     = 100
	searchLimit     = 5
	relatedLimit    = 4
)

// BrandQuery filters and paginates the brand list.
type BrandQuery struct {
	Categories  []model.Category
	EcoChampion bool
	Q           string
	Limit       int
	Offset      int
}

// BrandListResult is the service-level DTO for a page of brands.
type BrandListResult struct {
	Items   []model.Brand `json:"data"`
	Total   int           `json:"total"`
	Limit   int           `json:"limit"`
	Offset  int           `json:"offset"`
	HasMore bool          `json:"has_more"`
}

// BrandDetail is a brand with its related brands.
type BrandDetail struct {
	model.Brand
	Related []model.Brand `json:"related"`
}

// QuickFilter is one entry of the horizontal category filter bar.
type QuickFilter struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// EcoChampionFilterID selects curator's picks.
const EcoChampionFilterID = "eco-champion"

// MarketplaceInfo describes a storefront brands can link to.
type MarketplaceInfo struct {
	Name    model.Marketplace `json:"name"`
	BaseURL string            `json:"base_url"`
	Logo    string            `json:"logo"`
}

// UploadResult is where an uploaded image can be fetched from.
type UploadResult struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// BrandService defines the use cases of the brand directory.
type BrandService interface {
	// List filters the full brand list and returns one page of it, in table order.
	List(ctx context.Context, q BrandQuery) (*BrandListResult, error)

	// Search returns the first few brands whose name contains q, ignoring case.
	Search(ctx context.Context, q string) ([]model.BrandSummary, error)

	// Get returns the brand addressed by slug or record ID, with related brands.
	Get(ctx context.Context, identifier string) (*BrandDetail, error)

	// All returns every brand.
	All(ctx context.Context) ([]model.Brand, error)

	Categories() []QuickFilter
	Features() []model.FeatureDefinition
	Marketplaces() []MarketplaceInfo

	// Create, Update and Delete write through to the table and drop the cached list.
	Create(ctx context.Context, in model.BrandInput) (string, error)
	Update(ctx context.Context, id string, patch model.BrandPatch) error
	Delete(ctx context.Context, id string) error

	// UploadImage stores an image for the brand and returns its public URL and stored path.
	UploadImage(ctx context.Context, id string, kind model.ImageKind, r io.Reader, filename, contentType string, size int64) (*UploadResult, error)

	// CheckConnection reads at most one record from the table and returns how many it saw.
	CheckConnection(ctx context.Context) (int, error)
}

// BrandDeps groups the collaborators of the brand service. Cache and Store may be nil.
type BrandDeps struct {
	Repo    repository.BrandRepository
	Cache   cache.BrandCache
	Metrics *cache.Metrics
	Store   storage.Storage
	URLs    storage.PublicURLs
	Log     *zap.Logger
}

// brandService is a concrete implementation of BrandService.
type brandService struct {
	repo    repository.BrandRepository
	cache   cache.BrandCache
	metrics *cache.Metrics
	store   storage.Storage
	urls    storage.PublicURLs
	log     *zap.Logger
	group   singleflight.Group
	// gen counts writes; a fetch that started before a write does not refill the cache.
	gen atomic.Uint64
	now func() time.Time
}

// NewBrandService constructs a new BrandService.
func NewBrandService(d BrandDeps) BrandService {
	s := &brandService{
		repo:    d.Repo,
		cache:   d.Cache,
		metrics: d.Metrics,
		store:   d.Store,
		urls:    d.URLs,
		log:     d.Log,
		now:     time.Now,
	}
	if s.cache == nil {
		s.cache = cache.Noop{}
	}
	if s.store == nil {
		s.store = storage.Disabled{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// load returns the full brand list from cache or the table. Concurrent misses share one fetch.
// The returned slice is shared and must not be modified.
func (s *brandService) load(ctx context.Context) ([]model.Brand, error) {
	brands, err := s.cache.Get(ctx)
	s.metrics.Observe(err)
	if err == nil {
		return brands, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		s.log.Warn("brand cache read failed", zap.String("request_id", logging.RequestID(ctx)), zap.Error(err))
	}

	// The shared fetch outlives any one caller's deadline; the repository bounds it.
	fetchCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(cache.BrandsKey, func() (interface{}, error) {
		gen := s.gen.Load()
		list, err := s.repo.List(fetchCtx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBrandsUnavailable, err)
		}
		for i := range list {
			s.resolveImages(&list[i])
		}
		if s.gen.Load() != gen {
			return list, nil
		}
		if err := s.cache.Set(fetchCtx, list); err != nil {
			s.log.Warn("brand cache write failed", zap.String("request_id", logging.RequestID(ctx)), zap.Error(err))
		}
		return list, nil
	})
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrBrandsUnavailable, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]model.Brand), nil
	}
}

func (s *brandService) resolveImages(b *model.Brand) {
	b.Logo = s.urls.Resolve(b.Logo)
	b.Cover = s.urls.Resolve(b.Cover)
	for i := range b.Images {
		b.Images[i].URL = s.urls.Resolve(b.Images[i].URL)
	}
	for i := range b.Founders {
		b.Founders[i].ImageURL = s.urls.Resolve(b.Founders[i].ImageURL)
	}
}

func (s *brandService) invalidate(ctx context.Context) {
	s.gen.Add(1)
	s.group.Forget(cache.BrandsKey)
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("brand cache invalidate failed", zap.String("request_id", logging.RequestID(ctx)), zap.Error(err))
	}
}

func (s *brandService) List(ctx context.Context, q BrandQuery) (*BrandListResult, error) {
	if q.Limit <= 0 {
		q.Limit = DefaultPageSize
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(q.Q))
	filtered := make([]model.Brand, 0, len(all))
	for _, b := range all {
		if len(q.Categories) > 0 && !sharesCategory(b.Categories, q.Categories) {
			continue
		}
		if q.EcoChampion && !b.IsCuratorsPick {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(b.Name), needle) {
			continue
		}
		filtered = append(filtered, b)
	}

	total := len(filtered)
	start := min(q.Offset, total)
	end := min(start+q.Limit, total)
	return &BrandListResult{
		Items:   filtered[start:end],
		Total:   total,
		Limit:   q.Limit,
		Offset:  q.Offset,
		HasMore: end < total,
	}, nil
}

func (s *brandService) Search(ctx context.Context, q string) ([]model.BrandSummary, error) {
	needle := strings.ToLower(strings.TrimSpace(q))
	if needle == "" {
		return []model.BrandSummary{}, nil
	}
	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.BrandSummary, 0, searchLimit)
	for _, b := range all {
		if !strings.Contains(strings.ToLower(b.Name), needle) {
			continue
		}
		out = append(out, model.BrandSummary{ID: b.ID, Name: b.Name, Slug: b.Slug, Logo: b.Logo})
		if len(out) == searchLimit {
			break
		}
	}
	return out, nil
}

func (s *brandService) Get(ctx context.Context, identifier string) (*BrandDetail, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, ErrIdentifierRequired
	}
	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range all {
		if slug.Matches(identifier, b.ID, b.Name) {
			return &BrandDetail{Brand: b, Related: Related(b, all)}, nil
		}
	}
	return nil, ErrNotFound
}

// Related scores every other brand against b and returns the best matches.
// A shared category is worth 3, the same origin country 1, and each shared
// sustainable feature 1. Ties keep table order.
func Related(b model.Brand, all []model.Brand) []model.Brand {
	type scored struct {
		brand model.Brand
		score int
	}
	features := make(map[model.SustainableFeature]struct{}, len(b.Content.SustainableFeatures))
	for _, f := range b.Content.SustainableFeatures {
		features[f.Title] = struct{}{}
	}

	candidates := make([]scored, 0, len(all))
	for _, other := range all {
		if other.ID == b.ID {
			continue
		}
		score := 0
		if sharesCategory(other.Categories, b.Categories) {
			score += 3
		}
		if other.Origin.Country == b.Origin.Country {
			score++
		}
		for _, f := range other.Content.SustainableFeatures {
			if _, ok := features[f.Title]; ok {
				score++
			}
		}
		candidates = append(candidates, scored{brand: other, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	n := min(relatedLimit, len(candidates))
	out := make([]model.Brand, 0, n)
	for _, c := range candidates[:n] {
		out = append(out, c.brand)
	}
	return out
}

func sharesCategory(have, want []model.Category) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

func (s *brandService) All(ctx context.Context) ([]model.Brand, error) {
	return s.load(ctx)
}

func (s *brandService) Categories() []QuickFilter {
	out := make([]QuickFilter, 0, len(model.Categories)+2)
	out = append(out,
		QuickFilter{ID: "", Label: "All"},
		QuickFilter{ID: EcoChampionFilterID, Label: "Eco Champion"},
	)
	for _, c := range model.Categories {
		out = append(out, QuickFilter{ID: string(c), Label: c.Label()})
	}
	return out
}

func (s *brandService) Features() []model.FeatureDefinition {
	return model.SustainableFeatures
}

func (s *brandService) Marketplaces() []MarketplaceInfo {
	out := make([]MarketplaceInfo, 0, len(model.Marketplaces))
	for _, m := range model.Marketplaces {
		out = append(out, MarketplaceInfo{Name: m, BaseURL: m.BaseURL(), Logo: m.LogoPath()})
	}
	return out
}

func (s *brandService) Create(ctx context.Context, in model.BrandInput) (string, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return "", ErrNameRequired
	}
	id, err := s.repo.Create(ctx, in)
	if err != nil {
		return "", err
	}
	s.invalidate(ctx)
	return id, nil
}

func (s *brandService) Update(ctx context.Context, id string, patch model.BrandPatch) error {
	if id == "" {
		return ErrIdentifierRequired
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return ErrNameRequired
	}
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *brandService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIdentifierRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *brandService) UploadImage(ctx context.Context, id string, kind model.ImageKind, r io.Reader, filename, contentType string, size int64) (*UploadResult, error) {
	if !kind.Valid() {
		return nil, ErrInvalidImageKind
	}
	if r == nil {
		return nil, ErrReaderNil
	}
	detail, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		ext = "jpg"
	}
	key := storage.ImageKey(kind, detail.Name, ext, s.now())

	_, err = s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:         size,
		ContentType:  contentType,
		CacheControl: "max-age=3600",
		Metadata:     map[string]string{"brand-id": detail.ID},
	})
	if err != nil {
		if errors.Is(err, storage.ErrDisabled) {
			return nil, ErrStorageDisabled
		}
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	bucket := s.store.Bucket()
	urls := storage.PublicURLs{Base: s.urls.Base, Bucket: bucket}
	s.log.Info("brand image uploaded",
		zap.String("request_id", logging.RequestID(ctx)),
		zap.String("brand_id", detail.ID),
		zap.String("kind", string(kind)),
		zap.String("key", key),
	)
	return &UploadResult{URL: urls.URL(key), Path: urls.Path(key)}, nil
}

func (s *brandService) CheckConnection(ctx context.Context) (int, error) {
	return s.repo.Ping(ctx)
}
