package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/cache"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/dto"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/models"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/store"
)

// CatalogCachePrefix namespaces every cached catalog read.
const CatalogCachePrefix = "catalog:"

type CatalogService struct {
	store *store.Store
	cache cache.Cache
}

// NewCatalogService builds the catalog query engine. A nil cache disables caching.
func NewCatalogService(st *store.Store, c cache.Cache) *CatalogService {
	if c == nil {
		c = cache.Noop{}
	}
	return &CatalogService{store: st, cache: c}
}

// SearchProducts filters by concern name and free text, best rated first.
func (s *CatalogService) SearchProducts(ctx context.Context, filter store.ProductFilter) ([]models.Product, error) {
	key := CatalogCachePrefix + "products:" + url.QueryEscape(filter.Concern) + ":" + url.QueryEscape(filter.Query)

	var cached []models.Product
	if s.lookup(ctx, key, &cached) {
		return cached, nil
	}
	products, err := s.store.SearchProducts(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.remember(ctx, key, products)
	return products, nil
}

func (s *CatalogService) ListConcerns(ctx context.Context) ([]models.Concern, error) {
	key := CatalogCachePrefix + "concerns"

	var cached []models.Concern
	if s.lookup(ctx, key, &cached) {
		return cached, nil
	}
	concerns, err := s.store.ListConcerns(ctx)
	if err != nil {
		return nil, err
	}
	s.remember(ctx, key, concerns)
	return concerns, nil
}

// UpsertConcern creates or updates a concern by name.
func (s *CatalogService) UpsertConcern(ctx context.Context, req dto.UpsertConcernRequest) (*models.Concern, bool, error) {
	if verrs := dto.Validate(&req); verrs != nil {
		return nil, false, verrs
	}
	concern := &models.Concern{Name: req.Name, Description: req.Description}
	created, err := s.store.UpsertConcern(ctx, concern, true)
	if err != nil {
		return nil, false, err
	}
	s.Invalidate(ctx)
	return concern, created, nil
}

// UpsertProduct creates or updates a product by (name, brand). Every suitableFor entry
// must name an existing concern.
func (s *CatalogService) UpsertProduct(ctx context.Context, req dto.UpsertProductRequest) (*models.Product, bool, error) {
	if verrs := dto.Validate(&req); verrs != nil {
		return nil, false, verrs
	}
	concerns, err := s.store.FindConcernsByName(ctx, req.SuitableFor)
	if err != nil {
		return nil, false, err
	}
	if missing := missingNames(req.SuitableFor, concerns); len(missing) > 0 {
		verrs := &dto.ValidationErrors{}
		for _, name := range missing {
			verrs.AddField("suitableFor", fmt.Sprintf("Unknown concern %q", name))
		}
		return nil, false, verrs
	}

	product := &models.Product{
		Name:          req.Name,
		Brand:         req.Brand,
		PriceCents:    req.PriceCents,
		Currency:      req.Currency,
		ProductURL:    req.ProductURL,
		ImageURL:      req.ImageURL,
		Retailer:      req.Retailer,
		Ingredients:   req.Ingredients,
		RatingAverage: req.RatingAverage,
		RatingCount:   req.RatingCount,
		SuitableFor:   concerns,
	}
	created, err := s.store.UpsertProduct(ctx, product, true)
	if err != nil {
		return nil, false, err
	}
	s.Invalidate(ctx)
	return product, created, nil
}

// Invalidate drops every cached catalog read.
func (s *CatalogService) Invalidate(ctx context.Context) {
	if err := s.cache.InvalidatePrefix(ctx, CatalogCachePrefix); err != nil {
		slog.Warn("catalog cache invalidation failed", "error", err)
	}
}

func (s *CatalogService) lookup(ctx context.Context, key string, dest interface{}) bool {
	hit, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		slog.Warn("catalog cache read failed", "key", key, "error", err)
		return false
	}
	return hit
}

func (s *CatalogService) remember(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value); err != nil {
		slog.Warn("catalog cache write failed", "key", key, "error", err)
	}
}

func missingNames(names []string, found []models.Concern) []string {
	known := make(map[string]struct{}, len(found))
	for _, c := range found {
		known[c.Name] = struct{}{}
	}
	var missing []string
	for _, name := range names {
		if _, ok := known[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
