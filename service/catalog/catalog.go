package catalog

import (
	"context"
	"encoding/json"
	"log"
	"net/url"
	"strconv"
	"sync"
	"time"

	"sculpturesly.GO/client"
	"sculpturesly.GO/config"
	"sculpturesly.GO/core/cache"
	catalogEntity "sculpturesly.GO/model/entity/catalog"
	"sculpturesly.GO/search"
)

// Cache tags: reference data is refreshed by the cron job in one sweep.
const (
	TagReference = "reference"
	TagCatalog   = "catalog"
)

// Service fetches catalog and reference data from the backend, de-duplicating
// repeated reads through cache keys. In-process cache first, Redis second
// when configured, backend last.
type Service struct {
	api    *client.Client
	cache  *cache.Cache
	search *search.Client

	mu        sync.Mutex
	countries []catalogEntity.Country
}

func NewService(api *client.Client) *Service {
	return &Service{api: api, cache: cache.GetInstance(), search: search.NewFromEnv()}
}

// NewServiceWith wires explicit collaborators (tests).
func NewServiceWith(api *client.Client, c *cache.Cache, es *search.Client) *Service {
	return &Service{api: api, cache: c, search: es}
}

// cachedGet tries the in-process cache, then Redis.
func (s *Service) cachedGet(key string, out interface{}) bool {
	if s.cache.Decode(key, out) {
		return true
	}
	if config.RedisClient == nil {
		return false
	}
	data, err := config.RedisClient.Get(config.RedisCtx(), key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false
	}
	return true
}

// cacheSet stores in both cache levels.
func (s *Service) cacheSet(key string, v interface{}, ttl time.Duration, tags []string) {
	s.cache.Set(key, v, ttl, tags)
	if config.RedisClient != nil {
		if data, err := json.Marshal(v); err == nil {
			config.RedisClient.Set(config.RedisCtx(), key, data, ttl)
		}
	}
}

func listQuery(params catalogEntity.ProductListParams) url.Values {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(params.PageSize))
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Ordering != "" {
		q.Set("ordering", params.Ordering)
	}
	if params.CategorySlug != "" && params.CategorySlug != "all" {
		q.Set("categories__slug", params.CategorySlug)
	}
	if params.CollectionSlug != "" {
		q.Set("collections__slug", params.CollectionSlug)
	}
	return q
}

// Products returns a page of the product list. Search queries go through the
// Elasticsearch accelerator when it is configured and answers; any search
// failure falls back to the backend's ?search= filter.
func (s *Service) Products(ctx context.Context, params catalogEntity.ProductListParams, opts *client.Options) (*catalogEntity.ProductListResponse, error) {
	q := listQuery(params)
	key := "products-list-" + q.Encode()

	var cached catalogEntity.ProductListResponse
	if s.cachedGet(key, &cached) {
		return &cached, nil
	}

	if s.search != nil && params.Search != "" {
		if res, err := s.search.Products(ctx, params.Search, params.Page, params.PageSize); err == nil {
			s.cacheSet(key, res, config.ReferenceTTL(), []string{TagCatalog})
			return res, nil
		}
		log.Println("Search acceleration failed, falling back to backend")
	}

	var out catalogEntity.ProductListResponse
	if err := s.api.GetJSON(ctx, "/api/products/", q, &out, opts); err != nil {
		return nil, err
	}
	s.cacheSet(key, &out, config.ReferenceTTL(), []string{TagCatalog})
	return &out, nil
}

// Product returns one product by slug.
func (s *Service) Product(ctx context.Context, slug string, opts *client.Options) (*catalogEntity.ProductDetail, error) {
	key := "product-detail-" + slug

	var cached catalogEntity.ProductDetail
	if s.cachedGet(key, &cached) {
		return &cached, nil
	}

	var out catalogEntity.ProductDetail
	if err := s.api.GetJSON(ctx, "/api/products/"+slug+"/", nil, &out, opts); err != nil {
		return nil, err
	}
	s.cacheSet(key, &out, config.ReferenceTTL(), []string{TagCatalog})
	return &out, nil
}

// Categories returns the full category tree.
func (s *Service) Categories(ctx context.Context, opts *client.Options) ([]catalogEntity.CategoryTree, error) {
	const key = "categories-data"

	var cached []catalogEntity.CategoryTree
	if s.cachedGet(key, &cached) {
		return cached, nil
	}

	var out []catalogEntity.CategoryTree
	if err := s.api.GetJSON(ctx, "/api/products/categories/", nil, &out, opts); err != nil {
		return nil, err
	}
	s.cacheSet(key, out, config.ReferenceTTL(), []string{TagReference})
	return out, nil
}

// Category returns one category by slug.
func (s *Service) Category(ctx context.Context, slug string, opts *client.Options) (*catalogEntity.Category, error) {
	key := "category-" + slug

	var cached catalogEntity.Category
	if s.cachedGet(key, &cached) {
		return &cached, nil
	}

	var out catalogEntity.Category
	if err := s.api.GetJSON(ctx, "/api/products/categories/"+slug+"/", nil, &out, opts); err != nil {
		return nil, err
	}
	s.cacheSet(key, &out, config.ReferenceTTL(), []string{TagReference})
	return &out, nil
}

// DimensionPresets returns size filter presets, optionally scoped to one
// category ("all" and empty mean unscoped).
func (s *Service) DimensionPresets(ctx context.Context, categorySlug string, opts *client.Options) ([]catalogEntity.DimensionPreset, error) {
	q := url.Values{}
	if categorySlug != "" && categorySlug != "all" {
		q.Set("categories__slug", categorySlug)
	}
	key := "dimension-presets-" + q.Encode()

	var cached []catalogEntity.DimensionPreset
	if s.cachedGet(key, &cached) {
		return cached, nil
	}

	var out []catalogEntity.DimensionPreset
	if err := s.api.GetJSON(ctx, "/api/products/filters/dimensions/", q, &out, opts); err != nil {
		return nil, err
	}
	s.cacheSet(key, out, config.ReferenceTTL(), []string{TagReference})
	return out, nil
}

// InvalidateReference drops all cached reference data. The cron refresh job
// calls this before re-warming.
func (s *Service) InvalidateReference() {
	s.cache.DeleteByTag(TagReference)
	s.mu.Lock()
	s.countries = nil
	s.mu.Unlock()
}
