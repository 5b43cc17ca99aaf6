package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sculpturesly.GO/client"
	"sculpturesly.GO/core/cache"
	catalogEntity "sculpturesly.GO/model/entity/catalog"
)

func catalogBackend(t *testing.T, calls *map[string]int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		(*calls)[r.URL.Path]++
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/products/":
			json.NewEncoder(w).Encode(catalogEntity.ProductListResponse{
				Count: 1,
				Results: []catalogEntity.ProductListItem{
					{ID: 1, Title: "The Silent Void", Slug: "the-silent-void", BasePrice: "450.00", Status: catalogEntity.StatusPublished},
				},
			})
		case "/api/products/the-silent-void/":
			json.NewEncoder(w).Encode(catalogEntity.ProductDetail{
				ID: 1, Title: "The Silent Void", Slug: "the-silent-void", BasePrice: "450.00",
			})
		case "/api/products/categories/":
			json.NewEncoder(w).Encode([]catalogEntity.CategoryTree{
				{ID: 1, Title: "Sculptures", Slug: "sculptures", Children: []catalogEntity.CategoryTree{
					{ID: 2, Title: "Marble", Slug: "marble"},
				}},
			})
		case "/api/products/filters/dimensions/":
			json.NewEncoder(w).Encode([]catalogEntity.DimensionPreset{
				{Slug: "small", Label: "Small", Count: 4},
			})
		case "/api/common/supported-countries/":
			json.NewEncoder(w).Encode([]catalogEntity.Country{
				{Code: "DE", Name: "Germany"},
				{Code: "AT", Name: "Austria"},
			})
		default:
			http.NotFound(w, r)
		}
	}))
}

func serviceUnderTest(t *testing.T) (*Service, map[string]int) {
	t.Helper()
	calls := map[string]int{}
	backend := catalogBackend(t, &calls)
	t.Cleanup(backend.Close)
	svc := NewServiceWith(client.NewWithBase(backend.URL), cache.NewCache(), nil)
	return svc, calls
}

func TestProductsListAndCacheDedup(t *testing.T) {
	svc, calls := serviceUnderTest(t)
	ctx := context.Background()
	params := catalogEntity.ProductListParams{Page: 1, PageSize: 20}

	res, err := svc.Products(ctx, params, nil)
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if res.Count != 1 || len(res.Results) != 1 {
		t.Fatalf("unexpected list: %+v", res)
	}

	if _, err := svc.Products(ctx, params, nil); err != nil {
		t.Fatalf("Products cached: %v", err)
	}
	if calls["/api/products/"] != 1 {
		t.Errorf("backend calls = %d, want 1 (second read served from cache)", calls["/api/products/"])
	}

	// A different cache key must hit the backend again.
	if _, err := svc.Products(ctx, catalogEntity.ProductListParams{Page: 2}, nil); err != nil {
		t.Fatalf("Products page 2: %v", err)
	}
	if calls["/api/products/"] != 2 {
		t.Errorf("backend calls = %d, want 2", calls["/api/products/"])
	}
}

func TestProductDetail(t *testing.T) {
	svc, calls := serviceUnderTest(t)

	p, err := svc.Product(context.Background(), "the-silent-void", nil)
	if err != nil {
		t.Fatalf("Product: %v", err)
	}
	if p.BasePrice != "450.00" {
		t.Errorf("base price = %q", p.BasePrice)
	}

	svc.Product(context.Background(), "the-silent-void", nil)
	if calls["/api/products/the-silent-void/"] != 1 {
		t.Errorf("detail calls = %d, want 1", calls["/api/products/the-silent-void/"])
	}
}

func TestCategoriesTree(t *testing.T) {
	svc, _ := serviceUnderTest(t)

	tree, err := svc.Categories(context.Background(), nil)
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(tree) != 1 || len(tree[0].Children) != 1 {
		t.Fatalf("unexpected tree: %+v", tree)
	}
	if tree[0].Children[0].Slug != "marble" {
		t.Errorf("child slug = %q", tree[0].Children[0].Slug)
	}
}

func TestDimensionPresetsAllIsUnscoped(t *testing.T) {
	svc, _ := serviceUnderTest(t)

	presets, err := svc.DimensionPresets(context.Background(), "all", nil)
	if err != nil {
		t.Fatalf("DimensionPresets: %v", err)
	}
	if len(presets) != 1 || presets[0].Slug != "small" {
		t.Errorf("unexpected presets: %+v", presets)
	}
}

func TestCountriesPopulatedGuard(t *testing.T) {
	svc, calls := serviceUnderTest(t)
	ctx := context.Background()

	if _, err := svc.Countries(ctx, nil); err != nil {
		t.Fatalf("Countries: %v", err)
	}
	if _, err := svc.Countries(ctx, nil); err != nil {
		t.Fatalf("Countries second: %v", err)
	}
	if calls["/api/common/supported-countries/"] != 1 {
		t.Errorf("country calls = %d, want 1", calls["/api/common/supported-countries/"])
	}
}

func TestCountryValidators(t *testing.T) {
	svc, _ := serviceUnderTest(t)
	svc.Countries(context.Background(), nil)

	if !svc.IsValidCountryCode("de") {
		t.Error("lowercase code should validate")
	}
	if svc.IsValidCountryCode("US") {
		t.Error("US is not in the supported list")
	}
	if !svc.IsValidCountryName(" germany ") {
		t.Error("name with surrounding spaces should validate")
	}
	if svc.IsValidCountryName("") || svc.IsValidCountryCode("") {
		t.Error("empty input must not validate")
	}
	if c := svc.CountryByCode("AT"); c == nil || c.Name != "Austria" {
		t.Errorf("CountryByCode(AT) = %+v", c)
	}
	if c := svc.CountryByCode("FR"); c != nil {
		t.Errorf("CountryByCode(FR) = %+v, want nil", c)
	}
}

func TestInvalidateReference(t *testing.T) {
	svc, calls := serviceUnderTest(t)
	ctx := context.Background()

	svc.Categories(ctx, nil)
	svc.InvalidateReference()
	svc.Categories(ctx, nil)

	if calls["/api/products/categories/"] != 2 {
		t.Errorf("category calls = %d, want 2 after invalidation", calls["/api/products/categories/"])
	}
}
