package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"

	"sculpturesly.GO/config"
	catalogEntity "sculpturesly.GO/model/entity/catalog"
)

// The backend mock must be up before the config singleton resolves the
// API address, hence TestMain.
func TestMain(m *testing.M) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/products/":
			json.NewEncoder(w).Encode(catalogEntity.ProductListResponse{
				Count: 2,
				Results: []catalogEntity.ProductListItem{
					{ID: 1, Title: "Bronze Figure", Slug: "bronze-figure"},
					{ID: 2, Title: "Marble Bust", Slug: "marble-bust"},
				},
			})
		case "/api/products/marble-bust/":
			json.NewEncoder(w).Encode(catalogEntity.ProductDetail{ID: 2, Title: "Marble Bust", Slug: "marble-bust"})
		case "/api/products/categories/":
			json.NewEncoder(w).Encode([]catalogEntity.CategoryTree{{ID: 1, Title: "Sculptures", Slug: "sculptures"}})
		case "/api/products/filters/dimensions/":
			json.NewEncoder(w).Encode([]catalogEntity.DimensionPreset{{Slug: "large", Label: "Large", Count: 2}})
		case "/api/common/supported-countries/":
			json.NewEncoder(w).Encode([]catalogEntity.Country{{Code: "DE", Name: "Germany"}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer backend.Close()

	os.Setenv("API_INTERNAL", backend.URL)
	config.LoadAppConfig()
	os.Exit(m.Run())
}

func setupCatalogAPI() *echo.Echo {
	e := echo.New()
	RegisterCatalogRoutes(e.Group("/api"), nil)
	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestProductList(t *testing.T) {
	e := setupCatalogAPI()

	rec := get(e, "/api/products/?page=1&page_size=20")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var res catalogEntity.ProductListResponse
	json.Unmarshal(rec.Body.Bytes(), &res)
	if res.Count != 2 || len(res.Results) != 2 {
		t.Errorf("unexpected list: %+v", res)
	}
}

func TestProductDetailRoute(t *testing.T) {
	e := setupCatalogAPI()

	rec := get(e, "/api/products/marble-bust/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var p catalogEntity.ProductDetail
	json.Unmarshal(rec.Body.Bytes(), &p)
	if p.Slug != "marble-bust" {
		t.Errorf("slug = %q", p.Slug)
	}
}

func TestCategoryAndReferenceRoutes(t *testing.T) {
	e := setupCatalogAPI()

	if rec := get(e, "/api/products/categories/"); rec.Code != http.StatusOK {
		t.Errorf("categories status = %d", rec.Code)
	}
	if rec := get(e, "/api/products/filters/dimensions/?category=all"); rec.Code != http.StatusOK {
		t.Errorf("dimensions status = %d", rec.Code)
	}

	rec := get(e, "/api/common/supported-countries/")
	if rec.Code != http.StatusOK {
		t.Fatalf("countries status = %d", rec.Code)
	}
	var countries []catalogEntity.Country
	json.Unmarshal(rec.Body.Bytes(), &countries)
	if len(countries) != 1 || countries[0].Code != "DE" {
		t.Errorf("countries = %+v", countries)
	}
}
