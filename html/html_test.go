package html

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"sculpturesly.GO/config"
	catalogEntity "sculpturesly.GO/model/entity/catalog"
)

func TestMain(m *testing.M) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/products/the-silent-void/":
			json.NewEncoder(w).Encode(catalogEntity.ProductDetail{
				ID:          1,
				Title:       "The Silent Void",
				Slug:        "the-silent-void",
				Status:      catalogEntity.StatusPublished,
				Description: "Bronze on granite.",
				BasePrice:   "450.00",
				Thumbnail:   "https://cdn.sculpturesly.com/void.jpg",
				Categories:  []catalogEntity.Category{{ID: 1, Title: "Sculptures", Slug: "sculptures"}},
				Variants: []catalogEntity.ProductVariant{
					{ID: 11, SKU: "SCULPT-001", Price: "450.00", Attributes: map[string]string{"dimensions": "30x40"}},
				},
			})
		case "/api/products/categories/sculptures/":
			json.NewEncoder(w).Encode(catalogEntity.Category{
				ID: 1, Title: "Sculptures", Slug: "sculptures",
				SeoMetadata: catalogEntity.SeoTags{Title: "Sculptures | Sculpturesly", OgType: "website"},
			})
		case "/api/products/":
			json.NewEncoder(w).Encode(catalogEntity.ProductListResponse{
				Count: 1,
				Results: []catalogEntity.ProductListItem{
					{ID: 1, Title: "The Silent Void", Slug: "the-silent-void", BasePrice: "450.00"},
				},
			})
		case "/api/facebook/conversions/view-content/":
			w.Write([]byte(`{}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer backend.Close()

	os.Setenv("API_INTERNAL", backend.URL)
	config.LoadAppConfig()
	os.Exit(m.Run())
}

func setupPages() *echo.Echo {
	e := echo.New()
	e.Renderer = NewRenderer()
	RegisterProductHTMLRoutes(e, nil)
	RegisterCategoryHTMLRoutes(e, nil)
	return e
}

func TestProductPage(t *testing.T) {
	e := setupPages()

	req := httptest.NewRequest(http.MethodGet, "/product/the-silent-void", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()

	for _, want := range []string{
		"<title>The Silent Void</title>",
		`property="og:type" content="product"`,
		`application/ld+json`,
		`"@type":"Product"`,
		`"@type":"BreadcrumbList"`,
		"€450,00",
		"30 × 40 cm",
		`data-variant-id="11"`,
		`"event":"ViewContent"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestProductPageNotFound(t *testing.T) {
	e := setupPages()

	req := httptest.NewRequest(http.MethodGet, "/product/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCategoryPage(t *testing.T) {
	e := setupPages()

	req := httptest.NewRequest(http.MethodGet, "/category/sculptures", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<title>Sculptures | Sculpturesly</title>") {
		t.Error("page missing precomputed SEO title")
	}
	if !strings.Contains(body, `/product/the-silent-void`) {
		t.Error("page missing product link")
	}
}
