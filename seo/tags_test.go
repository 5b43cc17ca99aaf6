package seo

import (
	"testing"

	catalogEntity "sculpturesly.GO/model/entity/catalog"
)

func TestResolveSeoTagsNil(t *testing.T) {
	m := ResolveSeoTags(nil)
	if len(m) != 0 {
		t.Errorf("nil input should yield empty tags, got %v", m)
	}
}

func TestResolveSeoTagsOmitsEmpties(t *testing.T) {
	m := ResolveSeoTags(&catalogEntity.SeoTags{
		Title:     "Marble Bust",
		OgTitle:   "Marble Bust | Sculpturesly",
		OgType:    "product",
		Canonical: "https://sculpturesly.com/product/marble-bust",
		Price:     &catalogEntity.SeoPrice{Amount: "450.00", Currency: "EUR"},
	})

	if m["title"] != "Marble Bust" {
		t.Errorf("title = %q", m["title"])
	}
	if m["og:title"] != "Marble Bust | Sculpturesly" {
		t.Errorf("og:title = %q", m["og:title"])
	}
	if m["product:price:amount"] != "450.00" || m["product:price:currency"] != "EUR" {
		t.Errorf("price tags = %q %q", m["product:price:amount"], m["product:price:currency"])
	}
	if _, ok := m["description"]; ok {
		t.Error("empty description must be omitted")
	}
	if _, ok := m["twitter:card"]; ok {
		t.Error("empty twitter:card must be omitted")
	}
}

func TestBuildSeoMetaProductPage(t *testing.T) {
	m := BuildSeoMeta(BuilderOptions{
		Title:        "Marble Bust",
		Description:  "Hand carved.",
		ImageURL:     "https://cdn.sculpturesly.com/bust.jpg",
		URL:          "https://sculpturesly.com/product/marble-bust",
		Price:        &catalogEntity.SeoPrice{Amount: "450.00", Currency: "EUR"},
		Availability: AvailabilityInStock,
	})

	if m["og:type"] != "product" {
		t.Errorf("og:type = %q, want product when a price is set", m["og:type"])
	}
	if m["twitter:card"] != "summary_large_image" {
		t.Errorf("twitter:card = %q, want summary_large_image with an image", m["twitter:card"])
	}
	if m["og:title"] != "Marble Bust" {
		t.Errorf("og:title should fall back to title, got %q", m["og:title"])
	}
	if m["robots"] != DefaultRobots {
		t.Errorf("robots = %q, want default", m["robots"])
	}
	if m["product:availability"] != AvailabilityInStock {
		t.Errorf("availability = %q", m["product:availability"])
	}
	if m["canonical"] != "https://sculpturesly.com/product/marble-bust" {
		t.Errorf("canonical = %q", m["canonical"])
	}
}

func TestBuildSeoMetaPlainPage(t *testing.T) {
	m := BuildSeoMeta(BuilderOptions{
		Title: "About us",
		URL:   "https://sculpturesly.com/about",
	})

	if m["og:type"] != "website" {
		t.Errorf("og:type = %q, want website without a price", m["og:type"])
	}
	if m["twitter:card"] != "summary" {
		t.Errorf("twitter:card = %q, want summary without an image", m["twitter:card"])
	}
	if _, ok := m["product:price:amount"]; ok {
		t.Error("no price tags expected on a plain page")
	}
}

func TestBuildSeoMetaOverrides(t *testing.T) {
	m := BuildSeoMeta(BuilderOptions{
		Title:        "Catalog",
		OgTitle:      "Browse the catalog",
		TwitterTitle: "Catalog on X",
		Robots:       "noindex",
	})

	if m["og:title"] != "Browse the catalog" {
		t.Errorf("og:title = %q", m["og:title"])
	}
	if m["twitter:title"] != "Catalog on X" {
		t.Errorf("twitter:title = %q", m["twitter:title"])
	}
	if m["robots"] != "noindex" {
		t.Errorf("robots = %q", m["robots"])
	}
}
