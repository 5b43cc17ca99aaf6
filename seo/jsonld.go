package seo

import (
	"time"

	"sculpturesly.GO/config"
	catalogEntity "sculpturesly.GO/model/entity/catalog"
)

// JSONLD is a schema.org structured-data object, serialized into a
// <script type="application/ld+json"> block.
type JSONLD map[string]interface{}

func siteURL() string {
	if config.AppConfig != nil && config.AppConfig.SiteURL != "" {
		return config.AppConfig.SiteURL
	}
	return "https://sculpturesly.com"
}

// BuildOrganizationJSONLD describes the shop itself.
func BuildOrganizationJSONLD() JSONLD {
	base := siteURL()
	return JSONLD{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     siteName(),
		"url":      base,
		"logo":     base + "/logo.png",
		"sameAs": []string{
			"https://instagram.com/sculpturesly",
			"https://facebook.com/sculpturesly",
		},
	}
}

// BuildProductJSONLD describes one product offer. Currency and region are
// fixed US values, matching what the ad and search consoles are set up for.
// priceValidUntil is one year out from render time.
func BuildProductJSONLD(product *catalogEntity.ProductDetail, url string) JSONLD {
	if product == nil {
		return nil
	}

	var sku interface{} = product.ID
	if len(product.Variants) > 0 && product.Variants[0].SKU != "" {
		sku = product.Variants[0].SKU
	}

	availability := "https://schema.org/OutOfStock"
	if product.Status == catalogEntity.StatusPublished {
		availability = "https://schema.org/InStock"
	}

	return JSONLD{
		"@context":    "https://schema.org",
		"@type":       "Product",
		"name":        product.Title,
		"description": product.Description,
		"image":       product.Thumbnail,
		"sku":         sku,
		"offers": JSONLD{
			"@type":           "Offer",
			"url":             url,
			"priceCurrency":   "USD",
			"price":           product.BasePrice,
			"availability":    availability,
			"itemCondition":   "https://schema.org/NewCondition",
			"priceValidUntil": time.Now().AddDate(1, 0, 0).Format("2006-01-02"),
			"hasMerchantReturnPolicy": JSONLD{
				"@type":                "MerchantReturnPolicy",
				"applicableCountry":    "US",
				"returnPolicyCategory": "https://schema.org/MerchantReturnFiniteReturnWindow",
				"merchantReturnDays":   30,
				"returnMethod":         "https://schema.org/ReturnByMail",
				"returnFees":           "https://schema.org/FreeReturn",
			},
			"shippingDetails": JSONLD{
				"@type": "OfferShippingDetails",
				"shippingRate": JSONLD{
					"@type":    "MonetaryAmount",
					"value":    0,
					"currency": "USD",
				},
				"shippingDestination": JSONLD{
					"@type":          "DefinedRegion",
					"addressCountry": "US",
				},
				"deliveryTime": JSONLD{
					"@type": "ShippingDeliveryTime",
					"handlingTime": JSONLD{
						"@type":    "QuantitativeValue",
						"minValue": 1,
						"maxValue": 3,
						"unitCode": "d",
					},
					"transitTime": JSONLD{
						"@type":    "QuantitativeValue",
						"minValue": 3,
						"maxValue": 7,
						"unitCode": "d",
					},
				},
			},
		},
	}
}

// BreadcrumbItem is one step of the navigation path.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BuildBreadcrumbJSONLD describes the navigation path to the current page.
func BuildBreadcrumbJSONLD(items []BreadcrumbItem) JSONLD {
	elements := make([]JSONLD, len(items))
	for i, item := range items {
		elements[i] = JSONLD{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     item.Name,
			"item":     item.Item,
		}
	}
	return JSONLD{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": elements,
	}
}
