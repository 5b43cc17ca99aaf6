package html

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"sculpturesly.GO/api"
	"sculpturesly.GO/client"
	"sculpturesly.GO/config"
	"sculpturesly.GO/html/parts"
	catalogEntity "sculpturesly.GO/model/entity/catalog"
	catalogService "sculpturesly.GO/service/catalog"
	"sculpturesly.GO/seo"
	"sculpturesly.GO/service/track"
)

func init() {
	api.RegisterHTMLModule(RegisterProductHTMLRoutes)
}

func pageURL(path string) string {
	base := "https://sculpturesly.com"
	if config.AppConfig != nil && config.AppConfig.SiteURL != "" {
		base = config.AppConfig.SiteURL
	}
	return base + path
}

func notFound(err error) bool {
	var se *client.StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// RegisterProductHTMLRoutes renders the server-side product detail page:
// resolved meta tags, product and breadcrumb JSON-LD, and the browser pixel
// event for the ViewContent conversion.
func RegisterProductHTMLRoutes(e *echo.Echo, _ *gorm.DB) {
	svc := catalogService.NewService(client.New())
	reporter := track.NewReporter(client.New())

	e.GET("/product/:slug", func(c echo.Context) error {
		slug := c.Param("slug")
		opts := &client.Options{Incoming: c.Request()}

		p, err := svc.Product(c.Request().Context(), slug, opts)
		if err != nil {
			if notFound(err) {
				return c.String(http.StatusNotFound, "Product not found")
			}
			return c.String(http.StatusBadGateway, "Error fetching product")
		}

		url := pageURL("/product/" + slug)
		availability := seo.AvailabilityOutOfStock
		if p.Status == catalogEntity.StatusPublished {
			availability = seo.AvailabilityInStock
		}
		currency := "EUR"
		if config.AppConfig != nil && config.AppConfig.Currency != "" {
			currency = config.AppConfig.Currency
		}
		meta := seo.BuildSeoMeta(seo.BuilderOptions{
			Title:        p.Title,
			Description:  p.Description,
			ImageURL:     p.Thumbnail,
			URL:          url,
			Price:        &catalogEntity.SeoPrice{Amount: p.BasePrice, Currency: currency},
			Availability: availability,
		})

		breadcrumbs := []seo.BreadcrumbItem{{Name: "Home", Item: pageURL("/")}}
		if len(p.Categories) > 0 {
			cat := p.Categories[0]
			breadcrumbs = append(breadcrumbs, seo.BreadcrumbItem{Name: cat.Title, Item: pageURL("/category/" + cat.Slug)})
		}
		breadcrumbs = append(breadcrumbs, seo.BreadcrumbItem{Name: p.Title, Item: url})

		var defaultVariantID uint
		variantSKU := ""
		if len(p.Variants) > 0 {
			defaultVariantID = p.Variants[0].ID
			variantSKU = p.Variants[0].SKU
		}

		ev := reporter.ViewContent(p, variantSKU, url)

		return c.Render(http.StatusOK, "product.html", map[string]interface{}{
			"Product":          p,
			"Meta":             meta,
			"ProductLD":        seo.BuildProductJSONLD(p, url),
			"BreadcrumbLD":     seo.BuildBreadcrumbJSONLD(breadcrumbs),
			"Breadcrumbs":      breadcrumbs,
			"PixelEvent":       ev,
			"DefaultVariantID": defaultVariantID,
			"CriticalCSS":      template.CSS(parts.GetCriticalCSSCached()),
		})
	})
}
