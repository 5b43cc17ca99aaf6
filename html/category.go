package html

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"sculpturesly.GO/api"
	"sculpturesly.GO/client"
	"sculpturesly.GO/html/parts"
	catalogEntity "sculpturesly.GO/model/entity/catalog"
	catalogService "sculpturesly.GO/service/catalog"
	"sculpturesly.GO/seo"
)

const categoryPageSize = 20

func init() {
	api.RegisterHTMLModule(RegisterCategoryHTMLRoutes)
}

// RegisterCategoryHTMLRoutes renders the server-side category listing page
// with backend-precomputed SEO metadata and pagination.
func RegisterCategoryHTMLRoutes(e *echo.Echo, _ *gorm.DB) {
	svc := catalogService.NewService(client.New())

	e.GET("/category/:slug", func(c echo.Context) error {
		slug := c.Param("slug")
		opts := &client.Options{Incoming: c.Request()}

		cat, err := svc.Category(c.Request().Context(), slug, opts)
		if err != nil {
			if notFound(err) {
				return c.String(http.StatusNotFound, "Category not found")
			}
			return c.String(http.StatusBadGateway, "Error fetching category")
		}

		page := 1
		if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
			page = p
		}

		res, err := svc.Products(c.Request().Context(), catalogEntity.ProductListParams{
			Page:         page,
			PageSize:     categoryPageSize,
			CategorySlug: slug,
			Ordering:     c.QueryParam("ordering"),
		}, opts)
		if err != nil {
			return c.String(http.StatusBadGateway, "Error fetching products")
		}

		totalPages := (res.Count + categoryPageSize - 1) / categoryPageSize
		pageNumbers := make([]int, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			pageNumbers = append(pageNumbers, i)
		}

		url := pageURL("/category/" + slug)
		meta := seo.ResolveSeoTags(&cat.SeoMetadata)
		if len(meta) == 0 {
			meta = seo.BuildSeoMeta(seo.BuilderOptions{
				Title:       cat.Title,
				Description: cat.Description,
				ImageURL:    cat.Image,
				URL:         url,
			})
		}

		breadcrumbs := []seo.BreadcrumbItem{
			{Name: "Home", Item: pageURL("/")},
			{Name: cat.Title, Item: url},
		}

		return c.Render(http.StatusOK, "category.html", map[string]interface{}{
			"Category":     cat,
			"Products":     res.Results,
			"Meta":         meta,
			"BreadcrumbLD": seo.BuildBreadcrumbJSONLD(breadcrumbs),
			"Page":         page,
			"TotalPages":   totalPages,
			"PageNumbers":  pageNumbers,
			"CriticalCSS":  template.CSS(parts.GetCriticalCSSCached()),
		})
	})
}
