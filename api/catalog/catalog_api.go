package catalog

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"sculpturesly.GO/api"
	"sculpturesly.GO/client"
	catalogEntity "sculpturesly.GO/model/entity/catalog"
	catalogService "sculpturesly.GO/service/catalog"
)

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

func listParams(c echo.Context) catalogEntity.ProductListParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
	return catalogEntity.ProductListParams{
		Page:           page,
		PageSize:       pageSize,
		Search:         c.QueryParam("search"),
		Ordering:       c.QueryParam("ordering"),
		CategorySlug:   c.QueryParam("category"),
		CollectionSlug: c.QueryParam("collection"),
	}
}

func RegisterCatalogRoutes(apiGroup *echo.Group, _ *gorm.DB) {
	svc := catalogService.NewService(client.New())

	opts := func(c echo.Context) *client.Options {
		return &client.Options{Incoming: c.Request()}
	}

	g := apiGroup.Group("/products")

	// GET /api/products/ – paginated list with filters
	g.GET("/", func(c echo.Context) error {
		res, err := svc.Products(c.Request().Context(), listParams(c), opts(c))
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, res)
	})

	// GET /api/products/categories/ – full category tree
	g.GET("/categories/", func(c echo.Context) error {
		tree, err := svc.Categories(c.Request().Context(), opts(c))
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, tree)
	})

	// GET /api/products/categories/:slug/ – one category with SEO metadata
	g.GET("/categories/:slug/", func(c echo.Context) error {
		cat, err := svc.Category(c.Request().Context(), c.Param("slug"), opts(c))
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cat)
	})

	// GET /api/products/filters/dimensions/ – size presets, ?category= scoped
	g.GET("/filters/dimensions/", func(c echo.Context) error {
		presets, err := svc.DimensionPresets(c.Request().Context(), c.QueryParam("category"), opts(c))
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, presets)
	})

	// GET /api/products/:slug/ – product detail
	g.GET("/:slug/", func(c echo.Context) error {
		p, err := svc.Product(c.Request().Context(), c.Param("slug"), opts(c))
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, p)
	})

	// GET /api/common/supported-countries/ – shipping country reference list
	apiGroup.GET("/common/supported-countries/", func(c echo.Context) error {
		countries, err := svc.Countries(c.Request().Context(), opts(c))
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, countries)
	})
}
