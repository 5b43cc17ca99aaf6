package order

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"sculpturesly.GO/api"
	"sculpturesly.GO/client"
	orderEntity "sculpturesly.GO/model/entity/order"
	catalogService "sculpturesly.GO/service/catalog"
)

func init() {
	api.RegisterModule(RegisterOrderRoutes)
}

// RegisterOrderRoutes relays checkout to the commerce backend. Addresses are
// validated against the supported-country list before the round trip, so the
// shopper gets an immediate error instead of a backend rejection.
func RegisterOrderRoutes(apiGroup *echo.Group, _ *gorm.DB) {
	backend := client.New()
	countries := catalogService.NewService(backend)
	g := apiGroup.Group("/orders")

	opts := func(c echo.Context) *client.Options {
		return &client.Options{Incoming: c.Request()}
	}

	badCountry := func(addrs ...*orderEntity.OrderAddress) string {
		for _, a := range addrs {
			if a != nil && !countries.IsValidCountryCode(a.Country) {
				return a.Country
			}
		}
		return ""
	}

	// POST /api/orders/ – create the order from the session's cart
	g.POST("/", func(c echo.Context) error {
		var payload orderEntity.OrderCreatePayload
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if payload.Email == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
		}
		if _, err := countries.Countries(c.Request().Context(), opts(c)); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		if bad := badCountry(&payload.ShippingAddress, payload.BillingAddress); bad != "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unsupported country: " + bad})
		}

		var created orderEntity.OrderRead
		if err := backend.PostJSON(c.Request().Context(), "/api/orders/", payload, &created, opts(c)); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, created)
	})

	// GET /api/orders/:number/ – order detail (thank-you page, status checks)
	g.GET("/:number/", func(c echo.Context) error {
		var out orderEntity.OrderRead
		if err := backend.GetJSON(c.Request().Context(), "/api/orders/"+c.Param("number")+"/", nil, &out, opts(c)); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, out)
	})

	// GET /api/orders/:number/prefill/ – past shipping address in write shape,
	// for pre-filling the checkout form on a repeat purchase
	g.GET("/:number/prefill/", func(c echo.Context) error {
		var out orderEntity.OrderRead
		if err := backend.GetJSON(c.Request().Context(), "/api/orders/"+c.Param("number")+"/", nil, &out, opts(c)); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, out.ShippingAddress.WriteShape())
	})
}
