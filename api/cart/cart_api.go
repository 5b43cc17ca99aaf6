package cart

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"sculpturesly.GO/api"
	"sculpturesly.GO/client"
	"sculpturesly.GO/config"
	cartEntity "sculpturesly.GO/model/entity/cart"
	cartRepo "sculpturesly.GO/model/repository/cart"
	cartService "sculpturesly.GO/service/cart"
)

func init() {
	api.RegisterModule(RegisterCartRoutes)
}

// newService picks the cart variant: proxy to the commerce backend when one
// is configured, local sqlite store with mock pricing otherwise.
func newService(db *gorm.DB) cartService.Service {
	backend := client.New()
	if backend.HasBackend() {
		return cartService.NewRemoteService(backend)
	}
	return cartService.NewLocalService(cartRepo.NewCartRepository(db))
}

// sessionKey reads the session cookie, minting and setting one on first visit.
// Only keys we issued (uuids) are accepted; anything else gets a fresh key, so
// forged cookie values never become session map keys.
func sessionKey(c echo.Context) string {
	if cookie, err := c.Cookie(config.SessionCookieName); err == nil {
		if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
			return cookie.Value
		}
	}
	key := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     config.SessionCookieName,
		Value:    key,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return key
}

type cartResponse struct {
	Cart    *cartEntity.Cart `json:"cart"`
	Loading bool             `json:"loading"`
	Open    bool             `json:"open"`
}

func respond(c echo.Context, s *cartService.Session) error {
	snap := s.Snapshot()
	return c.JSON(http.StatusOK, cartResponse{Cart: snap.Cart, Loading: snap.Loading, Open: snap.Open})
}

func RegisterCartRoutes(apiGroup *echo.Group, db *gorm.DB) {
	svc := newService(db)
	sessions := cartService.NewManager()
	g := apiGroup.Group("/carts")

	session := func(c echo.Context) *cartService.Session {
		return sessions.Session(sessionKey(c))
	}
	opts := func(c echo.Context) *client.Options {
		return &client.Options{Incoming: c.Request()}
	}

	// GET /api/carts/ – current cart, created empty on first read
	g.GET("/", func(c echo.Context) error {
		s := session(c)
		if err := svc.Fetch(c.Request().Context(), s, opts(c)); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return respond(c, s)
	})

	// POST /api/carts/items/ – add a variant, merging same-variant lines
	g.POST("/items/", func(c echo.Context) error {
		var body cartEntity.AddToCartPayload
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.ProductVariantID == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "product_variant_id is required"})
		}
		if body.Quantity <= 0 {
			body.Quantity = 1
		}

		s := session(c)
		if s.Snapshot().Cart == nil {
			if err := svc.Fetch(c.Request().Context(), s, opts(c)); err != nil {
				return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
			}
		}
		if err := svc.Add(c.Request().Context(), s, body.ProductVariantID, body.Quantity, opts(c)); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		s.OpenDrawer()
		return respond(c, s)
	})

	// PATCH /api/carts/:id/update/ – replace a line item's quantity;
	// zero removes the line
	g.PATCH("/:id/update/", func(c echo.Context) error {
		itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
		}
		var body cartEntity.UpdateCartItemPayload
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.Quantity < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity must not be negative"})
		}

		s := session(c)
		if err := ensureCart(c, svc, s, opts(c)); err != nil {
			return err
		}
		if body.Quantity == 0 {
			if err := svc.Remove(c.Request().Context(), s, uint(itemID), opts(c)); err != nil {
				return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
			}
			return respond(c, s)
		}
		if err := svc.UpdateQuantity(c.Request().Context(), s, uint(itemID), body.Quantity, opts(c)); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return respond(c, s)
	})

	// DELETE /api/carts/:id/remove/ – drop a line item (unknown id is a no-op)
	g.DELETE("/:id/remove/", func(c echo.Context) error {
		itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
		}

		s := session(c)
		if err := ensureCart(c, svc, s, opts(c)); err != nil {
			return err
		}
		if err := svc.Remove(c.Request().Context(), s, uint(itemID), opts(c)); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return respond(c, s)
	})

	// POST /api/carts/clear/ – empty the cart
	g.POST("/clear/", func(c echo.Context) error {
		s := session(c)
		if err := ensureCart(c, svc, s, opts(c)); err != nil {
			return err
		}
		if err := svc.Clear(c.Request().Context(), s); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return respond(c, s)
	})

	// POST /api/carts/drawer/ – flip the mini-cart drawer
	g.POST("/drawer/", func(c echo.Context) error {
		var body struct {
			Open *bool `json:"open"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		s := session(c)
		switch {
		case body.Open == nil:
			s.ToggleDrawer()
		case *body.Open:
			s.OpenDrawer()
		default:
			s.CloseDrawer()
		}
		return respond(c, s)
	})
}

func ensureCart(c echo.Context, svc cartService.Service, s *cartService.Session, opts *client.Options) error {
	if s.Snapshot().Cart != nil {
		return nil
	}
	if err := svc.Fetch(c.Request().Context(), s, opts); err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	return nil
}
