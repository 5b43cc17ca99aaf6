package facebook

import (
	"log"
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"sculpturesly.GO/api"
	"sculpturesly.GO/client"
	"sculpturesly.GO/config"
)

func init() {
	api.RegisterModule(RegisterConversionRoutes)
}

// RegisterConversionRoutes relays server-side conversion events to the
// commerce backend, which holds the CAPI access token. Without a backend the
// events are accepted and dropped, so pages behave the same in local mode.
func RegisterConversionRoutes(apiGroup *echo.Group, _ *gorm.DB) {
	backend := client.New()
	g := apiGroup.Group("/facebook")

	g.POST("/conversions/:event/", func(c echo.Context) error {
		event := c.Param("event")
		if !slices.Contains(config.ConversionEvents(), event) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown conversion event"})
		}

		var body map[string]interface{}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		if !backend.HasBackend() {
			if config.IsDev() {
				log.Printf("Conversion event %s dropped (no backend): event_id=%v", event, body["event_id"])
			}
			return c.JSON(http.StatusAccepted, echo.Map{"success": true})
		}

		opts := &client.Options{Incoming: c.Request()}
		if err := backend.PostJSON(c.Request().Context(), "/api/facebook/conversions/"+event+"/", body, nil, opts); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})
}
