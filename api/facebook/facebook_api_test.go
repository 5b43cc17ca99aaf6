package facebook

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"

	"sculpturesly.GO/config"
)

var (
	relayMu   sync.Mutex
	relayed   []string
	relayBody map[string]interface{}
)

func TestMain(m *testing.M) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		relayMu.Lock()
		relayed = append(relayed, r.URL.Path)
		json.NewDecoder(r.Body).Decode(&relayBody)
		relayMu.Unlock()
		w.Write([]byte(`{"success":true}`))
	}))
	defer backend.Close()

	os.Setenv("API_INTERNAL", backend.URL)
	config.LoadAppConfig()
	os.Exit(m.Run())
}

func setupConversionAPI() *echo.Echo {
	e := echo.New()
	RegisterConversionRoutes(e.Group("/api"), nil)
	return e
}

func post(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestConversionRelay(t *testing.T) {
	e := setupConversionAPI()

	rec := post(e, "/api/facebook/conversions/add-to-cart/", `{"event_id":"abc","variant_sku":"SCULPT-001","quantity":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	relayMu.Lock()
	defer relayMu.Unlock()
	if len(relayed) == 0 || relayed[len(relayed)-1] != "/api/facebook/conversions/add-to-cart/" {
		t.Fatalf("relayed paths = %v", relayed)
	}
	if relayBody["event_id"] != "abc" {
		t.Errorf("event_id = %v", relayBody["event_id"])
	}
}

func TestUnknownEventRejected(t *testing.T) {
	e := setupConversionAPI()

	rec := post(e, "/api/facebook/conversions/page-view/", `{}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for unknown event", rec.Code)
	}
}

func TestAllConfiguredEventsAccepted(t *testing.T) {
	e := setupConversionAPI()

	for _, event := range config.ConversionEvents() {
		rec := post(e, "/api/facebook/conversions/"+event+"/", `{"event_id":"x"}`)
		if rec.Code != http.StatusOK {
			t.Errorf("event %s: status = %d", event, rec.Code)
		}
	}
}
