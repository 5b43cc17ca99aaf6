package track

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sculpturesly.GO/client"
	cartEntity "sculpturesly.GO/model/entity/cart"
	catalogEntity "sculpturesly.GO/model/entity/catalog"
)

type captured struct {
	mu     sync.Mutex
	paths  []string
	bodies []map[string]interface{}
}

func (c *captured) add(path string, body map[string]interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paths = append(c.paths, path)
	c.bodies = append(c.bodies, body)
}

func (c *captured) last() (string, map[string]interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paths[len(c.paths)-1], c.bodies[len(c.bodies)-1]
}

func reporterUnderTest(t *testing.T) (*Reporter, *captured) {
	t.Helper()
	got := &captured{}
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		got.add(r.URL.Path, body)
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(backend.Close)
	return &Reporter{api: client.NewWithBase(backend.URL), currency: "EUR"}, got
}

func testProduct() *catalogEntity.ProductDetail {
	return &catalogEntity.ProductDetail{
		ID:        42,
		Title:     "The Silent Void",
		Slug:      "the-silent-void",
		BasePrice: "100.00",
		Categories: []catalogEntity.Category{
			{ID: 1, Title: "Sculptures", Slug: "sculptures"},
		},
	}
}

func testCart() *cartEntity.Cart {
	return &cartEntity.Cart{
		ID:         1,
		TotalItems: 3,
		TotalPrice: "690.00",
		Items: []cartEntity.CartItem{
			{ID: 101, Quantity: 1, Variant: cartEntity.CartVariant{ID: 1, Price: "450.00"}},
			{ID: 102, Quantity: 2, Variant: cartEntity.CartVariant{ID: 2, Price: "120.00"}},
		},
	}
}

func TestViewContent(t *testing.T) {
	r, got := reporterUnderTest(t)

	ev := r.ViewContent(testProduct(), "SCULPT-001", "https://sculpturesly.com/product/the-silent-void")
	r.Flush()

	assert.Equal(t, EventViewContent, ev.Name)
	assert.NotEmpty(t, ev.EventID)
	assert.Equal(t, []string{"42"}, ev.Payload.ContentIDs)
	assert.Equal(t, 100.0, ev.Payload.Value)
	assert.Equal(t, "Sculptures", ev.Payload.ContentCategory)

	path, body := got.last()
	assert.Equal(t, "/api/facebook/conversions/view-content/", path)
	assert.Equal(t, ev.EventID, body["event_id"])
	assert.Equal(t, "the-silent-void", body["product_slug"])
	assert.Equal(t, "https://sculpturesly.com/product/the-silent-void", body["url"])
}

func TestAddToCartValueScalesWithQuantity(t *testing.T) {
	r, got := reporterUnderTest(t)

	ev := r.AddToCart(testProduct(), 3, "SCULPT-001", "https://sculpturesly.com/product/the-silent-void")
	r.Flush()

	assert.Equal(t, 300.0, ev.Payload.Value, "value = base_price × quantity")
	assert.Equal(t, "SCULPT-001", ev.Payload.ContentSKU)

	path, body := got.last()
	assert.Equal(t, "/api/facebook/conversions/add-to-cart/", path)
	assert.Equal(t, float64(3), body["quantity"])
	assert.Equal(t, ev.EventID, body["event_id"])
}

func TestInitiateCheckout(t *testing.T) {
	r, got := reporterUnderTest(t)

	ev := r.InitiateCheckout(testCart(), "https://sculpturesly.com/checkout")
	r.Flush()

	assert.Equal(t, []string{"1", "2"}, ev.Payload.ContentIDs)
	assert.Equal(t, 3, ev.Payload.NumItems)
	assert.Equal(t, 690.0, ev.Payload.Value)

	path, body := got.last()
	assert.Equal(t, "/api/facebook/conversions/initiate-checkout/", path)
	assert.Equal(t, ev.EventID, body["event_id"])
}

func TestPurchaseSharesOrderNumberAsEventID(t *testing.T) {
	r, got := reporterUnderTest(t)

	ev := r.Purchase(testCart(), "ORD-2026-0042", "https://sculpturesly.com/thank-you")
	r.Flush()

	// Browser and server paths must carry the identical correlation id,
	// derived from the order number.
	require.Equal(t, "ORD-2026-0042", ev.EventID)
	assert.Equal(t, "ORD-2026-0042", ev.Payload.OrderID)

	_, body := got.last()
	assert.Equal(t, "ORD-2026-0042", body["event_id"])
	assert.Equal(t, "ORD-2026-0042", body["order_number"])
}

func TestGeneratedEventIDsAreUnique(t *testing.T) {
	r, _ := reporterUnderTest(t)

	a := r.ViewContent(testProduct(), "", "u")
	b := r.ViewContent(testProduct(), "", "u")
	r.Flush()

	assert.NotEqual(t, a.EventID, b.EventID)
}

func TestNoBackendSkipsServerSend(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	r := &Reporter{api: client.NewWithBase(""), currency: "EUR"}
	ev := r.ViewContent(testProduct(), "", "https://sculpturesly.com/product/the-silent-void")
	r.Flush()

	// The browser event still carries a usable id; no delivery is attempted,
	// so nothing reaches the client's failure log.
	assert.Equal(t, EventViewContent, ev.Name)
	assert.NotEmpty(t, ev.EventID)
	assert.NotContains(t, buf.String(), "API request failed")
}

func TestServerFailureDoesNotFailCaller(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer backend.Close()

	r := &Reporter{api: client.NewWithBase(backend.URL), currency: "EUR"}
	ev := r.AddToCart(testProduct(), 1, "SCULPT-001", "u")
	r.Flush()

	// Fire-and-forget: the browser event is returned regardless.
	assert.Equal(t, EventAddToCart, ev.Name)
	assert.NotEmpty(t, ev.EventID)
}
