package track

import (
	"context"
	"log"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"sculpturesly.GO/client"
	"sculpturesly.GO/config"
	cartEntity "sculpturesly.GO/model/entity/cart"
	catalogEntity "sculpturesly.GO/model/entity/catalog"
)

// Pixel event names.
const (
	EventViewContent      = "ViewContent"
	EventAddToCart        = "AddToCart"
	EventInitiateCheckout = "InitiateCheckout"
	EventPurchase         = "Purchase"
)

// BrowserPayload is the fbq("track", ...) payload embedded in the rendered
// page for the in-browser pixel.
type BrowserPayload struct {
	ContentName     string   `json:"content_name,omitempty"`
	ContentIDs      []string `json:"content_ids,omitempty"`
	ContentType     string   `json:"content_type,omitempty"`
	Value           float64  `json:"value,omitempty"`
	Currency        string   `json:"currency,omitempty"`
	ContentCategory string   `json:"content_category,omitempty"`
	ContentSKU      string   `json:"content_sku,omitempty"`
	NumItems        int      `json:"num_items,omitempty"`
	OrderID         string   `json:"order_id,omitempty"`
}

// BrowserEvent pairs the payload with the event id the browser pixel must
// send, so the ad platform can de-duplicate it against the server-side call.
type BrowserEvent struct {
	Name    string         `json:"event"`
	EventID string         `json:"event_id"`
	Payload BrowserPayload `json:"payload"`
}

// Reporter fires commerce events down both delivery paths: it returns the
// browser payload for page embedding and posts the server-side conversion in
// the background. One generated event id is shared by both paths. At most one
// delivery attempt per call: no retry, no queue.
type Reporter struct {
	api      *client.Client
	currency string
	wg       sync.WaitGroup
}

func NewReporter(api *client.Client) *Reporter {
	currency := "EUR"
	if config.AppConfig != nil && config.AppConfig.Currency != "" {
		currency = config.AppConfig.Currency
	}
	return &Reporter{api: api, currency: currency}
}

// Flush waits for in-flight server-side sends (shutdown, tests).
func (r *Reporter) Flush() {
	r.wg.Wait()
}

// fire builds the shared-id event pair and launches the fire-and-forget
// server-side send. The send never blocks or fails the caller; its errors are
// logged in development only. Without a configured backend there is nowhere
// to deliver to, so only the browser event is produced.
func (r *Reporter) fire(name string, browser BrowserPayload, endpoint string, apiPayload map[string]interface{}, explicitEventID, pageURL string) BrowserEvent {
	eventID := explicitEventID
	if eventID == "" {
		eventID = uuid.NewString()
	}

	if !r.api.HasBackend() {
		return BrowserEvent{Name: name, EventID: eventID, Payload: browser}
	}

	body := make(map[string]interface{}, len(apiPayload)+2)
	for k, v := range apiPayload {
		body[k] = v
	}
	body["event_id"] = eventID
	body["url"] = pageURL

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := r.api.PostJSON(context.Background(), endpoint, body, nil, nil); err != nil {
			if config.IsDev() {
				log.Printf("[CAPI Error] %s: %v", name, err)
			}
		}
	}()

	return BrowserEvent{Name: name, EventID: eventID, Payload: browser}
}

func priceValue(price string) float64 {
	d, err := decimal.NewFromString(price)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}

// ViewContent reports a product detail view.
func (r *Reporter) ViewContent(product *catalogEntity.ProductDetail, variantSKU, pageURL string) BrowserEvent {
	category := ""
	if len(product.Categories) > 0 {
		category = product.Categories[0].Title
	}
	var sku interface{}
	if variantSKU != "" {
		sku = variantSKU
	}
	return r.fire(
		EventViewContent,
		BrowserPayload{
			ContentName:     product.Title,
			ContentIDs:      []string{strconv.FormatUint(uint64(product.ID), 10)},
			ContentType:     "product",
			Value:           priceValue(product.BasePrice),
			Currency:        r.currency,
			ContentCategory: category,
		},
		"/api/facebook/conversions/view-content/",
		map[string]interface{}{"product_slug": product.Slug, "variant_sku": sku},
		"",
		pageURL,
	)
}

// AddToCart reports quantity units of a variant going into the cart.
func (r *Reporter) AddToCart(product *catalogEntity.ProductDetail, quantity int, variantSKU, pageURL string) BrowserEvent {
	if quantity <= 0 {
		quantity = 1
	}
	value := decimal.NewFromFloat(priceValue(product.BasePrice)).
		Mul(decimal.NewFromInt(int64(quantity))).InexactFloat64()
	return r.fire(
		EventAddToCart,
		BrowserPayload{
			ContentName: product.Title,
			ContentIDs:  []string{strconv.FormatUint(uint64(product.ID), 10)},
			ContentType: "product",
			Value:       value,
			Currency:    r.currency,
			ContentSKU:  variantSKU,
		},
		"/api/facebook/conversions/add-to-cart/",
		map[string]interface{}{"variant_sku": variantSKU, "quantity": quantity},
		"",
		pageURL,
	)
}

func cartContentIDs(c *cartEntity.Cart) []string {
	ids := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		ids = append(ids, strconv.FormatUint(uint64(item.Variant.ID), 10))
	}
	return ids
}

// InitiateCheckout reports the checkout start for the whole cart.
func (r *Reporter) InitiateCheckout(c *cartEntity.Cart, pageURL string) BrowserEvent {
	return r.fire(
		EventInitiateCheckout,
		BrowserPayload{
			ContentIDs:  cartContentIDs(c),
			ContentType: "product",
			NumItems:    c.TotalItems,
			Value:       priceValue(c.TotalPrice),
			Currency:    r.currency,
		},
		"/api/facebook/conversions/initiate-checkout/",
		map[string]interface{}{},
		"",
		pageURL,
	)
}

// Purchase reports a completed order. The order number is the event id on
// both paths, keyed deliberately so replays of the same order de-duplicate.
func (r *Reporter) Purchase(c *cartEntity.Cart, orderNumber, pageURL string) BrowserEvent {
	return r.fire(
		EventPurchase,
		BrowserPayload{
			ContentIDs:  cartContentIDs(c),
			ContentType: "product",
			Value:       priceValue(c.TotalPrice),
			Currency:    r.currency,
			NumItems:    c.TotalItems,
			OrderID:     orderNumber,
		},
		"/api/facebook/conversions/purchase/",
		map[string]interface{}{"order_number": orderNumber},
		orderNumber,
		pageURL,
	)
}
