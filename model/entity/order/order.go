package order

import catalogEntity "sculpturesly.GO/model/entity/catalog"

// OrderAddress is the write-side address shape: country is a bare code string.
type OrderAddress struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"` // e.g. "DE"
}

// OrderReadAddress is the read-side address shape: the backend expands the
// country code into a {code, name} object. Kept as a separate type on purpose;
// never a mutable variant of OrderAddress.
type OrderReadAddress struct {
	ID           uint                  `json:"id"`
	FirstName    string                `json:"first_name"`
	LastName     string                `json:"last_name"`
	Email        string                `json:"email"`
	Phone        string                `json:"phone"`
	AddressLine1 string                `json:"address_line_1"`
	AddressLine2 string                `json:"address_line_2,omitempty"`
	City         string                `json:"city"`
	State        string                `json:"state"`
	PostalCode   string                `json:"postal_code"`
	Country      catalogEntity.Country `json:"country"`
}

// WriteShape maps a read address back to the write shape, collapsing the
// country object to its code. Used when prefilling checkout from a past order.
func (a OrderReadAddress) WriteShape() OrderAddress {
	return OrderAddress{
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Email:        a.Email,
		Phone:        a.Phone,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		City:         a.City,
		State:        a.State,
		PostalCode:   a.PostalCode,
		Country:      a.Country.Code,
	}
}

type OrderCreatePayload struct {
	Email           string        `json:"email"`
	ShippingAddress OrderAddress  `json:"shipping_address"`
	BillingAddress  *OrderAddress `json:"billing_address,omitempty"`
}

type OrderItem struct {
	ID          uint                   `json:"id"`
	ProductSKU  string                 `json:"product_sku"`
	ProductName string                 `json:"product_name"`
	Attributes  map[string]interface{} `json:"attributes"`
	Quantity    int                    `json:"quantity"`
	UnitPrice   string                 `json:"unit_price"`
	TotalPrice  string                 `json:"total_price"`
}

type OrderRead struct {
	ID              uint              `json:"id"`
	OrderNumber     string            `json:"order_number"`
	Status          string            `json:"status"`
	StatusDisplay   string            `json:"status_display"`
	Email           string            `json:"email"`
	TotalAmount     string            `json:"total_amount"`
	CreatedAt       string            `json:"created_at"`
	ShippingAddress OrderReadAddress  `json:"shipping_address"`
	BillingAddress  *OrderReadAddress `json:"billing_address"`
	Items           []OrderItem       `json:"items"`
	IsPaid          bool              `json:"is_paid"`
}
