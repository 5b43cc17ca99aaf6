package cart

import (
	"time"

	"gorm.io/datatypes"
)

// Cart status lifecycle. The cron sweep moves idle ACTIVE carts to ABANDONED.
const (
	StatusActive    = "ACTIVE"
	StatusAbandoned = "ABANDONED"
)

// CartVariant is an immutable snapshot of the purchased variant, embedded in
// the cart item so the cart display survives catalog changes.
type CartVariant struct {
	ID           uint              `gorm:"column:variant_id" json:"id"`
	SKU          string            `gorm:"column:sku" json:"sku"`
	ProductTitle string            `gorm:"column:product_title" json:"product_title"`
	ProductSlug  string            `gorm:"column:product_slug" json:"product_slug"`
	Price        string            `gorm:"column:price" json:"price"`
	Image        string            `gorm:"column:image" json:"image"`
	Attributes   datatypes.JSONMap `gorm:"column:attributes" json:"attributes"`
}

type CartItem struct {
	ID         uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID     uint        `gorm:"index" json:"-"`
	Quantity   int         `gorm:"not null" json:"quantity"`
	TotalPrice string      `gorm:"column:total_price" json:"total_price"`
	Variant    CartVariant `gorm:"embedded" json:"variant"`
}

func (CartItem) TableName() string {
	return "cart_item"
}

type Cart struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionKey string     `gorm:"column:session_key;uniqueIndex" json:"session_key"`
	Status     string     `gorm:"not null;default:ACTIVE" json:"status"`
	Items      []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	TotalPrice string     `gorm:"column:total_price;default:0.00" json:"total_price"`
	TotalItems int        `gorm:"column:total_items" json:"total_items"`
	CreatedAt  time.Time  `json:"-"`
	UpdatedAt  time.Time  `json:"-"`
}

func (Cart) TableName() string {
	return "cart"
}

// FindItem returns the item with the given id, or nil.
func (c *Cart) FindItem(itemID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// FindItemByVariant returns the item holding the given variant, or nil.
// Add-to-cart merges into this item instead of creating a duplicate line.
func (c *Cart) FindItemByVariant(variantID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].Variant.ID == variantID {
			return &c.Items[i]
		}
	}
	return nil
}

// AddToCartPayload is the add-item request body.
type AddToCartPayload struct {
	ProductVariantID uint `json:"product_variant_id"`
	Quantity         int  `json:"quantity"`
}

// UpdateCartItemPayload is the quantity-update request body.
type UpdateCartItemPayload struct {
	Quantity int `json:"quantity"`
}
