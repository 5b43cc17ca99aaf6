package cart

import (
	"time"

	"gorm.io/gorm"

	cartEntity "sculpturesly.GO/model/entity/cart"
)

// CartRepository persists locally held session carts (the storefront's own
// store, used when no commerce backend is configured).
type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// AutoMigrate creates the cart tables. The migrate command does the same via
// SQL migrations; AutoMigrate covers tests and dev setups.
func (r *CartRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&cartEntity.Cart{}, &cartEntity.CartItem{})
}

// GetBySession returns the session's cart with items, or nil when absent.
func (r *CartRepository) GetBySession(sessionKey string) (*cartEntity.Cart, error) {
	var c cartEntity.Cart
	err := r.db.Preload("Items").Where("session_key = ?", sessionKey).First(&c).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOrCreate returns the session's cart, creating an empty ACTIVE one first
// if none exists.
func (r *CartRepository) GetOrCreate(sessionKey string) (*cartEntity.Cart, error) {
	c, err := r.GetBySession(sessionKey)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}
	c = &cartEntity.Cart{
		SessionKey: sessionKey,
		Status:     cartEntity.StatusActive,
		TotalPrice: "0.00",
	}
	if err := r.db.Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads a cart with its items.
func (r *CartRepository) Reload(cartID uint) (*cartEntity.Cart, error) {
	var c cartEntity.Cart
	if err := r.db.Preload("Items").First(&c, cartID).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateItem appends a new line item.
func (r *CartRepository) CreateItem(item *cartEntity.CartItem) error {
	return r.db.Create(item).Error
}

// SaveItem updates a line item in place.
func (r *CartRepository) SaveItem(item *cartEntity.CartItem) error {
	return r.db.Save(item).Error
}

// DeleteItem removes one line item. Deleting an id the cart does not hold is
// a no-op.
func (r *CartRepository) DeleteItem(cartID, itemID uint) error {
	return r.db.Where("cart_id = ? AND id = ?", cartID, itemID).Delete(&cartEntity.CartItem{}).Error
}

// ClearItems removes every line item of a cart.
func (r *CartRepository) ClearItems(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&cartEntity.CartItem{}).Error
}

// SaveTotals stores recomputed aggregates and bumps updated_at.
func (r *CartRepository) SaveTotals(c *cartEntity.Cart) error {
	return r.db.Model(&cartEntity.Cart{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"total_price": c.TotalPrice,
		"total_items": c.TotalItems,
		"updated_at":  time.Now(),
	}).Error
}

// MarkAbandoned flips ACTIVE carts idle for longer than idleFor to ABANDONED.
// Returns the number of carts affected.
func (r *CartRepository) MarkAbandoned(idleFor time.Duration) (int64, error) {
	cutoff := time.Now().Add(-idleFor)
	res := r.db.Model(&cartEntity.Cart{}).
		Where("status = ? AND updated_at < ?", cartEntity.StatusActive, cutoff).
		Update("status", cartEntity.StatusAbandoned)
	return res.RowsAffected, res.Error
}
