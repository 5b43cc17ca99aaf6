package cart

import (
	"context"
	"fmt"
	"log"

	"sculpturesly.GO/client"
	cartEntity "sculpturesly.GO/model/entity/cart"
)

// RemoteService proxies every cart operation to the commerce backend. The
// server owns all totals; each response replaces the session cell wholesale
// rather than merging deltas.
type RemoteService struct {
	api *client.Client
}

func NewRemoteService(api *client.Client) *RemoteService {
	return &RemoteService{api: api}
}

func (r *RemoteService) Fetch(ctx context.Context, s *Session, opts *client.Options) error {
	done := s.beginOp()
	defer done()

	var c cartEntity.Cart
	if err := r.api.GetJSON(ctx, "/api/carts/", nil, &c, opts); err != nil {
		log.Println("Failed to fetch cart:", err)
		return err
	}
	s.setCart(&c)
	return nil
}

func (r *RemoteService) Add(ctx context.Context, s *Session, variantID uint, quantity int, opts *client.Options) error {
	done := s.beginOp()
	defer done()

	payload := cartEntity.AddToCartPayload{ProductVariantID: variantID, Quantity: quantity}
	var c cartEntity.Cart
	if err := r.api.PostJSON(ctx, "/api/carts/items/", payload, &c, opts); err != nil {
		log.Println("Failed to add to cart:", err)
		return err
	}
	s.setCart(&c)
	s.OpenDrawer()
	return nil
}

func (r *RemoteService) UpdateQuantity(ctx context.Context, s *Session, itemID uint, quantity int, opts *client.Options) error {
	done := s.beginOp()
	defer done()

	payload := cartEntity.UpdateCartItemPayload{Quantity: quantity}
	var c cartEntity.Cart
	path := fmt.Sprintf("/api/carts/%d/update/", itemID)
	if err := r.api.PatchJSON(ctx, path, payload, &c, opts); err != nil {
		log.Println("Failed to update item:", err)
		return err
	}
	s.setCart(&c)
	return nil
}

func (r *RemoteService) Remove(ctx context.Context, s *Session, itemID uint, opts *client.Options) error {
	done := s.beginOp()
	defer done()

	var c cartEntity.Cart
	path := fmt.Sprintf("/api/carts/%d/remove/", itemID)
	if err := r.api.Delete(ctx, path, &c, opts); err != nil {
		log.Println("Failed to remove item:", err)
		return err
	}
	s.setCart(&c)
	return nil
}

// Clear resets the session cell only; it deliberately makes no backend call,
// so the server-side cart survives until its own expiry. See DESIGN.md.
func (r *RemoteService) Clear(ctx context.Context, s *Session) error {
	c := s.currentCart()
	if c == nil {
		return nil
	}
	c.Items = nil
	c.TotalItems = 0
	c.TotalPrice = "0.00"
	s.setCart(c)
	return nil
}
