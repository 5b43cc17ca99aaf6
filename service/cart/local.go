package cart

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/datatypes"

	"sculpturesly.GO/client"
	cartEntity "sculpturesly.GO/model/entity/cart"
	cartRepo "sculpturesly.GO/model/repository/cart"
)

// LocalService keeps session carts in the storefront's own sqlite store.
// It runs when no commerce backend is configured: variant snapshots are
// synthesized with mock pricing, and all aggregates are recomputed here.
type LocalService struct {
	repo *cartRepo.CartRepository
}

func NewLocalService(repo *cartRepo.CartRepository) *LocalService {
	return &LocalService{repo: repo}
}

func (l *LocalService) Fetch(ctx context.Context, s *Session, _ *client.Options) error {
	done := s.beginOp()
	defer done()

	c, err := l.repo.GetOrCreate(s.Key())
	if err != nil {
		log.Println("Failed to fetch cart:", err)
		return err
	}
	s.setCart(c)
	return nil
}

// mockVariant synthesizes a variant snapshot with randomized pricing, standing
// in for the catalog the backend would normally resolve the variant against.
func mockVariant(variantID uint) cartEntity.CartVariant {
	price := fmt.Sprintf("%.2f", gofakeit.Price(50, 150))
	title := gofakeit.ProductName()
	return cartEntity.CartVariant{
		ID:           variantID,
		SKU:          fmt.Sprintf("SKU-%d", variantID),
		ProductTitle: title,
		ProductSlug:  strings.ToLower(strings.ReplaceAll(title, " ", "-")),
		Price:        price,
		Image:        gofakeit.ImageURL(200, 200),
		Attributes:   datatypes.JSONMap{"Material": gofakeit.RandomString([]string{"Bronze", "Marble", "Terracotta"})},
	}
}

func (l *LocalService) Add(ctx context.Context, s *Session, variantID uint, quantity int, _ *client.Options) error {
	done := s.beginOp()
	defer done()

	c, err := l.repo.GetOrCreate(s.Key())
	if err != nil {
		log.Println("Failed to add to cart:", err)
		return err
	}

	if existing := c.FindItemByVariant(variantID); existing != nil {
		existing.Quantity += quantity
		existing.TotalPrice = LineTotal(existing.Variant.Price, existing.Quantity)
		if err := l.repo.SaveItem(existing); err != nil {
			log.Println("Failed to add to cart:", err)
			return err
		}
	} else {
		variant := mockVariant(variantID)
		item := cartEntity.CartItem{
			CartID:     c.ID,
			Quantity:   quantity,
			TotalPrice: LineTotal(variant.Price, quantity),
			Variant:    variant,
		}
		if err := l.repo.CreateItem(&item); err != nil {
			log.Println("Failed to add to cart:", err)
			return err
		}
	}
	return l.reconcile(s, c.ID)
}

func (l *LocalService) UpdateQuantity(ctx context.Context, s *Session, itemID uint, quantity int, _ *client.Options) error {
	done := s.beginOp()
	defer done()

	c := s.currentCart()
	if c == nil {
		return nil
	}
	item := c.FindItem(itemID)
	if item == nil {
		return nil
	}
	item.Quantity = quantity
	item.TotalPrice = LineTotal(item.Variant.Price, quantity)
	if err := l.repo.SaveItem(item); err != nil {
		log.Println("Failed to update item:", err)
		return err
	}
	return l.reconcile(s, c.ID)
}

func (l *LocalService) Remove(ctx context.Context, s *Session, itemID uint, _ *client.Options) error {
	done := s.beginOp()
	defer done()

	c := s.currentCart()
	if c == nil {
		return nil
	}
	if err := l.repo.DeleteItem(c.ID, itemID); err != nil {
		log.Println("Failed to remove item:", err)
		return err
	}
	return l.reconcile(s, c.ID)
}

func (l *LocalService) Clear(ctx context.Context, s *Session) error {
	c := s.currentCart()
	if c == nil {
		return nil
	}
	if err := l.repo.ClearItems(c.ID); err != nil {
		log.Println("Failed to clear cart:", err)
		return err
	}
	return l.reconcile(s, c.ID)
}

// reconcile re-reads the cart, rebuilds aggregates wholesale and stores both
// the rows and the session cell.
func (l *LocalService) reconcile(s *Session, cartID uint) error {
	c, err := l.repo.Reload(cartID)
	if err != nil {
		log.Println("Failed to reload cart:", err)
		return err
	}
	RecalculateTotals(c)
	if err := l.repo.SaveTotals(c); err != nil {
		log.Println("Failed to save cart totals:", err)
		return err
	}
	s.setCart(c)
	return nil
}
