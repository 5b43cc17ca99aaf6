package jobs

import (
	"context"
	"log"
	"time"

	"sculpturesly.GO/client"
	"sculpturesly.GO/config"
	"sculpturesly.GO/cron"
	cartRepo "sculpturesly.GO/model/repository/cart"
	catalogService "sculpturesly.GO/service/catalog"
)

// Carts idle longer than this are flipped to ABANDONED by the sweep.
const abandonedAfter = 72 * time.Hour

func init() {
	cron.Register("abandonedcarts", "@hourly", SweepAbandonedCarts)
	cron.Register("refreshreference", "@every 10m", RefreshReference)
}

// SweepAbandonedCarts marks idle active carts as abandoned in the local store.
func SweepAbandonedCarts(args ...string) {
	db, err := config.NewDB()
	if err != nil {
		log.Println("Abandoned cart sweep: db:", err)
		return
	}
	n, err := cartRepo.NewCartRepository(db).MarkAbandoned(abandonedAfter)
	if err != nil {
		log.Println("Abandoned cart sweep failed:", err)
		return
	}
	if n > 0 {
		log.Printf("Abandoned cart sweep: marked %d carts", n)
	}
}

// RefreshReference drops cached reference data and re-warms the hot keys so
// the next page render does not pay the backend round trip.
func RefreshReference(args ...string) {
	api := client.New()
	if !api.HasBackend() {
		return
	}
	svc := catalogService.NewService(api)
	svc.InvalidateReference()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := svc.Categories(ctx, nil); err != nil {
		log.Println("Reference refresh: categories:", err)
	}
	if _, err := svc.Countries(ctx, nil); err != nil {
		log.Println("Reference refresh: countries:", err)
	}
	if _, err := svc.DimensionPresets(ctx, "all", nil); err != nil {
		log.Println("Reference refresh: dimension presets:", err)
	}
}
