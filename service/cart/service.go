package cart

import (
	"context"
	"sync"
	"time"

	"sculpturesly.GO/client"
	cartEntity "sculpturesly.GO/model/entity/cart"
)

// Service is the single mutation surface for the active shopping cart.
// Two implementations exist: Remote proxies every operation to the commerce
// backend and replaces local state wholesale with the server's response
// (server-authoritative reconciliation); Local keeps session carts in the
// storefront's own sqlite store and recomputes aggregates itself.
//
// Quantity must be a positive integer; callers validate, the service does not.
// Operations are not sequenced against each other: when two run concurrently
// for one session, the later completion wins.
type Service interface {
	// Fetch loads the session's cart, creating an empty one when absent.
	Fetch(ctx context.Context, s *Session, opts *client.Options) error
	// Add puts quantity units of a variant in the cart, merging into an
	// existing line item for the same variant.
	Add(ctx context.Context, s *Session, variantID uint, quantity int, opts *client.Options) error
	// UpdateQuantity replaces a line item's quantity.
	UpdateQuantity(ctx context.Context, s *Session, itemID uint, quantity int, opts *client.Options) error
	// Remove deletes a line item. Unknown ids are a no-op.
	Remove(ctx context.Context, s *Session, itemID uint, opts *client.Options) error
	// Clear resets the session's cart to empty.
	Clear(ctx context.Context, s *Session) error
}

// State is a point-in-time snapshot of a session's cart cell.
type State struct {
	Cart    *cartEntity.Cart
	Loading bool
	Open    bool
}

// Session is the per-session reactive cell: the cart, a busy flag, and the
// drawer visibility flag. All access goes through its methods.
type Session struct {
	mu       sync.Mutex
	key      string
	cart     *cartEntity.Cart
	loading  bool
	open     bool
	lastSeen time.Time
}

func (s *Session) Key() string { return s.key }

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{Cart: s.cart, Loading: s.loading, Open: s.open}
}

func (s *Session) setCart(c *cartEntity.Cart) {
	s.mu.Lock()
	s.cart = c
	s.mu.Unlock()
}

func (s *Session) currentCart() *cartEntity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

// beginOp raises the busy flag; the returned func always clears it, so a
// failed operation can never leave the UI stuck in a loading state.
func (s *Session) beginOp() func() {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}
}

func (s *Session) OpenDrawer() {
	s.mu.Lock()
	s.open = true
	s.mu.Unlock()
}

func (s *Session) CloseDrawer() {
	s.mu.Lock()
	s.open = false
	s.mu.Unlock()
}

func (s *Session) ToggleDrawer() {
	s.mu.Lock()
	s.open = !s.open
	s.mu.Unlock()
}

func (s *Session) touch(t time.Time) {
	s.mu.Lock()
	s.lastSeen = t
	s.mu.Unlock()
}

func (s *Session) seen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Idle cells are evicted so the map cannot grow without bound under a flood
// of new session keys. Losing a cell only costs a refetch: both variants
// rebuild it from their store on the next request.
const (
	sessionIdleTTL  = 24 * time.Hour
	evictCheckAbove = 1024
)

// Manager hands out the one Session cell per session key.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Session returns the cell for a session key, creating it on first use.
// Before growing past evictCheckAbove cells it sweeps out idle ones.
func (m *Manager) Session(key string) *Session {
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[key]
	if !ok {
		if len(m.sessions) >= evictCheckAbove {
			m.evictLocked(now.Add(-sessionIdleTTL))
		}
		s = &Session{key: key}
		m.sessions[key] = s
	}
	s.touch(now)
	return s
}

// EvictIdle drops cells untouched for idleFor and returns how many went.
func (m *Manager) EvictIdle(idleFor time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.evictLocked(time.Now().Add(-idleFor))
}

func (m *Manager) evictLocked(cutoff time.Time) int {
	evicted := 0
	for key, s := range m.sessions {
		if s.seen().Before(cutoff) {
			delete(m.sessions, key)
			evicted++
		}
	}
	return evicted
}

// Len reports the number of live session cells.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
