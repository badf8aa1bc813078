package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"iraxas/internal/domain"
)

// MemoryStore объединённое in-memory хранилище для тестов и локального запуска
type MemoryStore struct {
	mu           sync.RWMutex
	productsByID map[string]domain.Product
	usersByID    map[string]domain.User
	cartsByUser  map[string]domain.Cart
	ordersByID   map[string]domain.Order
	codesByEmail map[string]domain.VerificationCode
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		productsByID: make(map[string]domain.Product),
		usersByID:    make(map[string]domain.User),
		cartsByUser:  make(map[string]domain.Cart),
		ordersByID:   make(map[string]domain.Order),
		codesByEmail: make(map[string]domain.VerificationCode),
	}
}

// Ensure interfaces
var _ ProductRepository = (*MemoryStore)(nil)

// ProductRepository implementation
func (m *MemoryStore) Create(ctx context.Context, p *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = uuid.NewString()
	m.productsByID[p.ID] = *p
	return nil
}

func (m *MemoryStore) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.productsByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	// return copy
	cp := p
	return &cp, nil
}

func (m *MemoryStore) Update(ctx context.Context, p *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.productsByID[p.ID]; !ok {
		return ErrNotFound
	}
	m.productsByID[p.ID] = *p
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.productsByID[id]; !ok {
		return ErrNotFound
	}
	delete(m.productsByID, id)
	return nil
}

func (m *MemoryStore) List(ctx context.Context, f ProductFilter) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Product, 0)
	for _, p := range m.productsByID {
		if !containsIgnoreCase(p.Name, f.NameSubstring) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// helper: case-insensitive contains
func containsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// UserRepository implementation on wrapper type
type MemoryUsers struct{ store *MemoryStore }

func NewMemoryUsers(store *MemoryStore) *MemoryUsers { return &MemoryUsers{store: store} }

var _ UserRepository = (*MemoryUsers)(nil)

func (mu *MemoryUsers) Create(ctx context.Context, u *domain.User) error {
	mu.store.mu.Lock()
	defer mu.store.mu.Unlock()
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	mu.store.usersByID[u.ID] = *u
	return nil
}

func (mu *MemoryUsers) GetByID(ctx context.Context, id string) (*domain.User, error) {
	mu.store.mu.RLock()
	defer mu.store.mu.RUnlock()
	u, ok := mu.store.usersByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (mu *MemoryUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	mu.store.mu.RLock()
	defer mu.store.mu.RUnlock()
	for _, u := range mu.store.usersByID {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (mu *MemoryUsers) Update(ctx context.Context, u *domain.User) error {
	mu.store.mu.Lock()
	defer mu.store.mu.Unlock()
	if _, ok := mu.store.usersByID[u.ID]; !ok {
		return ErrNotFound
	}
	mu.store.usersByID[u.ID] = *u
	return nil
}

// VerificationCodeRepository implementation
type MemoryCodes struct{ store *MemoryStore }

func NewMemoryCodes(store *MemoryStore) *MemoryCodes { return &MemoryCodes{store: store} }

var _ VerificationCodeRepository = (*MemoryCodes)(nil)

func (mc *MemoryCodes) Upsert(ctx context.Context, vc *domain.VerificationCode) error {
	mc.store.mu.Lock()
	defer mc.store.mu.Unlock()
	mc.store.codesByEmail[vc.Email] = *vc
	return nil
}

func (mc *MemoryCodes) Find(ctx context.Context, email, code string) (*domain.VerificationCode, error) {
	mc.store.mu.RLock()
	defer mc.store.mu.RUnlock()
	vc, ok := mc.store.codesByEmail[email]
	if !ok || vc.Code != code {
		return nil, ErrNotFound
	}
	cp := vc
	return &cp, nil
}

func (mc *MemoryCodes) Delete(ctx context.Context, email string) error {
	mc.store.mu.Lock()
	defer mc.store.mu.Unlock()
	delete(mc.store.codesByEmail, email)
	return nil
}

// CartRepository implementation
type MemoryCarts struct{ store *MemoryStore }

func NewMemoryCarts(store *MemoryStore) *MemoryCarts { return &MemoryCarts{store: store} }

var _ CartRepository = (*MemoryCarts)(nil)

func (mc *MemoryCarts) GetByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	mc.store.mu.RLock()
	defer mc.store.mu.RUnlock()
	c, ok := mc.store.cartsByUser[userID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := c
	cp.Items = append([]domain.CartItem(nil), c.Items...)
	return &cp, nil
}

func (mc *MemoryCarts) Upsert(ctx context.Context, cart *domain.Cart) error {
	mc.store.mu.Lock()
	defer mc.store.mu.Unlock()
	now := time.Now().UTC()
	if cart.ID == "" {
		cart.ID = uuid.NewString()
		cart.CreatedAt = now
	}
	cart.UpdatedAt = now
	mc.store.cartsByUser[cart.UserID] = *cart
	return nil
}

// OrderRepository implementation
type MemoryOrders struct{ store *MemoryStore }

func NewMemoryOrders(store *MemoryStore) *MemoryOrders { return &MemoryOrders{store: store} }

var _ OrderRepository = (*MemoryOrders)(nil)

func (mo *MemoryOrders) Create(ctx context.Context, o *domain.Order) error {
	mo.store.mu.Lock()
	defer mo.store.mu.Unlock()
	o.ID = uuid.NewString()
	o.CreatedAt = time.Now().UTC()
	o.UpdatedAt = o.CreatedAt
	mo.store.ordersByID[o.ID] = *o
	return nil
}

func (mo *MemoryOrders) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	mo.store.mu.RLock()
	defer mo.store.mu.RUnlock()
	o, ok := mo.store.ordersByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := o
	return &cp, nil
}

func (mo *MemoryOrders) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	mo.store.mu.RLock()
	defer mo.store.mu.RUnlock()
	out := make([]domain.Order, 0)
	for _, o := range mo.store.ordersByID {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	// most recent first
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (mo *MemoryOrders) SetStatusByGatewayOrder(ctx context.Context, gatewayOrderID string, status domain.OrderStatus) error {
	return mo.setStatus(gatewayOrderID, "", status)
}

func (mo *MemoryOrders) SetStatusByGatewayOrderForUser(ctx context.Context, gatewayOrderID, userID string, status domain.OrderStatus) error {
	return mo.setStatus(gatewayOrderID, userID, status)
}

func (mo *MemoryOrders) setStatus(gatewayOrderID, userID string, status domain.OrderStatus) error {
	mo.store.mu.Lock()
	defer mo.store.mu.Unlock()
	for id, o := range mo.store.ordersByID {
		if o.GatewayOrderID != gatewayOrderID {
			continue
		}
		if userID != "" && o.UserID != userID {
			continue
		}
		o.Status = status
		o.UpdatedAt = time.Now().UTC()
		mo.store.ordersByID[id] = o
		return nil
	}
	return ErrNotFound
}
