package service

import (
	"context"
	"fmt"
	"sync"

	"iraxas/internal/cache"
	"iraxas/internal/domain"
	"iraxas/internal/payment"
)

// mockCache потокобезопасный кэш товаров в памяти
type mockCache struct {
	mu  sync.RWMutex
	m   map[string]domain.Product
	err error
}

func newMockCache() *mockCache {
	return &mockCache{m: make(map[string]domain.Product)}
}

func (c *mockCache) Get(_ context.Context, productID string) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.err != nil {
		return nil, c.err
	}
	p, ok := c.m[productID]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	cp := p
	return &cp, nil
}

func (c *mockCache) Set(_ context.Context, p *domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.m[p.ID] = *p
	return nil
}

func (c *mockCache) Delete(_ context.Context, productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	delete(c.m, productID)
	return nil
}

func (c *mockCache) get(productID string) *domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.m[productID]
	if !ok {
		return nil
	}
	cp := p
	return &cp
}

// mockGateway запоминает последний запрос и выдаёт последовательные id
type mockGateway struct {
	mu          sync.Mutex
	n           int
	lastAmount  int64
	lastReceipt string
	err         error
}

func (g *mockGateway) CreateOrder(_ context.Context, amount int64, currency, receipt string) (*payment.GatewayOrder, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return nil, g.err
	}
	g.n++
	g.lastAmount = amount
	g.lastReceipt = receipt
	return &payment.GatewayOrder{
		ID:       fmt.Sprintf("order_gw_%d", g.n),
		Amount:   amount,
		Currency: currency,
	}, nil
}

// mockMailer собирает отправленные письма
type mockMailer struct {
	mu     sync.Mutex
	to     []string
	bodies []string
	err    error
}

func (m *mockMailer) Send(to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.to = append(m.to, to)
	m.bodies = append(m.bodies, htmlBody)
	return nil
}

func (m *mockMailer) lastBody() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.bodies) == 0 {
		return ""
	}
	return m.bodies[len(m.bodies)-1]
}
