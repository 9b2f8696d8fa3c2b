package service

import (
	"context"
	"sync"

	"quebrada-backend/internal/domain"
)

// memCarts is an in-memory stand-in for the redis cart repository.
type memCarts struct {
	mu    sync.Mutex
	carts map[string][]domain.CartItem
}

func newMemCarts() *memCarts {
	return &memCarts{carts: map[string][]domain.CartItem{}}
}

func (m *memCarts) Get(_ context.Context, cartID string) ([]domain.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := m.carts[cartID]
	out := make([]domain.CartItem, len(items))
	copy(out, items)
	return out, nil
}

func (m *memCarts) Save(_ context.Context, cartID string, items []domain.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]domain.CartItem, len(items))
	copy(cp, items)
	m.carts[cartID] = cp
	return nil
}

func (m *memCarts) Delete(_ context.Context, cartID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, cartID)
	return nil
}

type memProducts struct {
	byID map[string]domain.Product
}

func newMemProducts(ps ...domain.Product) *memProducts {
	m := &memProducts{byID: map[string]domain.Product{}}
	for _, p := range ps {
		m.byID[p.ID] = p
	}
	return m
}

func (m *memProducts) Create(p *domain.Product) error {
	m.byID[p.ID] = *p
	return nil
}

func (m *memProducts) FindByID(id string) (*domain.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memProducts) List(domain.ProductFilter) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range m.byID {
		out = append(out, p)
	}
	return out, nil
}

func (m *memProducts) Update(p *domain.Product) error {
	m.byID[p.ID] = *p
	return nil
}

func (m *memProducts) Delete(id string) error {
	if _, ok := m.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}
