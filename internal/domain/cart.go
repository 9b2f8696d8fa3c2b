package domain

import "context"

// CartItem is a denormalized product snapshot taken at add-time, plus a
// quantity. Carts live in the key-value store under an anonymous cart id,
// not in the relational store.
type CartItem struct {
	ProductID   string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
	Stock       int     `json:"stock"`
	Featured    bool    `json:"featured"`
	Quantity    int     `json:"quantity"`
}

// CartRepository persists whole carts; every mutation rewrites the full
// value and refreshes its expiry. Last write wins.
type CartRepository interface {
	Get(ctx context.Context, cartID string) ([]CartItem, error) // empty slice when absent or expired
	Save(ctx context.Context, cartID string, items []CartItem) error
	Delete(ctx context.Context, cartID string) error
}
