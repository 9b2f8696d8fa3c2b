package service

import (
	"context"
	"errors"

	"quebrada-backend/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// CartService applies the cart reconciliation rules on top of the
// whole-cart storage contract: one line per product, quantity bounded by
// live stock below the unlimited sentinel, lines removed at zero. There
// is no locking across mutations; last write wins.
type CartService struct {
	carts    domain.CartRepository
	products domain.ProductRepository
}

func NewCartService(carts domain.CartRepository, products domain.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

func (s *CartService) Get(ctx context.Context, cartID string) ([]domain.CartItem, error) {
	return s.carts.Get(ctx, cartID)
}

// Replace stores a client-assembled cart verbatim (the bulk save
// contract the storefront uses to sync local state).
func (s *CartService) Replace(ctx context.Context, cartID string, items []domain.CartItem) error {
	return s.carts.Save(ctx, cartID, items)
}

// Add puts one unit of the product into the cart. Adding an existing
// line increments it; a line already at the stock bound, or a product
// with zero stock, leaves the cart unchanged.
func (s *CartService) Add(ctx context.Context, cartID, productID string) ([]domain.CartItem, error) {
	p, err := s.products.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	items, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if p.Stock == 0 {
		return items, nil
	}

	for i := range items {
		if items[i].ProductID == productID {
			if items[i].Quantity >= p.Stock && p.Stock < domain.UnlimitedStock {
				return items, nil
			}
			items[i].Quantity++
			return items, s.carts.Save(ctx, cartID, items)
		}
	}

	items = append(items, snapshot(p, 1))
	return items, s.carts.Save(ctx, cartID, items)
}

// ChangeQuantity adjusts a line by delta. Dropping to zero or below
// removes the line; exceeding the stock bound is a no-op.
func (s *CartService) ChangeQuantity(ctx context.Context, cartID, productID string, delta int) ([]domain.CartItem, error) {
	p, err := s.products.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	items, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ProductID != productID {
			continue
		}
		q := items[i].Quantity + delta
		switch {
		case q <= 0:
			items = append(items[:i], items[i+1:]...)
		case q > p.Stock && p.Stock < domain.UnlimitedStock:
			return items, nil
		default:
			items[i].Quantity = q
		}
		return items, s.carts.Save(ctx, cartID, items)
	}
	return items, nil
}

func (s *CartService) Remove(ctx context.Context, cartID, productID string) ([]domain.CartItem, error) {
	items, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	kept := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	return kept, s.carts.Save(ctx, cartID, kept)
}

func (s *CartService) Clear(ctx context.Context, cartID string) error {
	return s.carts.Delete(ctx, cartID)
}

func snapshot(p *domain.Product, qty int) domain.CartItem {
	return domain.CartItem{
		ProductID:   p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Description: p.Description,
		Image:       p.Image,
		Stock:       p.Stock,
		Featured:    p.Featured,
		Quantity:    qty,
	}
}
