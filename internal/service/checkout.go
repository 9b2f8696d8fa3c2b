package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"quebrada-backend/internal/domain"
)

var ErrEmptyCart = errors.New("cart is empty")

// CheckoutService turns a cart into a human-readable order summary and a
// messaging deep link, then clears the cart. Stock is NOT decremented
// here: orders are fulfilled manually over the chat handoff, so the
// stored stock count stays advisory.
type CheckoutService struct {
	carts     domain.CartRepository
	storeName string
	waNumber  string // digits only, e.g. "5511999999999"
}

func NewCheckoutService(carts domain.CartRepository, storeName, waNumber string) *CheckoutService {
	return &CheckoutService{carts: carts, storeName: storeName, waNumber: waNumber}
}

type Order struct {
	Summary     string  `json:"summary"`
	Total       float64 `json:"total"`
	WhatsAppURL string  `json:"whatsappUrl,omitempty"`
}

func (s *CheckoutService) Checkout(ctx context.Context, cartID string) (*Order, error) {
	items, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New order from %s:\n\n", s.storeName)
	var total float64
	for _, it := range items {
		line := it.Price * float64(it.Quantity)
		total += line
		fmt.Fprintf(&b, "- %s\n", it.Name)
		fmt.Fprintf(&b, "  %dx R$ %.2f = R$ %.2f\n", it.Quantity, it.Price, line)
	}
	fmt.Fprintf(&b, "\nTotal: R$ %.2f", total)

	order := &Order{Summary: b.String(), Total: total}
	if s.waNumber != "" {
		order.WhatsAppURL = "https://wa.me/" + s.waNumber + "?text=" + url.QueryEscape(order.Summary)
	}

	if err := s.carts.Delete(ctx, cartID); err != nil {
		return nil, err
	}
	return order, nil
}
