package router

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quebrada-backend/internal/domain"
	"quebrada-backend/internal/repo"
)

func TestRegisterAndLogin(t *testing.T) {
	e, db, _, _ := newAPI(t)

	w := doJSON(t, e, http.MethodPost, "/api/v1/register", "", map[string]any{
		"name": "Maria", "email": "Maria@Example.com", "password": "s3cret",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[domain.User](t, w)
	assert.Equal(t, "maria@example.com", created.Email)
	assert.Equal(t, "user", created.Role)
	assert.NotContains(t, w.Body.String(), "s3cret")
	assert.NotContains(t, w.Body.String(), "password_hash")

	stored, err := repo.NewUserRepo(db).FindByEmail("maria@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)

	w = doJSON(t, e, http.MethodPost, "/api/v1/register", "", map[string]any{
		"name": "Maria 2", "email": "maria@example.com", "password": "other",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, e, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email": "maria@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, e, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email": "maria@example.com", "password": "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	out := decode[struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}](t, w)
	require.NotEmpty(t, out.Token)

	w = doJSON(t, e, http.MethodGet, "/api/v1/me", out.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[domain.User](t, w)
	assert.Equal(t, created.ID, me.ID)

	w = doJSON(t, e, http.MethodGet, "/api/v1/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	e, _, _, _ := newAPI(t)

	w := doJSON(t, e, http.MethodPost, "/api/v1/register", "", map[string]any{
		"name": "No Email", "password": "x",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, e, http.MethodPost, "/api/v1/register", "", map[string]any{
		"name": "Bad Email", "email": "not-an-email", "password": "x",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogReads(t *testing.T) {
	e, db, _, _ := newAPI(t)
	p1 := seedProduct(t, db, "Espresso", 9.5, 10, true)
	seedProduct(t, db, "Latte", 14, 10, false)

	w := doJSON(t, e, http.MethodGet, "/api/v1/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	all := decode[[]domain.Product](t, w)
	assert.Len(t, all, 2)

	w = doJSON(t, e, http.MethodGet, "/api/v1/products?featured=true", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	featured := decode[[]domain.Product](t, w)
	require.Len(t, featured, 1)
	assert.Equal(t, p1.ID, featured[0].ID)

	w = doJSON(t, e, http.MethodGet, "/api/v1/products/featured", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Product](t, w), 1)

	w = doJSON(t, e, http.MethodGet, "/api/v1/products/"+p1.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Espresso", decode[domain.Product](t, w).Name)

	w = doJSON(t, e, http.MethodGet, "/api/v1/products/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, e, http.MethodGet, "/api/v1/categories", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestContactForm(t *testing.T) {
	e, db, _, _ := newAPI(t)

	w := doJSON(t, e, http.MethodPost, "/api/v1/contact", "", map[string]any{
		"name": "Ana", "email": "ana@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, e, http.MethodPost, "/api/v1/contact", "", map[string]any{
		"name": "Ana", "email": "ana@example.com", "message": "do you deliver?",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	msgs, err := repo.NewMessageRepo(db).List()
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "do you deliver?", msgs[0].Message)
}

type cartResp struct {
	Cart []domain.CartItem `json:"cart"`
}

func TestCartFlow(t *testing.T) {
	e, db, _, _ := newAPI(t)
	p := seedProduct(t, db, "Stout", 25, 5, false)
	const cartID = "cart-abc"

	w := doJSON(t, e, http.MethodGet, "/api/v1/cart", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, e, http.MethodGet, "/api/v1/cart?cartId="+cartID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[cartResp](t, w).Cart)

	for i := 0; i < 6; i++ {
		w = doJSON(t, e, http.MethodPost, "/api/v1/cart/items", "", map[string]any{
			"cartId": cartID, "productId": p.ID,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}
	got := decode[cartResp](t, w)
	require.Len(t, got.Cart, 1)
	assert.Equal(t, 5, got.Cart[0].Quantity, "quantity stops at available stock")

	w = doJSON(t, e, http.MethodPost, "/api/v1/cart/items", "", map[string]any{
		"cartId": cartID, "productId": "missing",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, e, http.MethodPut, "/api/v1/cart/items/"+p.ID, "", map[string]any{
		"cartId": cartID, "delta": -2,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, decode[cartResp](t, w).Cart[0].Quantity)

	w = doJSON(t, e, http.MethodPut, "/api/v1/cart/items/"+p.ID, "", map[string]any{
		"cartId": cartID, "delta": -10,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[cartResp](t, w).Cart, "dropping to zero removes the line")

	w = doJSON(t, e, http.MethodPost, "/api/v1/cart", "", map[string]any{
		"cartId": cartID,
		"cart": []map[string]any{
			{"id": p.ID, "name": p.Name, "price": p.Price, "stock": p.Stock, "quantity": 2},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, e, http.MethodDelete, "/api/v1/cart/items/"+p.ID+"?cartId="+cartID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[cartResp](t, w).Cart)

	w = doJSON(t, e, http.MethodDelete, "/api/v1/cart?cartId="+cartID, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCheckout(t *testing.T) {
	e, db, _, carts := newAPI(t)
	p := seedProduct(t, db, "Porter", 30, domain.UnlimitedStock, false)
	const cartID = "cart-chk"

	w := doJSON(t, e, http.MethodPost, "/api/v1/cart/checkout", "", map[string]any{"cartId": cartID})
	assert.Equal(t, http.StatusBadRequest, w.Code, "empty cart cannot check out")

	for i := 0; i < 2; i++ {
		w = doJSON(t, e, http.MethodPost, "/api/v1/cart/items", "", map[string]any{
			"cartId": cartID, "productId": p.ID,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w = doJSON(t, e, http.MethodPost, "/api/v1/cart/checkout", "", map[string]any{"cartId": cartID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	order := decode[struct {
		Summary     string  `json:"summary"`
		Total       float64 `json:"total"`
		WhatsAppURL string  `json:"whatsappUrl"`
	}](t, w)
	assert.InDelta(t, 60.0, order.Total, 0.001)
	assert.Contains(t, order.Summary, "Porter")
	assert.Contains(t, order.Summary, "Total: R$ 60.00")
	assert.True(t, strings.HasPrefix(order.WhatsAppURL, "https://wa.me/5511999999999?text="))

	left, err := carts.Get(t.Context(), cartID)
	require.NoError(t, err)
	assert.Empty(t, left, "checkout clears the cart")

	stored, err := repo.NewProductRepo(db).FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UnlimitedStock, stored.Stock, "checkout never touches stock")
}
