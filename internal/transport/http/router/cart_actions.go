package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"quebrada-backend/internal/domain"
	"quebrada-backend/internal/service"
	"quebrada-backend/internal/transport/http/ez"
)

// Cart endpoints are anonymous: the cart id is a client-generated token,
// not a user id, so none of these require a session.
func mountCartActions(api *gin.RouterGroup, d APIDeps, carts *service.CartService, checkout *service.CheckoutService) {
	e := ez.New(api, d.Log)

	type cartOut struct {
		Cart []domain.CartItem `json:"cart"`
	}
	wrap := func(items []domain.CartItem) cartOut {
		if items == nil {
			items = []domain.CartItem{}
		}
		return cartOut{Cart: items}
	}

	ez.Register(e, d.DB, ez.Action[struct{}, cartOut]{
		Method: http.MethodGet,
		Path:   "/cart",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (cartOut, error) {
			cartID := c.Query("cartId")
			if cartID == "" {
				return cartOut{}, ez.BadRequest("cartId is required")
			}
			items, err := carts.Get(c.Request.Context(), cartID)
			if err != nil {
				return cartOut{}, ez.Internal("load cart failed", err)
			}
			return wrap(items), nil
		},
	})

	type saveIn struct {
		CartID string            `json:"cartId" binding:"required"`
		Cart   []domain.CartItem `json:"cart"`
	}
	ez.Register(e, d.DB, ez.Action[saveIn, cartOut]{
		Method: http.MethodPost,
		Path:   "/cart",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, _ *gorm.DB, in *saveIn) (cartOut, error) {
			if err := carts.Replace(c.Request.Context(), in.CartID, in.Cart); err != nil {
				return cartOut{}, ez.Internal("save cart failed", err)
			}
			return wrap(in.Cart), nil
		},
	})

	type addIn struct {
		CartID    string `json:"cartId"    binding:"required"`
		ProductID string `json:"productId" binding:"required"`
	}
	ez.Register(e, d.DB, ez.Action[addIn, cartOut]{
		Method: http.MethodPost,
		Path:   "/cart/items",
		Binder: ez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, _ *gorm.DB, in *addIn) (cartOut, error) {
			items, err := carts.Add(c.Request.Context(), in.CartID, in.ProductID)
			if errors.Is(err, service.ErrProductNotFound) {
				return cartOut{}, ez.NotFound("product not found")
			}
			if err != nil {
				return cartOut{}, ez.Internal("add to cart failed", err)
			}
			return wrap(items), nil
		},
	})

	type changeIn struct {
		CartID string `json:"cartId" binding:"required"`
		Delta  int    `json:"delta"  binding:"required"`
	}
	ez.Register(e, d.DB, ez.Action[changeIn, cartOut]{
		Method: http.MethodPut,
		Path:   "/cart/items/:productId",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, _ *gorm.DB, in *changeIn) (cartOut, error) {
			items, err := carts.ChangeQuantity(c.Request.Context(), in.CartID, c.Param("productId"), in.Delta)
			if errors.Is(err, service.ErrProductNotFound) {
				return cartOut{}, ez.NotFound("product not found")
			}
			if err != nil {
				return cartOut{}, ez.Internal("update cart failed", err)
			}
			return wrap(items), nil
		},
	})

	ez.Register(e, d.DB, ez.Action[struct{}, cartOut]{
		Method: http.MethodDelete,
		Path:   "/cart/items/:productId",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (cartOut, error) {
			cartID := c.Query("cartId")
			if cartID == "" {
				return cartOut{}, ez.BadRequest("cartId is required")
			}
			items, err := carts.Remove(c.Request.Context(), cartID, c.Param("productId"))
			if err != nil {
				return cartOut{}, ez.Internal("update cart failed", err)
			}
			return wrap(items), nil
		},
	})

	ez.Register(e, d.DB, ez.Action[struct{}, cartOut]{
		Method: http.MethodDelete,
		Path:   "/cart",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (cartOut, error) {
			cartID := c.Query("cartId")
			if cartID == "" {
				return cartOut{}, ez.BadRequest("cartId is required")
			}
			if err := carts.Clear(c.Request.Context(), cartID); err != nil {
				return cartOut{}, ez.Internal("clear cart failed", err)
			}
			return wrap(nil), nil
		},
	})

	type checkoutIn struct {
		CartID string `json:"cartId" binding:"required"`
	}
	ez.Register(e, d.DB, ez.Action[checkoutIn, *service.Order]{
		Method: http.MethodPost,
		Path:   "/cart/checkout",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, _ *gorm.DB, in *checkoutIn) (*service.Order, error) {
			order, err := checkout.Checkout(c.Request.Context(), in.CartID)
			if errors.Is(err, service.ErrEmptyCart) {
				return nil, ez.BadRequest("cart is empty")
			}
			if err != nil {
				return nil, ez.Internal("checkout failed", err)
			}
			return order, nil
		},
	})
}
