package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"quebrada-backend/internal/core/cache"
	"quebrada-backend/internal/domain"
	"quebrada-backend/internal/transport/http/ez"
)

const featuredCacheTTL = 60 * time.Second

// mountCatalogReads exposes the public, unauthenticated catalog.
func mountCatalogReads(api *gin.RouterGroup, d APIDeps) {
	e := ez.New(api, d.Log)

	type productQ struct {
		Category string `form:"category"`
		Featured *bool  `form:"featured"`
	}
	ez.Register(e, d.DB, ez.Action[productQ, []domain.Product]{
		Method: http.MethodGet,
		Path:   "/products",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, tx *gorm.DB, in *productQ) ([]domain.Product, error) {
			products, err := productRepo(tx).List(domain.ProductFilter{
				Category: in.Category,
				Featured: in.Featured,
			})
			if err != nil {
				return nil, ez.Internal("list products failed", err)
			}
			return products, nil
		},
	})

	ez.Register(e, d.DB, ez.Action[struct{}, *domain.Product]{
		Method: http.MethodGet,
		Path:   "/products/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (*domain.Product, error) {
			p, err := productRepo(tx).FindByID(c.Param("id"))
			if err != nil {
				return nil, ez.Internal("load product failed", err)
			}
			if p == nil {
				return nil, ez.NotFound("product not found")
			}
			return p, nil
		},
	})

	// Home page strip; cached briefly since it is the hottest read.
	ez.Register(e, d.DB, ez.Action[struct{}, []domain.Product]{
		Method: http.MethodGet,
		Path:   "/products/featured",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) ([]domain.Product, error) {
			featured := true
			load := func() ([]domain.Product, error) {
				return productRepo(tx).List(domain.ProductFilter{Featured: &featured})
			}
			if d.Cache == nil {
				products, err := load()
				if err != nil {
					return nil, ez.Internal("list featured failed", err)
				}
				return products, nil
			}
			products, err := cache.GetOrLoadJSON(d.Cache, c.Request.Context(), "products:featured", featuredCacheTTL,
				func(context.Context) (*[]domain.Product, error) {
					ps, e := load()
					return &ps, e
				})
			if err != nil {
				return nil, ez.Internal("list featured failed", err)
			}
			if products == nil {
				return []domain.Product{}, nil
			}
			return *products, nil
		},
	})

	ez.Register(e, d.DB, ez.Action[struct{}, []domain.Category]{
		Method: http.MethodGet,
		Path:   "/categories",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) ([]domain.Category, error) {
			categories, err := categoryRepo(tx).List()
			if err != nil {
				return nil, ez.Internal("list categories failed", err)
			}
			return categories, nil
		},
	})
}
