package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"quebrada-backend/internal/domain"
	"quebrada-backend/internal/transport/http/ez"
	"quebrada-backend/pkg/utils"
)

type productIn struct {
	Name        string  `json:"name"        binding:"required,max=191"`
	Price       float64 `json:"price"       binding:"required,gte=0"`
	Category    string  `json:"category"    binding:"required,max=64"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
	Stock       int     `json:"stock"       binding:"gte=0"`
	Featured    bool    `json:"featured"`
}

func (in *productIn) apply(p *domain.Product) {
	p.Name = in.Name
	p.Price = in.Price
	p.Category = in.Category
	p.Description = in.Description
	p.Image = in.Image
	p.Stock = in.Stock
	p.Featured = in.Featured
}

type categoryIn struct {
	Name        string `json:"name"         binding:"required,max=64"`
	DisplayName string `json:"display_name" binding:"required,max=128"`
	Icon        string `json:"icon"         binding:"max=16"`
}

func mountAdminCatalog(g *gin.RouterGroup, d AdminDeps) {
	e := ez.New(g, d.Log)

	ez.Register(e, d.DB, ez.Action[struct{}, []domain.Product]{
		Method: http.MethodGet, Path: "/products", Binder: ez.BindNone,
		Auth: true, Admin: true,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) ([]domain.Product, error) {
			products, err := productRepo(tx).List(domain.ProductFilter{})
			if err != nil {
				return nil, ez.Internal("list products failed", err)
			}
			return products, nil
		},
	})

	ez.Register(e, d.DB, ez.Action[productIn, *domain.Product]{
		Method: http.MethodPost, Path: "/products", Binder: ez.BindJSON,
		Auth: true, Admin: true, Status: http.StatusCreated,
		Handler: func(c *gin.Context, tx *gorm.DB, in *productIn) (*domain.Product, error) {
			p := &domain.Product{ID: utils.NewID()}
			in.apply(p)
			if err := productRepo(tx).Create(p); err != nil {
				return nil, ez.Internal("create product failed", err)
			}
			return p, nil
		},
	})

	ez.Register(e, d.DB, ez.Action[productIn, *domain.Product]{
		Method: http.MethodPut, Path: "/products/:id", Binder: ez.BindJSON,
		Auth: true, Admin: true,
		Handler: func(c *gin.Context, tx *gorm.DB, in *productIn) (*domain.Product, error) {
			repo := productRepo(tx)
			p, err := repo.FindByID(c.Param("id"))
			if err != nil {
				return nil, ez.Internal("load product failed", err)
			}
			if p == nil {
				return nil, ez.NotFound("product not found")
			}
			in.apply(p)
			if err := repo.Update(p); err != nil {
				return nil, ez.Internal("update product failed", err)
			}
			return p, nil
		},
	})

	ez.Register(e, d.DB, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete, Path: "/products/:id", Binder: ez.BindNone,
		Auth: true, Admin: true,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (gin.H, error) {
			if err := productRepo(tx).Delete(c.Param("id")); err != nil {
				if err == domain.ErrNotFound {
					return nil, ez.NotFound("product not found")
				}
				return nil, ez.Internal("delete product failed", err)
			}
			return gin.H{"deleted": c.Param("id")}, nil
		},
	})

	ez.Register(e, d.DB, ez.Action[struct{}, []domain.Category]{
		Method: http.MethodGet, Path: "/categories", Binder: ez.BindNone,
		Auth: true, Admin: true,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) ([]domain.Category, error) {
			categories, err := categoryRepo(tx).List()
			if err != nil {
				return nil, ez.Internal("list categories failed", err)
			}
			return categories, nil
		},
	})

	ez.Register(e, d.DB, ez.Action[categoryIn, *domain.Category]{
		Method: http.MethodPost, Path: "/categories", Binder: ez.BindJSON,
		Auth: true, Admin: true, Status: http.StatusCreated,
		Handler: func(c *gin.Context, tx *gorm.DB, in *categoryIn) (*domain.Category, error) {
			cat := &domain.Category{
				ID:          utils.NewID(),
				Name:        in.Name,
				DisplayName: in.DisplayName,
				Icon:        in.Icon,
			}
			if err := categoryRepo(tx).Create(cat); err != nil {
				return nil, ez.Internal("create category failed", err)
			}
			return cat, nil
		},
	})

	ez.Register(e, d.DB, ez.Action[categoryIn, *domain.Category]{
		Method: http.MethodPut, Path: "/categories/:id", Binder: ez.BindJSON,
		Auth: true, Admin: true,
		Handler: func(c *gin.Context, tx *gorm.DB, in *categoryIn) (*domain.Category, error) {
			repo := categoryRepo(tx)
			cat, err := repo.FindByID(c.Param("id"))
			if err != nil {
				return nil, ez.Internal("load category failed", err)
			}
			if cat == nil {
				return nil, ez.NotFound("category not found")
			}
			cat.Name = in.Name
			cat.DisplayName = in.DisplayName
			cat.Icon = in.Icon
			if err := repo.Update(cat); err != nil {
				return nil, ez.Internal("update category failed", err)
			}
			return cat, nil
		},
	})

	// Deleting a category does not touch products; their category names
	// simply stop resolving until reassigned.
	ez.Register(e, d.DB, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete, Path: "/categories/:id", Binder: ez.BindNone,
		Auth: true, Admin: true,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (gin.H, error) {
			if err := categoryRepo(tx).Delete(c.Param("id")); err != nil {
				if err == domain.ErrNotFound {
					return nil, ez.NotFound("category not found")
				}
				return nil, ez.Internal("delete category failed", err)
			}
			return gin.H{"deleted": c.Param("id")}, nil
		},
	})
}
