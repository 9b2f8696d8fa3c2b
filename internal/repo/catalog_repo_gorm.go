package repo

import (
	"errors"

	"gorm.io/gorm"

	"quebrada-backend/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(p *domain.Product) error { return r.db.Create(p).Error }

func (r *ProductRepo) FindByID(id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *ProductRepo) List(f domain.ProductFilter) ([]domain.Product, error) {
	q := r.db.Model(&domain.Product{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Featured != nil {
		q = q.Where("featured = ?", *f.Featured)
	}
	var products []domain.Product
	err := q.Order("created_at desc").Find(&products).Error
	return products, err
}

func (r *ProductRepo) Update(p *domain.Product) error { return r.db.Save(p).Error }

func (r *ProductRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&domain.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type CategoryRepo struct{ db *gorm.DB }

func NewCategoryRepo(db *gorm.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) Create(c *domain.Category) error { return r.db.Create(c).Error }

func (r *CategoryRepo) FindByID(id string) (*domain.Category, error) {
	var c domain.Category
	err := r.db.First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *CategoryRepo) List() ([]domain.Category, error) {
	var categories []domain.Category
	err := r.db.Order("created_at asc").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepo) Update(c *domain.Category) error { return r.db.Save(c).Error }

func (r *CategoryRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&domain.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
