package domain

import "time"

// UnlimitedStock marks a product whose stock is not tracked; cart
// quantity bounds only apply below this value.
const UnlimitedStock = 999

type Product struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:191" json:"name"`
	Price       float64   `json:"price"`
	Category    string    `gorm:"size:64;index" json:"category"` // Category.Name, no FK
	Description string    `json:"description"`
	Image       *string   `json:"image"`
	Stock       int       `json:"stock"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Product) TableName() string { return "products" }

type Category struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:64" json:"name"`
	DisplayName string    `gorm:"size:128" json:"display_name"`
	Icon        string    `gorm:"size:16" json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Category) TableName() string { return "categories" }

// ProductFilter narrows List; zero value lists everything.
type ProductFilter struct {
	Category string
	Featured *bool
}

type ProductRepository interface {
	Create(p *Product) error
	FindByID(id string) (*Product, error)
	List(f ProductFilter) ([]Product, error) // newest first
	Update(p *Product) error
	Delete(id string) error
}

type CategoryRepository interface {
	Create(c *Category) error
	FindByID(id string) (*Category, error)
	List() ([]Category, error) // oldest first
	Update(c *Category) error
	// Delete removes the category only. Products referencing it keep the
	// dangling name; see the orphaned-reference test in the router package.
	Delete(id string) error
}
