package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryFurniture   Category = "Furniture"
	CategoryClothing    Category = "Clothing"
	CategoryBooks       Category = "Books"
	CategoryOther       Category = "Other"
)

var Categories = []Category{
	CategoryElectronics,
	CategoryFurniture,
	CategoryClothing,
	CategoryBooks,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

type Product struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	SellerID    uuid.UUID       `json:"sellerId"`
	Seller      *UserSummary    `json:"seller,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type CreateProductRequest struct {
	Title       string          `json:"title" validate:"required,max=200"`
	Description string          `json:"description" validate:"required,max=5000"`
	Category    Category        `json:"category" validate:"required,oneof=Electronics Furniture Clothing Books Other"`
	Price       decimal.Decimal `json:"price" validate:"required,gt=0"`
	Images      []string        `json:"images" validate:"required,min=1,dive,required,url"`
}

type UpdateProductRequest struct {
	Title       *string          `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description,omitempty" validate:"omitempty,min=1,max=5000"`
	Category    *Category        `json:"category,omitempty" validate:"omitempty,oneof=Electronics Furniture Clothing Books Other"`
	Price       *decimal.Decimal `json:"price,omitempty" validate:"omitempty,gt=0"`
	Images      []string         `json:"images,omitempty" validate:"omitempty,min=1,dive,required,url"`
}

type ProductFilter struct {
	Category Category
	SellerID *uuid.UUID
	Query    string
	Page     int
	PageSize int
}
