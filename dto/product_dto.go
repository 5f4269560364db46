package dto

import (
	"luxefurnish/domain"

	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name     string           `json:"name" binding:"required,notblank,max=100"`
	Category string           `json:"category" binding:"omitempty,max=50"`
	Price    *decimal.Decimal `json:"price" binding:"required"`
	Stock    *int             `json:"stock" binding:"required,min=0"`
	Image    string           `json:"image" binding:"omitempty,max=2048"`
}

func MakeProduct(req *CreateProductRequest) *domain.Product {
	return &domain.Product{
		Name:     req.Name,
		Category: req.Category,
		Price:    *req.Price,
		Stock:    *req.Stock,
		ImageRef: req.Image,
	}
}

// UpdateProductRequest is a partial update; omitted fields keep their value.
type UpdateProductRequest struct {
	Name     *string          `json:"name,omitempty" binding:"omitempty,notblank,max=100"`
	Category *string          `json:"category,omitempty" binding:"omitempty,max=50"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	Stock    *int             `json:"stock,omitempty" binding:"omitempty,min=0"`
	Image    *string          `json:"image,omitempty" binding:"omitempty,max=2048"`
}

func MakeProductPatch(req *UpdateProductRequest) domain.ProductPatch {
	return domain.ProductPatch{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Stock:    req.Stock,
		ImageRef: req.Image,
	}
}
