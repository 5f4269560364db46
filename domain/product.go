package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductPatch holds the fields of a partial product update; nil means unchanged.
type ProductPatch struct {
	Name     *string
	Category *string
	Price    *decimal.Decimal
	Stock    *int
	ImageRef *string
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *Product) error
	GetAllProducts(ctx context.Context) ([]Product, error)
	GetProductByID(ctx context.Context, id string) (*Product, error)
	GetProductsByIDs(ctx context.Context, ids []string) ([]Product, error)
	UpdateProduct(ctx context.Context, product *Product) error
	DeleteProduct(ctx context.Context, id string) error
}

type ProductUseCase interface {
	CreateProduct(ctx context.Context, product *Product) (*Product, error)
	GetAllProducts(ctx context.Context) ([]Product, error)
	GetProductByID(ctx context.Context, id string) (*Product, error)
	UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
