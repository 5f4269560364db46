package service

import (
	"context"
	"luxefurnish/domain"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type productService struct {
	repo domain.ProductRepository
}

func NewProductService(repo domain.ProductRepository) domain.ProductUseCase {
	return &productService{repo: repo}
}

// normalizeProduct trims text fields and title-cases the category so
// "wood" and "Wood" land in the same bucket.
func normalizeProduct(p *domain.Product) {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = cases.Title(language.English).String(strings.TrimSpace(p.Category))
	p.ImageRef = strings.TrimSpace(p.ImageRef)
}

func validateProduct(p *domain.Product) error {
	if p.Name == "" {
		return domain.NewError(domain.ErrValidation, "Product name is required")
	}
	if p.Price.IsNegative() {
		return domain.NewError(domain.ErrValidation, "Price must not be negative")
	}
	if p.Stock < 0 {
		return domain.NewError(domain.ErrValidation, "Stock must not be negative")
	}
	return nil
}

func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, domain.NewError(domain.ErrValidation, "Product is required")
	}
	product.ID = ""
	normalizeProduct(product)
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.GetAllProducts(ctx)
}

func (s *productService) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	if !isValidID(id) {
		return nil, domain.ErrProductNotFound
	}
	return s.repo.GetProductByID(ctx, id)
}

func (s *productService) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	if !isValidID(id) {
		return nil, domain.ErrProductNotFound
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Category != nil {
		product.Category = *patch.Category
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Stock != nil {
		product.Stock = *patch.Stock
	}
	if patch.ImageRef != nil {
		product.ImageRef = *patch.ImageRef
	}

	normalizeProduct(product)
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if !isValidID(id) {
		return domain.ErrProductNotFound
	}
	return s.repo.DeleteProduct(ctx, id)
}
