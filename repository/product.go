package repository

import (
	"context"
	"luxefurnish/domain"

	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	return translateDBError(r.db.WithContext(ctx).Create(product).Error, domain.ErrProductNotFound)
}

func (r *productRepository) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	products := []domain.Product{}
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, translateDBError(err, domain.ErrProductNotFound)
	}
	return products, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, translateDBError(err, domain.ErrProductNotFound)
	}
	return &product, nil
}

func (r *productRepository) GetProductsByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	var products []domain.Product
	if len(ids) == 0 {
		return products, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, translateDBError(err, domain.ErrProductNotFound)
	}
	return products, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	res := r.db.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
		"name":      product.Name,
		"category":  product.Category,
		"price":     product.Price,
		"stock":     product.Stock,
		"image_ref": product.ImageRef,
	})
	if res.Error != nil {
		return translateDBError(res.Error, domain.ErrProductNotFound)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Product{}, "id = ?", id)
	if res.Error != nil {
		return translateDBError(res.Error, domain.ErrProductNotFound)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
