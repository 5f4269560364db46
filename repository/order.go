package repository

import (
	"context"
	"luxefurnish/domain"
	"time"

	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) domain.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder inserts the order and its items in one transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	return translateDBError(err, domain.ErrOrderNotFound)
}

func (r *orderRepository) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	orders := []domain.Order{}
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, translateDBError(err, domain.ErrOrderNotFound)
	}
	return orders, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		return nil, translateDBError(err, domain.ErrOrderNotFound)
	}
	return &order, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return translateDBError(res.Error, domain.ErrOrderNotFound)
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// MarkOrderVerified records the OTP confirmation; the status is reset to Pending.
func (r *orderRepository) MarkOrderVerified(ctx context.Context, id string, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":      domain.StatusPending,
		"verified":    true,
		"verified_at": at,
	})
	if res.Error != nil {
		return translateDBError(res.Error, domain.ErrOrderNotFound)
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
