package domain

import (
	"context"
	"time"
)

type OrderLine struct {
	ProductID string
	Quantity  int
}

type CreateOrderInput struct {
	UserID   string
	Items    []OrderLine
	Shipping ShippingDetails
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetAllOrders(ctx context.Context) ([]Order, error)
	GetOrderByID(ctx context.Context, id string) (*Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) error
	MarkOrderVerified(ctx context.Context, id string, at time.Time) error
}

type OrderUseCase interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error)
	GetAllOrders(ctx context.Context) ([]Order, error)
	GetOrderByID(ctx context.Context, id string) (*Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) (*Order, error)
}
