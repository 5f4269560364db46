package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderConfirmed     = "order.confirmed"
	EventOrderStatusChanged = "order.status_changed"
)

type OrderEvent struct {
	Type        string          `json:"type"`
	OrderID     string          `json:"orderId"`
	OrderNumber string          `json:"orderNumber"`
	UserID      string          `json:"userId"`
	Status      string          `json:"status"`
	Verified    bool            `json:"verified"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	OccurredAt  time.Time       `json:"occurredAt"`
}

func NewOrderEvent(eventType string, order *Order) OrderEvent {
	return OrderEvent{
		Type:        eventType,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		Status:      order.Status,
		Verified:    order.Verified,
		TotalAmount: order.TotalAmount,
		OccurredAt:  time.Now().UTC(),
	}
}

type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event OrderEvent) error
}
