package service

import (
	"context"
	"errors"
	"luxefurnish/domain"
	"luxefurnish/utils"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const orderNumberAttempts = 3

type orderService struct {
	orderRepo   domain.OrderRepository
	productRepo domain.ProductRepository
	events      domain.OrderEventPublisher
	now         func() time.Time
}

func NewOrderService(orderRepo domain.OrderRepository, productRepo domain.ProductRepository, events domain.OrderEventPublisher) domain.OrderUseCase {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		events:      events,
		now:         time.Now,
	}
}

// mergeLines folds repeated product ids into one line, keeping first-seen order.
func mergeLines(lines []domain.OrderLine) ([]domain.OrderLine, error) {
	if len(lines) == 0 {
		return nil, domain.NewError(domain.ErrValidation, "Order must contain at least one item")
	}

	merged := make([]domain.OrderLine, 0, len(lines))
	index := make(map[string]int, len(lines))
	for _, line := range lines {
		if !isValidID(line.ProductID) {
			return nil, domain.NewError(domain.ErrValidation, "Invalid product id %q", line.ProductID)
		}
		if line.Quantity < 1 {
			return nil, domain.NewError(domain.ErrValidation, "Quantity must be at least 1")
		}
		if i, ok := index[line.ProductID]; ok {
			merged[i].Quantity += line.Quantity
			continue
		}
		index[line.ProductID] = len(merged)
		merged = append(merged, line)
	}
	return merged, nil
}

func (s *orderService) CreateOrder(ctx context.Context, input domain.CreateOrderInput) (*domain.Order, error) {
	if !isValidID(input.UserID) {
		return nil, domain.NewError(domain.ErrUnauthorized, "Unknown customer")
	}

	shipping := domain.ShippingDetails{
		FirstName: strings.TrimSpace(input.Shipping.FirstName),
		LastName:  strings.TrimSpace(input.Shipping.LastName),
		Email:     normalizeEmail(input.Shipping.Email),
		Address:   strings.TrimSpace(input.Shipping.Address),
	}
	if shipping.FirstName == "" || shipping.LastName == "" || shipping.Email == "" || shipping.Address == "" {
		return nil, domain.NewError(domain.ErrValidation, "Shipping details are incomplete")
	}

	lines, err := mergeLines(input.Items)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(lines))
	for i, line := range lines {
		ids[i] = line.ProductID
	}
	products, err := s.productRepo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	catalog := make(map[string]domain.Product, len(products))
	for _, p := range products {
		catalog[p.ID] = p
	}

	order := &domain.Order{
		UserID:          input.UserID,
		ShippingDetails: shipping,
		Status:          domain.StatusPending,
		TotalAmount:     decimal.Zero,
	}
	for _, line := range lines {
		product, ok := catalog[line.ProductID]
		if !ok {
			return nil, domain.NewError(domain.ErrNotFound, "Product %s not found", line.ProductID)
		}
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  line.Quantity,
		})
		order.TotalAmount = order.TotalAmount.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	// order numbers are random per day; retry the rare collision
	for attempt := 1; ; attempt++ {
		order.OrderNumber, err = utils.GenerateOrderNumber(s.now())
		if err != nil {
			return nil, err
		}
		err = s.orderRepo.CreateOrder(ctx, order)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrConflict) || attempt == orderNumberAttempts {
			return nil, err
		}
		order.ID = ""
		for i := range order.Items {
			order.Items[i].ID = 0
			order.Items[i].OrderID = ""
		}
	}

	publishOrderEvent(ctx, s.events, domain.EventOrderCreated, order)
	return order, nil
}

func (s *orderService) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orderRepo.GetAllOrders(ctx)
}

func (s *orderService) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	if !isValidID(id) {
		return nil, domain.ErrOrderNotFound
	}
	return s.orderRepo.GetOrderByID(ctx, id)
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	if !domain.IsValidOrderStatus(status) {
		return nil, domain.NewError(domain.ErrValidation, "Invalid status. Allowed: %s", strings.Join(domain.OrderStatuses, ", "))
	}
	if !isValidID(id) {
		return nil, domain.ErrOrderNotFound
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, id, status); err != nil {
		return nil, err
	}
	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	publishOrderEvent(ctx, s.events, domain.EventOrderStatusChanged, order)
	return order, nil
}

// publishOrderEvent never fails the caller; the order is already committed.
func publishOrderEvent(ctx context.Context, events domain.OrderEventPublisher, eventType string, order *domain.Order) {
	if err := events.PublishOrderEvent(ctx, domain.NewOrderEvent(eventType, order)); err != nil {
		log.Error().Err(err).Str("event", eventType).Str("order_id", order.ID).Msg("failed to publish order event")
	}
}
