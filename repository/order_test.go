package repository

import (
	"context"
	"luxefurnish/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(number string) *domain.Order {
	return &domain.Order{
		OrderNumber: number,
		UserID:      uuid.NewString(),
		Items: []domain.OrderItem{
			{ProductID: uuid.NewString(), Name: "Chair", UnitPrice: decimal.NewFromInt(100), Quantity: 2},
		},
		TotalAmount: decimal.NewFromInt(200),
		ShippingDetails: domain.ShippingDetails{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com", Address: "1 Analytical Way",
		},
	}
}

func TestOrderRepository_CreateAndLoad(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestDB(t))

	order := newOrder("ORD-250101-000001")
	require.NoError(t, repo.CreateOrder(ctx, order))
	require.NotEmpty(t, order.ID)
	assert.Equal(t, domain.StatusPending, order.Status)

	got, err := repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Chair", got.Items[0].Name)
	assert.Equal(t, "ada@x.com", got.ShippingDetails.Email)
	assert.False(t, got.Verified)
	assert.Nil(t, got.VerifiedAt)

	all, err := repo.GetAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Len(t, all[0].Items, 1)
}

func TestOrderRepository_DuplicateNumber(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestDB(t))

	require.NoError(t, repo.CreateOrder(ctx, newOrder("ORD-250101-000002")))
	err := repo.CreateOrder(ctx, newOrder("ORD-250101-000002"))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestOrderRepository_StatusAndVerification(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestDB(t))

	order := newOrder("ORD-250101-000003")
	require.NoError(t, repo.CreateOrder(ctx, order))

	require.NoError(t, repo.UpdateOrderStatus(ctx, order.ID, domain.StatusDelivered))
	got, err := repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, got.Status)

	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, repo.MarkOrderVerified(ctx, order.ID, at))
	got, err = repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.True(t, got.Verified)
	require.NotNil(t, got.VerifiedAt)
	assert.True(t, at.Equal(*got.VerifiedAt))
}

func TestOrderRepository_Missing(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestDB(t))
	missing := uuid.NewString()

	_, err := repo.GetOrderByID(ctx, missing)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	assert.ErrorIs(t, repo.UpdateOrderStatus(ctx, missing, domain.StatusCancelled), domain.ErrOrderNotFound)
	assert.ErrorIs(t, repo.MarkOrderVerified(ctx, missing, time.Now()), domain.ErrOrderNotFound)
}
