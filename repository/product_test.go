package repository

import (
	"context"
	"luxefurnish/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))

	chair := &domain.Product{Name: "Chair", Category: "Seating", Price: decimal.NewFromInt(100), Stock: 5}
	require.NoError(t, repo.CreateProduct(ctx, chair))
	require.NotEmpty(t, chair.ID)

	all, err := repo.GetAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Chair", all[0].Name)
	assert.True(t, decimal.NewFromInt(100).Equal(all[0].Price))

	chair.Stock = 3
	require.NoError(t, repo.UpdateProduct(ctx, chair))

	got, err := repo.GetProductByID(ctx, chair.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Stock)

	require.NoError(t, repo.DeleteProduct(ctx, chair.ID))

	_, err = repo.GetProductByID(ctx, chair.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductRepository_EmptyCatalog(t *testing.T) {
	products, err := NewProductRepository(newTestDB(t)).GetAllProducts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductRepository_MissingIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))
	missing := uuid.NewString()

	assert.ErrorIs(t, repo.DeleteProduct(ctx, missing), domain.ErrProductNotFound)
	assert.ErrorIs(t, repo.UpdateProduct(ctx, &domain.Product{ID: missing, Name: "Ghost"}), domain.ErrProductNotFound)
}

func TestProductRepository_GetProductsByIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))

	table := &domain.Product{Name: "Table", Price: decimal.NewFromInt(250), Stock: 2}
	lamp := &domain.Product{Name: "Lamp", Price: decimal.RequireFromString("39.90"), Stock: 10}
	require.NoError(t, repo.CreateProduct(ctx, table))
	require.NoError(t, repo.CreateProduct(ctx, lamp))

	found, err := repo.GetProductsByIDs(ctx, []string{table.ID, uuid.NewString()})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, table.ID, found[0].ID)

	none, err := repo.GetProductsByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}
