package postgres_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shohjahon77877/e-shop-florify/internal/catalog/domain"
	repo "github.com/Shohjahon77877/e-shop-florify/internal/catalog/repository/postgres"
)

var productDetailColumns = []string{
	"id", "name", "description", "price", "quantity", "color",
	"category_id", "salesman_id", "category_name", "salesman_name",
}

func TestProductRepository_GetDetail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewProductRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT p.id").
			WithArgs(productID).
			WillReturnRows(pgxmock.NewRows(productDetailColumns).
				AddRow(productID, "Red Rose", "A dozen fresh red roses", 4.5, 20, "red",
					"cat-1", "s-1", "Roses", "First Salesman"))

		product, err := r.GetDetail(ctx, productID)
		require.NoError(t, err)
		assert.Equal(t, "Red Rose", product.Name)
		assert.Equal(t, "Roses", product.CategoryName)
		assert.Equal(t, "First Salesman", product.SalesmanName)
	})

	t.Run("unlinked product keeps empty names", func(t *testing.T) {
		mock.ExpectQuery("SELECT p.id").
			WithArgs(productID).
			WillReturnRows(pgxmock.NewRows(productDetailColumns).
				AddRow(productID, "Red Rose", "A dozen fresh red roses", 4.5, 20, "red",
					"", "", "", ""))

		product, err := r.GetDetail(ctx, productID)
		require.NoError(t, err)
		assert.Empty(t, product.CategoryName)
		assert.Empty(t, product.SalesmanName)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT p.id").
			WithArgs(productID).
			WillReturnError(pgx.ErrNoRows)

		product, err := r.GetDetail(ctx, productID)
		require.NoError(t, err)
		assert.Nil(t, product)
	})
}

func TestProductRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewProductRepository(mock)
	ctx := context.Background()

	product := &domain.Product{
		ID:          productID,
		Name:        "Red Rose",
		Description: "A dozen fresh red roses",
		Price:       4.5,
		Quantity:    20,
		Color:       "red",
		CategoryID:  "cat-1",
		SalesmanID:  "s-1",
	}

	mock.ExpectExec("INSERT INTO products").
		WithArgs(product.ID, product.Name, product.Description, product.Price,
			product.Quantity, product.Color, product.CategoryID, product.SalesmanID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = r.Create(ctx, product)
	assert.NoError(t, err)
}
