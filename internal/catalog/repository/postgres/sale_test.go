package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shohjahon77877/e-shop-florify/internal/apperr"
	repo "github.com/Shohjahon77877/e-shop-florify/internal/catalog/repository/postgres"
)

const (
	productID = "f7f3b2c1-0000-4000-8000-000000000003"
	clientID  = "c7f3b2c1-0000-4000-8000-000000000004"
)

func TestSaleRepository_CreateSale(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewSaleRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(clientID).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery("SELECT price FROM products").
			WithArgs(productID).
			WillReturnRows(pgxmock.NewRows([]string{"price"}).AddRow(4.5))
		mock.ExpectExec("UPDATE products SET quantity").
			WithArgs(productID, 3).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec("INSERT INTO sold_products").
			WithArgs(pgxmock.AnyArg(), productID, clientID, 3, 13.5, pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()
		mock.ExpectRollback()

		sale, err := r.CreateSale(ctx, productID, clientID, 3)
		require.NoError(t, err)
		assert.NotEmpty(t, sale.ID)
		assert.Equal(t, 3, sale.Quantity)
		assert.Equal(t, 13.5, sale.TotalPrice)
	})

	t.Run("client not found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(clientID).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectRollback()

		sale, err := r.CreateSale(ctx, productID, clientID, 3)
		assert.Equal(t, apperr.NotFound("Client not found"), err)
		assert.Nil(t, sale)
	})

	t.Run("product not found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(clientID).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery("SELECT price FROM products").
			WithArgs(productID).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		sale, err := r.CreateSale(ctx, productID, clientID, 3)
		assert.Equal(t, apperr.NotFound("Product not found"), err)
		assert.Nil(t, sale)
	})

	t.Run("insufficient stock rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(clientID).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery("SELECT price FROM products").
			WithArgs(productID).
			WillReturnRows(pgxmock.NewRows([]string{"price"}).AddRow(4.5))
		mock.ExpectExec("UPDATE products SET quantity").
			WithArgs(productID, 100).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		sale, err := r.CreateSale(ctx, productID, clientID, 100)
		assert.Equal(t, apperr.ErrInsufficientStock, err)
		assert.Nil(t, sale)
	})

	t.Run("begin failure", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(fmt.Errorf("pool exhausted"))

		sale, err := r.CreateSale(ctx, productID, clientID, 3)
		assert.Error(t, err)
		assert.Nil(t, sale)
	})
}

var saleColumns = []string{
	"id", "product_id", "client_id", "quantity", "total_price", "created_at", "updated_at",
	"p_id", "p_name", "p_description", "p_price", "p_quantity", "p_color",
	"c_id", "c_name", "c_phone", "c_email",
}

func saleRow(rows *pgxmock.Rows, saleID string) *pgxmock.Rows {
	now := time.Now()
	return rows.AddRow(
		saleID, productID, clientID, 3, 13.5, now, now,
		productID, "Red Rose", "A dozen fresh red roses", 4.5, 17, "red",
		clientID, "Test Client", "+998901234567", "client@example.com",
	)
}

func TestSaleRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewSaleRepository(mock)
	ctx := context.Background()
	saleID := "b7f3b2c1-0000-4000-8000-000000000005"

	t.Run("success joins product and client", func(t *testing.T) {
		mock.ExpectQuery("SELECT sp.id").
			WithArgs(saleID).
			WillReturnRows(saleRow(pgxmock.NewRows(saleColumns), saleID))

		sale, err := r.GetByID(ctx, saleID)
		require.NoError(t, err)
		assert.Equal(t, saleID, sale.ID)
		assert.Equal(t, "Red Rose", sale.Product.Name)
		assert.Equal(t, "Test Client", sale.Client.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT sp.id").
			WithArgs(saleID).
			WillReturnError(pgx.ErrNoRows)

		sale, err := r.GetByID(ctx, saleID)
		require.NoError(t, err)
		assert.Nil(t, sale)
	})
}

func TestSaleRepository_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewSaleRepository(mock)
	ctx := context.Background()

	rows := pgxmock.NewRows(saleColumns)
	saleRow(rows, "sale-1")
	saleRow(rows, "sale-2")

	mock.ExpectQuery("SELECT sp.id").WillReturnRows(rows)

	sales, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, sales, 2)
	assert.Equal(t, "sale-1", sales[0].ID)
}
