package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "github.com/Shohjahon77877/e-shop-florify/internal/account/repository/postgres"
)

var salesmanColumns = []string{"id", "username", "full_name", "phone", "address", "email", "hashed_password", "created_at", "updated_at"}

func TestSalesmanRepository_ListWithProducts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewSalesmanRepository(mock)
	ctx := context.Background()

	now := time.Now()

	mock.ExpectQuery("SELECT id, username").
		WillReturnRows(pgxmock.NewRows(salesmanColumns).
			AddRow("s-1", "first", "First Salesman", "+998900000001", "Tashkent", "first@example.com", "hash", now, now).
			AddRow("s-2", "second", "Second Salesman", "+998900000002", "Bukhara", "second@example.com", "hash", now, now))
	mock.ExpectQuery("SELECT salesman_id, id, name").
		WillReturnRows(pgxmock.NewRows([]string{"salesman_id", "id", "name", "price", "quantity", "color"}).
			AddRow("s-1", "p-1", "Red Rose", 4.5, 20, "red").
			AddRow("s-1", "p-2", "White Tulip", 3.0, 10, "white"))

	salesmen, err := r.ListWithProducts(ctx)
	require.NoError(t, err)
	require.Len(t, salesmen, 2)

	assert.Len(t, salesmen[0].Products, 2)
	assert.Equal(t, "Red Rose", salesmen[0].Products[0].Name)

	// A salesman with nothing on offer still lists, with an empty slice.
	assert.NotNil(t, salesmen[1].Products)
	assert.Empty(t, salesmen[1].Products)
}

func TestSalesmanRepository_GetWithProducts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewSalesmanRepository(mock)
	ctx := context.Background()

	now := time.Now()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username").
			WithArgs("s-1").
			WillReturnRows(pgxmock.NewRows(salesmanColumns).
				AddRow("s-1", "first", "First Salesman", "+998900000001", "Tashkent", "first@example.com", "hash", now, now))
		mock.ExpectQuery("SELECT id, name, price").
			WithArgs("s-1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "price", "quantity", "color"}).
				AddRow("p-1", "Red Rose", 4.5, 20, "red"))

		salesman, err := r.GetWithProducts(ctx, "s-1")
		require.NoError(t, err)
		assert.Equal(t, "first", salesman.Username)
		require.Len(t, salesman.Products, 1)
		assert.Equal(t, "Red Rose", salesman.Products[0].Name)
	})

	t.Run("not found skips product query", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username").
			WithArgs("gone").
			WillReturnError(pgx.ErrNoRows)

		salesman, err := r.GetWithProducts(ctx, "gone")
		require.NoError(t, err)
		assert.Nil(t, salesman)
	})
}
