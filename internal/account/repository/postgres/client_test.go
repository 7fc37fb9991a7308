package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shohjahon77877/e-shop-florify/internal/account/domain"
	repo "github.com/Shohjahon77877/e-shop-florify/internal/account/repository/postgres"
)

var clientColumns = []string{"id", "name", "phone", "address", "email", "hashed_password", "created_at", "updated_at"}

func TestClientRepository_GetByPhone(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewClientRepository(mock)
	ctx := context.Background()
	phone := "+998901234567"

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name").
			WithArgs(phone).
			WillReturnRows(pgxmock.NewRows(clientColumns).
				AddRow("client-123", "Test Client", phone, "Tashkent", "client@example.com", "hash", time.Now(), time.Now()))

		client, err := r.GetByPhone(ctx, phone)
		require.NoError(t, err)
		assert.Equal(t, "client-123", client.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name").
			WithArgs(phone).
			WillReturnError(pgx.ErrNoRows)

		client, err := r.GetByPhone(ctx, phone)
		require.NoError(t, err)
		assert.Nil(t, client)
	})
}

func TestClientRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewClientRepository(mock)
	ctx := context.Background()

	client := &domain.Client{
		ID:             "client-123",
		Name:           "Test Client",
		Phone:          "+998901234567",
		Address:        "Tashkent",
		Email:          "client@example.com",
		HashedPassword: "hash",
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	mock.ExpectExec("INSERT INTO clients").
		WithArgs(client.ID, client.Name, client.Phone, client.Address, client.Email,
			client.HashedPassword, client.CreatedAt, client.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = r.Create(ctx, client)
	assert.NoError(t, err)
}
