package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Shohjahon77877/e-shop-florify/internal/account/domain"
)

type ClientRepository struct {
	db DB
}

func NewClientRepository(db DB) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = `id, name, phone, address, email, hashed_password, created_at, updated_at`

func (r *ClientRepository) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM clients WHERE email = $1 LIMIT 1;`, clientColumns)
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM clients WHERE id = $1 LIMIT 1;`, clientColumns)
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *ClientRepository) GetByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM clients WHERE phone = $1 LIMIT 1;`, clientColumns)
	return r.scanOne(r.db.QueryRow(ctx, query, phone))
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO clients (id, name, phone, address, email, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, client.ID, client.Name, client.Phone, client.Address, client.Email,
		client.HashedPassword, client.CreatedAt, client.UpdatedAt)

	return err
}

func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	_, err := r.db.Exec(ctx, `
		UPDATE clients
		SET name = $2, phone = $3, address = $4, email = $5, hashed_password = $6, updated_at = $7
		WHERE id = $1
	`, client.ID, client.Name, client.Phone, client.Address, client.Email,
		client.HashedPassword, client.UpdatedAt)

	return err
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	return err
}

func (r *ClientRepository) scanOne(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.Email,
		&c.HashedPassword, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return &c, nil
}
