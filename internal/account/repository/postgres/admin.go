package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Shohjahon77877/e-shop-florify/internal/account/domain"
)

type AdminRepository struct {
	db DB
}

func NewAdminRepository(db DB) *AdminRepository {
	return &AdminRepository{db: db}
}

const adminColumns = `id, username, COALESCE(email, ''), COALESCE(phone, ''), hashed_password, role, created_at, updated_at`

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := fmt.Sprintf(`SELECT %s FROM admins WHERE email = $1 LIMIT 1;`, adminColumns)
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *AdminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	query := fmt.Sprintf(`SELECT %s FROM admins WHERE id = $1 LIMIT 1;`, adminColumns)
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	query := fmt.Sprintf(`SELECT %s FROM admins WHERE username = $1 LIMIT 1;`, adminColumns)
	return r.scanOne(r.db.QueryRow(ctx, query, username))
}

func (r *AdminRepository) GetByRole(ctx context.Context, role string) (*domain.Admin, error) {
	query := fmt.Sprintf(`SELECT %s FROM admins WHERE role = $1 LIMIT 1;`, adminColumns)
	return r.scanOne(r.db.QueryRow(ctx, query, role))
}

func (r *AdminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO admins (id, username, email, phone, hashed_password, role, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, $8)
	`, admin.ID, admin.Username, admin.Email, admin.Phone, admin.HashedPassword, admin.Role,
		admin.CreatedAt, admin.UpdatedAt)

	return err
}

func (r *AdminRepository) List(ctx context.Context) ([]domain.Admin, error) {
	query := fmt.Sprintf(`SELECT %s FROM admins ORDER BY created_at;`, adminColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	admins := []domain.Admin{}
	for rows.Next() {
		var admin domain.Admin
		if err := rows.Scan(&admin.ID, &admin.Username, &admin.Email, &admin.Phone,
			&admin.HashedPassword, &admin.Role, &admin.CreatedAt, &admin.UpdatedAt); err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}

	return admins, rows.Err()
}

func (r *AdminRepository) Update(ctx context.Context, admin *domain.Admin) error {
	_, err := r.db.Exec(ctx, `
		UPDATE admins
		SET username = $2, email = NULLIF($3, ''), phone = NULLIF($4, ''),
		    hashed_password = $5, updated_at = $6
		WHERE id = $1
	`, admin.ID, admin.Username, admin.Email, admin.Phone, admin.HashedPassword, admin.UpdatedAt)

	return err
}

func (r *AdminRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
	return err
}

func (r *AdminRepository) scanOne(row pgx.Row) (*domain.Admin, error) {
	var admin domain.Admin
	err := row.Scan(&admin.ID, &admin.Username, &admin.Email, &admin.Phone,
		&admin.HashedPassword, &admin.Role, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return &admin, nil
}
