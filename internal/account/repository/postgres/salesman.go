package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Shohjahon77877/e-shop-florify/internal/account/domain"
)

type SalesmanRepository struct {
	db DB
}

func NewSalesmanRepository(db DB) *SalesmanRepository {
	return &SalesmanRepository{db: db}
}

const salesmanColumns = `id, username, full_name, phone, address, email, hashed_password, created_at, updated_at`

func (r *SalesmanRepository) GetByEmail(ctx context.Context, email string) (*domain.Salesman, error) {
	query := fmt.Sprintf(`SELECT %s FROM salesmen WHERE email = $1 LIMIT 1;`, salesmanColumns)
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *SalesmanRepository) GetByID(ctx context.Context, id string) (*domain.Salesman, error) {
	query := fmt.Sprintf(`SELECT %s FROM salesmen WHERE id = $1 LIMIT 1;`, salesmanColumns)
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *SalesmanRepository) GetByUsername(ctx context.Context, username string) (*domain.Salesman, error) {
	query := fmt.Sprintf(`SELECT %s FROM salesmen WHERE username = $1 LIMIT 1;`, salesmanColumns)
	return r.scanOne(r.db.QueryRow(ctx, query, username))
}

func (r *SalesmanRepository) Create(ctx context.Context, salesman *domain.Salesman) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO salesmen (id, username, full_name, phone, address, email, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, salesman.ID, salesman.Username, salesman.FullName, salesman.Phone, salesman.Address,
		salesman.Email, salesman.HashedPassword, salesman.CreatedAt, salesman.UpdatedAt)

	return err
}

// ListWithProducts returns every salesman and attaches the products each one
// offers, assembled from a second query.
func (r *SalesmanRepository) ListWithProducts(ctx context.Context) ([]domain.SalesmanWithProducts, error) {
	query := fmt.Sprintf(`SELECT %s FROM salesmen ORDER BY created_at;`, salesmanColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list salesmen: %w", err)
	}
	defer rows.Close()

	salesmen := []domain.SalesmanWithProducts{}
	for rows.Next() {
		var s domain.Salesman
		if err := rows.Scan(&s.ID, &s.Username, &s.FullName, &s.Phone, &s.Address,
			&s.Email, &s.HashedPassword, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		salesmen = append(salesmen, domain.SalesmanWithProducts{Salesman: s, Products: []domain.ProductSummary{}})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.SalesmanWithProducts, len(salesmen))
	for i := range salesmen {
		byID[salesmen[i].ID] = &salesmen[i]
	}

	productRows, err := r.db.Query(ctx, `
		SELECT salesman_id, id, name, price, quantity, color
		FROM products
		WHERE salesman_id IS NOT NULL
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list salesman products: %w", err)
	}
	defer productRows.Close()

	for productRows.Next() {
		var salesmanID string
		var p domain.ProductSummary
		if err := productRows.Scan(&salesmanID, &p.ID, &p.Name, &p.Price, &p.Quantity, &p.Color); err != nil {
			return nil, err
		}
		if s, ok := byID[salesmanID]; ok {
			s.Products = append(s.Products, p)
		}
	}

	return salesmen, productRows.Err()
}

func (r *SalesmanRepository) GetWithProducts(ctx context.Context, id string) (*domain.SalesmanWithProducts, error) {
	salesman, err := r.GetByID(ctx, id)
	if err != nil || salesman == nil {
		return nil, err
	}

	result := &domain.SalesmanWithProducts{Salesman: *salesman, Products: []domain.ProductSummary{}}

	rows, err := r.db.Query(ctx, `
		SELECT id, name, price, quantity, color
		FROM products
		WHERE salesman_id = $1
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get salesman products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.ProductSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity, &p.Color); err != nil {
			return nil, err
		}
		result.Products = append(result.Products, p)
	}

	return result, rows.Err()
}

func (r *SalesmanRepository) Update(ctx context.Context, salesman *domain.Salesman) error {
	_, err := r.db.Exec(ctx, `
		UPDATE salesmen
		SET username = $2, full_name = $3, phone = $4, address = $5, email = $6,
		    hashed_password = $7, updated_at = $8
		WHERE id = $1
	`, salesman.ID, salesman.Username, salesman.FullName, salesman.Phone, salesman.Address,
		salesman.Email, salesman.HashedPassword, salesman.UpdatedAt)

	return err
}

func (r *SalesmanRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM salesmen WHERE id = $1`, id)
	return err
}

func (r *SalesmanRepository) scanOne(row pgx.Row) (*domain.Salesman, error) {
	var s domain.Salesman
	err := row.Scan(&s.ID, &s.Username, &s.FullName, &s.Phone, &s.Address,
		&s.Email, &s.HashedPassword, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get salesman: %w", err)
	}

	return &s, nil
}
