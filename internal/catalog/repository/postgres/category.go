package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Shohjahon77877/e-shop-florify/internal/catalog/domain"
)

type CategoryRepository struct {
	db DB
}

func NewCategoryRepository(db DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, description FROM categories WHERE name = $1 LIMIT 1;`, name)
	return r.scanOne(row)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, description FROM categories WHERE id = $1 LIMIT 1;`, id)
	return r.scanOne(row)
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO categories (id, name, description)
		VALUES ($1, $2, $3)
	`, category.ID, category.Name, category.Description)

	return err
}

func (r *CategoryRepository) ListWithProducts(ctx context.Context) ([]domain.CategoryWithProducts, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, description FROM categories ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.CategoryWithProducts{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		categories = append(categories, domain.CategoryWithProducts{Category: c, Products: []domain.Product{}})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.CategoryWithProducts, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}

	productRows, err := r.db.Query(ctx, `
		SELECT category_id, id, name, description, price, quantity, color, COALESCE(salesman_id::text, '')
		FROM products
		WHERE category_id IS NOT NULL
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list category products: %w", err)
	}
	defer productRows.Close()

	for productRows.Next() {
		var categoryID string
		var p domain.Product
		if err := productRows.Scan(&categoryID, &p.ID, &p.Name, &p.Description,
			&p.Price, &p.Quantity, &p.Color, &p.SalesmanID); err != nil {
			return nil, err
		}
		p.CategoryID = categoryID
		if c, ok := byID[categoryID]; ok {
			c.Products = append(c.Products, p)
		}
	}

	return categories, productRows.Err()
}

func (r *CategoryRepository) GetWithProducts(ctx context.Context, id string) (*domain.CategoryWithProducts, error) {
	category, err := r.GetByID(ctx, id)
	if err != nil || category == nil {
		return nil, err
	}

	result := &domain.CategoryWithProducts{Category: *category, Products: []domain.Product{}}

	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, price, quantity, color, COALESCE(salesman_id::text, '')
		FROM products
		WHERE category_id = $1
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get category products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity,
			&p.Color, &p.SalesmanID); err != nil {
			return nil, err
		}
		p.CategoryID = id
		result.Products = append(result.Products, p)
	}

	return result, rows.Err()
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	_, err := r.db.Exec(ctx, `
		UPDATE categories SET name = $2, description = $3 WHERE id = $1
	`, category.ID, category.Name, category.Description)

	return err
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return err
}

func (r *CategoryRepository) scanOne(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &c, nil
}
