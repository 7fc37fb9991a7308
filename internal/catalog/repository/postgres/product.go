package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Shohjahon77877/e-shop-florify/internal/catalog/domain"
)

type ProductRepository struct {
	db DB
}

func NewProductRepository(db DB) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, name, description, price, quantity, color,
	COALESCE(category_id::text, ''), COALESCE(salesman_id::text, '')`

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1 LIMIT 1;`, productColumns)
	row := r.db.QueryRow(ctx, query, id)

	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity,
		&p.Color, &p.CategoryID, &p.SalesmanID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO products (id, name, description, price, quantity, color, category_id, salesman_id)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid, NULLIF($8, '')::uuid)
	`, product.ID, product.Name, product.Description, product.Price, product.Quantity,
		product.Color, product.CategoryID, product.SalesmanID)

	return err
}

const productDetailQuery = `
	SELECT p.id, p.name, p.description, p.price, p.quantity, p.color,
	       COALESCE(p.category_id::text, ''), COALESCE(p.salesman_id::text, ''),
	       COALESCE(c.name, ''), COALESCE(s.full_name, '')
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN salesmen s ON s.id = p.salesman_id`

func (r *ProductRepository) List(ctx context.Context) ([]domain.ProductDetail, error) {
	rows, err := r.db.Query(ctx, productDetailQuery+` ORDER BY p.name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []domain.ProductDetail{}
	for rows.Next() {
		var p domain.ProductDetail
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity,
			&p.Color, &p.CategoryID, &p.SalesmanID, &p.CategoryName, &p.SalesmanName); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *ProductRepository) GetDetail(ctx context.Context, id string) (*domain.ProductDetail, error) {
	row := r.db.QueryRow(ctx, productDetailQuery+` WHERE p.id = $1 LIMIT 1;`, id)

	var p domain.ProductDetail
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity,
		&p.Color, &p.CategoryID, &p.SalesmanID, &p.CategoryName, &p.SalesmanName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &p, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	_, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = $2, description = $3, price = $4, quantity = $5, color = $6,
		    category_id = NULLIF($7, '')::uuid, salesman_id = NULLIF($8, '')::uuid
		WHERE id = $1
	`, product.ID, product.Name, product.Description, product.Price, product.Quantity,
		product.Color, product.CategoryID, product.SalesmanID)

	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}
