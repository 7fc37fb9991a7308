package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Shohjahon77877/e-shop-florify/internal/apperr"
	"github.com/Shohjahon77877/e-shop-florify/internal/catalog/domain"
)

type SaleRepository struct {
	db DB
}

func NewSaleRepository(db DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// CreateSale records a sale in one transaction. The stock decrement is a
// single conditional update guarded by `quantity >= $n`, so a concurrent
// sale of the same product can never drive stock negative: whichever
// transaction loses the row lock re-evaluates the guard and fails cleanly.
func (r *SaleRepository) CreateSale(ctx context.Context, productID, clientID string, quantity int) (*domain.SoldProduct, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin sale tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	var clientExists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1)`, clientID).Scan(&clientExists); err != nil {
		return nil, fmt.Errorf("check client: %w", err)
	}
	if !clientExists {
		return nil, apperr.NotFound("Client not found")
	}

	var price float64
	err = tx.QueryRow(ctx, `SELECT price FROM products WHERE id = $1`, productID).Scan(&price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Product not found")
		}
		return nil, fmt.Errorf("check product: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE products SET quantity = quantity - $2
		WHERE id = $1 AND quantity >= $2
	`, productID, quantity)
	if err != nil {
		return nil, fmt.Errorf("decrement stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.ErrInsufficientStock
	}

	now := time.Now()
	sale := &domain.SoldProduct{
		ID:         uuid.NewString(),
		ProductID:  productID,
		ClientID:   clientID,
		Quantity:   quantity,
		TotalPrice: price * float64(quantity),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO sold_products (id, product_id, client_id, quantity, total_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, sale.ID, sale.ProductID, sale.ClientID, sale.Quantity, sale.TotalPrice, sale.CreatedAt, sale.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert sale: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit sale tx: %w", err)
	}

	return sale, nil
}

const saleDetailQuery = `
	SELECT sp.id, sp.product_id, sp.client_id, sp.quantity, sp.total_price, sp.created_at, sp.updated_at,
	       p.id, p.name, p.description, p.price, p.quantity, p.color,
	       c.id, c.name, c.phone, c.email
	FROM sold_products sp
	JOIN products p ON p.id = sp.product_id
	JOIN clients c ON c.id = sp.client_id`

func (r *SaleRepository) GetByID(ctx context.Context, id string) (*domain.SoldProductDetail, error) {
	row := r.db.QueryRow(ctx, saleDetailQuery+` WHERE sp.id = $1 LIMIT 1;`, id)

	sale, err := scanSaleDetail(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sold product: %w", err)
	}

	return sale, nil
}

func (r *SaleRepository) List(ctx context.Context) ([]domain.SoldProductDetail, error) {
	rows, err := r.db.Query(ctx, saleDetailQuery+` ORDER BY sp.created_at;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sold products: %w", err)
	}
	defer rows.Close()

	sales := []domain.SoldProductDetail{}
	for rows.Next() {
		sale, err := scanSaleDetail(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, *sale)
	}

	return sales, rows.Err()
}

func (r *SaleRepository) Update(ctx context.Context, sale *domain.SoldProduct) error {
	_, err := r.db.Exec(ctx, `
		UPDATE sold_products
		SET product_id = $2, client_id = $3, quantity = $4, total_price = $5, updated_at = $6
		WHERE id = $1
	`, sale.ID, sale.ProductID, sale.ClientID, sale.Quantity, sale.TotalPrice, sale.UpdatedAt)

	return err
}

func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sold_products WHERE id = $1`, id)
	return err
}

func scanSaleDetail(row pgx.Row) (*domain.SoldProductDetail, error) {
	var sale domain.SoldProductDetail
	var product domain.Product
	var client domain.ClientSummary

	err := row.Scan(&sale.ID, &sale.ProductID, &sale.ClientID, &sale.Quantity,
		&sale.TotalPrice, &sale.CreatedAt, &sale.UpdatedAt,
		&product.ID, &product.Name, &product.Description, &product.Price, &product.Quantity, &product.Color,
		&client.ID, &client.Name, &client.Phone, &client.Email)
	if err != nil {
		return nil, err
	}

	sale.Product = &product
	sale.Client = &client

	return &sale, nil
}
