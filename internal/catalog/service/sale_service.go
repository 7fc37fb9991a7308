package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	accountdomain "github.com/Shohjahon77877/e-shop-florify/internal/account/domain"
	"github.com/Shohjahon77877/e-shop-florify/internal/apperr"
	"github.com/Shohjahon77877/e-shop-florify/internal/catalog/domain"
	"github.com/Shohjahon77877/e-shop-florify/internal/catalog/dto"
)

type SaleService struct {
	sales    domain.SaleStore
	products domain.ProductStore
	clients  accountdomain.ClientStore
}

func NewSaleService(sales domain.SaleStore, products domain.ProductStore, clients accountdomain.ClientStore) *SaleService {
	return &SaleService{sales: sales, products: products, clients: clients}
}

// Create records a sale. The store runs the stock check and decrement as one
// conditional update, so two concurrent sales can never oversell a product.
func (s *SaleService) Create(ctx context.Context, input dto.CreateSoldProductInput) (*domain.SoldProduct, error) {
	if _, err := uuid.Parse(input.ProductID); err != nil {
		return nil, apperr.ErrInvalidID
	}
	if _, err := uuid.Parse(input.ClientID); err != nil {
		return nil, apperr.ErrInvalidID
	}

	return s.sales.CreateSale(ctx, input.ProductID, input.ClientID, input.Quantity)
}

func (s *SaleService) List(ctx context.Context) ([]domain.SoldProductDetail, error) {
	return s.sales.List(ctx)
}

func (s *SaleService) GetByID(ctx context.Context, id string) (*domain.SoldProductDetail, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.ErrInvalidID
	}

	sale, err := s.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperr.NotFound("SoldProduct not found")
	}

	return sale, nil
}

// Update re-points a sale at a (possibly different) client and product and
// recomputes the total from the product's current price. Stock is not
// re-adjusted; only creation moves inventory.
func (s *SaleService) Update(ctx context.Context, id string, input dto.UpdateSoldProductInput) (*domain.SoldProductDetail, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	client, err := s.clients.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperr.NotFound("Client not found")
	}

	product, err := s.products.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperr.NotFound("Product not found")
	}

	sale := existing.SoldProduct
	sale.ProductID = input.ProductID
	sale.ClientID = input.ClientID
	sale.Quantity = input.Quantity
	sale.TotalPrice = product.Price * float64(input.Quantity)
	sale.UpdatedAt = time.Now()

	if err := s.sales.Update(ctx, &sale); err != nil {
		return nil, err
	}

	return s.sales.GetByID(ctx, id)
}

func (s *SaleService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.sales.Delete(ctx, id)
}
