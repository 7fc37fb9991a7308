package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Shohjahon77877/e-shop-florify/internal/apperr"
	"github.com/Shohjahon77877/e-shop-florify/internal/catalog/domain"
	"github.com/Shohjahon77877/e-shop-florify/internal/catalog/dto"
)

type ProductService struct {
	store domain.ProductStore
}

func NewProductService(store domain.ProductStore) *ProductService {
	return &ProductService{store: store}
}

func (s *ProductService) Create(ctx context.Context, input dto.CreateProductInput) (*domain.Product, error) {
	if _, err := uuid.Parse(input.CategoryID); err != nil {
		return nil, apperr.ErrInvalidID
	}
	if _, err := uuid.Parse(input.SalesmanID); err != nil {
		return nil, apperr.ErrInvalidID
	}

	product := &domain.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Color:       input.Color,
		CategoryID:  input.CategoryID,
		SalesmanID:  input.SalesmanID,
	}

	if err := s.store.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *ProductService) List(ctx context.Context) ([]domain.ProductDetail, error) {
	return s.store.List(ctx)
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.ProductDetail, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.ErrInvalidID
	}

	product, err := s.store.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperr.NotFound("Product not found")
	}

	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, input dto.UpdateProductInput) (*domain.Product, error) {
	product, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.Color != nil {
		product.Color = *input.Color
	}
	if input.CategoryID != nil {
		product.CategoryID = *input.CategoryID
	}
	if input.SalesmanID != nil {
		product.SalesmanID = *input.SalesmanID
	}

	if err := s.store.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if _, err := s.findByID(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

func (s *ProductService) findByID(ctx context.Context, id string) (*domain.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.ErrInvalidID
	}

	product, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperr.NotFound("Product not found")
	}

	return product, nil
}
