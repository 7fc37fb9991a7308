package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Shohjahon77877/e-shop-florify/internal/apperr"
	"github.com/Shohjahon77877/e-shop-florify/internal/catalog/domain"
	"github.com/Shohjahon77877/e-shop-florify/internal/catalog/dto"
)

type CategoryService struct {
	store domain.CategoryStore
}

func NewCategoryService(store domain.CategoryStore) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) Create(ctx context.Context, input dto.CreateCategoryInput) (*domain.Category, error) {
	existing, err := s.store.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("Category already exists")
	}

	category := &domain.Category{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
	}

	if err := s.store.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// List returns every category with its products attached.
func (s *CategoryService) List(ctx context.Context) ([]domain.CategoryWithProducts, error) {
	return s.store.ListWithProducts(ctx)
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (*domain.CategoryWithProducts, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.ErrInvalidID
	}

	category, err := s.store.GetWithProducts(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.NotFound("Category not found")
	}

	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, input dto.UpdateCategoryInput) (*domain.Category, error) {
	category, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = *input.Description
	}

	if err := s.store.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.findByID(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

func (s *CategoryService) findByID(ctx context.Context, id string) (*domain.Category, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.ErrInvalidID
	}

	category, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.NotFound("Category not found")
	}

	return category, nil
}
