package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Shohjahon77877/e-shop-florify/internal/account/domain"
	"github.com/Shohjahon77877/e-shop-florify/internal/account/dto"
	"github.com/Shohjahon77877/e-shop-florify/internal/apperr"
)

type SalesmanService struct {
	store domain.SalesmanStore
}

func NewSalesmanService(store domain.SalesmanStore) *SalesmanService {
	return &SalesmanService{store: store}
}

func (s *SalesmanService) Create(ctx context.Context, input dto.CreateSalesmanInput) (*domain.Salesman, error) {
	existing, err := s.store.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("Username already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	salesman := &domain.Salesman{
		ID:             uuid.NewString(),
		Username:       input.Username,
		FullName:       input.FullName,
		Phone:          input.Phone,
		Address:        input.Address,
		Email:          input.Email,
		HashedPassword: string(hashedPassword),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.store.Create(ctx, salesman); err != nil {
		return nil, err
	}

	return salesman, nil
}

// List returns every salesman with the products they offer attached.
func (s *SalesmanService) List(ctx context.Context) ([]domain.SalesmanWithProducts, error) {
	return s.store.ListWithProducts(ctx)
}

func (s *SalesmanService) GetByID(ctx context.Context, id string) (*domain.SalesmanWithProducts, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.ErrInvalidID
	}

	salesman, err := s.store.GetWithProducts(ctx, id)
	if err != nil {
		return nil, err
	}
	if salesman == nil {
		return nil, apperr.NotFound("Salesman not found")
	}

	return salesman, nil
}

func (s *SalesmanService) Update(ctx context.Context, id string, input dto.UpdateSalesmanInput) (*domain.Salesman, error) {
	salesman, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		salesman.Username = *input.Username
	}
	if input.FullName != nil {
		salesman.FullName = *input.FullName
	}
	if input.Phone != nil {
		salesman.Phone = *input.Phone
	}
	if input.Address != nil {
		salesman.Address = *input.Address
	}
	if input.Email != nil {
		salesman.Email = *input.Email
	}
	if input.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		salesman.HashedPassword = string(hashedPassword)
	}
	salesman.UpdatedAt = time.Now()

	if err := s.store.Update(ctx, salesman); err != nil {
		return nil, err
	}

	return salesman, nil
}

func (s *SalesmanService) Delete(ctx context.Context, id string) error {
	if _, err := s.findByID(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

func (s *SalesmanService) findByID(ctx context.Context, id string) (*domain.Salesman, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.ErrInvalidID
	}

	salesman, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if salesman == nil {
		return nil, apperr.NotFound("Salesman not found")
	}

	return salesman, nil
}
