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

type ClientService struct {
	store domain.ClientStore
}

func NewClientService(store domain.ClientStore) *ClientService {
	return &ClientService{store: store}
}

// SignUp registers a new client. Unlike sign-in there is no OTP step: the
// caller gets a token pair immediately (the handler mints it).
func (s *ClientService) SignUp(ctx context.Context, input dto.ClientSignUpInput) (*domain.Client, error) {
	existingPhone, err := s.store.GetByPhone(ctx, input.Phone)
	if err != nil {
		return nil, err
	}
	if existingPhone != nil {
		return nil, apperr.Conflict("Phone number already registered")
	}

	existingEmail, err := s.store.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existingEmail != nil {
		return nil, apperr.Conflict("Email address already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	client := &domain.Client{
		ID:             uuid.NewString(),
		Name:           input.Name,
		Phone:          input.Phone,
		Address:        input.Address,
		Email:          input.Email,
		HashedPassword: string(hashedPassword),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.store.Create(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

func (s *ClientService) Update(ctx context.Context, id string, input dto.UpdateClientInput) (*domain.Client, error) {
	client, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.Address != nil {
		client.Address = *input.Address
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		client.HashedPassword = string(hashedPassword)
	}
	client.UpdatedAt = time.Now()

	if err := s.store.Update(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

func (s *ClientService) Delete(ctx context.Context, id string) error {
	if _, err := s.findByID(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

func (s *ClientService) findByID(ctx context.Context, id string) (*domain.Client, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.ErrInvalidID
	}

	client, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperr.NotFound("Client not found")
	}

	return client, nil
}
