package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Shohjahon77877/e-shop-florify/internal/account/domain"
	"github.com/Shohjahon77877/e-shop-florify/internal/account/dto"
	"github.com/Shohjahon77877/e-shop-florify/internal/apperr"
	"github.com/Shohjahon77877/e-shop-florify/internal/logs"
)

type AdminService struct {
	store domain.AdminStore
}

func NewAdminService(store domain.AdminStore) *AdminService {
	return &AdminService{store: store}
}

func (s *AdminService) Create(ctx context.Context, input dto.CreateAdminInput) (*domain.Admin, error) {
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
	admin := &domain.Admin{
		ID:             uuid.NewString(),
		Username:       input.Username,
		Email:          input.Email,
		Phone:          input.Phone,
		HashedPassword: string(hashedPassword),
		Role:           domain.RoleAdmin,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.store.Create(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

func (s *AdminService) List(ctx context.Context) ([]domain.Admin, error) {
	return s.store.List(ctx)
}

func (s *AdminService) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	admin, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AdminService) Update(ctx context.Context, id string, input dto.UpdateAdminInput) (*domain.Admin, error) {
	admin, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		admin.Username = *input.Username
	}
	if input.Email != nil {
		admin.Email = *input.Email
	}
	if input.Phone != nil {
		admin.Phone = *input.Phone
	}
	if input.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		admin.HashedPassword = string(hashedPassword)
	}
	admin.UpdatedAt = time.Now()

	if err := s.store.Update(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

func (s *AdminService) Delete(ctx context.Context, id string) error {
	if _, err := s.findByID(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// Bootstrap seeds exactly one superadmin from the configured credentials if
// none exists yet. Safe to run on every startup.
func (s *AdminService) Bootstrap(ctx context.Context, username, password string) error {
	existing, err := s.store.GetByRole(ctx, domain.RoleSuperadmin)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	superadmin := &domain.Admin{
		ID:             uuid.NewString(),
		Username:       username,
		HashedPassword: string(hashedPassword),
		Role:           domain.RoleSuperadmin,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.store.Create(ctx, superadmin); err != nil {
		return err
	}

	logs.Logger.Info("superadmin successfully created")
	return nil
}

func (s *AdminService) findByID(ctx context.Context, id string) (*domain.Admin, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.ErrInvalidID
	}

	admin, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, apperr.NotFound("Admin not found")
	}

	return admin, nil
}
