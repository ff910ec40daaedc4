package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/trhgquan/flight-manager/internal/core/domain"
	"github.com/trhgquan/flight-manager/internal/core/ports"
)

type CustomerService struct {
	repo  ports.CustomerRepository
	clock ports.Clock
}

func NewCustomerService(repo ports.CustomerRepository, clock ports.Clock) *CustomerService {
	return &CustomerService{repo: repo, clock: clock}
}

// EnsureForUser returns the customer linked to a user account, creating one
// with the default role when the account is new.
func (s *CustomerService) EnsureForUser(ctx context.Context, userID uuid.UUID) (*domain.Customer, error) {
	customer, err := s.repo.GetByUser(ctx, userID)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	customer = &domain.Customer{
		ID:        uuid.New(),
		UserID:    &userID,
		Roles:     []domain.Role{domain.RoleCustomer},
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CustomerService) UpdateProfile(ctx context.Context, customer *domain.Customer) error {
	if _, err := s.repo.GetByID(ctx, customer.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, customer)
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}
