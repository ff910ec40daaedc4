package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/trhgquan/flight-manager/internal/core/domain"
)

type CustomerRepository struct {
	store *Store
}

func (r *CustomerRepository) Create(_ context.Context, customer *domain.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.customers[customer.ID] = *customer
	return nil
}

func (r *CustomerRepository) Update(_ context.Context, customer *domain.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.customers[customer.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.customers[customer.ID] = *customer
	return nil
}

func (r *CustomerRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	customer, ok := r.store.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &customer, nil
}

func (r *CustomerRepository) GetByUser(_ context.Context, userID uuid.UUID) (*domain.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, c := range r.store.customers {
		if c.UserID != nil && *c.UserID == userID {
			customer := c
			return &customer, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *CustomerRepository) List(_ context.Context) ([]domain.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := make([]domain.Customer, 0, len(r.store.customers))
	for _, c := range r.store.customers {
		result = append(result, c)
	}
	return result, nil
}
