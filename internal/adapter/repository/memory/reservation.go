package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/trhgquan/flight-manager/internal/core/domain"
)

type ReservationRepository struct {
	store *Store
}

func (r *ReservationRepository) Upsert(_ context.Context, reservation *domain.Reservation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.reservations[reservation.ID] = *reservation
	return nil
}

func (r *ReservationRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	reservation, ok := r.store.reservations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &reservation, nil
}

func (r *ReservationRepository) GetByTicket(_ context.Context, ticketID uuid.UUID) (*domain.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, res := range r.store.reservations {
		if res.TicketID == ticketID {
			reservation := res
			return &reservation, nil
		}
	}
	return nil, domain.ErrNotFound
}
