package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/trhgquan/flight-manager/internal/core/domain"
)

type TicketRepository struct {
	store *Store
}

func (r *TicketRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Ticket, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ticket, ok := r.store.tickets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ticket, nil
}

func (r *TicketRepository) ListByFlight(_ context.Context, flightID uuid.UUID) ([]domain.Ticket, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []domain.Ticket
	for _, t := range r.store.tickets {
		if t.FlightID == flightID {
			result = append(result, t)
		}
	}
	return result, nil
}

func (r *TicketRepository) ListUnclaimed(_ context.Context, flightID uuid.UUID, class domain.TicketClass) ([]domain.Ticket, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []domain.Ticket
	for _, t := range r.store.tickets {
		if t.FlightID == flightID && t.Class == class && t.CustomerID == nil && !t.IsBooked {
			result = append(result, t)
		}
	}
	return result, nil
}

func (r *TicketRepository) CountByFlightClass(_ context.Context, flightID uuid.UUID, class domain.TicketClass) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.countByFlightClassLocked(flightID, class), nil
}

func (r *TicketRepository) CountClaimed(_ context.Context, flightID uuid.UUID) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	count := 0
	for _, t := range r.store.tickets {
		if t.FlightID == flightID && t.CustomerID != nil {
			count++
		}
	}
	return count, nil
}

func (r *TicketRepository) Claim(_ context.Context, ticketID uuid.UUID, version int, customerID uuid.UUID, passenger domain.Passenger, price float64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ticket, ok := r.store.tickets[ticketID]
	if !ok {
		return domain.ErrNotFound
	}
	if ticket.CustomerID != nil || ticket.Version != version {
		return domain.ErrConflict
	}

	ticket.CustomerID = &customerID
	ticket.Name = passenger.Name
	ticket.Phone = passenger.Phone
	ticket.IdentityCode = passenger.IdentityCode
	ticket.Price = price
	ticket.Version++
	r.store.tickets[ticketID] = ticket
	return nil
}

func (r *TicketRepository) InsertClaimed(_ context.Context, ticket *domain.Ticket, seatLimit int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.countByFlightClassLocked(ticket.FlightID, ticket.Class) >= seatLimit {
		return domain.ErrOutOfSeats
	}
	r.store.tickets[ticket.ID] = *ticket
	return nil
}

func (r *TicketRepository) MarkPaid(_ context.Context, ticketID uuid.UUID, version int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ticket, ok := r.store.tickets[ticketID]
	if !ok {
		return domain.ErrNotFound
	}
	if ticket.IsBooked || ticket.Version != version {
		return domain.ErrConflict
	}

	ticket.IsBooked = true
	ticket.Version++
	r.store.tickets[ticketID] = ticket
	return nil
}

func (r *TicketRepository) Release(_ context.Context, ticketID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ticket, ok := r.store.tickets[ticketID]
	if !ok {
		return domain.ErrNotFound
	}

	ticket.CustomerID = nil
	ticket.Name = ""
	ticket.Phone = ""
	ticket.IdentityCode = ""
	ticket.Price = 0
	ticket.IsBooked = false
	ticket.Version++
	r.store.tickets[ticketID] = ticket
	return nil
}
