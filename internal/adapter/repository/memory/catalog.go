package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/trhgquan/flight-manager/internal/core/domain"
)

type CatalogRepository struct {
	store *Store
}

func (r *CatalogRepository) CreateAirport(_ context.Context, airport *domain.Airport) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.airports[airport.ID] = *airport
	return nil
}

func (r *CatalogRepository) UpdateAirport(_ context.Context, airport *domain.Airport) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.airports[airport.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.airports[airport.ID] = *airport
	return nil
}

func (r *CatalogRepository) DeleteAirport(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.airports[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.airports, id)
	return nil
}

func (r *CatalogRepository) GetAirport(_ context.Context, id uuid.UUID) (*domain.Airport, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	airport, ok := r.store.airports[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &airport, nil
}

func (r *CatalogRepository) ListAirports(_ context.Context) ([]domain.Airport, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := make([]domain.Airport, 0, len(r.store.airports))
	for _, a := range r.store.airports {
		result = append(result, a)
	}
	return result, nil
}

func (r *CatalogRepository) CreateFlight(_ context.Context, flight *domain.Flight) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.flights[flight.ID] = *flight
	// The empty detail row travels with the flight from the start.
	r.store.details[flight.ID] = domain.FlightDetail{FlightID: flight.ID, CreatedAt: flight.CreatedAt}
	return nil
}

func (r *CatalogRepository) UpdateFlight(_ context.Context, flight *domain.Flight) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.flights[flight.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.flights[flight.ID] = *flight
	return nil
}

func (r *CatalogRepository) DeleteFlight(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.flights[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.flights, id)
	delete(r.store.details, id)
	for legID, leg := range r.store.legs {
		if leg.FlightID == id {
			delete(r.store.legs, legID)
		}
	}
	// Tickets keep their rows as orphaned audit records.
	for ticketID, ticket := range r.store.tickets {
		if ticket.FlightID == id {
			ticket.FlightID = uuid.Nil
			r.store.tickets[ticketID] = ticket
		}
	}
	return nil
}

func (r *CatalogRepository) GetFlight(_ context.Context, id uuid.UUID) (*domain.Flight, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	flight, ok := r.store.flights[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &flight, nil
}

func (r *CatalogRepository) ListFlights(_ context.Context) ([]domain.Flight, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := make([]domain.Flight, 0, len(r.store.flights))
	for _, f := range r.store.flights {
		result = append(result, f)
	}
	return result, nil
}

func (r *CatalogRepository) GetFlightDetail(_ context.Context, flightID uuid.UUID) (*domain.FlightDetail, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	detail, ok := r.store.details[flightID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &detail, nil
}

func (r *CatalogRepository) UpdateFlightDetail(_ context.Context, detail *domain.FlightDetail) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.details[detail.FlightID]; !ok {
		return domain.ErrNotFound
	}
	r.store.details[detail.FlightID] = *detail
	return nil
}

func (r *CatalogRepository) AddTransitionLeg(_ context.Context, leg *domain.TransitionLeg) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.legs[leg.ID] = *leg
	return nil
}

func (r *CatalogRepository) RemoveTransitionLeg(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.legs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.legs, id)
	return nil
}

func (r *CatalogRepository) ListTransitionLegs(_ context.Context, flightID uuid.UUID) ([]domain.TransitionLeg, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []domain.TransitionLeg
	for _, leg := range r.store.legs {
		if leg.FlightID == flightID {
			result = append(result, leg)
		}
	}
	return result, nil
}

func (r *CatalogRepository) SeedTicketClasses(_ context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if len(r.store.classes) == 0 {
		r.store.classes = domain.AllTicketClasses()
	}
	return nil
}

func (r *CatalogRepository) ListTicketClasses(_ context.Context) ([]domain.TicketClass, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return append([]domain.TicketClass(nil), r.store.classes...), nil
}
