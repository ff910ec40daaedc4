// Package memory is an in-process implementation of the repository ports.
// It keeps the same claim semantics as the Postgres adapter (version-checked
// claims, count-gated slot inserts) so the booking engine can be exercised,
// including its races, without a database.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/trhgquan/flight-manager/internal/core/domain"
)

// Store holds all entity state behind one mutex. The per-port repositories
// returned by Catalog, Tickets, Reservations and Customers share it, which
// is what makes count-gated inserts and version-checked claims atomic.
type Store struct {
	mu sync.Mutex

	airports     map[uuid.UUID]domain.Airport
	flights      map[uuid.UUID]domain.Flight
	details      map[uuid.UUID]domain.FlightDetail
	legs         map[uuid.UUID]domain.TransitionLeg
	tickets      map[uuid.UUID]domain.Ticket
	reservations map[uuid.UUID]domain.Reservation
	customers    map[uuid.UUID]domain.Customer
	classes      []domain.TicketClass
}

func NewStore() *Store {
	return &Store{
		airports:     make(map[uuid.UUID]domain.Airport),
		flights:      make(map[uuid.UUID]domain.Flight),
		details:      make(map[uuid.UUID]domain.FlightDetail),
		legs:         make(map[uuid.UUID]domain.TransitionLeg),
		tickets:      make(map[uuid.UUID]domain.Ticket),
		reservations: make(map[uuid.UUID]domain.Reservation),
		customers:    make(map[uuid.UUID]domain.Customer),
	}
}

func (s *Store) Catalog() *CatalogRepository {
	return &CatalogRepository{store: s}
}

func (s *Store) Tickets() *TicketRepository {
	return &TicketRepository{store: s}
}

func (s *Store) Reservations() *ReservationRepository {
	return &ReservationRepository{store: s}
}

func (s *Store) Customers() *CustomerRepository {
	return &CustomerRepository{store: s}
}

func (s *Store) countByFlightClassLocked(flightID uuid.UUID, class domain.TicketClass) int {
	count := 0
	for _, t := range s.tickets {
		if t.FlightID == flightID && t.Class == class {
			count++
		}
	}
	return count
}
