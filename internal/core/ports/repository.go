package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/trhgquan/flight-manager/internal/core/domain"
)

type CatalogRepository interface {
	CreateAirport(ctx context.Context, airport *domain.Airport) error
	UpdateAirport(ctx context.Context, airport *domain.Airport) error
	DeleteAirport(ctx context.Context, id uuid.UUID) error
	GetAirport(ctx context.Context, id uuid.UUID) (*domain.Airport, error)
	ListAirports(ctx context.Context) ([]domain.Airport, error)

	// CreateFlight stores the flight together with an empty detail row.
	CreateFlight(ctx context.Context, flight *domain.Flight) error
	UpdateFlight(ctx context.Context, flight *domain.Flight) error
	// DeleteFlight cascades to the detail and transition legs; tickets keep
	// their rows with the flight reference cleared.
	DeleteFlight(ctx context.Context, id uuid.UUID) error
	GetFlight(ctx context.Context, id uuid.UUID) (*domain.Flight, error)
	ListFlights(ctx context.Context) ([]domain.Flight, error)

	GetFlightDetail(ctx context.Context, flightID uuid.UUID) (*domain.FlightDetail, error)
	UpdateFlightDetail(ctx context.Context, detail *domain.FlightDetail) error

	AddTransitionLeg(ctx context.Context, leg *domain.TransitionLeg) error
	RemoveTransitionLeg(ctx context.Context, id uuid.UUID) error
	ListTransitionLegs(ctx context.Context, flightID uuid.UUID) ([]domain.TransitionLeg, error)

	SeedTicketClasses(ctx context.Context) error
	ListTicketClasses(ctx context.Context) ([]domain.TicketClass, error)
}

type TicketRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Ticket, error)
	ListByFlight(ctx context.Context, flightID uuid.UUID) ([]domain.Ticket, error)
	ListUnclaimed(ctx context.Context, flightID uuid.UUID, class domain.TicketClass) ([]domain.Ticket, error)
	CountByFlightClass(ctx context.Context, flightID uuid.UUID, class domain.TicketClass) (int, error)
	CountClaimed(ctx context.Context, flightID uuid.UUID) (int, error)

	// Claim assigns an unclaimed slot to a customer. It succeeds only if the
	// slot still has the given version and no customer; otherwise it fails
	// with domain.ErrConflict.
	Claim(ctx context.Context, ticketID uuid.UUID, version int, customerID uuid.UUID, passenger domain.Passenger, price float64) error

	// InsertClaimed materializes a new already-claimed slot. The insert is
	// atomic with the pool count: it fails with domain.ErrOutOfSeats when
	// the (flight, class) pool already holds seatLimit rows.
	InsertClaimed(ctx context.Context, ticket *domain.Ticket, seatLimit int) error

	// MarkPaid flips IsBooked on a claimed slot, guarded by version.
	MarkPaid(ctx context.Context, ticketID uuid.UUID, version int) error

	// Release returns a slot to the unclaimed pool, clearing customer,
	// passenger data and price.
	Release(ctx context.Context, ticketID uuid.UUID) error
}

type ReservationRepository interface {
	Upsert(ctx context.Context, reservation *domain.Reservation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	GetByTicket(ctx context.Context, ticketID uuid.UUID) (*domain.Reservation, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	GetByUser(ctx context.Context, userID uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}
