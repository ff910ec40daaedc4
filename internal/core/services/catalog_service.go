package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trhgquan/flight-manager/internal/core/domain"
	"github.com/trhgquan/flight-manager/internal/core/ports"
)

// CatalogService is the validation front of the master data: airports,
// flights and their details, transition legs, ticket classes.
type CatalogService struct {
	repo  ports.CatalogRepository
	clock ports.Clock
}

func NewCatalogService(repo ports.CatalogRepository, clock ports.Clock) *CatalogService {
	return &CatalogService{repo: repo, clock: clock}
}

// Seed creates the fixed ticket classes. Safe to call on every startup.
func (s *CatalogService) Seed(ctx context.Context) error {
	return s.repo.SeedTicketClasses(ctx)
}

func (s *CatalogService) CreateAirport(ctx context.Context, name string) (*domain.Airport, error) {
	airport := &domain.Airport{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: s.clock.Now(),
	}
	if err := airport.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.CreateAirport(ctx, airport); err != nil {
		return nil, err
	}
	return airport, nil
}

func (s *CatalogService) GetAirport(ctx context.Context, id uuid.UUID) (*domain.Airport, error) {
	return s.repo.GetAirport(ctx, id)
}

func (s *CatalogService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	return s.repo.ListAirports(ctx)
}

func (s *CatalogService) DeleteAirport(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteAirport(ctx, id)
}

// CreateFlight validates and stores a flight. The repository creates the
// empty detail row alongside; capacity and prices come with a later
// SetFlightDetail call.
func (s *CatalogService) CreateFlight(ctx context.Context, departureAirportID, arrivalAirportID uuid.UUID, dateTime time.Time) (*domain.Flight, error) {
	if _, err := s.repo.GetAirport(ctx, departureAirportID); err != nil {
		return nil, fmt.Errorf("departure airport: %w", err)
	}
	if _, err := s.repo.GetAirport(ctx, arrivalAirportID); err != nil {
		return nil, fmt.Errorf("arrival airport: %w", err)
	}

	flight := &domain.Flight{
		ID:                 uuid.New(),
		DepartureAirportID: departureAirportID,
		ArrivalAirportID:   arrivalAirportID,
		DateTime:           dateTime,
		CreatedAt:          s.clock.Now(),
	}
	if err := flight.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.CreateFlight(ctx, flight); err != nil {
		return nil, err
	}
	return flight, nil
}

func (s *CatalogService) GetFlight(ctx context.Context, id uuid.UUID) (*domain.Flight, error) {
	return s.repo.GetFlight(ctx, id)
}

func (s *CatalogService) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	return s.repo.ListFlights(ctx)
}

func (s *CatalogService) DeleteFlight(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteFlight(ctx, id)
}

func (s *CatalogService) GetFlightDetail(ctx context.Context, flightID uuid.UUID) (*domain.FlightDetail, error) {
	return s.repo.GetFlightDetail(ctx, flightID)
}

func (s *CatalogService) SetFlightDetail(ctx context.Context, detail *domain.FlightDetail) error {
	if _, err := s.repo.GetFlight(ctx, detail.FlightID); err != nil {
		return err
	}
	if err := detail.Validate(); err != nil {
		return err
	}
	return s.repo.UpdateFlightDetail(ctx, detail)
}

func (s *CatalogService) AddTransitionLeg(ctx context.Context, flightID, airportID uuid.UUID, minutes int, note string) (*domain.TransitionLeg, error) {
	flight, err := s.repo.GetFlight(ctx, flightID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetAirport(ctx, airportID); err != nil {
		return nil, fmt.Errorf("transition airport: %w", err)
	}

	existing, err := s.repo.ListTransitionLegs(ctx, flightID)
	if err != nil {
		return nil, err
	}

	leg := &domain.TransitionLeg{
		ID:        uuid.New(),
		FlightID:  flightID,
		AirportID: airportID,
		Minutes:   minutes,
		Note:      note,
		CreatedAt: s.clock.Now(),
	}
	if err := leg.Validate(flight, existing); err != nil {
		return nil, err
	}
	if err := s.repo.AddTransitionLeg(ctx, leg); err != nil {
		return nil, err
	}
	return leg, nil
}

func (s *CatalogService) RemoveTransitionLeg(ctx context.Context, id uuid.UUID) error {
	return s.repo.RemoveTransitionLeg(ctx, id)
}

func (s *CatalogService) ListTransitionLegs(ctx context.Context, flightID uuid.UUID) ([]domain.TransitionLeg, error) {
	return s.repo.ListTransitionLegs(ctx, flightID)
}

func (s *CatalogService) ListTicketClasses(ctx context.Context) ([]domain.TicketClass, error) {
	return s.repo.ListTicketClasses(ctx)
}
