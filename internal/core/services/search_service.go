package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trhgquan/flight-manager/internal/core/domain"
	"github.com/trhgquan/flight-manager/internal/core/ports"
)

// SearchCriteria are all optional; a nil field is simply not checked.
type SearchCriteria struct {
	DepartureAirportID *uuid.UUID
	ArrivalAirportID   *uuid.UUID
	DateTime           *time.Time
	StartDate          *time.Time
	EndDate            *time.Time
}

type SearchService struct {
	catalogRepo ports.CatalogRepository
}

func NewSearchService(catalogRepo ports.CatalogRepository) *SearchService {
	return &SearchService{catalogRepo: catalogRepo}
}

// FindFlightsByCriteria includes a flight as soon as one criterion matches,
// checked in a fixed order: departure airport, arrival airport, exact
// departure time, then the date window. Criteria are OR-ed, not AND-ed, and
// the first match wins per flight — a flight failing the departure filter is
// still included when its arrival matches. This mirrors the behavior the
// rest of the system depends on; do not tighten it to AND semantics.
func (s *SearchService) FindFlightsByCriteria(ctx context.Context, criteria SearchCriteria) ([]domain.Flight, error) {
	flights, err := s.catalogRepo.ListFlights(ctx)
	if err != nil {
		return nil, err
	}

	var result []domain.Flight
	for _, flight := range flights {
		if matchesAnyCriterion(flight, criteria) {
			result = append(result, flight)
		}
	}

	return result, nil
}

func matchesAnyCriterion(flight domain.Flight, c SearchCriteria) bool {
	if c.DepartureAirportID != nil && flight.DepartureAirportID == *c.DepartureAirportID {
		return true
	}
	if c.ArrivalAirportID != nil && flight.ArrivalAirportID == *c.ArrivalAirportID {
		return true
	}
	if c.DateTime != nil && flight.DateTime.Equal(*c.DateTime) {
		return true
	}

	// The date window checks are chained: with both bounds set only the
	// range check runs, otherwise whichever single bound is present.
	date := dateOnly(flight.DateTime)
	switch {
	case c.StartDate != nil && c.EndDate != nil:
		return !date.Before(dateOnly(*c.StartDate)) && !date.After(dateOnly(*c.EndDate))
	case c.StartDate != nil:
		return !date.Before(dateOnly(*c.StartDate))
	case c.EndDate != nil:
		return !date.After(dateOnly(*c.EndDate))
	}

	return false
}

// FindFlightsForReport returns the flights of a reporting period: a given
// month of a year, or the whole year when month is nil.
func (s *SearchService) FindFlightsForReport(ctx context.Context, month *int, year int) ([]domain.Flight, error) {
	flights, err := s.catalogRepo.ListFlights(ctx)
	if err != nil {
		return nil, err
	}

	var result []domain.Flight
	for _, flight := range flights {
		if flight.DateTime.Year() != year {
			continue
		}
		if month != nil && int(flight.DateTime.Month()) != *month {
			continue
		}
		result = append(result, flight)
	}

	return result, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
