package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Airport struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

func (a *Airport) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: airport name is required", ErrInvalidInput)
	}
	return nil
}

// TransitionLeg is an intermediate stop on a flight. The airport must not
// repeat the flight's endpoints or another leg already on the flight.
type TransitionLeg struct {
	ID        uuid.UUID
	FlightID  uuid.UUID
	AirportID uuid.UUID
	Minutes   int
	Note      string
	CreatedAt time.Time
}

func (l *TransitionLeg) Validate(flight *Flight, existing []TransitionLeg) error {
	if l.Minutes <= 0 {
		return fmt.Errorf("%w: transition time must be positive, got %d", ErrInvalidInput, l.Minutes)
	}
	if l.AirportID == flight.DepartureAirportID || l.AirportID == flight.ArrivalAirportID {
		return fmt.Errorf("%w: transition airport equals a flight endpoint", ErrInvalidInput)
	}
	for _, other := range existing {
		if other.ID != l.ID && other.AirportID == l.AirportID {
			return fmt.Errorf("%w: airport already is a transition stop on this flight", ErrInvalidInput)
		}
	}
	return nil
}
