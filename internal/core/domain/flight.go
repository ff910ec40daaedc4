package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Flight struct {
	ID                 uuid.UUID
	DepartureAirportID uuid.UUID
	ArrivalAirportID   uuid.UUID
	DateTime           time.Time
	CreatedAt          time.Time
}

func (f *Flight) Validate() error {
	if f.DepartureAirportID == uuid.Nil || f.ArrivalAirportID == uuid.Nil {
		return fmt.Errorf("%w: departure and arrival airports are required", ErrInvalidInput)
	}
	if f.DepartureAirportID == f.ArrivalAirportID {
		return fmt.Errorf("%w: departure and arrival airports must differ", ErrInvalidInput)
	}
	if f.DateTime.IsZero() {
		return fmt.Errorf("%w: departure time is required", ErrInvalidInput)
	}
	return nil
}

func (f *Flight) IsDeparted(now time.Time) bool {
	return !now.Before(f.DateTime)
}

// IsBookable reports whether new bookings are accepted: the flight has not
// departed and fewer tickets are claimed than there are seats.
func (f *Flight) IsBookable(now time.Time, ticketsSold, totalSeats int) bool {
	return !f.IsDeparted(now) && ticketsSold < totalSeats
}

// FlightDetail carries per-flight capacity and pricing. It is created empty
// together with its flight and filled in by a later update.
type FlightDetail struct {
	FlightID        uuid.UUID
	FlightMinutes   int
	FirstClassSeats int
	EconomySeats    int
	FirstClassPrice float64
	EconomyPrice    float64
	CreatedAt       time.Time
}

func (d *FlightDetail) Validate() error {
	if d.FlightMinutes <= 0 {
		return fmt.Errorf("%w: flight time must be positive, got %d", ErrInvalidInput, d.FlightMinutes)
	}
	if d.FirstClassSeats < 0 || d.EconomySeats < 0 {
		return fmt.Errorf("%w: seat sizes must not be negative", ErrInvalidInput)
	}
	if d.FirstClassPrice < 0 || d.EconomyPrice < 0 {
		return fmt.Errorf("%w: prices must not be negative", ErrInvalidInput)
	}
	return nil
}

func (d *FlightDetail) TotalSeats() int {
	if d == nil {
		return 0
	}
	return d.FirstClassSeats + d.EconomySeats
}

// SeatsFor returns the seat size of a class. A nil detail means the flight
// was created but never configured; capacity is zero, not an error.
func (d *FlightDetail) SeatsFor(class TicketClass) (int, error) {
	if d == nil {
		return 0, nil
	}
	switch class {
	case ClassFirst:
		return d.FirstClassSeats, nil
	case ClassEconomy:
		return d.EconomySeats, nil
	default:
		return 0, fmt.Errorf("%w: unknown ticket class %q", ErrInvalidInput, class)
	}
}

func (d *FlightDetail) PriceFor(class TicketClass) (float64, error) {
	if d == nil {
		return 0, fmt.Errorf("%w: flight has no detail", ErrInvalidInput)
	}
	switch class {
	case ClassFirst:
		return d.FirstClassPrice, nil
	case ClassEconomy:
		return d.EconomyPrice, nil
	default:
		return 0, fmt.Errorf("%w: unknown ticket class %q", ErrInvalidInput, class)
	}
}
