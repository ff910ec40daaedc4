package domain

import (
	"time"

	"github.com/google/uuid"
)

// TicketClass is the fixed set of seat classes, seeded once at startup.
type TicketClass string

const (
	ClassFirst   TicketClass = "First"
	ClassEconomy TicketClass = "Economy"
)

func AllTicketClasses() []TicketClass {
	return []TicketClass{ClassFirst, ClassEconomy}
}

func (c TicketClass) Valid() bool {
	return c == ClassFirst || c == ClassEconomy
}

// Ticket is one seat-slot of a class on a flight. An unclaimed slot has no
// customer and no passenger data; claiming fills those in, payment flips
// IsBooked. Version guards concurrent claims (optimistic lock).
type Ticket struct {
	ID           uuid.UUID
	CustomerID   *uuid.UUID
	FlightID     uuid.UUID
	Class        TicketClass
	Name         string
	Phone        string
	IdentityCode string
	IsBooked     bool
	Price        float64
	Version      int
	CreatedAt    time.Time
}

func (t *Ticket) IsClaimed() bool {
	return t.CustomerID != nil
}

// IsCanceled is a derived state: a slot that was claimed but never paid on
// a flight that has already departed.
func (t *Ticket) IsCanceled(departed bool) bool {
	return departed && t.IsClaimed() && !t.IsBooked
}

// Passenger is the claim payload written onto a slot when it is booked.
type Passenger struct {
	Name         string
	Phone        string
	IdentityCode string
}

// Reservation records when a slot was claimed, independent of payment.
// DateBooked is cleared again when the slot is released.
type Reservation struct {
	ID         uuid.UUID
	TicketID   uuid.UUID
	Code       string
	DateBooked *time.Time
	CreatedAt  time.Time
}
