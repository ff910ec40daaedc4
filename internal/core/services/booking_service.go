package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v3"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/trhgquan/flight-manager/internal/core/domain"
	"github.com/trhgquan/flight-manager/internal/core/ports"
)

// SlotSelector picks which of the candidate unclaimed slots to claim. Any
// slot is equally valid; the default picks one at random, tests inject a
// deterministic selector.
type SlotSelector func(slots []domain.Ticket) int

func RandomSlotSelector(slots []domain.Ticket) int {
	return rand.Intn(len(slots))
}

func FirstSlotSelector(slots []domain.Ticket) int {
	return 0
}

type BookingService struct {
	catalogRepo     ports.CatalogRepository
	ticketRepo      ports.TicketRepository
	reservationRepo ports.ReservationRepository
	clock           ports.Clock
	policy          ports.CutoffPolicy
	selector        SlotSelector
	cache           *redis.Client
	log             *logrus.Logger
}

type BookingOption func(*BookingService)

func WithSlotSelector(sel SlotSelector) BookingOption {
	return func(s *BookingService) { s.selector = sel }
}

func WithCutoffPolicy(p ports.CutoffPolicy) BookingOption {
	return func(s *BookingService) { s.policy = p }
}

func WithClock(c ports.Clock) BookingOption {
	return func(s *BookingService) { s.clock = c }
}

func NewBookingService(
	catalogRepo ports.CatalogRepository,
	ticketRepo ports.TicketRepository,
	reservationRepo ports.ReservationRepository,
	cache *redis.Client,
	opts ...BookingOption,
) *BookingService {
	s := &BookingService{
		catalogRepo:     catalogRepo,
		ticketRepo:      ticketRepo,
		reservationRepo: reservationRepo,
		clock:           ports.SystemClock{},
		policy:          ports.AllowAllPolicy{},
		selector:        RandomSlotSelector,
		cache:           cache,
		log:             logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Book claims one seat-slot of the given class for the customer. It walks
// the unclaimed slots chosen by the selector, retrying on lost claims; when
// no existing slot can be claimed and the class pool is not exhausted, a new
// slot is materialized already claimed. The returned reservation carries the
// booking date; payment is a separate step.
func (s *BookingService) Book(ctx context.Context, customerID, flightID uuid.UUID, class domain.TicketClass, passenger domain.Passenger) (*domain.Reservation, error) {
	if !class.Valid() {
		return nil, fmt.Errorf("%w: unknown ticket class %q", domain.ErrInvalidInput, class)
	}

	flight, err := s.catalogRepo.GetFlight(ctx, flightID)
	if err != nil {
		return nil, err
	}

	detail, err := s.flightDetail(ctx, flightID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	sold, err := s.ticketRepo.CountClaimed(ctx, flightID)
	if err != nil {
		return nil, err
	}

	if !flight.IsBookable(now, sold, detail.TotalSeats()) {
		return nil, domain.ErrFlightNotBookable
	}

	if s.policy.IsLateToBook(now, flight) {
		return nil, domain.ErrTooLateToBook
	}

	price, err := detail.PriceFor(class)
	if err != nil {
		return nil, err
	}

	seatLimit, err := detail.SeatsFor(class)
	if err != nil {
		return nil, err
	}

	ticketID, err := s.claimSlot(ctx, customerID, flightID, class, passenger, price, seatLimit, now)
	if err != nil {
		return nil, err
	}

	reservation, err := s.reserve(ctx, ticketID, now)
	if err != nil {
		// The claim went through but the reservation did not: give the
		// slot back so it does not stay stuck on this customer.
		if releaseErr := s.ticketRepo.Release(ctx, ticketID); releaseErr != nil {
			s.log.WithError(releaseErr).WithField("ticket_id", ticketID).Error("could not release slot after failed reservation")
		}
		return nil, err
	}

	s.invalidateAvailability(ctx, flightID)

	return reservation, nil
}

func (s *BookingService) claimSlot(ctx context.Context, customerID, flightID uuid.UUID, class domain.TicketClass, passenger domain.Passenger, price float64, seatLimit int, now time.Time) (uuid.UUID, error) {
	slots, err := s.ticketRepo.ListUnclaimed(ctx, flightID, class)
	if err != nil {
		return uuid.Nil, err
	}

	for len(slots) > 0 {
		i := s.selector(slots)
		slot := slots[i]

		err := s.ticketRepo.Claim(ctx, slot.ID, slot.Version, customerID, passenger, price)
		if err == nil {
			return slot.ID, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return uuid.Nil, err
		}

		// Lost the race for this slot, try the remaining ones.
		slots = append(slots[:i], slots[i+1:]...)
	}

	ticket := &domain.Ticket{
		ID:           uuid.New(),
		CustomerID:   &customerID,
		FlightID:     flightID,
		Class:        class,
		Name:         passenger.Name,
		Phone:        passenger.Phone,
		IdentityCode: passenger.IdentityCode,
		Price:        price,
		Version:      1,
		CreatedAt:    now,
	}

	if err := s.ticketRepo.InsertClaimed(ctx, ticket, seatLimit); err != nil {
		return uuid.Nil, err
	}

	return ticket.ID, nil
}

func (s *BookingService) reserve(ctx context.Context, ticketID uuid.UUID, now time.Time) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByTicket(ctx, ticketID)
	if errors.Is(err, domain.ErrNotFound) {
		reservation = &domain.Reservation{
			ID:        uuid.New(),
			TicketID:  ticketID,
			Code:      shortuuid.New(),
			CreatedAt: now,
		}
	} else if err != nil {
		return nil, err
	}

	// The booking date is a calendar day in the clock's zone, not a
	// truncated UTC instant.
	today := dateOnly(now)
	reservation.DateBooked = &today

	if err := s.reservationRepo.Upsert(ctx, reservation); err != nil {
		return nil, fmt.Errorf("could not store reservation: %w", err)
	}

	return reservation, nil
}

// Pay confirms a claimed slot. The price snapshot taken at booking time is
// left untouched.
func (s *BookingService) Pay(ctx context.Context, ticketID uuid.UUID) (*domain.Ticket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if ticket.IsBooked {
		return nil, domain.ErrAlreadyPaid
	}
	if !ticket.IsClaimed() {
		return nil, fmt.Errorf("%w: ticket is not claimed by any customer", domain.ErrInvalidInput)
	}

	// Like Cancel, tolerate a ticket orphaned by flight deletion; unlike
	// Cancel, there is nothing left to pay for.
	flight, err := s.catalogRepo.GetFlight(ctx, ticket.FlightID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: flight no longer exists", domain.ErrFlightNotBookable)
	}
	if err != nil {
		return nil, err
	}
	if flight.IsDeparted(s.clock.Now()) {
		return nil, domain.ErrFlightDeparted
	}

	if err := s.ticketRepo.MarkPaid(ctx, ticket.ID, ticket.Version); err != nil {
		return nil, err
	}

	ticket.IsBooked = true
	ticket.Version++

	return ticket, nil
}

// Cancel releases a claimed-but-unpaid slot back to the pool. The slot is
// immediately claimable by other customers.
func (s *BookingService) Cancel(ctx context.Context, reservationID uuid.UUID) error {
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}

	ticket, err := s.ticketRepo.GetByID(ctx, reservation.TicketID)
	if err != nil {
		return err
	}

	// A removed flight leaves the ticket orphaned; cancellation then has no
	// cutoff to check.
	flight, err := s.catalogRepo.GetFlight(ctx, ticket.FlightID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	if flight != nil && s.policy.IsLateToCancel(s.clock.Now(), flight) {
		return domain.ErrTooLateToCancel
	}

	if err := s.ticketRepo.Release(ctx, ticket.ID); err != nil {
		return err
	}

	reservation.DateBooked = nil
	if err := s.reservationRepo.Upsert(ctx, reservation); err != nil {
		return fmt.Errorf("could not clear reservation: %w", err)
	}

	s.invalidateAvailability(ctx, ticket.FlightID)

	return nil
}

func (s *BookingService) invalidateAvailability(ctx context.Context, flightID uuid.UUID) {
	if s.cache == nil {
		return
	}

	key := availabilityKey(flightID)
	if err := s.cache.Del(ctx, key).Err(); err != nil {
		s.log.WithError(err).WithField("flight_id", flightID).Warn("could not invalidate availability cache")
	}
}

func (s *BookingService) flightDetail(ctx context.Context, flightID uuid.UUID) (*domain.FlightDetail, error) {
	detail, err := s.catalogRepo.GetFlightDetail(ctx, flightID)
	if errors.Is(err, domain.ErrNotFound) {
		// No detail row means the flight was never configured; capacity is
		// simply zero.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return detail, nil
}
