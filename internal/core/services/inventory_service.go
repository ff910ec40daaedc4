package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/trhgquan/flight-manager/internal/core/domain"
	"github.com/trhgquan/flight-manager/internal/core/ports"
)

// availabilityTTL bounds how stale a cached seat count can get if an
// invalidation is lost.
const availabilityTTL = time.Minute

func availabilityKey(flightID uuid.UUID) string {
	return fmt.Sprintf("availability:%s", flightID)
}

// InventoryService answers how many seats of a class remain sellable on a
// flight. Slots are not pre-materialized: availability is the unclaimed
// ticket rows plus the rows that may still be created under the seat size.
// Counts are served from a per-flight redis hash that the booking engine
// drops whenever it claims or releases a slot.
type InventoryService struct {
	catalogRepo ports.CatalogRepository
	ticketRepo  ports.TicketRepository
	cache       *redis.Client
	log         *logrus.Logger
}

func NewInventoryService(catalogRepo ports.CatalogRepository, ticketRepo ports.TicketRepository, cache *redis.Client) *InventoryService {
	return &InventoryService{
		catalogRepo: catalogRepo,
		ticketRepo:  ticketRepo,
		cache:       cache,
		log:         logrus.StandardLogger(),
	}
}

// AvailableSlots returns the existing unclaimed ticket rows for the class.
func (s *InventoryService) AvailableSlots(ctx context.Context, flightID uuid.UUID, class domain.TicketClass) ([]domain.Ticket, error) {
	if _, err := s.catalogRepo.GetFlight(ctx, flightID); err != nil {
		return nil, err
	}
	return s.ticketRepo.ListUnclaimed(ctx, flightID, class)
}

// AvailableSeatCount counts unclaimed rows plus the headroom left under the
// class seat size. A flight without a configured detail has zero capacity.
func (s *InventoryService) AvailableSeatCount(ctx context.Context, flightID uuid.UUID, class domain.TicketClass) (int, error) {
	if count, ok := s.cachedSeatCount(ctx, flightID, class); ok {
		return count, nil
	}

	detail, err := s.catalogRepo.GetFlightDetail(ctx, flightID)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	seats, err := detail.SeatsFor(class)
	if err != nil {
		return 0, err
	}

	unclaimed, err := s.ticketRepo.ListUnclaimed(ctx, flightID, class)
	if err != nil {
		return 0, err
	}

	created, err := s.ticketRepo.CountByFlightClass(ctx, flightID, class)
	if err != nil {
		return 0, err
	}

	headroom := seats - created
	if headroom < 0 {
		headroom = 0
	}

	count := len(unclaimed) + headroom
	s.storeSeatCount(ctx, flightID, class, count)

	return count, nil
}

func (s *InventoryService) cachedSeatCount(ctx context.Context, flightID uuid.UUID, class domain.TicketClass) (int, bool) {
	if s.cache == nil {
		return 0, false
	}

	count, err := s.cache.HGet(ctx, availabilityKey(flightID), string(class)).Int()
	if err != nil {
		return 0, false
	}

	return count, true
}

func (s *InventoryService) storeSeatCount(ctx context.Context, flightID uuid.UUID, class domain.TicketClass, count int) {
	if s.cache == nil {
		return
	}

	key := availabilityKey(flightID)
	if err := s.cache.HSet(ctx, key, string(class), count).Err(); err != nil {
		s.log.WithError(err).WithField("flight_id", flightID).Warn("could not cache availability")
		return
	}
	if err := s.cache.Expire(ctx, key, availabilityTTL).Err(); err != nil {
		s.log.WithError(err).WithField("flight_id", flightID).Warn("could not expire availability key")
	}
}

// TicketsSold counts the claimed tickets on a flight, regardless of class.
func (s *InventoryService) TicketsSold(ctx context.Context, flightID uuid.UUID) (int, error) {
	return s.ticketRepo.CountClaimed(ctx, flightID)
}
