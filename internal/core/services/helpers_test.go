package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/trhgquan/flight-manager/internal/adapter/repository/memory"
	"github.com/trhgquan/flight-manager/internal/core/domain"
	"github.com/trhgquan/flight-manager/internal/core/services"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type stubPolicy struct {
	lateToBook   bool
	lateToCancel bool
}

func (p stubPolicy) IsLateToBook(time.Time, *domain.Flight) bool   { return p.lateToBook }
func (p stubPolicy) IsLateToCancel(time.Time, *domain.Flight) bool { return p.lateToCancel }

// fixture wires the booking engine against the in-memory store with one
// flight departing 72 hours after the fake clock's start.
type fixture struct {
	store   *memory.Store
	clock   *fakeClock
	catalog *services.CatalogService
	booking *services.BookingService
	flight  *domain.Flight
}

func newFixture(t *testing.T, detail domain.FlightDetail) *fixture {
	t.Helper()

	ctx := context.Background()
	store := memory.NewStore()
	clock := &fakeClock{now: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}

	catalog := services.NewCatalogService(store.Catalog(), clock)
	require.NoError(t, catalog.Seed(ctx))

	departure, err := catalog.CreateAirport(ctx, "Tan Son Nhat")
	require.NoError(t, err)
	arrival, err := catalog.CreateAirport(ctx, "Noi Bai")
	require.NoError(t, err)

	flight, err := catalog.CreateFlight(ctx, departure.ID, arrival.ID, clock.now.Add(72*time.Hour))
	require.NoError(t, err)

	detail.FlightID = flight.ID
	if detail.FlightMinutes == 0 {
		detail.FlightMinutes = 120
	}
	require.NoError(t, catalog.SetFlightDetail(ctx, &detail))

	booking := services.NewBookingService(
		store.Catalog(), store.Tickets(), store.Reservations(), nil,
		services.WithClock(clock),
		services.WithSlotSelector(services.FirstSlotSelector),
	)

	return &fixture{
		store:   store,
		clock:   clock,
		catalog: catalog,
		booking: booking,
		flight:  flight,
	}
}

func somePassenger() domain.Passenger {
	return domain.Passenger{
		Name:         "Nguyen Van A",
		Phone:        "0901234567",
		IdentityCode: "079123456789",
	}
}
