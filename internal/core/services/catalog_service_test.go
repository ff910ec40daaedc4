package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trhgquan/flight-manager/internal/adapter/repository/memory"
	"github.com/trhgquan/flight-manager/internal/core/domain"
	"github.com/trhgquan/flight-manager/internal/core/services"
)

func newCatalogService() (*services.CatalogService, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}
	return services.NewCatalogService(memory.NewStore().Catalog(), clock), clock
}

func TestCreateAirport(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCatalogService()

	airport, err := svc.CreateAirport(ctx, "Tan Son Nhat")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, airport.ID)

	_, err = svc.CreateAirport(ctx, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateFlight_RequiresKnownAirports(t *testing.T) {
	ctx := context.Background()
	svc, clock := newCatalogService()

	airport, err := svc.CreateAirport(ctx, "Noi Bai")
	require.NoError(t, err)

	_, err = svc.CreateFlight(ctx, airport.ID, uuid.New(), clock.Now().Add(24*time.Hour))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.CreateFlight(ctx, airport.ID, airport.ID, clock.Now().Add(24*time.Hour))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateFlight_StartsWithEmptyDetail(t *testing.T) {
	ctx := context.Background()
	svc, clock := newCatalogService()

	departure, err := svc.CreateAirport(ctx, "Tan Son Nhat")
	require.NoError(t, err)
	arrival, err := svc.CreateAirport(ctx, "Noi Bai")
	require.NoError(t, err)

	flight, err := svc.CreateFlight(ctx, departure.ID, arrival.ID, clock.Now().Add(24*time.Hour))
	require.NoError(t, err)

	detail, err := svc.GetFlightDetail(ctx, flight.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, detail.TotalSeats())
}

func TestSetFlightDetail_Validates(t *testing.T) {
	ctx := context.Background()
	svc, clock := newCatalogService()

	departure, err := svc.CreateAirport(ctx, "Tan Son Nhat")
	require.NoError(t, err)
	arrival, err := svc.CreateAirport(ctx, "Noi Bai")
	require.NoError(t, err)
	flight, err := svc.CreateFlight(ctx, departure.ID, arrival.ID, clock.Now().Add(24*time.Hour))
	require.NoError(t, err)

	err = svc.SetFlightDetail(ctx, &domain.FlightDetail{FlightID: flight.ID, FlightMinutes: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = svc.SetFlightDetail(ctx, &domain.FlightDetail{FlightID: flight.ID, FlightMinutes: 90, EconomyPrice: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = svc.SetFlightDetail(ctx, &domain.FlightDetail{FlightID: uuid.New(), FlightMinutes: 90})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.SetFlightDetail(ctx, &domain.FlightDetail{
		FlightID:      flight.ID,
		FlightMinutes: 90,
		EconomySeats:  100,
		EconomyPrice:  50,
	})
	assert.NoError(t, err)
}

func TestAddTransitionLeg(t *testing.T) {
	ctx := context.Background()
	svc, clock := newCatalogService()

	departure, err := svc.CreateAirport(ctx, "Tan Son Nhat")
	require.NoError(t, err)
	arrival, err := svc.CreateAirport(ctx, "Noi Bai")
	require.NoError(t, err)
	stop, err := svc.CreateAirport(ctx, "Da Nang")
	require.NoError(t, err)

	flight, err := svc.CreateFlight(ctx, departure.ID, arrival.ID, clock.Now().Add(24*time.Hour))
	require.NoError(t, err)

	leg, err := svc.AddTransitionLeg(ctx, flight.ID, stop.ID, 45, "refuel")
	require.NoError(t, err)
	assert.Equal(t, 45, leg.Minutes)

	// The same airport cannot be a stop twice.
	_, err = svc.AddTransitionLeg(ctx, flight.ID, stop.ID, 30, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Nor can either endpoint of the flight.
	_, err = svc.AddTransitionLeg(ctx, flight.ID, departure.ID, 30, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Transition time must be positive.
	another, err := svc.CreateAirport(ctx, "Cam Ranh")
	require.NoError(t, err)
	_, err = svc.AddTransitionLeg(ctx, flight.ID, another.ID, 0, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	legs, err := svc.ListTransitionLegs(ctx, flight.ID)
	require.NoError(t, err)
	assert.Len(t, legs, 1)

	require.NoError(t, svc.RemoveTransitionLeg(ctx, leg.ID))
	legs, err = svc.ListTransitionLegs(ctx, flight.ID)
	require.NoError(t, err)
	assert.Empty(t, legs)
}

func TestSeedTicketClasses(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCatalogService()

	require.NoError(t, svc.Seed(ctx))
	require.NoError(t, svc.Seed(ctx))

	classes, err := svc.ListTicketClasses(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.TicketClass{domain.ClassFirst, domain.ClassEconomy}, classes)
}
