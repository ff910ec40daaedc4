package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trhgquan/flight-manager/internal/core/domain"
	"github.com/trhgquan/flight-manager/internal/core/ports"
	"github.com/trhgquan/flight-manager/internal/core/ports/mocks"
	"github.com/trhgquan/flight-manager/internal/core/services"
)

// spyCache records whatever the report service stores and serves it back.
type spyCache struct {
	stored *domain.PeriodReport
	hit    *domain.PeriodReport
}

func (c *spyCache) Get(_ context.Context, _ *int, _ int) (*domain.PeriodReport, bool) {
	if c.hit != nil {
		return c.hit, true
	}
	return nil, false
}

func (c *spyCache) Set(_ context.Context, report *domain.PeriodReport) error {
	c.stored = report
	return nil
}

func newReportService(f *fixture, cache ports.ReportCache) *services.ReportService {
	return services.NewReportService(
		f.store.Catalog(), f.store.Tickets(),
		services.NewSearchService(f.store.Catalog()), cache, f.clock)
}

// Occupancy counts paid tickets against the configured capacity, not
// against the ticket rows: two claims with one payment on a three seat
// flight is one third booked and one hundred in turnover.
func TestFlightStatistics_PaidTicketsOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.FlightDetail{
		FirstClassSeats: 1,
		EconomySeats:    2,
		FirstClassPrice: 500,
		EconomyPrice:    100,
	})

	paid, err := f.booking.Book(ctx, uuid.New(), f.flight.ID, domain.ClassEconomy, somePassenger())
	require.NoError(t, err)
	_, err = f.booking.Book(ctx, uuid.New(), f.flight.ID, domain.ClassEconomy, somePassenger())
	require.NoError(t, err)

	_, err = f.booking.Pay(ctx, paid.TicketID)
	require.NoError(t, err)

	svc := newReportService(f, nil)

	stats, err := svc.FlightStatistics(ctx, f.flight.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.SeatsTotal)
	assert.Equal(t, 1, stats.SeatsBooked)
	assert.Equal(t, 2, stats.SeatsEmpty)
	assert.InDelta(t, 1.0/3.0, stats.BookedRatio, 1e-9)
	assert.Equal(t, 100.0, stats.Turnover)
}

func TestFlightStatistics_ZeroSeats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.FlightDetail{EconomySeats: 1, EconomyPrice: 100})

	// A flight left with its empty detail row has zero capacity.
	bare, err := f.catalog.CreateFlight(ctx, f.flight.DepartureAirportID, f.flight.ArrivalAirportID,
		f.clock.Now().Add(24*time.Hour))
	require.NoError(t, err)

	svc := newReportService(f, nil)

	stats, err := svc.FlightStatistics(ctx, bare.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.SeatsTotal)
	assert.Equal(t, 0.0, stats.BookedRatio)
	assert.Equal(t, 0.0, stats.Turnover)
}

func TestFlightStatistics_UnknownFlight(t *testing.T) {
	f := newFixture(t, domain.FlightDetail{EconomySeats: 1, EconomyPrice: 100})
	svc := newReportService(f, nil)

	_, err := svc.FlightStatistics(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPeriodReport_CountsDepartedFlightsOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.FlightDetail{EconomySeats: 2, EconomyPrice: 100})

	reservation, err := f.booking.Book(ctx, uuid.New(), f.flight.ID, domain.ClassEconomy, somePassenger())
	require.NoError(t, err)
	_, err = f.booking.Pay(ctx, reservation.TicketID)
	require.NoError(t, err)

	// A second flight in the same month that has not departed yet.
	upcomingDate := time.Date(2024, 6, 25, 8, 0, 0, 0, time.UTC)
	upcoming, err := f.catalog.CreateFlight(ctx, f.flight.DepartureAirportID, f.flight.ArrivalAirportID, upcomingDate)
	require.NoError(t, err)
	require.NoError(t, f.catalog.SetFlightDetail(ctx, &domain.FlightDetail{
		FlightID:      upcoming.ID,
		FlightMinutes: 120,
		EconomySeats:  2,
		EconomyPrice:  100,
	}))

	// Past the first departure, before the second.
	f.clock.Advance(7 * 24 * time.Hour)

	svc := newReportService(f, nil)

	month := 6
	report, err := svc.PeriodReport(ctx, &month, 2024)
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalFlights)
	assert.Equal(t, 1, report.TotalTicketsSold)
	assert.Equal(t, 100.0, report.TotalRevenue)
	assert.Empty(t, report.Months)
}

func TestPeriodReport_YearlyBreakdown(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.FlightDetail{EconomySeats: 2, EconomyPrice: 100})

	june, err := f.booking.Book(ctx, uuid.New(), f.flight.ID, domain.ClassEconomy, somePassenger())
	require.NoError(t, err)
	_, err = f.booking.Pay(ctx, june.TicketID)
	require.NoError(t, err)

	julyFlight, err := f.catalog.CreateFlight(ctx, f.flight.DepartureAirportID, f.flight.ArrivalAirportID,
		time.Date(2024, 7, 10, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, f.catalog.SetFlightDetail(ctx, &domain.FlightDetail{
		FlightID:      julyFlight.ID,
		FlightMinutes: 120,
		EconomySeats:  2,
		EconomyPrice:  300,
	}))

	july, err := f.booking.Book(ctx, uuid.New(), julyFlight.ID, domain.ClassEconomy, somePassenger())
	require.NoError(t, err)
	_, err = f.booking.Pay(ctx, july.TicketID)
	require.NoError(t, err)

	// Both flights are in the past by year end.
	f.clock.now = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	cache := &spyCache{}
	svc := newReportService(f, cache)

	report, err := svc.PeriodReport(ctx, nil, 2024)
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalFlights)
	assert.Equal(t, 2, report.TotalTicketsSold)
	assert.Equal(t, 400.0, report.TotalRevenue)

	require.Len(t, report.Months, 12)
	assert.Equal(t, 100.0, report.Months[5].Revenue)
	assert.InDelta(t, 25.0, report.Months[5].Ratio, 1e-9)
	assert.Equal(t, 300.0, report.Months[6].Revenue)
	assert.InDelta(t, 75.0, report.Months[6].Ratio, 1e-9)
	assert.Equal(t, 0.0, report.Months[0].Revenue)
	assert.Equal(t, 0.0, report.Months[0].Ratio)

	// The computed report was handed to the cache.
	require.NotNil(t, cache.stored)
	assert.Equal(t, 400.0, cache.stored.TotalRevenue)
}

func TestPeriodReport_EmptyPeriod(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.FlightDetail{EconomySeats: 2, EconomyPrice: 100})

	svc := newReportService(f, nil)

	report, err := svc.PeriodReport(ctx, nil, 1999)
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalFlights)
	assert.Equal(t, 0.0, report.TotalRevenue)
	require.Len(t, report.Months, 12)
	for _, m := range report.Months {
		assert.Equal(t, 0.0, m.Ratio)
	}
}

func TestPeriodReport_ServedFromCache(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}

	month := 6
	cached := &domain.PeriodReport{Month: &month, Year: 2024, TotalFlights: 7, TotalRevenue: 1234}

	// The catalog must stay untouched on a cache hit; no expectations set.
	catalogRepo := mocks.NewCatalogRepository(t)
	ticketRepo := mocks.NewTicketRepository(t)

	svc := services.NewReportService(catalogRepo, ticketRepo,
		services.NewSearchService(catalogRepo), &spyCache{hit: cached}, clock)

	report, err := svc.PeriodReport(ctx, &month, 2024)
	require.NoError(t, err)
	assert.Equal(t, cached, report)
}
