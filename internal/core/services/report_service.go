package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/trhgquan/flight-manager/internal/core/domain"
	"github.com/trhgquan/flight-manager/internal/core/ports"
)

type ReportService struct {
	catalogRepo ports.CatalogRepository
	ticketRepo  ports.TicketRepository
	search      *SearchService
	clock       ports.Clock
	cache       ports.ReportCache
}

func NewReportService(
	catalogRepo ports.CatalogRepository,
	ticketRepo ports.TicketRepository,
	search *SearchService,
	cache ports.ReportCache,
	clock ports.Clock,
) *ReportService {
	return &ReportService{
		catalogRepo: catalogRepo,
		ticketRepo:  ticketRepo,
		search:      search,
		clock:       clock,
		cache:       cache,
	}
}

// FlightStatistics derives occupancy and revenue for one flight. Seat
// capacity comes from the flight detail, not from the ticket rows: lazily
// created slots mean the rows undercount the real capacity. A flight with
// no detail or zero seats reports a zero ratio, never a division error.
func (s *ReportService) FlightStatistics(ctx context.Context, flightID uuid.UUID) (*domain.FlightStatistics, error) {
	if _, err := s.catalogRepo.GetFlight(ctx, flightID); err != nil {
		return nil, err
	}

	detail, err := s.catalogRepo.GetFlightDetail(ctx, flightID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	tickets, err := s.ticketRepo.ListByFlight(ctx, flightID)
	if err != nil {
		return nil, err
	}

	paid := lo.Filter(tickets, func(t domain.Ticket, _ int) bool { return t.IsBooked })
	turnover := lo.SumBy(paid, func(t domain.Ticket) float64 { return t.Price })

	total := detail.TotalSeats()
	booked := len(paid)

	ratio := 0.0
	if total > 0 {
		ratio = float64(booked) / float64(total)
	}

	return &domain.FlightStatistics{
		FlightID:    flightID,
		SeatsTotal:  total,
		SeatsBooked: booked,
		SeatsEmpty:  total - booked,
		BookedRatio: ratio,
		Turnover:    turnover,
	}, nil
}

// PeriodReport rolls up the departed flights of a month, or of a whole year
// when month is nil. Yearly reports include a monthly revenue breakdown
// where each ratio is the month's share of the year's revenue in percent.
func (s *ReportService) PeriodReport(ctx context.Context, month *int, year int) (*domain.PeriodReport, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, month, year); ok {
			return cached, nil
		}
	}

	flights, err := s.search.FindFlightsForReport(ctx, month, year)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	departed := lo.Filter(flights, func(f domain.Flight, _ int) bool { return f.IsDeparted(now) })

	report := &domain.PeriodReport{
		Month:        month,
		Year:         year,
		TotalFlights: len(departed),
	}

	monthlyRevenue := make(map[int]float64)

	for _, flight := range departed {
		tickets, err := s.ticketRepo.ListByFlight(ctx, flight.ID)
		if err != nil {
			return nil, err
		}

		paid := lo.Filter(tickets, func(t domain.Ticket, _ int) bool { return t.IsBooked })
		revenue := lo.SumBy(paid, func(t domain.Ticket) float64 { return t.Price })

		report.TotalTicketsSold += len(paid)
		report.TotalRevenue += revenue
		monthlyRevenue[int(flight.DateTime.Month())] += revenue
	}

	if month == nil {
		report.Months = make([]domain.MonthBreakdown, 0, 12)
		for m := 1; m <= 12; m++ {
			ratio := 0.0
			if report.TotalRevenue > 0 {
				ratio = monthlyRevenue[m] * 100 / report.TotalRevenue
			}
			report.Months = append(report.Months, domain.MonthBreakdown{
				Month:   m,
				Revenue: monthlyRevenue[m],
				Ratio:   ratio,
			})
		}
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, report)
	}

	return report, nil
}
