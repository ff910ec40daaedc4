package domain

import "github.com/google/uuid"

// FlightStatistics is the derived occupancy and revenue view of one flight.
// Only paid tickets count as booked seats and revenue.
type FlightStatistics struct {
	FlightID    uuid.UUID `json:"flight_id"`
	SeatsTotal  int       `json:"seats_total"`
	SeatsBooked int       `json:"seats_booked"`
	SeatsEmpty  int       `json:"seats_empty"`
	BookedRatio float64   `json:"booked_ratio"`
	Turnover    float64   `json:"turnover"`
}

type MonthBreakdown struct {
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
	Ratio   float64 `json:"ratio"`
}

// PeriodReport aggregates the departed flights of a month or, when Month is
// nil, of a whole year. Yearly reports carry a per-month revenue breakdown.
type PeriodReport struct {
	Month            *int             `json:"month,omitempty"`
	Year             int              `json:"year"`
	TotalFlights     int              `json:"total_flights"`
	TotalTicketsSold int              `json:"total_tickets_sold"`
	TotalRevenue     float64          `json:"total_revenue"`
	Months           []MonthBreakdown `json:"months,omitempty"`
}
