package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trhgquan/flight-manager/internal/adapter/handler"
	"github.com/trhgquan/flight-manager/internal/adapter/repository/memory"
	"github.com/trhgquan/flight-manager/internal/core/domain"
	"github.com/trhgquan/flight-manager/internal/core/services"
	"github.com/trhgquan/flight-manager/internal/platform/ratelimit"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// testAPI is the handler stack over the in-memory store, seeded with one
// bookable flight.
type testAPI struct {
	booking  *handler.BookingHandler
	flights  *handler.FlightHandler
	reports  *handler.ReportHandler
	customer *handler.CustomerHandler
	flight   *domain.Flight
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctx := context.Background()
	store := memory.NewStore()
	clock := fixedClock{now: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}

	catalog := services.NewCatalogService(store.Catalog(), clock)
	require.NoError(t, catalog.Seed(ctx))

	departure, err := catalog.CreateAirport(ctx, "Tan Son Nhat")
	require.NoError(t, err)
	arrival, err := catalog.CreateAirport(ctx, "Noi Bai")
	require.NoError(t, err)
	flight, err := catalog.CreateFlight(ctx, departure.ID, arrival.ID, clock.now.Add(48*time.Hour))
	require.NoError(t, err)
	require.NoError(t, catalog.SetFlightDetail(ctx, &domain.FlightDetail{
		FlightID:      flight.ID,
		FlightMinutes: 120,
		EconomySeats:  1,
		EconomyPrice:  100,
	}))

	booking := services.NewBookingService(
		store.Catalog(), store.Tickets(), store.Reservations(), nil,
		services.WithClock(clock))
	search := services.NewSearchService(store.Catalog())
	inventory := services.NewInventoryService(store.Catalog(), store.Tickets(), nil)
	reports := services.NewReportService(store.Catalog(), store.Tickets(), search, nil, clock)
	customers := services.NewCustomerService(store.Customers(), clock)

	return &testAPI{
		booking:  handler.NewBookingHandler(booking),
		flights:  handler.NewFlightHandler(search, inventory),
		reports:  handler.NewReportHandler(reports),
		customer: handler.NewCustomerHandler(customers),
		flight:   flight,
	}
}

func postJSON(t *testing.T, h http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestBookEndpoint(t *testing.T) {
	api := newTestAPI(t)

	body := map[string]string{
		"customer_id":   uuid.New().String(),
		"flight_id":     api.flight.ID.String(),
		"class":         "Economy",
		"name":          "Nguyen Van A",
		"phone":         "0901234567",
		"identity_code": "079123456789",
	}

	rec := postJSON(t, api.booking.Book, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		ReservationID string `json:"reservation_id"`
		TicketID      string `json:"ticket_id"`
		Code          string `json:"code"`
		DateBooked    string `json:"date_booked"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Code)
	assert.Equal(t, "2024-06-01", resp.DateBooked)

	// The only economy seat is gone; the next attempt conflicts.
	rec = postJSON(t, api.booking.Book, body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBookEndpoint_BadRequests(t *testing.T) {
	api := newTestAPI(t)

	rec := postJSON(t, api.booking.Book, map[string]string{
		"customer_id": "not-a-uuid",
		"flight_id":   api.flight.ID.String(),
		"class":       "Economy",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, api.booking.Book, map[string]string{
		"customer_id": uuid.New().String(),
		"flight_id":   api.flight.ID.String(),
		"class":       "Business",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, api.booking.Book, map[string]string{
		"customer_id": uuid.New().String(),
		"flight_id":   uuid.New().String(),
		"class":       "Economy",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	getRec := httptest.NewRecorder()
	api.booking.Book(getRec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, getRec.Code)
}

func TestPayAndCancelEndpoints(t *testing.T) {
	api := newTestAPI(t)

	rec := postJSON(t, api.booking.Book, map[string]string{
		"customer_id": uuid.New().String(),
		"flight_id":   api.flight.ID.String(),
		"class":       "Economy",
		"name":        "Nguyen Van A",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var booked struct {
		ReservationID string `json:"reservation_id"`
		TicketID      string `json:"ticket_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &booked))

	rec = postJSON(t, api.booking.Pay, map[string]string{"ticket_id": booked.TicketID})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var paid struct {
		IsBooked bool    `json:"is_booked"`
		Price    float64 `json:"price"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &paid))
	assert.True(t, paid.IsBooked)
	assert.Equal(t, 100.0, paid.Price)

	// Paying twice conflicts.
	rec = postJSON(t, api.booking.Pay, map[string]string{"ticket_id": booked.TicketID})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = postJSON(t, api.booking.Cancel, map[string]string{"reservation_id": booked.ReservationID})
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSearchEndpoint(t *testing.T) {
	api := newTestAPI(t)

	url := fmt.Sprintf("/flights/search?departure_airport=%s", api.flight.DepartureAirportID)
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	api.flights.Search(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var flights []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &flights))
	require.Len(t, flights, 1)
	assert.Equal(t, api.flight.ID.String(), flights[0].ID)

	// No criteria at all matches nothing.
	req = httptest.NewRequest(http.MethodGet, "/flights/search", nil)
	rec = httptest.NewRecorder()
	api.flights.Search(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &flights))
	assert.Empty(t, flights)

	req = httptest.NewRequest(http.MethodGet, "/flights/search?start_date=garbage", nil)
	rec = httptest.NewRecorder()
	api.flights.Search(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAvailabilityEndpoint(t *testing.T) {
	api := newTestAPI(t)

	url := fmt.Sprintf("/flights/availability?flight_id=%s&class=Economy", api.flight.ID)
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	api.flights.Availability(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AvailableSeats int `json:"available_seats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.AvailableSeats)

	req = httptest.NewRequest(http.MethodGet, "/flights/availability?flight_id="+api.flight.ID.String()+"&class=Premium", nil)
	rec = httptest.NewRecorder()
	api.flights.Availability(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPeriodReportEndpoint(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/reports/period?year=2024&month=6", nil)
	rec := httptest.NewRecorder()
	api.reports.PeriodReport(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/reports/period?year=2024&month=13", nil)
	rec = httptest.NewRecorder()
	api.reports.PeriodReport(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/reports/period", nil)
	rec = httptest.NewRecorder()
	api.reports.PeriodReport(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEnsureCustomerEndpoint(t *testing.T) {
	api := newTestAPI(t)

	rec := postJSON(t, api.customer.Ensure, map[string]string{"user_id": uuid.New().String()})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		CustomerID string   `json:"customer_id"`
		Roles      []string `json:"roles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.CustomerID)
	assert.Equal(t, []string{"customer"}, resp.Roles)
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := ratelimit.NewKeyedLimiter(ratelimit.Config{RequestsPerSecond: 1, BurstSize: 1})

	calls := 0
	limited := handler.RateLimit(limiter, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:53211"

	rec := httptest.NewRecorder()
	limited(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	limited(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, 1, calls)
}
