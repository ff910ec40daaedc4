package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/trhgquan/flight-manager/internal/core/domain"
	"github.com/trhgquan/flight-manager/internal/core/services"
)

type FlightHandler struct {
	search    *services.SearchService
	inventory *services.InventoryService
}

func NewFlightHandler(search *services.SearchService, inventory *services.InventoryService) *FlightHandler {
	return &FlightHandler{search: search, inventory: inventory}
}

type flightResponse struct {
	ID                 string    `json:"id"`
	DepartureAirportID string    `json:"departure_airport_id"`
	ArrivalAirportID   string    `json:"arrival_airport_id"`
	DateTime           time.Time `json:"date_time"`
}

// Search filters flights by any combination of criteria; a flight matching
// any one of them is returned.
func (h *FlightHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	criteria, err := parseCriteria(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	flights, err := h.search.FindFlightsByCriteria(r.Context(), criteria)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	result := make([]flightResponse, 0, len(flights))
	for _, f := range flights {
		result = append(result, flightResponse{
			ID:                 f.ID.String(),
			DepartureAirportID: f.DepartureAirportID.String(),
			ArrivalAirportID:   f.ArrivalAirportID.String(),
			DateTime:           f.DateTime,
		})
	}

	_ = json.NewEncoder(w).Encode(result)
}

func (h *FlightHandler) Availability(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	flightID, err := uuid.Parse(r.URL.Query().Get("flight_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid flight id")
		return
	}

	class := domain.TicketClass(r.URL.Query().Get("class"))
	if !class.Valid() {
		writeError(w, http.StatusBadRequest, "invalid ticket class")
		return
	}

	count, err := h.inventory.AvailableSeatCount(r.Context(), flightID, class)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"flight_id":       flightID.String(),
		"class":           class,
		"available_seats": count,
	})
}

func parseCriteria(r *http.Request) (services.SearchCriteria, error) {
	var criteria services.SearchCriteria
	query := r.URL.Query()

	if v := query.Get("departure_airport"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return criteria, err
		}
		criteria.DepartureAirportID = &id
	}
	if v := query.Get("arrival_airport"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return criteria, err
		}
		criteria.ArrivalAirportID = &id
	}
	if v := query.Get("date_time"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return criteria, err
		}
		criteria.DateTime = &t
	}
	if v := query.Get("start_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return criteria, err
		}
		criteria.StartDate = &t
	}
	if v := query.Get("end_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return criteria, err
		}
		criteria.EndDate = &t
	}

	return criteria, nil
}
