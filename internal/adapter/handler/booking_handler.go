package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/trhgquan/flight-manager/internal/core/domain"
	"github.com/trhgquan/flight-manager/internal/core/services"
)

type BookingHandler struct {
	svc *services.BookingService
}

func NewBookingHandler(svc *services.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

type bookRequest struct {
	CustomerID   string `json:"customer_id"`
	FlightID     string `json:"flight_id"`
	Class        string `json:"class"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	IdentityCode string `json:"identity_code"`
}

type bookResponse struct {
	ReservationID string `json:"reservation_id"`
	TicketID      string `json:"ticket_id"`
	Code          string `json:"code"`
	DateBooked    string `json:"date_booked"`
}

func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	flightID, err := uuid.Parse(req.FlightID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid flight id")
		return
	}

	passenger := domain.Passenger{
		Name:         req.Name,
		Phone:        req.Phone,
		IdentityCode: req.IdentityCode,
	}

	reservation, err := h.svc.Book(r.Context(), customerID, flightID, domain.TicketClass(req.Class), passenger)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(bookResponse{
		ReservationID: reservation.ID.String(),
		TicketID:      reservation.TicketID.String(),
		Code:          reservation.Code,
		DateBooked:    reservation.DateBooked.Format("2006-01-02"),
	})
}

type payRequest struct {
	TicketID string `json:"ticket_id"`
}

func (h *BookingHandler) Pay(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req payRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	ticketID, err := uuid.Parse(req.TicketID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid ticket id")
		return
	}

	ticket, err := h.svc.Pay(r.Context(), ticketID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"ticket_id": ticket.ID.String(),
		"is_booked": ticket.IsBooked,
		"price":     ticket.Price,
	})
}

type cancelRequest struct {
	ReservationID string `json:"reservation_id"`
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req cancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	reservationID, err := uuid.Parse(req.ReservationID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reservation id")
		return
	}

	if err := h.svc.Cancel(r.Context(), reservationID); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrOutOfSeats),
		errors.Is(err, domain.ErrFlightNotBookable),
		errors.Is(err, domain.ErrFlightDeparted),
		errors.Is(err, domain.ErrAlreadyPaid),
		errors.Is(err, domain.ErrTooLateToBook),
		errors.Is(err, domain.ErrTooLateToCancel):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
