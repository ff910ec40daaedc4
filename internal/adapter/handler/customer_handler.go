package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/trhgquan/flight-manager/internal/core/services"
)

type CustomerHandler struct {
	svc *services.CustomerService
}

func NewCustomerHandler(svc *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

type ensureCustomerRequest struct {
	UserID string `json:"user_id"`
}

// Ensure returns the customer profile for a user account, creating it on
// first sight. The identity provider calls this right after signup.
func (h *CustomerHandler) Ensure(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req ensureCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	customer, err := h.svc.EnsureForUser(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"customer_id": customer.ID.String(),
		"roles":       customer.Roles,
	})
}
