package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/trhgquan/flight-manager/internal/core/services"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) FlightStatistics(w http.ResponseWriter, r *http.Request) {
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

	stats, err := h.reports.FlightStatistics(r.Context(), flightID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	_ = json.NewEncoder(w).Encode(stats)
}

func (h *ReportHandler) PeriodReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid year")
		return
	}

	var month *int
	if v := r.URL.Query().Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			writeError(w, http.StatusBadRequest, "invalid month")
			return
		}
		month = &m
	}

	report, err := h.reports.PeriodReport(r.Context(), month, year)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	_ = json.NewEncoder(w).Encode(report)
}
