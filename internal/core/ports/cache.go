package ports

import (
	"context"

	"github.com/trhgquan/flight-manager/internal/core/domain"
)

// ReportCache holds period reports for a short while; aggregation walks
// every ticket of every flight in the period, which is too expensive to
// redo per request.
type ReportCache interface {
	Get(ctx context.Context, month *int, year int) (*domain.PeriodReport, bool)
	Set(ctx context.Context, report *domain.PeriodReport) error
}
