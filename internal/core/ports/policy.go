package ports

import (
	"time"

	"github.com/trhgquan/flight-manager/internal/core/domain"
)

// CutoffPolicy gates how close to departure a booking or cancellation may
// still happen. The baseline policy allows everything; real policies plug in
// here without touching the booking engine.
type CutoffPolicy interface {
	IsLateToBook(now time.Time, flight *domain.Flight) bool
	IsLateToCancel(now time.Time, flight *domain.Flight) bool
}

type AllowAllPolicy struct{}

func (AllowAllPolicy) IsLateToBook(time.Time, *domain.Flight) bool   { return false }
func (AllowAllPolicy) IsLateToCancel(time.Time, *domain.Flight) bool { return false }
