package ports

import "time"

// Clock supplies the current time so departure checks and booking dates are
// testable.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
