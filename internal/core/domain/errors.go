package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflicting write, please retry")
	ErrOutOfSeats        = errors.New("no seats left in this class")
	ErrFlightNotBookable = errors.New("flight is not bookable")
	ErrFlightDeparted    = errors.New("flight has already departed")
	ErrAlreadyPaid       = errors.New("ticket is already paid")
	ErrTooLateToBook     = errors.New("too late to book this flight")
	ErrTooLateToCancel   = errors.New("too late to cancel this reservation")
	ErrInvalidInput      = errors.New("invalid input")
)
