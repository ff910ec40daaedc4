package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/trhgquan/flight-manager/internal/core/domain"
)

type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) CreateAirport(ctx context.Context, airport *domain.Airport) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO airports (id, name, created_at)
	VALUES ($1, $2, $3)
	`, airport.ID, airport.Name, airport.CreatedAt)

	return err
}

func (r *CatalogRepository) UpdateAirport(ctx context.Context, airport *domain.Airport) error {
	result, err := r.db.ExecContext(ctx, `
	UPDATE airports SET name = $1 WHERE id = $2
	`, airport.Name, airport.ID)
	if err != nil {
		return err
	}

	return requireRow(result)
}

func (r *CatalogRepository) DeleteAirport(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM airports WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return requireRow(result)
}

func (r *CatalogRepository) GetAirport(ctx context.Context, id uuid.UUID) (*domain.Airport, error) {
	var a domain.Airport
	err := r.db.QueryRowContext(ctx, `
	SELECT id, name, created_at FROM airports WHERE id = $1
	`, id).Scan(&a.ID, &a.Name, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &a, nil
}

func (r *CatalogRepository) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, created_at FROM airports ORDER BY name
	`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var airports []domain.Airport
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Name, &a.CreatedAt); err != nil {
			return nil, err
		}

		airports = append(airports, a)
	}

	return airports, rows.Err()
}

// CreateFlight inserts the flight and its empty detail row in one
// transaction, so a flight is never observable without a detail.
func (r *CatalogRepository) CreateFlight(ctx context.Context, flight *domain.Flight) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
	INSERT INTO flights (id, departure_airport_id, arrival_airport_id, date_time, created_at)
	VALUES ($1, $2, $3, $4, $5)
	`, flight.ID, flight.DepartureAirportID, flight.ArrivalAirportID, flight.DateTime, flight.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert flight: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
	INSERT INTO flight_details (flight_id, flight_minutes, first_class_seats, economy_seats, first_class_price, economy_price, created_at)
	VALUES ($1, 0, 0, 0, 0, 0, $2)
	`, flight.ID, flight.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert flight detail: %w", err)
	}

	return tx.Commit()
}

func (r *CatalogRepository) UpdateFlight(ctx context.Context, flight *domain.Flight) error {
	result, err := r.db.ExecContext(ctx, `
	UPDATE flights
	SET departure_airport_id = $1, arrival_airport_id = $2, date_time = $3
	WHERE id = $4
	`, flight.DepartureAirportID, flight.ArrivalAirportID, flight.DateTime, flight.ID)
	if err != nil {
		return err
	}

	return requireRow(result)
}

// DeleteFlight cascades to the detail and legs; tickets are detached, not
// deleted, so sold tickets survive as audit records.
func (r *CatalogRepository) DeleteFlight(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `UPDATE tickets SET flight_id = NULL WHERE flight_id = $1`, id)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM transition_legs WHERE flight_id = $1`, id)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM flight_details WHERE flight_id = $1`, id)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM flights WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if err := requireRow(result); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *CatalogRepository) GetFlight(ctx context.Context, id uuid.UUID) (*domain.Flight, error) {
	var f domain.Flight
	err := r.db.QueryRowContext(ctx, `
	SELECT id, departure_airport_id, arrival_airport_id, date_time, created_at
	FROM flights
	WHERE id = $1
	`, id).Scan(&f.ID, &f.DepartureAirportID, &f.ArrivalAirportID, &f.DateTime, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &f, nil
}

func (r *CatalogRepository) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, departure_airport_id, arrival_airport_id, date_time, created_at
	FROM flights
	ORDER BY date_time
	`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var flights []domain.Flight
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.DepartureAirportID, &f.ArrivalAirportID, &f.DateTime, &f.CreatedAt); err != nil {
			return nil, err
		}

		flights = append(flights, f)
	}

	return flights, rows.Err()
}

func (r *CatalogRepository) GetFlightDetail(ctx context.Context, flightID uuid.UUID) (*domain.FlightDetail, error) {
	var d domain.FlightDetail
	err := r.db.QueryRowContext(ctx, `
	SELECT flight_id, flight_minutes, first_class_seats, economy_seats, first_class_price, economy_price, created_at
	FROM flight_details
	WHERE flight_id = $1
	`, flightID).Scan(&d.FlightID, &d.FlightMinutes, &d.FirstClassSeats, &d.EconomySeats, &d.FirstClassPrice, &d.EconomyPrice, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &d, nil
}

func (r *CatalogRepository) UpdateFlightDetail(ctx context.Context, detail *domain.FlightDetail) error {
	result, err := r.db.ExecContext(ctx, `
	UPDATE flight_details
	SET flight_minutes = $1,
		first_class_seats = $2,
		economy_seats = $3,
		first_class_price = $4,
		economy_price = $5
	WHERE flight_id = $6
	`, detail.FlightMinutes, detail.FirstClassSeats, detail.EconomySeats, detail.FirstClassPrice, detail.EconomyPrice, detail.FlightID)
	if err != nil {
		return err
	}

	return requireRow(result)
}

func (r *CatalogRepository) AddTransitionLeg(ctx context.Context, leg *domain.TransitionLeg) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO transition_legs (id, flight_id, airport_id, minutes, note, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`, leg.ID, leg.FlightID, leg.AirportID, leg.Minutes, leg.Note, leg.CreatedAt)

	return err
}

func (r *CatalogRepository) RemoveTransitionLeg(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transition_legs WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return requireRow(result)
}

func (r *CatalogRepository) ListTransitionLegs(ctx context.Context, flightID uuid.UUID) ([]domain.TransitionLeg, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, flight_id, airport_id, minutes, note, created_at
	FROM transition_legs
	WHERE flight_id = $1
	ORDER BY created_at
	`, flightID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var legs []domain.TransitionLeg
	for rows.Next() {
		var leg domain.TransitionLeg
		if err := rows.Scan(&leg.ID, &leg.FlightID, &leg.AirportID, &leg.Minutes, &leg.Note, &leg.CreatedAt); err != nil {
			return nil, err
		}

		legs = append(legs, leg)
	}

	return legs, rows.Err()
}

func (r *CatalogRepository) SeedTicketClasses(ctx context.Context) error {
	for _, class := range domain.AllTicketClasses() {
		_, err := r.db.ExecContext(ctx, `
		INSERT INTO ticket_classes (name) VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		`, class)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *CatalogRepository) ListTicketClasses(ctx context.Context) ([]domain.TicketClass, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM ticket_classes ORDER BY name`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var classes []domain.TicketClass
	for rows.Next() {
		var class domain.TicketClass
		if err := rows.Scan(&class); err != nil {
			return nil, err
		}

		classes = append(classes, class)
	}

	return classes, rows.Err()
}

func requireRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
