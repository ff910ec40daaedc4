package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/trhgquan/flight-manager/internal/core/domain"
)

type TicketRepository struct {
	db *sql.DB
}

func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

const ticketColumns = `id, customer_id, flight_id, class, name, phone, identity_code, is_booked, price, version, created_at`

func scanTicket(row interface{ Scan(...any) error }) (*domain.Ticket, error) {
	var t domain.Ticket
	var customerID uuid.NullUUID
	var flightID uuid.NullUUID
	var name, phone, identityCode sql.NullString
	var price sql.NullFloat64

	err := row.Scan(
		&t.ID,
		&customerID,
		&flightID,
		&t.Class,
		&name,
		&phone,
		&identityCode,
		&t.IsBooked,
		&price,
		&t.Version,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if customerID.Valid {
		id := customerID.UUID
		t.CustomerID = &id
	}
	if flightID.Valid {
		t.FlightID = flightID.UUID
	}
	t.Name = name.String
	t.Phone = phone.String
	t.IdentityCode = identityCode.String
	t.Price = price.Float64

	return &t, nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ticket, error) {
	query := `
	SELECT ` + ticketColumns + `
	FROM tickets
	WHERE id = $1
	`

	ticket, err := scanTicket(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return ticket, nil
}

func (r *TicketRepository) ListByFlight(ctx context.Context, flightID uuid.UUID) ([]domain.Ticket, error) {
	query := `
	SELECT ` + ticketColumns + `
	FROM tickets
	WHERE flight_id = $1
	ORDER BY created_at
	`

	return r.queryTickets(ctx, query, flightID)
}

func (r *TicketRepository) ListUnclaimed(ctx context.Context, flightID uuid.UUID, class domain.TicketClass) ([]domain.Ticket, error) {
	query := `
	SELECT ` + ticketColumns + `
	FROM tickets
	WHERE flight_id = $1 AND class = $2 AND customer_id IS NULL AND is_booked = FALSE
	ORDER BY created_at
	`

	return r.queryTickets(ctx, query, flightID, class)
}

func (r *TicketRepository) queryTickets(ctx context.Context, query string, args ...any) ([]domain.Ticket, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var tickets []domain.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}

		tickets = append(tickets, *ticket)
	}

	return tickets, rows.Err()
}

func (r *TicketRepository) CountByFlightClass(ctx context.Context, flightID uuid.UUID, class domain.TicketClass) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
	SELECT COUNT(*) FROM tickets WHERE flight_id = $1 AND class = $2
	`, flightID, class).Scan(&count)

	return count, err
}

func (r *TicketRepository) CountClaimed(ctx context.Context, flightID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
	SELECT COUNT(*) FROM tickets WHERE flight_id = $1 AND customer_id IS NOT NULL
	`, flightID).Scan(&count)

	return count, err
}

// Claim is the optimistic lock on a slot: the update lands only if nobody
// claimed the row or bumped its version since it was read.
func (r *TicketRepository) Claim(ctx context.Context, ticketID uuid.UUID, version int, customerID uuid.UUID, passenger domain.Passenger, price float64) error {
	query := `
	UPDATE tickets
	SET customer_id = $1,
		name = $2,
		phone = $3,
		identity_code = $4,
		price = $5,
		version = version + 1
	WHERE id = $6 AND version = $7 AND customer_id IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, customerID, passenger.Name, passenger.Phone, passenger.IdentityCode, price, ticketID, version)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrConflict
	}

	return nil
}

// InsertClaimed lazily materializes a slot. The flight row is locked for the
// duration of the count-and-insert so two bookers cannot both squeeze past
// the seat limit.
func (r *TicketRepository) InsertClaimed(ctx context.Context, ticket *domain.Ticket, seatLimit int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	var flightID uuid.UUID
	err = tx.QueryRowContext(ctx, `
	SELECT id FROM flights WHERE id = $1 FOR UPDATE
	`, ticket.FlightID).Scan(&flightID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	var count int
	err = tx.QueryRowContext(ctx, `
	SELECT COUNT(*) FROM tickets WHERE flight_id = $1 AND class = $2
	`, ticket.FlightID, ticket.Class).Scan(&count)
	if err != nil {
		return err
	}

	if count >= seatLimit {
		return domain.ErrOutOfSeats
	}

	_, err = tx.ExecContext(ctx, `
	INSERT INTO tickets (`+ticketColumns+`)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		ticket.ID, ticket.CustomerID, ticket.FlightID, ticket.Class,
		ticket.Name, ticket.Phone, ticket.IdentityCode,
		ticket.IsBooked, ticket.Price, ticket.Version, ticket.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ticket slot: %w", err)
	}

	return tx.Commit()
}

func (r *TicketRepository) MarkPaid(ctx context.Context, ticketID uuid.UUID, version int) error {
	query := `
	UPDATE tickets
	SET is_booked = TRUE,
		version = version + 1
	WHERE id = $1 AND version = $2 AND is_booked = FALSE
	`

	result, err := r.db.ExecContext(ctx, query, ticketID, version)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrConflict
	}

	return nil
}

func (r *TicketRepository) Release(ctx context.Context, ticketID uuid.UUID) error {
	query := `
	UPDATE tickets
	SET customer_id = NULL,
		name = NULL,
		phone = NULL,
		identity_code = NULL,
		price = NULL,
		is_booked = FALSE,
		version = version + 1
	WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, ticketID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
