package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/trhgquan/flight-manager/internal/core/domain"
)

type ReservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Upsert(ctx context.Context, reservation *domain.Reservation) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO reservations (id, ticket_id, code, date_booked, created_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (id) DO UPDATE SET date_booked = EXCLUDED.date_booked
	`, reservation.ID, reservation.TicketID, reservation.Code, reservation.DateBooked, reservation.CreatedAt)

	return err
}

func (r *ReservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

func (r *ReservationRepository) GetByTicket(ctx context.Context, ticketID uuid.UUID) (*domain.Reservation, error) {
	return r.get(ctx, `WHERE ticket_id = $1`, ticketID)
}

func (r *ReservationRepository) get(ctx context.Context, where string, arg any) (*domain.Reservation, error) {
	var res domain.Reservation
	var dateBooked sql.NullTime

	err := r.db.QueryRowContext(ctx, `
	SELECT id, ticket_id, code, date_booked, created_at
	FROM reservations
	`+where, arg).Scan(&res.ID, &res.TicketID, &res.Code, &dateBooked, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if dateBooked.Valid {
		res.DateBooked = &dateBooked.Time
	}

	return &res, nil
}
