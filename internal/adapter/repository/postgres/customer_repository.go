package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/trhgquan/flight-manager/internal/core/domain"
)

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO customers (id, user_id, name, phone, identity_code, profile_pic, roles, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, customer.ID, customer.UserID, customer.Name, customer.Phone,
		customer.IdentityCode, customer.ProfilePic, pq.Array(rolesToStrings(customer.Roles)), customer.CreatedAt)

	return err
}

func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	result, err := r.db.ExecContext(ctx, `
	UPDATE customers
	SET name = $1, phone = $2, identity_code = $3, profile_pic = $4, roles = $5
	WHERE id = $6
	`, customer.Name, customer.Phone, customer.IdentityCode, customer.ProfilePic,
		pq.Array(rolesToStrings(customer.Roles)), customer.ID)
	if err != nil {
		return err
	}

	return requireRow(result)
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

func (r *CustomerRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.Customer, error) {
	return r.get(ctx, `WHERE user_id = $1`, userID)
}

func (r *CustomerRepository) get(ctx context.Context, where string, arg any) (*domain.Customer, error) {
	var c domain.Customer
	var userID uuid.NullUUID
	var roles pq.StringArray

	err := r.db.QueryRowContext(ctx, `
	SELECT id, user_id, name, phone, identity_code, profile_pic, roles, created_at
	FROM customers
	`+where, arg).Scan(&c.ID, &userID, &c.Name, &c.Phone, &c.IdentityCode, &c.ProfilePic, &roles, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if userID.Valid {
		id := userID.UUID
		c.UserID = &id
	}
	c.Roles = stringsToRoles(roles)

	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, user_id, name, phone, identity_code, profile_pic, roles, created_at
	FROM customers
	ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		var userID uuid.NullUUID
		var roles pq.StringArray

		if err := rows.Scan(&c.ID, &userID, &c.Name, &c.Phone, &c.IdentityCode, &c.ProfilePic, &roles, &c.CreatedAt); err != nil {
			return nil, err
		}

		if userID.Valid {
			id := userID.UUID
			c.UserID = &id
		}
		c.Roles = stringsToRoles(roles)

		customers = append(customers, c)
	}

	return customers, rows.Err()
}

func rolesToStrings(roles []domain.Role) []string {
	result := make([]string, len(roles))
	for i, r := range roles {
		result[i] = string(r)
	}
	return result
}

func stringsToRoles(values []string) []domain.Role {
	result := make([]domain.Role, len(values))
	for i, v := range values {
		result[i] = domain.Role(v)
	}
	return result
}
