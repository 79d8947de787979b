package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/philippedeb/order-system/payment-service/domain"
	"github.com/philippedeb/order-system/shared/models"
	"github.com/pkg/errors"
)

var _ domain.UserRepository = (*PostgresUserRepository)(nil)

// PostgresUserRepository implements UserRepository using PostgreSQL
type PostgresUserRepository struct {
	db *sqlx.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

type userRow struct {
	ID         string         `db:"id"`
	Credit     int64          `db:"credit"`
	PaidOrders pq.StringArray `db:"paid_orders"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

func (r userRow) toDomain() *domain.User {
	paid := make([]models.ID, 0, len(r.PaidOrders))
	for _, orderID := range r.PaidOrders {
		paid = append(paid, models.ID(orderID))
	}
	return &domain.User{
		ID:         models.ID(r.ID),
		Credit:     r.Credit,
		PaidOrders: paid,
		Timestamps: models.Timestamps{
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		},
	}
}

// Create inserts a new user
func (r *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	paid := make(pq.StringArray, 0, len(user.PaidOrders))
	for _, orderID := range user.PaidOrders {
		paid = append(paid, orderID.String())
	}

	query := `
		INSERT INTO users (id, credit, paid_orders, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID.String(), user.Credit, paid,
		user.Timestamps.CreatedAt, user.Timestamps.UpdatedAt)
	return errors.Wrap(err, "failed to insert user")
}

// FindByID returns the user or ErrUserNotFound
func (r *PostgresUserRepository) FindByID(ctx context.Context, userID models.ID) (*domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, credit, paid_orders, created_at, updated_at FROM users WHERE id = $1`,
		userID.String())
	if err == sql.ErrNoRows {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	return row.toDomain(), nil
}

// AddFunds credits the account
func (r *PostgresUserRepository) AddFunds(ctx context.Context, userID models.ID, amount int64) error {
	query := `UPDATE users SET credit = credit + $2, updated_at = now() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, userID.String(), amount)
	if err != nil {
		return errors.Wrap(err, "failed to add funds")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read rows affected")
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Debit charges the user for the order. The balance check, the charge
// and the paid-order record change in one statement so concurrent
// debits cannot overdraw, and a repeated debit for an order already in
// paid_orders is a no-op success.
func (r *PostgresUserRepository) Debit(ctx context.Context, userID, orderID models.ID, amount int64) (bool, error) {
	query := `
		UPDATE users
		SET credit = credit - $3,
		    paid_orders = array_append(paid_orders, $2),
		    updated_at = now()
		WHERE id = $1 AND credit >= $3 AND NOT ($2 = ANY(paid_orders))`

	result, err := r.db.ExecContext(ctx, query, userID.String(), orderID.String(), amount)
	if err != nil {
		return false, errors.Wrap(err, "failed to debit user")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "failed to read rows affected")
	}
	if affected > 0 {
		return true, nil
	}

	// No row matched: already paid, insufficient funds, or no user.
	user, err := r.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if user.HasPaid(orderID) {
		return true, nil
	}
	return false, nil
}

// Refund restores credit for a paid order and removes the paid
// record. It only matches when the order is recorded as paid, so a
// second refund finds nothing to undo.
func (r *PostgresUserRepository) Refund(ctx context.Context, userID, orderID models.ID, amount int64) (bool, error) {
	query := `
		UPDATE users
		SET credit = credit + $3,
		    paid_orders = array_remove(paid_orders, $2),
		    updated_at = now()
		WHERE id = $1 AND $2 = ANY(paid_orders)`

	result, err := r.db.ExecContext(ctx, query, userID.String(), orderID.String(), amount)
	if err != nil {
		return false, errors.Wrap(err, "failed to refund user")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "failed to read rows affected")
	}
	if affected > 0 {
		return true, nil
	}

	if _, err := r.FindByID(ctx, userID); err != nil {
		return false, err
	}
	return false, nil
}
