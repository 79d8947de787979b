package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/philippedeb/order-system/order-service/domain"
	"github.com/philippedeb/order-system/shared/models"
	"github.com/pkg/errors"
)

var _ domain.OrderRepository = (*PostgresOrderRepository)(nil)

// PostgresOrderRepository implements OrderRepository using PostgreSQL
type PostgresOrderRepository struct {
	db *sqlx.DB
}

// NewPostgresOrderRepository creates a new PostgresOrderRepository
func NewPostgresOrderRepository(db *sqlx.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

type orderRow struct {
	ID        string         `db:"id"`
	UserID    string         `db:"user_id"`
	Items     pq.StringArray `db:"items"`
	Paid      bool           `db:"paid"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r orderRow) toDomain() *domain.Order {
	items := make([]models.ID, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, models.ID(item))
	}
	return &domain.Order{
		ID:     models.ID(r.ID),
		UserID: models.ID(r.UserID),
		Items:  items,
		Paid:   r.Paid,
		Timestamps: models.Timestamps{
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		},
	}
}

// Create inserts a new order
func (r *PostgresOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	items := make(pq.StringArray, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, item.String())
	}

	query := `
		INSERT INTO orders (id, user_id, items, paid, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		order.ID.String(), order.UserID.String(), items, order.Paid,
		order.Timestamps.CreatedAt, order.Timestamps.UpdatedAt)
	return errors.Wrap(err, "failed to insert order")
}

// FindByID returns the order or ErrOrderNotFound
func (r *PostgresOrderRepository) FindByID(ctx context.Context, orderID models.ID) (*domain.Order, error) {
	var row orderRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, user_id, items, paid, created_at, updated_at FROM orders WHERE id = $1`,
		orderID.String())
	if err == sql.ErrNoRows {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}
	return row.toDomain(), nil
}

// AddItem adds an item to the order's item set
func (r *PostgresOrderRepository) AddItem(ctx context.Context, orderID, itemID models.ID) error {
	query := `
		UPDATE orders
		SET items = CASE WHEN $2 = ANY(items) THEN items ELSE array_append(items, $2) END,
		    updated_at = now()
		WHERE id = $1`

	return r.execExpectingMatch(ctx, query, orderID.String(), itemID.String())
}

// RemoveItem removes an item from the order's item set
func (r *PostgresOrderRepository) RemoveItem(ctx context.Context, orderID, itemID models.ID) error {
	query := `
		UPDATE orders
		SET items = array_remove(items, $2), updated_at = now()
		WHERE id = $1`

	return r.execExpectingMatch(ctx, query, orderID.String(), itemID.String())
}

// Remove deletes the order
func (r *PostgresOrderRepository) Remove(ctx context.Context, orderID models.ID) error {
	return r.execExpectingMatch(ctx, `DELETE FROM orders WHERE id = $1`, orderID.String())
}

// MarkPaid flags the order as paid
func (r *PostgresOrderRepository) MarkPaid(ctx context.Context, orderID models.ID) error {
	query := `UPDATE orders SET paid = TRUE, updated_at = now() WHERE id = $1`
	return r.execExpectingMatch(ctx, query, orderID.String())
}

func (r *PostgresOrderRepository) execExpectingMatch(ctx context.Context, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "failed to execute statement")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read rows affected")
	}
	if affected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
