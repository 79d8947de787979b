package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/philippedeb/order-system/shared/models"
	"github.com/philippedeb/order-system/stock-service/domain"
	"github.com/pkg/errors"
)

var _ domain.ItemRepository = (*PostgresItemRepository)(nil)

// PostgresItemRepository implements ItemRepository using PostgreSQL
type PostgresItemRepository struct {
	db *sqlx.DB
}

// NewPostgresItemRepository creates a new PostgresItemRepository
func NewPostgresItemRepository(db *sqlx.DB) *PostgresItemRepository {
	return &PostgresItemRepository{db: db}
}

type itemRow struct {
	ID        string    `db:"id"`
	Price     int64     `db:"price"`
	Stock     int64     `db:"stock"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r itemRow) toDomain() *domain.Item {
	return &domain.Item{
		ID:    models.ID(r.ID),
		Price: r.Price,
		Stock: r.Stock,
		Timestamps: models.Timestamps{
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		},
	}
}

// Create inserts a new item
func (r *PostgresItemRepository) Create(ctx context.Context, item *domain.Item) error {
	query := `
		INSERT INTO items (id, price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		item.ID.String(), item.Price, item.Stock,
		item.Timestamps.CreatedAt, item.Timestamps.UpdatedAt)
	return errors.Wrap(err, "failed to insert item")
}

// FindByID returns the item or ErrItemNotFound
func (r *PostgresItemRepository) FindByID(ctx context.Context, itemID models.ID) (*domain.Item, error) {
	var row itemRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, price, stock, created_at, updated_at FROM items WHERE id = $1`,
		itemID.String())
	if err == sql.ErrNoRows {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find item")
	}
	return row.toDomain(), nil
}

// AddStock increases the item's stock level
func (r *PostgresItemRepository) AddStock(ctx context.Context, itemID models.ID, amount int64) error {
	query := `UPDATE items SET stock = stock + $2, updated_at = now() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, itemID.String(), amount)
	if err != nil {
		return errors.Wrap(err, "failed to add stock")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read rows affected")
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// SubtractStock conditionally decrements the stock level. The guard
// lives in the statement itself so concurrent subtractions are
// serialized by the row lock and can never drive the level negative.
func (r *PostgresItemRepository) SubtractStock(ctx context.Context, itemID models.ID, amount int64) (bool, error) {
	query := `
		UPDATE items
		SET stock = stock - $2, updated_at = now()
		WHERE id = $1 AND stock >= $2`

	result, err := r.db.ExecContext(ctx, query, itemID.String(), amount)
	if err != nil {
		return false, errors.Wrap(err, "failed to subtract stock")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "failed to read rows affected")
	}
	if affected > 0 {
		return true, nil
	}

	// No row matched: distinguish a missing item from a rejection.
	if _, err := r.FindByID(ctx, itemID); err != nil {
		return false, err
	}
	return false, nil
}
