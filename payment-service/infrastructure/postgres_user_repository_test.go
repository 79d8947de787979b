package infrastructure

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/philippedeb/order-system/payment-service/domain"
	"github.com/philippedeb/order-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testUserID  = models.ID("550e8400-e29b-41d4-a716-446655440001")
	testOrderID = models.ID("550e8400-e29b-41d4-a716-446655440000")
)

func newUserRepository(t *testing.T) (*PostgresUserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgresUserRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func userRows(credit int64, paidOrders ...string) *sqlmock.Rows {
	// Postgres wire format for a text array, as pq.StringArray scans it.
	paid := "{" + strings.Join(paidOrders, ",") + "}"
	return sqlmock.NewRows([]string{"id", "credit", "paid_orders", "created_at", "updated_at"}).
		AddRow(testUserID.String(), credit, paid, time.Now(), time.Now())
}

func TestPostgresUserRepository_Debit_Charges(t *testing.T) {
	repo, mock := newUserRepository(t)

	mock.ExpectExec(`UPDATE users`).
		WithArgs(testUserID.String(), testOrderID.String(), int64(1500)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.Debit(context.Background(), testUserID, testOrderID, 1500)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_Debit_AlreadyPaidIsNoOpSuccess(t *testing.T) {
	repo, mock := newUserRepository(t)

	mock.ExpectExec(`UPDATE users`).
		WithArgs(testUserID.String(), testOrderID.String(), int64(1500)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT id, credit, paid_orders`).
		WithArgs(testUserID.String()).
		WillReturnRows(userRows(100, testOrderID.String()))

	ok, err := repo.Debit(context.Background(), testUserID, testOrderID, 1500)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_Debit_InsufficientFunds(t *testing.T) {
	repo, mock := newUserRepository(t)

	mock.ExpectExec(`UPDATE users`).
		WithArgs(testUserID.String(), testOrderID.String(), int64(1500)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT id, credit, paid_orders`).
		WithArgs(testUserID.String()).
		WillReturnRows(userRows(100))

	ok, err := repo.Debit(context.Background(), testUserID, testOrderID, 1500)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_Debit_MissingUser(t *testing.T) {
	repo, mock := newUserRepository(t)

	mock.ExpectExec(`UPDATE users`).
		WithArgs(testUserID.String(), testOrderID.String(), int64(1500)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT id, credit, paid_orders`).
		WithArgs(testUserID.String()).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Debit(context.Background(), testUserID, testOrderID, 1500)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_Refund_Restores(t *testing.T) {
	repo, mock := newUserRepository(t)

	mock.ExpectExec(`UPDATE users`).
		WithArgs(testUserID.String(), testOrderID.String(), int64(1500)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.Refund(context.Background(), testUserID, testOrderID, 1500)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_Refund_UnpaidOrderIsRejected(t *testing.T) {
	repo, mock := newUserRepository(t)

	mock.ExpectExec(`UPDATE users`).
		WithArgs(testUserID.String(), testOrderID.String(), int64(1500)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT id, credit, paid_orders`).
		WithArgs(testUserID.String()).
		WillReturnRows(userRows(100))

	ok, err := repo.Refund(context.Background(), testUserID, testOrderID, 1500)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_FindByID(t *testing.T) {
	repo, mock := newUserRepository(t)

	mock.ExpectQuery(`SELECT id, credit, paid_orders`).
		WithArgs(testUserID.String()).
		WillReturnRows(userRows(2500, testOrderID.String()))

	user, err := repo.FindByID(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), user.Credit)
	assert.True(t, user.HasPaid(testOrderID))
	assert.NoError(t, mock.ExpectationsWereMet())
}
