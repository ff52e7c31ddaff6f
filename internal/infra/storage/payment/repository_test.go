package payment

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
)

func TestCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO payments .+ RETURNING payment_number, created_at").
		WithArgs(5000.0, date, int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"payment_number", "created_at"}).AddRow(int64(7), time.Now()))

	repo := NewRepository(db)
	p, err := repo.Create(context.Background(), &domain.Payment{
		AmountPaid:   5000.0,
		PaymentDate:  date,
		RecordNumber: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), p.PaymentNumber)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO payments").
		WillReturnError(&pq.Error{Code: "23505"})

	repo := NewRepository(db)
	_, err = repo.Create(context.Background(), &domain.Payment{RecordNumber: 1})

	assert.ErrorIs(t, err, ErrPaymentAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_MissingService(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO payments").
		WillReturnError(&pq.Error{Code: "23503"})

	repo := NewRepository(db)
	_, err = repo.Create(context.Background(), &domain.Payment{RecordNumber: 999})

	assert.ErrorIs(t, err, ErrReferenceNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsByRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT 1 FROM payments WHERE record_number = \\$1").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	repo := NewRepository(db)
	exists, err := repo.ExistsByRecord(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM payments WHERE payment_number = \\$1").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRepository(db)
	err = repo.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, ErrPaymentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
