package car

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

func TestList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"plate_number", "car_type", "car_size", "driver_name", "phone_number", "created_at", "updated_at",
	}).
		AddRow("RAD123A", "Sedan", "Medium", "John Doe", "0788123456", now, now).
		AddRow("RAD456B", "SUV", "Large", "Jane Roe", "0788654321", now, now)

	mock.ExpectQuery("SELECT plate_number, car_type, car_size, driver_name, phone_number, created_at, updated_at FROM cars ORDER BY plate_number ASC").
		WillReturnRows(rows)

	repo := NewRepository(db)
	cars, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, cars, 2)
	assert.Equal(t, "RAD123A", cars[0].PlateNumber)
	assert.Equal(t, "Sedan", cars[0].CarType)
	assert.Equal(t, "RAD456B", cars[1].PlateNumber)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByPlate_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM cars WHERE plate_number = \\$1").
		WithArgs("MISSING").
		WillReturnRows(sqlmock.NewRows([]string{
			"plate_number", "car_type", "car_size", "driver_name", "phone_number", "created_at", "updated_at",
		}))

	repo := NewRepository(db)
	_, err = repo.GetByPlate(context.Background(), "MISSING")

	assert.ErrorIs(t, err, ErrCarNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicatePlate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO cars .+ RETURNING created_at, updated_at").
		WithArgs("RAD123A", "Sedan", "Medium", "John Doe", "0788123456").
		WillReturnError(&pq.Error{Code: "23505"})

	repo := NewRepository(db)
	_, err = repo.Create(context.Background(), &domain.Car{
		PlateNumber: "RAD123A",
		CarType:     "Sedan",
		CarSize:     "Medium",
		DriverName:  "John Doe",
		PhoneNumber: "0788123456",
	})

	assert.ErrorIs(t, err, ErrCarAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE cars SET .+ WHERE plate_number = \\$6").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRepository(db)
	err = repo.Update(context.Background(), &domain.Car{PlateNumber: "MISSING"})

	assert.ErrorIs(t, err, ErrCarNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM cars WHERE plate_number = \\$1").
		WithArgs("RAD123A").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewRepository(db)
	err = repo.Delete(context.Background(), "RAD123A")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT 1 FROM cars WHERE plate_number = \\$1").
		WithArgs("RAD123A").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	repo := NewRepository(db)
	exists, err := repo.Exists(context.Background(), "RAD123A")

	require.NoError(t, err)
	assert.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}
