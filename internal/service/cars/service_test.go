package cars

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
	carRepo "github.com/m04kA/SMC-CarWashService/internal/infra/storage/car"
)

type fakeCarRepo struct {
	cars map[string]*domain.Car
}

func newFakeCarRepo(cars ...*domain.Car) *fakeCarRepo {
	r := &fakeCarRepo{cars: map[string]*domain.Car{}}
	for _, c := range cars {
		r.cars[c.PlateNumber] = c
	}
	return r
}

func (r *fakeCarRepo) List(_ context.Context) ([]*domain.Car, error) {
	out := make([]*domain.Car, 0, len(r.cars))
	for _, c := range r.cars {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCarRepo) GetByPlate(_ context.Context, plate string) (*domain.Car, error) {
	c, ok := r.cars[plate]
	if !ok {
		return nil, carRepo.ErrCarNotFound
	}
	return c, nil
}

func (r *fakeCarRepo) Create(_ context.Context, c *domain.Car) (*domain.Car, error) {
	if _, ok := r.cars[c.PlateNumber]; ok {
		return nil, carRepo.ErrCarAlreadyExists
	}
	r.cars[c.PlateNumber] = c
	return c, nil
}

func (r *fakeCarRepo) Update(_ context.Context, c *domain.Car) error {
	if _, ok := r.cars[c.PlateNumber]; !ok {
		return carRepo.ErrCarNotFound
	}
	r.cars[c.PlateNumber] = c
	return nil
}

func (r *fakeCarRepo) Delete(_ context.Context, plate string) error {
	if _, ok := r.cars[plate]; !ok {
		return carRepo.ErrCarNotFound
	}
	delete(r.cars, plate)
	return nil
}

type fakeServiceCounter struct {
	counts map[string]int64
}

func (f *fakeServiceCounter) CountByPlate(_ context.Context, plate string) (int64, error) {
	return f.counts[plate], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate_Duplicate(t *testing.T) {
	repo := newFakeCarRepo(&domain.Car{PlateNumber: "RAD123A"})
	svc := NewService(repo, &fakeServiceCounter{}, nopLogger{})

	_, err := svc.Create(context.Background(), &domain.Car{PlateNumber: "RAD123A"})
	assert.ErrorIs(t, err, ErrCarAlreadyExists)
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(newFakeCarRepo(), &fakeServiceCounter{}, nopLogger{})

	_, err := svc.Get(context.Background(), "MISSING")
	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestDelete(t *testing.T) {
	repo := newFakeCarRepo(&domain.Car{PlateNumber: "RAD123A"})
	svc := NewService(repo, &fakeServiceCounter{counts: map[string]int64{}}, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), "RAD123A"))
	assert.Empty(t, repo.cars)
}

func TestDelete_HasServices(t *testing.T) {
	repo := newFakeCarRepo(&domain.Car{PlateNumber: "RAD123A"})
	counter := &fakeServiceCounter{counts: map[string]int64{"RAD123A": 2}}
	svc := NewService(repo, counter, nopLogger{})

	err := svc.Delete(context.Background(), "RAD123A")
	assert.ErrorIs(t, err, ErrCarHasServices)

	// Автомобиль остается на месте
	_, getErr := svc.Get(context.Background(), "RAD123A")
	assert.NoError(t, getErr)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(newFakeCarRepo(), &fakeServiceCounter{}, nopLogger{})

	err := svc.Delete(context.Background(), "MISSING")
	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestUpdate(t *testing.T) {
	repo := newFakeCarRepo(&domain.Car{PlateNumber: "RAD123A", DriverName: "John Doe"})
	svc := NewService(repo, &fakeServiceCounter{}, nopLogger{})

	updated, err := svc.Update(context.Background(), &domain.Car{
		PlateNumber: "RAD123A",
		CarType:     "SUV",
		CarSize:     "Large",
		DriverName:  "Jane Roe",
		PhoneNumber: "0788000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", updated.DriverName)
	assert.Equal(t, "SUV", updated.CarType)
}
