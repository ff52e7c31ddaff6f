package create_service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
)

type fakeServiceRepo struct {
	created *domain.ServiceRecord
	nextID  int64
}

func (f *fakeServiceRepo) Create(_ context.Context, rec *domain.ServiceRecord) (*domain.ServiceRecord, error) {
	f.nextID++
	rec.RecordNumber = f.nextID
	f.created = rec
	return rec, nil
}

func (f *fakeServiceRepo) GetDetails(_ context.Context, recordNumber int64) (*domain.ServiceRecordDetails, error) {
	return &domain.ServiceRecordDetails{
		RecordNumber:  recordNumber,
		ServiceDate:   f.created.ServiceDate,
		PlateNumber:   f.created.PlateNumber,
		PackageNumber: f.created.PackageNumber,
	}, nil
}

type fakeExistsRepo struct {
	existing map[string]bool
}

func (f *fakeExistsRepo) exists(key string) (bool, error) {
	return f.existing[key], nil
}

type fakeCarRepo struct{ *fakeExistsRepo }

func (f *fakeCarRepo) Exists(_ context.Context, plate string) (bool, error) {
	return f.exists(plate)
}

type fakePackageRepo struct{ *fakeExistsRepo }

func (f *fakePackageRepo) Exists(_ context.Context, packageNumber int64) (bool, error) {
	return f.exists("pkg")
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(carExists, pkgExists bool) (*UseCase, *fakeServiceRepo, *fakeTxManager) {
	repo := &fakeServiceRepo{}
	txMgr := &fakeTxManager{}
	uc := NewUseCase(
		repo,
		&fakeCarRepo{&fakeExistsRepo{existing: map[string]bool{"RAD123A": carExists}}},
		&fakePackageRepo{&fakeExistsRepo{existing: map[string]bool{"pkg": pkgExists}}},
		txMgr,
		nopLogger{},
	)
	return uc, repo, txMgr
}

func TestExecute(t *testing.T) {
	uc, repo, txMgr := newUseCase(true, true)

	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	details, err := uc.Execute(context.Background(), &Request{
		ServiceDate:   date,
		PlateNumber:   "RAD123A",
		PackageNumber: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), details.RecordNumber)
	assert.Equal(t, "RAD123A", details.PlateNumber)
	assert.Equal(t, int64(2), details.PackageNumber)
	assert.Equal(t, date, repo.created.ServiceDate)
	assert.Equal(t, 1, txMgr.calls)
}

func TestExecute_CarNotFound(t *testing.T) {
	uc, repo, _ := newUseCase(false, true)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceDate:   time.Now(),
		PlateNumber:   "RAD123A",
		PackageNumber: 2,
	})

	assert.ErrorIs(t, err, ErrCarNotFound)
	assert.Nil(t, repo.created)
}

func TestExecute_PackageNotFound(t *testing.T) {
	uc, repo, _ := newUseCase(true, false)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceDate:   time.Now(),
		PlateNumber:   "RAD123A",
		PackageNumber: 99,
	})

	assert.ErrorIs(t, err, ErrPackageNotFound)
	assert.Nil(t, repo.created)
}
