package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
	servicerecordsService "github.com/m04kA/SMC-CarWashService/internal/service/servicerecords"
	createService "github.com/m04kA/SMC-CarWashService/internal/usecase/create_service"
)

type fakeRecordService struct {
	updateErr error
}

func (fakeRecordService) List(context.Context) ([]*domain.ServiceRecordDetails, error) {
	return nil, nil
}
func (fakeRecordService) Get(context.Context, int64) (*domain.ServiceRecordDetails, error) {
	return nil, nil
}
func (f fakeRecordService) Update(_ context.Context, rec *domain.ServiceRecord) (*domain.ServiceRecordDetails, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &domain.ServiceRecordDetails{
		RecordNumber:  rec.RecordNumber,
		ServiceDate:   rec.ServiceDate,
		PlateNumber:   rec.PlateNumber,
		PackageNumber: rec.PackageNumber,
	}, nil
}
func (fakeRecordService) Delete(context.Context, int64) error { return nil }

type fakeCreateUseCase struct {
	err error
}

func (f *fakeCreateUseCase) Execute(_ context.Context, req *createService.Request) (*domain.ServiceRecordDetails, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.ServiceRecordDetails{
		RecordNumber:  1,
		ServiceDate:   req.ServiceDate,
		PlateNumber:   req.PlateNumber,
		PackageNumber: req.PackageNumber,
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreate(t *testing.T) {
	h := NewHandler(fakeRecordService{}, &fakeCreateUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/services",
		strings.NewReader(`{"serviceDate":"2024-01-10","plateNumber":"RAD123A","packageNumber":1}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

// Отсутствие автомобиля или пакета - ошибка входных данных: 400, не 404
func TestCreate_CarNotFound(t *testing.T) {
	h := NewHandler(fakeRecordService{}, &fakeCreateUseCase{err: createService.ErrCarNotFound}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/services",
		strings.NewReader(`{"serviceDate":"2024-01-10","plateNumber":"MISSING","packageNumber":1}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Car not found", body["message"])
}

func TestCreate_PackageNotFound(t *testing.T) {
	h := NewHandler(fakeRecordService{}, &fakeCreateUseCase{err: createService.ErrPackageNotFound}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/services",
		strings.NewReader(`{"serviceDate":"2024-01-10","plateNumber":"RAD123A","packageNumber":99}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Package not found", body["message"])
}

func putUpdate(h *Handler, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/services/"+id, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Update(rec, req)
	return rec
}

func TestUpdate(t *testing.T) {
	h := NewHandler(fakeRecordService{}, &fakeCreateUseCase{}, nopLogger{})

	rec := putUpdate(h, "1", `{"serviceDate":"2024-01-10","plateNumber":"RAD123A","packageNumber":2}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC).Format(domain.DateFormat), data["serviceDate"])
}

// Сама запись отсутствует - это адресация: 404
func TestUpdate_ServiceNotFound(t *testing.T) {
	h := NewHandler(fakeRecordService{updateErr: servicerecordsService.ErrServiceNotFound}, &fakeCreateUseCase{}, nopLogger{})

	rec := putUpdate(h, "99", `{"serviceDate":"2024-01-10","plateNumber":"RAD123A","packageNumber":1}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// Новая ссылка на несуществующий автомобиль или пакет - ошибка входных данных: 400
func TestUpdate_ReferenceNotFound(t *testing.T) {
	h := NewHandler(fakeRecordService{updateErr: servicerecordsService.ErrReferenceNotFound}, &fakeCreateUseCase{}, nopLogger{})

	rec := putUpdate(h, "1", `{"serviceDate":"2024-01-10","plateNumber":"MISSING","packageNumber":1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Referenced car or package not found", body["message"])
}
