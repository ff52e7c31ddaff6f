package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
	createPayment "github.com/m04kA/SMC-CarWashService/internal/usecase/create_payment"
)

type fakePaymentService struct{}

func (fakePaymentService) List(context.Context) ([]*domain.PaymentDetails, error) { return nil, nil }
func (fakePaymentService) Get(context.Context, int64) (*domain.PaymentDetails, error) {
	return nil, nil
}
func (fakePaymentService) Update(context.Context, *domain.Payment) (*domain.PaymentDetails, error) {
	return nil, nil
}
func (fakePaymentService) Delete(context.Context, int64) error { return nil }

type fakeCreateUseCase struct {
	err     error
	details *domain.PaymentDetails
}

func (f *fakeCreateUseCase) Execute(_ context.Context, req *createPayment.Request) (*domain.PaymentDetails, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.details, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func postCreate(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	return rec
}

func TestCreate(t *testing.T) {
	uc := &fakeCreateUseCase{
		details: &domain.PaymentDetails{
			PaymentNumber: 1,
			AmountPaid:    5000,
			PaymentDate:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			RecordNumber:  1,
		},
	}
	h := NewHandler(fakePaymentService{}, uc, nopLogger{})

	rec := postCreate(h, `{"recordNumber":1,"amountPaid":5000,"paymentDate":"2024-01-10"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

// Несуществующая услуга - это ошибка входных данных, а не адресации: 400
func TestCreate_ServiceNotFound(t *testing.T) {
	uc := &fakeCreateUseCase{err: createPayment.ErrServiceNotFound}
	h := NewHandler(fakePaymentService{}, uc, nopLogger{})

	rec := postCreate(h, `{"recordNumber":99,"amountPaid":5000,"paymentDate":"2024-01-10"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Service not found", body["message"])
}

func TestCreate_AlreadyPaid(t *testing.T) {
	uc := &fakeCreateUseCase{err: createPayment.ErrAlreadyPaid}
	h := NewHandler(fakePaymentService{}, uc, nopLogger{})

	rec := postCreate(h, `{"recordNumber":1,"amountPaid":5000,"paymentDate":"2024-01-10"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

// Нулевая сумма - валидный платеж, запрос доходит до use case
func TestCreate_ZeroAmount(t *testing.T) {
	uc := &fakeCreateUseCase{
		details: &domain.PaymentDetails{
			PaymentNumber: 1,
			AmountPaid:    0,
			PaymentDate:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			RecordNumber:  1,
		},
	}
	h := NewHandler(fakePaymentService{}, uc, nopLogger{})

	rec := postCreate(h, `{"recordNumber":1,"amountPaid":0,"paymentDate":"2024-01-10"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}
