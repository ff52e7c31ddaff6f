package payments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarWashService/internal/api/handlers"
	paymentsService "github.com/m04kA/SMC-CarWashService/internal/service/payments"
	createPayment "github.com/m04kA/SMC-CarWashService/internal/usecase/create_payment"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgValidationFailed   = "Validation failed"
	msgInvalidPaymentID   = "Invalid payment number"
	msgPaymentNotFound    = "Payment not found"
	msgServiceNotFound    = "Service not found"
	msgAlreadyPaid        = "Payment already exists for this service"
	msgPaymentCreated     = "Payment created successfully"
	msgPaymentUpdated     = "Payment updated successfully"
	msgPaymentDeleted     = "Payment deleted successfully"
)

type Handler struct {
	service       PaymentService
	createUseCase CreatePaymentUseCase
	logger        Logger
}

func NewHandler(service PaymentService, createUseCase CreatePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		service:       service,
		createUseCase: createUseCase,
		logger:        logger,
	}
}

// List GET /api/payments
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	pays, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /payments - Failed to list payments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondData(w, http.StatusOK, FromDomainList(pays))
}

// Get GET /api/payments/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	paymentNumber, ok := h.parseID(w, r)
	if !ok {
		return
	}

	p, err := h.service.Get(r.Context(), paymentNumber)
	if err != nil {
		switch {
		case errors.Is(err, paymentsService.ErrPaymentNotFound):
			h.logger.Warn("GET /payments/{id} - Payment not found: payment=%d", paymentNumber)
			handlers.RespondNotFound(w, msgPaymentNotFound)

		default:
			h.logger.Error("GET /payments/{id} - Failed to get payment: payment=%d, error=%v", paymentNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondData(w, http.StatusOK, FromDomain(p))
}

// Create POST /api/payments
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if errs := req.Validate(); !errs.OK() {
		h.logger.Warn("POST /payments - Validation failed: record=%d", req.RecordNumber)
		handlers.RespondValidationErrors(w, msgValidationFailed, errs)
		return
	}

	p, err := h.createUseCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createPayment.ErrServiceNotFound):
			h.logger.Warn("POST /payments - Service not found: record=%d", req.RecordNumber)
			handlers.RespondBadRequest(w, msgServiceNotFound)

		case errors.Is(err, createPayment.ErrAlreadyPaid):
			h.logger.Warn("POST /payments - Service already paid: record=%d", req.RecordNumber)
			handlers.RespondConflict(w, msgAlreadyPaid)

		default:
			h.logger.Error("POST /payments - Failed to create payment: record=%d, error=%v", req.RecordNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments - Payment created: payment=%d, record=%d", p.PaymentNumber, p.RecordNumber)
	handlers.RespondCreated(w, msgPaymentCreated, FromDomain(p))
}

// Update PUT /api/payments/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	paymentNumber, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req UpdatePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /payments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if errs := req.Validate(); !errs.OK() {
		h.logger.Warn("PUT /payments/{id} - Validation failed: payment=%d", paymentNumber)
		handlers.RespondValidationErrors(w, msgValidationFailed, errs)
		return
	}

	p, err := h.service.Update(r.Context(), req.ToDomain(paymentNumber))
	if err != nil {
		switch {
		case errors.Is(err, paymentsService.ErrPaymentNotFound):
			h.logger.Warn("PUT /payments/{id} - Payment not found: payment=%d", paymentNumber)
			handlers.RespondNotFound(w, msgPaymentNotFound)

		default:
			h.logger.Error("PUT /payments/{id} - Failed to update payment: payment=%d, error=%v", paymentNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /payments/{id} - Payment updated: payment=%d", paymentNumber)
	handlers.RespondMessageData(w, http.StatusOK, msgPaymentUpdated, FromDomain(p))
}

// Delete DELETE /api/payments/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	paymentNumber, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), paymentNumber); err != nil {
		switch {
		case errors.Is(err, paymentsService.ErrPaymentNotFound):
			h.logger.Warn("DELETE /payments/{id} - Payment not found: payment=%d", paymentNumber)
			handlers.RespondNotFound(w, msgPaymentNotFound)

		default:
			h.logger.Error("DELETE /payments/{id} - Failed to delete payment: payment=%d, error=%v", paymentNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /payments/{id} - Payment deleted: payment=%d", paymentNumber)
	handlers.RespondMessage(w, http.StatusOK, msgPaymentDeleted)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("%s /payments/{id} - Invalid payment number: %q", r.Method, idStr)
		handlers.RespondBadRequest(w, msgInvalidPaymentID)
		return 0, false
	}
	return id, true
}
