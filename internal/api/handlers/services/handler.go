package services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarWashService/internal/api/handlers"
	servicerecordsService "github.com/m04kA/SMC-CarWashService/internal/service/servicerecords"
	createService "github.com/m04kA/SMC-CarWashService/internal/usecase/create_service"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgValidationFailed   = "Validation failed"
	msgInvalidServiceID   = "Invalid record number"
	msgServiceNotFound    = "Service not found"
	msgCarNotFound        = "Car not found"
	msgPackageNotFound    = "Package not found"
	msgReferenceNotFound  = "Referenced car or package not found"
	msgServiceHasPayment  = "Cannot delete service that has payment records"
	msgServiceCreated     = "Service created successfully"
	msgServiceUpdated     = "Service updated successfully"
	msgServiceDeleted     = "Service deleted successfully"
)

type Handler struct {
	service       ServiceRecordService
	createUseCase CreateServiceUseCase
	logger        Logger
}

func NewHandler(service ServiceRecordService, createUseCase CreateServiceUseCase, logger Logger) *Handler {
	return &Handler{
		service:       service,
		createUseCase: createUseCase,
		logger:        logger,
	}
}

// List GET /api/services
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondData(w, http.StatusOK, FromDomainList(recs))
}

// Get GET /api/services/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	recordNumber, ok := h.parseID(w, r)
	if !ok {
		return
	}

	rec, err := h.service.Get(r.Context(), recordNumber)
	if err != nil {
		switch {
		case errors.Is(err, servicerecordsService.ErrServiceNotFound):
			h.logger.Warn("GET /services/{id} - Service not found: record=%d", recordNumber)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /services/{id} - Failed to get service: record=%d, error=%v", recordNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondData(w, http.StatusOK, FromDomain(rec))
}

// Create POST /api/services
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if errs := req.Validate(); !errs.OK() {
		h.logger.Warn("POST /services - Validation failed: plate=%q, package=%d", req.PlateNumber, req.PackageNumber)
		handlers.RespondValidationErrors(w, msgValidationFailed, errs)
		return
	}

	rec, err := h.createUseCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createService.ErrCarNotFound):
			h.logger.Warn("POST /services - Car not found: plate=%q", req.PlateNumber)
			handlers.RespondBadRequest(w, msgCarNotFound)

		case errors.Is(err, createService.ErrPackageNotFound):
			h.logger.Warn("POST /services - Package not found: package=%d", req.PackageNumber)
			handlers.RespondBadRequest(w, msgPackageNotFound)

		default:
			h.logger.Error("POST /services - Failed to create service: plate=%q, error=%v", req.PlateNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services - Service created: record=%d", rec.RecordNumber)
	handlers.RespondCreated(w, msgServiceCreated, FromDomain(rec))
}

// Update PUT /api/services/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	recordNumber, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if errs := req.Validate(); !errs.OK() {
		h.logger.Warn("PUT /services/{id} - Validation failed: record=%d", recordNumber)
		handlers.RespondValidationErrors(w, msgValidationFailed, errs)
		return
	}

	rec, err := h.service.Update(r.Context(), req.ToDomain(recordNumber))
	if err != nil {
		switch {
		case errors.Is(err, servicerecordsService.ErrServiceNotFound):
			h.logger.Warn("PUT /services/{id} - Service not found: record=%d", recordNumber)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, servicerecordsService.ErrReferenceNotFound):
			h.logger.Warn("PUT /services/{id} - Referenced car or package not found: record=%d", recordNumber)
			handlers.RespondBadRequest(w, msgReferenceNotFound)

		default:
			h.logger.Error("PUT /services/{id} - Failed to update service: record=%d, error=%v", recordNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /services/{id} - Service updated: record=%d", recordNumber)
	handlers.RespondMessageData(w, http.StatusOK, msgServiceUpdated, FromDomain(rec))
}

// Delete DELETE /api/services/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	recordNumber, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), recordNumber); err != nil {
		switch {
		case errors.Is(err, servicerecordsService.ErrServiceNotFound):
			h.logger.Warn("DELETE /services/{id} - Service not found: record=%d", recordNumber)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, servicerecordsService.ErrServiceHasPayment):
			h.logger.Warn("DELETE /services/{id} - Service has payment: record=%d", recordNumber)
			handlers.RespondConflict(w, msgServiceHasPayment)

		default:
			h.logger.Error("DELETE /services/{id} - Failed to delete service: record=%d, error=%v", recordNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deleted: record=%d", recordNumber)
	handlers.RespondMessage(w, http.StatusOK, msgServiceDeleted)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("%s /services/{id} - Invalid record number: %q", r.Method, idStr)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return 0, false
	}
	return id, true
}
