package cars

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarWashService/internal/api/handlers"
	carsService "github.com/m04kA/SMC-CarWashService/internal/service/cars"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgValidationFailed   = "Validation failed"
	msgCarNotFound        = "Car not found"
	msgCarAlreadyExists   = "Car with this plate number already exists"
	msgCarHasServices     = "Cannot delete car that has service records"
	msgCarCreated         = "Car created successfully"
	msgCarUpdated         = "Car updated successfully"
	msgCarDeleted         = "Car deleted successfully"
)

type Handler struct {
	service CarService
	logger  Logger
}

func NewHandler(service CarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/cars
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	cars, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /cars - Failed to list cars: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondData(w, http.StatusOK, FromDomainList(cars))
}

// Get GET /api/cars/{plateNumber}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	plateNumber := mux.Vars(r)["plateNumber"]

	car, err := h.service.Get(r.Context(), plateNumber)
	if err != nil {
		switch {
		case errors.Is(err, carsService.ErrCarNotFound):
			h.logger.Warn("GET /cars/{plateNumber} - Car not found: plate=%q", plateNumber)
			handlers.RespondNotFound(w, msgCarNotFound)

		default:
			h.logger.Error("GET /cars/{plateNumber} - Failed to get car: plate=%q, error=%v", plateNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondData(w, http.StatusOK, FromDomain(car))
}

// Create POST /api/cars
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cars - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if errs := req.Validate(); !errs.OK() {
		h.logger.Warn("POST /cars - Validation failed: plate=%q", req.PlateNumber)
		handlers.RespondValidationErrors(w, msgValidationFailed, errs)
		return
	}

	car, err := h.service.Create(r.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, carsService.ErrCarAlreadyExists):
			h.logger.Warn("POST /cars - Car already exists: plate=%q", req.PlateNumber)
			handlers.RespondConflict(w, msgCarAlreadyExists)

		default:
			h.logger.Error("POST /cars - Failed to create car: plate=%q, error=%v", req.PlateNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cars - Car created: plate=%q", car.PlateNumber)
	handlers.RespondCreated(w, msgCarCreated, FromDomain(car))
}

// Update PUT /api/cars/{plateNumber}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	plateNumber := mux.Vars(r)["plateNumber"]

	var req UpdateCarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /cars/{plateNumber} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if errs := req.Validate(); !errs.OK() {
		h.logger.Warn("PUT /cars/{plateNumber} - Validation failed: plate=%q", plateNumber)
		handlers.RespondValidationErrors(w, msgValidationFailed, errs)
		return
	}

	car, err := h.service.Update(r.Context(), req.ToDomain(plateNumber))
	if err != nil {
		switch {
		case errors.Is(err, carsService.ErrCarNotFound):
			h.logger.Warn("PUT /cars/{plateNumber} - Car not found: plate=%q", plateNumber)
			handlers.RespondNotFound(w, msgCarNotFound)

		default:
			h.logger.Error("PUT /cars/{plateNumber} - Failed to update car: plate=%q, error=%v", plateNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /cars/{plateNumber} - Car updated: plate=%q", plateNumber)
	handlers.RespondMessageData(w, http.StatusOK, msgCarUpdated, FromDomain(car))
}

// Delete DELETE /api/cars/{plateNumber}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	plateNumber := mux.Vars(r)["plateNumber"]

	if err := h.service.Delete(r.Context(), plateNumber); err != nil {
		switch {
		case errors.Is(err, carsService.ErrCarNotFound):
			h.logger.Warn("DELETE /cars/{plateNumber} - Car not found: plate=%q", plateNumber)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, carsService.ErrCarHasServices):
			h.logger.Warn("DELETE /cars/{plateNumber} - Car has service records: plate=%q", plateNumber)
			handlers.RespondConflict(w, msgCarHasServices)

		default:
			h.logger.Error("DELETE /cars/{plateNumber} - Failed to delete car: plate=%q, error=%v", plateNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /cars/{plateNumber} - Car deleted: plate=%q", plateNumber)
	handlers.RespondMessage(w, http.StatusOK, msgCarDeleted)
}
