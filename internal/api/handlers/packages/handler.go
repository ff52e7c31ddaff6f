package packages

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarWashService/internal/api/handlers"
	packagesService "github.com/m04kA/SMC-CarWashService/internal/service/packages"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgValidationFailed   = "Validation failed"
	msgInvalidPackageID   = "Invalid package number"
	msgPackageNotFound    = "Package not found"
	msgPackageHasServices = "Cannot delete package that is being used in services"
	msgPackageCreated     = "Package created successfully"
	msgPackageUpdated     = "Package updated successfully"
	msgPackageDeleted     = "Package deleted successfully"
)

type Handler struct {
	service PackageService
	logger  Logger
}

func NewHandler(service PackageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/packages
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	pkgs, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /packages - Failed to list packages: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondData(w, http.StatusOK, FromDomainList(pkgs))
}

// Get GET /api/packages/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	packageNumber, ok := h.parseID(w, r)
	if !ok {
		return
	}

	pkg, err := h.service.Get(r.Context(), packageNumber)
	if err != nil {
		switch {
		case errors.Is(err, packagesService.ErrPackageNotFound):
			h.logger.Warn("GET /packages/{id} - Package not found: package=%d", packageNumber)
			handlers.RespondNotFound(w, msgPackageNotFound)

		default:
			h.logger.Error("GET /packages/{id} - Failed to get package: package=%d, error=%v", packageNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondData(w, http.StatusOK, FromDomain(pkg))
}

// Create POST /api/packages
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req PackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /packages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if errs := req.Validate(); !errs.OK() {
		h.logger.Warn("POST /packages - Validation failed: name=%q", req.PackageName)
		handlers.RespondValidationErrors(w, msgValidationFailed, errs)
		return
	}

	pkg, err := h.service.Create(r.Context(), req.ToDomain(0))
	if err != nil {
		h.logger.Error("POST /packages - Failed to create package: name=%q, error=%v", req.PackageName, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /packages - Package created: package=%d", pkg.PackageNumber)
	handlers.RespondCreated(w, msgPackageCreated, FromDomain(pkg))
}

// Update PUT /api/packages/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	packageNumber, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req PackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /packages/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if errs := req.Validate(); !errs.OK() {
		h.logger.Warn("PUT /packages/{id} - Validation failed: package=%d", packageNumber)
		handlers.RespondValidationErrors(w, msgValidationFailed, errs)
		return
	}

	pkg, err := h.service.Update(r.Context(), req.ToDomain(packageNumber))
	if err != nil {
		switch {
		case errors.Is(err, packagesService.ErrPackageNotFound):
			h.logger.Warn("PUT /packages/{id} - Package not found: package=%d", packageNumber)
			handlers.RespondNotFound(w, msgPackageNotFound)

		default:
			h.logger.Error("PUT /packages/{id} - Failed to update package: package=%d, error=%v", packageNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /packages/{id} - Package updated: package=%d", packageNumber)
	handlers.RespondMessageData(w, http.StatusOK, msgPackageUpdated, FromDomain(pkg))
}

// Delete DELETE /api/packages/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	packageNumber, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), packageNumber); err != nil {
		switch {
		case errors.Is(err, packagesService.ErrPackageNotFound):
			h.logger.Warn("DELETE /packages/{id} - Package not found: package=%d", packageNumber)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, packagesService.ErrPackageHasServices):
			h.logger.Warn("DELETE /packages/{id} - Package in use: package=%d", packageNumber)
			handlers.RespondConflict(w, msgPackageHasServices)

		default:
			h.logger.Error("DELETE /packages/{id} - Failed to delete package: package=%d, error=%v", packageNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /packages/{id} - Package deleted: package=%d", packageNumber)
	handlers.RespondMessage(w, http.StatusOK, msgPackageDeleted)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("%s /packages/{id} - Invalid package number: %q", r.Method, idStr)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return 0, false
	}
	return id, true
}
