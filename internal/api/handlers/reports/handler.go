package reports

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarWashService/internal/api/handlers"
	"github.com/m04kA/SMC-CarWashService/internal/validation"
)

const msgInvalidDate = "Report date must be a valid date in YYYY-MM-DD format"

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Dashboard GET /api/reports/dashboard
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.logger.Error("GET /reports/dashboard - Failed to collect stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondData(w, http.StatusOK, FromDashboard(stats))
}

// Daily GET /api/reports/daily/{date}
func (h *Handler) Daily(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]
	date, err := validation.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /reports/daily/{date} - Invalid date: %q", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	rows, err := h.service.DailyReport(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /reports/daily/{date} - Failed to build report: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondData(w, http.StatusOK, FromDailyRows(date, rows))
}
