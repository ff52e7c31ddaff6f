package bill

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarWashService/internal/api/handlers"
	reportsService "github.com/m04kA/SMC-CarWashService/internal/service/reports"
)

const (
	msgInvalidPaymentID = "Invalid payment number"
	msgPaymentNotFound  = "Payment not found"
)

type Handler struct {
	service ReportService
	logger  Logger
	now     func() time.Time
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle GET /api/bill/{paymentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["paymentId"]
	paymentNumber, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /bill/{paymentId} - Invalid payment number: %q", idStr)
		handlers.RespondBadRequest(w, msgInvalidPaymentID)
		return
	}

	b, err := h.service.Bill(r.Context(), paymentNumber)
	if err != nil {
		switch {
		case errors.Is(err, reportsService.ErrBillNotFound):
			h.logger.Warn("GET /bill/{paymentId} - Bill not found: payment=%d", paymentNumber)
			handlers.RespondNotFound(w, msgPaymentNotFound)

		default:
			h.logger.Error("GET /bill/{paymentId} - Failed to generate bill: payment=%d, error=%v", paymentNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bill/{paymentId} - Bill generated: payment=%d", paymentNumber)
	handlers.RespondData(w, http.StatusOK, FromDomain(b, h.now()))
}
