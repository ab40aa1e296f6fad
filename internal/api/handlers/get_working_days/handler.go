package get_working_days

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/settings"
)

const msgUpstreamUnavailable = "сервис расписания недоступен, повторите запрос"

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/settings/working-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetWorkingDays(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrUnauthorized):
			h.logger.Warn("GET /settings/working-days - Unauthorized")
			handlers.RespondUnauthorized(w)

		case errors.Is(err, settings.ErrAccessDenied):
			h.logger.Warn("GET /settings/working-days - Access denied")
			handlers.RespondForbidden(w)

		case errors.Is(err, settings.ErrUpstream):
			h.logger.Warn("GET /settings/working-days - Scheduling service unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgUpstreamUnavailable)

		default:
			h.logger.Error("GET /settings/working-days - Failed to get working days: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /settings/working-days - Working days retrieved successfully: count=%d", len(result.WorkingDays))
	handlers.RespondJSON(w, http.StatusOK, result)
}
