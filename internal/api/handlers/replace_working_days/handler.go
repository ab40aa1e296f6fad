package replace_working_days

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/settings"
	"github.com/m04kA/SMC-BarberBooking/internal/service/settings/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidWorkingDays  = "некорректные рабочие дни: проверьте названия дней, повторы и список услуг"
	msgUpstreamUnavailable = "сервис расписания недоступен, повторите запрос"
)

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

// Handle PUT /api/v1/settings/working-days
// Полная замена: дни, которых нет в теле, удаляются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ReplaceWorkingDaysRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings/working-days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ReplaceWorkingDays(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /settings/working-days - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWorkingDays)

		case errors.Is(err, settings.ErrUnauthorized):
			h.logger.Warn("PUT /settings/working-days - Unauthorized")
			handlers.RespondUnauthorized(w)

		case errors.Is(err, settings.ErrAccessDenied):
			h.logger.Warn("PUT /settings/working-days - Access denied")
			handlers.RespondForbidden(w)

		case errors.Is(err, settings.ErrUpstream):
			h.logger.Warn("PUT /settings/working-days - Scheduling service unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgUpstreamUnavailable)

		default:
			h.logger.Error("PUT /settings/working-days - Failed to replace working days: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings/working-days - Working days replaced successfully: count=%d", len(result.WorkingDays))
	handlers.RespondJSON(w, http.StatusOK, result)
}
