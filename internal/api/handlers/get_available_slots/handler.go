package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput     = "некорректные параметры запроса"
	msgSlotsUnavailable = "не удалось загрузить слоты, повторите запрос"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceType}/slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceType := mux.Vars(r)["serviceType"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /services/{type}/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(serviceType, dateStr)
	if err != nil {
		h.logger.Warn("GET /services/{type}/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /services/{type}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrUnauthorized):
			h.logger.Warn("GET /services/{type}/slots - Unauthorized: service=%s", serviceType)
			handlers.RespondUnauthorized(w)

		case errors.Is(err, getAvailableSlots.ErrAvailabilityFetch) && result != nil:
			// Пустые списки вместо данных прошлой даты
			h.logger.Warn("GET /services/{type}/slots - Slots unavailable: service=%s, date=%s, error=%v",
				serviceType, dateStr, err)
			response := FromUseCaseResponse(result)
			response.Retryable = true
			response.Message = msgSlotsUnavailable
			handlers.RespondJSON(w, http.StatusServiceUnavailable, response)

		default:
			h.logger.Error("GET /services/{type}/slots - Failed to get slots: service=%s, date=%s, error=%v",
				serviceType, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{type}/slots - Slots retrieved successfully: service=%s, date=%s, available=%d, booked=%d",
		serviceType, dateStr, len(result.Available), len(result.Booked))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
