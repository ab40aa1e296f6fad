package get_eligible_dates

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	getEligibleDates "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_eligible_dates"
)

const (
	msgInvalidParams    = "некорректные параметры запроса"
	msgDatesUnavailable = "не удалось загрузить рабочие дни, повторите запрос"
)

type Handler struct {
	useCase GetEligibleDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetEligibleDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceType}/available-dates
// Query params: from (YYYY-MM-DD), limit, horizon (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceType := mux.Vars(r)["serviceType"]

	useCaseReq, err := ToUseCaseRequest(serviceType, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /services/{type}/available-dates - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getEligibleDates.ErrInvalidInput):
			h.logger.Warn("GET /services/{type}/available-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getEligibleDates.ErrUnauthorized):
			h.logger.Warn("GET /services/{type}/available-dates - Unauthorized: service=%s", serviceType)
			handlers.RespondUnauthorized(w)

		case errors.Is(err, getEligibleDates.ErrAvailabilityFetch) && result != nil:
			h.logger.Warn("GET /services/{type}/available-dates - Working days unavailable: service=%s, error=%v",
				serviceType, err)
			response := FromUseCaseResponse(result)
			response.Retryable = true
			response.Message = msgDatesUnavailable
			handlers.RespondJSON(w, http.StatusServiceUnavailable, response)

		default:
			h.logger.Error("GET /services/{type}/available-dates - Failed to get dates: service=%s, error=%v",
				serviceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{type}/available-dates - Dates retrieved successfully: service=%s, count=%d",
		serviceType, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
