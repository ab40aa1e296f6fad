package preview_series

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	previewSeries "github.com/m04kA/SMC-BarberBooking/internal/usecase/preview_series"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDraft       = "некорректные параметры записи"
	msgUnavailable        = "не удалось проверить календарь, повторите запрос"
)

type Handler struct {
	useCase PreviewSeriesUseCase
	logger  Logger
}

func NewHandler(useCase PreviewSeriesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/series/preview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req handlers.DraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /series/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("POST /series/preview - Failed to parse draft: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraft)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &previewSeries.Request{Draft: draft})
	if err != nil {
		switch {
		case errors.Is(err, previewSeries.ErrInvalidInput):
			h.logger.Warn("POST /series/preview - Invalid draft: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDraft)

		case errors.Is(err, previewSeries.ErrUnauthorized):
			h.logger.Warn("POST /series/preview - Unauthorized: service=%s", req.Service)
			handlers.RespondUnauthorized(w)

		case errors.Is(err, previewSeries.ErrAvailabilityFetch):
			h.logger.Warn("POST /series/preview - Calendar unavailable: service=%s, error=%v", req.Service, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgUnavailable)

		default:
			h.logger.Error("POST /series/preview - Failed to preview series: service=%s, error=%v", req.Service, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /series/preview - Preview built: service=%s, dates=%d, bookable=%d",
		req.Service, len(result.Days), result.Bookable)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
