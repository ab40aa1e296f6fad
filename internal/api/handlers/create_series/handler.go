package create_series

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	createSeries "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_series"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDraft       = "некорректные параметры записи"
)

type Handler struct {
	useCase CreateSeriesUseCase
	logger  Logger
}

func NewHandler(useCase CreateSeriesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/series
// Тело ответа - результат по каждой заявке, статус зависит от итога отправки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req handlers.DraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /series - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("POST /series - Failed to parse draft: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraft)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createSeries.Request{Draft: draft})
	if err != nil {
		switch {
		case errors.Is(err, createSeries.ErrInvalidInput):
			h.logger.Warn("POST /series - Invalid draft: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDraft)

		case errors.Is(err, createSeries.ErrUnauthorized) && result != nil:
			h.logger.Warn("POST /series - Unauthorized, submission stopped: submission_id=%s, created=%d, pending=%d",
				result.SubmissionID, result.Created, result.Pending)
			handlers.RespondJSON(w, http.StatusUnauthorized, result)

		case errors.Is(err, createSeries.ErrUnauthorized):
			handlers.RespondUnauthorized(w)

		case errors.Is(err, createSeries.ErrInterrupted) && result != nil:
			h.logger.Warn("POST /series - Submission interrupted: submission_id=%s, created=%d, pending=%d",
				result.SubmissionID, result.Created, result.Pending)
			handlers.RespondJSON(w, StatusCode(result.Status), result)

		case result != nil:
			// Заявки уже отправлены, клиент должен увидеть, что создано
			h.logger.Error("POST /series - Submission finished with error: submission_id=%s, status=%s, error=%v",
				result.SubmissionID, result.Status, err)
			handlers.RespondJSON(w, StatusCode(result.Status), result)

		default:
			h.logger.Error("POST /series - Failed to submit series: service=%s, error=%v", req.Service, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /series - Series submitted: submission_id=%s, status=%s, created=%d, failed=%d",
		result.SubmissionID, result.Status, result.Created, result.Failed)
	handlers.RespondJSON(w, StatusCode(result.Status), result)
}
