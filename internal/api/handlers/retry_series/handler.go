package retry_series

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	retrySeries "github.com/m04kA/SMC-BarberBooking/internal/usecase/retry_series"
)

const (
	msgInvalidSubmissionID = "некорректный ID отправки"
	msgSubmissionNotFound  = "отправка не найдена"
	msgNothingToRetry      = "все записи серии уже созданы"
	msgSubmissionBusy      = "отправка уже выполняется"
)

type Handler struct {
	useCase RetrySeriesUseCase
	logger  Logger
}

func NewHandler(useCase RetrySeriesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/series/{submissionId}/retry
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["submissionId"])
	if err != nil {
		h.logger.Warn("POST /series/{id}/retry - Invalid submission ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubmissionID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &retrySeries.Request{SubmissionID: id})
	if err != nil {
		switch {
		case errors.Is(err, retrySeries.ErrSubmissionNotFound):
			h.logger.Warn("POST /series/{id}/retry - Submission not found: submission_id=%s", id)
			handlers.RespondNotFound(w, msgSubmissionNotFound)

		case errors.Is(err, retrySeries.ErrNothingToRetry):
			h.logger.Warn("POST /series/{id}/retry - Nothing to retry: submission_id=%s", id)
			handlers.RespondConflict(w, msgNothingToRetry)

		case errors.Is(err, retrySeries.ErrSubmissionBusy):
			h.logger.Warn("POST /series/{id}/retry - Submission busy: submission_id=%s", id)
			handlers.RespondConflict(w, msgSubmissionBusy)

		case errors.Is(err, retrySeries.ErrUnauthorized) && result != nil:
			h.logger.Warn("POST /series/{id}/retry - Unauthorized, retry stopped: submission_id=%s", id)
			handlers.RespondJSON(w, http.StatusUnauthorized, result)

		case errors.Is(err, retrySeries.ErrInterrupted) && result != nil:
			h.logger.Warn("POST /series/{id}/retry - Retry interrupted: submission_id=%s", id)
			handlers.RespondJSON(w, statusCode(result.Status), result)

		case result != nil:
			h.logger.Error("POST /series/{id}/retry - Retry finished with error: submission_id=%s, status=%s, error=%v",
				id, result.Status, err)
			handlers.RespondJSON(w, statusCode(result.Status), result)

		default:
			h.logger.Error("POST /series/{id}/retry - Failed to retry submission: submission_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /series/{id}/retry - Retry finished: submission_id=%s, status=%s, created=%d, failed=%d",
		id, result.Status, result.Created, result.Failed)
	handlers.RespondJSON(w, statusCode(result.Status), result)
}

// statusCode как у POST /series, но повтор ничего не создает заново: completed - 200
func statusCode(status string) int {
	switch domain.SubmissionStatus(status) {
	case domain.SubmissionCompleted:
		return http.StatusOK
	case domain.SubmissionPartial:
		return http.StatusMultiStatus
	case domain.SubmissionFailed:
		return http.StatusBadGateway
	default:
		return http.StatusAccepted
	}
}
