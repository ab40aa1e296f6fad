package get_submission

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/submissions"
)

const (
	msgInvalidSubmissionID = "некорректный ID отправки"
	msgSubmissionNotFound  = "отправка не найдена"
)

type Handler struct {
	service SubmissionService
	logger  Logger
}

func NewHandler(service SubmissionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/series/{submissionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["submissionId"])
	if err != nil {
		h.logger.Warn("GET /series/{id} - Invalid submission ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubmissionID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, submissions.ErrSubmissionNotFound) {
			h.logger.Warn("GET /series/{id} - Submission not found: submission_id=%s", id)
			handlers.RespondNotFound(w, msgSubmissionNotFound)
			return
		}
		h.logger.Error("GET /series/{id} - Failed to get submission: submission_id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /series/{id} - Submission retrieved successfully: submission_id=%s, status=%s", id, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
