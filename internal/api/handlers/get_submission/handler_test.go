package get_submission

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BarberBooking/internal/service/submissions"
	"github.com/m04kA/SMC-BarberBooking/internal/service/submissions/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, id uuid.UUID) (*models.SubmissionResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*models.SubmissionResponse)
	return resp, args.Error(1)
}

func serve(svc SubmissionService, id string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/series/{submissionId}", NewHandler(svc, logger.NewNop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/series/"+id, nil))
	return rec
}

func TestHandle(t *testing.T) {
	id := uuid.New()
	svc := &mockService{}
	svc.On("GetByID", mock.Anything, id).Return(&models.SubmissionResponse{SubmissionID: id.String(), Status: "partial"}, nil)

	rec := serve(svc, id.String())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"partial"`)
}

func TestHandle_NotFound(t *testing.T) {
	svc := &mockService{}
	svc.On("GetByID", mock.Anything, mock.Anything).Return(nil, submissions.ErrSubmissionNotFound)

	rec := serve(svc, uuid.NewString())

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidID(t *testing.T) {
	rec := serve(&mockService{}, "42")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
