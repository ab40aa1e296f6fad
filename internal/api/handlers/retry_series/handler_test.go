package retry_series

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BarberBooking/internal/service/submissions/models"
	retrySeries "github.com/m04kA/SMC-BarberBooking/internal/usecase/retry_series"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *retrySeries.Request) (*models.SubmissionResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.SubmissionResponse)
	return resp, args.Error(1)
}

func serve(uc RetrySeriesUseCase, id string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/series/{submissionId}/retry", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/series/"+id+"/retry", nil))
	return rec
}

func TestHandle_Completed(t *testing.T) {
	id := uuid.New()
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &retrySeries.Request{SubmissionID: id}).
		Return(&models.SubmissionResponse{SubmissionID: id.String(), Status: "completed"}, nil)

	rec := serve(uc, id.String())

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", retrySeries.ErrSubmissionNotFound, http.StatusNotFound},
		{"nothing to retry", retrySeries.ErrNothingToRetry, http.StatusConflict},
		{"busy", retrySeries.ErrSubmissionBusy, http.StatusConflict},
		{"internal", retrySeries.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(uc, uuid.NewString())

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandle_LedgerFailureKeepsAccumulator(t *testing.T) {
	id := uuid.New()
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(&models.SubmissionResponse{
		SubmissionID: id.String(), Status: "partial", Total: 3, Created: 2, Failed: 1,
	}, fmt.Errorf("%w: status update failed", retrySeries.ErrInternal))

	rec := serve(uc, id.String())

	assert.Equal(t, http.StatusMultiStatus, rec.Code)
	assert.Contains(t, rec.Body.String(), `"created":2`)
}

func TestHandle_InvalidID(t *testing.T) {
	rec := serve(&mockUseCase{}, "not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
