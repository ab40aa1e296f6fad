package create_series

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	submissionRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/submission"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/scheduling"
	"github.com/m04kA/SMC-BarberBooking/internal/service/submissions"
	"github.com/m04kA/SMC-BarberBooking/internal/service/submissions/models"
	createSeries "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_series"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/txmanager"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createSeries.Request) (*models.SubmissionResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.SubmissionResponse)
	return resp, args.Error(1)
}

const body = `{"service":"haircut","date":"2025-06-02","time":"10:00","peopleCount":2,"multiSlot":true,
	"recurrence":{"interval":2,"unit":"week","occurrences":3},"serviceDuration":30,"price":25}`

func post(uc CreateSeriesUseCase, payload string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/series", strings.NewReader(payload)))
	return rec
}

func TestHandle_StatusByOutcome(t *testing.T) {
	tests := []struct {
		status string
		want   int
	}{
		{"completed", http.StatusCreated},
		{"partial", http.StatusMultiStatus},
		{"failed", http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createSeries.Request) bool {
				return req.Draft.MultiSlot && req.Draft.PeopleCount == 2 && req.Draft.Recurrence.Interval == 2
			})).Return(&models.SubmissionResponse{SubmissionID: "s-1", Status: tt.status, Total: 6}, nil)

			rec := post(uc, body)

			assert.Equal(t, tt.want, rec.Code)
			var resp models.SubmissionResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "s-1", resp.SubmissionID)
			assert.Equal(t, 6, resp.Total)
		})
	}
}

func TestHandle_UnauthorizedKeepsAccumulator(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(&models.SubmissionResponse{
		SubmissionID: "s-2", Status: "partial", Created: 1, Pending: 5,
	}, fmt.Errorf("%w: token expired", createSeries.ErrUnauthorized))

	rec := post(uc, body)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"submissionId":"s-2"`)
}

func TestHandle_Errors(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: occurrences must be at most 52", createSeries.ErrInvalidInput)).Once()
	rec := post(uc, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidDraft)
	assert.NotContains(t, rec.Body.String(), "invalid input data")

	uc = &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, createSeries.ErrInternal).Once()
	rec = post(uc, body)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = post(&mockUseCase{}, `{"service":"haircut","date":"2025/06/02","time":"10:00"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type mockClient struct {
	mock.Mock
}

func (m *mockClient) CreateAppointment(ctx context.Context, requestID string, req *scheduling.CreateAppointmentRequest) (string, error) {
	args := m.Called(ctx, requestID, req)
	return args.String(0), args.Error(1)
}

// statusFailingRepo теряет итоговый статус отправки
type statusFailingRepo struct {
	*submissionRepo.MemoryRepository
}

func (statusFailingRepo) UpdateStatus(context.Context, uuid.UUID, domain.SubmissionStatus, time.Time) error {
	return errors.New("connection reset")
}

func TestHandle_LedgerFailureAfterSubmitKeepsAccumulator(t *testing.T) {
	client := &mockClient{}
	client.On("CreateAppointment", mock.Anything, mock.Anything, mock.MatchedBy(func(req *scheduling.CreateAppointmentRequest) bool {
		return req.Date == "2031-01-13"
	})).Return("", fmt.Errorf("%w: slot already booked", scheduling.ErrConflict))
	client.On("CreateAppointment", mock.Anything, mock.Anything, mock.Anything).Return("apt", nil)

	repo := statusFailingRepo{submissionRepo.NewMemoryRepository()}
	svc := submissions.NewService(repo, client, txmanager.Noop{}, rate.NewLimiter(rate.Inf, 1), nil, logger.NewNop())
	uc := createSeries.NewUseCase(svc, time.UTC, domain.DefaultMaxOccurrences, logger.NewNop())

	rec := post(uc, `{"service":"haircut","date":"2031-01-06","time":"10:00","peopleCount":1,
		"recurrence":{"interval":1,"unit":"week","occurrences":3},"serviceDuration":30,"price":25}`)

	assert.Equal(t, http.StatusMultiStatus, rec.Code)
	client.AssertNumberOfCalls(t, "CreateAppointment", 3)

	var resp models.SubmissionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "partial", resp.Status)
	assert.Equal(t, 2, resp.Created)
	assert.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Items, 3)
	assert.Equal(t, "failed", resp.Items[1].Status)
}
