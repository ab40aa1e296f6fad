package retry_series

import (
	"context"
	"fmt"
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
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/txmanager"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) CreateAppointment(ctx context.Context, requestID string, req *scheduling.CreateAppointmentRequest) (string, error) {
	args := m.Called(ctx, requestID, req)
	return args.String(0), args.Error(1)
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T, client *mockClient, mark func(items []domain.SubmissionItem)) (*UseCase, uuid.UUID) {
	t.Helper()
	repo := submissionRepo.NewMemoryRepository()
	svc := submissions.NewService(repo, client, txmanager.Noop{}, rate.NewLimiter(rate.Inf, 1), nil, logger.NewNop())

	draft := domain.AppointmentDraft{
		ServiceType:            "haircut",
		Date:                   time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Time:                   "10:00",
		PeopleCount:            1,
		Recurrence:             &domain.RecurrenceRule{Interval: 1, Unit: domain.UnitWeek, Occurrences: 3},
		ServiceDurationMinutes: 30,
	}
	dates, err := draft.Series()
	require.NoError(t, err)
	items, err := draft.ExpandItems(dates)
	require.NoError(t, err)
	mark(items)

	sub := &domain.Submission{ID: uuid.New(), Draft: draft, Items: items, CreatedAt: testNow, UpdatedAt: testNow}
	sub.Status = sub.ResolveStatus()
	require.NoError(t, svc.Record(context.Background(), sub))

	return NewUseCase(svc, logger.NewNop()), sub.ID
}

func TestExecute_ResubmitsOnlyFailedItems(t *testing.T) {
	client := &mockClient{}
	client.On("CreateAppointment", mock.Anything, mock.Anything, mock.MatchedBy(func(req *scheduling.CreateAppointmentRequest) bool {
		return req.Date == "2025-06-09"
	})).Return("apt-1", nil).Once()

	uc, id := setup(t, client, func(items []domain.SubmissionItem) {
		items[0].MarkCreated("apt-0", testNow)
		items[1].MarkFailed("slot already booked", testNow)
		items[2].MarkCreated("apt-2", testNow)
	})

	resp, err := uc.Execute(context.Background(), &Request{SubmissionID: id})

	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, 3, resp.Created)
	client.AssertNumberOfCalls(t, "CreateAppointment", 1)
}

func TestExecute_NothingToRetry(t *testing.T) {
	uc, id := setup(t, &mockClient{}, func(items []domain.SubmissionItem) {
		for i := range items {
			items[i].MarkCreated(fmt.Sprintf("apt-%d", i), testNow)
		}
	})

	_, err := uc.Execute(context.Background(), &Request{SubmissionID: id})

	assert.ErrorIs(t, err, ErrNothingToRetry)
}

func TestExecute_NotFound(t *testing.T) {
	uc, _ := setup(t, &mockClient{}, func([]domain.SubmissionItem) {})

	_, err := uc.Execute(context.Background(), &Request{SubmissionID: uuid.New()})

	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}

func TestExecute_Unauthorized(t *testing.T) {
	client := &mockClient{}
	client.On("CreateAppointment", mock.Anything, mock.Anything, mock.Anything).Return("", scheduling.ErrUnauthorized).Once()

	uc, id := setup(t, client, func([]domain.SubmissionItem) {})

	resp, err := uc.Execute(context.Background(), &Request{SubmissionID: id})

	assert.ErrorIs(t, err, ErrUnauthorized)
	require.NotNil(t, resp)
	assert.Equal(t, 3, resp.Pending)
}
