package preview_series

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/scheduling"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) GetSettings(ctx context.Context) ([]domain.WorkingDay, error) {
	args := m.Called(ctx)
	days, _ := args.Get(0).([]domain.WorkingDay)
	return days, args.Error(1)
}

func (m *mockClient) GetSlots(ctx context.Context, date time.Time) ([]domain.TimeSlot, error) {
	args := m.Called(ctx, date)
	slots, _ := args.Get(0).([]domain.TimeSlot)
	return slots, args.Error(1)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func slot(t string, available bool) domain.TimeSlot {
	return domain.TimeSlot{Time: types.TimeString(t), Available: available, ServiceType: "haircut"}
}

func mondaysAndTuesdays() []domain.WorkingDay {
	return []domain.WorkingDay{
		{Name: "Monday", Enabled: true, ServiceTypes: []string{"haircut"}},
		{Name: "Tuesday", Enabled: true, ServiceTypes: []string{"beard"}},
	}
}

func newUseCase(client SchedulingClient, now time.Time) *UseCase {
	uc := NewUseCase(client, time.UTC, 2, domain.DefaultMaxOccurrences, logger.NewNop())
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func weeklyDraft(base time.Time, occurrences int) domain.AppointmentDraft {
	return domain.AppointmentDraft{
		ServiceType:            "haircut",
		Date:                   base,
		Time:                   "10:00",
		PeopleCount:            1,
		Recurrence:             &domain.RecurrenceRule{Interval: 1, Unit: domain.UnitWeek, Occurrences: occurrences},
		ServiceDurationMinutes: 30,
	}
}

func TestExecute_WeeklySeriesStatuses(t *testing.T) {
	client := &mockClient{}
	client.On("GetSettings", mock.Anything).Return(mondaysAndTuesdays(), nil).Once()
	client.On("GetSlots", mock.Anything, day(2025, 6, 2)).Return([]domain.TimeSlot{slot("10:00", true)}, nil)
	client.On("GetSlots", mock.Anything, day(2025, 6, 9)).Return([]domain.TimeSlot{slot("10:00", false)}, nil)
	client.On("GetSlots", mock.Anything, day(2025, 6, 16)).Return([]domain.TimeSlot{slot("10:30", true)}, nil)
	client.On("GetSlots", mock.Anything, day(2025, 6, 23)).Return(nil, fmt.Errorf("%w: status 503", scheduling.ErrUnavailable))

	uc := newUseCase(client, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	resp, err := uc.Execute(context.Background(), &Request{Draft: weeklyDraft(day(2025, 6, 2), 4)})

	require.NoError(t, err)
	require.Len(t, resp.Days, 4)
	assert.Equal(t, domain.DayAvailable, resp.Days[0].Status)
	assert.Equal(t, domain.DaySlotTaken, resp.Days[1].Status)
	assert.Equal(t, domain.DayNoSlot, resp.Days[2].Status)
	assert.Equal(t, domain.DayUnknown, resp.Days[3].Status)
	assert.Equal(t, 1, resp.Bookable)
	client.AssertExpectations(t)
}

func TestExecute_PastAndClosedDatesAreNotFetched(t *testing.T) {
	client := &mockClient{}
	client.On("GetSettings", mock.Anything).Return(mondaysAndTuesdays(), nil)

	// ежедневно с понедельника 2 июня: понедельник в прошлом (сейчас 10:00), вторник открыт только для бороды, среды нет в настройках
	draft := weeklyDraft(day(2025, 6, 2), 3)
	draft.Recurrence.Unit = domain.UnitDay

	uc := newUseCase(client, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))
	resp, err := uc.Execute(context.Background(), &Request{Draft: draft})

	require.NoError(t, err)
	assert.Equal(t, domain.DayPast, resp.Days[0].Status)
	assert.Equal(t, domain.DayClosed, resp.Days[1].Status)
	assert.Equal(t, domain.DayClosed, resp.Days[2].Status)
	client.AssertNotCalled(t, "GetSlots", mock.Anything, day(2025, 6, 2))
	client.AssertNotCalled(t, "GetSlots", mock.Anything, day(2025, 6, 3))
	assert.Zero(t, resp.Bookable)
}

func TestExecute_MultiSlotNeedsEveryTime(t *testing.T) {
	client := &mockClient{}
	client.On("GetSettings", mock.Anything).Return(mondaysAndTuesdays(), nil)
	client.On("GetSlots", mock.Anything, day(2025, 6, 2)).Return([]domain.TimeSlot{
		slot("10:00", true), slot("10:30", true), slot("11:00", true),
	}, nil)
	client.On("GetSlots", mock.Anything, day(2025, 6, 9)).Return([]domain.TimeSlot{
		slot("10:00", true), slot("10:30", false),
	}, nil)

	draft := weeklyDraft(day(2025, 6, 2), 2)
	draft.PeopleCount = 2
	draft.MultiSlot = true

	uc := newUseCase(client, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	resp, err := uc.Execute(context.Background(), &Request{Draft: draft})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "10:30"}, resp.Days[0].Times)
	assert.Equal(t, domain.DayAvailable, resp.Days[0].Status)
	assert.Equal(t, domain.DaySlotTaken, resp.Days[1].Status)
}

func TestExecute_SettingsFailure(t *testing.T) {
	client := &mockClient{}
	client.On("GetSettings", mock.Anything).Return(nil, fmt.Errorf("%w: dial tcp", scheduling.ErrUnavailable))

	uc := newUseCase(client, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	_, err := uc.Execute(context.Background(), &Request{Draft: weeklyDraft(day(2025, 6, 2), 2)})

	assert.ErrorIs(t, err, ErrAvailabilityFetch)
}

func TestExecute_UnauthorizedSlotsFetch(t *testing.T) {
	client := &mockClient{}
	client.On("GetSettings", mock.Anything).Return(mondaysAndTuesdays(), nil)
	client.On("GetSlots", mock.Anything, mock.Anything).Return(nil, scheduling.ErrUnauthorized)

	uc := newUseCase(client, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	_, err := uc.Execute(context.Background(), &Request{Draft: weeklyDraft(day(2025, 6, 2), 3)})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestExecute_InvalidDraft(t *testing.T) {
	uc := newUseCase(&mockClient{}, time.Now())

	draft := weeklyDraft(day(2025, 6, 2), 0)
	_, err := uc.Execute(context.Background(), &Request{Draft: draft})
	assert.ErrorIs(t, err, ErrInvalidInput)

	draft = weeklyDraft(day(2025, 6, 2), domain.DefaultMaxOccurrences+1)
	_, err = uc.Execute(context.Background(), &Request{Draft: draft})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReconcile(t *testing.T) {
	slots := []domain.TimeSlot{
		slot("10:00", true),
		slot("10:30", false),
		{Time: "11:00", Available: true, ServiceType: "beard"},
	}

	assert.Equal(t, domain.DayAvailable, reconcile(slots, "haircut", []types.TimeString{"10:00"}))
	assert.Equal(t, domain.DaySlotTaken, reconcile(slots, "haircut", []types.TimeString{"10:00", "10:30"}))
	assert.Equal(t, domain.DayNoSlot, reconcile(slots, "haircut", []types.TimeString{"11:00"}))
	assert.Equal(t, domain.DayNoSlot, reconcile(nil, "haircut", []types.TimeString{"10:00"}))
}
