package settings

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/scheduling"
	"github.com/m04kA/SMC-BarberBooking/internal/service/settings/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) GetSettings(ctx context.Context) ([]domain.WorkingDay, error) {
	args := m.Called(ctx)
	days, _ := args.Get(0).([]domain.WorkingDay)
	return days, args.Error(1)
}

func (m *mockClient) UpdateSettings(ctx context.Context, days []domain.WorkingDay) ([]domain.WorkingDay, error) {
	args := m.Called(ctx, days)
	updated, _ := args.Get(0).([]domain.WorkingDay)
	return updated, args.Error(1)
}

func TestService_GetWorkingDays(t *testing.T) {
	client := &mockClient{}
	client.On("GetSettings", mock.Anything).Return([]domain.WorkingDay{
		{ID: "1", Name: "Monday", Enabled: true, ServiceTypes: []string{"haircut"}},
		{ID: "2", Name: "Sunday", Enabled: false},
	}, nil)

	resp, err := NewService(client, logger.NewNop()).GetWorkingDays(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.WorkingDays, 2)
	assert.Equal(t, "Monday", resp.WorkingDays[0].Name)
	assert.NotNil(t, resp.WorkingDays[1].ServiceTypes)
}

func TestService_GetWorkingDays_Errors(t *testing.T) {
	tests := []struct {
		name      string
		clientErr error
		want      error
	}{
		{"unauthorized", scheduling.ErrUnauthorized, ErrUnauthorized},
		{"unavailable", fmt.Errorf("%w: status 503", scheduling.ErrUnavailable), ErrUpstream},
		{"invalid response", scheduling.ErrInvalidResponse, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{}
			client.On("GetSettings", mock.Anything).Return(nil, tt.clientErr)

			_, err := NewService(client, logger.NewNop()).GetWorkingDays(context.Background())

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestService_ReplaceWorkingDays(t *testing.T) {
	client := &mockClient{}
	client.On("UpdateSettings", mock.Anything, []domain.WorkingDay{
		{Name: "Monday", Enabled: true, ServiceTypes: []string{"haircut", "beard"}},
	}).Return([]domain.WorkingDay{
		{ID: "7", Name: "Monday", Enabled: true, ServiceTypes: []string{"haircut", "beard"}},
	}, nil)

	resp, err := NewService(client, logger.NewNop()).ReplaceWorkingDays(context.Background(), &models.ReplaceWorkingDaysRequest{
		WorkingDays: []models.WorkingDayModel{{Name: "Monday", Enabled: true, ServiceTypes: []string{"haircut", "beard"}}},
	})

	require.NoError(t, err)
	assert.Equal(t, "7", resp.WorkingDays[0].ID)
	client.AssertExpectations(t)
}

func TestService_ReplaceWorkingDays_Validation(t *testing.T) {
	tests := []struct {
		name string
		days []models.WorkingDayModel
	}{
		{"unknown weekday", []models.WorkingDayModel{{Name: "Funday"}}},
		{"duplicate weekday", []models.WorkingDayModel{{Name: "Monday"}, {Name: "mon"}}},
		{"empty service type", []models.WorkingDayModel{{Name: "Friday", ServiceTypes: []string{"haircut", " "}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{}

			_, err := NewService(client, logger.NewNop()).ReplaceWorkingDays(context.Background(),
				&models.ReplaceWorkingDaysRequest{WorkingDays: tt.days})

			assert.ErrorIs(t, err, ErrInvalidInput)
			client.AssertNotCalled(t, "UpdateSettings", mock.Anything, mock.Anything)
		})
	}
}
