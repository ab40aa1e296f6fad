package preview_series

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	previewSeries "github.com/m04kA/SMC-BarberBooking/internal/usecase/preview_series"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *previewSeries.Request) (*previewSeries.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*previewSeries.Response)
	return resp, args.Error(1)
}

func post(uc PreviewSeriesUseCase, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/series/preview", strings.NewReader(body))
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

const weeklyBody = `{"service":"haircut","date":"2025-06-02","time":"10:00","peopleCount":1,
	"recurrence":{"interval":1,"unit":"weeks","occurrences":2},"serviceDuration":30,"price":25}`

func TestHandle_OK(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *previewSeries.Request) bool {
		d := req.Draft
		return d.ServiceType == "haircut" && d.Time == "10:00" && d.Recurrence != nil &&
			d.Recurrence.Unit == domain.UnitWeek && d.Recurrence.Occurrences == 2
	})).Return(&previewSeries.Response{
		ServiceType: "haircut",
		Days: []previewSeries.DayPreview{
			{Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), Times: []types.TimeString{"10:00"}, Status: domain.DayAvailable},
			{Date: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), Times: []types.TimeString{"10:00"}, Status: domain.DaySlotTaken},
		},
		Bookable: 1,
	}, nil)

	rec := post(uc, weeklyBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"serviceType":"haircut","bookable":1,"days":[
		{"date":"2025-06-02","times":["10:00"],"status":"available"},
		{"date":"2025-06-09","times":["10:00"],"status":"slot_taken"}]}`, rec.Body.String())
}

func TestHandle_BadRequests(t *testing.T) {
	for _, body := range []string{
		``,
		`{"service":"haircut","unknown":1}`,
		`{"service":"haircut","date":"2025-06-02","time":"25:00"}`,
		`{"service":"haircut","date":"2025-06-02","time":"+9:30"}`,
		`{"service":"haircut","date":"2025-06-02","time":"10:00","recurrence":{"interval":1,"unit":"year","occurrences":2}}`,
	} {
		rec := post(&mockUseCase{}, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{previewSeries.ErrInvalidInput, http.StatusBadRequest},
		{previewSeries.ErrUnauthorized, http.StatusUnauthorized},
		{previewSeries.ErrAvailabilityFetch, http.StatusServiceUnavailable},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		uc := &mockUseCase{}
		uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

		rec := post(uc, weeklyBody)

		assert.Equal(t, tt.want, rec.Code, tt.err.Error())
	}
}
