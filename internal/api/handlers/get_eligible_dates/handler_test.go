package get_eligible_dates

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	getEligibleDates "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_eligible_dates"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getEligibleDates.Request) (*getEligibleDates.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getEligibleDates.Response)
	return resp, args.Error(1)
}

func serve(uc GetEligibleDatesUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/services/{serviceType}/available-dates", NewHandler(uc, logger.NewNop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_ParsesQuery(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getEligibleDates.Request) bool {
		return req.ServiceType == "haircut" && req.From != nil && req.From.Equal(from) &&
			req.Limit == 14 && req.HorizonDays == 120
	})).Return(&getEligibleDates.Response{
		ServiceType: "haircut",
		From:        from,
		HorizonDays: 120,
		Limit:       14,
		Dates:       []time.Time{from, from.AddDate(0, 0, 7)},
	}, nil)

	rec := serve(uc, "/services/haircut/available-dates?from=2025-06-01&limit=14&horizon=120")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body EligibleDatesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"2025-06-01", "2025-06-08"}, body.Dates)
	assert.Equal(t, "2025-06-01", body.From)
	uc.AssertExpectations(t)
}

func TestHandle_InvalidQuery(t *testing.T) {
	for _, target := range []string{
		"/services/haircut/available-dates?from=tomorrow",
		"/services/haircut/available-dates?limit=ten",
		"/services/haircut/available-dates?horizon=1.5",
	} {
		rec := serve(&mockUseCase{}, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestHandle_FetchFailure(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(&getEligibleDates.Response{
		ServiceType: "haircut",
		Dates:       []time.Time{},
	}, getEligibleDates.ErrAvailabilityFetch)

	rec := serve(uc, "/services/haircut/available-dates")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body EligibleDatesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Retryable)
	assert.Empty(t, body.Dates)
}
