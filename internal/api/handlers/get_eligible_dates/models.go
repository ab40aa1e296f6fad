package get_eligible_dates

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	getEligibleDates "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_eligible_dates"
)

// EligibleDatesResponse HTTP response model
type EligibleDatesResponse struct {
	ServiceType string   `json:"serviceType"`
	From        string   `json:"from"`
	HorizonDays int      `json:"horizonDays"`
	Limit       int      `json:"limit"`
	Dates       []string `json:"dates"`
	Retryable   bool     `json:"retryable,omitempty"`
	Message     string   `json:"message,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getEligibleDates.Response) *EligibleDatesResponse {
	out := &EligibleDatesResponse{
		ServiceType: resp.ServiceType,
		HorizonDays: resp.HorizonDays,
		Limit:       resp.Limit,
		Dates:       make([]string, len(resp.Dates)),
	}
	if !resp.From.IsZero() {
		out.From = resp.From.Format(domain.DateFormat)
	}
	for i, d := range resp.Dates {
		out.Dates[i] = d.Format(domain.DateFormat)
	}
	return out
}

// ToUseCaseRequest создает запрос use case из query параметров from, limit, horizon
func ToUseCaseRequest(serviceType string, query url.Values) (*getEligibleDates.Request, error) {
	req := &getEligibleDates.Request{ServiceType: serviceType}

	if s := query.Get("from"); s != "" {
		from, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, fmt.Errorf("invalid from: %w", err)
		}
		req.From = &from
	}
	if s := query.Get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid limit: %w", err)
		}
		req.Limit = limit
	}
	if s := query.Get("horizon"); s != "" {
		horizon, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid horizon: %w", err)
		}
		req.HorizonDays = horizon
	}
	return req, nil
}
