package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date        string   `json:"date"`
	ServiceType string   `json:"serviceType"`
	Available   []string `json:"available"`
	Booked      []string `json:"booked"`
	Retryable   bool     `json:"retryable,omitempty"` // true, если слоты не удалось получить
	Message     string   `json:"message,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		Date:        resp.Date.Format(domain.DateFormat),
		ServiceType: resp.ServiceType,
		Available:   make([]string, len(resp.Available)),
		Booked:      make([]string, len(resp.Booked)),
	}
	for i, t := range resp.Available {
		out.Available[i] = t.String()
	}
	for i, t := range resp.Booked {
		out.Booked[i] = t.String()
	}
	return out
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(serviceType, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ServiceType: serviceType,
		Date:        date,
	}, nil
}
