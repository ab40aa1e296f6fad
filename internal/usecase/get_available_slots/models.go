package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	ServiceType string    // Услуга (haircut, beard ...)
	Date        time.Time // Дата, время суток не учитывается
}

// Response модель ответа со слотами на дату
type Response struct {
	Date        time.Time          // Дата в часовом поясе салона
	ServiceType string             // Услуга
	Available   []types.TimeString // Свободные слоты, прошедшие отброшены
	Booked      []types.TimeString // Занятые слоты, для админского календаря
}

func emptyResponse(req *Request, date time.Time) *Response {
	return &Response{
		Date:        date,
		ServiceType: req.ServiceType,
		Available:   []types.TimeString{},
		Booked:      []types.TimeString{},
	}
}
