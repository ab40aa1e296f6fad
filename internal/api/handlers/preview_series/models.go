package preview_series

import (
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	previewSeries "github.com/m04kA/SMC-BarberBooking/internal/usecase/preview_series"
)

// PreviewResponse HTTP response model
type PreviewResponse struct {
	ServiceType string       `json:"serviceType"`
	Days        []DayPreview `json:"days"`
	Bookable    int          `json:"bookable"`
}

// DayPreview статус одной даты серии
type DayPreview struct {
	Date   string   `json:"date"`
	Times  []string `json:"times"`
	Status string   `json:"status"` // available, slot_taken, no_slot, day_closed, past, unknown
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *previewSeries.Response) *PreviewResponse {
	out := &PreviewResponse{
		ServiceType: resp.ServiceType,
		Days:        make([]DayPreview, len(resp.Days)),
		Bookable:    resp.Bookable,
	}
	for i, d := range resp.Days {
		times := make([]string, len(d.Times))
		for j, t := range d.Times {
			times[j] = t.String()
		}
		out.Days[i] = DayPreview{
			Date:   d.Date.Format(domain.DateFormat),
			Times:  times,
			Status: string(d.Status),
		}
	}
	return out
}
