package preview_series

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// Request модель запроса предпросмотра серии
type Request struct {
	Draft domain.AppointmentDraft
}

// Response модель ответа: статус каждой даты серии
type Response struct {
	ServiceType string
	Days        []DayPreview
	Bookable    int // сколько дат можно отправить
}

// DayPreview сверка одной даты серии с календарем
type DayPreview struct {
	Date   time.Time
	Times  []types.TimeString // время каждого человека (одно без MultiSlot)
	Status domain.DayStatus
}
