package create_series

import "github.com/m04kA/SMC-BarberBooking/internal/domain"

// Request модель запроса на запись серией
type Request struct {
	Draft domain.AppointmentDraft
}
