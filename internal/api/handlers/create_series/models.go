package create_series

import (
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// StatusCode HTTP статус по итоговому статусу отправки
// completed - 201, partial - 207, failed - 502, pending (ничего не отправлено) - 202
func StatusCode(status string) int {
	switch domain.SubmissionStatus(status) {
	case domain.SubmissionCompleted:
		return http.StatusCreated
	case domain.SubmissionPartial:
		return http.StatusMultiStatus
	case domain.SubmissionFailed:
		return http.StatusBadGateway
	default:
		return http.StatusAccepted
	}
}
