package retry_series

import "github.com/google/uuid"

// Request модель запроса на повтор незавершенных заявок
type Request struct {
	SubmissionID uuid.UUID
}
