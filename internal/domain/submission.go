package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// SubmissionStatus статус отправки серии записей
type SubmissionStatus string

const (
	SubmissionPending   SubmissionStatus = "pending"
	SubmissionCompleted SubmissionStatus = "completed"
	SubmissionPartial   SubmissionStatus = "partial"
	SubmissionFailed    SubmissionStatus = "failed"
)

// ItemStatus статус одной заявки серии
type ItemStatus string

const (
	ItemPending ItemStatus = "pending"
	ItemCreated ItemStatus = "created"
	ItemFailed  ItemStatus = "failed"
)

// Submission отправка серии записей в сервис расписания
// Хранит черновик, из которого была построена серия, и результат по каждой заявке
type Submission struct {
	ID    uuid.UUID
	Draft AppointmentDraft
	// Status вычисляется по заявкам через ResolveStatus
	Status SubmissionStatus
	Items  []SubmissionItem

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubmissionItem одна заявка POST /appointments
type SubmissionItem struct {
	Seq           int
	Date          time.Time
	Time          types.TimeString
	PeopleCount   int
	PersonIndex   int
	Status        ItemStatus
	AppointmentID *string
	Error         *string
	AttemptedAt   *time.Time
}

// IsCreated возвращает true, если запись создана в сервисе расписания
func (i *SubmissionItem) IsCreated() bool {
	return i.Status == ItemCreated
}

// NeedsRetry возвращает true, если заявку нужно отправить повторно
func (i *SubmissionItem) NeedsRetry() bool {
	return i.Status == ItemPending || i.Status == ItemFailed
}

// MarkCreated отмечает заявку созданной
func (i *SubmissionItem) MarkCreated(appointmentID string, at time.Time) {
	i.Status = ItemCreated
	i.AppointmentID = &appointmentID
	i.Error = nil
	i.AttemptedAt = &at
}

// MarkFailed отмечает заявку неуспешной
func (i *SubmissionItem) MarkFailed(reason string, at time.Time) {
	i.Status = ItemFailed
	i.Error = &reason
	i.AttemptedAt = &at
}

// Counts возвращает количество созданных, неуспешных и неотправленных заявок
func (s *Submission) Counts() (created, failed, pending int) {
	for i := range s.Items {
		switch s.Items[i].Status {
		case ItemCreated:
			created++
		case ItemFailed:
			failed++
		default:
			pending++
		}
	}
	return created, failed, pending
}

// ResolveStatus вычисляет итоговый статус по заявкам
func (s *Submission) ResolveStatus() SubmissionStatus {
	created, failed, _ := s.Counts()
	switch {
	case len(s.Items) == 0:
		return SubmissionPending
	case created == len(s.Items):
		return SubmissionCompleted
	case created > 0:
		return SubmissionPartial
	case failed > 0:
		return SubmissionFailed
	default:
		return SubmissionPending
	}
}

// HasRemainder возвращает true, если есть заявки для повторной отправки
func (s *Submission) HasRemainder() bool {
	for i := range s.Items {
		if s.Items[i].NeedsRetry() {
			return true
		}
	}
	return false
}
