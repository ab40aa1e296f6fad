package models

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// SubmissionResponse результат отправки серии: что создано, что нет
type SubmissionResponse struct {
	SubmissionID string           `json:"submissionId"`
	Status       string           `json:"status"` // completed, partial, failed, pending
	ServiceType  string           `json:"serviceType"`
	Total        int              `json:"total"`
	Created      int              `json:"created"`
	Failed       int              `json:"failed"`
	Pending      int              `json:"pending"`
	Items        []ItemResponse   `json:"items"`
	Recurrence   *RecurrenceModel `json:"recurrence,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// ItemResponse результат одной заявки
type ItemResponse struct {
	Seq           int     `json:"seq"`
	Date          string  `json:"date"` // "2025-06-02"
	Time          string  `json:"time"` // "10:00"
	PeopleCount   int     `json:"peopleCount"`
	Status        string  `json:"status"`
	AppointmentID *string `json:"appointmentId,omitempty"`
	Error         *string `json:"error,omitempty"`
}

// RecurrenceModel правило повторения
type RecurrenceModel struct {
	Interval    int    `json:"interval"`
	Unit        string `json:"unit"`
	Occurrences int    `json:"occurrences"`
}

// FromDomainSubmission конвертирует domain модель в DTO
func FromDomainSubmission(s *domain.Submission) *SubmissionResponse {
	if s == nil {
		return nil
	}

	created, failed, pending := s.Counts()
	resp := &SubmissionResponse{
		SubmissionID: s.ID.String(),
		Status:       string(s.Status),
		ServiceType:  s.Draft.ServiceType,
		Total:        len(s.Items),
		Created:      created,
		Failed:       failed,
		Pending:      pending,
		Items:        make([]ItemResponse, len(s.Items)),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}

	if rule := s.Draft.Recurrence; rule != nil {
		resp.Recurrence = &RecurrenceModel{
			Interval:    rule.Interval,
			Unit:        string(rule.Unit),
			Occurrences: rule.Occurrences,
		}
	}

	for i, item := range s.Items {
		resp.Items[i] = ItemResponse{
			Seq:           item.Seq,
			Date:          item.Date.Format(domain.DateFormat),
			Time:          item.Time.String(),
			PeopleCount:   item.PeopleCount,
			Status:        string(item.Status),
			AppointmentID: item.AppointmentID,
			Error:         item.Error,
		}
	}

	return resp
}
