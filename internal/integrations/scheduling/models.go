package scheduling

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// FlexibleID идентификатор, который сервис отдает то строкой, то числом
type FlexibleID string

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = FlexibleID(n.String())
	return nil
}

func (id FlexibleID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Settings ответ GET /time-management/settings
type Settings struct {
	WorkingDays []WorkingDay `json:"workingDays"`
}

// WorkingDay рабочий день в формате сервиса расписания
type WorkingDay struct {
	ID       FlexibleID   `json:"id"`
	Name     string       `json:"name"`
	Enabled  bool         `json:"enabled"`
	Services []ServiceRef `json:"services"`
}

// ServiceRef ссылка на услугу в рабочем дне
type ServiceRef struct {
	ServiceType string `json:"serviceType"`
}

// ToDomain конвертирует рабочий день в доменную модель
func (d WorkingDay) ToDomain() domain.WorkingDay {
	serviceTypes := make([]string, 0, len(d.Services))
	for _, s := range d.Services {
		if s.ServiceType != "" {
			serviceTypes = append(serviceTypes, s.ServiceType)
		}
	}
	return domain.WorkingDay{
		ID:           string(d.ID),
		Name:         d.Name,
		Enabled:      d.Enabled,
		ServiceTypes: serviceTypes,
	}
}

// WorkingDayFromDomain конвертирует доменный рабочий день в формат сервиса
func WorkingDayFromDomain(d domain.WorkingDay) WorkingDay {
	services := make([]ServiceRef, 0, len(d.ServiceTypes))
	for _, st := range d.ServiceTypes {
		services = append(services, ServiceRef{ServiceType: st})
	}
	return WorkingDay{
		ID:       FlexibleID(d.ID),
		Name:     d.Name,
		Enabled:  d.Enabled,
		Services: services,
	}
}

// Slot элемент ответа GET /time-management/slots/{date}
type Slot struct {
	Time        string `json:"time"`
	Available   bool   `json:"available"`
	ServiceType string `json:"serviceType"`
}

// RepeatConfig правило повторения в теле POST /appointments
type RepeatConfig struct {
	Interval    int    `json:"interval"`
	Unit        string `json:"unit"`
	Occurrences int    `json:"occurrences"`
}

// CreateAppointmentRequest тело POST /appointments
type CreateAppointmentRequest struct {
	Service         string        `json:"service"`
	Barber          *string       `json:"barber,omitempty"`
	Date            string        `json:"date"` // YYYY-MM-DD
	Time            string        `json:"time"` // HH:MM
	Notes           string        `json:"notes"`
	PeopleCount     int           `json:"peopleCount"`
	TotalPrice      float64       `json:"totalPrice"`
	IsRepeating     bool          `json:"isRepeating"`
	RepeatConfig    *RepeatConfig `json:"repeatConfig"`
	ServiceDuration int           `json:"serviceDuration"`
}

// Appointment ответ POST /appointments
// Сервис возвращает идентификатор либо в id, либо в _id
type Appointment struct {
	ID      FlexibleID `json:"id"`
	MongoID FlexibleID `json:"_id"`
	Status  string     `json:"status,omitempty"`
}

// AppointmentID возвращает идентификатор созданной записи
func (a *Appointment) AppointmentID() string {
	if a.ID != "" {
		return string(a.ID)
	}
	return string(a.MongoID)
}

// LoginRequest тело POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse ответ POST /auth/login
type LoginResponse struct {
	Token string `json:"token"`
}

// ErrorResponse модель ошибки от сервиса расписания
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
