package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	submissionRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/submission"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/scheduling"
	"github.com/m04kA/SMC-BarberBooking/internal/keyring"
	"github.com/m04kA/SMC-BarberBooking/internal/service/submissions"
	"github.com/m04kA/SMC-BarberBooking/internal/session"
	"github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarberBooking/internal/usecase/get_eligible_dates"
	"github.com/m04kA/SMC-BarberBooking/internal/usecase/preview_series"
	"github.com/m04kA/SMC-BarberBooking/pkg/txmanager"
)

// ErrNotLoggedIn возвращается, если токен для сервера не сохранен
var ErrNotLoggedIn = errors.New("not logged in, run `booker login`")

// SchedulingClient операции сервиса расписания, нужные командам
type SchedulingClient interface {
	Login(ctx context.Context, email, password string) (string, error)
	GetSettings(ctx context.Context) ([]domain.WorkingDay, error)
	GetSlots(ctx context.Context, date time.Time) ([]domain.TimeSlot, error)
	CreateAppointment(ctx context.Context, requestID string, req *scheduling.CreateAppointmentRequest) (string, error)
}

// TokenStore хранилище bearer токенов
type TokenStore interface {
	GetToken(server string) (string, error)
	SetToken(server, token string) error
	DeleteToken(server string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// BookingOptions параметры календаря записи
type BookingOptions struct {
	HorizonDays         int
	EligibleDatesLimit  int
	MaxOccurrences      int
	PreviewConcurrency  int
	SubmitRatePerSecond float64
}

// Context общие зависимости команд
type Context struct {
	Server   string
	Client   SchedulingClient
	Tokens   TokenStore
	Location *time.Location
	Booking  BookingOptions
	Logger   Logger
	Out      io.Writer
	Now      func() time.Time
	NoInput  bool // не показывать интерактивные формы
}

// Authorized возвращает контекст с сохраненным токеном
// Истекший токен отклоняется до обращения к серверу
func (c *Context) Authorized(ctx context.Context) (context.Context, error) {
	token, err := c.Tokens.GetToken(c.Server)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}
	if err := session.Check(token, c.Now()); err != nil {
		return nil, err
	}
	return scheduling.ContextWithToken(ctx, token), nil
}

func (c *Context) eligibleDates() *get_eligible_dates.UseCase {
	return get_eligible_dates.NewUseCase(c.Client, c.Location, c.Booking.HorizonDays, c.Booking.EligibleDatesLimit, c.Logger)
}

func (c *Context) availableSlots() *get_available_slots.UseCase {
	return get_available_slots.NewUseCase(c.Client, c.Location, c.Logger)
}

func (c *Context) previewSeries() *preview_series.UseCase {
	return preview_series.NewUseCase(c.Client, c.Location, c.Booking.PreviewConcurrency, c.Booking.MaxOccurrences, c.Logger)
}

// submissionService журнал отправок CLI живет только в памяти процесса
func (c *Context) submissionService() *submissions.Service {
	limit := rate.Inf
	if c.Booking.SubmitRatePerSecond > 0 {
		limit = rate.Limit(c.Booking.SubmitRatePerSecond)
	}
	return submissions.NewService(
		submissionRepo.NewMemoryRepository(),
		c.Client,
		txmanager.Noop{},
		rate.NewLimiter(limit, 1),
		nil,
		c.Logger,
	)
}

func (c *Context) printf(format string, v ...interface{}) {
	fmt.Fprintf(c.Out, format, v...)
}

// today возвращает текущую дату в часовом поясе салона
func (c *Context) today() time.Time {
	return domain.StartOfDay(c.Now().In(c.Location))
}

// parseDate разбирает YYYY-MM-DD в часовом поясе салона
func (c *Context) parseDate(s string) (time.Time, error) {
	date, err := time.ParseInLocation(domain.DateFormat, s, c.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return date, nil
}
