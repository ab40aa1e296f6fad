package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/submissions/models"
	"github.com/m04kA/SMC-BarberBooking/internal/usecase/create_series"
	"github.com/m04kA/SMC-BarberBooking/internal/usecase/preview_series"
	"github.com/m04kA/SMC-BarberBooking/internal/usecase/retry_series"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// DraftFlags параметры черновика записи, общие для preview и book
type DraftFlags struct {
	Service   string  `short:"s" help:"Service type (haircut, beard ...)." required:""`
	Date      string  `short:"d" help:"First appointment date (YYYY-MM-DD)." required:""`
	Time      string  `short:"t" help:"Appointment time (HH:MM)." required:""`
	Every     int     `help:"Repeat interval." default:"1"`
	Unit      string  `help:"Repeat unit (day, week, month)." default:"week" enum:"day,week,month"`
	Times     int     `short:"n" help:"Number of appointments in the series. 1 books a single appointment." default:"1"`
	People    int     `help:"Number of people." default:"1"`
	MultiSlot bool    `help:"Book consecutive slots, one per person."`
	Duration  int     `help:"Service duration in minutes." default:"30"`
	Price     float64 `help:"Price per person."`
	Barber    string  `help:"Preferred barber ID."`
	Notes     string  `help:"Notes for the barber."`
}

// ToDraft собирает черновик записи
// Бизнес-валидация остается за use case
func (f *DraftFlags) ToDraft(app *Context) (domain.AppointmentDraft, error) {
	date, err := app.parseDate(f.Date)
	if err != nil {
		return domain.AppointmentDraft{}, err
	}
	t := types.TimeString(f.Time)
	if err := t.Validate(); err != nil {
		return domain.AppointmentDraft{}, err
	}

	draft := domain.AppointmentDraft{
		ServiceType:            f.Service,
		Date:                   date,
		Time:                   t,
		PeopleCount:            f.People,
		MultiSlot:              f.MultiSlot,
		ServiceDurationMinutes: f.Duration,
		UnitPrice:              f.Price,
	}
	if f.Barber != "" {
		draft.BarberID = &f.Barber
	}
	if strings.TrimSpace(f.Notes) != "" {
		draft.Notes = &f.Notes
	}
	if f.Times > 1 {
		unit, err := domain.ParseRecurrenceUnit(f.Unit)
		if err != nil {
			return domain.AppointmentDraft{}, err
		}
		draft.Recurrence = &domain.RecurrenceRule{Interval: f.Every, Unit: unit, Occurrences: f.Times}
	}
	return draft, nil
}

// PreviewCmd сверяет даты серии с календарем без создания записей
type PreviewCmd struct {
	DraftFlags `embed:""`
}

func (c *PreviewCmd) Run(app *Context, ctx context.Context) error {
	authCtx, err := app.Authorized(ctx)
	if err != nil {
		return err
	}
	draft, err := c.ToDraft(app)
	if err != nil {
		return err
	}

	resp, err := app.previewSeries().Execute(authCtx, &preview_series.Request{Draft: draft})
	if err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}

	app.printf("%s\n", headerStyle.Render(fmt.Sprintf("%s: %d of %d dates can be booked", resp.ServiceType, resp.Bookable, len(resp.Days))))
	for _, d := range resp.Days {
		app.printf("  %s %s  %s  %s\n",
			d.Date.Format(domain.DateFormat), d.Date.Weekday().String()[:3], joinTimes(d.Times), renderDayStatus(d.Status))
	}
	return nil
}

// BookCmd создает серию записей и предлагает повторить несозданные
type BookCmd struct {
	DraftFlags `embed:""`
	AutoRetry  int `help:"Retry items that were not created up to N times without asking."`
}

func (c *BookCmd) Run(app *Context, ctx context.Context) error {
	authCtx, err := app.Authorized(ctx)
	if err != nil {
		return err
	}
	draft, err := c.ToDraft(app)
	if err != nil {
		return err
	}

	// Повтор должен видеть отправку, созданную в этом же запуске
	svc := app.submissionService()
	createSeries := create_series.NewUseCase(svc, app.Location, app.Booking.MaxOccurrences, app.Logger)
	retrySeries := retry_series.NewUseCase(svc, app.Logger)

	resp, err := createSeries.Execute(authCtx, &create_series.Request{Draft: draft})
	if resp != nil {
		app.printSubmission(resp)
	}
	if err != nil {
		return seriesError(err)
	}

	for attempt := 0; hasRemainder(resp); attempt++ {
		if attempt >= c.AutoRetry {
			if app.NoInput {
				break
			}
			retry, err := confirmRetry(resp)
			if err != nil {
				return err
			}
			if !retry {
				break
			}
		}

		id, err := uuid.Parse(resp.SubmissionID)
		if err != nil {
			return err
		}
		next, err := retrySeries.Execute(authCtx, &retry_series.Request{SubmissionID: id})
		if next != nil {
			resp = next
			app.printSubmission(resp)
		}
		if err != nil {
			return seriesError(err)
		}
	}

	if resp.Status != string(domain.SubmissionCompleted) {
		return fmt.Errorf("%d of %d appointments were not created", resp.Failed+resp.Pending, resp.Total)
	}
	app.printf("%s all %d appointments created\n", successStyle.Render("✓"), resp.Total)
	return nil
}

func hasRemainder(resp *models.SubmissionResponse) bool {
	return resp.Failed+resp.Pending > 0
}

func confirmRetry(resp *models.SubmissionResponse) (bool, error) {
	var retry bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Retry %d appointments that were not created?", resp.Failed+resp.Pending)).
		Affirmative("Retry").
		Negative("Skip").
		Value(&retry).
		Run()
	return retry, err
}

func seriesError(err error) error {
	switch {
	case errors.Is(err, create_series.ErrUnauthorized), errors.Is(err, retry_series.ErrUnauthorized):
		return fmt.Errorf("session was rejected, run `booker login` and retry: %w", err)
	case errors.Is(err, create_series.ErrInterrupted), errors.Is(err, retry_series.ErrInterrupted):
		return fmt.Errorf("booking interrupted, remaining appointments were not sent: %w", err)
	default:
		return err
	}
}
