package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarberBooking/internal/usecase/get_eligible_dates"
)

// DatesCmd показывает ближайшие рабочие даты для услуги
type DatesCmd struct {
	Service string `short:"s" help:"Service type (haircut, beard ...)." required:""`
	From    string `help:"First date to consider (YYYY-MM-DD). Defaults to today."`
	Limit   int    `help:"Maximum number of dates. 0 uses the configured limit."`
	Horizon int    `help:"How many days ahead to look. 0 uses the configured horizon."`
}

func (c *DatesCmd) Run(app *Context, ctx context.Context) error {
	authCtx, err := app.Authorized(ctx)
	if err != nil {
		return err
	}

	req := &get_eligible_dates.Request{
		ServiceType: c.Service,
		Limit:       c.Limit,
		HorizonDays: c.Horizon,
	}
	if c.From != "" {
		from, err := app.parseDate(c.From)
		if err != nil {
			return err
		}
		req.From = &from
	}

	resp, err := app.eligibleDates().Execute(authCtx, req)
	if err != nil {
		return fmt.Errorf("failed to load working days: %w", err)
	}

	if len(resp.Dates) == 0 {
		app.printf("no working days for %s in the next %d days\n", resp.ServiceType, resp.HorizonDays)
		return nil
	}
	app.printf("%s\n", headerStyle.Render(fmt.Sprintf("%s: %d dates from %s", resp.ServiceType, len(resp.Dates), resp.From.Format(domain.DateFormat))))
	for _, date := range resp.Dates {
		app.printf("  %s %s\n", date.Format(domain.DateFormat), mutedStyle.Render(date.Weekday().String()[:3]))
	}
	return nil
}

// SlotsCmd показывает свободные слоты на дату
type SlotsCmd struct {
	Service string `short:"s" help:"Service type (haircut, beard ...)." required:""`
	Date    string `short:"d" help:"Date (YYYY-MM-DD). Defaults to today."`
	Admin   bool   `help:"Also show booked slots."`
}

func (c *SlotsCmd) Run(app *Context, ctx context.Context) error {
	authCtx, err := app.Authorized(ctx)
	if err != nil {
		return err
	}

	date := app.today()
	if c.Date != "" {
		if date, err = app.parseDate(c.Date); err != nil {
			return err
		}
	}

	resp, err := app.availableSlots().Execute(authCtx, &get_available_slots.Request{ServiceType: c.Service, Date: date})
	if err != nil {
		if errors.Is(err, get_available_slots.ErrAvailabilityFetch) {
			return fmt.Errorf("could not load slots for %s, try again: %w", date.Format(domain.DateFormat), err)
		}
		return err
	}

	app.printf("%s\n", headerStyle.Render(fmt.Sprintf("%s on %s %s", resp.ServiceType, resp.Date.Format(domain.DateFormat), resp.Date.Weekday())))
	app.printf("  available: %s\n", joinTimes(resp.Available))
	if c.Admin {
		app.printf("  booked:    %s\n", joinTimes(resp.Booked))
	}
	return nil
}
