package cli

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/tui"
	"github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarberBooking/internal/usecase/get_eligible_dates"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// PickCmd интерактивный выбор даты и слота
type PickCmd struct {
	Service string `short:"s" help:"Service type (haircut, beard ...)." required:""`
}

func (c *PickCmd) Run(app *Context, ctx context.Context) error {
	authCtx, err := app.Authorized(ctx)
	if err != nil {
		return err
	}

	loadDates, loadSlots := c.loaders(app)
	choice, err := tui.Run(authCtx, c.Service, loadDates, loadSlots)
	if err != nil {
		return err
	}
	if choice == nil {
		return nil
	}

	app.printf("%s %s %s\n", successStyle.Render("selected"), choice.Date.Format(domain.DateFormat), choice.Time)
	app.printf("book it with: booker book -s %s -d %s -t %s\n", c.Service, choice.Date.Format(domain.DateFormat), choice.Time)
	return nil
}

func (c *PickCmd) loaders(app *Context) (tui.DatesLoader, tui.SlotsLoader) {
	datesUC := app.eligibleDates()
	slotsUC := app.availableSlots()

	loadDates := func(ctx context.Context) ([]time.Time, error) {
		resp, err := datesUC.Execute(ctx, &get_eligible_dates.Request{ServiceType: c.Service})
		if err != nil {
			return nil, err
		}
		return resp.Dates, nil
	}
	loadSlots := func(ctx context.Context, date time.Time) ([]types.TimeString, error) {
		resp, err := slotsUC.Execute(ctx, &get_available_slots.Request{ServiceType: c.Service, Date: date})
		if err != nil {
			return nil, err
		}
		return resp.Available, nil
	}
	return loadDates, loadSlots
}
