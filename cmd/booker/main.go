package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/m04kA/SMC-BarberBooking/internal/cli"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/scheduling"
	"github.com/m04kA/SMC-BarberBooking/internal/keyring"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

var CLI struct {
	Version  kong.VersionFlag
	Server   string        `help:"Scheduling service URL." env:"BOOKER_SERVER" default:"http://localhost:3000"`
	Timezone string        `help:"Barber shop timezone (IANA name)." env:"BOOKER_TIMEZONE" default:"Local"`
	Timeout  time.Duration `help:"Request timeout." default:"10s"`
	LogFile  string        `help:"Log file path. Defaults to the user cache directory."`
	LogLevel string        `help:"Log level (debug, info, warn, error)." default:"warn"`
	NoInput  bool          `help:"Never show interactive prompts."`

	HorizonDays    int     `help:"Default number of days ahead to look for working days." default:"60"`
	MaxOccurrences int     `help:"Maximum number of appointments in a series." default:"52"`
	SubmitRate     float64 `help:"Appointments created per second. 0 means no limit." default:"2"`

	Login   cli.LoginCmd   `cmd:"" help:"Log in and store the session token in the OS keyring."`
	Logout  cli.LogoutCmd  `cmd:"" help:"Remove the stored session token."`
	Dates   cli.DatesCmd   `cmd:"" help:"List upcoming working days for a service."`
	Slots   cli.SlotsCmd   `cmd:"" help:"List free time slots on a date."`
	Pick    cli.PickCmd    `cmd:"" help:"Pick a date and a slot interactively."`
	Preview cli.PreviewCmd `cmd:"" help:"Check a recurring series against the calendar without booking."`
	Book    cli.BookCmd    `cmd:"" help:"Book a single appointment or a recurring series."`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kctx := kong.Parse(&CLI,
		kong.Name("booker"),
		kong.Description("Barber shop booking from the terminal"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	location, err := time.LoadLocation(CLI.Timezone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown timezone %q: %v\n", CLI.Timezone, err)
		os.Exit(1)
	}

	logFile := CLI.LogFile
	if logFile == "" {
		logFile = defaultLogFile()
	}
	log, err := logger.New(logFile, CLI.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	appCtx := &cli.Context{
		Server:   CLI.Server,
		Client:   scheduling.NewClient(CLI.Server, CLI.Timeout, log, nil),
		Tokens:   keyring.NewStore(),
		Location: location,
		Booking: cli.BookingOptions{
			HorizonDays:         CLI.HorizonDays,
			EligibleDatesLimit:  domain.DefaultEligibleDatesLimit,
			MaxOccurrences:      CLI.MaxOccurrences,
			PreviewConcurrency:  4,
			SubmitRatePerSecond: CLI.SubmitRate,
		},
		Logger:  log,
		Out:     os.Stdout,
		Now:     time.Now,
		NoInput: CLI.NoInput,
	}

	if err := kctx.Run(appCtx); err != nil {
		log.Error("%s: %v", kctx.Command(), err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		log.Close()
		os.Exit(1)
	}
}

// defaultLogFile лог CLI не смешивается с выводом команд
func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "booker", "booker.log")
}
