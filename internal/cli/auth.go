package cli

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/m04kA/SMC-BarberBooking/internal/keyring"
	"github.com/m04kA/SMC-BarberBooking/internal/session"
)

// LoginCmd входит в сервис расписания и сохраняет токен в OS keyring
type LoginCmd struct {
	Email    string `short:"e" help:"Account email."`
	Password string `short:"p" help:"Account password. Prompted when omitted." env:"BOOKER_PASSWORD"`
}

func (c *LoginCmd) Run(app *Context, ctx context.Context) error {
	if c.Email == "" || c.Password == "" {
		if app.NoInput {
			return errors.New("--email and --password are required with --no-input")
		}
		if err := c.prompt(); err != nil {
			return err
		}
	}

	token, err := app.Client.Login(ctx, strings.TrimSpace(c.Email), c.Password)
	if err != nil {
		app.Logger.Warn("Login: failed for server=%s: %v", app.Server, err)
		return fmt.Errorf("login failed: %w", err)
	}
	if err := session.Check(token, app.Now()); err != nil {
		return fmt.Errorf("server returned unusable token: %w", err)
	}
	if err := app.Tokens.SetToken(app.Server, token); err != nil {
		return err
	}

	app.Logger.Info("Login: token stored for server=%s", app.Server)
	app.printf("%s logged in to %s\n", successStyle.Render("✓"), app.Server)
	return nil
}

func (c *LoginCmd) prompt() error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&c.Email).
				Validate(func(s string) error {
					if _, err := mail.ParseAddress(strings.TrimSpace(s)); err != nil {
						return errors.New("enter a valid email")
					}
					return nil
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&c.Password).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("password is required")
					}
					return nil
				}),
		),
	)
	return form.Run()
}

// LogoutCmd удаляет сохраненный токен
type LogoutCmd struct{}

func (c *LogoutCmd) Run(app *Context) error {
	if err := app.Tokens.DeleteToken(app.Server); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			app.printf("not logged in to %s\n", app.Server)
			return nil
		}
		return err
	}
	app.printf("logged out from %s\n", app.Server)
	return nil
}
