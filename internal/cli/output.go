package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/submissions/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func joinTimes(times []types.TimeString) string {
	if len(times) == 0 {
		return mutedStyle.Render("none")
	}
	parts := make([]string, 0, len(times))
	for _, t := range times {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, " ")
}

func renderDayStatus(status domain.DayStatus) string {
	switch {
	case status.IsBookable():
		return successStyle.Render(string(status))
	case status == domain.DayUnknown:
		return warnStyle.Render(string(status))
	default:
		return failStyle.Render(string(status))
	}
}

func renderItemStatus(status string) string {
	switch domain.ItemStatus(status) {
	case domain.ItemCreated:
		return successStyle.Render(status)
	case domain.ItemFailed:
		return failStyle.Render(status)
	default:
		return warnStyle.Render(status)
	}
}

// printSubmission выводит результат отправки серии построчно
func (c *Context) printSubmission(resp *models.SubmissionResponse) {
	c.printf("%s %s: %d created, %d failed, %d pending of %d\n",
		headerStyle.Render("submission"), resp.SubmissionID, resp.Created, resp.Failed, resp.Pending, resp.Total)
	for _, item := range resp.Items {
		line := "  " + item.Date + " " + item.Time + "  " + renderItemStatus(item.Status)
		if item.AppointmentID != nil {
			line += "  " + mutedStyle.Render(*item.AppointmentID)
		}
		if item.Error != nil {
			line += "  " + *item.Error
		}
		c.printf("%s\n", line)
	}
}
