package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/latest"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// DatesLoader загружает даты, доступные для записи на услугу
type DatesLoader func(ctx context.Context) ([]time.Time, error)

// SlotsLoader загружает свободные слоты на дату
type SlotsLoader func(ctx context.Context, date time.Time) ([]types.TimeString, error)

// Choice выбранные пользователем дата и время
type Choice struct {
	Date time.Time
	Time types.TimeString
}

type focusArea int

const (
	focusDates focusArea = iota
	focusSlots
)

type datesLoadedMsg struct {
	dates []time.Time
	err   error
}

// slotsLoadedMsg ответ на запрос слотов; применяется, только если ticket последний
type slotsLoadedMsg struct {
	ticket latest.Ticket[string]
	slots  []types.TimeString
	err    error
}

// Model выбор даты и времени записи
//
// Слоты загружаются при каждом перемещении по датам. Ответы по прежним датам,
// пришедшие позже, отбрасываются через latest.Guard.
type Model struct {
	ctx       context.Context
	service   string
	loadDates DatesLoader
	loadSlots SlotsLoader

	keys    keyMap
	spinner spinner.Model
	guard   *latest.Guard[string]

	dates      []time.Time
	dateCursor int
	slots      []types.TimeString
	slotCursor int
	focus      focusArea

	loadingDates bool
	loadingSlots bool
	err          error

	choice   *Choice
	quitting bool
}

// New создает модель выбора
func New(ctx context.Context, service string, loadDates DatesLoader, loadSlots SlotsLoader) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = cursorStyle

	return Model{
		ctx:          ctx,
		service:      service,
		loadDates:    loadDates,
		loadSlots:    loadSlots,
		keys:         defaultKeyMap(),
		spinner:      s,
		guard:        &latest.Guard[string]{},
		loadingDates: true,
	}
}

// Choice возвращает выбор пользователя, nil если выбор не сделан
func (m Model) Choice() *Choice {
	return m.choice
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchDates())
}

func (m Model) fetchDates() tea.Cmd {
	ctx, load := m.ctx, m.loadDates
	return func() tea.Msg {
		dates, err := load(ctx)
		return datesLoadedMsg{dates: dates, err: err}
	}
}

// requestSlots выдает новый ticket и запускает загрузку слотов выбранной даты
func (m *Model) requestSlots() tea.Cmd {
	if len(m.dates) == 0 {
		return nil
	}
	date := m.dates[m.dateCursor]
	ticket := m.guard.Issue(date.Format(domain.DateFormat))

	m.loadingSlots = true
	m.slots = nil
	m.slotCursor = 0
	m.err = nil
	if m.focus == focusSlots {
		m.focus = focusDates
	}

	ctx, load := m.ctx, m.loadSlots
	return func() tea.Msg {
		slots, err := load(ctx, date)
		return slotsLoadedMsg{ticket: ticket, slots: slots, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case datesLoadedMsg:
		m.loadingDates = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.dates = msg.dates
		m.dateCursor = 0
		cmd := m.requestSlots()
		return m, cmd

	case slotsLoadedMsg:
		if !m.guard.Accept(msg.ticket) {
			// ответ по дате, с которой пользователь уже ушел
			return m, nil
		}
		m.loadingSlots = false
		m.slots = msg.slots
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reload):
		if m.loadingDates {
			return m, nil
		}
		if len(m.dates) == 0 {
			m.loadingDates = true
			m.err = nil
			return m, m.fetchDates()
		}
		cmd := m.requestSlots()
		return m, cmd

	case key.Matches(msg, m.keys.Switch):
		if len(m.slots) > 0 {
			m.focus = focusSlots
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.focus = focusDates
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.focus == focusSlots {
			if m.slotCursor > 0 {
				m.slotCursor--
			}
			return m, nil
		}
		if m.dateCursor > 0 {
			m.dateCursor--
			cmd := m.requestSlots()
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.focus == focusSlots {
			if m.slotCursor < len(m.slots)-1 {
				m.slotCursor++
			}
			return m, nil
		}
		if m.dateCursor < len(m.dates)-1 {
			m.dateCursor++
			cmd := m.requestSlots()
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if m.focus == focusDates {
			if len(m.slots) > 0 {
				m.focus = focusSlots
			}
			return m, nil
		}
		m.choice = &Choice{Date: m.dates[m.dateCursor], Time: m.slots[m.slotCursor]}
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting || m.choice != nil {
		return ""
	}

	title := titleStyle.Render(fmt.Sprintf("Book %s", m.service))

	datesPane, slotsPane := paneStyle, paneStyle
	if m.focus == focusDates {
		datesPane = focusedPaneStyle
	} else {
		slotsPane = focusedPaneStyle
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		datesPane.Render(m.datesView()),
		slotsPane.Render(m.slotsView()),
	)

	help := helpStyle.Render(strings.Join([]string{
		helpEntry(m.keys.Up), helpEntry(m.keys.Down), helpEntry(m.keys.Switch),
		helpEntry(m.keys.Select), helpEntry(m.keys.Reload), helpEntry(m.keys.Quit),
	}, " • "))

	return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
}

func (m Model) datesView() string {
	if m.loadingDates {
		return m.spinner.View() + " loading dates..."
	}
	if len(m.dates) == 0 {
		if m.err != nil {
			return errorStyle.Render("failed to load dates") + "\n" + mutedStyle.Render("press r to retry")
		}
		return mutedStyle.Render("no dates available")
	}

	var b strings.Builder
	for i, d := range m.dates {
		line := d.Format("Mon 02 Jan")
		if i == m.dateCursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) slotsView() string {
	switch {
	case len(m.dates) == 0:
		return ""
	case m.loadingSlots:
		return m.spinner.View() + " loading slots..."
	case m.err != nil:
		msg := "failed to load slots"
		if errors.Is(m.err, context.Canceled) {
			msg = "cancelled"
		}
		return errorStyle.Render(msg) + "\n" + mutedStyle.Render("press r to retry")
	case len(m.slots) == 0:
		return mutedStyle.Render("no free slots")
	}

	var b strings.Builder
	for i, s := range m.slots {
		if m.focus == focusSlots && i == m.slotCursor {
			b.WriteString(cursorStyle.Render("> " + s.String()))
		} else {
			b.WriteString("  " + s.String())
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func helpEntry(b key.Binding) string {
	h := b.Help()
	return h.Key + " " + h.Desc
}

// Run запускает выбор и возвращает выбор пользователя (nil при выходе без выбора)
func Run(ctx context.Context, service string, loadDates DatesLoader, loadSlots SlotsLoader) (*Choice, error) {
	final, err := tea.NewProgram(New(ctx, service, loadDates, loadSlots), tea.WithContext(ctx)).Run()
	if err != nil {
		return nil, err
	}
	model, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	return model.Choice(), nil
}
