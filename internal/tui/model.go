// Package tui is the interactive view: streak badge, contribution grid, and
// recent entries, with a form for logging new ones. It is presentation glue
// only; all state lives in the store and every view is recomputed from it.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"castlog/internal/activity"
	"castlog/internal/models"
	"castlog/internal/storage"
)

type SessionState int

const (
	StateView SessionState = iota
	StateAdd
	StatePublishing
)

// EntryFormModel holds the huh form values for a new entry.
type EntryFormModel struct {
	Text    string
	Image   string
	Channel string
	Publish bool
}

type Model struct {
	store   storage.Provider
	service *activity.Service

	state     SessionState
	keys      KeyMap
	help      help.Model
	spin      spinner.Model
	form      *huh.Form
	entryForm *EntryFormModel

	today   time.Time
	entries []models.Entry
	grid    [][]models.GridCell
	daily   int
	weekly  int

	showWeekly bool
	warning    string
	err        error
	quitting   bool
	width      int
	height     int
}

func NewModel(store storage.Provider, service *activity.Service) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		store:   store,
		service: service,
		state:   StateView,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		spin:    sp,
	}
	m.refresh()
	return m
}

// refresh recomputes every derived view from the current ledger.
func (m *Model) refresh() {
	today, err := m.service.Today()
	if err != nil {
		m.err = err
		return
	}
	m.today = today

	entries, err := m.service.Entries()
	if err != nil {
		m.err = err
		return
	}
	m.entries = entries
	m.grid = activity.BuildGrid(entries, today)
	m.daily = activity.DailyStreak(entries, today)
	m.weekly = activity.WeeklyStreak(entries, today)
	m.err = nil
}

func (m Model) Init() tea.Cmd {
	return m.spin.Tick
}

func newEntryForm(values *EntryFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("What did you do?").
				Value(&values.Text),
			huh.NewInput().
				Title("Image URL (optional)").
				Value(&values.Image),
			huh.NewInput().
				Title("Channel (optional)").
				Value(&values.Channel),
			huh.NewConfirm().
				Title("Publish as cast?").
				Value(&values.Publish),
		),
	).WithTheme(huh.ThemeBase())
}
