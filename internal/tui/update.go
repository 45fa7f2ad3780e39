package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"castlog/internal/activity"
)

// publishDoneMsg delivers the outcome of an asynchronous cast publish.
type publishDoneMsg struct {
	result activity.PublishResult
}

// appendFailedMsg reports a rejected or failed local append.
type appendFailedMsg struct {
	err error
}

func waitForPublish(results <-chan activity.PublishResult) tea.Cmd {
	return func() tea.Msg {
		return publishDoneMsg{result: <-results}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case publishDoneMsg:
		m.state = StateView
		if msg.result.Err != nil {
			m.warning = "Cast not published: " + msg.result.Err.Error()
		} else {
			m.warning = ""
		}
		m.refresh()
		return m, nil

	case appendFailedMsg:
		m.state = StateView
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	switch m.state {
	case StateAdd:
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateView
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		if m.form.State == huh.StateCompleted {
			return m.submitEntry()
		}
		return m, tea.Batch(cmds...)

	case StatePublishing:
		// Only the publish completion or a quit can leave this state.
		if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Add):
			m.entryForm = &EntryFormModel{Publish: true}
			m.form = newEntryForm(m.entryForm)
			m.state = StateAdd
			return m, m.form.Init()
		case key.Matches(msg, m.keys.Refresh):
			m.warning = ""
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Weekly):
			m.showWeekly = !m.showWeekly
			return m, nil
		}
	}

	return m, tea.Batch(cmds...)
}

// submitEntry appends the form's entry. The local append commits first; a
// publish, when requested, is awaited with a spinner and reported as a
// non-blocking warning on failure.
func (m Model) submitEntry() (tea.Model, tea.Cmd) {
	_, results, err := m.service.Append(context.Background(), activity.AppendInput{
		Text:     m.entryForm.Text,
		ImageURL: m.entryForm.Image,
		Channel:  m.entryForm.Channel,
		Publish:  m.entryForm.Publish,
	})
	if err != nil {
		return m, func() tea.Msg { return appendFailedMsg{err: err} }
	}

	m.refresh()

	if results == nil {
		m.state = StateView
		return m, nil
	}

	m.state = StatePublishing
	return m, tea.Batch(m.spin.Tick, waitForPublish(results))
}
