package handlers

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lessonprompt/internal/constants"
	"github.com/julianstephens/lessonprompt/internal/errors"
	"github.com/julianstephens/lessonprompt/internal/logger"
	"github.com/julianstephens/lessonprompt/internal/tui/components/form"
	"github.com/julianstephens/lessonprompt/internal/tui/state"
)

// HandleEditingState feeds input to the field editor and writes every change
// straight back to the session
func HandleEditingState(m *state.Model, msg tea.Msg) tea.Cmd {
	row, ok := m.FormModel.Selected()
	if !ok || row.Header {
		StopEditing(m)
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case msg.Type == tea.KeyCtrlC:
			m.Quitting = true
			return tea.Quit
		case key.Matches(msg, m.Keys.Escape):
			StopEditing(m)
			return nil
		case msg.Type == tea.KeyEnter && !row.Entry.Multiline:
			StopEditing(m)
			return nil
		case key.Matches(msg, m.Keys.Complete):
			if len(row.Entry.Suggestions) > 0 {
				m.FormModel.SetValue(form.Complete(m.FormModel.Value(), row.Entry.Suggestions))
				patch(m, row.Entry.Key(), m.FormModel.Value())
			}
			return nil
		}
	}

	// The textarea normalises some text (tabs become spaces), so only an
	// edit made by this message is written back
	before := m.FormModel.Value()
	var cmd tea.Cmd
	m.FormModel, cmd = m.FormModel.Update(msg)
	if value := m.FormModel.Value(); value != before {
		patch(m, row.Entry.Key(), value)
	}
	return cmd
}

// StopEditing closes the field editor and returns to browsing
func StopEditing(m *state.Model) {
	m.FormModel.StopEditing()
	m.State = constants.StateBrowsing
}

func patch(m *state.Model, field, value string) {
	if err := m.Session.Set(field, value); err != nil {
		logger.Error("Failed to update field", "session", m.Session.ID, "field", field, "error", err)
		m.Status = errors.Format(err)
		return
	}
	m.Refresh()
}
