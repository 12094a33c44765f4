package handlers

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lessonprompt/internal/constants"
	"github.com/julianstephens/lessonprompt/internal/session"
	"github.com/julianstephens/lessonprompt/internal/tui/state"
)

// HandleGlobalKeys handles key presses available whenever no field is being edited
func HandleGlobalKeys(m *state.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.Keys.Tab):
		SwitchTab(m, m.Session.Tab().Next())
		return true, nil
	case key.Matches(msg, m.Keys.ShiftTab):
		SwitchTab(m, m.Session.Tab().Prev())
		return true, nil
	case key.Matches(msg, m.Keys.Jump):
		SwitchTab(m, constants.Tab(msg.String()[0]-'1'))
		return true, nil
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return true, nil
	case key.Matches(msg, m.Keys.Copy):
		return true, Copy(m)
	case key.Matches(msg, m.Keys.Example):
		return true, RequestAction(m, session.ActionLoadExample)
	case key.Matches(msg, m.Keys.Reset):
		return true, RequestAction(m, session.ActionReset)
	}
	return false, nil
}

// SwitchTab makes t the active output
func SwitchTab(m *state.Model, t constants.Tab) {
	m.Session.SetTab(t)
	m.Refresh()
}

// HandleBrowsingKeys moves the form cursor and acts on the selected row
func HandleBrowsingKeys(m *state.Model, msg tea.KeyMsg) tea.Cmd {
	row, ok := m.FormModel.Selected()

	switch {
	case key.Matches(msg, m.Keys.Up):
		m.FormModel.MoveUp()
	case key.Matches(msg, m.Keys.Down):
		m.FormModel.MoveDown()
	case key.Matches(msg, m.Keys.Enter):
		if !ok {
			return nil
		}
		switch {
		case row.Header:
			m.Session.ToggleSection(row.Section)
			m.Refresh()
		case len(row.Entry.Options) > 0:
			cycle(m, 1)
		default:
			m.State = constants.StateEditing
			return m.FormModel.StartEditing()
		}
	case key.Matches(msg, m.Keys.Left):
		cycle(m, -1)
	case key.Matches(msg, m.Keys.Right):
		cycle(m, 1)
	default:
		var cmd tea.Cmd
		m.PreviewModel, cmd = m.PreviewModel.Update(msg)
		return cmd
	}
	return nil
}

// cycle steps the selected enumeration field through its options
func cycle(m *state.Model, delta int) {
	row, ok := m.FormModel.Selected()
	if !ok || row.Header || len(row.Entry.Options) == 0 {
		return
	}
	patch(m, row.Entry.Key(), row.Entry.Cycle(row.Value, delta))
}
