package handlers

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lessonprompt/internal/constants"
	"github.com/julianstephens/lessonprompt/internal/session"
	"github.com/julianstephens/lessonprompt/internal/tui/state"
)

// RequestAction asks for confirmation before a destructive session action
func RequestAction(m *state.Model, a session.Action) tea.Cmd {
	sess := m.Session
	return func() tea.Msg {
		return constants.ConfirmationMsg{
			Message: a.Prompt(),
			Action: func() tea.Cmd {
				sess.Apply(a)
				return nil
			},
		}
	}
}

// HandleConfirmationMessages handles messages related to confirmations
func HandleConfirmationMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case constants.ConfirmationMsg:
		m.ConfirmationForm = &state.ConfirmationFormModel{
			Message: msg.Message,
		}
		m.PendingAction = msg.Action
		m.Form = NewConfirmationForm(m.ConfirmationForm, m.Theme)
		m.State = constants.StateConfirmation
		return true, m.Form.Init()
	}
	return false, nil
}

// HandleConfirmationState handles the generic confirmation state
func HandleConfirmationState(m *state.Model, msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		return ResolveConfirmation(m, false)
	}

	var cmds []tea.Cmd
	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}
	cmds = append(cmds, cmd)

	switch m.Form.State {
	case huh.StateCompleted:
		cmds = append(cmds, ResolveConfirmation(m, m.ConfirmationForm.Confirmed))
	case huh.StateAborted:
		cmds = append(cmds, ResolveConfirmation(m, false))
	}
	return tea.Batch(cmds...)
}

// ResolveConfirmation runs the pending action only when confirmed, then
// returns to browsing
func ResolveConfirmation(m *state.Model, confirmed bool) tea.Cmd {
	var cmd tea.Cmd
	if confirmed && m.PendingAction != nil {
		cmd = m.PendingAction()
	}
	m.PendingAction = nil
	m.ConfirmationForm = nil
	m.Form = nil
	m.State = constants.StateBrowsing
	m.Refresh()
	return cmd
}
