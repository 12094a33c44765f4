package state

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lessonprompt/internal/clipboard"
	"github.com/julianstephens/lessonprompt/internal/constants"
	"github.com/julianstephens/lessonprompt/internal/session"
	"github.com/julianstephens/lessonprompt/internal/tui/components/form"
	"github.com/julianstephens/lessonprompt/internal/tui/components/preview"
)

// ConfirmationFormModel represents the form model for yes/no confirmations
type ConfirmationFormModel struct {
	Message   string
	Confirmed bool
}

// Model represents the shared state for the TUI
type Model struct {
	Session          *session.Session
	Clipboard        clipboard.Writer
	Theme            *huh.Theme
	State            constants.SessionState
	Keys             KeyMap
	Help             help.Model
	FormModel        form.Model
	PreviewModel     preview.Model
	Form             *huh.Form
	ConfirmationForm *ConfirmationFormModel
	PendingAction    func() tea.Cmd
	Status           string // Last clipboard error, cleared on the next copy
	CopyDelay        time.Duration
	Quitting         bool
	Width            int
	Height           int
}

// New creates a new state Model
func New(sess *session.Session, clip clipboard.Writer, theme *huh.Theme) Model {
	m := Model{
		Session:      sess,
		Clipboard:    clip,
		Theme:        theme,
		State:        constants.StateBrowsing,
		Keys:         DefaultKeyMap(),
		Help:         help.New(),
		FormModel:    form.New(),
		PreviewModel: preview.New(0, 0),
		CopyDelay:    constants.CopyResetDelay,
	}
	m.Refresh()
	return m
}

// Refresh pushes the session into the form rows and the preview
func (m *Model) Refresh() {
	m.FormModel.Sync(m.Session.Tab(), m.Session.Records(), m.Session.OpenSection())
	m.PreviewModel.SetDocument(m.Session.Filename(), m.Session.Render())
	m.PreviewModel.SetCopied(m.Session.Copied())
}

func (m Model) ShortHelp() []key.Binding {
	switch m.State {
	case constants.StateEditing:
		return []key.Binding{m.Keys.Escape, m.Keys.Complete}
	case constants.StateConfirmation:
		return nil
	}
	return []key.Binding{m.Keys.Tab, m.Keys.Enter, m.Keys.Copy, m.Keys.Quit, m.Keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	if m.State != constants.StateBrowsing {
		return [][]key.Binding{m.ShortHelp()}
	}
	global := []key.Binding{m.Keys.Tab, m.Keys.ShiftTab, m.Keys.Jump, m.Keys.Quit, m.Keys.Help}
	navigation := []key.Binding{m.Keys.Up, m.Keys.Down, m.Keys.Left, m.Keys.Right, m.Keys.Enter, m.Keys.Scroll}
	actions := []key.Binding{m.Keys.Copy, m.Keys.Example, m.Keys.Reset}
	return [][]key.Binding{global, navigation, actions}
}
