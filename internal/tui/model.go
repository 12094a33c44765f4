package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lessonprompt/internal/clipboard"
	"github.com/julianstephens/lessonprompt/internal/constants"
	"github.com/julianstephens/lessonprompt/internal/session"
	"github.com/julianstephens/lessonprompt/internal/tui/state"
)

const (
	headerHeight = 2
	statusHeight = 1
	fullHelpRows = 6
)

type Model struct {
	state.Model
}

func NewModel(sess *session.Session, clip clipboard.Writer, theme *huh.Theme) Model {
	return Model{Model: state.New(sess, clip, theme)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) bodyHeight() int {
	help := 1
	if m.Help.ShowAll && m.State == constants.StateBrowsing {
		help = fullHelpRows
	}
	return max(m.Height-headerHeight-statusHeight-help, 3)
}

func (m Model) formWidth() int {
	return max(m.Width*2/5, 20)
}

// layout sizes the panes to the current window
func (m *Model) layout() {
	m.Help.Width = m.Width
	h := m.bodyHeight()
	m.FormModel.SetSize(m.formWidth()-2, h)
	m.PreviewModel.SetSize(max(m.Width-m.formWidth()-1, 20), h)
	if m.Form != nil {
		m.Form = m.Form.WithWidth(min(m.Width-4, 60))
	}
}
