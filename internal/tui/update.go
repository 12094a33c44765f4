package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lessonprompt/internal/constants"
	"github.com/julianstephens/lessonprompt/internal/tui/handlers"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.layout()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.Width = msg.Width
		m.Height = msg.Height
		return nil
	}

	if handled, cmd := handlers.HandleConfirmationMessages(&m.Model, msg); handled {
		return cmd
	}
	if handlers.HandleCopyMessages(&m.Model, msg) {
		return nil
	}

	switch m.State {
	case constants.StateConfirmation:
		return handlers.HandleConfirmationState(&m.Model, msg)
	case constants.StateEditing:
		return handlers.HandleEditingState(&m.Model, msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := handlers.HandleGlobalKeys(&m.Model, msg); handled {
			return cmd
		}
		return handlers.HandleBrowsingKeys(&m.Model, msg)
	}

	// Mouse wheel and the like scroll the preview
	var cmd tea.Cmd
	m.PreviewModel, cmd = m.PreviewModel.Update(msg)
	return cmd
}
