package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lessonprompt/internal/constants"
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var body string
	if m.State == constants.StateConfirmation && m.Form != nil {
		body = lipgloss.Place(m.Width, m.bodyHeight(),
			lipgloss.Center, lipgloss.Center,
			dialogStyle.Render(m.Form.View()),
		)
	} else {
		body = lipgloss.JoinHorizontal(
			lipgloss.Top,
			formPaneStyle.Width(m.formWidth()-2).Height(m.bodyHeight()).Render(m.FormModel.View()),
			m.PreviewModel.View(),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		"",
		body,
		m.viewStatus(),
		m.Help.View(m.Model),
	)
}

func (m Model) viewTabs() string {
	tabs := []string{titleStyle.Render(constants.AppName)}
	for _, t := range constants.Tabs {
		if t == m.Session.Tab() {
			tabs = append(tabs, activeTabStyle.Render(t.Title()))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(t.Title()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	if m.Status != "" {
		return dangerStyle.Render(m.Status)
	}
	if m.State == constants.StateEditing {
		if row, ok := m.FormModel.Selected(); ok {
			return mutedStyle.Render("Editing " + row.Entry.Label)
		}
	}
	return ""
}
