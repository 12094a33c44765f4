package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lessonprompt/internal/constants"
	"github.com/julianstephens/lessonprompt/internal/errors"
	"github.com/julianstephens/lessonprompt/internal/logger"
	"github.com/julianstephens/lessonprompt/internal/tui/state"
)

// Copy puts the active document on the clipboard. The indicator turns on at
// once and a timer carrying this copy's token is started to turn it off.
func Copy(m *state.Model) tea.Cmd {
	text := m.Session.Render()
	token := m.Session.MarkCopied()
	m.Status = ""
	m.PreviewModel.SetCopied(true)
	logger.Debug("Copying document", "session", m.Session.ID, "file", m.Session.Filename(), "bytes", len(text), "token", token)

	clip := m.Clipboard
	write := func() tea.Msg {
		if clip == nil {
			return constants.CopiedMsg{Err: fmt.Errorf("no clipboard configured")}
		}
		return constants.CopiedMsg{Err: clip.Write(text)}
	}
	expire := tea.Tick(m.CopyDelay, func(time.Time) tea.Msg {
		return constants.CopyExpiredMsg{Token: token}
	})
	return tea.Batch(write, expire)
}

// HandleCopyMessages handles clipboard results and indicator timeouts
func HandleCopyMessages(m *state.Model, msg tea.Msg) bool {
	switch msg := msg.(type) {
	case constants.CopiedMsg:
		if msg.Err != nil {
			logger.Warn("Clipboard write failed", "session", m.Session.ID, "error", msg.Err)
			m.Status = errors.Format(fmt.Errorf("copy failed: %w", msg.Err))
		}
		return true
	case constants.CopyExpiredMsg:
		if m.Session.ExpireCopy(msg.Token) {
			m.PreviewModel.SetCopied(false)
		}
		return true
	}
	return false
}
