// Package preview shows the rendered document for the active tab in a
// scrollable pane, with its filename and the copy indicator.
package preview

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const CopiedLabel = "Copied!"

var (
	filenameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true)

	copiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	copyHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	bodyStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238"))
)

type Model struct {
	viewport viewport.Model
	filename string
	content  string
	copied   bool
	width    int
	height   int
}

func New(width, height int) Model {
	vp := viewport.New(width, height)
	// up/down belong to the form, so the preview only pages
	vp.KeyMap = viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll preview")),
		PageUp:       key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll preview")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
	}
	return Model{viewport: vp}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	status := copyHintStyle.Render("c to copy")
	if m.copied {
		status = copiedStyle.Render(CopiedLabel)
	}

	gap := max(m.width-lipgloss.Width(m.filename)-lipgloss.Width(status), 1)
	header := filenameStyle.Render(m.filename) + lipgloss.NewStyle().Width(gap).Render("") + status

	return lipgloss.JoinVertical(lipgloss.Left, header, bodyStyle.Render(m.viewport.View()))
}

// SetSize sizes the pane including its header and border
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = max(width-2, 0)
	m.viewport.Height = max(height-3, 0)
	m.viewport.SetContent(m.content)
}

// SetDocument replaces the previewed text. A new filename means a new
// document, so the view scrolls back to the top.
func (m *Model) SetDocument(filename, content string) {
	if filename != m.filename {
		m.viewport.GotoTop()
	}
	m.filename = filename
	m.content = content
	m.viewport.SetContent(content)
}

func (m *Model) SetCopied(copied bool) {
	m.copied = copied
}

func (m Model) Filename() string { return m.filename }
func (m Model) Content() string  { return m.content }
func (m Model) Copied() bool     { return m.copied }

// ScrollPercent reports how far the preview is scrolled
func (m Model) ScrollPercent() float64 {
	return m.viewport.ScrollPercent()
}
