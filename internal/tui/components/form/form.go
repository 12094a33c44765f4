// Package form renders the editable fields of the active tab as a list of
// rows, with collapsible section headers and an in-place textarea editor.
package form

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lessonprompt/internal/constants"
	"github.com/julianstephens/lessonprompt/internal/models"
	"github.com/julianstephens/lessonprompt/internal/session"
)

const (
	singleLineHeight = 1
	multiLineHeight  = 8
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// Row is one line of the form: a section header or a field
type Row struct {
	Header  bool
	Title   string
	Section int
	Open    bool
	Entry   Entry
	Value   string
}

// ID identifies the row across rebuilds
func (r Row) ID() string {
	if r.Header {
		return fmt.Sprintf("section:%d", r.Section)
	}
	return r.Entry.Key()
}

type Model struct {
	tab     constants.Tab
	rows    []Row
	cursor  int
	offset  int
	editing bool
	input   textarea.Model
	width   int
	height  int
}

func New() Model {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Prompt = "┃ "
	return Model{input: ta}
}

// Rows builds the visible rows for tab given the open section
func Rows(tab constants.Tab, r models.Records, open session.OpenSection) []Row {
	var rows []Row
	for _, g := range Layout(tab, r) {
		expanded := g.Section == Flat || open.IsOpen(g.Section)
		if g.Section != Flat {
			rows = append(rows, Row{Header: true, Title: g.Title, Section: g.Section, Open: expanded})
		}
		if !expanded {
			continue
		}
		for _, e := range g.Entries {
			value, _ := r.Get(e.Kind, e.Field)
			rows = append(rows, Row{Section: g.Section, Entry: e, Value: value})
		}
	}
	return rows
}

// Sync rebuilds the rows from the current records, keeping the cursor on the
// same row when it still exists
func (m *Model) Sync(tab constants.Tab, r models.Records, open session.OpenSection) {
	var selected string
	if row, ok := m.Selected(); ok && tab == m.tab {
		selected = row.ID()
	}

	m.tab = tab
	m.rows = Rows(tab, r, open)

	m.cursor = 0
	for i, row := range m.rows {
		if row.ID() == selected {
			m.cursor = i
			break
		}
	}
	if m.editing {
		if row, ok := m.Selected(); !ok || row.Header || row.ID() != selected {
			m.StopEditing()
		}
	}
	m.ensureVisible()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.SetWidth(max(width-4, 10))
	m.ensureVisible()
}

// Selected returns the row under the cursor
func (m Model) Selected() (Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return Row{}, false
	}
	return m.rows[m.cursor], true
}

func (m Model) Cursor() int   { return m.cursor }
func (m Model) Len() int      { return len(m.rows) }
func (m Model) Editing() bool { return m.editing }

func (m *Model) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
	m.ensureVisible()
}

func (m *Model) MoveDown() {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
	}
	m.ensureVisible()
}

// StartEditing opens the textarea on the selected field
func (m *Model) StartEditing() tea.Cmd {
	row, ok := m.Selected()
	if !ok || row.Header || len(row.Entry.Options) > 0 {
		return nil
	}

	m.editing = true
	m.input.Placeholder = row.Entry.Placeholder
	m.input.KeyMap.InsertNewline.SetEnabled(row.Entry.Multiline)
	if row.Entry.Multiline {
		m.input.SetHeight(multiLineHeight)
	} else {
		m.input.SetHeight(singleLineHeight)
	}
	m.input.SetValue(row.Value)
	m.ensureVisible()
	return m.input.Focus()
}

func (m *Model) StopEditing() {
	m.editing = false
	m.input.Blur()
	m.ensureVisible()
}

// Value returns the text in the editor
func (m Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the text in the editor
func (m *Model) SetValue(s string) {
	m.input.SetValue(s)
}

// Update forwards messages to the editor while editing
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.editing {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) rowHeight(i int) int {
	if m.editing && i == m.cursor {
		h := 1 + m.input.Height()
		if len(m.rows[i].Entry.Suggestions) > 0 {
			h++
		}
		return h
	}
	return 1
}

// ensureVisible scrolls so the cursor row fits in the pane
func (m *Model) ensureVisible() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.height <= 0 {
		return
	}
	for m.offset < m.cursor {
		used := 0
		for i := m.offset; i <= m.cursor; i++ {
			used += m.rowHeight(i)
		}
		if used <= m.height {
			break
		}
		m.offset++
	}
}

func (m Model) View() string {
	if len(m.rows) == 0 {
		return placeholderStyle.Render("Nothing to edit.")
	}

	var b strings.Builder
	used := 0
	for i := m.offset; i < len(m.rows); i++ {
		h := m.rowHeight(i)
		if m.height > 0 && used+h > m.height {
			break
		}
		if i > m.offset {
			b.WriteByte('\n')
		}
		b.WriteString(m.viewRow(i))
		used += h
	}
	return b.String()
}

func (m Model) viewRow(i int) string {
	row := m.rows[i]
	selected := i == m.cursor

	pointer := "  "
	if selected {
		pointer = cursorStyle.Render("> ")
	}

	if row.Header {
		arrow := "▸"
		if row.Open {
			arrow = "▾"
		}
		title := headerStyle.Render(arrow + " " + row.Title)
		if selected {
			title = cursorStyle.Render(arrow + " " + row.Title)
		}
		return pointer + title
	}

	indent := ""
	if row.Section != Flat {
		indent = "  "
	}
	label := labelStyle.Render(row.Entry.Label + ":")

	if selected && m.editing {
		lines := []string{pointer + indent + label, indentBlock(m.input.View(), indent+"  ")}
		if len(row.Entry.Suggestions) > 0 {
			lines = append(lines, indent+"  "+hintStyle.Render("tab: complete from "+strings.Join(row.Entry.Suggestions[:min(3, len(row.Entry.Suggestions))], ", ")+"…"))
		}
		return strings.Join(lines, "\n")
	}

	var value string
	switch {
	case len(row.Entry.Options) > 0:
		value = valueStyle.Render("‹ " + row.Entry.Display(row.Value) + " ›")
	case row.Value == "":
		value = placeholderStyle.Render(firstLine(row.Entry.Placeholder))
	default:
		value = valueStyle.Render(firstLine(row.Value))
	}

	line := pointer + indent + label + " " + value
	if m.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
	}
	return line
}

func firstLine(s string) string {
	first, rest, found := strings.Cut(s, "\n")
	if found && strings.TrimSpace(rest) != "" {
		return first + " …"
	}
	return first
}

func indentBlock(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

// Complete returns the suggestion that best extends value: the first one it is
// a case-insensitive prefix of, or the suggestion after value when value is
// already a suggestion. Values matching nothing are returned unchanged.
func Complete(value string, suggestions []string) string {
	for i, s := range suggestions {
		if s == value {
			return suggestions[(i+1)%len(suggestions)]
		}
	}
	lower := strings.ToLower(value)
	for _, s := range suggestions {
		if strings.HasPrefix(strings.ToLower(s), lower) {
			return s
		}
	}
	return value
}
