package constants

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Tab is the output kind currently shown in the preview and editable form
type Tab int

// SessionState represents the current state of the TUI application
type SessionState int

// ConfirmationMsg is a message to trigger a confirmation dialog
type ConfirmationMsg struct {
	Message string
	Action  func() tea.Cmd
}

// CopiedMsg reports the outcome of a clipboard write
type CopiedMsg struct {
	Err error
}

// CopyExpiredMsg fires CopyResetDelay after a copy. Token identifies which copy it belongs to.
type CopyExpiredMsg struct {
	Token int
}

const (
	AppName          = "lessonprompt"
	Version          = "v0.1.0"
	DefaultConfigDir = "~/.config/lessonprompt"
	ConfigFileName   = "config.yaml"
	LogFileName      = "lessonprompt.log"

	// CopyResetDelay is how long the "copied" indicator stays on after the last copy
	CopyResetDelay = 2000 * time.Millisecond

	// Display filenames for each output
	UnitPlanFilename    = "gospel_truth.md"
	SlidesFilename      = "slide_config.txt"
	InfographicFilename = "infographic_prompt.txt"
	LessonFilenameFmt   = "lesson_%s_prompt.txt"

	// Clipboard backends
	ClipboardAuto   = "auto"
	ClipboardSystem = "system"
	ClipboardOSC52  = "osc52"
)

// Tabs
const (
	TabUnit Tab = iota
	TabLesson
	TabSlides
	TabInfographic
)

// Session States
const (
	StateBrowsing SessionState = iota
	StateEditing
	StateConfirmation
)

// Tabs lists the output kinds in display order
var Tabs = []Tab{TabUnit, TabLesson, TabSlides, TabInfographic}

// String returns the short name used on the command line
func (t Tab) String() string {
	switch t {
	case TabUnit:
		return "unit"
	case TabLesson:
		return "lesson"
	case TabSlides:
		return "slides"
	case TabInfographic:
		return "infographic"
	}
	return fmt.Sprintf("tab(%d)", int(t))
}

// Title returns the label shown in the tab bar
func (t Tab) Title() string {
	switch t {
	case TabUnit:
		return "Unit Plan"
	case TabLesson:
		return "Lesson"
	case TabSlides:
		return "Slides"
	case TabInfographic:
		return "Infographic"
	}
	return t.String()
}

// Next returns the following tab, wrapping around
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % len(Tabs))
}

// Prev returns the preceding tab, wrapping around
func (t Tab) Prev() Tab {
	return Tab((int(t) - 1 + len(Tabs)) % len(Tabs))
}

// ParseTab maps a command line name to a Tab
func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if t.String() == s {
			return t, nil
		}
	}
	return TabUnit, fmt.Errorf("unknown output %q (want unit, lesson, slides or infographic)", s)
}
