// Package session holds the in-memory state of one editing session: the four
// records, the active output tab, the open form section and the copy flag.
package session

import (
	"github.com/google/uuid"

	"github.com/julianstephens/lessonprompt/internal/constants"
	"github.com/julianstephens/lessonprompt/internal/logger"
	"github.com/julianstephens/lessonprompt/internal/models"
	"github.com/julianstephens/lessonprompt/internal/render"
)

// OpenSection is the single expanded form section, if any
type OpenSection struct {
	Index int
	Open  bool
}

// IsOpen reports whether section i is the open one
func (o OpenSection) IsOpen(i int) bool {
	return o.Open && o.Index == i
}

// Session is the state store behind the TUI and CLI
type Session struct {
	ID string

	records models.Records
	tab     constants.Tab
	section OpenSection

	copied  bool
	copySeq int
}

// New creates a session holding the default records with section 0 open
func New() *Session {
	return &Session{
		ID:      uuid.New().String(),
		records: models.DefaultRecords(),
		tab:     constants.TabUnit,
		section: OpenSection{Index: 0, Open: true},
	}
}

// Records returns a snapshot of all four records
func (s *Session) Records() models.Records {
	return s.records
}

func (s *Session) UnitPlan() models.UnitPlan       { return s.records.Unit }
func (s *Session) Lesson() models.Lesson           { return s.records.Lesson }
func (s *Session) Slides() models.SlideStyle       { return s.records.Slides }
func (s *Session) Infographic() models.Infographic { return s.records.Infographic }

func (s *Session) SetUnitPlan(u models.UnitPlan)       { s.records.Unit = u }
func (s *Session) SetLesson(l models.Lesson)           { s.records.Lesson = l }
func (s *Session) SetSlides(st models.SlideStyle)      { s.records.Slides = st }
func (s *Session) SetInfographic(i models.Infographic) { s.records.Infographic = i }

// PatchUnitPlan replaces one unit plan field
func (s *Session) PatchUnitPlan(f models.UnitPlanField, value string) {
	s.records.Unit = s.records.Unit.With(f, value)
}

// PatchLesson replaces one lesson field
func (s *Session) PatchLesson(f models.LessonField, value string) {
	s.records.Lesson = s.records.Lesson.With(f, value)
}

// PatchSlides replaces one slide style field. Enum fields panic on values
// outside their option set.
func (s *Session) PatchSlides(f models.SlideField, value string) {
	s.records.Slides = s.records.Slides.With(f, value)
}

// PatchInfographic replaces one infographic field
func (s *Session) PatchInfographic(f models.InfographicField, value string) {
	s.records.Infographic = s.records.Infographic.With(f, value)
}

// Set patches a field addressed as "record.field"
func (s *Session) Set(key, value string) error {
	records, err := s.records.Set(key, value)
	if err != nil {
		return err
	}
	s.records = records
	return nil
}

// Tab returns the active output tab
func (s *Session) Tab() constants.Tab {
	return s.tab
}

// SetTab switches the active output tab
func (s *Session) SetTab(t constants.Tab) {
	s.tab = t
}

// OpenSection returns the currently expanded section
func (s *Session) OpenSection() OpenSection {
	return s.section
}

// ToggleSection opens section i, closing any other, or closes it if it is already open
func (s *Session) ToggleSection(i int) {
	if s.section.IsOpen(i) {
		s.section.Open = false
		return
	}
	s.section = OpenSection{Index: i, Open: true}
}

// MarkCopied turns the copied flag on and returns the token that may later
// turn it off again
func (s *Session) MarkCopied() int {
	s.copySeq++
	s.copied = true
	return s.copySeq
}

// ExpireCopy clears the copied flag if token belongs to the most recent copy.
// It reports whether the flag was cleared.
func (s *Session) ExpireCopy(token int) bool {
	if token != s.copySeq || !s.copied {
		return false
	}
	s.copied = false
	return true
}

// Copied reports whether the copied indicator should be shown
func (s *Session) Copied() bool {
	return s.copied
}

// Render returns the active tab's output
func (s *Session) Render() string {
	return render.For(s.tab, s.records)
}

// Filename returns the display label for the active tab's output
func (s *Session) Filename() string {
	return render.Filename(s.tab, s.records.Lesson.LessonNumber)
}

// Apply runs a destructive action without asking for confirmation
func (s *Session) Apply(a Action) {
	switch a {
	case ActionLoadExample:
		s.records = models.ExampleRecords()
		s.section = OpenSection{Index: 0, Open: true}
	case ActionReset:
		s.records = models.DefaultRecords()
	default:
		panic("session: unknown action " + a.String())
	}
	logger.Info("Applied session action", "session", s.ID, "action", a.String())
}
