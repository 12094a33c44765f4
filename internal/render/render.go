// Package render turns the session records into the text documents that are
// pasted into NotebookLM. Every function here is pure and total: empty fields
// degrade to placeholder text, never to an error.
package render

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lessonprompt/internal/constants"
	"github.com/julianstephens/lessonprompt/internal/models"
)

// Fallback placeholders
const (
	UntitledUnit          = "Untitled Unit"
	PlaceholderYearGroup  = "[Year Group]"
	PlaceholderUnitTitle  = "[Unit Title]"
	PlaceholderSubject    = "[Subject]"
	PlaceholderTitle      = "[Title]"
	PlaceholderTopic      = "[TOPIC]"
	LessonYearFallback    = "Year X"
	LessonUnitFallback    = "Unit"
	LessonNeedsFallback   = "including specific needs"
	LessonNumberFallback  = "X"
	VisualStyleFallback   = "diagrams, number lines, concrete objects"
	DeckLengthFallback    = models.LengthDefault
	FormatPresenterSlides = "Presenter Slides"
	FormatDetailedDeck    = "Detailed Deck"
)

// For renders the document shown on tab
func For(tab constants.Tab, r models.Records) string {
	switch tab {
	case constants.TabLesson:
		return LessonPrompt(r.Unit, r.Lesson)
	case constants.TabSlides:
		return SlidePrompt(r.Unit, r.Slides)
	case constants.TabInfographic:
		return InfographicPrompt(r.Unit, r.Infographic)
	default:
		return UnitPlan(r.Unit)
	}
}

// Filename returns the display label for the document on tab
func Filename(tab constants.Tab, lessonNumber string) string {
	switch tab {
	case constants.TabLesson:
		return fmt.Sprintf(constants.LessonFilenameFmt, or(lessonNumber, LessonNumberFallback))
	case constants.TabSlides:
		return constants.SlidesFilename
	case constants.TabInfographic:
		return constants.InfographicFilename
	default:
		return constants.UnitPlanFilename
	}
}

// or returns the first non-empty value
func or(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// labelled joins a label and value with a space, dropping the space when the value is empty
func labelled(label, value string) string {
	if value == "" {
		return label
	}
	return label + " " + value
}

func joinNonEmpty(sep string, values ...string) string {
	var parts []string
	for _, v := range values {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}

type doc struct {
	strings.Builder
}

func (d *doc) line(s string) {
	d.WriteString(s)
	d.WriteByte('\n')
}

// optional writes s as a line only when it is non-empty
func (d *doc) optional(s string) {
	if s != "" {
		d.line(s)
	}
}
