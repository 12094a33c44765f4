package render

import "github.com/julianstephens/lessonprompt/internal/models"

// SlidePrompt renders the slide-deck configuration. Students get presenter
// slides with the detail in hidden speaker notes; teachers get a detailed,
// self-contained deck.
func SlidePrompt(u models.UnitPlan, s models.SlideStyle) string {
	var d doc

	format := FormatPresenterSlides
	if s.Audience == models.AudienceTeachers {
		format = FormatDetailedDeck
	}
	d.line("Format: " + format)
	d.line("Length: " + or(string(s.Length), string(DeckLengthFallback)))
	d.line("")
	d.line("Description:")

	lesson := or(u.YearGroup, PlaceholderYearGroup) + " " + or(u.Subject, PlaceholderSubject) +
		" lesson: " + or(u.UnitTitle, PlaceholderTitle)

	if s.Audience == models.AudienceTeachers {
		d.line("Create detailed slides for " + lesson + " (DETAILED DECK, not Presenter Slides).")
		d.line("")
		d.line("SLIDES (what teachers see):")
		d.line("- Full text explanations on each slide")
		d.line("- Learning objectives, misconceptions, differentiation notes visible")
		d.line("- Assessment criteria included")
		d.line("- Everything self-contained")
		d.WriteString("- Teacher can read and teach immediately without hidden notes")
	} else {
		d.line("Create presenter slides for " + lesson + ".")
		d.line("")
		d.line("STUDENT VIEW (what appears on projector):")
		d.line("- Minimal text: 1-2 key points per slide only")
		d.line("- Large, clear visuals: " + or(s.VisualStyle, VisualStyleFallback))
		d.line("- Learning objectives displayed at start")
		d.line("- Simple language")
		d.line("- NO text-heavy explanations (students watch you teach, not read slides)")
		d.line("")
		d.line("TEACHER VIEW (speaker notes hidden from students):")
		d.line("- Detailed explanations for teacher to say")
		d.line("- Questions to ask students")
		d.line("- Misconceptions to address")
		d.line("- When to use concrete materials")
		d.line("- Differentiation reminders")
		d.line("- Timing guidance")
		d.line("")
		d.WriteString("Students see ONLY clean slides. All teaching detail hidden in speaker notes.")
	}

	if s.AdditionalContext != "" {
		d.WriteString("\n\nAdditional Requirements:\n" + s.AdditionalContext)
	}

	return d.String()
}
