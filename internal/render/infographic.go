package render

import "github.com/julianstephens/lessonprompt/internal/models"

// InfographicPrompt renders a single-page infographic description. The topic
// falls back to the unit title, then to a placeholder.
func InfographicPrompt(u models.UnitPlan, i models.Infographic) string {
	var d doc

	topic := or(i.Topic, u.UnitTitle, PlaceholderTopic)
	year := or(u.YearGroup, PlaceholderYearGroup)

	d.line("Create a one-page infographic about " + topic + " for " + year + " students.")
	d.line("")
	d.line("DESIGN:")
	d.line("- Single visual page (not multiple slides)")
	if i.StyleKeywords != "" {
		d.line("- " + i.StyleKeywords)
	}
	d.line(labelled("- Key diagrams showing:", i.MainConcepts))
	d.line(labelled("- Real-world examples:", i.ConcreteExamples))
	if i.VisualOrganizer != "" {
		d.line("- " + i.VisualOrganizer)
	}
	d.line("- Key vocabulary in large, clear text")
	d.line("- Icons and visual symbols to show concepts")
	if i.FlowDirection != "" {
		d.line("- Flow from " + i.FlowDirection)
	}
	d.line("- British English labels")
	d.line("")
	d.line("PURPOSE:")
	d.line("A poster-sized visual reference that students can understand at a glance. Shows what " +
		topic + " looks like/means, not detailed explanations yet.")
	d.line("")
	d.WriteString("No paragraphs. Visual learning only.")

	return d.String()
}
