package render

import "github.com/julianstephens/lessonprompt/internal/models"

// LessonPrompt renders the per-lesson prompt. Only year group and unit title
// are read from the unit plan.
func LessonPrompt(u models.UnitPlan, l models.Lesson) string {
	var d doc

	d.line("Act as a " + or(u.YearGroup, LessonYearFallback) + " teacher delivering the " +
		or(u.UnitTitle, LessonUnitFallback) + " unit to mixed-ability learners")
	d.line("(" + or(l.StudentNeeds, LessonNeedsFallback) + "). Using ONLY the source materials provided,")
	d.line("create a 45-minute lesson following this structure:")
	d.line("")
	if l.StructureOverride != "" {
		d.line(l.StructureOverride)
		d.line("")
	}
	d.line("Constraints:")
	d.line("- Use ONLY the vocabulary listed in Section 3")
	d.line("- Every example must use the concrete materials available from Section 8")
	d.line("- Address the common misconceptions listed in Section 3")
	d.line("- Include a differentiation note: What struggling students do; what advanced students do")
	d.line("- No iPads or apps (unless approved in Section 8)")
	d.line("- Keep slides visual, not text-heavy")
	d.line("- Use British English")
	d.line("")

	heading := "For Lesson " + or(l.LessonNumber, LessonNumberFallback)
	if l.LessonTitle != "" {
		heading += " (" + l.LessonTitle + ")"
	}
	d.line(heading + ":")
	d.optional(l.SpecificFocus)
	d.line("")
	d.WriteString("Do not invent learning objectives. Do not suggest resources we don't have. " +
		"Match the teaching approach in the unit plan (concrete-pictorial-abstract).")

	return d.String()
}
