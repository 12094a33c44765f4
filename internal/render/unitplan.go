package render

import "github.com/julianstephens/lessonprompt/internal/models"

type part struct {
	heading string
	body    string
}

type section struct {
	heading string
	body    string
	parts   []part
}

// UnitPlan renders the unit plan as a Markdown document. Field text is copied
// through untouched so teachers can write their own Markdown.
func UnitPlan(u models.UnitPlan) string {
	var d doc

	d.line("# NotebookLM Unit Plan: " + or(u.UnitTitle, UntitledUnit))
	if subtitle := joinNonEmpty(" ", u.YearGroup, u.Subject); subtitle != "" {
		d.line("## " + subtitle)
	}
	d.line(labelled("**Subject:**", u.Subject))
	d.line(labelled("**Year Group:**", u.YearGroup))
	d.line(labelled("**Unit Duration:**", u.Duration))
	d.line(labelled("**Curriculum Link:**", u.CurriculumLink))

	for _, s := range unitSections(u) {
		d.line("")
		d.line("---")
		d.line("")
		d.line(s.heading)
		if len(s.parts) == 0 {
			d.optional(s.body)
			continue
		}
		for _, p := range s.parts {
			d.line("")
			d.line(p.heading)
			d.optional(p.body)
		}
	}

	return d.String()
}

func unitSections(u models.UnitPlan) []section {
	return []section{
		{heading: "## 1. CRYSTAL-CLEAR LEARNING OBJECTIVES", body: u.LearningObjectives},
		{heading: "## 2. THE PROGRESSION (Explicit Lesson Order)", parts: []part{
			{"### What Students Already Know (Foundation)", u.PriorKnowledge},
			{"### The Lesson Sequence", u.LessonSequence},
			{"### Future Learning (What's Next)", u.FutureLearning},
		}},
		{heading: "## 3. CORE CONCEPTS & NON-NEGOTIABLES", parts: []part{
			{"### Essential Vocabulary", u.Vocabulary},
			{"### Common Misconceptions", u.Misconceptions},
		}},
		{heading: "## 4. ASSESSMENT STRATEGY", parts: []part{
			{"### Formative Assessment", u.FormativeAssessment},
			{"### Summative Assessment", u.SummativeAssessment},
		}},
		{heading: "## 5. DIFFERENTIATION PATHWAYS", parts: []part{
			{"### For Students Struggling", u.DiffStruggling},
			{"### For Students at Expected Level", u.DiffCore},
			{"### For Gifted/Extension Students", u.DiffGifted},
		}},
		{heading: "## 6. HOW YOU'LL HELP STUDENTS WHO ARE STRUGGLING", body: u.Interventions},
		{heading: "## 7. HOW YOU'LL CHALLENGE ADVANCED STUDENTS", body: u.ExtensionActivities},
		{heading: "## 8. RESOURCES & EQUIPMENT", parts: []part{
			{"### Physical Manipulatives", u.ResourcesPhysical},
			{"### Digital Resources", u.ResourcesDigital},
			{"### NOT Available (Don't Use)", u.ResourcesNoGo},
		}},
		{heading: "## 9. UNIT CONNECTIONS", body: u.UnitConnections},
		{heading: "## 10. THE GOLDEN PROMPT (Copy-Paste into NotebookLM)", body: "\n" +
			"When you upload this unit plan to NotebookLM and want to generate a lesson, use this prompt:\n" +
			"\n" +
			"```\n" +
			GoldenPrompt(u) + "\n" +
			"```"},
	}
}

// GoldenPrompt is the lesson-generation prompt embedded in section 10 of the unit plan
func GoldenPrompt(u models.UnitPlan) string {
	var d doc

	d.line("Act as a " + or(u.YearGroup, PlaceholderYearGroup) + " teacher delivering the " +
		or(u.UnitTitle, PlaceholderUnitTitle) + " unit to mixed-ability learners.")
	d.line("")
	d.line("Using ONLY the source materials provided, create a 45-minute lesson following this structure:")
	d.line("- Slide 1: Title & Learning Objectives")
	d.line("- Slide 2: Recap previous lesson")
	d.line("- Slide 3-4: Teacher Input (Concept explanation)")
	d.line("- Slide 5: Teacher Model (Worked example)")
	d.line("- Slide 6-7: Guided Practice")
	d.line("- Slide 8: Activity")
	d.line("- Slide 9: Independent Work")
	d.line("- Slide 10: Assessment")
	d.line("")
	d.line("Constraints:")
	d.line("- Use ONLY vocabulary from Section 3.")
	d.line("- Use ONLY resources from Section 8.")
	d.WriteString("- Address common misconceptions from Section 3.")
	if u.GoldenPromptConstraints != "" {
		d.WriteString("\n- " + u.GoldenPromptConstraints)
	}

	return d.String()
}
