package render

import (
	"strings"
	"testing"

	"github.com/julianstephens/lessonprompt/internal/constants"
	"github.com/julianstephens/lessonprompt/internal/models"
)

const fence = "```"

func TestLessonPrompt_Example(t *testing.T) {
	r := models.ExampleRecords()

	want := `Act as a Year 4 teacher delivering the Fractions: Visual & Conceptual unit to mixed-ability learners
(Include 2 students with dyscalculia.). Using ONLY the source materials provided,
create a 45-minute lesson following this structure:

- Slide 1: Title & Learning Objectives (Read aloud)
- Slide 2: Recap previous lesson
- Slide 3-4: Teacher Input (Concept explanation)
- Slide 5: Teacher Model (Worked example)
- Slide 6-7: Guided Practice (We do it together)
- Slide 8: Activity (Paired or group task)
- Slide 9: Independent Work (Students do it alone)
- Slide 10: Assessment (Quick check)

Constraints:
- Use ONLY the vocabulary listed in Section 3
- Every example must use the concrete materials available from Section 8
- Address the common misconceptions listed in Section 3
- Include a differentiation note: What struggling students do; what advanced students do
- No iPads or apps (unless approved in Section 8)
- Keep slides visual, not text-heavy
- Use British English

For Lesson 5 (Equivalent Fractions):
Focus on equivalent fractions, use only 1/2, 2/4, 3/6

Do not invent learning objectives. Do not suggest resources we don't have. Match the teaching approach in the unit plan (concrete-pictorial-abstract).`

	if got := LessonPrompt(r.Unit, r.Lesson); got != want {
		t.Errorf("LessonPrompt mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestLessonPrompt_Empty(t *testing.T) {
	want := `Act as a Year X teacher delivering the Unit unit to mixed-ability learners
(including specific needs). Using ONLY the source materials provided,
create a 45-minute lesson following this structure:

Constraints:
- Use ONLY the vocabulary listed in Section 3
- Every example must use the concrete materials available from Section 8
- Address the common misconceptions listed in Section 3
- Include a differentiation note: What struggling students do; what advanced students do
- No iPads or apps (unless approved in Section 8)
- Keep slides visual, not text-heavy
- Use British English

For Lesson X:

Do not invent learning objectives. Do not suggest resources we don't have. Match the teaching approach in the unit plan (concrete-pictorial-abstract).`

	if got := LessonPrompt(models.UnitPlan{}, models.Lesson{}); got != want {
		t.Errorf("LessonPrompt mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestLessonPrompt_TitleOmittedWhenEmpty(t *testing.T) {
	l := models.DefaultLesson()

	got := LessonPrompt(models.UnitPlan{}, l)
	if !strings.Contains(got, "For Lesson 1:\n") {
		t.Errorf("expected bare lesson heading, got:\n%s", got)
	}
	if strings.Contains(got, "()") {
		t.Error("empty lesson title rendered as empty parentheses")
	}

	got = LessonPrompt(models.UnitPlan{}, l.With(models.LessonTitle, "Halves"))
	if !strings.Contains(got, "For Lesson 1 (Halves):\n") {
		t.Errorf("expected titled lesson heading, got:\n%s", got)
	}
}

func TestSlidePrompt_StudentsEmpty(t *testing.T) {
	want := `Format: Presenter Slides
Length: Default

Description:
Create presenter slides for [Year Group] [Subject] lesson: [Title].

STUDENT VIEW (what appears on projector):
- Minimal text: 1-2 key points per slide only
- Large, clear visuals: diagrams, number lines, concrete objects
- Learning objectives displayed at start
- Simple language
- NO text-heavy explanations (students watch you teach, not read slides)

TEACHER VIEW (speaker notes hidden from students):
- Detailed explanations for teacher to say
- Questions to ask students
- Misconceptions to address
- When to use concrete materials
- Differentiation reminders
- Timing guidance

Students see ONLY clean slides. All teaching detail hidden in speaker notes.`

	if got := SlidePrompt(models.UnitPlan{}, models.SlideStyle{}); got != want {
		t.Errorf("SlidePrompt mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestSlidePrompt_TeachersWithContext(t *testing.T) {
	u := models.FractionsExample()
	s := models.DefaultSlideStyle().
		With(models.SlideAudience, "teachers").
		With(models.SlideLength, "Long")

	want := `Format: Detailed Deck
Length: Long

Description:
Create detailed slides for Year 4 Mathematics lesson: Fractions: Visual & Conceptual (DETAILED DECK, not Presenter Slides).

SLIDES (what teachers see):
- Full text explanations on each slide
- Learning objectives, misconceptions, differentiation notes visible
- Assessment criteria included
- Everything self-contained
- Teacher can read and teach immediately without hidden notes

Additional Requirements:
Use British English. Ensure font size is large (20pt+).`

	if got := SlidePrompt(u, s); got != want {
		t.Errorf("SlidePrompt mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestSlidePrompt_AdditionalContextOmittedWhenBlank(t *testing.T) {
	for _, audience := range models.Audiences {
		t.Run(string(audience), func(t *testing.T) {
			s := models.DefaultSlideStyle().
				With(models.SlideAudience, string(audience)).
				With(models.SlideAdditionalContext, "")

			got := SlidePrompt(models.FractionsExample(), s)
			if strings.Contains(got, "Additional Requirements") {
				t.Errorf("blank context should not render a heading:\n%s", got)
			}
			if strings.HasSuffix(got, "\n") {
				t.Error("output should not end with a dangling newline")
			}
		})
	}
}

func TestSlidePrompt_StudentsCarryVisualStyle(t *testing.T) {
	s := models.DefaultSlideStyle()
	got := SlidePrompt(models.FractionsExample(), s)

	if !strings.Contains(got, "- Large, clear visuals: "+s.VisualStyle+"\n") {
		t.Errorf("visual style not rendered verbatim:\n%s", got)
	}
	if !strings.HasSuffix(got, "\n\nAdditional Requirements:\n"+s.AdditionalContext) {
		t.Errorf("additional context not appended:\n%s", got)
	}
}

func TestInfographicPrompt_Empty(t *testing.T) {
	want := `Create a one-page infographic about [TOPIC] for [Year Group] students.

DESIGN:
- Single visual page (not multiple slides)
- Key diagrams showing:
- Real-world examples:
- Key vocabulary in large, clear text
- Icons and visual symbols to show concepts
- British English labels

PURPOSE:
A poster-sized visual reference that students can understand at a glance. Shows what [TOPIC] looks like/means, not detailed explanations yet.

No paragraphs. Visual learning only.`

	if got := InfographicPrompt(models.UnitPlan{}, models.Infographic{}); got != want {
		t.Errorf("InfographicPrompt mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestInfographicPrompt_Example(t *testing.T) {
	r := models.ExampleRecords()

	want := `Create a one-page infographic about Fractions for Year 4 students.

DESIGN:
- Single visual page (not multiple slides)
- Bold, colorful illustrations, icons and visual symbols
- Key diagrams showing: halves, thirds, quarters, eighths
- Real-world examples: pizza slices, sweets, counters
- Number lines from 0 to 1
- Key vocabulary in large, clear text
- Icons and visual symbols to show concepts
- Flow from simple (halves) to more complex (eighths)
- British English labels

PURPOSE:
A poster-sized visual reference that students can understand at a glance. Shows what Fractions looks like/means, not detailed explanations yet.

No paragraphs. Visual learning only.`

	if got := InfographicPrompt(r.Unit, r.Infographic); got != want {
		t.Errorf("InfographicPrompt mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestInfographicPrompt_TopicFallbackChain(t *testing.T) {
	tests := []struct {
		name  string
		unit  string
		topic string
		want  string
	}{
		{"explicit topic", "Fractions: Visual & Conceptual", "Halves", "about Halves for"},
		{"unit title", "Fractions: Visual & Conceptual", "", "about Fractions: Visual & Conceptual for"},
		{"placeholder", "", "", "about [TOPIC] for"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := models.UnitPlan{UnitTitle: tt.unit}
			i := models.Infographic{Topic: tt.topic}
			if got := InfographicPrompt(u, i); !strings.Contains(got, tt.want) {
				t.Errorf("expected %q in:\n%s", tt.want, got)
			}
		})
	}
}

func TestUnitPlan_Empty(t *testing.T) {
	want := `# NotebookLM Unit Plan: Untitled Unit
**Subject:**
**Year Group:**
**Unit Duration:**
**Curriculum Link:**

---

## 1. CRYSTAL-CLEAR LEARNING OBJECTIVES

---

## 2. THE PROGRESSION (Explicit Lesson Order)

### What Students Already Know (Foundation)

### The Lesson Sequence

### Future Learning (What's Next)

---

## 3. CORE CONCEPTS & NON-NEGOTIABLES

### Essential Vocabulary

### Common Misconceptions

---

## 4. ASSESSMENT STRATEGY

### Formative Assessment

### Summative Assessment

---

## 5. DIFFERENTIATION PATHWAYS

### For Students Struggling

### For Students at Expected Level

### For Gifted/Extension Students

---

## 6. HOW YOU'LL HELP STUDENTS WHO ARE STRUGGLING

---

## 7. HOW YOU'LL CHALLENGE ADVANCED STUDENTS

---

## 8. RESOURCES & EQUIPMENT

### Physical Manipulatives

### Digital Resources

### NOT Available (Don't Use)

---

## 9. UNIT CONNECTIONS

---

## 10. THE GOLDEN PROMPT (Copy-Paste into NotebookLM)

When you upload this unit plan to NotebookLM and want to generate a lesson, use this prompt:

` + fence + `
Act as a [Year Group] teacher delivering the [Unit Title] unit to mixed-ability learners.

Using ONLY the source materials provided, create a 45-minute lesson following this structure:
- Slide 1: Title & Learning Objectives
- Slide 2: Recap previous lesson
- Slide 3-4: Teacher Input (Concept explanation)
- Slide 5: Teacher Model (Worked example)
- Slide 6-7: Guided Practice
- Slide 8: Activity
- Slide 9: Independent Work
- Slide 10: Assessment

Constraints:
- Use ONLY vocabulary from Section 3.
- Use ONLY resources from Section 8.
- Address common misconceptions from Section 3.
` + fence + "\n"

	if got := UnitPlan(models.UnitPlan{}); got != want {
		t.Errorf("UnitPlan mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestUnitPlan_Example(t *testing.T) {
	u := models.FractionsExample()
	got := UnitPlan(u)

	if !strings.HasPrefix(got, "# NotebookLM Unit Plan: Fractions: Visual & Conceptual\n## Year 4 Mathematics\n") {
		t.Errorf("unexpected title block:\n%s", got[:120])
	}
	if !strings.Contains(got, "### Common Misconceptions\n"+models.FractionsMisconceptions+"\n") {
		t.Error("misconceptions table not rendered verbatim")
	}
	if !strings.Contains(got, "**Unit Duration:** 2 weeks (8 lessons)\n") {
		t.Error("duration header missing")
	}
	if !strings.Contains(got, "Act as a Year 4 teacher delivering the Fractions: Visual & Conceptual unit") {
		t.Error("golden prompt did not interpolate year group and title")
	}
	if !strings.HasSuffix(got, "- Address common misconceptions from Section 3.\n- "+u.GoldenPromptConstraints+"\n"+fence+"\n") {
		t.Errorf("golden prompt constraints not appended:\n%s", got)
	}
}

func TestUnitPlan_FieldsVerbatim(t *testing.T) {
	var u models.UnitPlan
	for _, f := range models.UnitPlanFields {
		u = u.With(f, "  <"+string(f)+">\n\t| keep *this* |  ")
	}

	got := UnitPlan(u)
	for _, f := range models.UnitPlanFields {
		if !strings.Contains(got, u.Get(f)) {
			t.Errorf("field %s not reproduced verbatim", f)
		}
	}
}

func TestRenderers_FullyPopulatedVerbatim(t *testing.T) {
	r := models.ExampleRecords()

	lesson := LessonPrompt(r.Unit, r.Lesson)
	for _, f := range models.LessonFields {
		if !strings.Contains(lesson, r.Lesson.Get(f)) {
			t.Errorf("lesson field %s missing from output", f)
		}
	}

	slides := SlidePrompt(r.Unit, r.Slides)
	for _, v := range []string{r.Slides.VisualStyle, r.Slides.AdditionalContext, string(r.Slides.Length)} {
		if !strings.Contains(slides, v) {
			t.Errorf("slide value %q missing from output", v)
		}
	}

	info := InfographicPrompt(r.Unit, r.Infographic)
	for _, f := range models.InfographicFields {
		if !strings.Contains(info, r.Infographic.Get(f)) {
			t.Errorf("infographic field %s missing from output", f)
		}
	}
}

func TestRenderers_Idempotent(t *testing.T) {
	for _, records := range []models.Records{models.DefaultRecords(), models.ExampleRecords(), {}} {
		for _, tab := range constants.Tabs {
			first := For(tab, records)
			second := For(tab, records)
			if first != second {
				t.Errorf("%s render not deterministic", tab)
			}
		}
	}
}

func TestRenderers_EmptyHaveNoGaps(t *testing.T) {
	for _, tab := range constants.Tabs {
		t.Run(tab.String(), func(t *testing.T) {
			got := For(tab, models.Records{})
			if strings.Contains(got, "\n\n\n") {
				t.Errorf("stray blank lines in empty render:\n%s", got)
			}
			if strings.Contains(got, "  ") {
				t.Errorf("blank interpolation gap in empty render:\n%s", got)
			}
			for _, line := range strings.Split(got, "\n") {
				if strings.HasSuffix(line, " ") {
					t.Errorf("trailing space on line %q", line)
				}
			}
		})
	}
}

func TestFor(t *testing.T) {
	r := models.ExampleRecords()

	tests := []struct {
		tab  constants.Tab
		want string
	}{
		{constants.TabUnit, UnitPlan(r.Unit)},
		{constants.TabLesson, LessonPrompt(r.Unit, r.Lesson)},
		{constants.TabSlides, SlidePrompt(r.Unit, r.Slides)},
		{constants.TabInfographic, InfographicPrompt(r.Unit, r.Infographic)},
	}
	for _, tt := range tests {
		if got := For(tt.tab, r); got != tt.want {
			t.Errorf("For(%s) did not dispatch to the matching renderer", tt.tab)
		}
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		tab    constants.Tab
		lesson string
		want   string
	}{
		{constants.TabUnit, "3", "gospel_truth.md"},
		{constants.TabLesson, "5", "lesson_5_prompt.txt"},
		{constants.TabLesson, "", "lesson_X_prompt.txt"},
		{constants.TabSlides, "5", "slide_config.txt"},
		{constants.TabInfographic, "", "infographic_prompt.txt"},
	}
	for _, tt := range tests {
		if got := Filename(tt.tab, tt.lesson); got != tt.want {
			t.Errorf("Filename(%s, %q) = %q, want %q", tt.tab, tt.lesson, got, tt.want)
		}
	}
}
