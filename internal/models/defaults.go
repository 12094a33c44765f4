package models

// DefaultLessonStructure is the 10-slide lesson outline used until the teacher overrides it
const DefaultLessonStructure = `- Slide 1: Title & Learning Objectives (Read aloud)
- Slide 2: Recap previous lesson
- Slide 3-4: Teacher Input (Concept explanation)
- Slide 5: Teacher Model (Worked example)
- Slide 6-7: Guided Practice (We do it together)
- Slide 8: Activity (Paired or group task)
- Slide 9: Independent Work (Students do it alone)
- Slide 10: Assessment (Quick check)`

// DefaultUnitPlan returns the unit plan a new session starts with
func DefaultUnitPlan() UnitPlan {
	return UnitPlan{
		GoldenPromptConstraints: "Use British English. Keep slides visual. Match the teaching approach (concrete-pictorial-abstract).",
	}
}

func DefaultLesson() Lesson {
	return Lesson{
		LessonNumber:      "1",
		SpecificFocus:     "Focus on introducing the concept using concrete materials.",
		StudentNeeds:      "Include 2 students with dyscalculia.",
		StructureOverride: DefaultLessonStructure,
	}
}

func DefaultSlideStyle() SlideStyle {
	return SlideStyle{
		Audience:          AudienceStudents,
		Length:            LengthDefault,
		VisualStyle:       "Large, clear fraction diagrams, number lines, pictures of concrete objects (sweets, pizza).",
		AdditionalContext: "Use British English. Ensure font size is large (20pt+).",
	}
}

func DefaultInfographic() Infographic {
	return Infographic{
		MainConcepts:     "halves, thirds, quarters, eighths",
		ConcreteExamples: "pizza slices, sweets, counters",
		VisualOrganizer:  "Number lines from 0 to 1",
		FlowDirection:    "simple (halves) to more complex (eighths)",
		StyleKeywords:    "Bold, colorful illustrations, icons and visual symbols",
	}
}

// DefaultRecords returns a fresh default value of every record
func DefaultRecords() Records {
	return Records{
		Unit:        DefaultUnitPlan(),
		Lesson:      DefaultLesson(),
		Slides:      DefaultSlideStyle(),
		Infographic: DefaultInfographic(),
	}
}

// ExampleRecords returns the fully populated fractions unit used by "Load example"
func ExampleRecords() Records {
	lesson := DefaultLesson()
	lesson.LessonNumber = "5"
	lesson.LessonTitle = "Equivalent Fractions"
	lesson.SpecificFocus = "Focus on equivalent fractions, use only 1/2, 2/4, 3/6"

	infographic := DefaultInfographic()
	infographic.Topic = "Fractions"

	return Records{
		Unit:        FractionsExample(),
		Lesson:      lesson,
		Slides:      DefaultSlideStyle(),
		Infographic: infographic,
	}
}

// FractionsExample is a complete Year 4 fractions unit plan
func FractionsExample() UnitPlan {
	return UnitPlan{
		Subject:        "Mathematics",
		YearGroup:      "Year 4",
		UnitTitle:      "Fractions: Visual & Conceptual",
		Duration:       "2 weeks (8 lessons)",
		CurriculumLink: "KS2 Programme of Study - Number: Fractions",

		LearningObjectives: `### Lesson Group 1 (Basics)
- **I can:** Identify the numerator and denominator.
- **I can:** Represent fractions using pizza slices.
- **Success Criteria:** Accurately labeling parts of a whole.

### Lesson Group 2 (Equivalence)
- **I can:** Use fraction walls to find equivalent fractions.
- **Success Criteria:** Explaining why 1/2 is same as 2/4.`,

		PriorKnowledge: "- Students know what a 'whole' and a 'half' is.\n- Must be able to count confidently to 20.",

		LessonSequence: `**Lesson 1: The Pizza Party**
- Intro to numerator/denominator using real pizza boxes.

**Lesson 2: The Chocolate Bar**
- Using segments of chocolate to show non-unit fractions.

**Lesson 3: Fraction Wall Construction**
- Building a wall with Cuisenaire rods.`,

		FutureLearning: "Decimals and percentages in Year 5.",

		Vocabulary: `**Numerator:** The top number.
**Denominator:** The bottom number.
**Equivalent:** Worth the same amount.`,

		Misconceptions: FractionsMisconceptions,

		FormativeAssessment: "- Mini-whiteboard check: Draw 3/4.\n- Exit Ticket: Which is bigger, 1/3 or 1/2?",
		SummativeAssessment: "**End of Unit Quiz**\n- Section A: Shade the shape\n- Section B: Match equivalents",

		DiffStruggling: "- Focus on halves and quarters only.\n- Always use concrete counters.",
		DiffCore:       "- Full unit, exploring up to twelfths.",
		DiffGifted:     "- Explore 'improper fractions' visually.",

		Interventions:       "If confused by notation, just speak the words '1 part out of 4'.",
		ExtensionActivities: "Design a playground where 1/3 of the ground is grass, 1/4 is sand.",

		ResourcesPhysical: "- Pizza boxes\n- Counters\n- Cuisenaire rods",
		ResourcesDigital:  "- Interactive fraction wall",
		ResourcesNoGo:     "- No abstract worksheets without diagrams.",

		UnitConnections:         "Links to Division (sharing sweets).",
		GoldenPromptConstraints: "Use British English. Visual metaphors (pizza, sweets).",
	}
}

// FractionsMisconceptions is the misconceptions table of the fractions example
const FractionsMisconceptions = `| Misconception | What Students Do | Fix |
|---|---|---|
| Adding denominators | Adds 1/4 + 1/4 = 2/8 | Show physical pieces. |
| Bigger denominator = bigger number | Thinks 1/10 > 1/2 | Use the fraction wall. |`

// Subjects are offered as completions for UnitPlan.Subject
var Subjects = []string{
	"Mathematics",
	"English",
	"Science",
	"History",
	"Geography",
	"Art",
	"Music",
	"PE",
	"Computing",
	"Design Technology",
	"RE",
	"PSHE",
}

// YearGroups are offered as completions for UnitPlan.YearGroup
var YearGroups = []string{
	"Reception",
	"Year 1",
	"Year 2",
	"Year 3",
	"Year 4",
	"Year 5",
	"Year 6",
	"Year 7",
	"Year 8",
	"Year 9",
	"Year 10",
	"Year 11",
	"Sixth Form",
}
