package form

import (
	"github.com/julianstephens/lessonprompt/internal/constants"
	"github.com/julianstephens/lessonprompt/internal/models"
)

// Flat marks a group that is always expanded and has no header row
const Flat = -1

// LessonStructureSection is the collapsible section index used on the lesson tab
const LessonStructureSection = 10

// Entry describes one editable field
type Entry struct {
	Label       string
	Placeholder string
	Kind        models.RecordKind
	Field       string
	Multiline   bool
	// Options makes the field an enumeration cycled in place
	Options []string
	// Suggestions are offered as completions while editing
	Suggestions []string
}

// Key returns the "record.field" address used to patch the entry
func (e Entry) Key() string {
	return string(e.Kind) + "." + e.Field
}

// Display returns the label shown for an enumeration value
func (e Entry) Display(value string) string {
	if label, ok := optionLabels[value]; ok {
		return label
	}
	return value
}

// Cycle returns the option delta steps away from current, wrapping around.
// An unknown current value starts from the first option.
func (e Entry) Cycle(current string, delta int) string {
	n := len(e.Options)
	if n == 0 {
		return current
	}
	idx := -1
	for i, o := range e.Options {
		if o == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return e.Options[0]
	}
	return e.Options[((idx+delta)%n+n)%n]
}

var optionLabels = map[string]string{
	string(models.AudienceStudents): "Classroom (Students)",
	string(models.AudienceTeachers): "Teachers (Supply)",
}

// Group is a run of fields, optionally behind a collapsible header
type Group struct {
	Title   string
	Section int
	Entries []Entry
}

func unit(label string, f models.UnitPlanField, placeholder string) Entry {
	return Entry{Label: label, Kind: models.RecordUnit, Field: string(f), Placeholder: placeholder, Multiline: true}
}

func unitLine(label string, f models.UnitPlanField, placeholder string) Entry {
	e := unit(label, f, placeholder)
	e.Multiline = false
	return e
}

// Layout returns the form groups shown on tab
func Layout(tab constants.Tab, r models.Records) []Group {
	switch tab {
	case constants.TabLesson:
		return lessonLayout()
	case constants.TabSlides:
		return slidesLayout(r.Slides)
	case constants.TabInfographic:
		return infographicLayout(r.Unit)
	default:
		return unitLayout()
	}
}

func unitLayout() []Group {
	subject := unitLine("Subject", models.UnitSubject, "")
	subject.Suggestions = models.Subjects
	year := unitLine("Year Group", models.UnitYearGroup, "")
	year.Suggestions = models.YearGroups

	return []Group{
		{Section: Flat, Entries: []Entry{
			subject,
			year,
			unitLine("Unit Title", models.UnitTitle, "e.g. Fractions, Shakespearean Drama"),
			unitLine("Duration", models.UnitDuration, "e.g. 2 weeks, 8 lessons"),
			unitLine("Curriculum Link", models.UnitCurriculumLink, "KS2 Programme of Study..."),
		}},
		{Title: "1. Learning Objectives", Section: 0, Entries: []Entry{
			unit("Objectives & Success Criteria", models.UnitLearningObjectives, "- I can: ...\n- Success Criteria: ..."),
		}},
		{Title: "2. Progression", Section: 1, Entries: []Entry{
			unit("What Students Already Know", models.UnitPriorKnowledge, ""),
			unit("The Lesson Sequence", models.UnitLessonSequence, "Lesson 1: Title..."),
			unit("Future Learning", models.UnitFutureLearning, ""),
		}},
		{Title: "3. Core Concepts", Section: 2, Entries: []Entry{
			unit("Essential Vocabulary", models.UnitVocabulary, "**Term:** Definition..."),
			unit("Misconceptions", models.UnitMisconceptions, "| Misconception | What they do | Fix |"),
		}},
		{Title: "4. Assessment", Section: 3, Entries: []Entry{
			unit("Formative Assessment (During Lesson)", models.UnitFormativeAssessment, "Observation, Question stems, Exit tickets..."),
			unit("Summative Assessment (End of Unit)", models.UnitSummativeAssessment, "End of unit quiz structure..."),
		}},
		{Title: "5. Differentiation", Section: 4, Entries: []Entry{
			unit("Struggling (SEN/EAL)", models.UnitDiffStruggling, "Simplified objectives, concrete materials..."),
			unit("Core (Expected)", models.UnitDiffCore, ""),
			unit("Gifted / Extension", models.UnitDiffGifted, ""),
		}},
		{Title: "6 & 7. Support & Challenge", Section: 5, Entries: []Entry{
			unit("Interventions", models.UnitInterventions, ""),
			unit("Extension Activities", models.UnitExtensionActivities, ""),
		}},
		{Title: "8. Resources", Section: 6, Entries: []Entry{
			unit("Physical Manipulatives (Available)", models.UnitResourcesPhysical, ""),
			unit("Digital Resources", models.UnitResourcesDigital, ""),
			unit("NOT Available (Do not use)", models.UnitResourcesNoGo, ""),
		}},
		{Title: "9. Connections & 10. Prompt", Section: 7, Entries: []Entry{
			unit("Unit Connections", models.UnitConnections, ""),
			unit("Golden Prompt Constraints", models.UnitGoldenPromptConstraints, "e.g. Use British English"),
		}},
	}
}

func lessonLayout() []Group {
	lesson := func(label string, f models.LessonField, placeholder string, multiline bool) Entry {
		return Entry{Label: label, Kind: models.RecordLesson, Field: string(f), Placeholder: placeholder, Multiline: multiline}
	}
	return []Group{
		{Section: Flat, Entries: []Entry{
			lesson("Lesson Number", models.LessonNumber, "e.g. 5", false),
			lesson("Lesson Title", models.LessonTitle, "e.g. Equivalent Fractions", false),
			lesson("Student Needs (Class Context)", models.LessonStudentNeeds, "e.g. including 2 students with dyscalculia", true),
			lesson("Specific Focus / Instructions", models.LessonSpecificFocus, "e.g. Focus on equivalent fractions, use only 1/2, 2/4, 3/6...", true),
		}},
		{Title: "Lesson Structure Override", Section: LessonStructureSection, Entries: []Entry{
			lesson("Lesson Slides Structure", models.LessonStructureOverride, "", true),
		}},
	}
}

func slidesLayout(s models.SlideStyle) []Group {
	entries := []Entry{
		{Label: "Target Audience", Kind: models.RecordSlides, Field: string(models.SlideAudience), Options: models.SlideAudience.Options()},
		{Label: "Deck Length", Kind: models.RecordSlides, Field: string(models.SlideLength), Options: models.SlideLength.Options()},
	}
	// Teachers get a self-contained deck, so there is no projector style to choose
	if s.Audience != models.AudienceTeachers {
		entries = append(entries, Entry{
			Label: "Visual Style Preferences", Kind: models.RecordSlides, Field: string(models.SlideVisualStyle),
			Placeholder: "e.g. Large diagrams, bold colors, cartoons...", Multiline: true,
		})
	}
	entries = append(entries, Entry{
		Label: "Additional Requirements", Kind: models.RecordSlides, Field: string(models.SlideAdditionalContext),
		Placeholder: "e.g. Use British English. Include 'Think Pair Share' icons.", Multiline: true,
	})
	return []Group{{Section: Flat, Entries: entries}}
}

func infographicLayout(u models.UnitPlan) []Group {
	info := func(label string, f models.InfographicField, placeholder string) Entry {
		return Entry{Label: label, Kind: models.RecordInfographic, Field: string(f), Placeholder: placeholder, Multiline: true}
	}
	topic := info("Topic", models.InfographicTopic, "e.g. The Water Cycle")
	topic.Multiline = false
	if u.UnitTitle != "" {
		topic.Placeholder = u.UnitTitle
	}
	return []Group{{Section: Flat, Entries: []Entry{
		topic,
		info("Main Concepts (3-4 items)", models.InfographicMainConcepts, "e.g. evaporation, condensation, precipitation"),
		info("Concrete Examples (Real-world)", models.InfographicConcreteExamples, "e.g. puddles drying, clouds, rain, river"),
		info("Visual Organizer Type", models.InfographicVisualOrganizer, "e.g. Circular cycle diagram / Timeline / Number line"),
		info("Flow Direction", models.InfographicFlowDirection, "e.g. simple to complex / start to finish"),
		info("Style Keywords", models.InfographicStyleKeywords, "e.g. Bold, colorful illustrations, icons..."),
	}}}
}
