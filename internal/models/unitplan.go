package models

import "fmt"

// UnitPlanField names a single field of a UnitPlan
type UnitPlanField string

const (
	UnitSubject                 UnitPlanField = "subject"
	UnitYearGroup               UnitPlanField = "year_group"
	UnitTitle                   UnitPlanField = "unit_title"
	UnitDuration                UnitPlanField = "duration"
	UnitCurriculumLink          UnitPlanField = "curriculum_link"
	UnitLearningObjectives      UnitPlanField = "learning_objectives"
	UnitPriorKnowledge          UnitPlanField = "prior_knowledge"
	UnitLessonSequence          UnitPlanField = "lesson_sequence"
	UnitFutureLearning          UnitPlanField = "future_learning"
	UnitVocabulary              UnitPlanField = "vocabulary"
	UnitMisconceptions          UnitPlanField = "misconceptions"
	UnitFormativeAssessment     UnitPlanField = "formative_assessment"
	UnitSummativeAssessment     UnitPlanField = "summative_assessment"
	UnitDiffStruggling          UnitPlanField = "diff_struggling"
	UnitDiffCore                UnitPlanField = "diff_core"
	UnitDiffGifted              UnitPlanField = "diff_gifted"
	UnitInterventions           UnitPlanField = "interventions"
	UnitExtensionActivities     UnitPlanField = "extension_activities"
	UnitResourcesPhysical       UnitPlanField = "resources_physical"
	UnitResourcesDigital        UnitPlanField = "resources_digital"
	UnitResourcesNoGo           UnitPlanField = "resources_no_go"
	UnitConnections             UnitPlanField = "unit_connections"
	UnitGoldenPromptConstraints UnitPlanField = "golden_prompt_constraints"
)

// UnitPlanFields lists every UnitPlan field in document order
var UnitPlanFields = []UnitPlanField{
	UnitSubject,
	UnitYearGroup,
	UnitTitle,
	UnitDuration,
	UnitCurriculumLink,
	UnitLearningObjectives,
	UnitPriorKnowledge,
	UnitLessonSequence,
	UnitFutureLearning,
	UnitVocabulary,
	UnitMisconceptions,
	UnitFormativeAssessment,
	UnitSummativeAssessment,
	UnitDiffStruggling,
	UnitDiffCore,
	UnitDiffGifted,
	UnitInterventions,
	UnitExtensionActivities,
	UnitResourcesPhysical,
	UnitResourcesDigital,
	UnitResourcesNoGo,
	UnitConnections,
	UnitGoldenPromptConstraints,
}

// UnitPlan is the full unit plan ("gospel truth") the other prompts borrow context from.
// Every field is free text; an empty string means unset.
type UnitPlan struct {
	Subject        string `json:"subject"`
	YearGroup      string `json:"year_group"`
	UnitTitle      string `json:"unit_title"`
	Duration       string `json:"duration"`
	CurriculumLink string `json:"curriculum_link"`

	// Section 1
	LearningObjectives string `json:"learning_objectives"`

	// Section 2
	PriorKnowledge string `json:"prior_knowledge"`
	LessonSequence string `json:"lesson_sequence"`
	FutureLearning string `json:"future_learning"`

	// Section 3
	Vocabulary     string `json:"vocabulary"`
	Misconceptions string `json:"misconceptions"`

	// Section 4
	FormativeAssessment string `json:"formative_assessment"`
	SummativeAssessment string `json:"summative_assessment"`

	// Section 5
	DiffStruggling string `json:"diff_struggling"`
	DiffCore       string `json:"diff_core"`
	DiffGifted     string `json:"diff_gifted"`

	// Sections 6 & 7
	Interventions       string `json:"interventions"`
	ExtensionActivities string `json:"extension_activities"`

	// Section 8
	ResourcesPhysical string `json:"resources_physical"`
	ResourcesDigital  string `json:"resources_digital"`
	ResourcesNoGo     string `json:"resources_no_go"`

	// Section 9
	UnitConnections string `json:"unit_connections"`

	// Section 10
	GoldenPromptConstraints string `json:"golden_prompt_constraints"`
}

// ParseUnitPlanField validates a user supplied field name
func ParseUnitPlanField(name string) (UnitPlanField, error) {
	for _, f := range UnitPlanFields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unit.%s", ErrUnknownField, name)
}

// field returns a pointer to the storage backing f, or nil for an unknown name.
func (u *UnitPlan) field(f UnitPlanField) *string {
	switch f {
	case UnitSubject:
		return &u.Subject
	case UnitYearGroup:
		return &u.YearGroup
	case UnitTitle:
		return &u.UnitTitle
	case UnitDuration:
		return &u.Duration
	case UnitCurriculumLink:
		return &u.CurriculumLink
	case UnitLearningObjectives:
		return &u.LearningObjectives
	case UnitPriorKnowledge:
		return &u.PriorKnowledge
	case UnitLessonSequence:
		return &u.LessonSequence
	case UnitFutureLearning:
		return &u.FutureLearning
	case UnitVocabulary:
		return &u.Vocabulary
	case UnitMisconceptions:
		return &u.Misconceptions
	case UnitFormativeAssessment:
		return &u.FormativeAssessment
	case UnitSummativeAssessment:
		return &u.SummativeAssessment
	case UnitDiffStruggling:
		return &u.DiffStruggling
	case UnitDiffCore:
		return &u.DiffCore
	case UnitDiffGifted:
		return &u.DiffGifted
	case UnitInterventions:
		return &u.Interventions
	case UnitExtensionActivities:
		return &u.ExtensionActivities
	case UnitResourcesPhysical:
		return &u.ResourcesPhysical
	case UnitResourcesDigital:
		return &u.ResourcesDigital
	case UnitResourcesNoGo:
		return &u.ResourcesNoGo
	case UnitConnections:
		return &u.UnitConnections
	case UnitGoldenPromptConstraints:
		return &u.GoldenPromptConstraints
	}
	return nil
}

// Get returns the value of f. It panics if f is not a UnitPlan field.
func (u UnitPlan) Get(f UnitPlanField) string {
	p := u.field(f)
	if p == nil {
		panic(fmt.Sprintf("models: unknown unit plan field %q", string(f)))
	}
	return *p
}

// With returns a copy of u with f set to value. The receiver is left untouched.
// It panics if f is not a UnitPlan field.
func (u UnitPlan) With(f UnitPlanField, value string) UnitPlan {
	p := u.field(f)
	if p == nil {
		panic(fmt.Sprintf("models: unknown unit plan field %q", string(f)))
	}
	*p = value
	return u
}
