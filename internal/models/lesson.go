package models

import "fmt"

type LessonField string

const (
	LessonNumber            LessonField = "lesson_number"
	LessonTitle             LessonField = "lesson_title"
	LessonSpecificFocus     LessonField = "specific_focus"
	LessonStudentNeeds      LessonField = "student_needs"
	LessonStructureOverride LessonField = "structure_override"
)

var LessonFields = []LessonField{
	LessonNumber,
	LessonTitle,
	LessonSpecificFocus,
	LessonStudentNeeds,
	LessonStructureOverride,
}

// Lesson describes a single lesson within the unit. Year group and unit title
// come from the UnitPlan at render time.
type Lesson struct {
	LessonNumber      string `json:"lesson_number"`
	LessonTitle       string `json:"lesson_title"`
	SpecificFocus     string `json:"specific_focus"`
	StudentNeeds      string `json:"student_needs"`
	StructureOverride string `json:"structure_override"`
}

func ParseLessonField(name string) (LessonField, error) {
	for _, f := range LessonFields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: lesson.%s", ErrUnknownField, name)
}

func (l *Lesson) field(f LessonField) *string {
	switch f {
	case LessonNumber:
		return &l.LessonNumber
	case LessonTitle:
		return &l.LessonTitle
	case LessonSpecificFocus:
		return &l.SpecificFocus
	case LessonStudentNeeds:
		return &l.StudentNeeds
	case LessonStructureOverride:
		return &l.StructureOverride
	}
	return nil
}

// Get returns the value of f. It panics if f is not a Lesson field.
func (l Lesson) Get(f LessonField) string {
	p := l.field(f)
	if p == nil {
		panic(fmt.Sprintf("models: unknown lesson field %q", string(f)))
	}
	return *p
}

// With returns a copy of l with f set to value. It panics if f is not a Lesson field.
func (l Lesson) With(f LessonField, value string) Lesson {
	p := l.field(f)
	if p == nil {
		panic(fmt.Sprintf("models: unknown lesson field %q", string(f)))
	}
	*p = value
	return l
}
