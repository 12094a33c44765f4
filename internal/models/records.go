package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownField is returned when a field name is not part of a record's schema
	ErrUnknownField = errors.New("unknown field")
	// ErrInvalidValue is returned when an enumerated field is given an undeclared value
	ErrInvalidValue = errors.New("invalid value")
)

// RecordKind identifies one of the four record types
type RecordKind string

const (
	RecordUnit        RecordKind = "unit"
	RecordLesson      RecordKind = "lesson"
	RecordSlides      RecordKind = "slides"
	RecordInfographic RecordKind = "infographic"
)

var RecordKinds = []RecordKind{RecordUnit, RecordLesson, RecordSlides, RecordInfographic}

// Records bundles one value of every record type
type Records struct {
	Unit        UnitPlan
	Lesson      Lesson
	Slides      SlideStyle
	Infographic Infographic
}

// FieldNames returns the field names of kind in schema order
func FieldNames(kind RecordKind) []string {
	var out []string
	switch kind {
	case RecordUnit:
		for _, f := range UnitPlanFields {
			out = append(out, string(f))
		}
	case RecordLesson:
		for _, f := range LessonFields {
			out = append(out, string(f))
		}
	case RecordSlides:
		for _, f := range SlideFields {
			out = append(out, string(f))
		}
	case RecordInfographic:
		for _, f := range InfographicFields {
			out = append(out, string(f))
		}
	}
	return out
}

// Get reads a field by record kind and name
func (r Records) Get(kind RecordKind, name string) (string, error) {
	switch kind {
	case RecordUnit:
		f, err := ParseUnitPlanField(name)
		if err != nil {
			return "", err
		}
		return r.Unit.Get(f), nil
	case RecordLesson:
		f, err := ParseLessonField(name)
		if err != nil {
			return "", err
		}
		return r.Lesson.Get(f), nil
	case RecordSlides:
		f, err := ParseSlideField(name)
		if err != nil {
			return "", err
		}
		return r.Slides.Get(f), nil
	case RecordInfographic:
		f, err := ParseInfographicField(name)
		if err != nil {
			return "", err
		}
		return r.Infographic.Get(f), nil
	}
	return "", fmt.Errorf("%w: record %q", ErrUnknownField, kind)
}

// Set applies a "record.field" assignment coming from user input. Unlike the
// typed With methods it reports bad names and values as errors.
func (r Records) Set(key, value string) (Records, error) {
	kind, name, ok := strings.Cut(key, ".")
	if !ok {
		return r, fmt.Errorf("%w: %q (want record.field)", ErrUnknownField, key)
	}
	switch RecordKind(kind) {
	case RecordUnit:
		f, err := ParseUnitPlanField(name)
		if err != nil {
			return r, err
		}
		r.Unit = r.Unit.With(f, value)
	case RecordLesson:
		f, err := ParseLessonField(name)
		if err != nil {
			return r, err
		}
		r.Lesson = r.Lesson.With(f, value)
	case RecordSlides:
		f, err := ParseSlideField(name)
		if err != nil {
			return r, err
		}
		switch f {
		case SlideAudience:
			if _, err := ParseAudience(value); err != nil {
				return r, err
			}
		case SlideLength:
			if _, err := ParseDeckLength(value); err != nil {
				return r, err
			}
		}
		r.Slides = r.Slides.With(f, value)
	case RecordInfographic:
		f, err := ParseInfographicField(name)
		if err != nil {
			return r, err
		}
		r.Infographic = r.Infographic.With(f, value)
	default:
		return r, fmt.Errorf("%w: record %q", ErrUnknownField, kind)
	}
	return r, nil
}
