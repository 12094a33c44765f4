package models

import "fmt"

// Audience decides which slide format is requested
type Audience string

const (
	AudienceStudents Audience = "students"
	AudienceTeachers Audience = "teachers"
)

var Audiences = []Audience{AudienceStudents, AudienceTeachers}

// DeckLength is passed through verbatim to the slide prompt
type DeckLength string

const (
	LengthShort   DeckLength = "Short"
	LengthDefault DeckLength = "Default"
	LengthLong    DeckLength = "Long"
)

var DeckLengths = []DeckLength{LengthShort, LengthDefault, LengthLong}

type SlideField string

const (
	SlideAudience          SlideField = "audience"
	SlideLength            SlideField = "length"
	SlideVisualStyle       SlideField = "visual_style"
	SlideAdditionalContext SlideField = "additional_context"
)

var SlideFields = []SlideField{
	SlideAudience,
	SlideLength,
	SlideVisualStyle,
	SlideAdditionalContext,
}

// SlideStyle configures the slide-deck prompt
type SlideStyle struct {
	Audience          Audience   `json:"audience"`
	Length            DeckLength `json:"length"`
	VisualStyle       string     `json:"visual_style"`
	AdditionalContext string     `json:"additional_context"`
}

func ParseSlideField(name string) (SlideField, error) {
	for _, f := range SlideFields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: slides.%s", ErrUnknownField, name)
}

// ParseAudience validates an audience value
func ParseAudience(s string) (Audience, error) {
	for _, a := range Audiences {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: audience %q (want students or teachers)", ErrInvalidValue, s)
}

// ParseDeckLength validates a deck length value
func ParseDeckLength(s string) (DeckLength, error) {
	for _, l := range DeckLengths {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: length %q (want Short, Default or Long)", ErrInvalidValue, s)
}

// Get returns the value of f as a string. It panics if f is not a SlideStyle field.
func (s SlideStyle) Get(f SlideField) string {
	switch f {
	case SlideAudience:
		return string(s.Audience)
	case SlideLength:
		return string(s.Length)
	case SlideVisualStyle:
		return s.VisualStyle
	case SlideAdditionalContext:
		return s.AdditionalContext
	}
	panic(fmt.Sprintf("models: unknown slide field %q", string(f)))
}

// With returns a copy of s with f set to value. Enumerated fields only accept
// their declared values; anything else, like an unknown field, panics.
func (s SlideStyle) With(f SlideField, value string) SlideStyle {
	switch f {
	case SlideAudience:
		a, err := ParseAudience(value)
		if err != nil {
			panic(fmt.Sprintf("models: %v", err))
		}
		s.Audience = a
	case SlideLength:
		l, err := ParseDeckLength(value)
		if err != nil {
			panic(fmt.Sprintf("models: %v", err))
		}
		s.Length = l
	case SlideVisualStyle:
		s.VisualStyle = value
	case SlideAdditionalContext:
		s.AdditionalContext = value
	default:
		panic(fmt.Sprintf("models: unknown slide field %q", string(f)))
	}
	return s
}

// Options returns the allowed values of an enumerated field, or nil for free text.
func (f SlideField) Options() []string {
	switch f {
	case SlideAudience:
		out := make([]string, len(Audiences))
		for i, a := range Audiences {
			out[i] = string(a)
		}
		return out
	case SlideLength:
		out := make([]string, len(DeckLengths))
		for i, l := range DeckLengths {
			out[i] = string(l)
		}
		return out
	}
	return nil
}
