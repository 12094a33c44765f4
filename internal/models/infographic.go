package models

import "fmt"

type InfographicField string

const (
	InfographicTopic            InfographicField = "topic"
	InfographicMainConcepts     InfographicField = "main_concepts"
	InfographicConcreteExamples InfographicField = "concrete_examples"
	InfographicVisualOrganizer  InfographicField = "visual_organizer"
	InfographicFlowDirection    InfographicField = "flow_direction"
	InfographicStyleKeywords    InfographicField = "style_keywords"
)

var InfographicFields = []InfographicField{
	InfographicTopic,
	InfographicMainConcepts,
	InfographicConcreteExamples,
	InfographicVisualOrganizer,
	InfographicFlowDirection,
	InfographicStyleKeywords,
}

// Infographic describes a one-page visual summary. An empty Topic falls back
// to the unit title when rendered.
type Infographic struct {
	Topic            string `json:"topic"`
	MainConcepts     string `json:"main_concepts"`
	ConcreteExamples string `json:"concrete_examples"`
	VisualOrganizer  string `json:"visual_organizer"`
	FlowDirection    string `json:"flow_direction"`
	StyleKeywords    string `json:"style_keywords"`
}

func ParseInfographicField(name string) (InfographicField, error) {
	for _, f := range InfographicFields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: infographic.%s", ErrUnknownField, name)
}

func (i *Infographic) field(f InfographicField) *string {
	switch f {
	case InfographicTopic:
		return &i.Topic
	case InfographicMainConcepts:
		return &i.MainConcepts
	case InfographicConcreteExamples:
		return &i.ConcreteExamples
	case InfographicVisualOrganizer:
		return &i.VisualOrganizer
	case InfographicFlowDirection:
		return &i.FlowDirection
	case InfographicStyleKeywords:
		return &i.StyleKeywords
	}
	return nil
}

func (i Infographic) Get(f InfographicField) string {
	p := i.field(f)
	if p == nil {
		panic(fmt.Sprintf("models: unknown infographic field %q", string(f)))
	}
	return *p
}

// With returns a copy of i with f set to value. It panics if f is not an Infographic field.
func (i Infographic) With(f InfographicField, value string) Infographic {
	p := i.field(f)
	if p == nil {
		panic(fmt.Sprintf("models: unknown infographic field %q", string(f)))
	}
	*p = value
	return i
}
