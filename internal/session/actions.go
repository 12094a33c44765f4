package session

import (
	"fmt"

	"github.com/julianstephens/lessonprompt/internal/logger"
)

// Action is a destructive change to every record that needs confirming first
type Action int

const (
	ActionLoadExample Action = iota
	ActionReset
)

func (a Action) String() string {
	switch a {
	case ActionLoadExample:
		return "load-example"
	case ActionReset:
		return "reset"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Prompt returns the question shown before the action runs
func (a Action) Prompt() string {
	switch a {
	case ActionLoadExample:
		return "This will overwrite your current inputs. Load example?"
	case ActionReset:
		return "Clear all fields?"
	}
	return ""
}

// Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmFunc adapts a plain function to Confirmer
type ConfirmFunc func(prompt string) (bool, error)

func (f ConfirmFunc) Confirm(prompt string) (bool, error) {
	return f(prompt)
}

// ConfirmAndApply asks c to confirm a and applies it only on a yes. A refusal
// or a confirmer error leaves the session untouched.
func (s *Session) ConfirmAndApply(c Confirmer, a Action) (bool, error) {
	ok, err := c.Confirm(a.Prompt())
	if err != nil {
		return false, fmt.Errorf("failed to confirm %s: %w", a, err)
	}
	if !ok {
		logger.Debug("Session action declined", "session", s.ID, "action", a.String())
		return false, nil
	}
	s.Apply(a)
	return true, nil
}
