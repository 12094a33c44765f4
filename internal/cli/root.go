package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julianstephens/lessonprompt/internal/clipboard"
	"github.com/julianstephens/lessonprompt/internal/config"
	"github.com/julianstephens/lessonprompt/internal/logger"
	"github.com/julianstephens/lessonprompt/internal/models"
	"github.com/julianstephens/lessonprompt/internal/session"
)

type Context struct {
	Config    config.Config
	Clipboard clipboard.Writer
	// Terminal is set for the TUI. It is both the program output and the
	// OSC 52 target, so clipboard sequences are written between frames.
	Terminal *clipboard.SharedTerminal
	Stdout   io.Writer
	Stderr   io.Writer
}

func (c *Context) Out() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

func (c *Context) Err() io.Writer {
	if c.Stderr == nil {
		return os.Stderr
	}
	return c.Stderr
}

// NewSession builds a session, optionally seeded with the fractions example,
// and applies each "record.field=value" assignment in order
func NewSession(example bool, assignments []string) (*session.Session, error) {
	sess := session.New()
	if example {
		sess.Apply(session.ActionLoadExample)
	}
	for _, a := range assignments {
		key, value, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("invalid assignment %q: want record.field=value", a)
		}
		if err := sess.Set(strings.TrimSpace(key), value); err != nil {
			return nil, fmt.Errorf("invalid assignment %q: %w", a, err)
		}
	}
	logger.Debug("Session prepared", "session", sess.ID, "example", example, "assignments", len(assignments))
	return sess, nil
}

// Copy writes text to the configured clipboard
func (c *Context) Copy(text string) error {
	if c.Clipboard == nil {
		return fmt.Errorf("no clipboard configured")
	}
	if err := c.Clipboard.Write(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// ParseRecordKind validates a record name given on the command line
func ParseRecordKind(s string) (models.RecordKind, error) {
	for _, k := range models.RecordKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown record %q (want unit, lesson, slides or infographic)", s)
}
