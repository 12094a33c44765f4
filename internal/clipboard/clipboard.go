// Package clipboard copies rendered documents out of the terminal, either to
// the system clipboard or through the terminal itself using OSC 52.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/julianstephens/lessonprompt/internal/constants"
	"github.com/julianstephens/lessonprompt/internal/logger"
)

// ErrUnsupported is returned when no clipboard utility is available
var ErrUnsupported = errors.New("clipboard unsupported on this system")

// Writer places text on a clipboard
type Writer interface {
	Write(text string) error
}

// WriterFunc adapts a plain function to Writer
type WriterFunc func(text string) error

func (f WriterFunc) Write(text string) error {
	return f(text)
}

// System writes to the OS clipboard (pbcopy, xclip, wl-copy, ...)
type System struct{}

func (System) Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Terminal asks the terminal emulator to set the clipboard with an OSC 52 sequence
type Terminal struct {
	Out io.Writer
	// Tmux wraps the sequence in a tmux passthrough
	Tmux bool
}

func (t Terminal) Write(text string) error {
	seq := osc52.New(text)
	if t.Tmux {
		seq = seq.Tmux()
	}
	// One Write per sequence, so a SharedTerminal keeps it whole
	if _, err := t.Out.Write([]byte(seq.String())); err != nil {
		return fmt.Errorf("failed to write OSC 52 sequence: %w", err)
	}
	return nil
}

// Fallback tries each writer in turn and stops at the first success
type Fallback []Writer

func (f Fallback) Write(text string) error {
	var errs []error
	for _, w := range f {
		err := w.Write(text)
		if err == nil {
			return nil
		}
		logger.Debug("Clipboard writer failed, trying next", "writer", fmt.Sprintf("%T", w), "error", err)
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return ErrUnsupported
	}
	return errors.Join(errs...)
}

// New builds the writer for a configured clipboard mode. OSC 52 output goes to out.
func New(mode string, out io.Writer) (Writer, error) {
	terminal := Terminal{Out: out, Tmux: os.Getenv("TMUX") != ""}

	switch mode {
	case constants.ClipboardSystem:
		return System{}, nil
	case constants.ClipboardOSC52:
		return terminal, nil
	case constants.ClipboardAuto, "":
		return Fallback{System{}, terminal}, nil
	}
	return nil, fmt.Errorf("unknown clipboard mode %q (want %s, %s or %s)",
		mode, constants.ClipboardAuto, constants.ClipboardSystem, constants.ClipboardOSC52)
}
