package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lessonprompt/internal/cli"
	"github.com/julianstephens/lessonprompt/internal/logger"
	"github.com/julianstephens/lessonprompt/internal/tui"
	"github.com/julianstephens/lessonprompt/internal/tui/handlers"
)

type TuiCmd struct {
	Example bool `help:"Start with the fractions example loaded."`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	sess, err := cli.NewSession(c.Example, nil)
	if err != nil {
		return err
	}
	logger.Info("Starting TUI", "session", sess.ID, "clipboard", ctx.Config.Clipboard, "theme", ctx.Config.Theme)

	model := tui.NewModel(sess, ctx.Clipboard, handlers.ThemeFor(ctx.Config.Theme))
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if ctx.Terminal != nil {
		opts = append(opts, tea.WithOutput(ctx.Terminal))
	}
	p := tea.NewProgram(model, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	logger.Info("TUI closed", "session", sess.ID)
	return nil
}
