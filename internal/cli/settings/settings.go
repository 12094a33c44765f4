package settings

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/lessonprompt/internal/cli"
	"github.com/julianstephens/lessonprompt/internal/config"
	"github.com/julianstephens/lessonprompt/internal/logger"
)

type ConfigListCmd struct{}

func (c *ConfigListCmd) Run(ctx *cli.Context) error {
	out := ctx.Out()
	fmt.Fprintf(out, "Config file: %s\n", config.Path(ctx.Config.Dir))
	fmt.Fprintln(out, "\nCurrent Settings:")
	fmt.Fprintf(out, "  Debug:      %v\n", ctx.Config.Debug)
	fmt.Fprintf(out, "  Clipboard:  %s\n", ctx.Config.Clipboard)
	fmt.Fprintf(out, "  Theme:      %s\n", ctx.Config.Theme)
	return nil
}

type ConfigSetCmd struct {
	Key   string `arg:"" enum:"debug,clipboard,theme" help:"Setting to change: debug, clipboard or theme."`
	Value string `arg:"" help:"New value."`
}

func (c *ConfigSetCmd) Run(ctx *cli.Context) error {
	// Start from the file so command-line overrides are not persisted
	cfg, err := config.Load(ctx.Config.Dir)
	if err != nil {
		return err
	}

	switch c.Key {
	case "debug":
		v, err := strconv.ParseBool(c.Value)
		if err != nil {
			return fmt.Errorf("invalid debug value %q: want true or false", c.Value)
		}
		cfg.Debug = v
	case "clipboard":
		cfg.Clipboard = c.Value
	case "theme":
		cfg.Theme = c.Value
	default:
		return fmt.Errorf("unknown setting %q", c.Key)
	}

	if err := config.Save(ctx.Config.Dir, cfg); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	logger.Info("Settings updated", "key", c.Key, "value", c.Value)
	fmt.Fprintln(ctx.Out(), "Settings updated successfully.")
	return nil
}
