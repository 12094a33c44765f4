package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/lessonprompt/internal/cli"
	"github.com/julianstephens/lessonprompt/internal/cli/output"
	"github.com/julianstephens/lessonprompt/internal/cli/settings"
	"github.com/julianstephens/lessonprompt/internal/cli/system"
	"github.com/julianstephens/lessonprompt/internal/clipboard"
	"github.com/julianstephens/lessonprompt/internal/config"
	"github.com/julianstephens/lessonprompt/internal/constants"
	"github.com/julianstephens/lessonprompt/internal/errors"
	"github.com/julianstephens/lessonprompt/internal/logger"
)

var CLI struct {
	Version   kong.VersionFlag
	ConfigDir string  `help:"Directory holding config.yaml and logs." type:"path" default:"~/.config/lessonprompt"`
	Debug     *bool   `help:"Enable debug logging."`
	Clipboard *string `help:"Clipboard backend: auto, system or osc52."`
	Theme     *string `help:"Dialog theme: dracula, charm, base16 or catppuccin."`

	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive prompt builder." default:"1"`
	Render output.RenderCmd `cmd:"" help:"Print a generated document to stdout."`
	Fields output.FieldsCmd `cmd:"" help:"List the fields accepted by render --set."`
	Config struct {
		List settings.ConfigListCmd `cmd:"" help:"Show current settings." default:"1"`
		Set  settings.ConfigSetCmd  `cmd:"" help:"Change a setting."`
	} `cmd:"" help:"Manage application settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Builds NotebookLM unit plans and lesson, slide and infographic prompts"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.ConfigDir)
	if err != nil {
		errors.Fatal(err)
	}
	cfg = cfg.Merge(config.Overrides{
		Debug:     CLI.Debug,
		Clipboard: CLI.Clipboard,
		Theme:     CLI.Theme,
	})
	if err := cfg.Validate(); err != nil {
		errors.Fatal(err)
	}

	logCfg := logger.Config{Debug: cfg.Debug, ConfigDir: cfg.Dir}
	var terminal *clipboard.SharedTerminal
	clipOut := io.Writer(os.Stderr)
	if ctx.Command() == "tui" {
		logCfg.Mirror = io.Discard
		terminal = clipboard.Share(os.Stdout)
		clipOut = terminal
	}
	if err := logger.Init(logCfg); err != nil {
		errors.Fatalf("failed to initialize logger: %w", err)
	}
	logger.Debug("Starting", "command", ctx.Command(), "version", constants.Version)

	clip, err := clipboard.New(cfg.Clipboard, clipOut)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Config:    cfg,
		Clipboard: clip,
		Terminal:  terminal,
	}

	errors.Fatal(ctx.Run(appCtx))
}
