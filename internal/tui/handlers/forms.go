package handlers

import (
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lessonprompt/internal/config"
	"github.com/julianstephens/lessonprompt/internal/tui/state"
)

// NewConfirmationForm creates a yes/no form for a pending action
func NewConfirmationForm(fm *state.ConfirmationFormModel, theme *huh.Theme) *huh.Form {
	if theme == nil {
		theme = huh.ThemeDracula()
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fm.Message).
				Affirmative("Yes").
				Negative("No").
				Value(&fm.Confirmed),
		),
	).WithTheme(theme).WithShowHelp(false)
}

// ThemeFor maps a configured theme name to a huh theme
func ThemeFor(name string) *huh.Theme {
	switch name {
	case config.ThemeCharm:
		return huh.ThemeCharm()
	case config.ThemeBase16:
		return huh.ThemeBase16()
	case config.ThemeCatppuccin:
		return huh.ThemeCatppuccin()
	default:
		return huh.ThemeDracula()
	}
}
