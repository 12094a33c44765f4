package handlers

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lessonprompt/internal/constants"
	"github.com/julianstephens/lessonprompt/internal/models"
	"github.com/julianstephens/lessonprompt/internal/session"
	"github.com/julianstephens/lessonprompt/internal/tui/state"
)

func newState() state.Model {
	return state.New(session.New(), nil, huh.ThemeBase())
}

func openConfirmation(t *testing.T, m *state.Model, a session.Action) {
	t.Helper()
	msg := RequestAction(m, a)()
	handled, _ := HandleConfirmationMessages(m, msg)
	if !handled {
		t.Fatalf("%T not handled as a confirmation", msg)
	}
}

func TestResolveConfirmation(t *testing.T) {
	tests := []struct {
		name      string
		action    session.Action
		confirmed bool
		want      func() models.Records
	}{
		{"example accepted", session.ActionLoadExample, true, models.ExampleRecords},
		{"example declined", session.ActionLoadExample, false, edited},
		{"reset accepted", session.ActionReset, true, models.DefaultRecords},
		{"reset declined", session.ActionReset, false, edited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newState()
			m.Session.SetUnitPlan(edited().Unit)

			openConfirmation(t, &m, tt.action)
			if m.State != constants.StateConfirmation || m.PendingAction == nil {
				t.Fatal("confirmation not pending")
			}

			ResolveConfirmation(&m, tt.confirmed)

			if m.Session.Records() != tt.want() {
				t.Error("records do not match the answer")
			}
			if m.State != constants.StateBrowsing || m.PendingAction != nil || m.Form != nil {
				t.Error("confirmation state not cleared")
			}
		})
	}
}

func edited() models.Records {
	r := models.DefaultRecords()
	r.Unit = r.Unit.With(models.UnitTitle, "Place Value")
	return r
}

func TestCopyWithoutClipboard(t *testing.T) {
	m := newState()

	cmd := Copy(&m)
	batch := cmd().(tea.BatchMsg)
	result := batch[0]().(constants.CopiedMsg)
	if result.Err == nil {
		t.Fatal("missing clipboard not reported")
	}

	HandleCopyMessages(&m, result)
	if m.Status == "" {
		t.Error("status not set")
	}
	if !m.Session.Copied() {
		t.Error("copied flag should be set regardless of the write outcome")
	}
}

func TestThemeFor(t *testing.T) {
	for _, name := range []string{"dracula", "charm", "base16", "catppuccin", "unknown"} {
		if ThemeFor(name) == nil {
			t.Errorf("ThemeFor(%q) = nil", name)
		}
	}
}

func TestSwitchTabRefreshesPreview(t *testing.T) {
	m := newState()

	SwitchTab(&m, constants.TabInfographic)
	if m.PreviewModel.Filename() != constants.InfographicFilename {
		t.Errorf("preview filename = %q", m.PreviewModel.Filename())
	}
	if m.PreviewModel.Content() != m.Session.Render() {
		t.Error("preview content stale after switching tabs")
	}
}
