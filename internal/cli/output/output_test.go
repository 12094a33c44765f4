package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/julianstephens/lessonprompt/internal/cli"
	"github.com/julianstephens/lessonprompt/internal/clipboard"
	"github.com/julianstephens/lessonprompt/internal/models"
	"github.com/julianstephens/lessonprompt/internal/render"
)

func newContext(clip clipboard.Writer) (*cli.Context, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &cli.Context{Clipboard: clip, Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

func TestRenderCmd(t *testing.T) {
	example := models.ExampleRecords()

	tests := []struct {
		name string
		cmd  RenderCmd
		want string
	}{
		{
			name: "unit plan defaults",
			cmd:  RenderCmd{Kind: "unit"},
			want: render.UnitPlan(models.DefaultUnitPlan()),
		},
		{
			name: "lesson from example",
			cmd:  RenderCmd{Kind: "lesson", Example: true},
			want: render.LessonPrompt(example.Unit, example.Lesson) + "\n",
		},
		{
			name: "slides with assignment",
			cmd:  RenderCmd{Kind: "slides", Example: true, Set: []string{"slides.audience=teachers"}},
			want: render.SlidePrompt(example.Unit, example.Slides.With(models.SlideAudience, "teachers")) + "\n",
		},
		{
			name: "infographic",
			cmd:  RenderCmd{Kind: "infographic", Set: []string{"infographic.topic=Forces"}},
			want: render.InfographicPrompt(models.DefaultUnitPlan(), models.DefaultInfographic().With(models.InfographicTopic, "Forces")) + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, stdout, _ := newContext(nil)
			if err := tt.cmd.Run(ctx); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if stdout.String() != tt.want {
				t.Errorf("output mismatch\n--- got ---\n%s\n--- want ---\n%s", stdout.String(), tt.want)
			}
		})
	}
}

func TestRenderCmdErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  RenderCmd
	}{
		{"unknown kind", RenderCmd{Kind: "poster"}},
		{"unknown field", RenderCmd{Kind: "unit", Set: []string{"unit.colour=blue"}}},
		{"bad enum", RenderCmd{Kind: "slides", Set: []string{"slides.audience=parents"}}},
		{"copy without clipboard", RenderCmd{Kind: "unit", Copy: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _, _ := newContext(nil)
			if err := tt.cmd.Run(ctx); err == nil {
				t.Error("Run() succeeded")
			}
		})
	}
}

func TestRenderCmdCopy(t *testing.T) {
	var copied string
	ctx, stdout, stderr := newContext(clipboard.WriterFunc(func(s string) error {
		copied = s
		return nil
	}))

	cmd := RenderCmd{Kind: "lesson", Example: true, Copy: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if copied == "" || !strings.HasPrefix(stdout.String(), copied) {
		t.Error("clipboard and stdout disagree")
	}
	if !strings.Contains(stderr.String(), "lesson_5_prompt.txt") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRenderCmdCopyFailure(t *testing.T) {
	ctx, _, _ := newContext(clipboard.WriterFunc(func(string) error {
		return clipboard.ErrUnsupported
	}))

	err := (&RenderCmd{Kind: "unit", Copy: true}).Run(ctx)
	if !errors.Is(err, clipboard.ErrUnsupported) {
		t.Errorf("Run() error = %v, want ErrUnsupported", err)
	}
}

func TestFieldsCmd(t *testing.T) {
	ctx, stdout, _ := newContext(nil)

	if err := (&FieldsCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	out := stdout.String()
	for _, kind := range models.RecordKinds {
		if !strings.Contains(out, string(kind)+":\n") {
			t.Errorf("record %s missing", kind)
		}
		for _, name := range models.FieldNames(kind) {
			if !strings.Contains(out, string(kind)+"."+name) {
				t.Errorf("field %s.%s missing", kind, name)
			}
		}
	}
	if !strings.Contains(out, "Include 2 students with dyscalculia.") {
		t.Error("default values not shown")
	}
}

func TestFieldsCmdSingleRecord(t *testing.T) {
	ctx, stdout, _ := newContext(nil)

	if err := (&FieldsCmd{Record: "slides", Example: true}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	out := stdout.String()
	if strings.Contains(out, "unit.") {
		t.Error("other records listed")
	}
	if !strings.Contains(out, "slides.length") || !strings.Contains(out, "Default") {
		t.Errorf("slides fields missing:\n%s", out)
	}

	if err := (&FieldsCmd{Record: "poster"}).Run(ctx); err == nil {
		t.Error("unknown record accepted")
	}
}

func TestSummarize(t *testing.T) {
	tests := map[string]string{
		"":               "-",
		"one line":       "one line",
		"first\nsecond":  "first …",
	}
	for in, want := range tests {
		if got := summarize(in); got != want {
			t.Errorf("summarize(%q) = %q, want %q", in, got, want)
		}
	}
}
