package output

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lessonprompt/internal/cli"
	"github.com/julianstephens/lessonprompt/internal/models"
)

type FieldsCmd struct {
	Record  string `arg:"" optional:"" help:"Only list this record: unit, lesson, slides or infographic."`
	Example bool   `help:"Show the fractions example values instead of the defaults."`
}

func (c *FieldsCmd) Run(ctx *cli.Context) error {
	kinds := models.RecordKinds
	if c.Record != "" {
		kind, err := cli.ParseRecordKind(c.Record)
		if err != nil {
			return err
		}
		kinds = []models.RecordKind{kind}
	}

	records := models.DefaultRecords()
	if c.Example {
		records = models.ExampleRecords()
	}

	out := ctx.Out()
	for i, kind := range kinds {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s:\n", kind)
		for _, name := range models.FieldNames(kind) {
			value, err := records.Get(kind, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  %-28s %s\n", string(kind)+"."+name, summarize(value))
		}
	}
	return nil
}

// summarize shortens a value to its first line
func summarize(value string) string {
	if value == "" {
		return "-"
	}
	first, _, multi := strings.Cut(value, "\n")
	if multi {
		return first + " …"
	}
	return first
}
