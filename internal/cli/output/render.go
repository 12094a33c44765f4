package output

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lessonprompt/internal/cli"
	"github.com/julianstephens/lessonprompt/internal/constants"
	"github.com/julianstephens/lessonprompt/internal/logger"
)

type RenderCmd struct {
	Kind    string   `arg:"" help:"Document to render: unit, lesson, slides or infographic."`
	Example bool     `help:"Start from the fractions example instead of the defaults."`
	Set     []string `short:"s" sep:"none" placeholder:"RECORD.FIELD=VALUE" help:"Set a field before rendering. Repeatable."`
	Copy    bool     `short:"c" help:"Also copy the document to the clipboard."`
}

func (c *RenderCmd) Run(ctx *cli.Context) error {
	tab, err := constants.ParseTab(c.Kind)
	if err != nil {
		return err
	}

	sess, err := cli.NewSession(c.Example, c.Set)
	if err != nil {
		return err
	}
	sess.SetTab(tab)

	doc := sess.Render()
	fmt.Fprint(ctx.Out(), doc)
	if !strings.HasSuffix(doc, "\n") {
		fmt.Fprintln(ctx.Out())
	}
	logger.Debug("Rendered document", "session", sess.ID, "file", sess.Filename(), "bytes", len(doc))

	if c.Copy {
		if err := ctx.Copy(doc); err != nil {
			return err
		}
		fmt.Fprintf(ctx.Err(), "Copied %s to clipboard\n", sess.Filename())
	}
	return nil
}
