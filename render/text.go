package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/docdelta/docdelta"
)

type sprintFunc func(format string, a ...any) string

type colors struct {
	Default sprintFunc
	Map     map[docdelta.Kind]sprintFunc
}

func newColors(enabled bool) *colors {
	c := &colors{
		Default: fmt.Sprintf,
		Map:     map[docdelta.Kind]sprintFunc{},
	}
	if !enabled {
		return c
	}
	green := color.New(color.FgGreen).SprintfFunc()
	red := color.New(color.FgRed).SprintfFunc()
	cyan := color.New(color.FgCyan).SprintfFunc()
	yellow := color.New(color.FgYellow).SprintfFunc()
	c.Map[docdelta.Added] = green
	c.Map[docdelta.KeyAdded] = green
	c.Map[docdelta.ItemAdded] = green
	c.Map[docdelta.Removed] = red
	c.Map[docdelta.KeyRemoved] = red
	c.Map[docdelta.ItemRemoved] = red
	c.Map[docdelta.Moved] = cyan
	c.Map[docdelta.KeyMoved] = cyan
	c.Map[docdelta.ItemMoved] = cyan
	c.Map[docdelta.ContentChanged] = yellow
	c.Map[docdelta.TitleChanged] = yellow
	c.Map[docdelta.ValueChanged] = yellow
	c.Map[docdelta.TypeChanged] = yellow
	c.Map[docdelta.KeyRenamed] = yellow
	return c
}

func (c *colors) Get(k docdelta.Kind) sprintFunc {
	if f := c.Map[k]; f != nil {
		return f
	}
	return c.Default
}

var kindMarks = map[docdelta.Kind]string{
	docdelta.Unchanged:      "=",
	docdelta.Added:          "+",
	docdelta.KeyAdded:       "+",
	docdelta.ItemAdded:      "+",
	docdelta.Removed:        "-",
	docdelta.KeyRemoved:     "-",
	docdelta.ItemRemoved:    "-",
	docdelta.Moved:          ">",
	docdelta.KeyMoved:       ">",
	docdelta.ItemMoved:      ">",
	docdelta.ContentChanged: "~",
	docdelta.TitleChanged:   "~",
	docdelta.ValueChanged:   "~",
	docdelta.TypeChanged:    "~",
	docdelta.KeyRenamed:     "~",
}

// Text writes a line-per-change report followed by diagnostics and a
// summary line.
func Text(w io.Writer, res *docdelta.Result, opts ...Option) error {
	cfg := newConfig(opts)
	cc := newColors(cfg.color)
	for i := range res.Changes {
		ch := &res.Changes[i]
		if !cfg.keep(ch.Kind) {
			continue
		}
		line := cc.Get(ch.Kind)("%s %s %s", kindMarks[ch.Kind], ch.Kind, textLoc(ch))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if detail := textDetail(ch); detail != "" {
			if _, err := fmt.Fprintf(w, "    %s\n", detail); err != nil {
				return err
			}
		}
	}
	for _, diag := range res.Diagnostics {
		if _, err := fmt.Fprintf(w, "! %s: %s\n", diag.Path, diag.Message); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "added %d, removed %d, modified %d, moved %d\n",
		res.Counts.Added, res.Counts.Removed, res.Counts.Modified, res.Counts.Moved)
	return err
}

// textLoc renders the change location: the new path, the old path for
// removals, both for relocations and renames.
func textLoc(ch *docdelta.Change) string {
	oldPath, newPath := ch.OldPath.String(), ch.NewPath.String()
	switch {
	case newPath == "":
		return oldPath
	case oldPath == "" || oldPath == newPath:
		return newPath
	default:
		return oldPath + " -> " + newPath
	}
}

func textDetail(ch *docdelta.Change) string {
	switch ch.Kind {
	case docdelta.TitleChanged:
		return fmt.Sprintf("title %q -> %q", ch.OldTitle, ch.NewTitle)
	case docdelta.ValueChanged, docdelta.TypeChanged:
		return fmt.Sprintf("%s -> %s", ch.OldBody, ch.NewBody)
	}
	return ""
}
