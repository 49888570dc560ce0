package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
	"github.com/docdelta/docdelta/render"
)

type outFormat int

const (
	textFormat outFormat = iota
	jsonFormat
	yamlFormat
)

func parseFormat(v string) (outFormat, error) {
	switch v {
	case "text", "t":
		return textFormat, nil
	case "json", "j":
		return jsonFormat, nil
	case "yaml", "y":
		return yamlFormat, nil
	}
	return 0, fmt.Errorf("unrecognized output format %q", v)
}

type MainConfig struct {
	Color     bool `cli:"name=color desc='force color in text output'"`
	Unchanged bool `cli:"name=u aliases=unchanged desc='include unchanged records'"`

	T bool `cli:"name=t aliases=text desc='output a text report'"`
	J bool `cli:"name=j aliases=json desc='output a json report'"`
	Y bool `cli:"name=y aliases=yaml desc='output a yaml report'"`

	OutFormat *outFormat

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtOpt(_ *cli.Context, v string) (any, error) {
	f, err := parseFormat(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.OutFormat = &f
	return f, nil
}

func (cfg *MainConfig) format() outFormat {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	switch {
	case cfg.J:
		return jsonFormat
	case cfg.Y:
		return yamlFormat
	default:
		return textFormat
	}
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.Create(a)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) closeOut() {
	if cfg.CloseOut != nil {
		cfg.CloseOut()
	}
}

// checkFormat rejects combinations of the format shorthand flags; the
// last-resort default is the text report.
func (cfg *MainConfig) checkFormat() error {
	set := 0
	for _, v := range []bool{cfg.T, cfg.J, cfg.Y} {
		if v {
			set++
		}
	}
	if set > 1 {
		return fmt.Errorf("%w: -t[ext], -j[son] and -y[aml] are mutually exclusive", cli.ErrUsage)
	}
	return nil
}

func (cfg *MainConfig) renderOpts(w io.Writer) []render.Option {
	res := []render.Option{
		render.WithUnchanged(cfg.Unchanged),
	}
	if cfg.Color {
		return append(res, render.WithColor(true))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, render.WithColor(true))
	}
	return res
}

type DiffConfig struct {
	*MainConfig
	Reverse   bool `cli:"name=r desc='reverse the diff'"`
	Threshold *float64

	Diff *cli.Command
}

type DataConfig struct {
	*MainConfig
	Reverse    bool   `cli:"name=r desc='reverse the diff'"`
	RulesFile  string `cli:"name=rules desc='identity rules file'"`
	Ordered    bool   `cli:"name=ordered desc='treat object key order as significant'"`
	MergePatch bool   `cli:"name=merge-patch aliases=patch desc='output an rfc 7386 merge patch instead of a report'"`

	Data *cli.Command
}
