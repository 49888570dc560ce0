package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/docdelta/docdelta"
	"github.com/docdelta/docdelta/load"
	"github.com/docdelta/docdelta/section"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	old, err := getDocFile(cc, args[0])
	if err != nil {
		return err
	}
	new, err := getDocFile(cc, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		old, new = new, old
	}
	var opts []docdelta.DiffOpt
	if cfg.Threshold != nil {
		opts = append(opts, docdelta.DiffThreshold(*cfg.Threshold))
	}
	res, err := docdelta.Diff(old, new, opts...)
	if err != nil {
		return err
	}
	if err := writeReport(cfg.MainConfig, cc, res); err != nil {
		return err
	}
	if res.Differs() {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func getDocFile(cc *cli.Context, path string) (*section.Section, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	doc, err := load.Document(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return doc, nil
}
