package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/docdelta/docdelta"
	"github.com/docdelta/docdelta/identity"
	"github.com/docdelta/docdelta/ir"
	"github.com/docdelta/docdelta/load"
	"github.com/docdelta/docdelta/render"
)

func data(cfg *DataConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Data.Parse(cc, args)
	if err != nil {
		cfg.Data.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: data requires 2 args, got %v", cli.ErrUsage, args)
	}
	old, err := getDataFile(cc, args[0])
	if err != nil {
		return err
	}
	new, err := getDataFile(cc, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		old, new = new, old
	}
	var rules []identity.Rule
	if cfg.RulesFile != "" {
		d, err := os.ReadFile(cfg.RulesFile)
		if err != nil {
			return err
		}
		rules, err = load.Rules(d)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", cfg.RulesFile, err)
		}
	}
	var opts []docdelta.DiffOpt
	if cfg.Ordered {
		opts = append(opts, docdelta.DiffOrderedKeys(true))
	}
	res, err := docdelta.DiffData(old, new, rules, opts...)
	if err != nil {
		return err
	}
	if cfg.MergePatch {
		if err := render.MergePatch(cc.Out, old, new); err != nil {
			return err
		}
	} else if err := writeReport(cfg.MainConfig, cc, res); err != nil {
		return err
	}
	if res.Differs() {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func getDataFile(cc *cli.Context, path string) (*ir.Node, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	node, err := load.Data(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return node, nil
}
