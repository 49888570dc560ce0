package main

import (
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtOpt, "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "docdelta").
		WithSynopsis("docdelta [opts] command [opts]").
		WithDescription("docdelta compares structured documents and reports moves, edits, additions and removals.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return docdeltaMain(cfg, cc, args)
		}).
		WithSubs(
			DiffCommand(cfg),
			DataCommand(cfg))
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "threshold",
		Description: "move similarity threshold in [0,1]",
		Type:        cli.NamedFuncOpt(cfg.mkThreshold(), "(score)"),
	})

	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff [opts] old new").
		WithDescription("diff section documents by marker").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func (cfg *DiffConfig) mkThreshold() cli.FuncOpt {
	return func(_ *cli.Context, a string) (any, error) {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("%w: threshold %v outside [0,1]", cli.ErrUsage, v)
		}
		cfg.Threshold = &v
		return v, nil
	}
}

func DataCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DataConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("data").
		WithAliases("da").
		WithSynopsis("data [opts] old new").
		WithDescription("diff generic mapping/sequence data by path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return data(cfg, cc, args)
		})
	cfg.Data = cmd
	return cmd
}
