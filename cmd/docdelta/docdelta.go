package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/docdelta/docdelta"
	"github.com/docdelta/docdelta/render"
)

func docdeltaMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer cfg.closeOut()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.checkFormat(); err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	if err := sub.Run(cc, args[1:]); errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	} else if err != nil {
		return err
	}
	return nil
}

func readInput(cc *cli.Context, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cc.In)
	}
	return os.ReadFile(path)
}

func writeReport(cfg *MainConfig, cc *cli.Context, res *docdelta.Result) error {
	opts := cfg.renderOpts(cc.Out)
	switch cfg.format() {
	case jsonFormat:
		return render.JSON(cc.Out, res, opts...)
	case yamlFormat:
		return render.YAML(cc.Out, res, opts...)
	default:
		return render.Text(cc.Out, res, opts...)
	}
}
