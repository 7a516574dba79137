package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "tagdef-codegen").
		WithSynopsis("tagdef-codegen [opts] " + positionalSynopsis).
		WithDescription("Generate Go code converting tag records between their HEK and cache forms from JSON definitions.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

type Config struct {
	*cli.Command

	Package  string `cli:"name=package desc='package name of the generated files (default tagdata)'"`
	Runtime  string `cli:"name=runtime desc='import path of the hek runtime package'"`
	Tolerate string `cli:"name=tolerate desc='comma separated records written by hand, referenced without warnings (default PredictedResource)'"`
	Check    bool   `cli:"name=check desc='compare with the existing files instead of writing them'"`
	Verbose  bool   `cli:"name=v desc='log progress'"`
}
