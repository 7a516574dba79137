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
	opts = append(opts, &cli.Opt{
		Name:        "s",
		Description: "JSON definitions, may be repeated",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.schemaOpt), "(file.json)"),
	})
	return cli.NewCommandAt(&cfg.Command, "tagdump").
		WithSynopsis("tagdump [opts] -s defs.json [-s defs.json]... -r record file.tag [file.tag...]").
		WithDescription("Print HEK tag files as YAML, decoded with the given definitions.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

type Config struct {
	*cli.Command

	Record  string `cli:"name=r desc='record type stored in the files'"`
	Color   bool   `cli:"name=color desc='color output even if not a terminal'"`
	Verify  bool   `cli:"name=verify desc='fail on checksum mismatch instead of warning'"`
	Hidden  bool   `cli:"name=hidden desc='decode as extracted with hidden fields dropped'"`
	Verbose bool   `cli:"name=v desc='log progress'"`

	Schemas []string
}

func (cfg *Config) schemaOpt(_ *cli.Context, v string) (any, error) {
	cfg.Schemas = append(cfg.Schemas, v)
	return v, nil
}
