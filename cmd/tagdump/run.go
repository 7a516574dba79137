package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/signadot/tagdef/codegen"
	"github.com/signadot/tagdef/schema"
)

func run(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		cfg.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	switch {
	case len(cfg.Schemas) == 0:
		err = fmt.Errorf("%w: no definitions given (-s)", cli.ErrUsage)
	case cfg.Record == "":
		err = fmt.Errorf("%w: no record type given (-r)", cli.ErrUsage)
	case len(args) == 0:
		err = fmt.Errorf("%w: no tag files given", cli.ErrUsage)
	}
	if err != nil {
		cfg.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	log := newLogger(os.Stderr, cfg.Verbose)
	if err := dumpFiles(cfg, log, cc.Out, args); err != nil {
		log.Error(err.Error())
		return cli.ExitCodeErr(1)
	}
	return nil
}

func loadContext(cfg *Config, log *slog.Logger) (*codegen.Context, error) {
	c := codegen.NewContext(codegen.WithExtractHidden(cfg.Hidden), codegen.WithLogger(log))
	for _, path := range cfg.Schemas {
		d, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		f, err := schema.Decode(d, schema.FileName(path))
		if err != nil {
			return nil, err
		}
		if err := c.Add(f); err != nil {
			return nil, err
		}
	}
	if err := c.Resolve(); err != nil {
		return nil, err
	}
	return c, nil
}

func dumpFiles(cfg *Config, log *slog.Logger, out io.Writer, paths []string) error {
	c, err := loadContext(cfg, log)
	if err != nil {
		return err
	}
	d, err := newDumper(c, cfg.Record)
	if err != nil {
		return err
	}
	d.verify = cfg.Verify
	d.log = log
	w, colored := colorOutput(out, cfg.Color)
	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		doc, err := d.dump(path, data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		y, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		text := string(y)
		if colored {
			text = colorize(text)
		}
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
		log.Info("dumped", "file", path, "bytes", len(data))
	}
	return nil
}
