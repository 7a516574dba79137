package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tagdef/codegen"
	"github.com/signadot/tagdef/schema"
)

const positionalSynopsis = "<definition.go> <parser.go> <save-hek-data.go> <read-hek-data.go> " +
	"<read-cache-file-data.go> <cache-format.go> <cache-deformat.go> <refactor-reference.go> " +
	"<enum.go> <extract-hidden on|off> <json> [json...]"

// job is a parsed command line.
type job struct {
	outputs       [codegen.NumArtifacts]string
	extractHidden bool
	inputs        []string
}

func parseArgs(args []string) (*job, error) {
	n := int(codegen.NumArtifacts)
	if len(args) < n+2 {
		return nil, fmt.Errorf("%w: want at least %d arguments, got %d", cli.ErrUsage, n+2, len(args))
	}
	j := &job{
		extractHidden: strings.EqualFold(args[n], "on"),
		inputs:        args[n+1:],
	}
	copy(j.outputs[:], args[:n])
	return j, nil
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		cfg.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	log := newLogger(os.Stderr, cfg.Verbose)
	j, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Usage: tagdef-codegen [opts] %s\n", positionalSynopsis)
		log.Error(err.Error())
		return cli.ExitCodeErr(1)
	}
	if err := generate(cfg, j, log, cc.Out); err != nil {
		log.Error(err.Error())
		return cli.ExitCodeErr(1)
	}
	return nil
}

func (cfg *Config) options(j *job, log *slog.Logger) []codegen.Option {
	opts := []codegen.Option{
		codegen.WithExtractHidden(j.extractHidden),
		codegen.WithLogger(log),
	}
	if cfg.Package != "" {
		opts = append(opts, codegen.WithPackage(cfg.Package))
	}
	if cfg.Runtime != "" {
		opts = append(opts, codegen.WithRuntime(cfg.Runtime))
	}
	if cfg.Tolerate != "" {
		opts = append(opts, codegen.WithTolerated(strings.Split(cfg.Tolerate, ",")...))
	}
	return opts
}

// generate renders every artifact before touching any output file.
func generate(cfg *Config, j *job, log *slog.Logger, out io.Writer) error {
	c := codegen.NewContext(cfg.options(j, log)...)
	for _, path := range j.inputs {
		d, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		f, err := schema.Decode(d, schema.FileName(path))
		if err != nil {
			return err
		}
		if err := c.Add(f); err != nil {
			return err
		}
		log.Info("loaded", "file", path, "enums", len(f.Enums), "bitfields", len(f.Bitfields), "structs", len(f.Records))
	}
	if err := c.Resolve(); err != nil {
		return err
	}
	files, err := c.GenerateFiles()
	if err != nil {
		return err
	}
	if cfg.Check {
		return check(j, files, out)
	}
	for a, path := range j.outputs {
		if err := os.WriteFile(path, files[a], 0o644); err != nil {
			return err
		}
		log.Info("wrote", "artifact", codegen.Artifact(a), "file", path)
	}
	return nil
}

var errOutOfDate = errors.New("generated files are out of date")

// check reports the differences between generated and existing files.
func check(j *job, files *codegen.Files, out io.Writer) error {
	stale := 0
	for a, path := range j.outputs {
		have, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if bytes.Equal(have, files[a]) {
			continue
		}
		stale++
		fmt.Fprintf(out, "--- %s\n+++ %s (generated)\n", path, path)
		writeLineDiff(out, string(have), string(files[a]))
	}
	if stale > 0 {
		return fmt.Errorf("%w: %d of %d differ", errOutOfDate, stale, len(j.outputs))
	}
	return nil
}
