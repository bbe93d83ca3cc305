package main

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"gbcat/catalog"
	"gbcat/log"
	"gbcat/report"
	"gbcat/source"
)

// apply overrides cfg with the flags set on the command line.
func (args List) apply(cfg *Config) {
	if args.Dir != "" {
		cfg.Scan.Root = args.Dir
	}
	if args.Workers >= 0 {
		cfg.Scan.Workers = args.Workers
	}
	if args.Output != "" {
		cfg.Report.Output = args.Output
	}
	if args.Type != "" {
		cfg.Report.Format = args.Type
	}
	if args.Template != "" {
		cfg.Report.Template = args.Template
	}
}

// runList catalogs the roms under the configured root directory and writes
// the report.
func runList(ctx context.Context, args List, cfg Config, stdout, stderr io.Writer) error {
	args.apply(&cfg)

	format, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		return err
	}

	var tmpl *template.Template
	if cfg.Report.Template != "" {
		if tmpl, err = report.LoadTemplate(cfg.Report.Template); err != nil {
			return fmt.Errorf("failed to load template: %w", err)
		}
	}

	fmt.Fprintf(stdout, "Parsing data from the %q directory...\n", cfg.Scan.Root)

	src := &source.Dir{
		Root:     cfg.Scan.Root,
		ROMExts:  cfg.Scan.ROMExtensions,
		Archives: cfg.Scan.Archives,
	}
	cat, err := catalog.Collect(ctx, src, cfg.Scan.Workers)
	switch {
	case errors.Is(err, context.Canceled):
		log.ModCLI.Warnf("interrupted, the report only contains the roms read so far")
	case err != nil:
		return err
	}

	for _, f := range cat.Failures {
		fmt.Fprintf(stderr, "cannot catalog %s: %v\n", filepath.Join(f.Category, f.SourceName), f.Err)
	}

	if len(cat.Entries) == 0 {
		fmt.Fprintln(stdout, "No ROMs found")
		return nil
	}

	names, err := report.WriteFiles(cfg.Report.Output, format, cat, tmpl)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Finished! Data about %d ROMs has been output to %q.\n",
		len(cat.Entries), strings.Join(names, ", "))
	return nil
}

// runRomInfos prints the header of the rom at path, or of each rom in the
// archive at path.
func runRomInfos(path string, w io.Writer) error {
	src := &source.Dir{Root: path, Archives: true}

	var items []source.Item
	err := src.Scan(context.Background(), func(it source.Item) error {
		items = append(items, it)
		return nil
	})
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("%s: not a rom nor an archive containing roms", path)
	}

	cat := catalog.Build(items)
	for i, e := range cat.Entries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n", e.SourceName)
		e.PrintInfos(w)
	}
	if len(cat.Failures) > 0 {
		return errors.Join(asErrors(cat.Failures)...)
	}
	return nil
}

func asErrors(fails []catalog.Failure) []error {
	errs := make([]error, len(fails))
	for i, f := range fails {
		errs[i] = f
	}
	return errs
}

func printConfig(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
