// Package main provides the automapper CLI.
//
// automapper works with YAML mapping profiles:
//   - check validates a profile against the bundled store and warehouse models
//   - dump prints the parsed profile
//   - demo maps a sample store.Order into a warehouse.Order with the profile
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/exp/slog"

	"automapper/catalog"
	"automapper/engine"
	"automapper/internal/profile"
	"automapper/store"
	"automapper/warehouse"
)

const usage = `usage: automapper [-v] [-no-catalog] <command> <profile.yaml>

commands:
  check   validate the profile, exit status 1 on errors
  dump    print the parsed profile
  demo    map a sample store.Order into warehouse.Order
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("automapper", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }

	verbose := fs.Bool("v", false, "enable debug logging")
	noCatalog := fs.Bool("no-catalog", false, "skip checks against the bundled models")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if fs.NArg() != 2 {
		fs.Usage()
		return 2
	}

	cmd, path := fs.Arg(0), fs.Arg(1)

	var err error

	switch cmd {
	case "check":
		err = check(stdout, logger, path, !*noCatalog)
	case "dump":
		err = dump(stdout, path)
	case "demo":
		err = demo(stdout, logger, path)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		fs.Usage()

		return 2
	}

	if err != nil {
		logger.Error(cmd+" failed", slog.String("profile", path), slog.Any("error", err))
		return 1
	}

	return 0
}

func bundledCatalog() (*catalog.Catalog, error) {
	cat := catalog.New()
	if err := errors.Join(store.Register(cat), warehouse.Register(cat)); err != nil {
		return nil, err
	}

	return cat, nil
}

func check(w io.Writer, logger *slog.Logger, path string, withCatalog bool) error {
	p, err := profile.LoadFile(path)
	if err != nil {
		return err
	}

	var cat *catalog.Catalog
	if withCatalog {
		if cat, err = bundledCatalog(); err != nil {
			return err
		}
	}

	res := profile.Validate(p, profile.Capabilities{}, cat)
	for _, d := range append(append(res.Errors, res.Warnings...), res.Infos...) {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}

	logger.Debug("profile checked",
		slog.String("profile", path),
		slog.Int("rules", len(p.AllRules())),
		slog.Int("errors", len(res.Errors)),
		slog.Int("warnings", len(res.Warnings)),
	)

	if err := res.Error(); err != nil {
		return fmt.Errorf("%d error(s)", len(res.Errors))
	}

	fmt.Fprintf(w, "ok: %d rule(s)\n", len(p.AllRules()))

	return nil
}

func dump(w io.Writer, path string) error {
	p, err := profile.LoadFile(path)
	if err != nil {
		return err
	}

	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
	cfg.Fdump(w, p)

	return nil
}

func demo(w io.Writer, logger *slog.Logger, path string) error {
	p, err := profile.LoadFile(path)
	if err != nil {
		return err
	}

	reg, err := profile.Build(p, profile.Capabilities{})
	if err != nil {
		return err
	}

	opts, err := profile.Options(p)
	if err != nil {
		return err
	}

	cat, err := bundledCatalog()
	if err != nil {
		return err
	}

	m, err := engine.New(reg, cat, append(opts, engine.WithLogger(logger))...)
	if err != nil {
		return err
	}

	res, err := m.MapWithReport(&warehouse.Order{}, store.SampleOrder())
	if err != nil {
		return err
	}

	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
	cfg.Fdump(w, res.Value)

	for _, g := range res.Gaps {
		fmt.Fprintf(w, "gap: %s\n", g)
	}

	return nil
}
