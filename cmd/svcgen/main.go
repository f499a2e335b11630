// Package main implements the svcgen CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/electwix/svcgen/internal/cli"
	"github.com/electwix/svcgen/internal/config"
	"github.com/electwix/svcgen/internal/logging"
	"github.com/electwix/svcgen/internal/pipeline"
)

func main() {
	code := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := cli.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			_, _ = fmt.Fprintln(stdout, err.Error())
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err.Error())
		return 1
	}

	logger := logging.New(logging.Options{
		Verbose: opts.Verbose,
		Writer:  stderr,
		RunID:   logging.NewRunID(),
	})

	env := pipeline.Environment{
		Logger: logger,
		Writer: pipeline.NewOSWriter(),
		Output: stderr,
	}

	pipe := pipeline.Pipeline{Env: env}
	summary, runErr := pipe.Run(ctx, pipeline.RunOptions{
		ConfigPath:    opts.ConfigPath,
		RequireConfig: opts.ConfigSet,
		Overrides:     opts.Overrides(),
		DryRun:        opts.DryRun,
		List:          opts.List,
		StrictConfig:  opts.StrictConfig,
	})

	printDiagnostics(stderr, summary.Diagnostics)

	if runErr != nil {
		var diagErr *pipeline.DiagnosticsError
		if !errors.As(runErr, &diagErr) {
			_, _ = fmt.Fprintln(stderr, runErr.Error())
		}
		var writeErr *pipeline.WriteError
		if errors.As(runErr, &writeErr) {
			return 2
		}
		return 1
	}

	if opts.List {
		printCatalog(stdout, summary)
		return 0
	}

	if opts.DryRun {
		_, _ = fmt.Fprintln(stdout, summary.Path)
		return 0
	}

	return 0
}

func printDiagnostics(w io.Writer, diags []pipeline.Diagnostic) {
	for _, diag := range diags {
		level := "warning"
		if diag.Severity == pipeline.SeverityError {
			level = "error"
		}
		_, _ = fmt.Fprintf(w, "%s:%d:%d: %s [%s]\n", diag.Path, diag.Line, diag.Column, diag.Message, level)
	}
}

func printCatalog(w io.Writer, summary pipeline.Summary) {
	if summary.Plan.Mode == config.ModeSettings {
		for _, entry := range summary.Catalog.Settings {
			_, _ = fmt.Fprintf(w, "%s %s %s\n", entry.Origin, entry.Action, entry.LauncherName())
		}
	} else {
		for _, entry := range summary.Catalog.Services {
			_, _ = fmt.Fprintf(w, "%s %s %s %s\n", entry.Origin, entry.Constant, entry.TypeName, entry.AccessorName())
		}
	}
	for _, name := range summary.Skipped {
		_, _ = fmt.Fprintf(w, "skipped %s\n", name)
	}
}
