// Package pipeline orchestrates catalog loading, validation, and rendering.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/electwix/svcgen/internal/catalog"
	"github.com/electwix/svcgen/internal/codegen/kotlin"
	"github.com/electwix/svcgen/internal/config"
	"github.com/electwix/svcgen/internal/kotlinsrc"
	"github.com/electwix/svcgen/internal/logging"
)

// StreamPath names the report destination when no output file is configured.
const StreamPath = "<stderr>"

// Environment captures external dependencies used by the pipeline.
type Environment struct {
	Logger *slog.Logger
	// Writer persists the report when an output file is configured.
	Writer Writer
	// Output receives the report when no output file is configured;
	// defaults to os.Stderr.
	Output io.Writer
	Hooks  Hooks
}

// Pipeline runs one generation pass.
type Pipeline struct {
	Env Environment
}

// RunOptions configures a pipeline execution.
type RunOptions struct {
	ConfigPath string
	// RequireConfig makes a missing config file an error. Without it a
	// missing file falls back to config.Default().
	RequireConfig bool
	Overrides     config.Overrides
	DryRun        bool
	List          bool
	StrictConfig  bool
}

// Severity classifies diagnostics.
type Severity int

const (
	// SeverityWarning does not stop generation unless strict mode is on.
	SeverityWarning Severity = iota
	// SeverityError stops generation.
	SeverityError
)

// Diagnostic is a positioned message about configuration or catalog input.
type Diagnostic struct {
	Path     string
	Line     int
	Column   int
	Message  string
	Severity Severity
}

// Summary captures what a run produced.
type Summary struct {
	Plan config.Plan
	// Catalog holds the records that were rendered, after skipping.
	Catalog catalog.Catalog
	// Skipped lists function names already declared in the existing file.
	Skipped []string
	Output  []byte
	// Path is the output file, or StreamPath.
	Path string
	// Written is false when the output file already had identical content.
	Written     bool
	Diagnostics []Diagnostic
}

// DiagnosticsError indicates that errors were reported via diagnostics.
type DiagnosticsError struct {
	Diagnostic Diagnostic
	Cause      error
}

func (e *DiagnosticsError) Error() string {
	d := e.Diagnostic
	return fmt.Sprintf("%s:%d:%d: %s", d.Path, d.Line, d.Column, d.Message)
}

func (e *DiagnosticsError) Unwrap() error {
	return e.Cause
}

// Run executes the pipeline according to the provided options.
func (p *Pipeline) Run(ctx context.Context, opts RunOptions) (summary Summary, err error) {
	logger := p.Env.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	diags := make([]Diagnostic, 0, 4)
	firstErrorIndex := -1
	addDiag := func(d Diagnostic) {
		if d.Line <= 0 {
			d.Line = 1
		}
		if d.Column <= 0 {
			d.Column = 1
		}
		diags = append(diags, d)
		if d.Severity == SeverityError && firstErrorIndex == -1 {
			firstErrorIndex = len(diags) - 1
		}
	}
	fail := func(cause error) error {
		return &DiagnosticsError{Diagnostic: diags[firstErrorIndex], Cause: cause}
	}
	defer func() {
		summary.Diagnostics = append([]Diagnostic(nil), diags...)
	}()

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.DefaultPath
	}
	absConfigPath, err := filepath.Abs(configPath)
	if err != nil {
		addDiag(Diagnostic{Path: configPath, Severity: SeverityError, Message: fmt.Sprintf("resolve config path: %v", err)})
		return summary, fail(err)
	}
	baseDir := filepath.Dir(absConfigPath)

	plan := config.Default()
	loadResult, err := config.Load(absConfigPath, config.LoadOptions{Strict: opts.StrictConfig})
	switch {
	case err == nil:
		plan = loadResult.Plan
		for _, warning := range loadResult.Warnings {
			addDiag(Diagnostic{Path: absConfigPath, Severity: SeverityWarning, Message: warning})
		}
		logger.Debug("loaded config", "path", absConfigPath, "sources", len(plan.Sources))
	case errors.Is(err, fs.ErrNotExist) && !opts.RequireConfig:
		logger.Debug("no config file, using defaults", "path", absConfigPath)
	default:
		addDiag(Diagnostic{Path: absConfigPath, Severity: SeverityError, Message: err.Error()})
		return summary, fail(err)
	}

	if err := plan.Apply(opts.Overrides, baseDir); err != nil {
		addDiag(Diagnostic{Path: absConfigPath, Severity: SeverityError, Message: err.Error()})
		return summary, fail(err)
	}
	summary.Plan = plan

	if err := ctx.Err(); err != nil {
		return summary, err
	}

	cat, err := loadCatalog(ctx, plan, logger)
	if err != nil {
		addDiag(catalogDiagnostic(err))
		return summary, fail(err)
	}
	if err := cat.Validate(); err != nil {
		addDiag(catalogDiagnostic(err))
		return summary, fail(err)
	}

	if p.Env.Hooks.AfterLoad != nil {
		if err := p.Env.Hooks.AfterLoad(ctx, cat); err != nil {
			return summary, fmt.Errorf("after load hook: %w", err)
		}
	}

	duplicateSeverity := SeverityWarning
	if opts.StrictConfig {
		duplicateSeverity = SeverityError
	}
	checkDuplicates(plan.Mode, cat, duplicateSeverity, addDiag)
	if firstErrorIndex != -1 {
		return summary, fail(nil)
	}

	if plan.Existing != "" {
		filtered, skipped, err := skipExisting(plan, cat)
		if err != nil {
			addDiag(Diagnostic{Path: plan.Existing, Severity: SeverityError, Message: err.Error()})
			return summary, fail(err)
		}
		for _, name := range skipped {
			logger.Debug("already declared, skipping", "function", name, "path", plan.Existing)
		}
		cat = filtered
		summary.Skipped = skipped
	}
	summary.Catalog = cat

	if opts.List {
		return summary, nil
	}

	if err := ctx.Err(); err != nil {
		return summary, err
	}

	gen, err := kotlin.NewGenerator(kotlin.Options{Receiver: plan.Receiver, ApplyBlock: plan.ApplyBlock})
	if err != nil {
		return summary, fmt.Errorf("code generation: %w", err)
	}
	output, err := render(gen, plan.Mode, cat)
	if err != nil {
		return summary, fmt.Errorf("code generation: %w", err)
	}
	summary.Output = output
	logger.Debug("rendered report", "mode", plan.Mode, "receiver", gen.Receiver(), "entries", cat.Len())

	if p.Env.Hooks.AfterGenerate != nil {
		if err := p.Env.Hooks.AfterGenerate(ctx, output); err != nil {
			return summary, fmt.Errorf("after generate hook: %w", err)
		}
	}

	summary.Path = plan.Out
	if summary.Path == "" {
		summary.Path = StreamPath
	}
	if opts.DryRun {
		return summary, nil
	}

	if plan.Out == "" {
		stream := p.Env.Output
		if stream == nil {
			stream = os.Stderr
		}
		if _, err := stream.Write(output); err != nil {
			return summary, &WriteError{Path: StreamPath, Err: err}
		}
		summary.Written = true
		return summary, nil
	}

	same, err := fileMatches(plan.Out, output)
	if err != nil {
		return summary, &WriteError{Path: plan.Out, Err: err}
	}
	if same {
		logger.Debug("output unchanged", "path", plan.Out)
		return summary, nil
	}
	writer := p.Env.Writer
	if writer == nil {
		writer = NewOSWriter()
	}
	if err := writer.WriteFile(plan.Out, output); err != nil {
		return summary, &WriteError{Path: plan.Out, Err: err}
	}
	summary.Written = true
	logger.Info("wrote file", "path", plan.Out, "size", humanize.Bytes(uint64(len(output))))
	return summary, nil
}

func loadCatalog(ctx context.Context, plan config.Plan, logger *slog.Logger) (catalog.Catalog, error) {
	var cat catalog.Catalog
	if plan.UseBuiltin {
		cat.Append(catalog.Builtin())
	}
	for _, src := range plan.Sources {
		if err := ctx.Err(); err != nil {
			return catalog.Catalog{}, err
		}
		loaded, err := catalog.LoadFile(src)
		if err != nil {
			return catalog.Catalog{}, err
		}
		logger.Debug("loaded catalog", "path", src.Path, "entries", loaded.Len())
		cat.Append(loaded)
	}
	return cat, nil
}

func render(gen *kotlin.Generator, mode config.Mode, cat catalog.Catalog) ([]byte, error) {
	switch mode {
	case config.ModeImports:
		return gen.Imports(cat.Services)
	case config.ModeAccessors:
		return gen.Accessors(cat.Services)
	case config.ModeSettings:
		return gen.Launchers(cat.Settings)
	case config.ModeAll, "":
		imports, err := gen.Imports(cat.Services)
		if err != nil {
			return nil, err
		}
		accessors, err := gen.Accessors(cat.Services)
		if err != nil {
			return nil, err
		}
		return append(imports, accessors...), nil
	default:
		return nil, fmt.Errorf("unsupported mode %q", mode)
	}
}

func catalogDiagnostic(err error) Diagnostic {
	var malformed *catalog.MalformedInputError
	if errors.As(err, &malformed) {
		path := malformed.Source
		if path == "" {
			path = "<builtin>"
		}
		return Diagnostic{Path: path, Severity: SeverityError, Message: malformed.Error()}
	}
	return Diagnostic{Path: "<catalog>", Severity: SeverityError, Message: err.Error()}
}

// checkDuplicates reports records in the selected mode that derive the same
// function name.
func checkDuplicates(mode config.Mode, cat catalog.Catalog, severity Severity, addDiag func(Diagnostic)) {
	type named struct {
		name   string
		origin catalog.Origin
	}
	var items []named
	kind := "accessor"
	if mode == config.ModeSettings {
		kind = "launcher"
		for _, entry := range cat.Settings {
			items = append(items, named{entry.LauncherName(), entry.Origin})
		}
	} else {
		for _, entry := range cat.Services {
			items = append(items, named{entry.AccessorName(), entry.Origin})
		}
	}

	seen := make(map[string]catalog.Origin, len(items))
	for _, it := range items {
		if previous, ok := seen[it.name]; ok {
			path, line := it.origin.Path, it.origin.Line
			if line <= 0 {
				line = it.origin.Index
			}
			if path == "" {
				path = "<builtin>"
			}
			addDiag(Diagnostic{
				Path:     path,
				Line:     line,
				Severity: severity,
				Message:  fmt.Sprintf("duplicate %s %q (previous definition at %s)", kind, it.name, previous),
			})
			continue
		}
		seen[it.name] = it.origin
	}
}

func skipExisting(plan config.Plan, cat catalog.Catalog) (catalog.Catalog, []string, error) {
	src, err := os.ReadFile(filepath.Clean(plan.Existing))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cat, nil, nil
		}
		return cat, nil, err
	}
	decls, err := kotlinsrc.Scan(plan.Existing, src)
	if err != nil {
		return cat, nil, err
	}
	idx := kotlinsrc.IndexFor(decls, plan.Receiver)

	var (
		filtered catalog.Catalog
		skipped  []string
	)
	for _, entry := range cat.Services {
		if name := entry.AccessorName(); idx.Has(name) {
			skipped = append(skipped, name)
			continue
		}
		filtered.Services = append(filtered.Services, entry)
	}
	for _, entry := range cat.Settings {
		if name := entry.LauncherName(); idx.Has(name) {
			skipped = append(skipped, name)
			continue
		}
		filtered.Settings = append(filtered.Settings, entry)
	}
	return filtered, skipped, nil
}
