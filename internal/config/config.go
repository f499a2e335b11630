// Package config loads and validates the svcgen project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/electwix/svcgen/internal/catalog"
)

// DefaultPath is the project file looked up when none is named.
const DefaultPath = "svcgen.toml"

// Mode selects which report the generator produces.
type Mode string

const (
	// ModeAll prints the import list followed by the accessor stubs.
	ModeAll Mode = "all"
	// ModeImports prints only the import list.
	ModeImports Mode = "imports"
	// ModeAccessors prints only the accessor stubs.
	ModeAccessors Mode = "accessors"
	// ModeSettings prints the settings-intent launchers.
	ModeSettings Mode = "settings"
)

var validModes = map[Mode]struct{}{
	ModeAll:       {},
	ModeImports:   {},
	ModeAccessors: {},
	ModeSettings:  {},
}

// ParseMode validates a mode name; empty selects ModeAll.
func ParseMode(raw string) (Mode, error) {
	if raw == "" {
		return ModeAll, nil
	}
	mode := Mode(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := validModes[mode]; !ok {
		return "", fmt.Errorf("unsupported mode %q (want all, imports, accessors, or settings)", raw)
	}
	return mode, nil
}

// SourceConfig names one or more external catalog files.
type SourceConfig struct {
	// Path is a glob relative to the config file, or an absolute path.
	Path      string `toml:"path"`
	Format    string `toml:"format"`
	Kind      string `toml:"kind"`
	Delimiter string `toml:"delimiter"`
}

// Config mirrors the svcgen TOML schema.
type Config struct {
	Receiver   string         `toml:"receiver"`
	Mode       string         `toml:"mode"`
	Out        string         `toml:"out"`
	Existing   string         `toml:"existing"`
	ApplyBlock bool           `toml:"apply_block"`
	UseBuiltin bool           `toml:"use_builtin"`
	Sources    []SourceConfig `toml:"source"`
}

// Plan is the fully-resolved configuration used by the pipeline. Paths are
// absolute.
type Plan struct {
	Receiver   string
	Mode       Mode
	Out        string
	Existing   string
	ApplyBlock bool
	UseBuiltin bool
	Sources    []catalog.Source
}

// Default is the plan used when no project file exists: the built-in
// catalog, both service passes, Context receiver.
func Default() Plan {
	return Plan{
		Receiver:   "Context",
		Mode:       ModeAll,
		UseBuiltin: true,
	}
}

// LoadOptions tunes config loading behavior.
type LoadOptions struct {
	Strict bool
}

// Result wraps a loaded plan alongside any non-fatal warnings.
type Result struct {
	Plan     Plan
	Warnings []string
}

// Load reads, validates, and resolves a svcgen project file.
func Load(path string, opts LoadOptions) (Result, error) {
	var res Result

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return res, fmt.Errorf("read %s: %w", path, err)
	}

	defaults := Default()
	cfg := Config{
		Receiver:   defaults.Receiver,
		Mode:       string(defaults.Mode),
		UseBuiltin: defaults.UseBuiltin,
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}

	unknownKeys, err := collectUnknownKeys(data)
	if err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}
	if len(unknownKeys) > 0 {
		slices.Sort(unknownKeys)
		message := fmt.Sprintf("%s: unknown configuration keys: %s", path, strings.Join(unknownKeys, ", "))
		if opts.Strict {
			return res, errors.New(message)
		}
		res.Warnings = append(res.Warnings, message)
	}

	if err := validateReceiver(path, cfg.Receiver); err != nil {
		return res, err
	}

	mode, err := ParseMode(cfg.Mode)
	if err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}

	baseDir := filepath.Dir(path)

	var out string
	if cfg.Out != "" {
		out, err = resolveOut(path, cfg.Out)
		if err != nil {
			return res, err
		}
	}

	existing := cfg.Existing
	if existing != "" && !filepath.IsAbs(existing) {
		existing = filepath.Join(baseDir, filepath.FromSlash(existing))
	}

	sources, err := resolveSources(baseDir, cfg.Sources)
	if err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}

	if !cfg.UseBuiltin && len(sources) == 0 {
		return res, fmt.Errorf("%s: use_builtin = false requires at least one [[source]]", path)
	}

	res.Plan = Plan{
		Receiver:   cfg.Receiver,
		Mode:       mode,
		Out:        out,
		Existing:   existing,
		ApplyBlock: cfg.ApplyBlock,
		UseBuiltin: cfg.UseBuiltin,
		Sources:    sources,
	}
	return res, nil
}

func collectUnknownKeys(data []byte) ([]string, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	known := map[string]struct{}{
		"receiver":    {},
		"mode":        {},
		"out":         {},
		"existing":    {},
		"apply_block": {},
		"use_builtin": {},
		"source":      {},
	}
	knownSource := map[string]struct{}{
		"path":      {},
		"format":    {},
		"kind":      {},
		"delimiter": {},
	}

	unknown := make([]string, 0)
	for key, value := range raw {
		if _, ok := known[key]; !ok {
			unknown = append(unknown, key)
			continue
		}
		if key != "source" {
			continue
		}
		tables, ok := value.([]any)
		if !ok {
			continue
		}
		for _, table := range tables {
			record, ok := table.(map[string]any)
			if !ok {
				continue
			}
			for sub := range record {
				if _, ok := knownSource[sub]; !ok {
					name := "source." + sub
					if !slices.Contains(unknown, name) {
						unknown = append(unknown, name)
					}
				}
			}
		}
	}
	return unknown, nil
}

func validateReceiver(path, receiver string) error {
	if receiver == "" {
		return fmt.Errorf("%s: receiver must not be empty", path)
	}
	if !isKotlinIdentifier(receiver) {
		return fmt.Errorf("%s: invalid receiver %q", path, receiver)
	}
	return nil
}

// kotlinHardKeywords cannot name a type without backticks.
var kotlinHardKeywords = []string{
	"as", "break", "class", "continue", "do", "else", "false", "for", "fun",
	"if", "in", "interface", "is", "null", "object", "package", "return",
	"super", "this", "throw", "true", "try", "typealias", "typeof", "val",
	"var", "when", "while",
}

func isKotlinIdentifier(name string) bool {
	if name == "" || slices.Contains(kotlinHardKeywords, name) {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

func resolveOut(path, out string) (string, error) {
	if filepath.IsAbs(out) {
		return "", fmt.Errorf("%s: out must be a relative path", path)
	}

	cleaned := filepath.Clean(out)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s: out must not traverse upwards", path)
	}

	baseDir := filepath.Dir(path)
	return filepath.Join(baseDir, cleaned), nil
}

func resolveSources(baseDir string, sources []SourceConfig) ([]catalog.Source, error) {
	resolved := make([]catalog.Source, 0, len(sources))
	fsys := os.DirFS(baseDir)
	for i, sc := range sources {
		field := fmt.Sprintf("source[%d]", i)
		if sc.Path == "" {
			return nil, fmt.Errorf("%s: path is required", field)
		}

		format := catalog.Format(strings.ToLower(sc.Format))
		switch format {
		case "", catalog.FormatYAML, catalog.FormatTOML, catalog.FormatDelimited:
		default:
			return nil, fmt.Errorf("%s: unsupported format %q", field, sc.Format)
		}

		kind := catalog.Kind(strings.ToLower(sc.Kind))
		switch kind {
		case "", catalog.KindServices, catalog.KindSettings:
		default:
			return nil, fmt.Errorf("%s: unsupported kind %q", field, sc.Kind)
		}

		var paths []string
		if filepath.IsAbs(sc.Path) {
			if _, err := os.Stat(sc.Path); err != nil {
				return nil, fmt.Errorf("%s: %w", field, err)
			}
			paths = []string{filepath.Clean(sc.Path)}
		} else {
			matches, err := catalog.Discover(fsys, []string{sc.Path})
			if err != nil {
				return nil, fmt.Errorf("%s: %w", field, err)
			}
			for _, match := range matches {
				paths = append(paths, filepath.Join(baseDir, filepath.FromSlash(match)))
			}
		}

		for _, p := range paths {
			resolved = append(resolved, catalog.Source{
				Path:      p,
				Format:    format,
				Kind:      kind,
				Delimiter: sc.Delimiter,
			})
		}
	}
	return resolved, nil
}

// Overrides carries command-line settings that take precedence over the
// project file. Zero values leave the plan untouched.
type Overrides struct {
	Mode       string
	Receiver   string
	Out        string
	ApplyBlock bool
}

// Apply merges o into p. A relative Out is resolved against baseDir.
func (p *Plan) Apply(o Overrides, baseDir string) error {
	if o.Mode != "" {
		mode, err := ParseMode(o.Mode)
		if err != nil {
			return err
		}
		p.Mode = mode
	}
	if o.Receiver != "" {
		if !isKotlinIdentifier(o.Receiver) {
			return fmt.Errorf("invalid receiver %q", o.Receiver)
		}
		p.Receiver = o.Receiver
	}
	if o.Out != "" {
		out := o.Out
		if !filepath.IsAbs(out) {
			out = filepath.Join(baseDir, out)
		}
		p.Out = filepath.Clean(out)
	}
	if o.ApplyBlock {
		p.ApplyBlock = true
	}
	return nil
}
