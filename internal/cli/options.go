// Package cli parses svcgen command-line flags.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/electwix/svcgen/internal/config"
)

// Options holds the parsed command line.
type Options struct {
	ConfigPath string
	// ConfigSet reports whether -config/-c was given explicitly. A missing
	// default config file is tolerated; a missing named one is not.
	ConfigSet    bool
	Mode         string
	Receiver     string
	Out          string
	ApplyBlock   bool
	DryRun       bool
	List         bool
	StrictConfig bool
	Verbose      bool
}

// Parse parses args (without the program name).
func Parse(args []string) (Options, error) {
	opts := Options{
		ConfigPath: config.DefaultPath,
	}

	fs := flag.NewFlagSet("svcgen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "Path to configuration file")
	fs.StringVar(&opts.ConfigPath, "c", opts.ConfigPath, "Path to configuration file")
	fs.StringVar(&opts.Mode, "mode", "", "Report to print: all, imports, accessors, or settings (default from config, else all)")
	fs.StringVar(&opts.Receiver, "receiver", "", "Receiver type for generated extension functions (default Context)")
	fs.StringVar(&opts.Out, "out", "", "Write the report to this file instead of stderr; relative paths are resolved against the config directory")
	fs.BoolVar(&opts.ApplyBlock, "apply-block", false, "Give settings launchers an Intent.apply block parameter")
	fs.BoolVar(&opts.DryRun, "dry-run", false, "Render the report without writing it")
	fs.BoolVar(&opts.List, "list", false, "List catalog entries with their derived names without generating code")
	fs.BoolVar(&opts.StrictConfig, "strict", false, "Treat configuration and catalog warnings as errors")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&opts.Verbose, "v", false, "Enable verbose logging")

	if err := fs.Parse(args); err != nil {
		return Options{}, fmt.Errorf("%w\n\n%s", err, Usage(fs))
	}
	if fs.NArg() > 0 {
		return Options{}, fmt.Errorf("unexpected arguments: %s\n\n%s", strings.Join(fs.Args(), " "), Usage(fs))
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" || f.Name == "c" {
			opts.ConfigSet = true
		}
	})
	return opts, nil
}

// Overrides returns the flags that take precedence over the config file.
func (o Options) Overrides() config.Overrides {
	return config.Overrides{
		Mode:       o.Mode,
		Receiver:   o.Receiver,
		Out:        o.Out,
		ApplyBlock: o.ApplyBlock,
	}
}

// Usage renders the flag set's help text.
func Usage(fs *flag.FlagSet) string {
	if fs == nil {
		return ""
	}
	var buf strings.Builder
	fmt.Fprintf(&buf, "Usage of %s:\n", fs.Name())
	out := fs.Output()
	fs.SetOutput(&buf)
	fs.PrintDefaults()
	fs.SetOutput(out)
	return buf.String()
}
