// Package kotlin renders Kotlin extension-function boilerplate for Android
// system services and settings screens using text templates.
package kotlin

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/electwix/svcgen/internal/catalog"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// DefaultReceiver is the extension receiver used when none is configured.
const DefaultReceiver = "Context"

// Imports needed by annotated functions.
const (
	buildImport       = "android.os.Build"
	requiresAPIImport = "androidx.annotation.RequiresApi"
)

// Options tunes the generated text.
type Options struct {
	// Receiver is the extended type; it also qualifies service constants.
	Receiver string
	// ApplyBlock adds an `applyBlock: Intent.() -> Unit = {}` parameter to
	// settings launchers.
	ApplyBlock bool
}

// Generator renders catalog records into Kotlin source text.
type Generator struct {
	tmpl *template.Template
	opts Options
}

// NewGenerator parses the embedded templates.
func NewGenerator(opts Options) (*Generator, error) {
	if opts.Receiver == "" {
		opts.Receiver = DefaultReceiver
	}
	tmpl, err := template.New("kotlin").ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Generator{tmpl: tmpl, opts: opts}, nil
}

// Receiver reports the receiver type functions are generated for.
func (g *Generator) Receiver() string { return g.opts.Receiver }

type accessorModel struct {
	Name        string
	Constant    string
	SimpleName  string
	RequiresAPI string
}

type launcherModel struct {
	Name        string
	Action      string
	Doc         string
	RequiresAPI string
}

// Imports renders one `import` line per service type, in catalog order.
// Annotated entries add the Build and RequiresApi imports at the end.
func (g *Generator) Imports(entries []catalog.ServiceEntry) ([]byte, error) {
	imports := make([]string, 0, len(entries)+2)
	annotated := false
	for _, entry := range entries {
		imports = append(imports, strings.TrimSpace(entry.TypeName))
		if entry.RequiresAPI != "" {
			annotated = true
		}
	}
	if annotated {
		imports = append(imports, buildImport, requiresAPIImport)
	}
	return g.execute("imports.tmpl", map[string]any{"Imports": imports})
}

// Accessors renders a two-line getSystemService wrapper per entry.
func (g *Generator) Accessors(entries []catalog.ServiceEntry) ([]byte, error) {
	models := make([]accessorModel, 0, len(entries))
	for _, entry := range entries {
		models = append(models, accessorModel{
			Name:        entry.AccessorName(),
			Constant:    strings.TrimSpace(entry.Constant),
			SimpleName:  entry.SimpleName(),
			RequiresAPI: entry.RequiresAPI,
		})
	}
	return g.execute("accessors.tmpl", map[string]any{
		"Receiver":  g.opts.Receiver,
		"Accessors": models,
	})
}

// Launchers renders a documented startActivity wrapper per settings entry.
func (g *Generator) Launchers(entries []catalog.SettingsEntry) ([]byte, error) {
	models := make([]launcherModel, 0, len(entries))
	for _, entry := range entries {
		models = append(models, launcherModel{
			Name:        entry.LauncherName(),
			Action:      strings.TrimSpace(entry.Action),
			Doc:         entry.Doc,
			RequiresAPI: entry.RequiresAPI,
		})
	}
	return g.execute("launchers.tmpl", map[string]any{
		"Receiver":   g.opts.Receiver,
		"ApplyBlock": g.opts.ApplyBlock,
		"Launchers":  models,
	})
}

func (g *Generator) execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
