// Package catalog holds the service and settings records that svcgen turns
// into Kotlin boilerplate, along with loaders for external catalog files.
package catalog

import (
	"fmt"
	"strings"
)

// Kind selects which record table a source contributes to.
type Kind string

const (
	// KindServices marks a source of system-service records.
	KindServices Kind = "services"
	// KindSettings marks a source of settings-intent records.
	KindSettings Kind = "settings"
)

// Origin records where an entry was defined.
type Origin struct {
	Path string
	// Line is the 1-based source line, or 0 when the format has no line
	// information.
	Line int
	// Index is the 1-based position of the entry within its source.
	Index int
}

// String renders the origin as path:line.
func (o Origin) String() string {
	line := o.Line
	if line <= 0 {
		line = o.Index
	}
	if o.Path == "" {
		return fmt.Sprintf("<builtin>:%d", line)
	}
	return fmt.Sprintf("%s:%d", o.Path, line)
}

// ServiceEntry pairs a Context service constant with the type returned by
// getSystemService for it.
type ServiceEntry struct {
	Constant    string `yaml:"constant" toml:"constant"`
	TypeName    string `yaml:"type" toml:"type"`
	RequiresAPI string `yaml:"requires_api,omitempty" toml:"requires_api,omitempty"`

	Origin Origin `yaml:"-" toml:"-"`
}

// SettingsEntry pairs a Settings.ACTION_* constant with a one-line
// description used as the launcher's doc comment.
type SettingsEntry struct {
	Action      string `yaml:"action" toml:"action"`
	Doc         string `yaml:"doc" toml:"doc"`
	RequiresAPI string `yaml:"requires_api,omitempty" toml:"requires_api,omitempty"`

	Origin Origin `yaml:"-" toml:"-"`
}

// Catalog is an ordered set of records. Order is significant: generated
// output follows it exactly.
type Catalog struct {
	Services []ServiceEntry
	Settings []SettingsEntry
}

// Append adds other's records after c's, preserving order.
func (c *Catalog) Append(other Catalog) {
	c.Services = append(c.Services, other.Services...)
	c.Settings = append(c.Settings, other.Settings...)
}

// Len reports the total number of records.
func (c Catalog) Len() int {
	return len(c.Services) + len(c.Settings)
}

// Validate checks that every record carries the fields generation relies on.
// The first offending record is reported as a MalformedInputError.
func (c Catalog) Validate() error {
	for _, entry := range c.Services {
		switch {
		case strings.TrimSpace(entry.Constant) == "":
			return &MalformedInputError{Source: entry.Origin.Path, Position: entry.Origin.Index, Reason: "empty service constant"}
		case SimpleName(entry.TypeName) == "":
			return &MalformedInputError{Source: entry.Origin.Path, Position: entry.Origin.Index, Reason: fmt.Sprintf("type name %q has no simple name", entry.TypeName)}
		}
	}
	for _, entry := range c.Settings {
		if strings.TrimSpace(entry.Action) == "" {
			return &MalformedInputError{Source: entry.Origin.Path, Position: entry.Origin.Index, Reason: "empty settings action"}
		}
	}
	return nil
}
