package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies how a catalog file is encoded.
type Format string

const (
	// FormatYAML is a document with services and settings sequences.
	FormatYAML Format = "yaml"
	// FormatTOML is a document with [[services]] and [[settings]] tables.
	FormatTOML Format = "toml"
	// FormatDelimited is the legacy single-string pair list.
	FormatDelimited Format = "delimited"
)

// FormatForPath infers a format from the file extension. Unknown extensions
// are treated as delimited text.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatDelimited
	}
}

// Source describes one external catalog file.
type Source struct {
	Path   string
	Format Format
	// Kind selects the record table for delimited input. Structured
	// formats carry both tables and ignore it.
	Kind Kind
	// Delimiter overrides the default for delimited input.
	Delimiter string
}

// LoadFile reads and decodes a catalog source from disk.
func LoadFile(src Source) (Catalog, error) {
	data, err := os.ReadFile(filepath.Clean(src.Path))
	if err != nil {
		return Catalog{}, fmt.Errorf("read %s: %w", src.Path, err)
	}
	return Decode(src, data)
}

// Decode parses catalog contents according to src.
func Decode(src Source, data []byte) (Catalog, error) {
	format := src.Format
	if format == "" {
		format = FormatForPath(src.Path)
	}
	switch format {
	case FormatYAML:
		return decodeYAML(src.Path, data)
	case FormatTOML:
		return decodeTOML(src.Path, data)
	case FormatDelimited:
		return decodeDelimited(src, data)
	default:
		return Catalog{}, fmt.Errorf("%s: unsupported catalog format %q", src.Path, format)
	}
}

func decodeDelimited(src Source, data []byte) (Catalog, error) {
	content := strings.TrimSpace(string(data))
	kind := src.Kind
	if kind == "" {
		kind = KindServices
	}
	var cat Catalog
	switch kind {
	case KindServices:
		delim := src.Delimiter
		if delim == "" {
			delim = DefaultServicesDelimiter
		}
		entries, err := ParseServices(src.Path, content, delim)
		if err != nil {
			return Catalog{}, err
		}
		cat.Services = entries
	case KindSettings:
		delim := src.Delimiter
		if delim == "" {
			delim = DefaultSettingsDelimiter
		}
		entries, err := ParseSettings(src.Path, content, delim)
		if err != nil {
			return Catalog{}, err
		}
		cat.Settings = entries
	default:
		return Catalog{}, fmt.Errorf("%s: unsupported catalog kind %q", src.Path, kind)
	}
	return cat, nil
}

func decodeYAML(path string, data []byte) (Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	var cat Catalog
	if len(doc.Content) == 0 {
		return cat, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return Catalog{}, fmt.Errorf("%s:%d: catalog must be a mapping", path, root.Line)
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind != yaml.SequenceNode {
			return Catalog{}, fmt.Errorf("%s:%d: %s must be a list", path, value.Line, key.Value)
		}
		switch Kind(key.Value) {
		case KindServices:
			for j, item := range value.Content {
				if err := checkFields(path, item, serviceFields); err != nil {
					return Catalog{}, err
				}
				var entry ServiceEntry
				if err := item.Decode(&entry); err != nil {
					return Catalog{}, fmt.Errorf("%s:%d: %w", path, item.Line, err)
				}
				entry.Origin = Origin{Path: path, Line: item.Line, Index: j + 1}
				cat.Services = append(cat.Services, entry)
			}
		case KindSettings:
			for j, item := range value.Content {
				if err := checkFields(path, item, settingsFields); err != nil {
					return Catalog{}, err
				}
				var entry SettingsEntry
				if err := item.Decode(&entry); err != nil {
					return Catalog{}, fmt.Errorf("%s:%d: %w", path, item.Line, err)
				}
				entry.Origin = Origin{Path: path, Line: item.Line, Index: j + 1}
				cat.Settings = append(cat.Settings, entry)
			}
		default:
			return Catalog{}, fmt.Errorf("%s:%d: unknown catalog section %q", path, key.Line, key.Value)
		}
	}
	return cat, nil
}

var (
	serviceFields  = []string{"constant", "type", "requires_api"}
	settingsFields = []string{"action", "doc", "requires_api"}
)

// checkFields rejects keys the record type does not declare, matching the
// TOML loader's DisallowUnknownFields.
func checkFields(path string, item *yaml.Node, known []string) error {
	if item.Kind != yaml.MappingNode {
		return fmt.Errorf("%s:%d: catalog entry must be a mapping", path, item.Line)
	}
	for i := 0; i+1 < len(item.Content); i += 2 {
		key := item.Content[i]
		if !slices.Contains(known, key.Value) {
			return fmt.Errorf("%s:%d: unknown field %q (want one of %s)", path, key.Line, key.Value, strings.Join(known, ", "))
		}
	}
	return nil
}

type tomlDocument struct {
	Services []ServiceEntry  `toml:"services"`
	Settings []SettingsEntry `toml:"settings"`
}

func decodeTOML(path string, data []byte) (Catalog, error) {
	var doc tomlDocument
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	for i := range doc.Services {
		doc.Services[i].Origin = Origin{Path: path, Index: i + 1}
	}
	for i := range doc.Settings {
		doc.Settings[i].Origin = Origin{Path: path, Index: i + 1}
	}
	return Catalog{Services: doc.Services, Settings: doc.Settings}, nil
}
