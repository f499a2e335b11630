package catalog

import (
	"fmt"
	"strings"
)

// Default delimiters for the legacy single-string formats.
const (
	DefaultServicesDelimiter = ","
	DefaultSettingsDelimiter = "    "
)

// MalformedInputError reports catalog input that cannot be turned into
// records. No output is produced for a catalog that fails this way.
type MalformedInputError struct {
	// Source is the file the input came from; empty for built-in or inline input.
	Source string
	// Position is the 1-based record or token index involved, when known.
	Position int
	// Tokens is the number of delimited tokens found, for delimited input.
	Tokens int
	Reason string
}

func (e *MalformedInputError) Error() string {
	source := e.Source
	if source == "" {
		source = "<input>"
	}
	if e.Position > 0 {
		return fmt.Sprintf("malformed input %s (entry %d): %s", source, e.Position, e.Reason)
	}
	return fmt.Sprintf("malformed input %s: %s", source, e.Reason)
}

// SplitPairs splits a delimited string into trimmed (first, second) pairs.
// Trailing empty fields are dropped before pairing, so a single trailing
// delimiter is tolerated. An odd token count is a MalformedInputError.
func SplitPairs(source, input, delim string) ([][2]string, error) {
	if delim == "" {
		return nil, &MalformedInputError{Source: source, Reason: "empty delimiter"}
	}
	tokens := strings.Split(input, delim)
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens)%2 != 0 {
		last := strings.TrimSpace(tokens[len(tokens)-1])
		return nil, &MalformedInputError{
			Source:   source,
			Position: len(tokens),
			Tokens:   len(tokens),
			Reason:   fmt.Sprintf("odd token count %d: %q has no pair", len(tokens), last),
		}
	}
	pairs := make([][2]string, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		pairs = append(pairs, [2]string{strings.TrimSpace(tokens[i]), strings.TrimSpace(tokens[i+1])})
	}
	return pairs, nil
}

// ParseServices reads (constant, type) pairs from a delimited string.
func ParseServices(source, input, delim string) ([]ServiceEntry, error) {
	pairs, err := SplitPairs(source, input, delim)
	if err != nil {
		return nil, err
	}
	entries := make([]ServiceEntry, 0, len(pairs))
	for i, pair := range pairs {
		entries = append(entries, ServiceEntry{
			Constant: pair[0],
			TypeName: pair[1],
			Origin:   Origin{Path: source, Index: i + 1},
		})
	}
	return entries, nil
}

// ParseSettings reads (action, doc) pairs from a delimited string.
func ParseSettings(source, input, delim string) ([]SettingsEntry, error) {
	pairs, err := SplitPairs(source, input, delim)
	if err != nil {
		return nil, err
	}
	entries := make([]SettingsEntry, 0, len(pairs))
	for i, pair := range pairs {
		entries = append(entries, SettingsEntry{
			Action: pair[0],
			Doc:    pair[1],
			Origin: Origin{Path: source, Index: i + 1},
		})
	}
	return entries, nil
}
