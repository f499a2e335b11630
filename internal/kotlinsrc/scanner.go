// Package kotlinsrc finds extension-function declarations in Kotlin source.
// It recognises `fun Receiver.name(` and treats every other token as opaque,
// which is enough to tell which generated functions a file already has.
package kotlinsrc

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

//nolint:govet // Participle struct tags are DSL, not reflect tags
type file struct {
	Items []*item `parser:"@@*"`
}

//nolint:govet // Participle struct tags are DSL, not reflect tags
type item struct {
	Decl  *Declaration `parser:"  @@"`
	Other string       `parser:"| @(Ident | Punct | RawString | String | Char | Number)"`
}

// Declaration is one `fun Receiver.Name(` occurrence.
//
//nolint:govet // Participle struct tags are DSL, not reflect tags
type Declaration struct {
	Pos      lexer.Position
	Receiver string `parser:"\"fun\" @Ident \".\""`
	Name     string `parser:"@Ident \"(\""`
}

//nolint:govet // Participle DSL uses unkeyed fields
var kotlinLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*|/\*([^*]|\*+[^*/])*\*+/`},
	{Name: "RawString", Pattern: `"""(?s:.*?)"""`},
	{Name: "String", Pattern: `"(\\.|[^"\\\n])*"`},
	{Name: "Char", Pattern: `'(\\.|[^'\\\n])*'`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Number", Pattern: `[0-9][0-9A-Za-z_.]*`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Punct", Pattern: `[^\sA-Za-z0-9_]`},
})

var declParser = participle.MustBuild[file](
	participle.Lexer(kotlinLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.UseLookahead(8),
)

// Scan returns the extension-function declarations in src, in source order.
func Scan(path string, src []byte) ([]Declaration, error) {
	parsed, err := declParser.ParseBytes(path, src)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	decls := make([]Declaration, 0, len(parsed.Items)/16)
	for _, it := range parsed.Items {
		if it.Decl != nil {
			decls = append(decls, *it.Decl)
		}
	}
	return decls, nil
}

// Index is a set of declared function names for one receiver.
type Index map[string]Declaration

// IndexFor keeps the declarations whose receiver matches.
func IndexFor(decls []Declaration, receiver string) Index {
	idx := make(Index)
	for _, decl := range decls {
		if decl.Receiver != receiver {
			continue
		}
		if _, ok := idx[decl.Name]; !ok {
			idx[decl.Name] = decl
		}
	}
	return idx
}

// Has reports whether name is already declared.
func (idx Index) Has(name string) bool {
	_, ok := idx[name]
	return ok
}
