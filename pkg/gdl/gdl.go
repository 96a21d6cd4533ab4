package gdl

import (
	"github.com/gsingh93/gdl-parser/pkg/gdl/ast"
	"github.com/gsingh93/gdl-parser/pkg/gdl/parser"
)

// Parse parses a GDL game description from source text.
func Parse(source string) (*ast.Description, error) {
	return parser.NewParser().Parse(source)
}

// ParseFile parses a GDL game description read from a file.
func ParseFile(path string) (*ast.Description, error) {
	return parser.NewParser().ParseFile(path)
}

// MustParse parses a GDL game description and panics on failure. It is a
// convenience for tests and fixtures with known-good input; production code
// should use Parse and handle the error.
func MustParse(source string) *ast.Description {
	desc, err := Parse(source)
	if err != nil {
		panic(err)
	}
	return desc
}

// Render returns the canonical textual form of a description. It is
// equivalent to desc.String and exists for symmetry with Parse.
func Render(desc *ast.Description) string {
	return desc.String()
}
