// Package libsat is a thin convenience wrapper over satparse: a context
// constructor and a one-call parse function for callers who don't need the
// scanner/parser internals directly.
package libsat

import "github.com/nanolith/libsat-go/satparse"

// NewContext creates an empty interning context.
func NewContext() *satparse.Context {
	return satparse.NewContext()
}

// Parse tokenizes and parses input against context, returning the root
// Statement node of the resulting AST.
func Parse(context *satparse.Context, input string) (*satparse.StatementNode, error) {
	return satparse.Parse(context, input)
}

// ParseError re-exports satparse.Error so callers can type-assert or
// errors.As against it without importing satparse directly.
type ParseError = satparse.Error
