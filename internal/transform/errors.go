package transform

import (
	"github.com/atomicss/atomicss/internal/ast"
	"github.com/atomicss/atomicss/internal/diag"
)

// Thunk.Invoke's (Value, bool) shape has no room for a structured reason,
// so a rewrite that deopts stashes the diagnostic it would have reported
// here; the driver recovers it after evalCall reports a fatal deopt on a
// tracked library call, instead of falling back to a generic
// NonStaticValue diagnostic.
func (c *Context) fail(d *diag.Diagnostic) bool {
	c.lastError = d
	return false
}

func (c *Context) failf(kind diag.Kind, format string, args ...any) bool {
	return c.fail(diag.New(kind, ast.Range{}, format, args...))
}

// LastError returns (and clears) the most recently stashed diagnostic.
func (c *Context) LastError() *diag.Diagnostic {
	d := c.lastError
	c.lastError = nil
	return d
}
