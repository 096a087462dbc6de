// Package diag carries the transformer's diagnostics. The shape (a message
// plus a source Range) is grounded on evanw-esbuild/internal/logger's
// Msg/Loc/Range, trimmed of that package's terminal color rendering and
// summary tables, which belong to an out-of-scope CLI surface.
package diag

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/atomicss/atomicss/internal/ast"
)

// Kind is one of the four fatal error categories the transform can raise.
// There is no warning level: every diagnostic aborts the module.
type Kind uint8

const (
	// NonStaticValue: the evaluator could not reduce an expression it was
	// required to reduce.
	NonStaticValue Kind = iota
	// IllegalArgument: wrong arity, wrong kind, duplicate condition,
	// unknown imported symbol, unbound usage of a tracked function.
	IllegalArgument
	// IllegalValue: a non-string/number/boolean/array leaf value, or an
	// array containing a non-literal.
	IllegalValue
	// Unresolved: module resolution returned false where a resolution was
	// required.
	Unresolved
	// Bug is the ambient recovery path's bucket for an unexpected internal
	// panic (see pkg/api.Transform), not a user-facing error category.
	Bug
)

func (k Kind) String() string {
	switch k {
	case NonStaticValue:
		return "NonStaticValue"
	case IllegalArgument:
		return "IllegalArgument"
	case IllegalValue:
		return "IllegalValue"
	case Unresolved:
		return "Unresolved"
	case Bug:
		return "Bug"
	default:
		return "Unknown"
	}
}

// Diagnostic is a fatal, located error. It implements `error` so it can be
// returned and wrapped like any other Go error, while still carrying enough
// structure for a host to render a caret under the offending source range.
type Diagnostic struct {
	Kind    Kind
	Range   ast.Range
	Message string
	cause   error
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// Unwrap lets errors.Cause / errors.Is / errors.As reach the underlying
// cause, when one was attached with Wrap.
func (d *Diagnostic) Unwrap() error { return d.cause }

func New(kind Kind, r ast.Range, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: kind, Range: r, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches an underlying cause (e.g. a module-resolution I/O error)
// using github.com/pkg/errors so the original stack is preserved.
func Wrap(kind Kind, r ast.Range, cause error, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Kind:    kind,
		Range:   r,
		Message: fmt.Sprintf(format, args...),
		cause:   errors.WithStack(cause),
	}
}

// AtExpr builds a Diagnostic located at an expression's Loc with zero
// length, the common case for evaluator deopt reporting.
func AtExpr(kind Kind, e ast.Expr, format string, args ...any) *Diagnostic {
	return New(kind, ast.Range{Loc: e.Loc}, format, args...)
}
