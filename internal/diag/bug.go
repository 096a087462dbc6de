package diag

import (
	"fmt"

	"github.com/atomicss/atomicss/internal/ast"
	"github.com/atomicss/atomicss/internal/helpers"
)

// Recover turns a recovered panic into a *Diagnostic carrying a captured,
// de-noised stack trace (grounded on
// evanw-esbuild/internal/helpers/stack.go's PrettyPrintedStack). It never
// returns nil: a diagnostic is always produced because the caller only
// invokes this from inside `recover()`.
func Recover(r any) *Diagnostic {
	return &Diagnostic{
		Kind:    Bug,
		Message: fmt.Sprintf("internal error: %v\n%s", r, helpers.PrettyPrintedStack()),
		Range:   ast.Range{},
	}
}
