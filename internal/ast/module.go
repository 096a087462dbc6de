package ast

// ImportItem is one named import binding: `import { Alias as LocalName }`.
// A default import has Alias == "default"; a namespace import has
// Alias == "*".
type ImportItem struct {
	Alias     string
	LocalName Ref
	Loc       Loc
}

type SImport struct {
	Source string
	Items  []ImportItem
}

// SVarDecl is a top-level (or nested, for the evaluator's identifier
// lookup) variable declaration. Value is nil for declarations without an
// initializer (`let x;`).
type SVarDecl struct {
	Ref   Ref
	Value *Expr
}

// TopLevelKind tags a module-level expression position: a bare statement,
// a named export, or a default export.
type TopLevelKind uint8

const (
	TopLevelStmt TopLevelKind = iota
	TopLevelNamedExport
	TopLevelDefaultExport
)

// TopLevelExpr is a rewritable position in the module body. Ptr lets the
// driver substitute a new Expr in place without the host needing to
// reconstruct surrounding statement scaffolding.
type TopLevelExpr struct {
	Kind TopLevelKind
	Name string // export name, populated when Kind == TopLevelNamedExport
	Ptr  *Expr
}

// Module is the root the driver walks. A real host AST carries much more
// (comments, source maps, JSX, ...); this is the reduced shape the core
// actually touches.
type Module struct {
	Imports      []SImport
	VarDecls     []SVarDecl
	TopLevel     []TopLevelExpr
	Path         string
	PrependItems []ModuleItem
}

// ModuleItem is a module-level statement the driver queues for
// prepending: the injection queue materializes into module-level import
// and variable statements prepended to the module body.
type ModuleItem interface{ isModuleItem() }

type PrependImport struct {
	Source string
	Items  []ImportItem
}

type PrependVarDecl struct {
	Ref   Ref
	Value Expr
}

func (PrependImport) isModuleItem()  {}
func (PrependVarDecl) isModuleItem() {}
