// Package hir is the resolved high-level intermediate representation
// consumed by the inference core. It is produced by a name resolver that
// lives outside this module: every Name a binder introduces and every Var
// reference a use site makes has already been assigned a stable handle,
// and ambiguous or unbound names have already been reported by whatever
// produced this tree. The inference core only adds types; it never
// resolves names itself (that is package scopes's job, consumed here
// through an interface).
package hir

import (
	"github.com/orizon-lang/walrus-infer/internal/arena"
	"github.com/orizon-lang/walrus-infer/internal/position"
)

// Name is one occurrence of an identifier: a binder (a let pattern, a
// struct field, a function parameter) or a use site (a variable
// reference, a type name, a field selector). Two occurrences of the same
// source identifier get two distinct Name nodes — resolution is carried
// by Scopes, not by interning text here.
type Name struct {
	Text string
}

func (n Name) String() string { return n.Text }

// Handle aliases for every arena this package owns.
type (
	NameID      = arena.Handle[Name]
	FnDefID     = arena.Handle[FnDef]
	ExprID      = arena.Handle[Expr]
	TypeExprID  = arena.Handle[TypeExpr]
	PatID       = arena.Handle[Pat]
	StructDefID = arena.Handle[StructDef]
	EnumDefID   = arena.Handle[EnumDef]
)

// DeclKind discriminates the three kinds of top-level declaration a
// module may contain.
type DeclKind int

const (
	DeclFn DeclKind = iota
	DeclStruct
	DeclEnum
)

func (k DeclKind) String() string {
	switch k {
	case DeclFn:
		return "fn"
	case DeclStruct:
		return "struct"
	case DeclEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Decl is a tagged reference to one top-level declaration. Only the field
// matching Kind is meaningful.
type Decl struct {
	Kind   DeclKind
	Fn     FnDefID
	Struct StructDefID
	Enum   EnumDefID
}

// Param is one function or lambda parameter: a binding pattern with an
// optional explicit type annotation.
type Param struct {
	Pat PatID
	Ty  *TypeExprID
}

// FnDef is a function declaration. Body is the single expression that is
// the function's body — source-level block bodies are represented as a
// Block expression, same as anywhere else an expression is expected.
type FnDef struct {
	Name    NameID
	Params  []Param
	RetType *TypeExprID
	Body    ExprID
}

// StructField is one field of a struct declaration, or one field of an
// enum variant's payload.
type StructField struct {
	Name NameID
	Ty   TypeExprID
}

// StructDef is a struct declaration.
type StructDef struct {
	Name   NameID
	Fields []StructField
}

// EnumVariant is one variant of an enum declaration, carrying its own
// field list (a struct-like payload; an empty Fields slice is a
// unit variant).
type EnumVariant struct {
	Name   NameID
	Fields []StructField
}

// EnumDef is an enum declaration.
type EnumDef struct {
	Name     NameID
	Variants []EnumVariant
}

// FieldInit is one `name: value` initializer inside a struct or enum
// literal expression.
type FieldInit struct {
	Name NameID
	Val  ExprID
}

// ModuleData owns every arena backing a module's declarations,
// expressions, patterns, type expressions, and names.
type ModuleData struct {
	Names   arena.Arena[Name]
	FnDefs  arena.Arena[FnDef]
	Exprs   arena.Arena[Expr]
	Types   arena.Arena[TypeExpr]
	Pats    arena.Arena[Pat]
	Structs arena.Arena[StructDef]
	Enums   arena.Arena[EnumDef]
}

// ModuleSource maps handles back to the concrete-syntax span they were
// parsed from, purely for provenance. The inference core never reads
// these maps; they exist so a driver can turn a Diagnostic's handle back
// into a source location.
type ModuleSource struct {
	FnDefs arena.ArenaMap[FnDef, position.Span]
	Exprs  arena.ArenaMap[Expr, position.Span]
	Types  arena.ArenaMap[TypeExpr, position.Span]
	Pats   arena.ArenaMap[Pat, position.Span]
}

// PreludeDiagnostic is an opaque diagnostic produced by an earlier pass
// (parsing, name resolution) and carried alongside the module purely for
// a driver to render together with inference's own diagnostics. Inference
// never reads this list.
type PreludeDiagnostic struct {
	Message string
	Span    position.Span
}

// Module is the complete resolved input to inference: the declaration
// order, their backing storage, provenance, and any diagnostics accrued
// before inference ran.
type Module struct {
	Decls       []Decl
	Data        ModuleData
	Source      ModuleSource
	Diagnostics []PreludeDiagnostic
}
