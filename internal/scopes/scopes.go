package scopes

import "github.com/orizon-lang/walrus-infer/internal/hir"

// DenotationKind discriminates what a resolved name refers to.
type DenotationKind int

const (
	DenotationLocal DenotationKind = iota
	DenotationFn
	DenotationStruct
	DenotationEnum
	DenotationBuiltin
)

func (k DenotationKind) String() string {
	switch k {
	case DenotationLocal:
		return "local"
	case DenotationFn:
		return "fn"
	case DenotationStruct:
		return "struct"
	case DenotationEnum:
		return "enum"
	case DenotationBuiltin:
		return "builtin"
	default:
		return "unknown"
	}
}

// Denotation is what a name resolves to. Only the field matching Kind is
// meaningful.
type Denotation struct {
	Kind DenotationKind

	Pat     hir.PatID     // DenotationLocal
	Fn      hir.FnDefID   // DenotationFn
	Struct  hir.StructDefID // DenotationStruct
	Enum    hir.EnumDefID   // DenotationEnum
	Builtin Builtin         // DenotationBuiltin
}

// Scopes is the name-resolution collaborator the inference core consumes.
// Every lookup is keyed by both the use site and the name occurrence at
// that site, since the same name text may denote different things at
// different points in the program (shadowing).
type Scopes interface {
	// LookupExpr resolves a name occurring in expression position: a
	// variable reference, or the struct/enum name of a struct/enum
	// literal (both are "what does this identifier, used here, denote"
	// questions over the expression arena).
	LookupExpr(site hir.ExprID, name hir.NameID) (Denotation, bool)

	// LookupType resolves a name occurring in a type annotation.
	LookupType(site hir.TypeExprID, name hir.NameID) (Denotation, bool)
}
