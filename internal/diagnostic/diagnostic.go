// Package diagnostic defines the diagnostics the inference core emits.
// These are data, never Go errors: a Diagnostic describes a fault found
// in the program text being type-checked, not a fault in this module's
// own operation, so it is accumulated into a list rather than returned or
// panicked. Inference always keeps going after recording one.
package diagnostic

import (
	"fmt"

	"github.com/orizon-lang/walrus-infer/internal/hir"
	"github.com/orizon-lang/walrus-infer/internal/scopes"
	"github.com/orizon-lang/walrus-infer/internal/types"
)

// Kind discriminates the variant of Diagnostic.
type Kind int

const (
	UnboundVar Kind = iota
	TypeMismatch
	InferenceFail
	IfBranchMismatch
	CalledNonFn
	ArgCountMismatch
	NoSuchField
	MissingField
	NoFields
	NotLValue
	CannotApplyBinop
	ReturnNotInFn
	BreakNotInLoop
	DuplicateFieldInit
	NoSuchVariant
)

func (k Kind) String() string {
	names := [...]string{
		"UnboundVar", "TypeMismatch", "InferenceFail", "IfBranchMismatch",
		"CalledNonFn", "ArgCountMismatch", "NoSuchField", "MissingField",
		"NoFields", "NotLValue", "CannotApplyBinop", "ReturnNotInFn",
		"BreakNotInLoop", "DuplicateFieldInit", "NoSuchVariant",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return "Unknown"
	}
	return names[k]
}

// SiteKind discriminates which arena a Site's handle belongs to.
type SiteKind int

const (
	SiteExpr SiteKind = iota
	SitePat
	SiteType
)

// Site names the HIR node a diagnostic is attached to. Many faults can be
// found while inferring an expression, a pattern, or a type annotation
// alike, so Site is a small tagged union over the three handle types
// rather than three near-duplicate diagnostic fields.
type Site struct {
	Kind SiteKind
	Expr hir.ExprID
	Pat  hir.PatID
	Type hir.TypeExprID
}

func ExprSite(id hir.ExprID) Site     { return Site{Kind: SiteExpr, Expr: id} }
func PatSite(id hir.PatID) Site       { return Site{Kind: SitePat, Pat: id} }
func TypeSite(id hir.TypeExprID) Site { return Site{Kind: SiteType, Type: id} }

// FieldRefKind discriminates what FieldRef describes.
type FieldRefKind int

const (
	FieldRefNamed FieldRefKind = iota
	FieldRefTupleArity
)

// FieldRef describes the fields that were actually available at a failed
// field access: either a named field list (struct or enum variant) or a
// tuple's arity.
type FieldRef struct {
	Kind   FieldRefKind
	Fields []hir.StructField
	Arity  uint32
}

// Diagnostic is one fault found while inferring a module. Only the
// fields relevant to Kind are meaningful; this mirrors the flat
// tagged-struct shape used for every other sum type in this module.
type Diagnostic struct {
	Kind Kind

	// UnboundVar
	Site       Site
	Var        hir.NameID
	Denotation *scopes.Denotation // non-nil if the name resolved, but not usably in this position

	// TypeMismatch, IfBranchMismatch's ThenType/ElseType reuse Expected/Got
	Expected types.Type
	Got      types.Type

	// IfBranchMismatch
	ThenBranch hir.ExprID
	ElseBranch hir.ExprID

	// CalledNonFn, ArgCountMismatch
	CallExpr    hir.ExprID
	CalleeType  types.Type
	ArgExpected int
	ArgGot      int

	// NoSuchField, MissingField, NoFields
	BaseExpr       hir.ExprID
	Field          hir.Field
	PossibleFields FieldRef
	BaseType       types.Type

	// NotLValue
	LHS hir.ExprID

	// CannotApplyBinop
	LHSType types.Type
	RHSType types.Type
	Op      hir.BinOp

	// DuplicateFieldInit
	FirstInit hir.ExprID
	DupInit   hir.ExprID

	// NoSuchVariant
	EnumExpr    hir.ExprID
	VariantName hir.NameID
}

func NewUnboundVar(site Site, name hir.NameID, den *scopes.Denotation) Diagnostic {
	return Diagnostic{Kind: UnboundVar, Site: site, Var: name, Denotation: den}
}

func NewTypeMismatch(site Site, expected, got types.Type) Diagnostic {
	return Diagnostic{Kind: TypeMismatch, Site: site, Expected: expected, Got: got}
}

func NewInferenceFail(site Site) Diagnostic {
	return Diagnostic{Kind: InferenceFail, Site: site}
}

func NewIfBranchMismatch(then, els hir.ExprID, thenType, elseType types.Type) Diagnostic {
	return Diagnostic{Kind: IfBranchMismatch, ThenBranch: then, ElseBranch: els, Expected: thenType, Got: elseType}
}

func NewCalledNonFn(call hir.ExprID, calleeType types.Type) Diagnostic {
	return Diagnostic{Kind: CalledNonFn, CallExpr: call, CalleeType: calleeType}
}

func NewArgCountMismatch(call hir.ExprID, calleeType types.Type, expected, got int) Diagnostic {
	return Diagnostic{Kind: ArgCountMismatch, CallExpr: call, CalleeType: calleeType, ArgExpected: expected, ArgGot: got}
}

func NewNoSuchFieldNamed(base hir.ExprID, field hir.Field, fields []hir.StructField) Diagnostic {
	return Diagnostic{Kind: NoSuchField, BaseExpr: base, Field: field, PossibleFields: FieldRef{Kind: FieldRefNamed, Fields: fields}}
}

func NewNoSuchFieldTuple(base hir.ExprID, field hir.Field, arity uint32) Diagnostic {
	return Diagnostic{Kind: NoSuchField, BaseExpr: base, Field: field, PossibleFields: FieldRef{Kind: FieldRefTupleArity, Arity: arity}}
}

func NewMissingField(base hir.ExprID, field hir.Field) Diagnostic {
	return Diagnostic{Kind: MissingField, BaseExpr: base, Field: field}
}

func NewNoFields(base hir.ExprID, baseType types.Type) Diagnostic {
	return Diagnostic{Kind: NoFields, BaseExpr: base, BaseType: baseType}
}

func NewNotLValue(lhs hir.ExprID) Diagnostic {
	return Diagnostic{Kind: NotLValue, LHS: lhs}
}

func NewCannotApplyBinop(lhsType, rhsType types.Type, op hir.BinOp) Diagnostic {
	return Diagnostic{Kind: CannotApplyBinop, LHSType: lhsType, RHSType: rhsType, Op: op}
}

func NewReturnNotInFn(site hir.ExprID) Diagnostic {
	return Diagnostic{Kind: ReturnNotInFn, Site: ExprSite(site)}
}

func NewBreakNotInLoop(site hir.ExprID) Diagnostic {
	return Diagnostic{Kind: BreakNotInLoop, Site: ExprSite(site)}
}

func NewDuplicateFieldInit(first, dup hir.ExprID) Diagnostic {
	return Diagnostic{Kind: DuplicateFieldInit, FirstInit: first, DupInit: dup}
}

func NewNoSuchVariant(enumExpr hir.ExprID, variant hir.NameID) Diagnostic {
	return Diagnostic{Kind: NoSuchVariant, EnumExpr: enumExpr, VariantName: variant}
}

// String renders a short, human-readable summary. There is no diagnostic
// renderer in this module beyond this — turning a Diagnostic into
// source-anchored, user-facing text is a driver's job, not the core's.
func (d Diagnostic) String() string {
	switch d.Kind {
	case TypeMismatch:
		return fmt.Sprintf("TypeMismatch: expected %s, got %s", d.Expected, d.Got)
	case IfBranchMismatch:
		return fmt.Sprintf("IfBranchMismatch: then %s, else %s", d.Expected, d.Got)
	case CannotApplyBinop:
		return fmt.Sprintf("CannotApplyBinop: %s %s %s", d.LHSType, d.Op, d.RHSType)
	case ArgCountMismatch:
		return fmt.Sprintf("ArgCountMismatch: expected %d args, got %d", d.ArgExpected, d.ArgGot)
	default:
		return d.Kind.String()
	}
}
