// Package types is the semantic type system this module infers:
// monomorphic types built from a fixed set of constructors, a type
// variable kind used only while a type is still being solved, and an
// Unknown kind that stands for "inference gave up here" without itself
// being a constructor applied to anything.
//
// There is deliberately no notion of a type scheme or generalization —
// every binding gets exactly one monomorphic type, same as the language
// this models.
package types

import (
	"fmt"
	"strings"

	"github.com/orizon-lang/walrus-infer/internal/hir"
)

// Ctor is a nullary or applied type constructor.
type Ctor int

const (
	CtorBool Ctor = iota
	CtorInt
	CtorFloat
	CtorChar
	CtorUnit
	CtorNever
	CtorTuple
	CtorFn
	CtorStruct
	CtorEnum
)

func (c Ctor) String() string {
	switch c {
	case CtorBool:
		return "Bool"
	case CtorInt:
		return "Int"
	case CtorFloat:
		return "Float"
	case CtorChar:
		return "Char"
	case CtorUnit:
		return "Unit"
	case CtorNever:
		return "Never"
	case CtorTuple:
		return "Tuple"
	case CtorFn:
		return "Fn"
	case CtorStruct:
		return "Struct"
	case CtorEnum:
		return "Enum"
	default:
		return "?"
	}
}

// Kind discriminates the three shapes a Type value can take.
type Kind int

const (
	KindApp     Kind = iota // a constructor applied to zero or more Type params
	KindInfer               // an as-yet-unsolved type variable
	KindUnknown             // the error type: absorbs everything, blamed nowhere
)

// VarID names a slot in a Table.
type VarID uint32

// Type is the semantic type of an expression, pattern, or declaration.
// Only the fields relevant to Kind (and, within KindApp, to Ctor) are
// meaningful.
type Type struct {
	Kind Kind

	Ctor     Ctor // KindApp
	Params   []Type // KindApp: Tuple elements, or Fn params with Ret appended last
	StructID hir.StructDefID // KindApp, Ctor == CtorStruct
	EnumID   hir.EnumDefID   // KindApp, Ctor == CtorEnum

	Var VarID // KindInfer
}

func Bool() Type    { return Type{Kind: KindApp, Ctor: CtorBool} }
func Int() Type     { return Type{Kind: KindApp, Ctor: CtorInt} }
func Float() Type   { return Type{Kind: KindApp, Ctor: CtorFloat} }
func Char() Type    { return Type{Kind: KindApp, Ctor: CtorChar} }
func Unit() Type    { return Type{Kind: KindApp, Ctor: CtorUnit} }
func Never() Type   { return Type{Kind: KindApp, Ctor: CtorNever} }
func Unknown() Type { return Type{Kind: KindUnknown} }

func Infer(v VarID) Type { return Type{Kind: KindInfer, Var: v} }

func Tuple(elems []Type) Type {
	return Type{Kind: KindApp, Ctor: CtorTuple, Params: elems}
}

func Struct(id hir.StructDefID) Type {
	return Type{Kind: KindApp, Ctor: CtorStruct, StructID: id}
}

func Enum(id hir.EnumDefID) Type {
	return Type{Kind: KindApp, Ctor: CtorEnum, EnumID: id}
}

// Function builds a Fn type from its parameter types and return type.
func Function(params []Type, ret Type) Type {
	all := make([]Type, 0, len(params)+1)
	all = append(all, params...)
	all = append(all, ret)
	return Type{Kind: KindApp, Ctor: CtorFn, Params: all}
}

// FnType is Function's unpacked form, convenient for passing a function's
// signature around without re-deriving params/ret from a Type each time.
type FnType struct {
	Params []Type
	Ret    Type
}

// Type packs f back into its Type representation.
func (f FnType) Type() Type { return Function(f.Params, f.Ret) }

// AsFn unpacks t into params/ret if it is a Fn-constructed type.
func (t Type) AsFn() (FnType, bool) {
	if t.Kind != KindApp || t.Ctor != CtorFn || len(t.Params) == 0 {
		return FnType{}, false
	}
	n := len(t.Params)
	return FnType{Params: t.Params[:n-1], Ret: t.Params[n-1]}, true
}

// AsTuple unpacks t's element types if it is a Tuple-constructed type.
func (t Type) AsTuple() ([]Type, bool) {
	if t.Kind != KindApp || t.Ctor != CtorTuple {
		return nil, false
	}
	return t.Params, true
}

func (t Type) IsUnknown() bool { return t.Kind == KindUnknown }
func (t Type) IsNever() bool   { return t.Kind == KindApp && t.Ctor == CtorNever }

// Equals is structural equality. It does not consult a Table: two
// KindInfer types are equal only if they name the same variable, bound or
// not, so callers comparing post-finalization types (where no KindInfer
// value should remain) get the answer they expect, and callers comparing
// mid-inference types get variable identity rather than a false positive.
func (t Type) Equals(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KindUnknown:
		return true
	case KindInfer:
		return t.Var == other.Var
	case KindApp:
		if t.Ctor != other.Ctor {
			return false
		}
		switch t.Ctor {
		case CtorStruct:
			return t.StructID == other.StructID
		case CtorEnum:
			return t.EnumID == other.EnumID
		}
		if len(t.Params) != len(other.Params) {
			return false
		}
		for i := range t.Params {
			if !t.Params[i].Equals(other.Params[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (t Type) String() string {
	switch t.Kind {
	case KindUnknown:
		return "Unknown"
	case KindInfer:
		return fmt.Sprintf("?%d", t.Var)
	case KindApp:
		switch t.Ctor {
		case CtorStruct:
			return fmt.Sprintf("Struct#%d", t.StructID.Index())
		case CtorEnum:
			return fmt.Sprintf("Enum#%d", t.EnumID.Index())
		case CtorTuple:
			parts := make([]string, len(t.Params))
			for i, p := range t.Params {
				parts[i] = p.String()
			}
			return "(" + strings.Join(parts, ", ") + ")"
		case CtorFn:
			if fn, ok := t.AsFn(); ok {
				parts := make([]string, len(fn.Params))
				for i, p := range fn.Params {
					parts[i] = p.String()
				}
				return "(" + strings.Join(parts, ", ") + ") -> " + fn.Ret.String()
			}
			return "Fn"
		default:
			return t.Ctor.String()
		}
	default:
		return "?"
	}
}
