// Package scopes defines the name-resolution collaborator the inference
// core consumes: Scopes answers "what does this name, used at this site,
// denote?" for every variable reference, type reference, struct name, and
// enum name encountered while walking a module. A real resolver
// implementing Scopes lives outside this module entirely — this package
// only describes the interface and the builtin environment every such
// resolver must expose, plus a minimal in-memory implementation used by
// this module's own tests.
package scopes

import "github.com/orizon-lang/walrus-infer/internal/types"

// BuiltinKind discriminates a type-level builtin (Bool, Int, ...) from a
// value-level one (exit).
type BuiltinKind int

const (
	BuiltinType BuiltinKind = iota
	BuiltinValue
)

// Builtin enumerates every name the language predefines without a
// declaration in the module itself.
type Builtin int

const (
	BuiltinBool Builtin = iota
	BuiltinInt
	BuiltinFloat
	BuiltinChar
	BuiltinNever
	BuiltinExit
)

// Name returns the identifier a resolver matches source text against.
func (b Builtin) Name() string {
	switch b {
	case BuiltinBool:
		return "Bool"
	case BuiltinInt:
		return "Int"
	case BuiltinFloat:
		return "Float"
	case BuiltinChar:
		return "Char"
	case BuiltinNever:
		return "Never"
	case BuiltinExit:
		return "exit"
	default:
		return ""
	}
}

// Kind reports whether b is usable as a type or as a value.
func (b Builtin) Kind() BuiltinKind {
	if b == BuiltinExit {
		return BuiltinValue
	}
	return BuiltinType
}

// Type returns b's semantic type: itself, for the type-level builtins, or
// its signature, for the value-level ones.
func (b Builtin) Type() types.Type {
	switch b {
	case BuiltinBool:
		return types.Bool()
	case BuiltinInt:
		return types.Int()
	case BuiltinFloat:
		return types.Float()
	case BuiltinChar:
		return types.Char()
	case BuiltinNever:
		return types.Never()
	case BuiltinExit:
		return types.Function([]types.Type{types.Int()}, types.Never())
	default:
		return types.Unknown()
	}
}

// AllBuiltins lists every builtin, in declaration order.
func AllBuiltins() []Builtin {
	return []Builtin{BuiltinBool, BuiltinInt, BuiltinFloat, BuiltinChar, BuiltinNever, BuiltinExit}
}

// LookupBuiltinByName finds the builtin matching name, if any.
func LookupBuiltinByName(name string) (Builtin, bool) {
	for _, b := range AllBuiltins() {
		if b.Name() == name {
			return b, true
		}
	}
	return 0, false
}
