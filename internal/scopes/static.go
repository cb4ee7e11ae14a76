package scopes

import "github.com/orizon-lang/walrus-infer/internal/hir"

// StaticScopes is a minimal, in-memory Scopes built by explicitly binding
// each name occurrence that should resolve to something other than a
// builtin. It is not a name resolver — it performs no scoping, shadowing,
// or traversal of its own — and exists solely so this module's own test
// suite can exercise the inference core without depending on a real
// resolver living outside this module.
type StaticScopes struct {
	data *hir.ModuleData

	exprAt map[exprKey]Denotation
	typeAt map[typeKey]Denotation
}

type exprKey struct {
	site hir.ExprID
	name hir.NameID
}

type typeKey struct {
	site hir.TypeExprID
	name hir.NameID
}

// NewStaticScopes builds an empty StaticScopes over data, used to resolve
// builtins by looking up a name occurrence's text.
func NewStaticScopes(data *hir.ModuleData) *StaticScopes {
	return &StaticScopes{
		data:   data,
		exprAt: map[exprKey]Denotation{},
		typeAt: map[typeKey]Denotation{},
	}
}

// BindExpr records that name, used at site in expression position,
// denotes d.
func (s *StaticScopes) BindExpr(site hir.ExprID, name hir.NameID, d Denotation) {
	s.exprAt[exprKey{site, name}] = d
}

// BindType records that name, used at site in a type annotation, denotes d.
func (s *StaticScopes) BindType(site hir.TypeExprID, name hir.NameID, d Denotation) {
	s.typeAt[typeKey{site, name}] = d
}

func (s *StaticScopes) LookupExpr(site hir.ExprID, name hir.NameID) (Denotation, bool) {
	if d, ok := s.exprAt[exprKey{site, name}]; ok {
		return d, true
	}
	if b, ok := LookupBuiltinByName(s.data.Names.Get(name).Text); ok && b.Kind() == BuiltinValue {
		return Denotation{Kind: DenotationBuiltin, Builtin: b}, true
	}
	return Denotation{}, false
}

func (s *StaticScopes) LookupType(site hir.TypeExprID, name hir.NameID) (Denotation, bool) {
	if d, ok := s.typeAt[typeKey{site, name}]; ok {
		return d, true
	}
	if b, ok := LookupBuiltinByName(s.data.Names.Get(name).Text); ok && b.Kind() == BuiltinType {
		return Denotation{Kind: DenotationBuiltin, Builtin: b}, true
	}
	return Denotation{}, false
}
