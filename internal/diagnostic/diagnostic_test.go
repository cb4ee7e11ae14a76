package diagnostic

import (
	"strings"
	"testing"

	"github.com/orizon-lang/walrus-infer/internal/hir"
	"github.com/orizon-lang/walrus-infer/internal/types"
)

func TestKindStringCoversEveryVariant(t *testing.T) {
	for k := UnboundVar; k <= NoSuchVariant; k++ {
		if got := k.String(); got == "Unknown" {
			t.Errorf("Kind(%d).String() = %q, want a named variant", int(k), got)
		}
	}
}

func TestSiteConstructors(t *testing.T) {
	exprSite := ExprSite(hir.ExprID(1))
	if exprSite.Kind != SiteExpr || exprSite.Expr != hir.ExprID(1) {
		t.Errorf("ExprSite() = %+v", exprSite)
	}

	patSite := PatSite(hir.PatID(2))
	if patSite.Kind != SitePat || patSite.Pat != hir.PatID(2) {
		t.Errorf("PatSite() = %+v", patSite)
	}

	typeSite := TypeSite(hir.TypeExprID(3))
	if typeSite.Kind != SiteType || typeSite.Type != hir.TypeExprID(3) {
		t.Errorf("TypeSite() = %+v", typeSite)
	}
}

func TestNewTypeMismatchString(t *testing.T) {
	d := NewTypeMismatch(ExprSite(hir.ExprID(0)), types.Int(), types.Bool())
	if d.Kind != TypeMismatch {
		t.Errorf("Kind = %v, want TypeMismatch", d.Kind)
	}
	s := d.String()
	if !strings.Contains(s, "Int") || !strings.Contains(s, "Bool") {
		t.Errorf("String() = %q, want it to mention both types", s)
	}
}

func TestNewUnboundVarNilDenotation(t *testing.T) {
	d := NewUnboundVar(ExprSite(hir.ExprID(0)), hir.NameID(0), nil)
	if d.Denotation != nil {
		t.Errorf("Denotation = %v, want nil", d.Denotation)
	}
}

func TestNoSuchFieldConstructorsSetFieldRefKind(t *testing.T) {
	named := NewNoSuchFieldNamed(hir.ExprID(0), hir.Field{Kind: hir.FieldNamed}, nil)
	if named.PossibleFields.Kind != FieldRefNamed {
		t.Errorf("NewNoSuchFieldNamed PossibleFields.Kind = %v, want FieldRefNamed", named.PossibleFields.Kind)
	}

	tup := NewNoSuchFieldTuple(hir.ExprID(0), hir.Field{Kind: hir.FieldTuple}, 2)
	if tup.PossibleFields.Kind != FieldRefTupleArity || tup.PossibleFields.Arity != 2 {
		t.Errorf("NewNoSuchFieldTuple PossibleFields = %+v", tup.PossibleFields)
	}
}
