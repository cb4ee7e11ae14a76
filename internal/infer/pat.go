package infer

import (
	"github.com/orizon-lang/walrus-infer/internal/diagnostic"
	"github.com/orizon-lang/walrus-infer/internal/hir"
	"github.com/orizon-lang/walrus-infer/internal/types"
)

// inferPat mirrors inferExpr for patterns: a variable or ignore pattern
// simply takes on the expected type, since binding introduces no
// information of its own, while a tuple pattern destructures expected
// element-wise and resynthesizes its own tuple type from its subpatterns.
func (c *Ctx) inferPat(expected types.Type, id hir.PatID) types.Type {
	p := c.module.Data.Pats.Get(id)
	c.trace("pat %d (%s) expected=%s", id.Index(), p.Kind, expected.String())

	var ty types.Type
	switch p.Kind {
	case hir.PatVar, hir.PatIgnore:
		ty = expected
	case hir.PatTuple:
		expectedElems, _ := expected.AsTuple()
		tys := make([]types.Type, len(p.Elems))
		for i, sub := range p.Elems {
			want := types.Unknown()
			if i < len(expectedElems) {
				want = expectedElems[i]
			}
			tys[i] = c.inferPat(want, sub)
		}
		ty = types.Tuple(tys)
	default:
		ty = types.Unknown()
	}

	ty = c.table.DeepBestEffort(ty)
	c.result.PatTypes.Insert(id, ty)
	return c.tryToUnifyAndPropagate(diagnostic.PatSite(id), expected, ty)
}

// inferBinding elaborates a `pat [: ty] [= expr]` binding — a let
// statement, or a function/lambda parameter (whose expr is always nil):
// resolve the annotation if present (else allocate a fresh variable so
// the binding can still be unified against later use), elaborate expr
// against it if present, then infer the pattern against whatever type
// resulted.
func (c *Ctx) inferBinding(pat hir.PatID, ty *hir.TypeExprID, expr *hir.ExprID) types.Type {
	var annType types.Type
	if ty != nil {
		annType = c.resolveType(*ty)
	} else {
		annType = c.table.NewVarType()
	}

	exprType := annType
	if expr != nil {
		exprType = c.inferExpr(annType, *expr)
	}
	exprType = c.table.DeepBestEffort(exprType)

	return c.inferPat(exprType, pat)
}
