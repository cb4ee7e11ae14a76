package infer

import (
	"github.com/orizon-lang/walrus-infer/internal/hir"
	"github.com/orizon-lang/walrus-infer/internal/types"
)

func litType(l hir.Lit) types.Type {
	switch l.Kind {
	case hir.LitBool:
		return types.Bool()
	case hir.LitInt:
		return types.Int()
	case hir.LitFloat:
		return types.Float()
	case hir.LitChar:
		return types.Char()
	default:
		return types.Unknown()
	}
}

func unopLHSExpectation(op hir.UnOp) types.Type {
	if op == hir.UnNot {
		return types.Bool()
	}
	return types.Unknown()
}

func unopReturnType(op hir.UnOp, lhsType types.Type) types.Type {
	if op == hir.UnNot {
		return types.Bool()
	}
	return lhsType
}

func binopLHSExpectation(op hir.BinOp) types.Type {
	if op.IsLazy() {
		return types.Bool()
	}
	return types.Unknown()
}

// binopRHSExpectation mirrors the original's rule table exactly:
// arithmetic, comparison, and assignment all expect the RHS to match
// whatever the LHS turned out to be, while lazy-boolean ops pin both
// sides to Bool regardless of what the LHS synthesized.
func binopRHSExpectation(op hir.BinOp, lhsType types.Type) types.Type {
	if op.IsLazy() {
		return types.Bool()
	}
	return lhsType
}

func binopReturnType(op hir.BinOp, lhsType types.Type) types.Type {
	switch {
	case op.IsLazy():
		return types.Bool()
	case op.IsComparison():
		return types.Bool()
	case op == hir.BinAssign:
		return types.Unit()
	default:
		return lhsType
	}
}
