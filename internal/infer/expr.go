package infer

import (
	"github.com/orizon-lang/walrus-infer/internal/diagnostic"
	"github.com/orizon-lang/walrus-infer/internal/hir"
	"github.com/orizon-lang/walrus-infer/internal/scopes"
	"github.com/orizon-lang/walrus-infer/internal/types"
)

// inferExpr is the bidirectional entry point for every expression node:
// dispatch on the node's kind to synthesize a type, record that type
// (after a best-effort deep propagation) into ExprTypes, then reconcile
// the synthesized type against expected and return whichever of the two
// is more informative.
func (c *Ctx) inferExpr(expected types.Type, id hir.ExprID) types.Type {
	c.depth++
	defer func() { c.depth-- }()
	if c.cfg.MaxDepth > 0 && c.depth > c.cfg.MaxDepth {
		ty := types.Unknown()
		c.result.ExprTypes.Insert(id, ty)
		return ty
	}

	e := c.module.Data.Exprs.Get(id)
	c.trace("expr %d (%s) expected=%s", id.Index(), e.Kind, expected.String())

	var ty types.Type
	switch e.Kind {
	case hir.ExprLit:
		ty = litType(e.Lit)
	case hir.ExprVar:
		ty = c.resolveVarExpr(id, e.Var)
	case hir.ExprTuple:
		ty = c.inferTupleExpr(expected, e.Elems)
	case hir.ExprField:
		ty = c.inferFieldExpr(e.Base, e.FieldSel)
	case hir.ExprUnop:
		ty = c.inferUnopExpr(e.Op1, e.Operand)
	case hir.ExprBinop:
		ty = c.inferBinopExpr(e.Op2, e.LHS, e.RHS)
	case hir.ExprCall:
		ty = c.inferCallExpr(e.Func, e.Args)
	case hir.ExprBlock:
		ty = c.inferBlockExpr(expected, e.Block.Stmts, e.Block.Tail)
	case hir.ExprLoop:
		ty = c.inferLoopExpr(expected, e.LoopBody)
	case hir.ExprIf:
		ty = c.inferIfExpr(e.Test, e.Then, e.Else)
	case hir.ExprBreak:
		ty = c.inferBreakExpr(id, e.BreakVal)
	case hir.ExprReturn:
		ty = c.inferReturnExpr(id, e.ReturnVal)
	case hir.ExprContinue:
		ty = c.inferContinueExpr(id)
	case hir.ExprLambda:
		ty = c.inferLambdaExpr(expected, e.LambdaParams, e.LambdaBody)
	case hir.ExprStruct:
		ty = c.inferStructExpr(id, e.StructName, e.StructFields)
	case hir.ExprEnum:
		ty = c.inferEnumExpr(id, e.EnumName, e.EnumVariant, e.EnumFields)
	default:
		ty = types.Unknown()
	}

	ty = c.table.DeepBestEffort(ty)
	c.result.ExprTypes.Insert(id, ty)
	return c.tryToUnifyAndPropagate(diagnostic.ExprSite(id), expected, ty)
}

func (c *Ctx) resolveVarExpr(site hir.ExprID, name hir.NameID) types.Type {
	den, ok := c.scopes.LookupExpr(site, name)
	if ok {
		switch {
		case den.Kind == scopes.DenotationLocal:
			if t, ok2 := c.result.PatTypes.Get(den.Pat); ok2 {
				return t
			}
			return types.Unknown()
		case den.Kind == scopes.DenotationFn:
			if ft, ok2 := c.result.FnTypes.Get(den.Fn); ok2 {
				return ft.Type()
			}
			return types.Unknown()
		case den.Kind == scopes.DenotationBuiltin && den.Builtin.Kind() == scopes.BuiltinValue:
			return den.Builtin.Type()
		}
	}
	c.diag(diagnostic.NewUnboundVar(diagnostic.ExprSite(site), name, denotationPtr(den, ok)))
	return types.Unknown()
}

func (c *Ctx) inferTupleExpr(expected types.Type, elems []hir.ExprID) types.Type {
	expectedElems, _ := expected.AsTuple()
	tys := make([]types.Type, len(elems))
	for i, elem := range elems {
		want := types.Unknown()
		if i < len(expectedElems) {
			want = expectedElems[i]
		}
		tys[i] = c.inferExpr(want, elem)
	}
	return types.Tuple(tys)
}

func (c *Ctx) inferFieldExpr(baseID hir.ExprID, field hir.Field) types.Type {
	baseType := c.inferExpr(types.Unknown(), baseID)

	if elems, ok := baseType.AsTuple(); ok {
		if field.Kind == hir.FieldTuple && int(field.Index) < len(elems) {
			return elems[field.Index]
		}
		c.diag(diagnostic.NewNoSuchFieldTuple(baseID, field, uint32(len(elems))))
		return types.Unknown()
	}

	if baseType.Kind == types.KindApp && baseType.Ctor == types.CtorStruct {
		sd := c.module.Data.Structs.Get(baseType.StructID)
		if field.Kind == hir.FieldNamed {
			fieldText := c.module.Data.Names.Get(field.Name).Text
			for _, f := range sd.Fields {
				if c.module.Data.Names.Get(f.Name).Text == fieldText {
					return c.result.TypeTypes.MustGet(f.Ty)
				}
			}
		}
		c.diag(diagnostic.NewNoSuchFieldNamed(baseID, field, sd.Fields))
		return types.Unknown()
	}

	if baseType.IsUnknown() {
		return types.Unknown()
	}

	c.diag(diagnostic.NewNoFields(baseID, baseType))
	return types.Unknown()
}

func (c *Ctx) inferUnopExpr(op hir.UnOp, operand hir.ExprID) types.Type {
	lhsType := c.inferExpr(unopLHSExpectation(op), operand)
	return unopReturnType(op, lhsType)
}

func (c *Ctx) isLValue(id hir.ExprID) bool {
	e := c.module.Data.Exprs.Get(id)
	return e.Kind == hir.ExprVar || e.Kind == hir.ExprField
}

func (c *Ctx) inferBinopExpr(op hir.BinOp, lhs, rhs hir.ExprID) types.Type {
	if op == hir.BinAssign && !c.isLValue(lhs) {
		c.diag(diagnostic.NewNotLValue(lhs))
	}

	lhsType := c.inferExpr(binopLHSExpectation(op), lhs)
	rhsExpectation := binopRHSExpectation(op, lhsType)
	if !lhsType.IsUnknown() && rhsExpectation.IsUnknown() {
		c.diag(diagnostic.NewCannotApplyBinop(lhsType, rhsExpectation, op))
	}
	c.inferExpr(rhsExpectation, rhs)

	return binopReturnType(op, lhsType)
}

func (c *Ctx) inferCallExpr(funcID hir.ExprID, args []hir.ExprID) types.Type {
	funcType := c.inferExpr(types.Unknown(), funcID)

	fnType, ok := funcType.AsFn()
	if !ok {
		if !funcType.IsUnknown() {
			c.diag(diagnostic.NewCalledNonFn(funcID, funcType))
		}
		for _, a := range args {
			c.inferExpr(types.Unknown(), a)
		}
		return types.Unknown()
	}

	if len(args) != len(fnType.Params) {
		c.diag(diagnostic.NewArgCountMismatch(funcID, funcType, len(fnType.Params), len(args)))
	}

	n := len(args)
	if len(fnType.Params) < n {
		n = len(fnType.Params)
	}
	for i := 0; i < n; i++ {
		c.inferExpr(fnType.Params[i], args[i])
	}
	for i := n; i < len(args); i++ {
		c.inferExpr(types.Unknown(), args[i])
	}

	return fnType.Ret
}

func (c *Ctx) inferBlockExpr(expected types.Type, stmts []hir.Stmt, tail *hir.ExprID) types.Type {
	for _, s := range stmts {
		switch s.Kind {
		case hir.StmtExpr:
			c.inferExpr(types.Unknown(), s.Expr)
		case hir.StmtLet:
			c.inferBinding(s.Pat, s.Ty, &s.Val)
		}
	}
	if tail != nil {
		return c.inferExpr(expected, *tail)
	}
	return types.Unit()
}

func (c *Ctx) inferLoopExpr(expected types.Type, body hir.ExprID) types.Type {
	oldLoop := c.loopType
	loopType := types.Never()
	c.loopType = &loopType

	c.inferExpr(expected, body)

	result := *c.loopType
	c.loopType = oldLoop
	return result
}

func (c *Ctx) inferIfExpr(test, then hir.ExprID, els *hir.ExprID) types.Type {
	c.inferExpr(types.Bool(), test)

	if els == nil {
		c.inferExpr(types.Unknown(), then)
		return types.Unit()
	}

	thenType := c.inferExpr(types.Unknown(), then)
	elseType := c.inferExpr(types.Unknown(), *els)
	if c.unify(thenType, elseType) {
		return thenType
	}
	c.diag(diagnostic.NewIfBranchMismatch(then, *els, thenType, elseType))
	return types.Unknown()
}

func (c *Ctx) inferBreakExpr(parent hir.ExprID, val *hir.ExprID) types.Type {
	resultType := c.inferOptionalValue(val)
	if c.loopType == nil {
		c.diag(diagnostic.NewBreakNotInLoop(breakSite(parent, val)))
	} else {
		*c.loopType = resultType
	}
	return types.Never()
}

func (c *Ctx) inferReturnExpr(parent hir.ExprID, val *hir.ExprID) types.Type {
	resultType := c.inferOptionalValue(val)
	site := breakSite(parent, val)
	if c.fnType == nil {
		c.diag(diagnostic.NewReturnNotInFn(site))
	} else {
		c.tryToUnifyAndPropagate(diagnostic.ExprSite(site), c.fnType.Ret, resultType)
	}
	return types.Never()
}

func (c *Ctx) inferContinueExpr(parent hir.ExprID) types.Type {
	if c.loopType == nil {
		c.diag(diagnostic.NewBreakNotInLoop(parent))
	}
	return types.Never()
}

func (c *Ctx) inferOptionalValue(val *hir.ExprID) types.Type {
	if val == nil {
		return types.Unit()
	}
	return c.inferExpr(types.Unknown(), *val)
}

func breakSite(parent hir.ExprID, val *hir.ExprID) hir.ExprID {
	if val != nil {
		return *val
	}
	return parent
}

func (c *Ctx) inferLambdaExpr(expected types.Type, params []hir.Param, body hir.ExprID) types.Type {
	paramTypes := make([]types.Type, len(params))
	for i, p := range params {
		paramTypes[i] = c.inferBinding(p.Pat, p.Ty, nil)
	}

	retType := c.table.NewVarType()
	lambdaType := types.FnType{Params: paramTypes, Ret: retType}
	c.unify(lambdaType.Type(), expected)

	old := c.fnType
	c.fnType = &lambdaType
	c.inferExpr(retType, body)
	c.fnType = old

	return lambdaType.Type()
}

func (c *Ctx) inferStructExpr(exprID hir.ExprID, name hir.NameID, fieldInits []hir.FieldInit) types.Type {
	den, ok := c.scopes.LookupExpr(exprID, name)
	if ok && den.Kind == scopes.DenotationStruct {
		sd := c.module.Data.Structs.Get(den.Struct)
		c.inferFields(exprID, fieldInits, declaredFields(sd.Fields))
		return types.Struct(den.Struct)
	}
	c.inferFields(exprID, fieldInits, nil)
	return types.Unknown()
}

func (c *Ctx) inferEnumExpr(exprID hir.ExprID, name, variantName hir.NameID, fieldInits []hir.FieldInit) types.Type {
	den, ok := c.scopes.LookupExpr(exprID, name)
	if !ok || den.Kind != scopes.DenotationEnum {
		c.inferFields(exprID, fieldInits, nil)
		return types.Unknown()
	}

	ed := c.module.Data.Enums.Get(den.Enum)
	variantText := c.module.Data.Names.Get(variantName).Text

	var variant *hir.EnumVariant
	for i := range ed.Variants {
		if c.module.Data.Names.Get(ed.Variants[i].Name).Text == variantText {
			variant = &ed.Variants[i]
			break
		}
	}

	if variant == nil {
		c.diag(diagnostic.NewNoSuchVariant(exprID, variantName))
		c.inferFields(exprID, fieldInits, nil)
	} else {
		c.inferFields(exprID, fieldInits, declaredFields(variant.Fields))
	}

	return types.Enum(den.Enum)
}

// declaredFields returns fields as a non-nil slice, so that a resolved
// struct or variant with no fields is not taken by inferFields for an
// owner that did not resolve.
func declaredFields(fields []hir.StructField) []hir.StructField {
	if fields == nil {
		return []hir.StructField{}
	}
	return fields
}

// inferFields elaborates every initializer in fieldInits against the
// matching field's type (or Unknown, if fields is nil — the owner name
// didn't resolve to a struct/variant at all), then reports MissingField
// for every field that had no initializer. Only the first initializer
// for a given name is treated as its binding: a second initializer of the
// same name is flagged as a DuplicateFieldInit referencing the first, but
// is still elaborated (and still counts as "present" for MissingField).
func (c *Ctx) inferFields(owner hir.ExprID, fieldInits []hir.FieldInit, fields []hir.StructField) {
	firstInit := map[string]hir.ExprID{}

	for _, init := range fieldInits {
		name := c.module.Data.Names.Get(init.Name).Text
		if first, dup := firstInit[name]; dup {
			c.diag(diagnostic.NewDuplicateFieldInit(first, init.Val))
		} else {
			firstInit[name] = init.Val
		}

		expected := types.Unknown()
		if fields != nil {
			if f := findField(c, fields, name); f != nil {
				expected = c.result.TypeTypes.MustGet(f.Ty)
			} else {
				c.diag(diagnostic.NewNoSuchFieldNamed(owner, hir.Field{Kind: hir.FieldNamed, Name: init.Name}, fields))
			}
		}
		c.inferExpr(expected, init.Val)
	}

	if fields == nil {
		return
	}
	for _, f := range fields {
		name := c.module.Data.Names.Get(f.Name).Text
		if _, ok := firstInit[name]; !ok {
			c.diag(diagnostic.NewMissingField(owner, hir.Field{Kind: hir.FieldNamed, Name: f.Name}))
		}
	}
}

func findField(c *Ctx, fields []hir.StructField, name string) *hir.StructField {
	for i := range fields {
		if c.module.Data.Names.Get(fields[i].Name).Text == name {
			return &fields[i]
		}
	}
	return nil
}
