package infer

import (
	"github.com/orizon-lang/walrus-infer/internal/diagnostic"
	"github.com/orizon-lang/walrus-infer/internal/hir"
	"github.com/orizon-lang/walrus-infer/internal/scopes"
	"github.com/orizon-lang/walrus-infer/internal/types"
)

// inferDecl is pass one: it resolves a declaration's externally-visible
// shape (a struct or enum's field types, a function's parameter and
// return types) without looking at any function body. Running this over
// every declaration before pass two starts is what lets two functions,
// or a function and the struct it returns, refer to each other regardless
// of declaration order.
func (c *Ctx) inferDecl(d hir.Decl) {
	switch d.Kind {
	case hir.DeclStruct:
		c.inferStructDecl(d.Struct)
	case hir.DeclEnum:
		c.inferEnumDecl(d.Enum)
	case hir.DeclFn:
		c.inferFnDecl(d.Fn)
	}
}

// inferDeclBody is pass two: it walks a function's body against the
// signature pass one already resolved. Struct and enum declarations have
// no body to walk.
func (c *Ctx) inferDeclBody(d hir.Decl) {
	if d.Kind == hir.DeclFn {
		c.inferFnBody(d.Fn)
	}
}

func (c *Ctx) inferStructDecl(id hir.StructDefID) {
	sd := c.module.Data.Structs.Get(id)
	for _, f := range sd.Fields {
		c.resolveType(f.Ty)
	}
}

func (c *Ctx) inferEnumDecl(id hir.EnumDefID) {
	ed := c.module.Data.Enums.Get(id)
	for _, v := range ed.Variants {
		for _, f := range v.Fields {
			c.resolveType(f.Ty)
		}
	}
}

func (c *Ctx) inferFnDecl(id hir.FnDefID) {
	fd := c.module.Data.FnDefs.Get(id)

	params := make([]types.Type, len(fd.Params))
	for i, p := range fd.Params {
		params[i] = c.inferBinding(p.Pat, p.Ty, nil)
	}

	var ret types.Type
	if fd.RetType != nil {
		ret = c.resolveType(*fd.RetType)
	} else {
		ret = types.Unit()
	}

	c.result.FnTypes.Insert(id, types.FnType{Params: params, Ret: ret})
}

func (c *Ctx) inferFnBody(id hir.FnDefID) {
	fd := c.module.Data.FnDefs.Get(id)
	fnType := c.result.FnTypes.MustGet(id)

	old := c.fnType
	c.fnType = &fnType
	bodyType := c.inferExpr(types.Unknown(), fd.Body)
	c.fnType = old

	c.tryToUnifyAndPropagate(diagnostic.ExprSite(fd.Body), fnType.Ret, bodyType)
}

// resolveType turns a source-level type annotation into its semantic
// Type, recording the result into the TypeTypes side map and allocating a
// fresh type variable for an inferred (`_`) placeholder.
func (c *Ctx) resolveType(id hir.TypeExprID) types.Type {
	te := c.module.Data.Types.Get(id)

	var ty types.Type
	switch te.Kind {
	case hir.TypeExprInfer:
		ty = c.table.NewVarType()
	case hir.TypeExprTuple:
		elems := make([]types.Type, len(te.Elems))
		for i, e := range te.Elems {
			elems[i] = c.resolveType(e)
		}
		ty = types.Tuple(elems)
	case hir.TypeExprFn:
		params := make([]types.Type, len(te.Params))
		for i, p := range te.Params {
			params[i] = c.resolveType(p)
		}
		ty = types.Function(params, c.resolveType(te.Ret))
	case hir.TypeExprName:
		ty = c.resolveVarType(id, te.Name)
	}

	ty = c.table.DeepBestEffort(ty)
	c.result.TypeTypes.Insert(id, ty)
	return ty
}

func (c *Ctx) resolveVarType(site hir.TypeExprID, name hir.NameID) types.Type {
	den, ok := c.scopes.LookupType(site, name)
	if ok {
		switch {
		case den.Kind == scopes.DenotationBuiltin && den.Builtin.Kind() == scopes.BuiltinType:
			return den.Builtin.Type()
		case den.Kind == scopes.DenotationStruct:
			return types.Struct(den.Struct)
		case den.Kind == scopes.DenotationEnum:
			return types.Enum(den.Enum)
		}
	}
	c.diag(diagnostic.NewUnboundVar(diagnostic.TypeSite(site), name, denotationPtr(den, ok)))
	return types.Unknown()
}
