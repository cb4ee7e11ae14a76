// Package fixture is a programmatic HIR builder used only by this
// module's own tests. Hand-writing arena allocations and scope bindings
// inline in every test case would bury the interesting part of each test
// under bookkeeping, so Builder collects that bookkeeping into one place:
// call its allocator methods to build up expressions, patterns, type
// expressions and declarations, bind whichever names should resolve to
// something other than a builtin, then call Module/Scopes to hand the
// result to infer.Module.
package fixture

import (
	"github.com/orizon-lang/walrus-infer/internal/hir"
	"github.com/orizon-lang/walrus-infer/internal/scopes"
)

// Builder accumulates a hir.Module and its matching scopes.StaticScopes.
// It is not safe for concurrent use, same as the arenas it wraps.
type Builder struct {
	data   hir.ModuleData
	source hir.ModuleSource
	scopes *scopes.StaticScopes
	decls  []hir.Decl
}

// New returns an empty Builder.
func New() *Builder {
	b := &Builder{}
	b.scopes = scopes.NewStaticScopes(&b.data)
	return b
}

// Module returns the hir.Module built so far.
func (b *Builder) Module() *hir.Module {
	return &hir.Module{Decls: b.decls, Data: b.data, Source: b.source}
}

// Scopes returns the scopes.Scopes collaborator matching Module().
func (b *Builder) Scopes() scopes.Scopes { return b.scopes }

// Name allocates a fresh Name occurrence with the given source text. Two
// calls with the same text are still two distinct NameIDs, matching how a
// real resolver treats two independent occurrences of the same
// identifier.
func (b *Builder) Name(text string) hir.NameID {
	return b.data.Names.Alloc(hir.Name{Text: text})
}

// --- expressions ---

func (b *Builder) expr(e hir.Expr) hir.ExprID { return b.data.Exprs.Alloc(e) }

func (b *Builder) IntLit(v uint32) hir.ExprID {
	return b.expr(hir.Expr{Kind: hir.ExprLit, Lit: hir.Lit{Kind: hir.LitInt, Int: v}})
}

func (b *Builder) BoolLit(v bool) hir.ExprID {
	return b.expr(hir.Expr{Kind: hir.ExprLit, Lit: hir.Lit{Kind: hir.LitBool, Bool: v}})
}

func (b *Builder) FloatLit(v float32) hir.ExprID {
	return b.expr(hir.Expr{Kind: hir.ExprLit, Lit: hir.Lit{Kind: hir.LitFloat, Float: hir.NewOrderedFloat32(v)}})
}

func (b *Builder) CharLit(v rune) hir.ExprID {
	return b.expr(hir.Expr{Kind: hir.ExprLit, Lit: hir.Lit{Kind: hir.LitChar, Char: v}})
}

func (b *Builder) Var(name hir.NameID) hir.ExprID {
	return b.expr(hir.Expr{Kind: hir.ExprVar, Var: name})
}

func (b *Builder) Tuple(elems ...hir.ExprID) hir.ExprID {
	return b.expr(hir.Expr{Kind: hir.ExprTuple, Elems: elems})
}

func (b *Builder) FieldNamed(base hir.ExprID, name hir.NameID) hir.ExprID {
	return b.expr(hir.Expr{Kind: hir.ExprField, Base: base, FieldSel: hir.Field{Kind: hir.FieldNamed, Name: name}})
}

func (b *Builder) FieldIndex(base hir.ExprID, index uint32) hir.ExprID {
	return b.expr(hir.Expr{Kind: hir.ExprField, Base: base, FieldSel: hir.Field{Kind: hir.FieldTuple, Index: index}})
}

func (b *Builder) Unop(op hir.UnOp, operand hir.ExprID) hir.ExprID {
	return b.expr(hir.Expr{Kind: hir.ExprUnop, Op1: op, Operand: operand})
}

func (b *Builder) Binop(op hir.BinOp, lhs, rhs hir.ExprID) hir.ExprID {
	return b.expr(hir.Expr{Kind: hir.ExprBinop, Op2: op, LHS: lhs, RHS: rhs})
}

func (b *Builder) Call(fn hir.ExprID, args ...hir.ExprID) hir.ExprID {
	return b.expr(hir.Expr{Kind: hir.ExprCall, Func: fn, Args: args})
}

// BlockExpr wraps a statement list and optional tail expression as a
// block expression.
func (b *Builder) BlockExpr(stmts []hir.Stmt, tail *hir.ExprID) hir.ExprID {
	return b.expr(hir.Expr{Kind: hir.ExprBlock, Block: hir.Block{Stmts: stmts, Tail: tail}})
}

// ExprStmt wraps e as a bare statement.
func (b *Builder) ExprStmt(e hir.ExprID) hir.Stmt {
	return hir.Stmt{Kind: hir.StmtExpr, Expr: e}
}

// LetStmt wraps a `pat [: ty] = val` binding statement. ty may be nil.
func (b *Builder) LetStmt(pat hir.PatID, ty *hir.TypeExprID, val hir.ExprID) hir.Stmt {
	return hir.Stmt{Kind: hir.StmtLet, Pat: pat, Ty: ty, Val: val}
}

func (b *Builder) Loop(body hir.ExprID) hir.ExprID {
	return b.expr(hir.Expr{Kind: hir.ExprLoop, LoopBody: body})
}

func (b *Builder) If(test, then hir.ExprID, els *hir.ExprID) hir.ExprID {
	return b.expr(hir.Expr{Kind: hir.ExprIf, Test: test, Then: then, Else: els})
}

func (b *Builder) Break(val *hir.ExprID) hir.ExprID {
	return b.expr(hir.Expr{Kind: hir.ExprBreak, BreakVal: val})
}

func (b *Builder) Return(val *hir.ExprID) hir.ExprID {
	return b.expr(hir.Expr{Kind: hir.ExprReturn, ReturnVal: val})
}

func (b *Builder) Continue() hir.ExprID {
	return b.expr(hir.Expr{Kind: hir.ExprContinue})
}

func (b *Builder) Lambda(params []hir.Param, body hir.ExprID) hir.ExprID {
	return b.expr(hir.Expr{Kind: hir.ExprLambda, LambdaParams: params, LambdaBody: body})
}

func (b *Builder) StructLit(name hir.NameID, fields []hir.FieldInit) hir.ExprID {
	return b.expr(hir.Expr{Kind: hir.ExprStruct, StructName: name, StructFields: fields})
}

func (b *Builder) EnumLit(name, variant hir.NameID, fields []hir.FieldInit) hir.ExprID {
	return b.expr(hir.Expr{Kind: hir.ExprEnum, EnumName: name, EnumVariant: variant, EnumFields: fields})
}

// --- patterns ---

func (b *Builder) PatVar(name hir.NameID) hir.PatID {
	return b.data.Pats.Alloc(hir.Pat{Kind: hir.PatVar, Name: name})
}

func (b *Builder) PatIgnore() hir.PatID {
	return b.data.Pats.Alloc(hir.Pat{Kind: hir.PatIgnore})
}

func (b *Builder) PatTuple(elems ...hir.PatID) hir.PatID {
	return b.data.Pats.Alloc(hir.Pat{Kind: hir.PatTuple, Elems: elems})
}

// --- type expressions ---

func (b *Builder) TypeName(name hir.NameID) hir.TypeExprID {
	return b.data.Types.Alloc(hir.TypeExpr{Kind: hir.TypeExprName, Name: name})
}

func (b *Builder) TypeInfer() hir.TypeExprID {
	return b.data.Types.Alloc(hir.TypeExpr{Kind: hir.TypeExprInfer})
}

func (b *Builder) TypeTuple(elems ...hir.TypeExprID) hir.TypeExprID {
	return b.data.Types.Alloc(hir.TypeExpr{Kind: hir.TypeExprTuple, Elems: elems})
}

func (b *Builder) TypeFn(params []hir.TypeExprID, ret hir.TypeExprID) hir.TypeExprID {
	return b.data.Types.Alloc(hir.TypeExpr{Kind: hir.TypeExprFn, Params: params, Ret: ret})
}

// --- declarations ---

// StructDef allocates a struct declaration and adds it to the module's
// declaration list.
func (b *Builder) StructDef(name hir.NameID, fields []hir.StructField) hir.StructDefID {
	id := b.data.Structs.Alloc(hir.StructDef{Name: name, Fields: fields})
	b.decls = append(b.decls, hir.Decl{Kind: hir.DeclStruct, Struct: id})
	return id
}

// EnumDef allocates an enum declaration and adds it to the module's
// declaration list.
func (b *Builder) EnumDef(name hir.NameID, variants []hir.EnumVariant) hir.EnumDefID {
	id := b.data.Enums.Alloc(hir.EnumDef{Name: name, Variants: variants})
	b.decls = append(b.decls, hir.Decl{Kind: hir.DeclEnum, Enum: id})
	return id
}

// FnDef allocates a function declaration and adds it to the module's
// declaration list.
func (b *Builder) FnDef(name hir.NameID, params []hir.Param, ret *hir.TypeExprID, body hir.ExprID) hir.FnDefID {
	id := b.data.FnDefs.Alloc(hir.FnDef{Name: name, Params: params, RetType: ret, Body: body})
	b.decls = append(b.decls, hir.Decl{Kind: hir.DeclFn, Fn: id})
	return id
}

// --- scope bindings ---

// BindLocal records that name, used at site, denotes the local bound by
// pat.
func (b *Builder) BindLocal(site hir.ExprID, name hir.NameID, pat hir.PatID) {
	b.scopes.BindExpr(site, name, scopes.Denotation{Kind: scopes.DenotationLocal, Pat: pat})
}

// BindFnExpr records that name, used at site in expression position,
// denotes the function fn.
func (b *Builder) BindFnExpr(site hir.ExprID, name hir.NameID, fn hir.FnDefID) {
	b.scopes.BindExpr(site, name, scopes.Denotation{Kind: scopes.DenotationFn, Fn: fn})
}

// BindStructExpr records that name, used at site as a struct literal's
// name, denotes the struct def sd.
func (b *Builder) BindStructExpr(site hir.ExprID, name hir.NameID, sd hir.StructDefID) {
	b.scopes.BindExpr(site, name, scopes.Denotation{Kind: scopes.DenotationStruct, Struct: sd})
}

// BindEnumExpr records that name, used at site as an enum literal's
// name, denotes the enum def ed.
func (b *Builder) BindEnumExpr(site hir.ExprID, name hir.NameID, ed hir.EnumDefID) {
	b.scopes.BindExpr(site, name, scopes.Denotation{Kind: scopes.DenotationEnum, Enum: ed})
}

// BindTypeStruct records that name, used at site in a type annotation,
// denotes the struct def sd.
func (b *Builder) BindTypeStruct(site hir.TypeExprID, name hir.NameID, sd hir.StructDefID) {
	b.scopes.BindType(site, name, scopes.Denotation{Kind: scopes.DenotationStruct, Struct: sd})
}

// BindTypeEnum records that name, used at site in a type annotation,
// denotes the enum def ed.
func (b *Builder) BindTypeEnum(site hir.TypeExprID, name hir.NameID, ed hir.EnumDefID) {
	b.scopes.BindType(site, name, scopes.Denotation{Kind: scopes.DenotationEnum, Enum: ed})
}
