package infer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/orizon-lang/walrus-infer/internal/diagnostic"
	"github.com/orizon-lang/walrus-infer/internal/fixture"
	"github.com/orizon-lang/walrus-infer/internal/hir"
	"github.com/orizon-lang/walrus-infer/internal/infer"
	"github.com/orizon-lang/walrus-infer/internal/types"
)

// Scenario 1: fn id(x) = x; fn main() = id(true). Both id's and main's
// return types are elided in source; the fixture lowers each as a fresh
// `_` placeholder (TypeExprInfer) rather than an absent annotation, so
// the return type is resolved from the body's usage rather than
// defaulted to Unit — matching what an expression-bodied declaration
// with no `->` actually means in this language.
func TestScenarioIdentityThroughCall(t *testing.T) {
	b := fixture.New()

	nameX := b.Name("x")
	patX := b.PatVar(nameX)
	bodyVarX := b.Var(nameX)
	b.BindLocal(bodyVarX, nameX, patX)

	idRet := b.TypeInfer()
	fnID := b.FnDef(b.Name("id"), []hir.Param{{Pat: patX}}, &idRet, bodyVarX)

	nameIDUse := b.Name("id")
	idRef := b.Var(nameIDUse)
	b.BindFnExpr(idRef, nameIDUse, fnID)

	trueLit := b.BoolLit(true)
	callExpr := b.Call(idRef, trueLit)

	mainRet := b.TypeInfer()
	b.FnDef(b.Name("main"), nil, &mainRet, callExpr)

	module := b.Module()
	result := infer.Module(module, b.Scopes(), infer.DefaultConfig())

	if len(result.Diagnostics) != 0 {
		t.Fatalf("Diagnostics = %v, want none", result.Diagnostics)
	}
	if got := result.PatTypes.MustGet(patX); !got.Equals(types.Bool()) {
		t.Errorf("PatTypes[x] = %v, want Bool", got)
	}
	if got := result.ExprTypes.MustGet(bodyVarX); !got.Equals(types.Bool()) {
		t.Errorf("ExprTypes[id's body] = %v, want Bool", got)
	}
	if got := result.ExprTypes.MustGet(callExpr); !got.Equals(types.Bool()) {
		t.Errorf("ExprTypes[main's body] = %v, want Bool", got)
	}
}

// Scenario 2: fn f() = if true { 1 } else { 'c' }.
func TestScenarioIfBranchMismatch(t *testing.T) {
	b := fixture.New()

	test := b.BoolLit(true)
	then := b.IntLit(1)
	els := b.CharLit('c')
	ifExpr := b.If(test, then, &els)

	b.FnDef(b.Name("f"), nil, nil, ifExpr)

	result := infer.Module(b.Module(), b.Scopes(), infer.DefaultConfig())

	if len(result.Diagnostics) != 1 {
		t.Fatalf("Diagnostics = %v, want exactly one", result.Diagnostics)
	}
	d := result.Diagnostics[0]
	if d.Kind != diagnostic.IfBranchMismatch {
		t.Fatalf("Diagnostics[0].Kind = %v, want IfBranchMismatch", d.Kind)
	}
	if !d.Expected.Equals(types.Int()) || !d.Got.Equals(types.Char()) {
		t.Errorf("IfBranchMismatch then=%v else=%v, want Int/Char", d.Expected, d.Got)
	}
	if got := result.ExprTypes.MustGet(ifExpr); !got.IsUnknown() {
		t.Errorf("ExprTypes[f's body] = %v, want Unknown", got)
	}
}

// Scenario 3: fn g() = (1, true).0 + (1, true).1.
func TestScenarioBinopFieldMismatch(t *testing.T) {
	b := fixture.New()

	tupA := b.Tuple(b.IntLit(1), b.BoolLit(true))
	fieldA := b.FieldIndex(tupA, 0)
	tupB := b.Tuple(b.IntLit(1), b.BoolLit(true))
	fieldB := b.FieldIndex(tupB, 1)
	binExpr := b.Binop(hir.BinAdd, fieldA, fieldB)

	ret := b.TypeInfer()
	b.FnDef(b.Name("g"), nil, &ret, binExpr)

	result := infer.Module(b.Module(), b.Scopes(), infer.DefaultConfig())

	if len(result.Diagnostics) != 1 {
		t.Fatalf("Diagnostics = %v, want exactly one", result.Diagnostics)
	}
	d := result.Diagnostics[0]
	if d.Kind != diagnostic.TypeMismatch {
		t.Fatalf("Diagnostics[0].Kind = %v, want TypeMismatch", d.Kind)
	}
	if !d.Expected.Equals(types.Int()) || !d.Got.Equals(types.Bool()) {
		t.Errorf("TypeMismatch expected=%v got=%v, want Int/Bool", d.Expected, d.Got)
	}
	if got := result.ExprTypes.MustGet(binExpr); !got.Equals(types.Int()) {
		t.Errorf("ExprTypes[g's body] = %v, want Int", got)
	}
}

// Scenario 4: fn h() -> Int = loop { break 7 }.
func TestScenarioLoopBreakTypesReturn(t *testing.T) {
	b := fixture.New()

	seven := b.IntLit(7)
	breakExpr := b.Break(&seven)
	loopExpr := b.Loop(breakExpr)

	retInt := b.TypeName(b.Name("Int"))
	b.FnDef(b.Name("h"), nil, &retInt, loopExpr)

	result := infer.Module(b.Module(), b.Scopes(), infer.DefaultConfig())

	if len(result.Diagnostics) != 0 {
		t.Fatalf("Diagnostics = %v, want none", result.Diagnostics)
	}
	if got := result.ExprTypes.MustGet(loopExpr); !got.Equals(types.Int()) {
		t.Errorf("ExprTypes[h's body] = %v, want Int", got)
	}
}

// Scenario 5: struct S { x: Int, y: Int } fn k() = S { x: 1, z: 2 }.
func TestScenarioStructLiteralFieldErrors(t *testing.T) {
	b := fixture.New()

	fieldX := hir.StructField{Name: b.Name("x"), Ty: b.TypeName(b.Name("Int"))}
	fieldY := hir.StructField{Name: b.Name("y"), Ty: b.TypeName(b.Name("Int"))}
	structS := b.StructDef(b.Name("S"), []hir.StructField{fieldX, fieldY})

	inits := []hir.FieldInit{
		{Name: b.Name("x"), Val: b.IntLit(1)},
		{Name: b.Name("z"), Val: b.IntLit(2)},
	}
	nameSUse := b.Name("S")
	structLit := b.StructLit(nameSUse, inits)
	b.BindStructExpr(structLit, nameSUse, structS)

	ret := b.TypeInfer()
	b.FnDef(b.Name("k"), nil, &ret, structLit)

	result := infer.Module(b.Module(), b.Scopes(), infer.DefaultConfig())

	if len(result.Diagnostics) != 2 {
		t.Fatalf("Diagnostics = %v, want exactly two", result.Diagnostics)
	}
	if result.Diagnostics[0].Kind != diagnostic.NoSuchField {
		t.Errorf("Diagnostics[0].Kind = %v, want NoSuchField", result.Diagnostics[0].Kind)
	}
	if result.Diagnostics[1].Kind != diagnostic.MissingField {
		t.Errorf("Diagnostics[1].Kind = %v, want MissingField", result.Diagnostics[1].Kind)
	}
	if got := result.ExprTypes.MustGet(structLit); !got.Equals(types.Struct(structS)) {
		t.Errorf("ExprTypes[k's body] = %v, want Struct(S)", got)
	}
}

// Scenario 6: fn r() -> Bool = return 1.
func TestScenarioReturnTypeMismatch(t *testing.T) {
	b := fixture.New()

	one := b.IntLit(1)
	returnExpr := b.Return(&one)

	retBool := b.TypeName(b.Name("Bool"))
	b.FnDef(b.Name("r"), nil, &retBool, returnExpr)

	result := infer.Module(b.Module(), b.Scopes(), infer.DefaultConfig())

	if len(result.Diagnostics) != 1 {
		t.Fatalf("Diagnostics = %v, want exactly one", result.Diagnostics)
	}
	d := result.Diagnostics[0]
	if d.Kind != diagnostic.TypeMismatch {
		t.Fatalf("Diagnostics[0].Kind = %v, want TypeMismatch", d.Kind)
	}
	if !d.Expected.Equals(types.Bool()) || !d.Got.Equals(types.Int()) {
		t.Errorf("TypeMismatch expected=%v got=%v, want Bool/Int", d.Expected, d.Got)
	}
	if got := result.ExprTypes.MustGet(returnExpr); !got.IsNever() {
		t.Errorf("ExprTypes[r's body] = %v, want Never", got)
	}
}

func TestTotalityEveryHandleGetsAnEntry(t *testing.T) {
	b := fixture.New()
	test := b.BoolLit(true)
	then := b.IntLit(1)
	els := b.CharLit('c')
	ifExpr := b.If(test, then, &els)
	b.FnDef(b.Name("f"), nil, nil, ifExpr)

	module := b.Module()
	result := infer.Module(module, b.Scopes(), infer.DefaultConfig())

	if result.ExprTypes.Len() != module.Data.Exprs.Len() {
		t.Errorf("ExprTypes.Len() = %d, want %d", result.ExprTypes.Len(), module.Data.Exprs.Len())
	}
}

func TestFinalizationNeverLeavesAnInferVariable(t *testing.T) {
	b := fixture.New()
	nameX := b.Name("x")
	patX := b.PatVar(nameX)
	bodyVarX := b.Var(nameX)
	b.BindLocal(bodyVarX, nameX, patX)
	ret := b.TypeInfer()
	b.FnDef(b.Name("id"), []hir.Param{{Pat: patX}}, &ret, bodyVarX)

	module := b.Module()
	result := infer.Module(module, b.Scopes(), infer.DefaultConfig())

	for h, ty := range result.ExprTypes.All() {
		if ty.Kind == types.KindInfer {
			t.Errorf("ExprTypes[%d] still KindInfer after finish(): %v", h.Index(), ty)
		}
	}
}

func TestDiagnosticDeterminism(t *testing.T) {
	build := func() (*hir.Module, *fixture.Builder) {
		b := fixture.New()
		test := b.BoolLit(true)
		then := b.IntLit(1)
		els := b.CharLit('c')
		ifExpr := b.If(test, then, &els)
		b.FnDef(b.Name("f"), nil, nil, ifExpr)
		return b.Module(), b
	}

	module1, b1 := build()
	module2, b2 := build()

	result1 := infer.Module(module1, b1.Scopes(), infer.DefaultConfig())
	result2 := infer.Module(module2, b2.Scopes(), infer.DefaultConfig())

	if diff := cmp.Diff(result1.Diagnostics, result2.Diagnostics, cmp.Comparer(func(a, b types.Type) bool { return a.Equals(b) })); diff != "" {
		t.Errorf("Diagnostics differ between identical runs (-first +second):\n%s", diff)
	}
}

func TestNeverCoercesEverywhere(t *testing.T) {
	b := fixture.New()
	val := b.IntLit(1)
	returnExpr := b.Return(&val) // Never-typed
	loopExpr := b.Loop(returnExpr)

	ret := b.TypeName(b.Name("Int"))
	b.FnDef(b.Name("h"), nil, &ret, loopExpr)

	result := infer.Module(b.Module(), b.Scopes(), infer.DefaultConfig())
	for _, d := range result.Diagnostics {
		if d.Kind == diagnostic.TypeMismatch {
			t.Errorf("unexpected TypeMismatch for a Never-typed expression: %+v", d)
		}
	}
}
