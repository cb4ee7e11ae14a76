package types

import "testing"

func TestUnifyBindsUnboundVar(t *testing.T) {
	var table Table
	v := table.NewVarType()
	if !table.Unify(v, Int()) {
		t.Fatal("Unify(var, Int) = false")
	}
	if got := table.Shallow(v); !got.Equals(Int()) {
		t.Errorf("Shallow(v) = %v, want Int", got)
	}
}

func TestUnifySameCtorRecurses(t *testing.T) {
	var table Table
	a := table.NewVarType()
	tupA := Tuple([]Type{a, Bool()})
	tupB := Tuple([]Type{Int(), Bool()})
	if !table.Unify(tupA, tupB) {
		t.Fatal("Unify of structurally-compatible tuples failed")
	}
	if got := table.Shallow(a); !got.Equals(Int()) {
		t.Errorf("nested var not bound through tuple unification: %v", got)
	}
}

func TestUnifyMismatchedCtorFails(t *testing.T) {
	var table Table
	if table.Unify(Int(), Bool()) {
		t.Error("Unify(Int, Bool) = true")
	}
}

func TestUnifyUnknownAbsorbsBothSides(t *testing.T) {
	var table Table
	if !table.Unify(Unknown(), Int()) {
		t.Error("Unify(Unknown, Int) = false")
	}
	if !table.Unify(Bool(), Unknown()) {
		t.Error("Unify(Bool, Unknown) = false")
	}
}

func TestUnifyOccursCheckRejectsCycle(t *testing.T) {
	var table Table
	v := table.NewVar()
	cyclic := Tuple([]Type{Infer(v)})
	if table.Unify(Infer(v), cyclic) {
		t.Error("Unify bound a variable to a type containing itself")
	}
}

func TestUnifyOccursCheckCanBeDisabled(t *testing.T) {
	var table Table
	table.DisableOccursCheck = true
	v := table.NewVar()
	cyclic := Tuple([]Type{Infer(v)})
	if !table.Unify(Infer(v), cyclic) {
		t.Error("Unify with DisableOccursCheck still rejected a cyclic binding")
	}
}

func TestCoerceNeverIntoAnything(t *testing.T) {
	var table Table
	if !table.Coerce(Never(), Int()) {
		t.Error("Coerce(Never, Int) = false")
	}
	if !table.Coerce(Never(), Bool()) {
		t.Error("Coerce(Never, Bool) = false")
	}
}

func TestCoerceNeverNeverMutatesTable(t *testing.T) {
	var table Table
	v := table.NewVarType()
	table.Coerce(Never(), v)
	if got := table.Shallow(v); got.Kind != KindInfer {
		t.Errorf("Coerce(Never, var) bound the variable: %v", got)
	}
}

func TestCoerceFallsBackToUnify(t *testing.T) {
	var table Table
	if table.Coerce(Int(), Bool()) {
		t.Error("Coerce(Int, Bool) = true")
	}
}

func TestDeepBestEffortLeavesUnboundVarsInPlace(t *testing.T) {
	var table Table
	v := table.NewVarType()
	tup := Tuple([]Type{v, Int()})
	got := table.DeepBestEffort(tup)
	elems, _ := got.AsTuple()
	if elems[0].Kind != KindInfer {
		t.Errorf("DeepBestEffort replaced an unbound variable: %v", elems[0])
	}
}

func TestDeepFinalReplacesUnboundWithUnknown(t *testing.T) {
	var table Table
	v := table.NewVarType()
	tup := Tuple([]Type{v, Int()})
	got := table.DeepFinal(tup)
	elems, _ := got.AsTuple()
	if !elems[0].IsUnknown() {
		t.Errorf("DeepFinal left an unbound variable unresolved: %v", elems[0])
	}
	if !elems[1].Equals(Int()) {
		t.Errorf("DeepFinal corrupted a bound element: %v", elems[1])
	}
}

func TestDeepFinalFollowsBoundChain(t *testing.T) {
	var table Table
	v1 := table.NewVarType()
	v2 := table.NewVarType()
	table.Unify(v1, v2)
	table.Unify(v2, Int())

	got := table.DeepFinal(v1)
	if !got.Equals(Int()) {
		t.Errorf("DeepFinal(v1) = %v, want Int", got)
	}
}

func TestDeepFinalIdempotent(t *testing.T) {
	var table Table
	v := table.NewVarType()
	table.Unify(v, Int())
	tup := Tuple([]Type{v, Bool()})

	once := table.DeepFinal(tup)
	twice := table.DeepFinal(once)
	if !once.Equals(twice) {
		t.Errorf("DeepFinal is not idempotent: once=%v twice=%v", once, twice)
	}
}

func TestDeepFinalHandlesSharedDAGVariable(t *testing.T) {
	// The same bound variable appearing twice, in sibling branches of a
	// tuple, is legitimate sharing, not a cycle: both occurrences must
	// resolve, not just the first.
	var table Table
	v := table.NewVarType()
	table.Unify(v, Int())
	tup := Tuple([]Type{v, v})

	got := table.DeepFinal(tup)
	elems, _ := got.AsTuple()
	if !elems[0].Equals(Int()) || !elems[1].Equals(Int()) {
		t.Errorf("DeepFinal on DAG-shared variable = %v, want both Int", elems)
	}
}
