package types

import "testing"

func TestEqualsStructural(t *testing.T) {
	a := Tuple([]Type{Bool(), Int()})
	b := Tuple([]Type{Bool(), Int()})
	c := Tuple([]Type{Int(), Bool()})

	if !a.Equals(b) {
		t.Error("structurally identical tuples compared unequal")
	}
	if a.Equals(c) {
		t.Error("structurally distinct tuples compared equal")
	}
}

func TestEqualsUnknownAlwaysEqual(t *testing.T) {
	if !Unknown().Equals(Unknown()) {
		t.Error("Unknown().Equals(Unknown()) = false")
	}
}

func TestEqualsVarIdentity(t *testing.T) {
	if !Infer(3).Equals(Infer(3)) {
		t.Error("same-numbered vars compared unequal")
	}
	if Infer(3).Equals(Infer(4)) {
		t.Error("distinct vars compared equal")
	}
}

func TestAsFnRoundTrip(t *testing.T) {
	fn := Function([]Type{Int(), Bool()}, Char())
	unpacked, ok := fn.AsFn()
	if !ok {
		t.Fatal("AsFn() on a Fn-constructed type returned ok = false")
	}
	if len(unpacked.Params) != 2 || !unpacked.Params[0].Equals(Int()) || !unpacked.Params[1].Equals(Bool()) {
		t.Errorf("AsFn().Params = %v", unpacked.Params)
	}
	if !unpacked.Ret.Equals(Char()) {
		t.Errorf("AsFn().Ret = %v, want Char", unpacked.Ret)
	}
}

func TestAsFnRejectsNonFn(t *testing.T) {
	if _, ok := Int().AsFn(); ok {
		t.Error("AsFn() on Int type returned ok = true")
	}
}

func TestAsTupleRoundTrip(t *testing.T) {
	elems := []Type{Int(), Bool(), Char()}
	tup := Tuple(elems)
	got, ok := tup.AsTuple()
	if !ok || len(got) != 3 {
		t.Fatalf("AsTuple() = %v, %v", got, ok)
	}
}

func TestIsNeverIsUnknown(t *testing.T) {
	if !Never().IsNever() {
		t.Error("Never().IsNever() = false")
	}
	if Int().IsNever() {
		t.Error("Int().IsNever() = true")
	}
	if !Unknown().IsUnknown() {
		t.Error("Unknown().IsUnknown() = false")
	}
	if Never().IsUnknown() {
		t.Error("Never().IsUnknown() = true")
	}
}

func TestStructEnumIdentityOverridesParams(t *testing.T) {
	a := Struct(5)
	b := Struct(5)
	c := Struct(6)
	if !a.Equals(b) {
		t.Error("same StructID compared unequal")
	}
	if a.Equals(c) {
		t.Error("different StructID compared equal")
	}

	withParams := Struct(5)
	withParams.Params = []Type{Int()}
	if !a.Equals(withParams) {
		t.Error("same StructID with different Params compared unequal")
	}
	if !Enum(2).Equals(Enum(2)) {
		t.Error("same EnumID compared unequal")
	}
	if Enum(2).Equals(Enum(3)) {
		t.Error("different EnumID compared equal")
	}
}
