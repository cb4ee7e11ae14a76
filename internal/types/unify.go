package types

// Table is a union-find style store of type variable bindings. A
// variable starts unbound; Unify may bind it to a concrete type (or to
// another variable) once, and it stays bound for the Table's lifetime —
// there is no backtracking, matching the language's lack of let-bound
// polymorphism: once a variable is pinned down it is pinned down
// everywhere it is shared.
type Table struct {
	vars []varState

	// DisableOccursCheck skips the cycle check inside bind when set. It
	// exists for fuzzing and debug builds; DeepFinal's cycle guard still
	// terminates on a table that this produces a cyclic binding in, but
	// Unify can otherwise wrongly report success for types that do not
	// actually unify. Ordinary callers leave this false.
	DisableOccursCheck bool
}

type varState struct {
	bound bool
	ty    Type
}

// NewVar allocates a fresh unbound variable and returns its id.
func (t *Table) NewVar() VarID {
	id := VarID(len(t.vars))
	t.vars = append(t.vars, varState{})
	return id
}

// NewVarType allocates a fresh unbound variable and wraps it as a Type.
func (t *Table) NewVarType() Type {
	return Infer(t.NewVar())
}

// Shallow follows ty one binding at a time while it names a bound
// variable, stopping at the first unbound variable or concrete type it
// reaches. It does not recurse into a constructor's parameters — callers
// that need that use DeepBestEffort or DeepFinal.
func (t *Table) Shallow(ty Type) Type {
	for ty.Kind == KindInfer {
		st := t.vars[ty.Var]
		if !st.bound {
			return ty
		}
		ty = st.ty
	}
	return ty
}

// DeepBestEffort rewrites ty and every nested parameter by following
// bindings as far as they go, leaving any variable that is still unbound
// in place rather than replacing it with Unknown. This is the shape
// recorded into infer.Result's side maps mid-walk, before a variable
// shared elsewhere in the program has necessarily been pinned down yet.
func (t *Table) DeepBestEffort(ty Type) Type {
	return t.deepBestEffort(ty, map[VarID]bool{})
}

func (t *Table) deepBestEffort(ty Type, visiting map[VarID]bool) Type {
	ty, chain := t.followChain(ty, visiting)
	defer clearChain(visiting, chain)

	if ty.Kind == KindApp && len(ty.Params) > 0 {
		params := make([]Type, len(ty.Params))
		for i, p := range ty.Params {
			params[i] = t.deepBestEffort(p, visiting)
		}
		ty.Params = params
	}
	return ty
}

// DeepFinal rewrites ty and every nested parameter the same way
// DeepBestEffort does, except any variable still unbound after following
// every binding is replaced with Unknown. This is the pass finish() runs
// once, after the whole module has been walked, to turn "still don't
// know" into the program's actual answer. It terminates even if the
// table somehow contains a binding cycle, by tracking the chain of
// variables currently being followed and treating a revisit as Unknown
// rather than looping.
func (t *Table) DeepFinal(ty Type) Type {
	return t.deepFinal(ty, map[VarID]bool{})
}

func (t *Table) deepFinal(ty Type, visiting map[VarID]bool) Type {
	ty, chain := t.followChainFinal(ty, visiting)
	defer clearChain(visiting, chain)

	if ty.Kind == KindApp && len(ty.Params) > 0 {
		params := make([]Type, len(ty.Params))
		for i, p := range ty.Params {
			params[i] = t.deepFinal(p, visiting)
		}
		ty.Params = params
	}
	return ty
}

// followChain walks ty through bound variables, marking each visited
// variable in `visiting` so a cyclic binding graph is caught rather than
// looped forever; an already-visiting variable (a cycle) is returned
// unbound rather than followed further. It leaves unbound variables as
// themselves.
func (t *Table) followChain(ty Type, visiting map[VarID]bool) (Type, []VarID) {
	var chain []VarID
	for ty.Kind == KindInfer {
		if visiting[ty.Var] {
			break
		}
		st := t.vars[ty.Var]
		if !st.bound {
			break
		}
		visiting[ty.Var] = true
		chain = append(chain, ty.Var)
		ty = st.ty
	}
	return ty, chain
}

// followChainFinal is followChain, except an unbound variable (or a
// detected cycle) resolves to Unknown instead of staying a variable.
func (t *Table) followChainFinal(ty Type, visiting map[VarID]bool) (Type, []VarID) {
	var chain []VarID
	for ty.Kind == KindInfer {
		if visiting[ty.Var] {
			return Unknown(), chain
		}
		st := t.vars[ty.Var]
		if !st.bound {
			return Unknown(), chain
		}
		visiting[ty.Var] = true
		chain = append(chain, ty.Var)
		ty = st.ty
	}
	return ty, chain
}

func clearChain(visiting map[VarID]bool, chain []VarID) {
	for _, v := range chain {
		delete(visiting, v)
	}
}

// Unify reconciles a and b, binding whichever unbound variables it must
// to make them equal. Unknown unifies with anything and binds nothing.
// Returns false if a and b can never be made equal. A failed occurs
// check binds nothing, but bindings already made while unifying earlier
// parameters of a constructor stay in the table when a later parameter
// fails.
func (t *Table) Unify(a, b Type) bool {
	a = t.Shallow(a)
	b = t.Shallow(b)

	if a.Kind == KindUnknown || b.Kind == KindUnknown {
		return true
	}
	if a.Kind == KindInfer && b.Kind == KindInfer && a.Var == b.Var {
		return true
	}
	if a.Kind == KindInfer {
		return t.bind(a.Var, b)
	}
	if b.Kind == KindInfer {
		return t.bind(b.Var, a)
	}

	if a.Ctor != b.Ctor {
		return false
	}
	switch a.Ctor {
	case CtorStruct:
		return a.StructID == b.StructID
	case CtorEnum:
		return a.EnumID == b.EnumID
	}
	if len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		if !t.Unify(a.Params[i], b.Params[i]) {
			return false
		}
	}
	return true
}

// Coerce is Unify, except Never coerces into any type without
// constraining the table — a diverging expression (a loop with no break,
// a bare return) can stand in for a value of whatever type the context
// expects.
func (t *Table) Coerce(from, to Type) bool {
	if from.IsNever() {
		return true
	}
	return t.Unify(from, to)
}

func (t *Table) bind(v VarID, ty Type) bool {
	ty = t.Shallow(ty)
	if ty.Kind == KindInfer && ty.Var == v {
		return true
	}
	if !t.DisableOccursCheck && t.occurs(v, ty) {
		return false
	}
	t.vars[v] = varState{bound: true, ty: ty}
	return true
}

// occurs reports whether v appears anywhere inside ty, following bound
// variables as it goes. Binding v to a type that contains v would create
// a cyclic binding graph, which Unify must refuse.
func (t *Table) occurs(v VarID, ty Type) bool {
	return t.occursVisit(v, ty, map[VarID]bool{})
}

func (t *Table) occursVisit(v VarID, ty Type, visiting map[VarID]bool) bool {
	ty, chain := t.followChain(ty, visiting)
	defer clearChain(visiting, chain)

	switch ty.Kind {
	case KindInfer:
		return ty.Var == v
	case KindApp:
		for _, p := range ty.Params {
			if t.occursVisit(v, p, visiting) {
				return true
			}
		}
	}
	return false
}
