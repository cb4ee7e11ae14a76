// Package infer is a bidirectional, Hindley-Milner-style type inference
// walker over a resolved hir.Module. Module walks every declaration twice
// — first resolving signatures so mutually recursive functions and
// structs can refer to each other, then walking bodies — and every
// expression/pattern visit takes an expected type, synthesizes its own
// type, reconciles the two through the unification table, and records the
// result before returning it to its caller. Faults never stop the walk:
// each one becomes a diagnostic and the offending subtree's type becomes
// Unknown, so inference always produces a complete Result.
package infer

import (
	"fmt"
	"os"

	"github.com/orizon-lang/walrus-infer/internal/diagnostic"
	"github.com/orizon-lang/walrus-infer/internal/errors"
	"github.com/orizon-lang/walrus-infer/internal/hir"
	"github.com/orizon-lang/walrus-infer/internal/scopes"
	"github.com/orizon-lang/walrus-infer/internal/types"
)

// Ctx is the inference walker's state for a single module. It is not
// meant to be reused across modules.
type Ctx struct {
	module *hir.Module
	scopes scopes.Scopes
	cfg    Config

	table  types.Table
	result Result

	fnType   *types.FnType
	loopType *types.Type

	depth int
}

// Module runs inference over module using sc to resolve names, and
// returns the complete Result. It panics with an *errors.StandardError if
// module or sc is nil — that is a caller bug, not something inference
// over any program text could itself produce.
func Module(module *hir.Module, sc scopes.Scopes, cfg Config) Result {
	if module == nil {
		panic(errors.MissingCollaborator("hir.Module"))
	}
	if sc == nil {
		panic(errors.MissingCollaborator("scopes.Scopes"))
	}

	ctx := &Ctx{module: module, scopes: sc, cfg: cfg}
	ctx.table.DisableOccursCheck = cfg.DisableOccursCheck

	for _, d := range module.Decls {
		ctx.inferDecl(d)
	}
	for _, d := range module.Decls {
		ctx.inferDeclBody(d)
	}
	return ctx.finish()
}

func (c *Ctx) diag(d diagnostic.Diagnostic) {
	c.result.Diagnostics = append(c.result.Diagnostics, d)
}

// trace prints one debug line when cfg.Trace is set. It is the only place
// this package touches an io.Writer.
func (c *Ctx) trace(format string, args ...any) {
	if !c.cfg.Trace {
		return
	}
	fmt.Fprintf(os.Stderr, "infer: "+format+"\n", args...)
}

// denotationPtr turns a (Denotation, ok) pair into the *Denotation a
// diagnostic carries: nil when the name never resolved at all, non-nil
// when it resolved to something that just isn't usable at this site (a
// local used where a type was expected, say).
func denotationPtr(den scopes.Denotation, ok bool) *scopes.Denotation {
	if !ok {
		return nil
	}
	return &den
}

func (c *Ctx) unify(a, b types.Type) bool {
	return c.table.Unify(a, b)
}

func (c *Ctx) coerce(from, to types.Type) bool {
	return c.table.Coerce(from, to)
}

// tryToUnify reconciles a synthesized type against what the surrounding
// context expected, via coerce rather than a raw unify so that Never
// (the type of a diverging expression) can stand in for anything. On
// success it returns whichever of the two is more informative — expected,
// unless expected was itself Unknown, in which case got is more useful to
// propagate upward. On failure it records a TypeMismatch and returns got
// unchanged, so a single bad reconciliation does not also corrupt
// whatever the caller does with the type next.
func (c *Ctx) tryToUnify(site diagnostic.Site, expected, got types.Type) types.Type {
	if c.coerce(got, expected) {
		if expected.IsUnknown() {
			return got
		}
		return expected
	}
	c.diag(diagnostic.NewTypeMismatch(site, expected, got))
	return got
}

// tryToUnifyAndPropagate is tryToUnify followed by a best-effort deep
// propagation of the result, so that a variable pinned down by this
// reconciliation is reflected immediately rather than only after finish.
func (c *Ctx) tryToUnifyAndPropagate(site diagnostic.Site, expected, got types.Type) types.Type {
	return c.table.DeepBestEffort(c.tryToUnify(site, expected, got))
}
