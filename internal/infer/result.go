package infer

import (
	"github.com/orizon-lang/walrus-infer/internal/arena"
	"github.com/orizon-lang/walrus-infer/internal/diagnostic"
	"github.com/orizon-lang/walrus-infer/internal/hir"
	"github.com/orizon-lang/walrus-infer/internal/types"
)

// Result is everything inference produces: the semantic type it found for
// every expression, type annotation, and pattern in the module; the
// signature it found for every function declaration; and every
// diagnostic it raised along the way. Every handle that exists in the
// module it was built from has an entry in the matching side map — a
// module with N expressions always yields a Result with N expression
// types, even when some of those types are Unknown. The exception is a
// walk cut off by Config.MaxDepth: expressions, patterns and type
// annotations nested below the cutoff expression get no entry.
type Result struct {
	ExprTypes arena.ArenaMap[hir.Expr, types.Type]
	TypeTypes arena.ArenaMap[hir.TypeExpr, types.Type]
	PatTypes  arena.ArenaMap[hir.Pat, types.Type]
	FnTypes   arena.ArenaMap[hir.FnDef, types.FnType]

	Diagnostics []diagnostic.Diagnostic
}
