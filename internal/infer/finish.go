package infer

import (
	"github.com/orizon-lang/walrus-infer/internal/diagnostic"
	"github.com/orizon-lang/walrus-infer/internal/types"
)

// finish runs the final, complete propagation pass over every side map:
// every type variable still unbound at this point never will be bound,
// so each becomes Unknown. A handle whose best-effort type during the
// walk was something other than Unknown but whose final type is Unknown
// represents a variable that was shared with a part of the program that
// never pinned it down — that regression is itself worth a diagnostic
// (InferenceFail), distinct from whatever fault, if any, caused it.
func (c *Ctx) finish() Result {
	result := c.result

	for h, ty := range result.ExprTypes.All() {
		final := c.table.DeepFinal(ty)
		result.ExprTypes.Insert(h, final)
		if regressed(ty, final) {
			result.Diagnostics = append(result.Diagnostics, diagnostic.NewInferenceFail(diagnostic.ExprSite(h)))
		}
	}

	for h, ty := range result.TypeTypes.All() {
		final := c.table.DeepFinal(ty)
		result.TypeTypes.Insert(h, final)
		if regressed(ty, final) {
			result.Diagnostics = append(result.Diagnostics, diagnostic.NewInferenceFail(diagnostic.TypeSite(h)))
		}
	}

	for h, ty := range result.PatTypes.All() {
		final := c.table.DeepFinal(ty)
		result.PatTypes.Insert(h, final)
		if regressed(ty, final) {
			result.Diagnostics = append(result.Diagnostics, diagnostic.NewInferenceFail(diagnostic.PatSite(h)))
		}
	}

	for h, fnType := range result.FnTypes.All() {
		params := make([]types.Type, len(fnType.Params))
		for i, p := range fnType.Params {
			params[i] = c.table.DeepFinal(p)
		}
		result.FnTypes.Insert(h, types.FnType{Params: params, Ret: c.table.DeepFinal(fnType.Ret)})
	}

	return result
}

// regressed reports whether a handle that was not Unknown mid-walk ended
// up Unknown after final propagation — the signal that a shared type
// variable was never pinned down anywhere in the module.
func regressed(before, after types.Type) bool {
	return !before.IsUnknown() && after.IsUnknown()
}
