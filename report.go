package capturelint

import (
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/mpyw/capturelint/internal/config"
	"github.com/mpyw/capturelint/internal/decl"
	"github.com/mpyw/capturelint/internal/directive/ignore"
	"github.com/mpyw/capturelint/internal/lower"
	internalssa "github.com/mpyw/capturelint/internal/ssa"
)

type reporter struct {
	pass       *analysis.Pass
	cfg        *config.Config
	ignoreMaps map[string]ignore.Map
	skipFiles  map[string]bool
	ssaProg    *internalssa.Program
}

func (r *reporter) check(plan *lower.Plan) {
	pos := r.pass.Fset.Position(plan.Lit.Pos())
	if r.skipFiles[pos.Filename] {
		return
	}

	// Directives are marked used only by checks that fire.
	report := func(checker ignore.CheckerName, format string, args ...any) {
		if r.ignoreMaps[pos.Filename].ShouldIgnore(pos.Line, checker) {
			return
		}
		r.pass.Reportf(plan.Lit.Pos(), format, args...)
	}

	if limit := r.cfg.MaxCaptures; limit > 0 && len(plan.Captures) > limit {
		report(ignore.Captures, "closure captures %d symbols, limit is %d: %s",
			len(plan.Captures), limit, strings.Join(plan.CaptureNames(), ", "))
	}

	if r.cfg.ReportOuter && plan.Outer != nil {
		report(ignore.Outer, "closure depends on the receiver of %s", plan.Outer.QualifiedName())
	}

	if r.cfg.ReportPlan && !plan.Trivial() {
		report(ignore.Plan, "closure lowering: %s", plan)
	}

	if r.ssaProg != nil {
		r.verify(plan, report)
	}
}

func (r *reporter) verify(plan *lower.Plan, report func(ignore.CheckerName, string, ...any)) {
	fn := r.ssaProg.FindFuncLit(plan.Lit)
	if fn == nil {
		return
	}

	var captured []string
	for _, d := range plan.Captures {
		if d.Kind == decl.Variable || d.Kind == decl.Function {
			captured = append(captured, d.Name)
		}
	}

	missing, extra := internalssa.Diff(fn, captured, plan.ReceiverName)
	if len(missing) == 0 && len(extra) == 0 {
		return
	}
	report(ignore.SSA, "capture set disagrees with SSA free variables: missing %s, extra %s",
		strings.Join(missing, ","), strings.Join(extra, ","))
}
