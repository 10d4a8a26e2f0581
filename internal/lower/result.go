package lower

import (
	"go/ast"
	"strings"

	"github.com/mpyw/capturelint/internal/decl"
	"github.com/mpyw/capturelint/internal/tracker"
)

// Result is the lowering of one package.
type Result struct {
	Package *decl.Decl
	Decls   *decl.Table
	Arena   *tracker.Arena

	// Plans holds one entry per function literal, in source order.
	Plans []*Plan
	// Funcs holds one entry per function declaration, in source order.
	Funcs []*Func

	byLit map[*ast.FuncLit]*Plan
}

// Plan returns the plan of lit, or nil if lit was not visited.
func (r *Result) Plan(lit *ast.FuncLit) *Plan {
	return r.byLit[lit]
}

// Plan describes the explicit parameters a function literal needs.
type Plan struct {
	Lit     *ast.FuncLit
	Decl    *decl.Decl
	Tracker tracker.ID

	// Outer is the receiver type the literal depends on, or nil.
	Outer *decl.Decl
	// Captures lists the enclosing-scope symbols used by the literal or any
	// literal nested in it, each once.
	Captures []*decl.Decl
	// ReceiverName is the name of the receiver of the enclosing method, or
	// empty outside methods.
	ReceiverName string
}

// Trivial reports whether the literal needs no extra parameters.
func (p *Plan) Trivial() bool {
	return p.Outer == nil && len(p.Captures) == 0
}

// CaptureNames returns the names of the captured symbols in order.
func (p *Plan) CaptureNames() []string {
	names := make([]string, len(p.Captures))
	for i, d := range p.Captures {
		names[i] = d.Name
	}
	return names
}

// Params renders the synthesized parameter list: the outer instance first,
// then the captures.
func (p *Plan) Params() []string {
	params := make([]string, 0, len(p.Captures)+1)
	if p.Outer != nil {
		params = append(params, "this "+p.Outer.QualifiedName())
	}
	return append(params, p.CaptureNames()...)
}

// String summarizes the plan as "outer=T captures=a,b".
func (p *Plan) String() string {
	var parts []string
	if p.Outer != nil {
		parts = append(parts, "outer="+p.Outer.QualifiedName())
	}
	if len(p.Captures) > 0 {
		parts = append(parts, "captures="+strings.Join(p.CaptureNames(), ","))
	}
	return strings.Join(parts, " ")
}

// Func summarizes a function declaration.
type Func struct {
	Decl    *ast.FuncDecl
	Owner   *decl.Decl
	Tracker tracker.ID

	// Receiver is the receiver type of a method, or nil.
	Receiver *decl.Decl
	// ReceiverTypeUsed reports whether the body mentions the receiver type.
	ReceiverTypeUsed bool
	// Outer is the class the body depends on, including its closures.
	Outer *decl.Decl
	// HasCaptured reports whether any closure in the body captures anything.
	HasCaptured bool
}
