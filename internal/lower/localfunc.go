package lower

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/capturelint/internal/typeutil"
)

// scanLocalFuncs finds local variables that behave like named local
// functions: initialized with a function literal at declaration and never
// assigned again or address-taken.
//
//	helper := func() {}       // local function
//	var step = func() {}      // local function
//	next := func() {}
//	next = other              // plain variable
func scanLocalFuncs(insp *inspector.Inspector, info *types.Info) map[*types.Var]*ast.FuncLit {
	bound := make(map[*types.Var]*ast.FuncLit)
	reassigned := make(map[*types.Var]bool)

	usedVar := func(expr ast.Expr) *types.Var {
		id, ok := ast.Unparen(expr).(*ast.Ident)
		if !ok {
			return nil
		}
		v, _ := info.Uses[id].(*types.Var)
		return v
	}

	nodeFilter := []ast.Node{
		(*ast.AssignStmt)(nil),
		(*ast.ValueSpec)(nil),
		(*ast.UnaryExpr)(nil),
	}

	insp.Preorder(nodeFilter, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.AssignStmt:
			for i, lhs := range n.Lhs {
				if n.Tok == token.DEFINE {
					if id, ok := lhs.(*ast.Ident); ok {
						if v, ok := info.Defs[id].(*types.Var); ok {
							if len(n.Lhs) == len(n.Rhs) {
								if lit, ok := ast.Unparen(n.Rhs[i]).(*ast.FuncLit); ok {
									bound[v] = lit
								}
							}
							continue
						}
					}
				}
				if v := usedVar(lhs); v != nil {
					reassigned[v] = true
				}
			}

		case *ast.ValueSpec:
			if len(n.Names) != len(n.Values) {
				return
			}
			for i, name := range n.Names {
				v, ok := info.Defs[name].(*types.Var)
				if !ok || typeutil.IsPackageLevel(v) {
					continue
				}
				if lit, ok := ast.Unparen(n.Values[i]).(*ast.FuncLit); ok {
					bound[v] = lit
				}
			}

		case *ast.UnaryExpr:
			if n.Op != token.AND {
				return
			}
			if v := usedVar(n.X); v != nil {
				reassigned[v] = true
			}
		}
	})

	for v := range reassigned {
		delete(bound, v)
	}

	return bound
}
