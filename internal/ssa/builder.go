package ssa

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/buildssa"
	"golang.org/x/tools/go/ssa"
)

// BuildSSAAnalyzer is the buildssa analyzer that must be in Requires.
var BuildSSAAnalyzer = buildssa.Analyzer

// Program wraps an SSA program with the analyzed package.
type Program struct {
	*ssa.Program
	Pkg      *ssa.Package
	SrcFuncs []*ssa.Function
}

// Build creates an SSA program from the analysis pass.
// This requires buildssa.Analyzer to be in the pass's Requires.
func Build(pass *analysis.Pass) *Program {
	ssaResult, ok := pass.ResultOf[buildssa.Analyzer].(*buildssa.SSA)
	if !ok || ssaResult == nil {
		return nil
	}

	return &Program{
		Program:  ssaResult.Pkg.Prog,
		Pkg:      ssaResult.Pkg,
		SrcFuncs: ssaResult.SrcFuncs,
	}
}

// FuncAt returns the source-level SSA function containing node.
func (p *Program) FuncAt(node ast.Node) *ssa.Function {
	for _, fn := range p.SrcFuncs {
		syntax := fn.Syntax()
		if syntax == nil {
			continue
		}
		if syntax.Pos() <= node.Pos() && node.End() <= syntax.End() {
			return fn
		}
	}
	return nil
}

// FindFuncLit finds the SSA function for a given FuncLit AST node.
// Literals in package-level initializers are not found.
func (p *Program) FindFuncLit(lit *ast.FuncLit) *ssa.Function {
	if p == nil || lit == nil {
		return nil
	}

	topFn := p.FuncAt(lit)
	if topFn == nil {
		return nil
	}

	return findFuncLitInFunc(topFn, lit)
}

func findFuncLitInFunc(fn *ssa.Function, lit *ast.FuncLit) *ssa.Function {
	for _, anon := range fn.AnonFuncs {
		syntax := anon.Syntax()
		if syntax == nil {
			continue
		}
		if syntax.Pos() == lit.Pos() {
			return anon
		}
		if found := findFuncLitInFunc(anon, lit); found != nil {
			return found
		}
	}
	return nil
}
