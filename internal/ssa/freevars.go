package ssa

import (
	"sort"

	"golang.org/x/tools/go/ssa"
)

// FreeVarNames returns the names of fn's free variables, sorted.
func FreeVarNames(fn *ssa.Function) []string {
	names := make([]string, 0, len(fn.FreeVars))
	for _, fv := range fn.FreeVars {
		names = append(names, fv.Name())
	}
	sort.Strings(names)
	return names
}

// Diff compares fn's free variables with the names a lowering captured.
// The receiver, when named, is expected in SSA but not in captured.
// missing lists free variables absent from captured; extra lists captures
// that are not free variables.
func Diff(fn *ssa.Function, captured []string, receiverName string) (missing, extra []string) {
	free := make(map[string]bool, len(fn.FreeVars))
	for _, name := range FreeVarNames(fn) {
		free[name] = true
	}

	have := make(map[string]bool, len(captured))
	for _, name := range captured {
		have[name] = true
		if !free[name] {
			extra = append(extra, name)
		}
	}

	for _, name := range FreeVarNames(fn) {
		if name == receiverName || have[name] {
			continue
		}
		missing = append(missing, name)
	}

	sort.Strings(extra)
	return missing, extra
}
