package ignore

import (
	"go/ast"
	"go/token"
	"slices"
	"sort"
	"strings"
)

const prefix = "capturelint:ignore"

// CheckerName represents a checker that can be ignored.
type CheckerName string

// Valid checker names.
const (
	Captures CheckerName = "captures"
	Outer    CheckerName = "outer"
	Plan     CheckerName = "plan"
	SSA      CheckerName = "ssa"
)

// AllCheckerNames returns all valid checker names.
func AllCheckerNames() []CheckerName {
	return []CheckerName{Captures, Outer, Plan, SSA}
}

// IsValid reports whether name is one of AllCheckerNames.
func IsValid(name CheckerName) bool {
	return slices.Contains(AllCheckerNames(), name)
}

// Entry tracks an ignore directive and its usage.
type Entry struct {
	pos      token.Pos
	checkers []CheckerName // empty = all
	used     map[CheckerName]bool
}

// Map tracks ignore entries by line number.
type Map map[int]*Entry

// EnabledCheckers tracks which checkers are currently enabled.
type EnabledCheckers map[CheckerName]bool

// Build scans a file for ignore comments and returns a map.
func Build(fset *token.FileSet, file *ast.File) Map {
	m := make(Map)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			if checkers, ok := parseComment(c.Text); ok {
				line := fset.Position(c.Pos()).Line
				m[line] = &Entry{
					pos:      c.Pos(),
					checkers: checkers,
					used:     make(map[CheckerName]bool),
				}
			}
		}
	}

	return m
}

// parseComment parses an ignore directive and returns the checker names.
// Returns a nil slice for "ignore all" and false if text is not a directive.
//
// Supported formats:
//   - //capturelint:ignore
//   - //capturelint:ignore captures
//   - //capturelint:ignore captures,outer
//   - //capturelint:ignore - reason
//   - //capturelint:ignore captures - reason
func parseComment(text string) ([]CheckerName, bool) {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	rest, ok := strings.CutPrefix(text, prefix)
	if !ok {
		return nil, false
	}
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		// e.g. capturelint:ignored
		return nil, false
	}

	if idx := strings.Index(rest, " - "); idx >= 0 {
		rest = rest[:idx]
	}
	if idx := strings.Index(rest, " //"); idx >= 0 {
		rest = rest[:idx]
	}

	rest = strings.TrimSpace(rest)
	if rest == "" || rest == "-" || strings.HasPrefix(rest, "- ") {
		return nil, true
	}

	parts := strings.Split(rest, ",")
	checkers := make([]CheckerName, 0, len(parts))

	for _, part := range parts {
		if name := CheckerName(strings.TrimSpace(part)); name != "" {
			checkers = append(checkers, name)
		}
	}

	return checkers, true
}

// ShouldIgnore returns true if the given line, or the line before it, has
// a directive covering checker. Matching directives are marked as used.
func (m Map) ShouldIgnore(line int, checker CheckerName) bool {
	return m.matches(m[line], checker) || m.matches(m[line-1], checker)
}

func (m Map) matches(entry *Entry, checker CheckerName) bool {
	if entry == nil {
		return false
	}

	if len(entry.checkers) == 0 {
		entry.used[checker] = true
		return true
	}

	for _, c := range entry.checkers {
		if c == checker {
			entry.used[checker] = true
			return true
		}
	}

	return false
}

// UnusedIgnore represents an unused ignore directive.
type UnusedIgnore struct {
	Pos      token.Pos
	Checkers []CheckerName // empty if the entire directive is unused
}

// GetUnusedIgnores returns directives that suppressed nothing, ordered by
// position.
func (m Map) GetUnusedIgnores(enabled EnabledCheckers) []UnusedIgnore {
	var unused []UnusedIgnore

	for _, entry := range m {
		if len(entry.checkers) == 0 {
			anyUsed := false
			for checker := range enabled {
				if entry.used[checker] {
					anyUsed = true
					break
				}
			}
			if !anyUsed {
				unused = append(unused, UnusedIgnore{Pos: entry.pos})
			}
			continue
		}

		var names []CheckerName
		for _, checker := range entry.checkers {
			if !IsValid(checker) {
				continue
			}
			if !enabled[checker] || !entry.used[checker] {
				names = append(names, checker)
			}
		}
		if len(names) > 0 {
			unused = append(unused, UnusedIgnore{Pos: entry.pos, Checkers: names})
		}
	}

	sort.Slice(unused, func(i, j int) bool {
		return unused[i].Pos < unused[j].Pos
	})

	return unused
}

// GetUnknownCheckers returns directives naming checkers that do not exist,
// ordered by position. Only the unknown names are listed.
func (m Map) GetUnknownCheckers() []UnusedIgnore {
	var unknown []UnusedIgnore

	for _, entry := range m {
		var names []CheckerName
		for _, checker := range entry.checkers {
			if !IsValid(checker) {
				names = append(names, checker)
			}
		}
		if len(names) > 0 {
			unknown = append(unknown, UnusedIgnore{Pos: entry.pos, Checkers: names})
		}
	}

	sort.Slice(unknown, func(i, j int) bool {
		return unknown[i].Pos < unknown[j].Pos
	})

	return unknown
}
