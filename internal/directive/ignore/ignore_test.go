package ignore

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"
)

func TestIsValid(t *testing.T) {
	for _, name := range AllCheckerNames() {
		if !IsValid(name) {
			t.Errorf("Expected %q to be valid", name)
		}
	}
	if IsValid("plna") {
		t.Error("Expected plna to be invalid")
	}
}

func TestParseComment(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   []CheckerName
		wantOk bool
	}{
		{name: "ignore all", text: "//capturelint:ignore", want: nil, wantOk: true},
		{name: "specific checker", text: "//capturelint:ignore captures", want: []CheckerName{Captures}, wantOk: true},
		{name: "multiple checkers", text: "//capturelint:ignore captures,outer", want: []CheckerName{Captures, Outer}, wantOk: true},
		{name: "spaces around names", text: "//capturelint:ignore captures , plan", want: []CheckerName{Captures, Plan}, wantOk: true},
		{name: "reason only", text: "//capturelint:ignore - generated glue", want: nil, wantOk: true},
		{name: "specific with reason", text: "//capturelint:ignore ssa - known gap", want: []CheckerName{SSA}, wantOk: true},
		{name: "inline comment", text: "//capturelint:ignore outer // comment", want: []CheckerName{Outer}, wantOk: true},
		{name: "dash only", text: "//capturelint:ignore -", want: nil, wantOk: true},
		{name: "leading space", text: "// capturelint:ignore", want: nil, wantOk: true},
		{name: "regular comment", text: "// regular comment", want: nil, wantOk: false},
		{name: "longer word", text: "//capturelint:ignored", want: nil, wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseComment(tt.text)
			if ok != tt.wantOk {
				t.Errorf("parseComment() ok = %v, want %v", ok, tt.wantOk)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseComment() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseComment()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func parse(t *testing.T, src string) (*token.FileSet, *ast.File) {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "test.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	return fset, file
}

func TestShouldIgnore(t *testing.T) {
	fset, file := parse(t, `package test

//capturelint:ignore
func line3() {}

//capturelint:ignore captures
func line6() {}

//capturelint:ignore outer
func line9() {}
`)

	m := Build(fset, file)
	if len(m) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(m))
	}

	if !m.ShouldIgnore(4, Captures) {
		t.Error("Expected line 4 to ignore captures")
	}
	if !m.ShouldIgnore(7, Captures) {
		t.Error("Expected line 7 to ignore captures")
	}
	if m.ShouldIgnore(7, Outer) {
		t.Error("Expected line 7 to NOT ignore outer")
	}
	if m.ShouldIgnore(10, Captures) {
		t.Error("Expected line 10 to NOT ignore captures")
	}
	if m.ShouldIgnore(100, Captures) {
		t.Error("Expected line 100 to NOT ignore anything")
	}
}

func TestGetUnusedIgnores(t *testing.T) {
	fset, file := parse(t, `package test

//capturelint:ignore
func unusedAll() {}

//capturelint:ignore captures,outer
func partlyUsed() {}

//capturelint:ignore ssa
func disabled() {}
`)

	m := Build(fset, file)
	enabled := EnabledCheckers{Captures: true, Outer: true, Plan: true}
	m.ShouldIgnore(7, Captures)

	unused := m.GetUnusedIgnores(enabled)
	if len(unused) != 3 {
		t.Fatalf("Expected 3 unused ignores, got %d", len(unused))
	}

	if len(unused[0].Checkers) != 0 {
		t.Errorf("Expected whole directive unused, got %v", unused[0].Checkers)
	}
	if len(unused[1].Checkers) != 1 || unused[1].Checkers[0] != Outer {
		t.Errorf("Expected [outer] unused, got %v", unused[1].Checkers)
	}
	if len(unused[2].Checkers) != 1 || unused[2].Checkers[0] != SSA {
		t.Errorf("Expected [ssa] unused for disabled checker, got %v", unused[2].Checkers)
	}
}

func TestGetUnusedIgnoresWithUsed(t *testing.T) {
	fset, file := parse(t, `package test

//capturelint:ignore
func used() {}
`)

	m := Build(fset, file)
	m.ShouldIgnore(4, Plan)

	if unused := m.GetUnusedIgnores(EnabledCheckers{Plan: true}); len(unused) != 0 {
		t.Errorf("Expected 0 unused ignores, got %d", len(unused))
	}
}

func TestGetUnknownCheckers(t *testing.T) {
	fset, file := parse(t, `package test

//capturelint:ignore plna,outer
func typo() {}

//capturelint:ignore
func all() {}
`)

	m := Build(fset, file)
	m.ShouldIgnore(4, Outer)

	unknown := m.GetUnknownCheckers()
	if len(unknown) != 1 {
		t.Fatalf("Expected 1 directive with unknown checkers, got %d", len(unknown))
	}
	if len(unknown[0].Checkers) != 1 || unknown[0].Checkers[0] != "plna" {
		t.Errorf("Expected [plna], got %v", unknown[0].Checkers)
	}

	// Unknown names are not also reported as unused.
	unused := m.GetUnusedIgnores(EnabledCheckers{Outer: true})
	if len(unused) != 1 || len(unused[0].Checkers) != 0 {
		t.Errorf("Expected only the bare directive unused, got %v", unused)
	}
}
