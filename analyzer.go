// Package capturelint provides a go/analysis based analyzer that computes
// how closures would be lowered into functions without lexical capture.
package capturelint

import (
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"reflect"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/capturelint/internal/config"
	"github.com/mpyw/capturelint/internal/directive/ignore"
	"github.com/mpyw/capturelint/internal/lower"
	internalssa "github.com/mpyw/capturelint/internal/ssa"
	"github.com/mpyw/capturelint/internal/tracker"
)

// Flags for the analyzer.
var (
	configPath     string
	maxCaptures    config.Int
	reportOuter    config.Bool
	reportPlan     config.Bool
	verifySSA      config.Bool
	ancestorPolicy string
	exclude        string
)

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "",
		"path to a YAML config file")
	Analyzer.Flags.Var(&maxCaptures, "max-captures",
		"report closures capturing more than this many symbols (0 disables)")
	Analyzer.Flags.Var(&reportOuter, "report-outer",
		"report closures that depend on their method's receiver")
	Analyzer.Flags.Var(&reportPlan, "report-plan",
		"report the lowering plan of every closure that needs parameters")
	Analyzer.Flags.Var(&verifySSA, "verify-ssa",
		"cross-check captured variables against SSA free variables")
	Analyzer.Flags.StringVar(&ancestorPolicy, "ancestor-policy", "",
		"effect of a reference to a type watched by an enclosing method: mark or detect")
	Analyzer.Flags.StringVar(&exclude, "exclude", "",
		"comma-separated file name patterns to skip (e.g., *_gen.go)")
}

// Analyzer is the main analyzer for capturelint. Its result is the
// *lower.Result of the package.
var Analyzer = &analysis.Analyzer{
	Name:       "capturelint",
	Doc:        "computes the explicit parameters each closure would need without lexical capture",
	Requires:   []*analysis.Analyzer{inspect.Analyzer, internalssa.BuildSSAAnalyzer},
	Run:        run,
	Flags:      flag.FlagSet{},
	ResultType: reflect.TypeOf((*lower.Result)(nil)),
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	res := lower.Build(pass.Pkg, insp, pass.TypesInfo, lower.Options{
		AncestorPolicy: tracker.AncestorPolicy(cfg.AncestorPolicy),
	})

	skipFiles := buildSkipFiles(pass, cfg)
	ignoreMaps := buildIgnoreMaps(pass, skipFiles)

	var ssaProg *internalssa.Program
	if cfg.VerifySSA {
		ssaProg = internalssa.Build(pass)
	}

	r := &reporter{
		pass:       pass,
		cfg:        cfg,
		ignoreMaps: ignoreMaps,
		skipFiles:  skipFiles,
		ssaProg:    ssaProg,
	}
	for _, plan := range res.Plans {
		r.check(plan)
	}

	reportUnusedIgnores(pass, ignoreMaps, buildEnabledCheckers(cfg))

	return res, nil
}

// loadConfig reads the config file and overlays explicitly given flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := config.Overrides{
		MaxCaptures: maxCaptures.Ptr(),
		ReportOuter: reportOuter.Ptr(),
		ReportPlan:  reportPlan.Ptr(),
		VerifySSA:   verifySSA.Ptr(),
	}
	if ancestorPolicy != "" {
		var policy config.Policy
		if err := policy.UnmarshalText([]byte(ancestorPolicy)); err != nil {
			return nil, fmt.Errorf("-ancestor-policy: %w", err)
		}
		flags.AncestorPolicy = &policy
	}
	for _, pattern := range strings.Split(exclude, ",") {
		if pattern = strings.TrimSpace(pattern); pattern != "" {
			flags.Exclude = append(flags.Exclude, pattern)
		}
	}

	cfg.Merge(flags)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// buildSkipFiles creates a set of filenames to skip.
// Generated files and files matching an exclude pattern are skipped.
func buildSkipFiles(pass *analysis.Pass, cfg *config.Config) map[string]bool {
	skipFiles := make(map[string]bool)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if ast.IsGenerated(file) || cfg.Excluded(filename) {
			skipFiles[filename] = true
		}
	}

	return skipFiles
}

// buildIgnoreMaps creates ignore maps for each file in the pass.
func buildIgnoreMaps(pass *analysis.Pass, skipFiles map[string]bool) map[string]ignore.Map {
	ignoreMaps := make(map[string]ignore.Map)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if skipFiles[filename] {
			continue
		}
		ignoreMaps[filename] = ignore.Build(pass.Fset, file)
	}

	return ignoreMaps
}

// buildEnabledCheckers creates a map of which checkers are enabled.
func buildEnabledCheckers(cfg *config.Config) ignore.EnabledCheckers {
	enabled := make(ignore.EnabledCheckers)

	if cfg.MaxCaptures > 0 {
		enabled[ignore.Captures] = true
	}
	if cfg.ReportOuter {
		enabled[ignore.Outer] = true
	}
	if cfg.ReportPlan {
		enabled[ignore.Plan] = true
	}
	if cfg.VerifySSA {
		enabled[ignore.SSA] = true
	}

	return enabled
}

// reportUnusedIgnores reports ignore directives that name unknown checkers
// or were not used.
func reportUnusedIgnores(pass *analysis.Pass, ignoreMaps map[string]ignore.Map, enabled ignore.EnabledCheckers) {
	for _, file := range pass.Files {
		ignoreMap, ok := ignoreMaps[pass.Fset.Position(file.Pos()).Filename]
		if !ok {
			continue
		}
		for _, unknown := range ignoreMap.GetUnknownCheckers() {
			pass.Reportf(unknown.Pos, "unknown checker(s) in capturelint:ignore directive: %s", joinCheckers(unknown.Checkers))
		}
		for _, unused := range ignoreMap.GetUnusedIgnores(enabled) {
			if len(unused.Checkers) == 0 {
				pass.Reportf(unused.Pos, "unused capturelint:ignore directive")
				continue
			}
			pass.Reportf(unused.Pos, "unused capturelint:ignore directive for checker(s): %s", joinCheckers(unused.Checkers))
		}
	}
}

func joinCheckers(checkers []ignore.CheckerName) string {
	names := make([]string, len(checkers))
	for i, c := range checkers {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
