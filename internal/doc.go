// Package internal holds the implementation of capturelint.
//
// # Architecture Overview
//
//	                  +------------------+
//	                  |   analyzer.go    |  Entry point, flags, config
//	                  +--------+---------+
//	                           |
//	          +----------------+----------------+
//	          |                |                |
//	   +------v------+  +------v------+  +------v------+
//	   |    lower    |  |  directive  |  |     ssa     |
//	   | (AST walk)  |  |  (ignore)   |  |  (verify)   |
//	   +------+------+  +-------------+  +-------------+
//	          |
//	   +------+------+------------+
//	   |             |            |
//	+--v----+  +-----v---+  +-----v----+
//	| scope |  | tracker |  | typeutil |
//	+---+---+  +----+----+  +----------+
//	    |           |
//	    +-----+-----+
//	          |
//	     +----v---+
//	     |  decl  |
//	     +--------+
//
// # Flow
//
// For each package, [lower.Build] walks every file once. Each FuncDecl and
// FuncLit gets a [tracker.ID] in a [tracker.Arena] and a [scope.Frame] on
// the stack. Identifiers and selectors are resolved to [decl.Decl] values and
// fed to [tracker.Arena.TriggerUsed] of the innermost frame. When a FuncLit
// is left, its outer class and captured symbols are read back into a
// [lower.Plan].
//
// The root package then reports plans according to [config.Config], honoring
// //capturelint:ignore directives.
//
// # Package Responsibilities
//
//	decl/       Declaration model (kinds, parents, ancestry)
//	tracker/    Per-function usage trackers and capture queries
//	scope/      Stack of enclosing functions during the walk
//	lower/      AST to tracker events, lowering plans
//	typeutil/   go/types helpers (receivers, origins)
//	ssa/        SSA construction and free-variable comparison
//	config/     YAML config file and flag merging
//	directive/  Comment directive parsing
package internal
