// Package ignore provides //capturelint:ignore directive parsing.
//
// # Overview
//
// The ignore directive suppresses diagnostics for a closure, either for all
// checks or for specific ones.
//
// # Directive Placement
//
// The directive can appear on the line before the closure or on the same
// line:
//
//	//capturelint:ignore
//	go func() { ... }()  // Suppressed
//
//	go func() { ... }()  //capturelint:ignore
//
// # Checker-Specific Ignores
//
//	//capturelint:ignore captures
//	g.Go(func() error { ... })  // Only the capture limit is ignored
//
//	//capturelint:ignore captures,outer - hot path, reviewed
//	g.Go(func() error { ... })
//
// # Valid Checker Names
//
//	┌──────────┬───────────────────────────────────────────────┐
//	│ Name     │ Description                                   │
//	├──────────┼───────────────────────────────────────────────┤
//	│ captures │ closure captures more symbols than allowed    │
//	│ outer    │ closure depends on its method's receiver      │
//	│ plan     │ lowering plan report                          │
//	│ ssa      │ capture set disagrees with SSA free variables │
//	└──────────┴───────────────────────────────────────────────┘
//
// # Unused Directives
//
// Directives that suppress nothing are reported, and so are checker names
// not listed above. A directive naming a checker that is disabled is always
// reported as unused for that checker.
package ignore
