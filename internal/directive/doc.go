// Package directive provides comment directive parsing for capturelint.
//
// # Overview
//
//	directive/
//	└── ignore/    # //capturelint:ignore directive
//
// # Directive Format
//
// Directives follow the format:
//
//	//capturelint:<directive> [args]
//
// Examples:
//
//	//capturelint:ignore
//	//capturelint:ignore plan
//	//capturelint:ignore captures,outer - reviewed
//
// # Ignore Directive
//
// Suppresses diagnostics for the next line or the same line:
//
//	//capturelint:ignore
//	go func() { use(x) }()  // No diagnostic
//
//	go func() { use(x) }()  //capturelint:ignore
//
// A directive that suppresses nothing is itself reported.
//
// See [ignore] package for details.
package directive
