// Package config loads capturelint settings from a YAML file.
//
// # File Format
//
//	max_captures: 4
//	report_outer: true
//	report_plan: false
//	verify_ssa: true
//	ancestor_policy: mark   # or "detect"
//	exclude:
//	  - "*_gen.go"
//	  - "mock_*.go"
//
// Unknown keys are rejected.
//
// # Precedence
//
// Command-line flags are applied with [Config.Merge] after the file is
// loaded. A flag overrides the file only when it was given, so
// -report-outer=false disables report_outer: true. [Bool] and [Int] record
// whether a flag was given.
package config
