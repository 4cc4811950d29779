// Package dump renders arbitrary values as indented, YAML-like text blocks
// for the pretty log renderer. Output is deterministic: map keys are emitted
// in lexicographic order, nesting uses two-space indentation, and lines are
// never wrapped or truncated regardless of width.
package dump
