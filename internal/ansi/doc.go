// Package ansi holds the SGR escape codes used by the pretty log renderer.
// Codes are written verbatim without terminal capability detection; callers
// decide whether color output is appropriate.
package ansi
