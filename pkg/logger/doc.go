// Package logger provides environment-aware structured logging with
// configurable log levels. It renders colorized, human-readable lines
// during development and single-line JSON records in production:
//
//   - Pretty format: timestamp, colored level, bold identifier, message,
//     and an indented YAML-like metadata block.
//   - JSON format: one object per line with level, message, timestamp,
//     optional id, and the metadata keys in sorted order.
//
// Errors get special treatment. Logging an error at the error level with
// no extra metadata renders its stack trace as raw red text and uses the
// error's type name as the line identifier; logging an error with
// metadata (or at any other level) nests it under the "error" key so it
// coexists with the caller's fields.
package logger
