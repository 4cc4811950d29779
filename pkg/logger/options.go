package logger

import (
	"io"
	"os"
)

// Renderer formats. FormatPretty produces colorized human-readable
// lines, FormatJSON produces one JSON object per line.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

const productionEnv = "production"

// Options configures a Logger. The zero value is usable: minimum level
// INFO, format chosen from APP_ENV, timestamps on, output to stdout.
type Options struct {
	// Level is the minimum severity name emitted ("debug", "info",
	// "success", "warn", "error"). Empty means "info".
	Level string

	// Format selects the renderer, FormatPretty or FormatJSON. Empty
	// falls back to FormatJSON when APP_ENV is "production" and
	// FormatPretty otherwise.
	Format string

	// ID is a fixed identifier attached to every entry, e.g. "API".
	ID string

	// DisableTimestamp drops the timestamp segment from pretty output.
	// JSON output always carries a timestamp.
	DisableTimestamp bool

	// Output is the destination writer. Nil means os.Stdout.
	Output io.Writer
}

func (o Options) resolveFormat() string {
	switch o.Format {
	case FormatPretty, FormatJSON:
		return o.Format
	}
	if os.Getenv("APP_ENV") == productionEnv {
		return FormatJSON
	}
	return FormatPretty
}
