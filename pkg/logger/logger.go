package logger

import (
	"io"
	"os"
	"time"
)

type renderer interface {
	render(e entry) string
}

// Logger emits structured log entries to a single writer. A Logger is
// immutable after construction, so concurrent use needs no coordination
// beyond whatever the writer itself provides.
type Logger struct {
	min Level
	id  string
	out io.Writer
	r   renderer
}

// New builds a Logger from opts. APP_ENV is consulted once here when no
// explicit format is set; later environment changes do not affect the
// returned logger.
func New(opts Options) *Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	var r renderer
	switch opts.resolveFormat() {
	case FormatJSON:
		r = jsonRenderer{}
	default:
		r = prettyRenderer{timestamp: !opts.DisableTimestamp}
	}

	return &Logger{
		min: ParseLevel(opts.Level),
		id:  opts.ID,
		out: out,
		r:   r,
	}
}

// Debug and the other level methods accept either a message string or an
// error-like value (error or ErrorValue), plus optional metadata maps
// merged left to right.
func (l *Logger) Debug(v any, meta ...Metadata) { l.log(LevelDebug, v, meta) }

func (l *Logger) Info(v any, meta ...Metadata) { l.log(LevelInfo, v, meta) }

func (l *Logger) Success(v any, meta ...Metadata) { l.log(LevelSuccess, v, meta) }

func (l *Logger) Warn(v any, meta ...Metadata) { l.log(LevelWarn, v, meta) }

func (l *Logger) Error(v any, meta ...Metadata) { l.log(LevelError, v, meta) }

func (l *Logger) log(level Level, v any, metas []Metadata) {
	if level < l.min {
		return
	}

	message, meta, errorOnly, errName := normalize(level, v, metas)

	id := l.id
	if id == "" && errorOnly {
		id = errName
	}

	e := entry{
		level:     level,
		time:      time.Now(),
		id:        id,
		message:   message,
		meta:      meta,
		errorOnly: errorOnly,
	}

	io.WriteString(l.out, l.r.render(e))
}

var std = New(Options{})

// Default returns the logger used by the package-level log functions.
func Default() *Logger { return std }

// SetDefault replaces the logger used by the package-level log
// functions. Call it during startup, before other goroutines log
// through them.
func SetDefault(l *Logger) {
	if l != nil {
		std = l
	}
}

func Debug(v any, meta ...Metadata) { std.log(LevelDebug, v, meta) }

func Info(v any, meta ...Metadata) { std.log(LevelInfo, v, meta) }

func Success(v any, meta ...Metadata) { std.log(LevelSuccess, v, meta) }

func Warn(v any, meta ...Metadata) { std.log(LevelWarn, v, meta) }

func Error(v any, meta ...Metadata) { std.log(LevelError, v, meta) }
