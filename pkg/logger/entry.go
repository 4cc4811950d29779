package logger

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	pkgerrors "github.com/pkg/errors"
)

// Metadata carries the caller-supplied structured fields of a log entry.
type Metadata map[string]any

// ErrorValue is the explicit error shape accepted by the log methods.
// Callers that want full control over how a logged error renders can
// build one directly instead of passing an error.
type ErrorValue struct {
	Name    string
	Message string
	Stack   string
	Cause   any
}

// Wire keys owned by the renderers. Caller metadata under these keys is
// stripped during normalization so it cannot collide with the entry's
// own fields.
var reservedKeys = map[string]struct{}{
	"level":     {},
	"message":   {},
	"timestamp": {},
	"id":        {},
}

type entry struct {
	level     Level
	time      time.Time
	id        string
	message   string
	meta      Metadata
	errorOnly bool
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// classify splits the value passed to a log method into its display
// message and, when the value is error-like, its normalized ErrorValue.
// Strings pass through, errors are inspected, everything else is
// stringified via fmt.
func classify(v any) (string, *ErrorValue) {
	switch val := v.(type) {
	case string:
		return val, nil
	case ErrorValue:
		ev := val
		if ev.Name == "" {
			ev.Name = "Error"
		}
		return ev.Message, &ev
	case *ErrorValue:
		if val == nil {
			return "<nil>", nil
		}
		ev := *val
		if ev.Name == "" {
			ev.Name = "Error"
		}
		return ev.Message, &ev
	case error:
		ev := fromError(val)
		return ev.Message, &ev
	default:
		return fmt.Sprint(v), nil
	}
}

// fromError normalizes a Go error: the exported type name becomes the
// error name, a stack trace is captured when one is attached anywhere in
// the unwrap chain, and the direct unwrap target becomes the cause.
func fromError(err error) ErrorValue {
	ev := ErrorValue{
		Name:    errorName(err),
		Message: err.Error(),
		Stack:   stackOf(err),
	}
	if cause := stderrors.Unwrap(err); cause != nil {
		ev.Cause = cause
	}
	return ev
}

// errorName derives a display name from the error's dynamic type.
// Unexported and anonymous types report the generic "Error" since their
// names are implementation details.
func errorName(err error) string {
	t := reflect.TypeOf(err)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "Error"
	}

	name := t.Name()
	first, _ := utf8.DecodeRuneInString(name)
	if name == "" || !unicode.IsUpper(first) {
		return "Error"
	}
	return name
}

func stackOf(err error) string {
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		if st, ok := e.(stackTracer); ok {
			return strings.TrimLeft(fmt.Sprintf("%+v", st.StackTrace()), "\n")
		}
	}
	return ""
}

// causeValue shapes a cause for rendering: errors and ErrorValues
// flatten to a name/message/stack mapping, anything else passes through
// verbatim.
func causeValue(c any) any {
	switch cv := c.(type) {
	case ErrorValue:
		return causeFields(cv)
	case *ErrorValue:
		if cv == nil {
			return nil
		}
		return causeFields(*cv)
	case error:
		return causeFields(fromError(cv))
	default:
		return c
	}
}

func causeFields(ev ErrorValue) map[string]any {
	if ev.Name == "" {
		ev.Name = "Error"
	}
	fields := map[string]any{
		"name":    ev.Name,
		"message": ev.Message,
	}
	if ev.Stack != "" {
		fields["stack"] = ev.Stack
	}
	return fields
}

// mergeMetadata flattens the variadic metadata maps into one, later maps
// overriding earlier ones, with reserved wire keys dropped.
func mergeMetadata(metas []Metadata) Metadata {
	merged := Metadata{}
	for _, m := range metas {
		for k, v := range m {
			if _, reserved := reservedKeys[k]; reserved {
				continue
			}
			merged[k] = v
		}
	}
	return merged
}

// normalize applies the error-entry rules. An error-like value logged at
// LevelError with no caller metadata becomes an error-only entry whose
// stack and cause move into the metadata block. An error-like value
// logged with metadata, or below LevelError, nests under the "error" key
// instead, and caller values win on collision.
func normalize(level Level, v any, metas []Metadata) (string, Metadata, bool, string) {
	merged := mergeMetadata(metas)

	message, ev := classify(v)
	if ev == nil {
		return message, merged, false, ""
	}

	if level == LevelError && len(merged) == 0 {
		meta := Metadata{}
		if ev.Stack != "" {
			meta["stack"] = ev.Stack
		}
		if ev.Cause != nil {
			meta["cause"] = causeValue(ev.Cause)
		}
		return message, meta, true, ev.Name
	}

	errObj := map[string]any{
		"name":    ev.Name,
		"message": ev.Message,
	}
	if ev.Stack != "" {
		errObj["stack"] = ev.Stack
	}
	if ev.Cause != nil {
		errObj["cause"] = causeValue(ev.Cause)
	}

	meta := Metadata{"error": errObj}
	for k, val := range merged {
		meta[k] = val
	}
	return message, meta, false, ""
}
