package dump

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

const (
	indentStep = "  "
	maxDepth   = 8
)

// Lines renders v as a YAML-like block and returns the individual lines
// without trailing newlines. Maps nest under their key, slices render as
// dashed items, multi-line strings continue on indented lines, and
// everything else prints on a single line via fmt. Values nested deeper
// than maxDepth collapse to "..." so cyclic structures cannot hang a
// log call.
func Lines(v any) []string {
	w := &writer{}
	w.value(0, "", v, 0)
	return w.lines
}

type writer struct {
	lines []string
}

func (w *writer) line(indent int, text string) {
	w.lines = append(w.lines, strings.Repeat(indentStep, indent)+text)
}

func (w *writer) value(indent int, label string, v any, depth int) {
	if depth > maxDepth {
		w.line(indent, join(label, "..."))
		return
	}

	if b, ok := v.([]byte); ok {
		v = string(b)
	}

	rv := unwrap(reflect.ValueOf(v))
	if !rv.IsValid() {
		w.line(indent, join(label, "null"))
		return
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Len() == 0 {
			w.line(indent, join(label, "{}"))
			return
		}
		body := indent
		if label != "" {
			w.line(indent, label)
			body++
		}
		w.mapBody(body, rv, depth+1)
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			w.line(indent, join(label, "[]"))
			return
		}
		body := indent
		if label != "" {
			w.line(indent, label)
			body++
		}
		w.listBody(body, rv, depth+1)
	default:
		s := scalar(rv.Interface())
		if strings.Contains(s, "\n") {
			if label != "" {
				w.line(indent, label)
				indent++
			}
			for _, ln := range strings.Split(s, "\n") {
				w.line(indent, ln)
			}
			return
		}
		w.line(indent, join(label, s))
	}
}

func (w *writer) mapBody(indent int, rv reflect.Value, depth int) {
	type pair struct {
		key string
		val any
	}

	pairs := make([]pair, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, pair{key: scalar(iter.Key().Interface()), val: iter.Value().Interface()})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })

	for _, p := range pairs {
		w.value(indent, p.key+":", p.val, depth)
	}
}

func (w *writer) listBody(indent int, rv reflect.Value, depth int) {
	for i := 0; i < rv.Len(); i++ {
		w.value(indent, "-", rv.Index(i).Interface(), depth)
	}
}

func unwrap(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func scalar(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%+v", v)
}

func join(label, s string) string {
	if label == "" {
		return s
	}
	return label + " " + s
}
