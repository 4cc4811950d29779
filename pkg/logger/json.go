package logger

import (
	"bytes"
	"encoding/json"
	"sort"
)

const jsonTimeLayout = "2006-01-02T15:04:05.000Z07:00"

type jsonRenderer struct{}

func (jsonRenderer) render(e entry) string {
	var b bytes.Buffer

	b.WriteByte('{')
	writeField(&b, "level", e.level.String())
	b.WriteByte(',')
	writeField(&b, "message", e.message)
	b.WriteByte(',')
	writeField(&b, "timestamp", e.time.UTC().Format(jsonTimeLayout))
	if e.id != "" {
		b.WriteByte(',')
		writeField(&b, "id", e.id)
	}

	keys := make([]string, 0, len(e.meta))
	for k := range e.meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(',')
		writeField(&b, k, e.meta[k])
	}

	b.WriteByte('}')
	b.WriteByte('\n')
	return b.String()
}

// writeField appends "key":value. A value that cannot be marshalled is
// replaced by an error token so one bad metadata value cannot poison the
// whole line.
func writeField(b *bytes.Buffer, key string, v any) {
	keyJSON, _ := json.Marshal(key)
	b.Write(keyJSON)
	b.WriteByte(':')

	valJSON, err := json.Marshal(v)
	if err != nil {
		valJSON, _ = json.Marshal("!ERROR: " + err.Error())
	}
	b.Write(valJSON)
}
