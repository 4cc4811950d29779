package logger

import (
	"fmt"
	"strings"

	"github.com/angeloszaimis/duolog/internal/ansi"
	"github.com/angeloszaimis/duolog/internal/dump"
)

const prettyTimeLayout = "2006-01-02 15:04:05.000"

var levelColors = map[Level]string{
	LevelDebug:   ansi.Cyan,
	LevelInfo:    ansi.Blue,
	LevelSuccess: ansi.Green,
	LevelWarn:    ansi.Yellow,
	LevelError:   ansi.Red,
}

type prettyRenderer struct {
	timestamp bool
}

func (p prettyRenderer) render(e entry) string {
	var b strings.Builder

	if p.timestamp {
		b.WriteString(ansi.Paint(ansi.Gray, e.time.Format(prettyTimeLayout)))
		b.WriteByte(' ')
	}

	b.WriteString(ansi.Paint(levelColor(e.level), fmt.Sprintf("%-5s", e.level.String())))
	b.WriteByte(' ')

	if e.id != "" {
		b.WriteString(ansi.Paint(ansi.Bold, e.id+":"))
		b.WriteByte(' ')
	}

	b.WriteString(e.message)

	p.writeMeta(&b, e)

	b.WriteByte('\n')
	return b.String()
}

func (p prettyRenderer) writeMeta(b *strings.Builder, e entry) {
	if len(e.meta) == 0 {
		return
	}

	if e.errorOnly {
		if stack, ok := e.meta["stack"].(string); ok && stack != "" {
			for _, line := range strings.Split(stack, "\n") {
				b.WriteString("\n  ")
				b.WriteString(ansi.Paint(ansi.Red, line))
			}
		}
		if cause, ok := e.meta["cause"]; ok {
			for _, line := range dump.Lines(map[string]any{"cause": cause}) {
				b.WriteString("\n  ")
				b.WriteString(ansi.Paint(ansi.Red, line))
			}
		}
		return
	}

	for _, line := range dump.Lines(map[string]any(e.meta)) {
		b.WriteString("\n  ")
		b.WriteString(ansi.Paint(ansi.Gray, line))
	}
}

func levelColor(l Level) string {
	if c, ok := levelColors[l]; ok {
		return c
	}
	return ansi.Gray
}
