package ansi

const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"
)

// Paint wraps s in the given SGR code followed by a reset. An empty s
// stays empty so optional segments can be painted unconditionally.
func Paint(code, s string) string {
	if s == "" {
		return ""
	}
	return code + s + Reset
}
