package proxy

import (
	"os"

	"golang.org/x/term"
)

// TermInfo captures the host terminal state that shapes a translated
// invocation: whether to allocate a TTY in the container, and the
// geometry forwarded so in-container tools wrap output correctly.
type TermInfo struct {
	// Interactive is true when both stdin and stdout are terminals.
	// Piped output must never receive terminal control sequences.
	Interactive bool

	Columns int
	Lines   int
	Term    string
}

// CurrentTermInfo inspects the process's real standard streams.
func CurrentTermInfo() TermInfo {
	info := TermInfo{
		Interactive: term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())),
		Columns:     80,
		Lines:       24,
		Term:        os.Getenv("TERM"),
	}
	if cols, lines, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 && lines > 0 {
		info.Columns = cols
		info.Lines = lines
	}
	return info
}
