package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// display writes dazel's own status and diagnostic lines to stderr,
// styled only when stderr is a terminal. The proxied command's streams
// are never touched.
type display struct {
	w io.Writer

	errStyle  lipgloss.Style
	warnStyle lipgloss.Style
	infoStyle lipgloss.Style
}

func newDisplay(w io.Writer) *display {
	// The renderer detects the writer's color capabilities itself, so
	// piped stderr gets plain text.
	renderer := lipgloss.NewRenderer(w)
	return &display{
		w:         w,
		errStyle:  renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		warnStyle: renderer.NewStyle().Foreground(lipgloss.Color("11")),
		infoStyle: renderer.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

// Errorf prints the single-line fatal diagnostic.
func (d *display) Errorf(format string, args ...any) {
	fmt.Fprintf(d.w, "%s %s\n", d.errStyle.Render("dazel:"), fmt.Sprintf(format, args...))
}

func (d *display) Warnf(format string, args ...any) {
	fmt.Fprintf(d.w, "%s %s\n", d.warnStyle.Render("dazel:"), fmt.Sprintf(format, args...))
}

func (d *display) Infof(format string, args ...any) {
	fmt.Fprintf(d.w, "%s %s\n", d.infoStyle.Render("dazel:"), fmt.Sprintf(format, args...))
}
