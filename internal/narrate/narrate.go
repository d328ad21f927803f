// Package narrate renders the demo narration: styled, line-oriented
// console output describing each operation as it happens.
package narrate

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	stepStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Italic(true)
	bufferStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// Narrator writes narration lines to a single output. With plain set,
// styling is skipped entirely (tests, pipes, NO_COLOR terminals).
type Narrator struct {
	out   io.Writer
	plain bool
}

// New creates a Narrator writing to out.
func New(out io.Writer, plain bool) *Narrator {
	return &Narrator{out: out, plain: plain}
}

func (n *Narrator) render(style lipgloss.Style, s string) string {
	if n.plain {
		return s
	}
	return style.Render(s)
}

// Header prints a section heading.
func (n *Narrator) Header(s string) {
	fmt.Fprintln(n.out, n.render(headerStyle, "== "+s+" =="))
}

// Stepf prints one narrated operation.
func (n *Narrator) Stepf(format string, args ...any) {
	fmt.Fprintln(n.out, n.render(stepStyle, "-> "+fmt.Sprintf(format, args...)))
}

// Noticef prints an informational outcome, such as an empty undo.
func (n *Narrator) Noticef(format string, args ...any) {
	fmt.Fprintln(n.out, n.render(noticeStyle, "   "+fmt.Sprintf(format, args...)))
}

// Buffer prints the current buffer content.
func (n *Narrator) Buffer(text string) {
	fmt.Fprintln(n.out, n.render(bufferStyle, fmt.Sprintf("   buffer: %q", text)))
}

// Item prints one entry of a 1-based enumeration.
func (n *Narrator) Item(i int, s string) {
	fmt.Fprintf(n.out, "   %d. %s\n", i, s)
}
