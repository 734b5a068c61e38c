package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColorGreen marks things that were created.
var ColorGreen = lipgloss.Color("82")

// Status collects status messages in order and forwards each one to Sink
// as soon as it is emitted.
type Status struct {
	Sink  func(string)
	Lines []string
}

// NewStatus returns a Status forwarding to sink, which may be nil.
func NewStatus(sink func(string)) *Status {
	return &Status{Sink: sink}
}

// Emit records msg and forwards it.
func (s *Status) Emit(msg string) {
	s.Lines = append(s.Lines, msg)
	if s.Sink != nil {
		s.Sink(msg)
	}
}

// Emitf formats and emits a message.
func (s *Status) Emitf(format string, args ...any) {
	s.Emit(fmt.Sprintf(format, args...))
}

// Printer writes status lines to w, styled when w is a terminal. Writers
// that are not terminals receive the plain text.
type Printer struct {
	w       io.Writer
	created lipgloss.Style
	exists  lipgloss.Style
}

// NewPrinter returns a Printer bound to w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		created: r.NewStyle().Foreground(ColorGreen),
		exists:  r.NewStyle().Faint(true),
	}
}

// Print writes one status line.
func (p *Printer) Print(msg string) {
	switch {
	case strings.HasPrefix(msg, "Created "):
		msg = p.created.Render("Created") + msg[len("Created"):]
	case strings.HasSuffix(msg, " already exists"):
		msg = p.exists.Render(msg)
	}
	fmt.Fprintln(p.w, msg)
}
