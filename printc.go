// Package printc prints values as "label = rendering" paragraphs separated
// by blank lines. It is print-debugging sugar: no file/line prefixes, no log
// levels, no repeating the variable name inside a format string. Renderings
// come from a structural debug renderer (sanity-io/litter by default) and
// are passed through verbatim, one blank line after every entry.
package printc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"printc/internal/style"
)

// Entry pairs a label with the value it describes. Entries are transient:
// built for one print call, written in input order, never reordered or
// merged.
type Entry struct {
	Label string
	Value any
}

// E builds an Entry.
func E(label string, value any) Entry {
	return Entry{Label: label, Value: value}
}

// Renderer produces the textual debug rendering of a value. The printer
// writes whatever the renderer returns without reformatting it, internal
// newlines included.
type Renderer interface {
	Render(v any) string
}

// RenderFunc adapts a plain function to the Renderer interface.
type RenderFunc func(v any) string

// Render calls f(v).
func (f RenderFunc) Render(v any) string { return f(v) }

// Printer writes entries as "label = rendering" paragraphs.
//
// A Printer holds no state between calls and does not serialize access to
// its writer; concurrent callers interleave exactly as they would with
// fmt.Println.
type Printer struct {
	out      io.Writer
	renderer Renderer
	color    bool
	compact  bool
}

// Option configures a Printer.
type Option func(*Printer)

// WithWriter sets the destination for Print. Defaults to os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(p *Printer) { p.out = w }
}

// WithRenderer replaces the debug renderer. Takes precedence over
// WithCompact.
func WithRenderer(r Renderer) Option {
	return func(p *Printer) { p.renderer = r }
}

// WithColor styles labels and separators for terminal output. Only the
// label and the " = " separator are styled; the rendering itself is never
// touched.
func WithColor(enabled bool) Option {
	return func(p *Printer) { p.color = enabled }
}

// WithCompact makes the default renderer emit single-line renderings.
func WithCompact(enabled bool) Option {
	return func(p *Printer) { p.compact = enabled }
}

// New creates a Printer. With no options it writes litter-rendered
// multi-line dumps to stdout, uncolored.
func New(opts ...Option) *Printer {
	p := &Printer{out: os.Stdout}
	for _, opt := range opts {
		opt(p)
	}
	if p.renderer == nil {
		if p.compact {
			p.renderer = litterRenderer{opts: compactOptions}
		} else {
			p.renderer = litterRenderer{opts: prettyOptions}
		}
	}
	return p
}

// Default is the printer used by the package-level functions.
var Default = New()

// Fprint writes each entry to w as "label = rendering" followed by one
// blank line, last entry included, in input order.
func (p *Printer) Fprint(w io.Writer, entries ...Entry) error {
	for _, e := range entries {
		label, sep := e.Label, " = "
		if p.color {
			label = style.Label(label)
			sep = style.Separator(sep)
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n\n", label, sep, p.renderer.Render(e.Value)); err != nil {
			return fmt.Errorf("write entry %q: %w", e.Label, err)
		}
	}
	return nil
}

// Print writes the entries to the printer's writer. Write errors are
// discarded; console output is treated as infallible here.
func (p *Printer) Print(entries ...Entry) {
	_ = p.Fprint(p.out, entries...)
}

// Sprint returns the formatted output as a string.
func (p *Printer) Sprint(entries ...Entry) string {
	var b strings.Builder
	_ = p.Fprint(&b, entries...)
	return b.String()
}

// Fprint writes the entries to w using the Default printer's rendering.
func Fprint(w io.Writer, entries ...Entry) error {
	return Default.Fprint(w, entries...)
}

// Print writes the entries using the Default printer.
func Print(entries ...Entry) {
	Default.Print(entries...)
}

// Sprint formats the entries using the Default printer.
func Sprint(entries ...Entry) string {
	return Default.Sprint(entries...)
}

// V prints a single labeled value via the Default printer and returns the
// value unchanged, so it can wrap an expression in place:
//
//	total := printc.V("subtotal", subtotal) + tax
func V[T any](label string, value T) T {
	Default.Print(E(label, value))
	return value
}
