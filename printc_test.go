package printc

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// raw passes pre-rendered strings through untouched, which pins the output
// contract without coupling the tests to the litter format.
var raw = RenderFunc(func(v any) string { return v.(string) })

func rawPrinter(opts ...Option) *Printer {
	return New(append([]Option{WithRenderer(raw)}, opts...)...)
}

func TestSprint_SingleEntry(t *testing.T) {
	got := rawPrinter().Sprint(E("x", "5"))
	want := "x = 5\n\n"
	if got != want {
		t.Errorf("Sprint = %q, want %q", got, want)
	}
}

func TestSprint_TwoEntries(t *testing.T) {
	got := rawPrinter().Sprint(E("a", "1"), E("b", "2"))
	want := "a = 1\n\nb = 2\n\n"
	if got != want {
		t.Errorf("Sprint = %q, want %q", got, want)
	}
}

func TestSprint_MultilineRenderingVerbatim(t *testing.T) {
	rendering := "Test {\n    a: \"v\",\n}"
	got := rawPrinter().Sprint(E("t", rendering))
	want := "t = Test {\n    a: \"v\",\n}\n\n"
	if got != want {
		t.Errorf("Sprint = %q, want %q", got, want)
	}
}

func TestSprint_OrderPreserved(t *testing.T) {
	p := rawPrinter()
	forward := p.Sprint(E("a", "1"), E("b", "2"))
	reversed := p.Sprint(E("b", "2"), E("a", "1"))

	if forward != "a = 1\n\nb = 2\n\n" {
		t.Errorf("forward = %q", forward)
	}
	if reversed != "b = 2\n\na = 1\n\n" {
		t.Errorf("reversed = %q", reversed)
	}
}

func TestSprint_Idempotent(t *testing.T) {
	p := rawPrinter()
	entries := []Entry{E("x", "1"), E("y", "2")}

	first := p.Sprint(entries...)
	second := p.Sprint(entries...)
	if first != second {
		t.Errorf("repeated Sprint differs: %q vs %q", first, second)
	}
}

func TestSprint_NoEntries(t *testing.T) {
	if got := rawPrinter().Sprint(); got != "" {
		t.Errorf("Sprint() = %q, want empty", got)
	}
}

func TestSprint_EmptyAndOddLabels(t *testing.T) {
	// Labels are not validated or trimmed.
	got := rawPrinter().Sprint(E("", "1"), E("  spaced  ", "2"))
	want := " = 1\n\n  spaced   = 2\n\n"
	if got != want {
		t.Errorf("Sprint = %q, want %q", got, want)
	}
}

func TestSprint_TrailingNewlineInRenderingKept(t *testing.T) {
	got := rawPrinter().Sprint(E("x", "5\n"))
	want := "x = 5\n\n\n"
	if got != want {
		t.Errorf("Sprint = %q, want %q", got, want)
	}
}

func TestPrint_WritesToConfiguredWriter(t *testing.T) {
	var buf bytes.Buffer
	rawPrinter(WithWriter(&buf)).Print(E("x", "5"))

	if got := buf.String(); got != "x = 5\n\n" {
		t.Errorf("Print wrote %q", got)
	}
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestFprint_PropagatesWriteError(t *testing.T) {
	sentinel := errors.New("pipe closed")
	err := rawPrinter().Fprint(failWriter{err: sentinel}, E("x", "5"))

	if !errors.Is(err, sentinel) {
		t.Errorf("Fprint error = %v, want wrapped %v", err, sentinel)
	}
}

func TestV_ReturnsValueAndPrints(t *testing.T) {
	var buf bytes.Buffer
	old := Default
	Default = rawPrinter(WithWriter(&buf))
	defer func() { Default = old }()

	got := V("n", "42")
	if got != "42" {
		t.Errorf("V returned %q, want %q", got, "42")
	}
	if out := buf.String(); out != "n = 42\n\n" {
		t.Errorf("V printed %q", out)
	}
}

func TestDefaultRenderer_StructIsMultiline(t *testing.T) {
	type account struct {
		Name  string
		Admin bool
	}
	out := New().Sprint(E("acct", account{Name: "Ada", Admin: true}))

	if !strings.Contains(out, "acct = ") {
		t.Errorf("missing label prefix: %q", out)
	}
	if !strings.Contains(out, "Name") || !strings.Contains(out, "Ada") {
		t.Errorf("missing field rendering: %q", out)
	}
	if !strings.Contains(out, "\n") || !strings.HasSuffix(out, "\n\n") {
		t.Errorf("expected multi-line paragraph with trailing blank line: %q", out)
	}
}

func TestCompactRenderer_SingleLine(t *testing.T) {
	type point struct{ X, Y int }
	out := New(WithCompact(true)).Sprint(E("p", point{X: 1, Y: 2}))

	body := strings.TrimSuffix(out, "\n\n")
	if strings.Contains(body, "\n") {
		t.Errorf("compact rendering spans lines: %q", out)
	}
	if !strings.HasSuffix(out, "\n\n") {
		t.Errorf("missing trailing blank line: %q", out)
	}
}

func TestWithColor_StylesOnlyLabelAndSeparator(t *testing.T) {
	// Without a terminal attached lipgloss renders plain text, so the
	// paragraph shape must survive either way.
	out := rawPrinter(WithColor(true)).Sprint(E("x", "5"))

	if !strings.Contains(out, "x") || !strings.Contains(out, "5") {
		t.Errorf("label or rendering missing: %q", out)
	}
	if !strings.HasSuffix(out, "5\n\n") {
		t.Errorf("rendering must stay unstyled and blank-line terminated: %q", out)
	}
}
