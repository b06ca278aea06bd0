package diag

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"minic/internal/source"
)

const gutter = "    | "

// Reporter renders errors against source lines and terminates the process.
type Reporter struct {
	Out   io.Writer
	Lines source.LineSource // может быть nil — тогда печатаем только заголовки
	Color bool
	// Exit is called by Fatal with the error's exit status. Defaults to os.Exit.
	Exit func(code int)
}

// NewReporter creates a reporter writing to out.
func NewReporter(out io.Writer, lines source.LineSource, useColor bool) *Reporter {
	return &Reporter{Out: out, Lines: lines, Color: useColor, Exit: os.Exit}
}

// Fatal renders err and exits with its code. Errors that are not *Error
// are printed as plain messages and exit with ErrUsage.
func (r *Reporter) Fatal(err error) {
	if err == nil {
		return
	}
	if de, ok := As(err); ok {
		r.Render(de)
	} else {
		fmt.Fprintf(r.Out, "%s %v\n", r.paint(SevError, SevError.String()+":"), err)
	}
	exit := r.Exit
	if exit == nil {
		exit = os.Exit
	}
	exit(CodeOf(err).ExitStatus())
}

// Render writes the header line and the source excerpt of every location.
func (r *Reporter) Render(err *Error) {
	primary, hasPrimary := err.Primary()
	header := r.paint(SevError, SevError.String()+":") + " " + err.Message
	if hasPrimary {
		header = primary.String() + ": " + header
	}
	fmt.Fprintln(r.Out, header)

	seenPrimary := false
	for _, loc := range err.Locations {
		if !loc.IsValid() {
			continue
		}
		if seenPrimary {
			fmt.Fprintf(r.Out, "%s: %s appeared here\n", loc, r.paint(SevNote, SevNote.String()+":"))
		}
		seenPrimary = true
		r.excerpt(loc)
	}
}

func (r *Reporter) excerpt(loc source.Location) {
	if r.Lines == nil {
		return
	}
	line := r.Lines.Line(loc.Line)
	if line == "" && loc.Column > 1 {
		return
	}
	fmt.Fprintf(r.Out, "%s%s\n", gutter, line)
	fmt.Fprintf(r.Out, "%s%s\n", gutter, r.paintCaret(Underline(line, loc.Column, loc.Length)))
}

// Underline builds the marker line for [column, column+length) of line:
// padding up to the column, '^' under the first character and '~' under
// the rest. Tabs are preserved and wide runes get double padding so the
// marker aligns in a terminal.
func Underline(line string, column uint32, length uint16) string {
	if column == 0 {
		column = 1
	}
	start := min(int(column-1), len(line))
	end := min(start+int(length), len(line))

	var sb strings.Builder
	for _, r := range line[:start] {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", max(runewidth.RuneWidth(r), 1)))
	}

	width := runewidth.StringWidth(line[start:end])
	if width == 0 && end > start {
		width = utf8.RuneCountInString(line[start:end])
	}
	sb.WriteByte('^')
	if width > 1 {
		sb.WriteString(strings.Repeat("~", width-1))
	}
	return sb.String()
}

func (r *Reporter) paint(sev Severity, s string) string {
	if !r.Color {
		return s
	}
	var c *color.Color
	switch sev {
	case SevNote:
		c = color.New(color.FgCyan, color.Bold)
	default:
		c = color.New(color.FgRed, color.Bold)
	}
	c.EnableColor()
	return c.Sprint(s)
}

func (r *Reporter) paintCaret(s string) string {
	if !r.Color {
		return s
	}
	c := color.New(color.FgGreen, color.Bold)
	c.EnableColor()
	return c.Sprint(s)
}
