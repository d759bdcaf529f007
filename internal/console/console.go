// Package console renders session output: plain lines, color-tagged lines,
// error lines and figlet-style banners. It holds no state beyond the
// destination writer and the palette.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
)

// Tag selects a color for a printed line.
type Tag string

const (
	TagNone    Tag = ""
	TagMagenta Tag = "magenta"
	TagGreen   Tag = "green"
	TagRed     Tag = "red"
	TagCyan    Tag = "cyan"
)

// Printer writes formatted text to one client connection.
type Printer struct {
	w       io.Writer
	colored bool
	palette map[Tag]*color.Color
}

// NewPrinter builds a printer. When colored is false all tags degrade to
// plain text, which the websocket transport relies on.
func NewPrinter(w io.Writer, colored bool) *Printer {
	palette := map[Tag]*color.Color{
		TagMagenta: color.New(color.FgMagenta),
		TagGreen:   color.New(color.FgGreen),
		TagRed:     color.New(color.FgRed),
		TagCyan:    color.New(color.FgCyan),
	}
	if colored {
		// The writer is a socket, not a tty; force ANSI output.
		for _, c := range palette {
			c.EnableColor()
		}
	}
	return &Printer{w: w, colored: colored, palette: palette}
}

// Colorize wraps text in the tag's ANSI codes, or returns it unchanged when
// colors are disabled. Used for inline fragments inside a larger line.
func (p *Printer) Colorize(tag Tag, text string) string {
	c, ok := p.palette[tag]
	if !ok || !p.colored {
		return text
	}
	return c.Sprint(text)
}

// Line prints one plain text line.
func (p *Printer) Line(text string) {
	fmt.Fprintln(p.w, text)
}

// Linef prints one formatted line.
func (p *Printer) Linef(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Tagged prints one line in the tag's color.
func (p *Printer) Tagged(tag Tag, text string) {
	fmt.Fprintln(p.w, p.Colorize(tag, text))
}

// Error prints one error line.
func (p *Printer) Error(text string) {
	fmt.Fprintln(p.w, p.Colorize(TagRed, "Error: "+text))
}

// Banner prints text as large ASCII art in the tag's color.
func (p *Printer) Banner(text string, tag Tag) {
	rendered := figure.NewFigure(text, "", false).String()
	for _, line := range strings.Split(strings.TrimRight(rendered, "\n"), "\n") {
		p.Tagged(tag, line)
	}
}

// Prompt writes prompt text without a trailing newline. Callers pass text
// through Colorize first when they want a colored prompt.
func (p *Printer) Prompt(text string) {
	fmt.Fprint(p.w, text)
}
