package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info, code, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		note:   color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty renders diagnostics for humans. Each one prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a caret underline below the primary span.
// Callers sort the bag beforehand.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		f := fs.Get(d.Primary.File)
		if f == nil {
			fmt.Fprintf(w, "%s %s: %s\n", pal.severity(d.Severity).Sprint(d.Severity), pal.code.Sprint(d.Code.ID()), d.Message)
			continue
		}
		start, end := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			displayPath(f.Path, opts.PathMode, opts.BaseDir), start.Line, start.Col,
			pal.severity(d.Severity).Sprint(d.Severity), pal.code.Sprint(d.Code.ID()), d.Message)
		writeSnippet(w, f, start, end, opts.Context, pal)

		if opts.ShowNotes {
			for _, n := range d.Notes {
				ns, _ := fs.Resolve(n.Span)
				path := f.Path
				if nf := fs.Get(n.Span.File); nf != nil {
					path = nf.Path
				}
				fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", pal.note.Sprint("note:"),
					displayPath(path, opts.PathMode, opts.BaseDir), ns.Line, ns.Col, n.Msg)
			}
		}
	}
}

func writeSnippet(w io.Writer, f *source.File, start, end source.LineCol, context int, pal palette) {
	first := uint32(1)
	if c := uint32(max(context, 0)); start.Line > c {
		first = start.Line - c
	}
	numWidth := len(strconv.FormatUint(uint64(start.Line), 10))
	for ln := first; ln <= start.Line; ln++ {
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", numWidth, ln), expandTabs(f.GetLine(ln)))
	}

	line := f.GetLine(start.Line)
	col := clampCol(start.Col, line)
	endCol := len(line) + 1
	if end.Line == start.Line {
		endCol = clampCol(end.Col, line)
	}
	pad := runewidth.StringWidth(expandTabs(line[:col-1]))
	width := 1
	if endCol > col {
		width = max(runewidth.StringWidth(expandTabs(line[col-1:endCol-1])), 1)
	}
	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "%s %s%s\n", pal.gutter.Sprintf("%*s |", numWidth, ""), strings.Repeat(" ", pad), pal.caret.Sprint(marker))
}

// clampCol converts a 1-based byte column into a valid slice bound of line.
func clampCol(col uint32, line string) int {
	c := int(col)
	if c < 1 {
		return 1
	}
	if c > len(line)+1 {
		return len(line) + 1
	}
	return c
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
