package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// summaryStyles colours the one-line summaries printed after a run.
type summaryStyles struct {
	ok   lipgloss.Style
	fail lipgloss.Style
}

func newSummaryStyles(w io.Writer, color bool) summaryStyles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return summaryStyles{
		ok:   r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		fail: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// count renders n with the failure style when n is non-zero.
func (s summaryStyles) count(n int, text string) string {
	if n > 0 {
		return s.fail.Render(text)
	}
	return s.ok.Render(text)
}
