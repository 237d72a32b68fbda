package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// DefaultPalette is used by the CLI for lookup output.
var DefaultPalette = NewPalette("#04B575", "#FF0000", "#FFA500", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	ok   lipgloss.Style
	err  lipgloss.Style
	warn lipgloss.Style
	help lipgloss.Style
}

func NewPalette(s, e, w, h string) *Palette {
	return &Palette{
		ok:   NewBold(s),
		err:  NewBold(e),
		warn: NewStyle(w),
		help: NewEm(h),
	}
}

func (p *Palette) OK(s string) string   { return p.ok.Render(s) }
func (p *Palette) Err(s string) string  { return p.err.Render(s) }
func (p *Palette) Warn(s string) string { return p.warn.Render(s) }
func (p *Palette) Help(s string) string { return p.help.Render(s) }

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
