// Package console renders demo narration: banners, numbered steps, notes,
// key/value blocks and tables. With color disabled it prints plain text,
// which is what tests and piped output see.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// plainBorder draws tables with ASCII only, for piped output and tests.
var plainBorder = lipgloss.Border{
	Top:          "-",
	Bottom:       "-",
	Left:         "|",
	Right:        "|",
	TopLeft:      "+",
	TopRight:     "+",
	BottomLeft:   "+",
	BottomRight:  "+",
	MiddleLeft:   "+",
	MiddleRight:  "+",
	Middle:       "+",
	MiddleTop:    "+",
	MiddleBottom: "+",
}

// Printer writes styled output to one writer. The first write error is
// kept and returned by Err; later writes are skipped.
type Printer struct {
	w     io.Writer
	color bool
	err   error
	step  int

	title   lipgloss.Style
	section lipgloss.Style
	note    lipgloss.Style
	key     lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	border  lipgloss.Style
}

// New returns a Printer for w.
func New(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:     w,
		color: color,
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1),
		section: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFB86C")),
		note:    r.NewStyle().Italic(true).Foreground(lipgloss.Color("#AAAAAA")),
		key:     r.NewStyle().Foreground(lipgloss.Color("#8BE9FD")),
		good:    r.NewStyle().Foreground(lipgloss.Color("#50FA7B")),
		bad:     r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		header:  r.NewStyle().Bold(true).Padding(0, 1),
		cell:    r.NewStyle().Padding(0, 1),
		border:  r.NewStyle().Foreground(lipgloss.Color("#444444")),
	}
}

// Err returns the first write error.
func (p *Printer) Err() error { return p.err }

func (p *Printer) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *Printer) render(st lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return st.Render(s)
}

// Title prints the demo banner and resets step numbering.
func (p *Printer) Title(s string) {
	p.step = 0
	if p.color {
		p.write(p.title.Render(s) + "\n\n")
		return
	}
	bar := strings.Repeat("=", len(s)+4)
	p.write(bar + "\n  " + s + "\n" + bar + "\n\n")
}

// Step prints the next numbered scenario heading.
func (p *Printer) Step(format string, args ...any) {
	p.step++
	head := fmt.Sprintf("%d) %s", p.step, fmt.Sprintf(format, args...))
	if p.step > 1 {
		p.write("\n")
	}
	p.write(p.render(p.section, head) + "\n")
}

// Line prints an indented line of narration.
func (p *Printer) Line(format string, args ...any) {
	p.write("   " + fmt.Sprintf(format, args...) + "\n")
}

// Note prints an explanatory aside.
func (p *Printer) Note(format string, args ...any) {
	p.write("   " + p.render(p.note, "» "+fmt.Sprintf(format, args...)) + "\n")
}

// Ok prints a success line.
func (p *Printer) Ok(format string, args ...any) {
	p.write("   " + p.render(p.good, "✓ "+fmt.Sprintf(format, args...)) + "\n")
}

// Fail prints a failure line; it does not stop the demo.
func (p *Printer) Fail(format string, args ...any) {
	p.write("   " + p.render(p.bad, "✗ "+fmt.Sprintf(format, args...)) + "\n")
}

// KV prints aligned key/value pairs given as alternating arguments.
// A trailing key without value is ignored.
func (p *Printer) KV(kv ...string) {
	width := 0
	for i := 0; i+1 < len(kv); i += 2 {
		if len(kv[i]) > width {
			width = len(kv[i])
		}
	}
	for i := 0; i+1 < len(kv); i += 2 {
		k := fmt.Sprintf("%-*s", width, kv[i])
		p.write("   " + p.render(p.key, k) + " : " + kv[i+1] + "\n")
	}
}

// Table prints rows under headers.
func (p *Printer) Table(headers []string, rows [][]string) {
	t := table.New().Headers(headers...).Rows(rows...)
	if p.color {
		t = t.Border(lipgloss.RoundedBorder()).
			BorderStyle(p.border).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return p.header
				}
				return p.cell
			})
	} else {
		t = t.Border(plainBorder).
			StyleFunc(func(_, _ int) lipgloss.Style { return lipgloss.NewStyle().Padding(0, 1) })
	}
	for _, l := range strings.Split(t.String(), "\n") {
		p.write("   " + l + "\n")
	}
}

// Blank prints an empty line.
func (p *Printer) Blank() { p.write("\n") }
