// Package report renders truth tables as plain text or markdown,
// optionally with colored truth glyphs for terminal output.
package report

import (
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/proptab/proptab/internal/truth"
)

// Config controls table rendering.
type Config struct {
	// True and False are the truth glyphs; empty fields fall back to
	// "T" and "F".
	True  string
	False string

	// Color wraps truth glyphs in ANSI colors (green true, red false).
	Color bool
}

func (cfg Config) glyphs() (string, string) {
	t, f := cfg.True, cfg.False
	if t == "" {
		t = "T"
	}
	if f == "" {
		f = "F"
	}
	return t, f
}

var (
	trueColor  = color.New(color.FgGreen).SprintFunc()
	falseColor = color.New(color.FgRed).SprintFunc()
)

// Text renders the table as an aligned plain-text report: one header
// row with the variable symbols followed by every sub-expression
// label, a rule, then one row per assignment.
func Text(cfg Config, t *truth.Table) string {
	trueGlyph, falseGlyph := cfg.glyphs()
	glyphWidth := maxWidth(trueGlyph, falseGlyph)

	widths := make([]int, 0, len(t.Vars)+len(t.Headers))
	cells := make([]string, 0, cap(widths))
	for _, v := range t.Vars {
		cells = append(cells, v)
		widths = append(widths, max(utf8.RuneCountInString(v), glyphWidth))
	}
	for _, h := range t.Headers {
		cells = append(cells, h)
		widths = append(widths, max(utf8.RuneCountInString(h), glyphWidth))
	}

	var sb strings.Builder
	writeTextRow(&sb, cells, widths, len(t.Vars), nil)

	ruleWidth := 0
	for _, w := range widths {
		ruleWidth += w + 2
	}
	ruleWidth += 2 // the column separator
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteByte('\n')

	for _, row := range t.Rows {
		cells = cells[:0]
		for _, v := range row.Assignment {
			cells = append(cells, glyph(v, trueGlyph, falseGlyph))
		}
		var colors []func(...interface{}) string
		if cfg.Color {
			colors = rowColors(row)
		}
		for _, v := range row.Values {
			cells = append(cells, glyph(v, trueGlyph, falseGlyph))
		}
		writeTextRow(&sb, cells, widths, len(t.Vars), colors)
	}
	return sb.String()
}

// rowColors returns one colorizer per cell of the row, assignment
// columns first.
func rowColors(row truth.Row) []func(...interface{}) string {
	out := make([]func(...interface{}) string, 0, len(row.Assignment)+len(row.Values))
	for _, v := range append(append([]bool{}, row.Assignment...), row.Values...) {
		if v {
			out = append(out, trueColor)
		} else {
			out = append(out, falseColor)
		}
	}
	return out
}

// writeTextRow emits one table line, centering each cell and placing
// a separator between the variable block and the expression block.
// Cells are padded before coloring so ANSI codes do not skew widths.
func writeTextRow(sb *strings.Builder, cells []string, widths []int, varCount int, colors []func(...interface{}) string) {
	var line strings.Builder
	for i, cell := range cells {
		if i == varCount {
			line.WriteString("| ")
		}
		padded := center(cell, widths[i])
		if colors != nil {
			padded = colors[i](padded)
		}
		line.WriteString(padded)
		line.WriteString("  ")
	}
	sb.WriteString(strings.TrimRight(line.String(), " "))
	sb.WriteByte('\n')
}

// Markdown renders the table as a GitHub pipe table.
func Markdown(cfg Config, t *truth.Table) string {
	trueGlyph, falseGlyph := cfg.glyphs()

	var sb strings.Builder
	sb.WriteByte('|')
	for _, v := range t.Vars {
		sb.WriteString(" " + v + " |")
	}
	for _, h := range t.Headers {
		sb.WriteString(" " + h + " |")
	}
	sb.WriteByte('\n')

	sb.WriteByte('|')
	for range t.Vars {
		sb.WriteString(" :---: |")
	}
	for range t.Headers {
		sb.WriteString(" :---: |")
	}
	sb.WriteByte('\n')

	for _, row := range t.Rows {
		sb.WriteByte('|')
		for _, v := range row.Assignment {
			sb.WriteString(" " + glyph(v, trueGlyph, falseGlyph) + " |")
		}
		for _, v := range row.Values {
			sb.WriteString(" " + glyph(v, trueGlyph, falseGlyph) + " |")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func glyph(v bool, trueGlyph, falseGlyph string) string {
	if v {
		return trueGlyph
	}
	return falseGlyph
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	right := width - n - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

func maxWidth(ss ...string) int {
	w := 0
	for _, s := range ss {
		if n := utf8.RuneCountInString(s); n > w {
			w = n
		}
	}
	return w
}
