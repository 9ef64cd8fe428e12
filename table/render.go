package table

import (
	"strings"
	"unicode/utf8"
)

// RenderMarkdown renders headers and rows as a Markdown pipe table. Literal
// pipe characters in headers and cells are escaped as \| before widths are
// computed, so a cell value can never break the table syntax.
func RenderMarkdown(headers []string, rows [][]string) string {
	headers = escapePipes(headers)
	escaped := make([][]string, len(rows))
	for i, row := range rows {
		escaped[i] = escapePipes(row)
	}

	widths := columnWidths(headers, escaped)

	var b strings.Builder
	writeRow(&b, headers, widths)
	b.WriteByte('\n')
	for i, w := range widths {
		if i == 0 {
			b.WriteByte('|')
		}
		b.WriteByte(':')
		b.WriteString(strings.Repeat("-", w+1))
		b.WriteByte('|')
	}
	for _, row := range escaped {
		b.WriteByte('\n')
		writeRow(&b, row, widths)
	}
	return b.String()
}

// RenderGrid renders headers and rows as an ASCII grid table with a ruled
// line after every data row. No escaping is needed: cell boundaries are
// positional, not syntactic.
func RenderGrid(headers []string, rows [][]string) string {
	widths := columnWidths(headers, rows)

	dashRule := gridRule(widths, '-')
	var b strings.Builder
	b.WriteString(dashRule)
	b.WriteByte('\n')
	writeRow(&b, headers, widths)
	b.WriteByte('\n')
	b.WriteString(gridRule(widths, '='))
	for _, row := range rows {
		b.WriteByte('\n')
		writeRow(&b, row, widths)
		b.WriteByte('\n')
		b.WriteString(dashRule)
	}
	return b.String()
}

func escapePipes(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return out
}

// Widths count runes, not bytes, so multibyte titles stay aligned.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); i < len(widths) && n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString("| ")
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", w-utf8.RuneCountInString(cell)))
		b.WriteByte(' ')
	}
	b.WriteByte('|')
}

func gridRule(widths []int, fill byte) string {
	var b strings.Builder
	for _, w := range widths {
		b.WriteByte('+')
		b.WriteString(strings.Repeat(string(fill), w+2))
	}
	b.WriteByte('+')
	return b.String()
}
