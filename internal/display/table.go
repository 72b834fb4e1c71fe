package display

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Table renders an aligned text table with optional color support.
type Table struct {
	headers []string
	rows    [][]string
	// highlightRow is the 0-based row index to highlight (typically "today"). -1 = none.
	highlightRow int
	// muted cells are rendered dim, e.g. times that could not be computed.
	muted string
}

// NewTable creates a new table with the given column headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:      headers,
		highlightRow: -1,
	}
}

// AddRow appends a row of values. The number of values should match the number of headers.
func (t *Table) AddRow(values []string) {
	t.rows = append(t.rows, values)
}

// SetHighlightRow sets which row index (0-based) should be highlighted.
func (t *Table) SetHighlightRow(idx int) {
	t.highlightRow = idx
}

// SetMuted dims every cell equal to v outside the highlighted row.
func (t *Table) SetMuted(v string) {
	t.muted = v
}

// Render produces the formatted table string with leading indent.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	// Calculate column widths in runes, matching fmt's padding.
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); i < len(widths) && n > widths[i] {
				widths[i] = n
			}
		}
	}

	var sb strings.Builder

	// Header row.
	headerLine := formatRow(t.headers, widths)
	sb.WriteString("  " + Bold(headerLine) + "\n")

	// Separator row using Unicode box-drawing dashes.
	sepParts := make([]string, len(widths))
	for i, w := range widths {
		sepParts[i] = strings.Repeat("─", w)
	}
	sepLine := "  " + strings.Join(sepParts, "  ")
	sb.WriteString(Dim(sepLine) + "\n")

	// Data rows.
	for i, row := range t.rows {
		if i == t.highlightRow {
			sb.WriteString("  " + Accent(formatRow(row, widths)) + "\n")
			continue
		}
		sb.WriteString("  " + formatCells(row, widths, t.style) + "\n")
	}

	return sb.String()
}

func (t *Table) style(cell, padded string) string {
	if t.muted != "" && cell == t.muted {
		return Dim(padded)
	}
	return padded
}

// formatRow formats a row of cells using the given column widths.
func formatRow(cells []string, widths []int) string {
	return formatCells(cells, widths, nil)
}

// formatCells pads each cell to its column width, then applies style to it.
func formatCells(cells []string, widths []int, style func(cell, padded string) string) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = fmt.Sprintf("%-*s", w, cell)
		if style != nil {
			parts[i] = style(cell, parts[i])
		}
	}
	return strings.Join(parts, "  ")
}
