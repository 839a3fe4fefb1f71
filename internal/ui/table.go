package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders rows as left-aligned columns separated by spaces, no borders.
type Table struct {
	rows       [][]string
	colWidths  []int
	colStyles  map[int]lipgloss.Style
	colPadding int
}

// NewTable creates a new table with the specified number of columns
func NewTable(cols int) *Table {
	return &Table{
		colWidths:  make([]int, cols),
		colStyles:  make(map[int]lipgloss.Style),
		colPadding: 2,
	}
}

// AddRow adds a row to the table. Missing cells are empty, extra cells are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.colWidths))
	for i := 0; i < len(t.colWidths) && i < len(cells); i++ {
		row[i] = cells[i]
		if w := lipgloss.Width(cells[i]); w > t.colWidths[i] {
			t.colWidths[i] = w
		}
	}
	t.rows = append(t.rows, row)
}

// SetPadding sets the padding between columns
func (t *Table) SetPadding(padding int) {
	t.colPadding = padding
}

// SetColumnStyle styles every cell of column col. Widths are measured on the
// unstyled text.
func (t *Table) SetColumnStyle(col int, style lipgloss.Style) {
	t.colStyles[col] = style
}

// String renders the table, one line per row.
func (t *Table) String() string {
	if len(t.rows) == 0 {
		return ""
	}

	var sb strings.Builder
	padding := strings.Repeat(" ", t.colPadding)

	for _, row := range t.rows {
		for i, cell := range row {
			if i > 0 {
				sb.WriteString(padding)
			}
			if style, ok := t.colStyles[i]; ok {
				cell = style.Render(cell)
			}
			sb.WriteString(cell)
			// Last column is never padded.
			if i < len(row)-1 {
				sb.WriteString(strings.Repeat(" ", t.colWidths[i]-lipgloss.Width(row[i])))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// KeyValues renders label/value pairs as two columns with muted labels.
func KeyValues(rows [][2]string) string {
	t := NewTable(2)
	t.SetColumnStyle(0, Muted)
	for _, r := range rows {
		t.AddRow(r[0], r[1])
	}
	return t.String()
}
