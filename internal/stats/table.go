package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// column is the display width and alignment of one table column.
type column struct {
	width int
	right bool
}

// columnsFor sizes every column to its widest cell, header included.
func columnsFor(headers []string, rows [][]string, rightAlignCols map[int]bool) []column {
	var cols []column
	grow := func(cells []string) {
		for i, cell := range cells {
			if i == len(cols) {
				cols = append(cols, column{right: rightAlignCols[i]})
			}
			cols[i].width = max(cols[i].width, runewidth.StringWidth(cell))
		}
	}
	grow(headers)
	for _, row := range rows {
		grow(row)
	}
	return cols
}

// render pads each cell to its column and joins them with one space. Trailing
// padding is trimmed so a left-aligned last column leaves no whitespace.
func render(cols []column, cells []string) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		if col.right {
			parts[i] = runewidth.FillLeft(cell, col.width)
		} else {
			parts[i] = runewidth.FillRight(cell, col.width)
		}
	}
	return strings.TrimRight(strings.Join(parts, " "), " ")
}

// formatTable lays headers and rows out in aligned columns.
func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	cols := columnsFor(headers, rows, rightAlignCols)
	if len(cols) == 0 {
		return nil
	}
	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, render(cols, headers))
	}
	for _, row := range rows {
		lines = append(lines, render(cols, row))
	}
	return lines
}
