// Package table renders rows of strings as a bordered text grid.
package table

import (
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Render draws the first row as the header and every other row below it.
//
// Unlike a plain header/body grid, a border line is drawn after every body row,
// so that a cell spanning several lines stays distinguishable from the next row.
// Missing cells of short rows are drawn empty.
func Render(rows [][]string) string {
	columns := columnCount(rows)
	if columns == 0 {
		return ""
	}

	var b strings.Builder
	w := tablewriter.NewWriter(&b)
	w.SetAutoFormatHeaders(false)
	w.SetAutoWrapText(false)
	w.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	w.SetAlignment(tablewriter.ALIGN_LEFT)
	w.SetRowLine(true)

	w.SetHeader(normalize(rows[0], columns))
	for _, row := range rows[1:] {
		w.Append(normalize(row, columns))
	}
	w.Render()
	return strings.TrimSuffix(b.String(), "\n")
}

func columnCount(rows [][]string) int {
	var columns int
	for _, row := range rows {
		columns = max(columns, len(row))
	}
	return columns
}

// normalize returns a copy of row with the given number of cells,
// each of them holding the same number of lines.
func normalize(row []string, columns int) []string {
	height := 1
	for _, cell := range row {
		height = max(height, strings.Count(cell, "\n")+1)
	}

	cells := make([]string, columns)
	for i := range cells {
		var cell string
		if i < len(row) {
			cell = row[i]
		}
		cells[i] = cell + strings.Repeat("\n", height-1-strings.Count(cell, "\n"))
	}
	return cells
}
