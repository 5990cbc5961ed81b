// ABOUTME: Table converter renders an extracted table grid to markdown and RFC-4180 CSV
// ABOUTME: Pure and deterministic; identical grids always yield identical output

package tables

import (
	"bytes"
	"encoding/csv"
	"strings"
)

// Normalize returns a rectangular copy of the grid.
// Short rows are padded with empty cells to the widest row's column count.
// The input grid is never mutated.
func Normalize(grid [][]string) [][]string {
	if len(grid) == 0 {
		return [][]string{}
	}

	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}

	normalized := make([][]string, len(grid))
	for i, row := range grid {
		padded := make([]string, width)
		copy(padded, row)
		normalized[i] = padded
	}

	return normalized
}

// ToMarkdown renders a grid as a pipe-delimited markdown table.
// The first row is treated as the header, followed by a separator row.
// An empty grid renders as an empty string.
func ToMarkdown(grid [][]string) string {
	grid = Normalize(grid)
	if len(grid) == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow := func(row []string) {
		sb.WriteString("|")
		for _, cell := range row {
			sb.WriteString(" ")
			sb.WriteString(escapeCell(cell))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	writeRow(grid[0])

	sb.WriteString("|")
	for range grid[0] {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")

	for _, row := range grid[1:] {
		writeRow(row)
	}

	return sb.String()
}

// escapeCell makes a cell value safe inside a pipe-delimited row
func escapeCell(cell string) string {
	cell = strings.ReplaceAll(cell, "\n", " ")
	return strings.ReplaceAll(cell, "|", "\\|")
}

// ToCSV renders a grid as RFC-4180 CSV.
// Fields containing a comma, double quote, or newline are quoted with
// internal quotes doubled. Rows are separated by a single newline and the
// last row carries a terminating newline. An empty grid renders as an
// empty string.
func ToCSV(grid [][]string) string {
	grid = Normalize(grid)
	if len(grid) == 0 {
		return ""
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range grid {
		// WriteAll would work too, but writing row by row keeps the
		// error path explicit even though a bytes.Buffer cannot fail.
		if err := w.Write(row); err != nil {
			return ""
		}
	}
	w.Flush()

	return buf.String()
}

// Render populates the derived markdown and CSV renderings of a grid.
func Render(grid [][]string) (markdown string, csvText string) {
	normalized := Normalize(grid)
	return ToMarkdown(normalized), ToCSV(normalized)
}
