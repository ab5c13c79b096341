package omnidata

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Preview renders up to limit rows of a result as a bordered table for
// debugging and CLI output. A limit <= 0 renders every row. Diagnostics are
// listed after the table, one per line.
func Preview(w io.Writer, res *Result, limit int) error {
	rows := res.Rows
	truncated := 0
	if limit > 0 && len(rows) > limit {
		truncated = len(rows) - limit
		rows = rows[:limit]
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = row.Fields
	}

	numCols := len(res.Header)
	for _, row := range cells {
		if len(row) > numCols {
			numCols = len(row)
		}
	}
	if numCols == 0 {
		if _, err := fmt.Fprintln(w, "(empty)"); err != nil {
			return err
		}
		return previewDiagnostics(w, res.Diagnostics)
	}

	widths := previewWidths(numCols, res.Header, cells)

	if err := writeRule(w, "╭", "┬", "╮", widths); err != nil {
		return err
	}
	if len(res.Header) > 0 {
		if err := writeCells(w, res.Header, widths); err != nil {
			return err
		}
		if err := writeRule(w, "├", "┼", "┤", widths); err != nil {
			return err
		}
	}
	for _, row := range cells {
		if err := writeCells(w, row, widths); err != nil {
			return err
		}
	}
	if err := writeRule(w, "╰", "┴", "╯", widths); err != nil {
		return err
	}
	if truncated > 0 {
		if _, err := fmt.Fprintf(w, "… %d more rows\n", truncated); err != nil {
			return err
		}
	}
	return previewDiagnostics(w, res.Diagnostics)
}

func previewDiagnostics(w io.Writer, diags []Diagnostic) error {
	for _, d := range diags {
		if _, err := fmt.Fprintf(w, "! %s\n", d); err != nil {
			return err
		}
	}
	return nil
}

func previewWidths(numCols int, header []string, rows [][]string) []int {
	widths := make([]int, numCols)
	for i, h := range header {
		if cw := runewidth.StringWidth(h); cw > widths[i] {
			widths[i] = cw
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); i < numCols && cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	return widths
}

func writeRule(w io.Writer, left, mid, right string, widths []int) error {
	parts := make([]string, len(widths))
	for i, cw := range widths {
		parts[i] = strings.Repeat("─", cw+2)
	}
	_, err := fmt.Fprintln(w, left+strings.Join(parts, mid)+right)
	return err
}

func writeCells(w io.Writer, cells []string, widths []int) error {
	var b strings.Builder
	b.WriteString("│")
	for i, cw := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := cw - runewidth.StringWidth(cell)
		b.WriteString(" " + cell + strings.Repeat(" ", pad) + " │")
	}
	_, err := fmt.Fprintln(w, b.String())
	return err
}
