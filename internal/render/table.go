// Package render writes query result tables as aligned fixed-width text.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Table is an ordered set of column names plus rows of values aligned
// positionally with the columns.
type Table struct {
	Columns []string
	Rows    [][]interface{}
}

// Render writes t to w, one row per line. Column headers are upper-cased.
// Each column is as wide as its widest cell or header; a column is
// right-aligned when the table has rows and the first row's value in that
// column is numeric.
func Render(w io.Writer, t Table) error {
	headers := make([]string, len(t.Columns))
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		headers[i] = strings.ToUpper(col)
		widths[i] = len(headers[i])
	}

	cells := make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		cells[r] = make([]string, len(t.Columns))
		for c := range t.Columns {
			var v interface{}
			if c < len(row) {
				v = row[c]
			}
			s := formatCell(v)
			cells[r][c] = s
			if len(s) > widths[c] {
				widths[c] = len(s)
			}
		}
	}

	rightAlign := make([]bool, len(t.Columns))
	if len(t.Rows) > 0 {
		for c := range t.Columns {
			if c < len(t.Rows[0]) {
				rightAlign[c] = isNumeric(t.Rows[0][c])
			}
		}
	}

	if err := writeRow(w, headers, widths, rightAlign); err != nil {
		return err
	}
	for _, row := range cells {
		if err := writeRow(w, row, widths, rightAlign); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, cells []string, widths []int, right []bool) error {
	parts := make([]string, len(cells))
	for i, s := range cells {
		if right[i] {
			parts[i] = fmt.Sprintf("%*s", widths[i], s)
		} else {
			parts[i] = fmt.Sprintf("%-*s", widths[i], s)
		}
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	return err
}

// formatCell renders nil as the literal "null", matching how the store's
// JSON responses spell missing values.
func formatCell(v interface{}) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%v", v)
}

func isNumeric(v interface{}) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return true
	}
	return false
}
