// EDAKit - Exploratory Data Analysis Toolkit
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/edakit

package plot

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"

	"github.com/tomtom215/edakit/internal/table"
)

// AbsentMarker is printed for absent cells in text output.
const AbsentMarker = "NA"

// RenderTable writes t to out as a text table. A non-empty style title is
// printed as the table caption.
func RenderTable(out io.Writer, t *table.Table, style Style) {
	tw := tablewriter.NewWriter(out)
	tw.SetHeader(t.ColumnNames())
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	if style.Title != "" {
		tw.SetCaption(true, style.Title)
	}

	for i := 0; i < t.NumRows(); i++ {
		row := t.Row(i)
		cells := make([]string, len(row))
		for c, v := range row {
			cells[c] = FormatCell(v)
		}
		tw.Append(cells)
	}
	tw.Render()
}

// FormatCell renders a cell for text output.
func FormatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return AbsentMarker
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// WriteJSON writes t to out as a JSON array with one object per row. Object
// keys follow column order and absent cells are null.
func WriteJSON(out io.Writer, t *table.Table) error {
	w := bufio.NewWriter(out)
	names := t.ColumnNames()

	keys := make([][]byte, len(names))
	for i, name := range names {
		k, err := json.Marshal(name)
		if err != nil {
			return fmt.Errorf("failed to encode column name %q: %w", name, err)
		}
		keys[i] = k
	}

	_ = w.WriteByte('[')
	for r := 0; r < t.NumRows(); r++ {
		if r > 0 {
			_ = w.WriteByte(',')
		}
		_ = w.WriteByte('{')
		for c, v := range t.Row(r) {
			if c > 0 {
				_ = w.WriteByte(',')
			}
			val, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("failed to encode row %d column %q: %w", r, names[c], err)
			}
			_, _ = w.Write(keys[c])
			_ = w.WriteByte(':')
			_, _ = w.Write(val)
		}
		_ = w.WriteByte('}')
	}
	_, _ = w.WriteString("]\n")

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
