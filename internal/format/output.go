package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// Tabular is implemented by payloads that can be listed as a table.
type Tabular interface {
	Header() []string
	Rows() [][]string
}

// Write writes output in the requested format.
//
// Supported formats:
// - json (default)
// - table (payload must implement Tabular)
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "table":
		t, ok := v.(Tabular)
		if !ok {
			return fmt.Errorf("output cannot be shown as a table: %T", v)
		}
		return WriteTable(w, t)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON output for CLI commands.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WriteTable renders t with a bold header row. Color is dropped automatically when
// stdout is not a terminal.
func WriteTable(w io.Writer, t Tabular) error {
	bold := color.New(color.Bold).SprintFunc()

	tbl := uitable.New()
	tbl.Separator = "  "
	header := make([]any, 0, len(t.Header()))
	for _, h := range t.Header() {
		header = append(header, bold(h))
	}
	tbl.AddRow(header...)
	for _, r := range t.Rows() {
		row := make([]any, 0, len(r))
		for _, c := range r {
			row = append(row, c)
		}
		tbl.AddRow(row...)
	}
	_, err := fmt.Fprintln(w, tbl)
	return err
}
