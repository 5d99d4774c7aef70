package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// DecodeTable parses an ISS JSON document and extracts the named section.
//
// Numbers are decoded as json.Number so their text is kept exactly as sent.
func DecodeTable(body []byte, section string) (*Table, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, &ParseError{Section: section, Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &ParseError{Section: section, Err: errors.New("unexpected data after top-level value")}
	}

	root, ok := doc.(map[string]any)
	if !ok {
		return nil, &SchemaError{Section: section, Reason: "response is not a json object"}
	}

	raw, ok := root[section]
	if !ok {
		return nil, &SchemaError{Section: section, Reason: "section missing"}
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &SchemaError{Section: section, Reason: "section is not an object"}
	}

	columns, err := decodeColumns(section, obj)
	if err != nil {
		return nil, err
	}

	data, err := decodeRows(section, obj, len(columns))
	if err != nil {
		return nil, err
	}

	return &Table{
		Section: section,
		Columns: columns,
		Data:    data,
	}, nil
}

func decodeColumns(section string, obj map[string]any) ([]string, error) {
	raw, ok := obj["columns"]
	if !ok {
		return nil, &SchemaError{Section: section, Reason: "columns missing"}
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, &SchemaError{Section: section, Reason: "columns is not an array"}
	}

	columns := make([]string, len(list))
	seen := make(map[string]struct{}, len(list))
	for i, v := range list {
		name, ok := v.(string)
		if !ok {
			return nil, &SchemaError{Section: section, Reason: fmt.Sprintf("column %d is not a string", i)}
		}
		if _, dup := seen[name]; dup {
			return nil, &SchemaError{Section: section, Reason: fmt.Sprintf("duplicate column %q", name)}
		}
		seen[name] = struct{}{}
		columns[i] = name
	}
	return columns, nil
}

func decodeRows(section string, obj map[string]any, width int) ([][]any, error) {
	raw, ok := obj["data"]
	if !ok {
		return nil, &SchemaError{Section: section, Reason: "data missing"}
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, &SchemaError{Section: section, Reason: "data is not an array"}
	}

	rows := make([][]any, len(list))
	for i, v := range list {
		row, ok := v.([]any)
		if !ok {
			return nil, &SchemaError{Section: section, Reason: fmt.Sprintf("row %d is not an array", i)}
		}
		if len(row) != width {
			return nil, &SchemaError{
				Section: section,
				Reason:  fmt.Sprintf("row %d has %d cells, want %d", i, len(row), width),
			}
		}
		rows[i] = row
	}
	return rows, nil
}

// ColumnIndex returns the zero-based position of name in t.Columns.
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, c := range t.Columns {
		if c == name {
			return i, nil
		}
	}
	return -1, &ColumnNotFoundError{
		Section: t.Section,
		Column:  name,
		Columns: t.Columns,
	}
}

// Resolve returns the positions of names, in the order given.
// It fails on the first missing column.
func (t *Table) Resolve(names ...string) ([]int, error) {
	idx := make([]int, len(names))
	for i, name := range names {
		n, err := t.ColumnIndex(name)
		if err != nil {
			return nil, err
		}
		idx[i] = n
	}
	return idx, nil
}

// FormatCell renders a decoded cell as report text. Numbers keep the ISS
// text as sent (272.10 stays 272.10) and are never normalized.
// "SBER" -> SBER, json.Number("271.5") -> 271.5, nil -> null
func FormatCell(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}
