// Package sheet implements the SheetDB subset served by the development
// server: named sheets of flat rows whose cells are all strings.
package sheet

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

// Row is one spreadsheet row keyed by column name.
type Row map[string]string

var (
	columnPattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,64}$`)
	sheetPattern  = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)
)

// RowsFrom accepts the "data" member of a create request: a single object
// or an array of objects.
func RowsFrom(data any) ([]Row, error) {
	switch v := data.(type) {
	case map[string]any:
		row, err := RowFrom(v)
		if err != nil {
			return nil, err
		}
		return []Row{row}, nil
	case []any:
		if len(v) == 0 {
			return nil, ErrEmptyData
		}
		rows := make([]Row, 0, len(v))
		for i, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: element %d is not an object", ErrInvalidData, i)
			}
			row, err := RowFrom(obj)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
		return rows, nil
	case nil:
		return nil, ErrEmptyData
	default:
		return nil, fmt.Errorf("%w: data must be an object or an array of objects", ErrInvalidData)
	}
}

// RowFrom stringifies every cell of obj the way a spreadsheet would store it.
func RowFrom(obj map[string]any) (Row, error) {
	if len(obj) == 0 {
		return nil, ErrEmptyData
	}

	row := make(Row, len(obj))
	for k, v := range obj {
		if err := ValidateColumn(k); err != nil {
			return nil, err
		}
		cell, err := cellOf(v)
		if err != nil {
			return nil, fmt.Errorf("%w: column %s: %v", ErrInvalidData, k, err)
		}
		row[k] = cell
	}
	return row, nil
}

func cellOf(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

func ValidateColumn(name string) error {
	if !columnPattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidColumn, name)
	}
	return nil
}

func ValidateSheet(name string) error {
	if !sheetPattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidSheet, name)
	}
	return nil
}
