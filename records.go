package coltable

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// deriveHeader turns a Go field name into a header the way a human would
// title it: CreatedAt becomes "Created At".
func deriveHeader(fieldName string) string {
	var b strings.Builder
	for i, r := range fieldName {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return titleCaser.String(strings.ToLower(b.String()))
}

// ColumnsFromStruct declares one column per exported field of sample's
// type (sample may be a struct or pointer to struct), in field order. A
// field's `table:"Header"` tag overrides its derived header; a field
// tagged `table:"-"` is skipped entirely. hints optionally supplies a
// WidthHint per Go field name.
func ColumnsFromStruct(t *Table, sample any, hints map[string]WidthHint) []*Column {
	rt := reflect.TypeOf(sample)
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}

	cols := make([]*Column, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("table")
		if tag == "-" {
			continue
		}
		header := tag
		if header == "" {
			header = deriveHeader(f.Name)
		}
		cols = append(cols, t.NewColumn(header, hints[f.Name]))
	}
	return cols
}

// FromRecords appends one line per element of records (a slice of structs
// or of map[string]any) to t, filling each of t's existing columns by
// matching its header text against the record's field/key names
// case-insensitively and ignoring spaces, so a "Created At" column picks
// up a CreatedAt field. Columns with no matching field are left absent
// for that line rather than erroring.
func FromRecords(t *Table, records any) error {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("%w: FromRecords requires a slice, got %s", ErrInvalidArgument, v.Kind())
	}

	for i := 0; i < v.Len(); i++ {
		var fields map[string]any
		if err := mapstructure.Decode(v.Index(i).Interface(), &fields); err != nil {
			return fmt.Errorf("coltable: decoding record %d: %w", i, err)
		}

		ln := t.NewLine(nil)
		for _, col := range t.columns {
			val, ok := lookupField(fields, col.HeaderText())
			if !ok {
				continue
			}
			ln.SetCell(col.seqnum, fmt.Sprint(val))
		}
	}
	return nil
}

func lookupField(fields map[string]any, header string) (any, bool) {
	if v, ok := fields[header]; ok {
		return v, true
	}
	target := normalizeFieldName(header)
	for k, v := range fields {
		if normalizeFieldName(k) == target {
			return v, true
		}
	}
	return nil, false
}

func normalizeFieldName(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", ""))
}
