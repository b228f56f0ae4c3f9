package rsv

import (
	"errors"
	"fmt"
	"io"
)

// ErrReservedByte is returned when a value's text contains one of the RSV
// terminator bytes. Valid UTF-8 never does.
var ErrReservedByte = errors.New("rsv: value contains a reserved byte")

// Value is a single RSV value: either null or a (possibly empty) string.
type Value struct {
	Text string
	Null bool
}

// Text returns a non-null value.
func Text(s string) Value { return Value{Text: s} }

// Null returns the null value.
func Null() Value { return Value{Null: true} }

// Row is an ordered list of values. An empty Row is a valid, empty row.
type Row []Value

// AppendRows appends the RSV encoding of rows to dst.
func AppendRows(dst []byte, rows []Row) ([]byte, error) {
	for i, row := range rows {
		for j, v := range row {
			switch {
			case v.Null:
				dst = append(dst, NullMarker)
			case containsReserved(v.Text):
				return nil, fmt.Errorf("row %d value %d: %w", i, j, ErrReservedByte)
			default:
				dst = append(dst, v.Text...)
			}
			dst = append(dst, ValueTerminator)
		}
		dst = append(dst, RowTerminator)
	}
	return dst, nil
}

func containsReserved(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ValueTerminator, NullMarker, RowTerminator:
			return true
		}
	}
	return false
}

// Encode writes the RSV encoding of rows to w.
func Encode(w io.Writer, rows []Row) error {
	data, err := AppendRows(nil, rows)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ExampleRows is the reference document of the RSV format: every
// combination of empty rows, empty values and nulls.
func ExampleRows() []Row {
	return []Row{
		{Text("Hello"), Text("🌎")},
		{},
		{Null(), Text("")},
		{Text("1"), Text("2"), Text("3"), Text("4")},
		{Text(""), Text(""), Text("a")},
		{Null(), Text(""), Null()},
		{Null()},
		{Text(""), Null()},
		{Text("")},
		{Text(""), Null(), Text(""), Text("")},
	}
}
