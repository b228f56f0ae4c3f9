package rsv

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendRows(t *testing.T) {
	tests := []struct {
		name string
		rows []Row
		want []byte
	}{
		{
			name: "no rows",
			rows: nil,
			want: nil,
		},
		{
			name: "empty row",
			rows: []Row{{}},
			want: []byte{0xFD},
		},
		{
			name: "values",
			rows: []Row{{Text("A"), Text("B")}},
			want: []byte{'A', 0xFF, 'B', 0xFF, 0xFD},
		},
		{
			name: "null and empty",
			rows: []Row{{Null(), Text("")}},
			want: []byte{0xFE, 0xFF, 0xFF, 0xFD},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AppendRows(nil, tt.rows)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppendRows_RejectsReservedBytes(t *testing.T) {
	_, err := AppendRows(nil, []Row{{Text("ok")}, {Text("a"), Text("b\xfec")}})
	require.ErrorIs(t, err, ErrReservedByte)
	assert.Contains(t, err.Error(), "row 1 value 1")

	// U+FFFD is valid UTF-8 and not reserved.
	_, err = AppendRows(nil, []Row{{Text("�")}})
	assert.NoError(t, err)
}

func TestEncode_DecodesBack(t *testing.T) {
	rows := []Row{
		{Text("name"), Text("age")},
		{Text("ada"), Null()},
		{},
		{Text(""), Text("x")},
	}

	var doc bytes.Buffer
	require.NoError(t, Encode(&doc, rows))

	var out bytes.Buffer
	require.NoError(t, Transcode(DefaultDelimiters(), &doc, &out))
	assert.Equal(t, "[<name>|<age>]\n[<ada>|null]\n[]\n[<>|<x>]\n", out.String())
}

func TestExampleRows(t *testing.T) {
	rows := ExampleRows()
	require.Len(t, rows, 10)
	assert.Empty(t, rows[1])
	assert.True(t, rows[6][0].Null)

	data, err := AppendRows(nil, rows)
	require.NoError(t, err)
	assert.Equal(t, 10, bytes.Count(data, []byte{RowTerminator}))
}
