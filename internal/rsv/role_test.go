package rsv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		b    byte
		want Role
	}{
		{0xFF, RoleValueEnd},
		{0xFE, RoleNull},
		{0xFD, RoleRowEnd},
		{'\n', RoleLineFeed},
		{'A', RoleContent},
		{0x00, RoleContent},
		{0xFC, RoleContent},
		{0xF0, RoleContent},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.b), "byte 0x%02X", tt.b)
	}
}

func TestClassify_AllOtherBytesAreContent(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		switch b {
		case ValueTerminator, NullMarker, RowTerminator, LineFeed:
			continue
		}
		assert.Equal(t, RoleContent, Classify(b), "byte 0x%02X", b)
	}
}

func TestRoleEndsRow(t *testing.T) {
	assert.True(t, RoleRowEnd.endsRow())
	assert.True(t, RoleLineFeed.endsRow())
	assert.True(t, RoleEnd.endsRow())

	assert.False(t, RoleContent.endsRow())
	assert.False(t, RoleValueEnd.endsRow())
	assert.False(t, RoleNull.endsRow())
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "value-terminator", RoleValueEnd.String())
	assert.Equal(t, "end", RoleEnd.String())
	assert.Equal(t, "unknown", Role(42).String())
}
