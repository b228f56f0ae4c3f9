package rsv

// Reserved bytes of the RSV format.
const (
	ValueTerminator byte = 0xFF
	NullMarker      byte = 0xFE
	RowTerminator   byte = 0xFD
	LineFeed        byte = 0x0A
	CarriageReturn  byte = 0x0D
)

// Role is the meaning of a single input byte.
type Role int

const (
	// RoleContent is a literal byte of the current value.
	RoleContent Role = iota
	// RoleValueEnd terminates the current value.
	RoleValueEnd
	// RoleNull marks the current value as null.
	RoleNull
	// RoleRowEnd terminates the current row (0xFD).
	RoleRowEnd
	// RoleLineFeed terminates the current row (0x0A).
	RoleLineFeed
	// RoleEnd is the lookahead sentinel used after the last byte of a stream.
	// Classify never returns it.
	RoleEnd
)

var roleNames = [...]string{
	RoleContent:  "content",
	RoleValueEnd: "value-terminator",
	RoleNull:     "null",
	RoleRowEnd:   "row-terminator",
	RoleLineFeed: "line-feed",
	RoleEnd:      "end",
}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return "unknown"
	}
	return roleNames[r]
}

// Classify returns the role of b.
//
// Carriage returns are removed from the stream before classification, so
// Classify reports them as content; callers must never pass one.
func Classify(b byte) Role {
	switch b {
	case ValueTerminator:
		return RoleValueEnd
	case NullMarker:
		return RoleNull
	case RowTerminator:
		return RoleRowEnd
	case LineFeed:
		return RoleLineFeed
	default:
		return RoleContent
	}
}

// endsRow reports whether r closes the row: an explicit terminator or the
// end of the stream.
func (r Role) endsRow() bool {
	return r == RoleRowEnd || r == RoleLineFeed || r == RoleEnd
}
