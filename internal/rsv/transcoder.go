package rsv

import (
	"bufio"
	"errors"
	"io"
)

// phase is the only state carried from one byte to the next.
type phase int

const (
	// phaseRowStart: the next byte is the first of a row.
	phaseRowStart phase = iota
	// phaseValueStart: a separator was written and the next byte begins a value.
	phaseValueStart
	// phaseInRow: nothing is pending.
	phaseInRow
)

// Transcoder decodes a single RSV source. It is not reusable across
// sources; create one per input.
type Transcoder struct {
	d     Delimiters
	name  string
	w     io.Writer
	phase phase

	written int64
	scratch [1]byte
}

// NewTranscoder returns a Transcoder writing the decoded form of one source
// named name to w.
func NewTranscoder(d Delimiters, name string, w io.Writer) *Transcoder {
	return &Transcoder{d: d, name: name, w: w, phase: phaseRowStart}
}

// Transcode decodes r to w in one pass.
func Transcode(d Delimiters, r io.Reader, w io.Writer) error {
	return NewTranscoder(d, "(input)", w).Process(r)
}

// Written returns the number of bytes written so far.
func (t *Transcoder) Written() int64 {
	return t.written
}

// Process reads r to the end and writes its decoded form.
//
// Each byte is acted on only once the byte after it is known. After the last
// byte one more step runs with an end-of-stream lookahead, so a final value
// and row are closed even without trailing terminators. Empty input writes
// nothing.
func (t *Transcoder) Process(r io.Reader) error {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	var cur byte
	primed := false
	for {
		next, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return &Error{Kind: KindRead, Source: t.name, Err: err}
		}
		if next == CarriageReturn {
			continue
		}
		if primed {
			if err := t.step(cur, Classify(cur), Classify(next)); err != nil {
				return err
			}
		}
		cur, primed = next, true
	}

	if !primed {
		return nil
	}
	return t.step(cur, Classify(cur), RoleEnd)
}

// step acts on b, whose role is cur, given the role of the following byte.
func (t *Transcoder) step(b byte, cur, next Role) error {
	opens, closes := false, false

	switch t.phase {
	case phaseRowStart:
		if err := t.emit(t.d.LineStarting); err != nil {
			return err
		}
		opens = !cur.endsRow()
	case phaseValueStart:
		opens = true
	}
	t.phase = phaseInRow

	// A null is written as a bare token, never bracketed. A value that opens
	// on its own terminator is empty.
	if opens && cur != RoleNull {
		if err := t.emit(t.d.FieldOpening); err != nil {
			return err
		}
		closes = cur == RoleValueEnd
	}

	if cur == RoleContent {
		t.scratch[0] = b
		if err := t.write(t.scratch[:]); err != nil {
			return err
		}
		closes = next != RoleContent
	}

	if closes {
		if err := t.emit(t.d.FieldClosing); err != nil {
			return err
		}
	}

	switch cur {
	case RoleValueEnd:
		// A terminator right before the row ends needs no separator.
		if !next.endsRow() {
			if err := t.emit(t.d.FieldSeparator); err != nil {
				return err
			}
			t.phase = phaseValueStart
		}
	case RoleNull:
		if err := t.emit(t.d.NullValue); err != nil {
			return err
		}
	case RoleRowEnd, RoleLineFeed:
		return t.endRow()
	}

	if next == RoleEnd {
		return t.endRow()
	}
	return nil
}

func (t *Transcoder) endRow() error {
	if err := t.emit(t.d.LineEnding); err != nil {
		return err
	}
	t.scratch[0] = LineFeed
	if err := t.write(t.scratch[:]); err != nil {
		return err
	}
	t.phase = phaseRowStart
	return nil
}

func (t *Transcoder) emit(s string) error {
	if s == "" {
		return nil
	}
	return t.write([]byte(s))
}

func (t *Transcoder) write(p []byte) error {
	n, err := t.w.Write(p)
	t.written += int64(n)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return &Error{Kind: KindWrite, Source: t.name, Err: err}
	}
	return nil
}
