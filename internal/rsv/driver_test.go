package rsv

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rsvcat/internal/testutil"
)

// recordingSource counts opens and hands out a ClosingReader.
type recordingSource struct {
	name    string
	data    io.Reader
	openErr error
	opens   int
	reader  *testutil.ClosingReader
}

func (s *recordingSource) Name() string { return s.name }

func (s *recordingSource) Open() (io.ReadCloser, error) {
	s.opens++
	if s.openErr != nil {
		return nil, s.openErr
	}
	s.reader = &testutil.ClosingReader{Reader: s.data}
	return s.reader, nil
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestDriver_ConcatenatesSourcesInOrder(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.rsv", []byte("A\xffB\xfd"))
	second := writeFile(t, dir, "second.rsv", []byte("\xfe\xff\xfd"))

	var out bytes.Buffer
	d := &Driver{Delimiters: DefaultDelimiters()}
	require.NoError(t, d.Run(FileSources([]string{first, second}), &out))

	assert.Equal(t, "[<A>|<B>]\n[null]\n", out.String())
}

func TestDriver_NoSourcesReadsStdin(t *testing.T) {
	var out bytes.Buffer
	d := &Driver{
		Delimiters: DefaultDelimiters(),
		Stdin:      strings.NewReader("x\xff\xfd"),
	}
	require.NoError(t, d.Run(nil, &out))

	assert.Equal(t, "[<x>]\n", out.String())
}

func TestDriver_EmptySourceWritesNothing(t *testing.T) {
	dir := t.TempDir()
	empty := writeFile(t, dir, "empty.rsv", nil)
	full := writeFile(t, dir, "full.rsv", []byte("a\xfd"))

	var out bytes.Buffer
	d := &Driver{Delimiters: DefaultDelimiters()}
	require.NoError(t, d.Run(FileSources([]string{empty, full, empty}), &out))

	assert.Equal(t, "[<a>]\n", out.String())
}

func TestDriver_OpenErrorStopsRun(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.rsv", []byte("a\xfd"))
	missing := filepath.Join(dir, "missing.rsv")
	after := &recordingSource{name: "after", data: strings.NewReader("b\xfd")}

	var out bytes.Buffer
	d := &Driver{Delimiters: DefaultDelimiters()}
	err := d.Run([]Source{FileSource(good), FileSource(missing), after}, &out)
	require.Error(t, err)

	assert.True(t, IsOpenError(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.rsv")

	assert.Equal(t, "[<a>]\n", out.String())
	assert.Equal(t, 0, after.opens)
}

func TestDriver_ReadErrorClosesSourceAndStops(t *testing.T) {
	failing := &recordingSource{name: "failing", data: testutil.NewFailingReader([]byte("a"))}
	after := &recordingSource{name: "after", data: strings.NewReader("b\xfd")}

	var out bytes.Buffer
	d := &Driver{Delimiters: DefaultDelimiters()}
	err := d.Run([]Source{failing, after}, &out)
	require.Error(t, err)

	assert.True(t, IsReadError(err))
	var re *Error
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "failing", re.Source)

	require.NotNil(t, failing.reader)
	assert.True(t, failing.reader.Closed)
	assert.Equal(t, 0, after.opens)
}

func TestDriver_WriteErrorNamesSource(t *testing.T) {
	src := &recordingSource{name: "input.rsv", data: strings.NewReader("abc\xfd")}
	w := testutil.NewFailingWriter(3)

	d := &Driver{Delimiters: DefaultDelimiters()}
	err := d.Run([]Source{src}, w)
	require.Error(t, err)

	assert.True(t, IsWriteError(err))
	assert.Contains(t, err.Error(), "input.rsv")
	assert.True(t, src.reader.Closed)
}

func TestDriver_ClosesEverySource(t *testing.T) {
	a := &recordingSource{name: "a", data: strings.NewReader("1\xfd")}
	b := &recordingSource{name: "b", data: strings.NewReader("2\xfd")}

	var out bytes.Buffer
	d := &Driver{Delimiters: DefaultDelimiters()}
	require.NoError(t, d.Run([]Source{a, b}, &out))

	assert.True(t, a.reader.Closed)
	assert.True(t, b.reader.Closed)
	assert.Equal(t, "[<1>]\n[<2>]\n", out.String())
}

func TestDriver_OpenErrorFromCustomSource(t *testing.T) {
	boom := errors.New("permission denied")
	src := &recordingSource{name: "locked", openErr: boom}

	d := &Driver{Delimiters: DefaultDelimiters()}
	err := d.Run([]Source{src}, io.Discard)

	require.ErrorIs(t, err, boom)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindOpen, kind)
}

func TestDriver_Logf(t *testing.T) {
	var lines []string
	d := &Driver{
		Delimiters: DefaultDelimiters(),
		Stdin:      strings.NewReader("a\xfd"),
		Logf: func(format string, args ...any) {
			lines = append(lines, format)
		},
	}
	require.NoError(t, d.Run(nil, io.Discard))

	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "decoding")
	assert.Contains(t, lines[1], "finished")
}

func TestReaderSource(t *testing.T) {
	src := ReaderSource(StdinName, strings.NewReader("data"))
	assert.Equal(t, "(stdin)", src.Name())

	rc, err := src.Open()
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
	assert.NoError(t, rc.Close())
}
