package rsv

import (
	"io"
	"os"
)

// StdinName names the implicit standard input source in diagnostics.
const StdinName = "(stdin)"

// Source is a named, openable input.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

type fileSource string

// FileSource returns a Source reading the file at path.
func FileSource(path string) Source {
	return fileSource(path)
}

func (f fileSource) Name() string { return string(f) }

func (f fileSource) Open() (io.ReadCloser, error) {
	return os.Open(string(f))
}

// FileSources maps each path to a FileSource, preserving order.
func FileSources(paths []string) []Source {
	sources := make([]Source, len(paths))
	for i, p := range paths {
		sources[i] = FileSource(p)
	}
	return sources
}

type readerSource struct {
	name string
	r    io.Reader
}

// ReaderSource wraps an already open reader. Closing the returned stream
// does not close r.
func ReaderSource(name string, r io.Reader) Source {
	return &readerSource{name: name, r: r}
}

func (s *readerSource) Name() string { return s.name }

func (s *readerSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(s.r), nil
}

// Driver decodes a list of sources, in order, onto one writer.
type Driver struct {
	Delimiters Delimiters

	// Stdin is read when Run is given no sources. Defaults to os.Stdin.
	Stdin io.Reader

	// Logf receives progress messages. Optional.
	Logf func(format string, args ...any)
}

// Run decodes every source to w using a fresh Transcoder per source.
// Nothing is written between sources. The first error stops the run and
// later sources are never opened.
func (d *Driver) Run(sources []Source, w io.Writer) error {
	if len(sources) == 0 {
		stdin := d.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		sources = []Source{ReaderSource(StdinName, stdin)}
	}

	for _, src := range sources {
		if err := d.runSource(src, w); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) runSource(src Source, w io.Writer) error {
	rc, err := src.Open()
	if err != nil {
		return &Error{Kind: KindOpen, Source: src.Name(), Err: err}
	}
	defer rc.Close()

	d.logf("decoding %s", src.Name())
	t := NewTranscoder(d.Delimiters, src.Name(), w)
	if err := t.Process(rc); err != nil {
		return err
	}
	d.logf("finished %s: wrote %d byte(s)", src.Name(), t.Written())
	return nil
}

func (d *Driver) logf(format string, args ...any) {
	if d.Logf != nil {
		d.Logf(format, args...)
	}
}
