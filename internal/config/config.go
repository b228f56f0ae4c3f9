package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/rsvcat/internal/rsv"
)

// ErrUnsupportedFormat is returned for profile files that are neither YAML nor CUE.
var ErrUnsupportedFormat = errors.New("unsupported profile format")

// Profile is a partial set of delimiters. Nil fields leave the underlying
// value unchanged.
type Profile struct {
	NullValue      *string `yaml:"null_value" json:"null_value,omitempty"`
	FieldSeparator *string `yaml:"field_separator" json:"field_separator,omitempty"`
	FieldOpening   *string `yaml:"field_opening" json:"field_opening,omitempty"`
	FieldClosing   *string `yaml:"field_closing" json:"field_closing,omitempty"`
	LineStarting   *string `yaml:"line_starting" json:"line_starting,omitempty"`
	LineEnding     *string `yaml:"line_ending" json:"line_ending,omitempty"`
}

// Default returns the built-in delimiters.
func Default() rsv.Delimiters {
	return rsv.DefaultDelimiters()
}

// Apply returns d with every field set in p replaced.
func (p *Profile) Apply(d rsv.Delimiters) rsv.Delimiters {
	if p == nil {
		return d
	}
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&d.NullValue, p.NullValue)
	set(&d.FieldSeparator, p.FieldSeparator)
	set(&d.FieldOpening, p.FieldOpening)
	set(&d.FieldClosing, p.FieldClosing)
	set(&d.LineStarting, p.LineStarting)
	set(&d.LineEnding, p.LineEnding)
	return d
}

// Load returns the defaults overlaid with the profile at path. An empty
// path yields the defaults.
func Load(path string) (rsv.Delimiters, error) {
	if path == "" {
		return Default(), nil
	}
	p, err := LoadProfile(path)
	if err != nil {
		return rsv.Delimiters{}, err
	}
	return p.Apply(Default()), nil
}

// LoadProfile reads a profile file, choosing the decoder by extension.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".cue":
		return ParseCUE(data, path)
	default:
		return nil, fmt.Errorf("%s: %w (want .yaml, .yml or .cue)", path, ErrUnsupportedFormat)
	}
}

// ParseYAML decodes a YAML profile. An empty document is an empty profile.
func ParseYAML(data []byte) (*Profile, error) {
	var p Profile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return &p, nil
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &p, nil
}

const profileSchema = `
#Profile: {
	null_value?:      string
	field_separator?: string
	field_opening?:   string
	field_closing?:   string
	line_starting?:   string
	line_ending?:     string
}
`

// ParseCUE compiles a CUE profile and checks it against the closed profile
// schema. filename is used in error positions only.
func ParseCUE(data []byte, filename string) (*Profile, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(profileSchema).LookupPath(cue.ParsePath("#Profile"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("building profile schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse CUE: %w", err)
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	var p Profile
	if err := unified.Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	return &p, nil
}
