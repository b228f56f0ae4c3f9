// Package config resolves the display delimiters for a run.
//
// Delimiters come from three layers, later layers winning field by field:
// the built-in defaults, an optional profile file, and command-line flags.
// Profiles are YAML (.yaml, .yml) or CUE (.cue) documents with the keys
// null_value, field_separator, field_opening, field_closing, line_starting
// and line_ending. Every key is optional and unknown keys are rejected.
package config
