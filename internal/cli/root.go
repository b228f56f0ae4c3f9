package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/rsvcat/internal/config"
	"github.com/roach88/rsvcat/internal/rsv"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// DecodeOptions holds the flags of the root (decode) command.
type DecodeOptions struct {
	*RootOptions
	Config     string // profile file path
	Delimiters rsv.Delimiters
}

// ValidFormats defines the allowed diagnostic formats.
var ValidFormats = []string{"text", "json"}

// Delimiter flag names, also used to detect which ones were set explicitly.
const (
	flagNullValue      = "null-value"
	flagFieldSeparator = "field-separator"
	flagFieldOpening   = "field-opening"
	flagFieldClosing   = "field-closing"
	flagLineStarting   = "line-starting"
	flagLineEnding     = "line-ending"
)

// NewRootCommand creates the rsvcat command.
func NewRootCommand() *cobra.Command {
	opts := &DecodeOptions{RootOptions: &RootOptions{}}
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "rsvcat [file...]",
		Short: "rsvcat - display RSV documents as delimited text",
		Long: `Decode RSV (rows of string values) documents into readable text.

Each file is decoded in order onto standard output. With no files,
standard input is read. Values, nulls and rows are rendered with
configurable delimiters, e.g. [<a>|<b>|null].

Exit status: 0 success, 1 read error, 2 write error, 3 open error,
4 usage or configuration error.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				msg := fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
				fmt.Fprintf(cmd.ErrOrStderr(), "Error [%s]: %s\n", ErrCodeConfig, msg)
				return NewExitError(ExitCommandError, msg)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(opts, args, cmd)
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error [%s]: %v\n", ErrCodeConfig, err)
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose diagnostics on stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "diagnostic format (json|text)")

	flags := cmd.Flags()
	flags.StringVar(&opts.Config, "config", "", "delimiter profile (.yaml, .yml or .cue)")
	flags.StringVarP(&opts.Delimiters.NullValue, flagNullValue, "n", defaults.NullValue, "text written for a null value")
	flags.StringVarP(&opts.Delimiters.FieldSeparator, flagFieldSeparator, "f", defaults.FieldSeparator, "text written between values")
	flags.StringVarP(&opts.Delimiters.FieldOpening, flagFieldOpening, "o", defaults.FieldOpening, "text written before a value")
	flags.StringVarP(&opts.Delimiters.FieldClosing, flagFieldClosing, "c", defaults.FieldClosing, "text written after a value")
	flags.StringVarP(&opts.Delimiters.LineStarting, flagLineStarting, "s", defaults.LineStarting, "text written at the start of a row")
	flags.StringVarP(&opts.Delimiters.LineEnding, flagLineEnding, "e", defaults.LineEnding, "text written at the end of a row, before the newline")

	// Add subcommands
	cmd.AddCommand(NewGenerateCommand(opts.RootOptions))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
