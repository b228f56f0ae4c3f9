package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/rsvcat/internal/rsv"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Output string // output file path
}

// GenerateResult describes a written example document.
type GenerateResult struct {
	Path  string `json:"path"`
	Rows  int    `json:"rows"`
	Bytes int    `json:"bytes"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the reference RSV example document",
		Long: `Write the reference RSV example document.

The document covers empty rows, empty values and nulls in every
position. Without --output the raw RSV bytes go to standard output,
ready to pipe back into rsvcat.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	rows := rsv.ExampleRows()
	var doc bytes.Buffer
	if err := rsv.Encode(&doc, rows); err != nil {
		return outputGenerateError(formatter, ErrCodeGeneric, ExitCommandError, err)
	}

	if opts.Output == "" {
		if _, err := cmd.OutOrStdout().Write(doc.Bytes()); err != nil {
			return outputGenerateError(formatter, ErrCodeWrite, ExitWriteFailure, err)
		}
		return nil
	}

	formatter.VerboseLog("Writing %d byte(s) to %s", doc.Len(), opts.Output)
	if err := os.WriteFile(opts.Output, doc.Bytes(), 0644); err != nil {
		return outputGenerateError(formatter, ErrCodeWrite, ExitWriteFailure, err)
	}

	result := GenerateResult{Path: opts.Output, Rows: len(rows), Bytes: doc.Len()}
	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "✓ Wrote example document (%d rows, %d bytes) to %s\n",
		result.Rows, result.Bytes, result.Path)
	return nil
}

func outputGenerateError(formatter *OutputFormatter, code string, exitCode int, err error) error {
	// Keep stdout clean: it may be carrying the document.
	errFormatter := *formatter
	errFormatter.Writer = formatter.ErrWriter
	_ = errFormatter.Error(code, err.Error(), nil)
	return WrapExitError(exitCode, "generating example", err)
}
