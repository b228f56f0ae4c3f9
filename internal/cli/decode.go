package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/rsvcat/internal/config"
	"github.com/roach88/rsvcat/internal/rsv"
)

func runDecode(opts *DecodeOptions, files []string, cmd *cobra.Command) error {
	// Standard output carries the decoded document, so every diagnostic
	// goes to stderr.
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.ErrOrStderr(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	delims, err := resolveDelimiters(opts, cmd)
	if err != nil {
		_ = formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading delimiters", err)
	}
	if opts.Config != "" {
		formatter.VerboseLog("Loaded profile %s", opts.Config)
	}
	formatter.VerboseLog("Delimiters: null=%q separator=%q opening=%q closing=%q starting=%q ending=%q",
		delims.NullValue, delims.FieldSeparator, delims.FieldOpening,
		delims.FieldClosing, delims.LineStarting, delims.LineEnding)

	driver := &rsv.Driver{
		Delimiters: delims,
		Stdin:      cmd.InOrStdin(),
		Logf:       formatter.VerboseLog,
	}
	if err := driver.Run(rsv.FileSources(files), cmd.OutOrStdout()); err != nil {
		return outputDecodeError(formatter, err)
	}
	return nil
}

// resolveDelimiters layers the profile file and explicitly set flags over
// the defaults.
func resolveDelimiters(opts *DecodeOptions, cmd *cobra.Command) (rsv.Delimiters, error) {
	delims, err := config.Load(opts.Config)
	if err != nil {
		return rsv.Delimiters{}, err
	}

	flags := cmd.Flags()
	overrides := &config.Profile{}
	for _, f := range []struct {
		name string
		dst  **string
		val  *string
	}{
		{flagNullValue, &overrides.NullValue, &opts.Delimiters.NullValue},
		{flagFieldSeparator, &overrides.FieldSeparator, &opts.Delimiters.FieldSeparator},
		{flagFieldOpening, &overrides.FieldOpening, &opts.Delimiters.FieldOpening},
		{flagFieldClosing, &overrides.FieldClosing, &opts.Delimiters.FieldClosing},
		{flagLineStarting, &overrides.LineStarting, &opts.Delimiters.LineStarting},
		{flagLineEnding, &overrides.LineEnding, &opts.Delimiters.LineEnding},
	} {
		if flags.Changed(f.name) {
			*f.dst = f.val
		}
	}
	return overrides.Apply(delims), nil
}

// outputDecodeError reports a driver failure and maps it to its exit code.
func outputDecodeError(formatter *OutputFormatter, err error) error {
	var re *rsv.Error
	if !errors.As(err, &re) {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "decoding failed", err)
	}

	_ = formatter.Error(ErrorCodeForKind(re.Kind), err.Error(), map[string]string{
		"source": re.Source,
		"kind":   re.Kind.String(),
	})
	return WrapExitError(ExitCodeForKind(re.Kind), fmt.Sprintf("%s %s failed", re.Kind, re.Source), err)
}
