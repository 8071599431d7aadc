package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Ilhoon-Jang/adc-noise-calculation/pkg/models"
	"github.com/Ilhoon-Jang/adc-noise-calculation/pkg/si"
)

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <value>",
		Short: "Parse an engineering-notation value",
		Long: `Parse one engineering-notation string and print its magnitude.

Suffixes are case-sensitive: "1m" is milli, "1M" is mega.

Example:
  adcnoise parse 1.5k
  adcnoise parse 2meg --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}

			v, err := si.Parse(args[0])
			if err != nil {
				_ = out.Error(errorCode(err), err.Error())
				return NewExitError(ExitFailure, "parse failed")
			}

			if rootOpts.Format == "json" {
				return out.Success(models.ParseValueResponseBody{Magnitude: v})
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, 64))
			return nil
		},
	}

	return cmd
}
