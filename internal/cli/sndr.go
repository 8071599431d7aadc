package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ilhoon-Jang/adc-noise-calculation/pkg/models"
	"github.com/Ilhoon-Jang/adc-noise-calculation/pkg/noise"
	"github.com/Ilhoon-Jang/adc-noise-calculation/pkg/si"
)

// SNDROptions holds flags for the sndr command.
type SNDROptions struct {
	*RootOptions
	FullScale string
	SNDR      float64
}

// NewSNDRCommand creates the sndr command.
func NewSNDRCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SNDROptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sndr",
		Short: "Back-calculate noise and ENOB from a measured SNDR",
		Long: `Estimate the implied total noise RMS and ENOB from an externally
measured SNDR figure.

Example:
  adcnoise sndr --full-scale 1 --sndr 50`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSNDR(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.FullScale, "full-scale", "1", "full-scale voltage in volts (SI notation)")
	cmd.Flags().Float64Var(&opts.SNDR, "sndr", 0, "measured SNDR in dB (required)")
	_ = cmd.MarkFlagRequired("sndr")

	return cmd
}

func runSNDR(opts *SNDROptions, cmd *cobra.Command) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	fullScale, err := si.Parse(opts.FullScale)
	if err != nil {
		_ = out.Error(errorCode(err), fmt.Sprintf("invalid --full-scale: %v", err))
		return NewExitError(ExitCommandError, "invalid full-scale value")
	}

	est, err := noise.EstimateFromSNDR(fullScale, opts.SNDR)
	if err != nil {
		_ = out.Error(errorCode(err), err.Error())
		return NewExitError(ExitFailure, "SNDR estimation failed")
	}

	if opts.Format == "json" {
		return out.Success(models.EstimateSNDRResponseBody{
			EstimatedNoiseRMS: est.NoiseRMS,
			ENOBBits:          est.ENOB,
		})
	}

	renderSNDRText(cmd.OutOrStdout(), est)
	return nil
}
