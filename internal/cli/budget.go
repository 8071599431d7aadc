package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ilhoon-Jang/adc-noise-calculation/pkg/models"
	"github.com/Ilhoon-Jang/adc-noise-calculation/pkg/noise"
	"github.com/Ilhoon-Jang/adc-noise-calculation/pkg/si"
)

// BudgetOptions holds flags for the budget command.
type BudgetOptions struct {
	*RootOptions
	FullScale   string
	Bits        int
	Thermal     string
	Cap         string
	Freq        string
	Jitter      string
	KTC         bool
	JitterNoise bool
}

// NewBudgetCommand creates the budget command.
func NewBudgetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BudgetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Compute SNR and ENOB for one operating point",
		Long: `Compute the noise budget of an ADC operating point.

Physical quantities accept engineering notation ("1m", "1p", "100M").
The kT/C and jitter terms can be excluded with --ktc=false and
--jitter-noise=false.

Example:
  adcnoise budget --full-scale 1 --bits 12 --thermal 100u
  adcnoise budget --freq 250M --jitter 500f --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBudget(opts, cmd)
		},
	}

	addBudgetFlags(cmd, opts)

	return cmd
}

// addBudgetFlags registers the operating-point flags shared by the
// budget and sweep commands. Defaults mirror a typical 8-bit budget.
func addBudgetFlags(cmd *cobra.Command, opts *BudgetOptions) {
	cmd.Flags().StringVar(&opts.FullScale, "full-scale", "1", "full-scale voltage in volts (SI notation)")
	cmd.Flags().IntVar(&opts.Bits, "bits", 8, "converter resolution in bits")
	cmd.Flags().StringVar(&opts.Thermal, "thermal", "1m", "thermal noise RMS in volts (SI notation)")
	cmd.Flags().StringVar(&opts.Cap, "cap", "1p", "sampling capacitance in farads (SI notation)")
	cmd.Flags().StringVar(&opts.Freq, "freq", "100M", "input frequency in hertz (SI notation)")
	cmd.Flags().StringVar(&opts.Jitter, "jitter", "1p", "clock jitter RMS in seconds (SI notation)")
	cmd.Flags().BoolVar(&opts.KTC, "ktc", true, "include kT/C sampling noise")
	cmd.Flags().BoolVar(&opts.JitterNoise, "jitter-noise", true, "include clock jitter noise")
}

func runBudget(opts *BudgetOptions, cmd *cobra.Command) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	params, err := budgetParameters(opts)
	if err != nil {
		_ = out.Error(errorCode(err), err.Error())
		return NewExitError(ExitCommandError, "invalid budget parameters")
	}

	bd, perf, err := noise.ComputeBudget(params)
	if err != nil {
		_ = out.Error(errorCode(err), err.Error())
		return NewExitError(ExitFailure, "budget computation failed")
	}

	if opts.Format == "json" {
		return out.Success(models.ComputeBudgetResponseBody{
			QuantizationPower: bd.Quantization,
			ThermalPower:      bd.Thermal,
			KTCPower:          bd.KTC,
			JitterPower:       bd.Jitter,
			TotalPower:        bd.Total,
			SNRdB:             perf.SNR,
			ENOBBits:          perf.ENOB,
		})
	}

	renderBudgetText(cmd.OutOrStdout(), bd, perf)
	return nil
}

// budgetParameters converts flag strings into core parameters.
func budgetParameters(opts *BudgetOptions) (noise.Parameters, error) {
	params := noise.Parameters{
		Bits:          opts.Bits,
		IncludeKTC:    opts.KTC,
		IncludeJitter: opts.JitterNoise,
	}

	fields := []struct {
		flag string
		raw  string
		dst  *float64
	}{
		{"--full-scale", opts.FullScale, &params.FullScale},
		{"--thermal", opts.Thermal, &params.ThermalRMS},
		{"--cap", opts.Cap, &params.SamplingCap},
		{"--freq", opts.Freq, &params.InputFreq},
		{"--jitter", opts.Jitter, &params.JitterRMS},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		v, err := si.Parse(f.raw)
		if err != nil {
			return noise.Parameters{}, fmt.Errorf("invalid %s: %w", f.flag, err)
		}
		*f.dst = v
	}
	return params, nil
}
