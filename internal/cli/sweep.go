package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ilhoon-Jang/adc-noise-calculation/pkg/models"
	"github.com/Ilhoon-Jang/adc-noise-calculation/pkg/noise"
	"github.com/Ilhoon-Jang/adc-noise-calculation/pkg/si"
)

// SweepOptions holds flags for the sweep command.
type SweepOptions struct {
	*BudgetOptions
	Variable string
	Scale    string
	From     string
	To       string
	Points   int
}

// NewSweepCommand creates the sweep command.
func NewSweepCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SweepOptions{BudgetOptions: &BudgetOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate the budget across a range of one variable",
		Long: `Sweep input frequency or clock jitter across a range and evaluate
SNR and ENOB at each point. Decade scale spaces points on a log10 grid.

Example:
  adcnoise sweep --var frequency --from 1M --to 1G --points 10
  adcnoise sweep --var jitter --scale lin --from 100f --to 1p --points 5`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(opts, cmd)
		},
	}

	addBudgetFlags(cmd, opts.BudgetOptions)
	cmd.Flags().StringVar(&opts.Variable, "var", "frequency", "swept variable (frequency|jitter)")
	cmd.Flags().StringVar(&opts.Scale, "scale", "dec", "point spacing (dec|lin)")
	cmd.Flags().StringVar(&opts.From, "from", "1M", "sweep start value (SI notation)")
	cmd.Flags().StringVar(&opts.To, "to", "1G", "sweep end value (SI notation)")
	cmd.Flags().IntVar(&opts.Points, "points", 10, "number of evaluated points")

	return cmd
}

func runSweep(opts *SweepOptions, cmd *cobra.Command) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	params, err := budgetParameters(opts.BudgetOptions)
	if err != nil {
		_ = out.Error(errorCode(err), err.Error())
		return NewExitError(ExitCommandError, "invalid budget parameters")
	}

	spec := noise.SweepSpec{
		Variable: noise.SweepVariable(opts.Variable),
		Scale:    noise.SweepScale(opts.Scale),
		Points:   opts.Points,
	}
	if spec.Start, err = si.Parse(opts.From); err != nil {
		_ = out.Error(errorCode(err), fmt.Sprintf("invalid --from: %v", err))
		return NewExitError(ExitCommandError, "invalid sweep range")
	}
	if spec.Stop, err = si.Parse(opts.To); err != nil {
		_ = out.Error(errorCode(err), fmt.Sprintf("invalid --to: %v", err))
		return NewExitError(ExitCommandError, "invalid sweep range")
	}

	points, err := noise.Sweep(params, spec)
	if err != nil {
		_ = out.Error(errorCode(err), err.Error())
		return NewExitError(ExitFailure, "sweep failed")
	}

	if opts.Format == "json" {
		body := make([]models.SweepPointModel, 0, len(points))
		for _, pt := range points {
			body = append(body, models.SweepPointModel{Value: pt.Value, SNRdB: pt.SNR, ENOBBits: pt.ENOB})
		}
		return out.Success(models.SweepBudgetResponseBody{Points: body})
	}

	renderSweepText(cmd.OutOrStdout(), spec.Variable, points)
	return nil
}
