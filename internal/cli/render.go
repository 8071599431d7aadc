package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/Ilhoon-Jang/adc-noise-calculation/pkg/noise"
	"github.com/Ilhoon-Jang/adc-noise-calculation/pkg/si"
)

// renderBudgetText writes the classic budgeting report: quantization RMS
// in mV, the five power lines in µV², then SNR and ENOB.
func renderBudgetText(w io.Writer, bd noise.Breakdown, perf noise.Performance) {
	vqRMS := math.Sqrt(bd.Quantization)
	fmt.Fprintln(w, "ADC Noise Budget")
	fmt.Fprintln(w, "----------------")
	fmt.Fprintf(w, "Quantization Noise RMS:    %.3f mV\n", vqRMS*1e3)
	fmt.Fprintf(w, "Quantization Noise Power:  %.3f µV²\n", bd.Quantization*1e6)
	fmt.Fprintf(w, "Thermal Noise Power:       %.3f µV²\n", bd.Thermal*1e6)
	fmt.Fprintf(w, "kT/C Noise Power:          %.3f µV²\n", bd.KTC*1e6)
	fmt.Fprintf(w, "Jitter Noise Power:        %.3f µV²\n", bd.Jitter*1e6)
	fmt.Fprintf(w, "Total Noise Power:         %.3f µV²\n", bd.Total*1e6)
	fmt.Fprintf(w, "SNR:                       %.2f dB\n", perf.SNR)
	fmt.Fprintf(w, "ENOB:                      %.2f bits\n", perf.ENOB)
}

func renderSweepText(w io.Writer, variable noise.SweepVariable, points []noise.SweepPoint) {
	label := "Frequency"
	if variable == noise.SweepJitter {
		label = "Jitter"
	}
	fmt.Fprintf(w, "%-14s %9s %12s\n", label, "SNR (dB)", "ENOB (bits)")
	for _, pt := range points {
		value := si.FormatFrequency(pt.Value)
		if variable == noise.SweepJitter {
			value = si.FormatValue(pt.Value, "s")
		}
		fmt.Fprintf(w, "%-14s %9.2f %12.2f\n", value, pt.SNR, pt.ENOB)
	}
}

func renderSNDRText(w io.Writer, est noise.SNDREstimate) {
	fmt.Fprintf(w, "Estimated Noise RMS:  %s\n", si.FormatValue(est.NoiseRMS, "V"))
	fmt.Fprintf(w, "ENOB:                 %.2f bits\n", est.ENOB)
}
