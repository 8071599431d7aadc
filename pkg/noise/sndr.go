package noise

import "math"

// SNDREstimate is the result of back-calculating noise from a measured
// SNDR figure.
type SNDREstimate struct {
	NoiseRMS float64 // volts
	ENOB     float64 // bits
}

// EstimateFromSNDR back-calculates the implied total noise RMS and ENOB
// from an externally measured SNDR. It is a standalone closed-form
// transform and never consults a noise Breakdown.
func EstimateFromSNDR(fullScale, sndrDB float64) (SNDREstimate, error) {
	if fullScale <= 0 {
		return SNDREstimate{}, invalidParameter("full_scale", fullScale, "must be positive")
	}

	signalRMS := fullScale / (2 * math.Sqrt2)
	return SNDREstimate{
		NoiseRMS: signalRMS / math.Pow(10, sndrDB/20),
		ENOB:     (sndrDB - 1.76) / 6.02,
	}, nil
}
