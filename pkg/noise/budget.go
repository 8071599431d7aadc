// Package noise computes ADC noise budgets: per-source noise powers for
// a sampled full-scale sinusoid, their total, and the resulting SNR and
// effective number of bits. All functions are pure and return
// full-precision values; display rounding belongs to the caller.
package noise

import (
	"math"

	"github.com/Ilhoon-Jang/adc-noise-calculation/internal/consts"
)

// Parameters describes one ADC operating point.
type Parameters struct {
	// FullScale is the converter full-scale voltage in volts.
	FullScale float64

	// Bits is the converter resolution in bits.
	Bits int

	// ThermalRMS is the thermal/comparator noise in RMS volts.
	ThermalRMS float64

	// SamplingCap is the sampling capacitance in farads.
	// Required only when IncludeKTC is set.
	SamplingCap float64

	// InputFreq is the input signal frequency in hertz.
	InputFreq float64

	// JitterRMS is the sampling clock jitter in RMS seconds.
	JitterRMS float64

	IncludeKTC    bool
	IncludeJitter bool
}

// Breakdown holds the per-source noise powers in V². Sources disabled by
// flag contribute exactly zero.
type Breakdown struct {
	Quantization float64
	Thermal      float64
	KTC          float64
	Jitter       float64
	Total        float64
}

// Performance holds the derived figures of merit.
type Performance struct {
	SNR  float64 // dB
	ENOB float64 // bits
}

func (p Parameters) validate() error {
	if p.FullScale <= 0 {
		return invalidParameter("full_scale", p.FullScale, "must be positive")
	}
	if p.Bits < 1 {
		return invalidParameter("bits", float64(p.Bits), "must be at least 1")
	}
	if p.ThermalRMS < 0 {
		return invalidParameter("thermal_rms", p.ThermalRMS, "must be non-negative")
	}
	if p.InputFreq < 0 {
		return invalidParameter("input_frequency", p.InputFreq, "must be non-negative")
	}
	if p.JitterRMS < 0 {
		return invalidParameter("clock_jitter_rms", p.JitterRMS, "must be non-negative")
	}
	if p.IncludeKTC && p.SamplingCap <= 0 {
		return invalidParameter("sampling_cap", p.SamplingCap, "must be positive when kT/C noise is included")
	}
	return nil
}

// ComputeBudget combines quantization, thermal, kT/C and jitter noise
// powers into a total and derives SNR and ENOB for a full-scale sinusoid.
// Returns an UndefinedSNRError when the total noise power is exactly zero.
func ComputeBudget(p Parameters) (Breakdown, Performance, error) {
	if err := p.validate(); err != nil {
		return Breakdown{}, Performance{}, err
	}

	// Quantization: LSB step of delta gives delta/sqrt(12) RMS.
	delta := p.FullScale / math.Pow(2, float64(p.Bits))
	vqRMS := delta / math.Sqrt(12)

	var bd Breakdown
	bd.Quantization = vqRMS * vqRMS
	bd.Thermal = p.ThermalRMS * p.ThermalRMS

	if p.IncludeKTC {
		// Factor 2 models the differential sampling path.
		bd.KTC = 2 * consts.BOLTZMANN * consts.ROOMTEMP / p.SamplingCap
	}

	if p.IncludeJitter {
		// Slew-rate-induced error for a full-scale sinusoid; the /2
		// averages sin² over a cycle.
		slew := 2 * math.Pi * p.InputFreq * (p.FullScale / 2)
		bd.Jitter = slew * slew * p.JitterRMS * p.JitterRMS / 2
	}

	bd.Total = bd.Quantization + bd.Thermal + bd.KTC + bd.Jitter
	if bd.Total == 0 {
		return Breakdown{}, Performance{}, &UndefinedSNRError{}
	}

	signalRMS := p.FullScale / (2 * math.Sqrt2)
	snr := 10 * math.Log10(signalRMS*signalRMS/bd.Total)

	return bd, Performance{SNR: snr, ENOB: (snr - 1.76) / 6.02}, nil
}
