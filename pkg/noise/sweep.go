package noise

import "math"

// SweepVariable selects which parameter a sweep varies.
type SweepVariable string

const (
	SweepFrequency SweepVariable = "frequency"
	SweepJitter    SweepVariable = "jitter"
)

// SweepScale selects the point spacing.
type SweepScale string

const (
	ScaleDecade SweepScale = "dec" // log10 spacing
	ScaleLinear SweepScale = "lin"
)

// SweepSpec describes a range of values for one swept variable.
type SweepSpec struct {
	Variable SweepVariable
	Scale    SweepScale
	Start    float64
	Stop     float64
	Points   int
}

// SweepPoint is one evaluated operating point.
type SweepPoint struct {
	Value float64 // swept variable value
	SNR   float64 // dB
	ENOB  float64 // bits
}

func (s SweepSpec) validate() error {
	if s.Variable != SweepFrequency && s.Variable != SweepJitter {
		return invalidParameter("sweep.variable", 0, "must be frequency or jitter")
	}
	if s.Scale != ScaleDecade && s.Scale != ScaleLinear {
		return invalidParameter("sweep.scale", 0, "must be dec or lin")
	}
	if s.Points < 2 {
		return invalidParameter("sweep.points", float64(s.Points), "must be at least 2")
	}
	if s.Start > s.Stop {
		return invalidParameter("sweep.from", s.Start, "must not exceed the sweep end value")
	}
	if s.Scale == ScaleDecade && s.Start <= 0 {
		return invalidParameter("sweep.from", s.Start, "must be positive for decade scale")
	}
	return nil
}

func (s SweepSpec) values() []float64 {
	vals := make([]float64, s.Points)
	switch s.Scale {
	case ScaleDecade:
		logStart := math.Log10(s.Start)
		logStop := math.Log10(s.Stop)
		step := (logStop - logStart) / float64(s.Points-1)
		for i := range vals {
			vals[i] = math.Pow(10, logStart+float64(i)*step)
		}
	default:
		step := (s.Stop - s.Start) / float64(s.Points-1)
		for i := range vals {
			vals[i] = s.Start + float64(i)*step
		}
	}
	return vals
}

// Sweep evaluates the budget once per generated point, with the swept
// variable overriding the corresponding field of p. Each point is an
// independent ComputeBudget call; the first error aborts the sweep.
func Sweep(p Parameters, spec SweepSpec) ([]SweepPoint, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	values := spec.values()
	points := make([]SweepPoint, 0, len(values))
	for _, v := range values {
		pp := p
		switch spec.Variable {
		case SweepFrequency:
			pp.InputFreq = v
		case SweepJitter:
			pp.JitterRMS = v
		}

		_, perf, err := ComputeBudget(pp)
		if err != nil {
			return nil, err
		}
		points = append(points, SweepPoint{Value: v, SNR: perf.SNR, ENOB: perf.ENOB})
	}
	return points, nil
}
