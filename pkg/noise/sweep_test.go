package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sweepBase() Parameters {
	return Parameters{
		FullScale:     1.0,
		Bits:          12,
		JitterRMS:     1e-12,
		IncludeJitter: true,
	}
}

func TestSweepDecadeSpacing(t *testing.T) {
	points, err := Sweep(sweepBase(), SweepSpec{
		Variable: SweepFrequency,
		Scale:    ScaleDecade,
		Start:    1.0,
		Stop:     1e3,
		Points:   4,
	})
	require.NoError(t, err)
	require.Len(t, points, 4)

	for i, want := range []float64{1, 10, 100, 1000} {
		assert.InEpsilon(t, want, points[i].Value, 1e-9)
	}
}

func TestSweepLinearSpacing(t *testing.T) {
	points, err := Sweep(sweepBase(), SweepSpec{
		Variable: SweepFrequency,
		Scale:    ScaleLinear,
		Start:    0,
		Stop:     90,
		Points:   10,
	})
	require.NoError(t, err)
	require.Len(t, points, 10)

	for i, pt := range points {
		assert.InDelta(t, float64(i)*10, pt.Value, 1e-9)
	}
}

func TestSweepFrequencyDegradesSNR(t *testing.T) {
	// With jitter enabled, SNR falls strictly as frequency rises.
	points, err := Sweep(sweepBase(), SweepSpec{
		Variable: SweepFrequency,
		Scale:    ScaleDecade,
		Start:    1e6,
		Stop:     1e9,
		Points:   7,
	})
	require.NoError(t, err)

	for i := 1; i < len(points); i++ {
		assert.Less(t, points[i].SNR, points[i-1].SNR)
	}
}

func TestSweepJitterVariable(t *testing.T) {
	p := sweepBase()
	p.InputFreq = 100e6

	points, err := Sweep(p, SweepSpec{
		Variable: SweepJitter,
		Scale:    ScaleDecade,
		Start:    10e-15,
		Stop:     10e-12,
		Points:   4,
	})
	require.NoError(t, err)
	require.Len(t, points, 4)

	for i := 1; i < len(points); i++ {
		assert.Less(t, points[i].SNR, points[i-1].SNR)
	}
}

func TestSweepValidation(t *testing.T) {
	tests := []struct {
		name      string
		spec      SweepSpec
		wantField string
	}{
		{
			name:      "unknown variable",
			spec:      SweepSpec{Variable: "voltage", Scale: ScaleDecade, Start: 1, Stop: 10, Points: 3},
			wantField: "sweep.variable",
		},
		{
			name:      "unknown scale",
			spec:      SweepSpec{Variable: SweepFrequency, Scale: "oct", Start: 1, Stop: 10, Points: 3},
			wantField: "sweep.scale",
		},
		{
			name:      "too few points",
			spec:      SweepSpec{Variable: SweepFrequency, Scale: ScaleDecade, Start: 1, Stop: 10, Points: 1},
			wantField: "sweep.points",
		},
		{
			name:      "inverted range",
			spec:      SweepSpec{Variable: SweepFrequency, Scale: ScaleDecade, Start: 10, Stop: 1, Points: 3},
			wantField: "sweep.from",
		},
		{
			name:      "non-positive start on decade scale",
			spec:      SweepSpec{Variable: SweepFrequency, Scale: ScaleDecade, Start: 0, Stop: 10, Points: 3},
			wantField: "sweep.from",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sweep(sweepBase(), tt.spec)
			require.Error(t, err)

			var ie *InvalidParameterError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tt.wantField, ie.Field)
		})
	}
}

func TestSweepPropagatesBudgetErrors(t *testing.T) {
	_, err := Sweep(Parameters{FullScale: 0, Bits: 8}, SweepSpec{
		Variable: SweepFrequency,
		Scale:    ScaleDecade,
		Start:    1e6,
		Stop:     1e9,
		Points:   3,
	})
	require.Error(t, err)
	assert.True(t, IsInvalidParameter(err))
}
