package si

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1m", 1e-3},
		{"1M", 1e6},
		{"1p", 1e-12},
		{"100M", 1e8},
		{"1.5k", 1500.0},
		{"1meg", 1e6},
		{"1G", 1e9},
		{"0.5f", 0.5e-15},
		{"-2.5n", -2.5e-9},
		{"3.3u", 3.3e-6},
		{"42", 42.0},
		{"1e-6", 1e-6},
		{"2.5e3", 2500.0},
		{"  10k  ", 1e4},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.want, got, 1e-12)
		})
	}
}

func TestParseMicroGlyphs(t *testing.T) {
	// Micro sign (U+00B5) and Greek mu (U+03BC) both map to "u".
	for _, input := range []string{"3.3µ", "3.3μ"} {
		got, err := Parse(input)
		require.NoError(t, err)
		assert.InEpsilon(t, 3.3e-6, got, 1e-12)
	}
}

func TestParseCaseSensitivity(t *testing.T) {
	// Milli vs. mega is physically significant, so case is preserved.
	milli, err := Parse("1m")
	require.NoError(t, err)
	mega, err := Parse("1M")
	require.NoError(t, err)

	assert.InEpsilon(t, 1e-3, milli, 1e-12)
	assert.InEpsilon(t, 1e6, mega, 1e-12)
	assert.NotEqual(t, milli, mega)
}

func TestParseLongestSuffixFirst(t *testing.T) {
	// "2meg" must resolve against "meg", not bare "m" with a "2me" mantissa.
	got, err := Parse("2meg")
	require.NoError(t, err)
	assert.InEpsilon(t, 2e6, got, 1e-12)
}

func TestParseErrors(t *testing.T) {
	tests := []string{"abc", "xk", "", "1q", "meg", "1..5k"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.True(t, IsParseError(err))

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, input, pe.Input)
		})
	}
}

func TestParseIdempotence(t *testing.T) {
	// Re-parsing the printed form of a plain number reproduces it.
	for _, input := range []string{"42", "1e-6", "3.14159", "-0.001"} {
		first, err := Parse(input)
		require.NoError(t, err)

		second, err := Parse(strconv.FormatFloat(first, 'g', -1, 64))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}
