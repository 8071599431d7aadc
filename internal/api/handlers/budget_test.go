package handlers

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ilhoon-Jang/adc-noise-calculation/pkg/models"
)

func defaultBudgetBody() models.ComputeBudgetRequestBody {
	return models.ComputeBudgetRequestBody{
		FullScale:      "1",
		Bits:           8,
		ThermalRMS:     "1m",
		SamplingCap:    "1p",
		InputFrequency: "100M",
		ClockJitterRMS: "1p",
		IncludeKTC:     true,
		IncludeJitter:  true,
	}
}

func statusCode(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestComputeBudget(t *testing.T) {
	handler := NewBudgetHandler()

	resp, err := handler.ComputeBudget(context.Background(), &models.ComputeBudgetRequest{Body: defaultBudgetBody()})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.InDelta(t, 47.30, resp.Body.SNRdB, 0.01)
	assert.InDelta(t, 7.56, resp.Body.ENOBBits, 0.01)
	assert.Greater(t, resp.Body.KTCPower, 0.0)
	assert.Greater(t, resp.Body.JitterPower, 0.0)
	assert.InEpsilon(t,
		resp.Body.QuantizationPower+resp.Body.ThermalPower+resp.Body.KTCPower+resp.Body.JitterPower,
		resp.Body.TotalPower, 1e-12)
}

func TestComputeBudgetErrors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*models.ComputeBudgetRequestBody)
		wantCode int
	}{
		{
			name:     "unparseable full scale",
			mutate:   func(b *models.ComputeBudgetRequestBody) { b.FullScale = "abc" },
			wantCode: 422,
		},
		{
			name:     "missing full scale",
			mutate:   func(b *models.ComputeBudgetRequestBody) { b.FullScale = "" },
			wantCode: 422,
		},
		{
			name: "missing capacitance with kT/C enabled",
			mutate: func(b *models.ComputeBudgetRequestBody) {
				b.SamplingCap = ""
				b.IncludeKTC = true
			},
			wantCode: 422,
		},
		{
			name:     "sub-1-bit resolution",
			mutate:   func(b *models.ComputeBudgetRequestBody) { b.Bits = 0 },
			wantCode: 422,
		},
		{
			name: "undefined SNR",
			mutate: func(b *models.ComputeBudgetRequestBody) {
				b.Bits = 4000
				b.ThermalRMS = "0"
				b.IncludeKTC = false
				b.IncludeJitter = false
			},
			wantCode: 422,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewBudgetHandler()
			body := defaultBudgetBody()
			tt.mutate(&body)

			_, err := handler.ComputeBudget(context.Background(), &models.ComputeBudgetRequest{Body: body})
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, statusCode(t, err))
		})
	}
}

func TestComputeBudgetUndefinedSNRMessage(t *testing.T) {
	handler := NewBudgetHandler()
	body := models.ComputeBudgetRequestBody{FullScale: "1", Bits: 4000}

	_, err := handler.ComputeBudget(context.Background(), &models.ComputeBudgetRequest{Body: body})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SNR is undefined")
}

func TestSweepBudget(t *testing.T) {
	handler := NewBudgetHandler()

	req := &models.SweepBudgetRequest{}
	req.Body.ComputeBudgetRequestBody = defaultBudgetBody()
	req.Body.Sweep = models.SweepSpecModel{
		Variable: "frequency",
		Scale:    "dec",
		From:     "1M",
		To:       "1G",
		Points:   5,
	}

	resp, err := handler.SweepBudget(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Body.Points, 5)

	// Jitter noise grows with frequency, so SNR must fall monotonically.
	for i := 1; i < len(resp.Body.Points); i++ {
		assert.Less(t, resp.Body.Points[i].SNRdB, resp.Body.Points[i-1].SNRdB)
	}
}

func TestSweepBudgetErrors(t *testing.T) {
	tests := []struct {
		name  string
		sweep models.SweepSpecModel
	}{
		{
			name:  "unparseable range",
			sweep: models.SweepSpecModel{Variable: "frequency", Scale: "dec", From: "abc", To: "1G", Points: 5},
		},
		{
			name:  "unknown variable",
			sweep: models.SweepSpecModel{Variable: "voltage", Scale: "dec", From: "1M", To: "1G", Points: 5},
		},
		{
			name:  "too few points",
			sweep: models.SweepSpecModel{Variable: "frequency", Scale: "dec", From: "1M", To: "1G", Points: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewBudgetHandler()
			req := &models.SweepBudgetRequest{}
			req.Body.ComputeBudgetRequestBody = defaultBudgetBody()
			req.Body.Sweep = tt.sweep

			_, err := handler.SweepBudget(context.Background(), req)
			require.Error(t, err)
			assert.Equal(t, 422, statusCode(t, err))
		})
	}
}

func TestEstimateSNDR(t *testing.T) {
	handler := NewBudgetHandler()

	req := &models.EstimateSNDRRequest{}
	req.Body.FullScale = "1"
	req.Body.MeasuredSNDR = 50.0

	resp, err := handler.EstimateSNDR(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, (50.0-1.76)/6.02, resp.Body.ENOBBits)
	assert.InDelta(t, 1.118e-3, resp.Body.EstimatedNoiseRMS, 1e-6)
}

func TestEstimateSNDRErrors(t *testing.T) {
	handler := NewBudgetHandler()

	req := &models.EstimateSNDRRequest{}
	req.Body.FullScale = "0"
	req.Body.MeasuredSNDR = 50.0

	_, err := handler.EstimateSNDR(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, 422, statusCode(t, err))
}

func TestParseValue(t *testing.T) {
	handler := NewBudgetHandler()

	tests := []struct {
		input string
		want  float64
	}{
		{"2meg", 2e6},
		{"1.5k", 1500.0},
		{"1p", 1e-12},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			req := &models.ParseValueRequest{}
			req.Body.Value = tt.input

			resp, err := handler.ParseValue(context.Background(), req)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.want, resp.Body.Magnitude, 1e-12)
		})
	}
}

func TestParseValueError(t *testing.T) {
	handler := NewBudgetHandler()

	req := &models.ParseValueRequest{}
	req.Body.Value = "abc"

	_, err := handler.ParseValue(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, 422, statusCode(t, err))
}
