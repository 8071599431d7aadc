package handlers

import (
	"context"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"

	"github.com/Ilhoon-Jang/adc-noise-calculation/pkg/models"
	"github.com/Ilhoon-Jang/adc-noise-calculation/pkg/noise"
	"github.com/Ilhoon-Jang/adc-noise-calculation/pkg/si"
)

// BudgetHandler handles noise budget HTTP requests
type BudgetHandler struct{}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler() *BudgetHandler {
	return &BudgetHandler{}
}

// ComputeBudget computes a noise budget from engineering-notation parameters
func (h *BudgetHandler) ComputeBudget(ctx context.Context, req *models.ComputeBudgetRequest) (*models.ComputeBudgetResponse, error) {
	log.Info().Str("fullScale", req.Body.FullScale).Int("bits", req.Body.Bits).Msg("Computing noise budget")

	params, err := h.parseParameters(req.Body)
	if err != nil {
		return nil, err
	}

	bd, perf, err := noise.ComputeBudget(params)
	if err != nil {
		return nil, mapNoiseError(err)
	}

	log.Info().Float64("snrDB", perf.SNR).Float64("enobBits", perf.ENOB).Msg("Noise budget computed")
	return &models.ComputeBudgetResponse{
		Body: models.ComputeBudgetResponseBody{
			QuantizationPower: bd.Quantization,
			ThermalPower:      bd.Thermal,
			KTCPower:          bd.KTC,
			JitterPower:       bd.Jitter,
			TotalPower:        bd.Total,
			SNRdB:             perf.SNR,
			ENOBBits:          perf.ENOB,
		},
	}, nil
}

// SweepBudget evaluates the budget across a range of one swept variable
func (h *BudgetHandler) SweepBudget(ctx context.Context, req *models.SweepBudgetRequest) (*models.SweepBudgetResponse, error) {
	log.Info().Str("variable", req.Body.Sweep.Variable).Int("points", req.Body.Sweep.Points).Msg("Sweeping noise budget")

	params, err := h.parseParameters(req.Body.ComputeBudgetRequestBody)
	if err != nil {
		return nil, err
	}

	spec := noise.SweepSpec{
		Variable: noise.SweepVariable(req.Body.Sweep.Variable),
		Scale:    noise.SweepScale(req.Body.Sweep.Scale),
		Points:   req.Body.Sweep.Points,
	}
	if spec.Scale == "" {
		spec.Scale = noise.ScaleDecade
	}
	if spec.Start, err = parseField("sweep.from", req.Body.Sweep.From); err != nil {
		return nil, err
	}
	if spec.Stop, err = parseField("sweep.to", req.Body.Sweep.To); err != nil {
		return nil, err
	}

	points, err := noise.Sweep(params, spec)
	if err != nil {
		return nil, mapNoiseError(err)
	}

	body := models.SweepBudgetResponseBody{Points: make([]models.SweepPointModel, 0, len(points))}
	for _, pt := range points {
		body.Points = append(body.Points, models.SweepPointModel{Value: pt.Value, SNRdB: pt.SNR, ENOBBits: pt.ENOB})
	}
	return &models.SweepBudgetResponse{Body: body}, nil
}

// EstimateSNDR back-calculates implied noise and ENOB from a measured SNDR
func (h *BudgetHandler) EstimateSNDR(ctx context.Context, req *models.EstimateSNDRRequest) (*models.EstimateSNDRResponse, error) {
	log.Info().Float64("measuredSNDR", req.Body.MeasuredSNDR).Msg("Estimating noise from SNDR")

	fullScale, err := parseField("full_scale", req.Body.FullScale)
	if err != nil {
		return nil, err
	}

	est, err := noise.EstimateFromSNDR(fullScale, req.Body.MeasuredSNDR)
	if err != nil {
		return nil, mapNoiseError(err)
	}

	return &models.EstimateSNDRResponse{
		Body: models.EstimateSNDRResponseBody{
			EstimatedNoiseRMS: est.NoiseRMS,
			ENOBBits:          est.ENOB,
		},
	}, nil
}

// ParseValue parses one engineering-notation string
func (h *BudgetHandler) ParseValue(ctx context.Context, req *models.ParseValueRequest) (*models.ParseValueResponse, error) {
	v, err := si.Parse(req.Body.Value)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(fmt.Sprintf("Could not parse value %q", req.Body.Value), err)
	}
	return &models.ParseValueResponse{Body: models.ParseValueResponseBody{Magnitude: v}}, nil
}

// parseParameters converts the request body's engineering-notation
// strings into core parameters. Empty optional fields stay zero.
func (h *BudgetHandler) parseParameters(body models.ComputeBudgetRequestBody) (noise.Parameters, error) {
	params := noise.Parameters{
		Bits:          body.Bits,
		IncludeKTC:    body.IncludeKTC,
		IncludeJitter: body.IncludeJitter,
	}

	fields := []struct {
		name     string
		raw      string
		dst      *float64
		required bool
	}{
		{"full_scale", body.FullScale, &params.FullScale, true},
		{"thermal_rms", body.ThermalRMS, &params.ThermalRMS, false},
		{"sampling_cap", body.SamplingCap, &params.SamplingCap, false},
		{"input_frequency", body.InputFrequency, &params.InputFreq, false},
		{"clock_jitter_rms", body.ClockJitterRMS, &params.JitterRMS, false},
	}
	for _, f := range fields {
		if f.raw == "" {
			if f.required {
				return noise.Parameters{}, huma.Error422UnprocessableEntity(fmt.Sprintf("Missing required field %s", f.name))
			}
			continue
		}
		v, err := parseField(f.name, f.raw)
		if err != nil {
			return noise.Parameters{}, err
		}
		*f.dst = v
	}
	return params, nil
}

func parseField(name, raw string) (float64, error) {
	v, err := si.Parse(raw)
	if err != nil {
		return 0, huma.Error422UnprocessableEntity(fmt.Sprintf("Invalid %s value", name), err)
	}
	return v, nil
}

// mapNoiseError translates core error types to HTTP status errors
func mapNoiseError(err error) error {
	switch {
	case noise.IsUndefinedSNR(err):
		return huma.Error422UnprocessableEntity("SNR is undefined: total noise power is zero", err)
	case noise.IsInvalidParameter(err):
		return huma.Error422UnprocessableEntity("Invalid parameter", err)
	default:
		return huma.Error500InternalServerError("Failed to compute noise budget", err)
	}
}
