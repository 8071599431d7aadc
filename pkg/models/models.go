package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// ComputeBudgetRequestBody carries the ADC parameters for a budget
// computation. Physical quantities are engineering-notation strings
// ("1m", "100M") fed through the SI parser.
type ComputeBudgetRequestBody struct {
	FullScale      string `json:"full_scale" required:"true" example:"1" doc:"Full-scale voltage in volts (SI notation accepted)"`
	Bits           int    `json:"bits" minimum:"1" required:"true" example:"8" doc:"Converter resolution in bits"`
	ThermalRMS     string `json:"thermal_rms,omitempty" example:"1m" doc:"Thermal/comparator noise in RMS volts"`
	SamplingCap    string `json:"sampling_cap,omitempty" example:"1p" doc:"Sampling capacitance in farads, required when include_ktc is true"`
	InputFrequency string `json:"input_frequency,omitempty" example:"100M" doc:"Input signal frequency in hertz"`
	ClockJitterRMS string `json:"clock_jitter_rms,omitempty" example:"1p" doc:"Sampling clock jitter in RMS seconds"`
	IncludeKTC     bool   `json:"include_ktc,omitempty" doc:"Include kT/C sampling noise"`
	IncludeJitter  bool   `json:"include_jitter,omitempty" doc:"Include clock jitter noise"`
}

// ComputeBudgetRequest represents a request to compute a noise budget
type ComputeBudgetRequest struct {
	Body ComputeBudgetRequestBody
}

// ComputeBudgetResponseBody is the body of the budget response. Powers
// are full-precision V²; display scaling belongs to the client.
type ComputeBudgetResponseBody struct {
	QuantizationPower float64 `json:"quantization_power" doc:"Quantization noise power in V²"`
	ThermalPower      float64 `json:"thermal_power" doc:"Thermal noise power in V²"`
	KTCPower          float64 `json:"ktc_power" doc:"kT/C noise power in V², zero when disabled"`
	JitterPower       float64 `json:"jitter_power" doc:"Jitter noise power in V², zero when disabled"`
	TotalPower        float64 `json:"total_power" doc:"Total noise power in V²"`
	SNRdB             float64 `json:"snr_db" doc:"Signal-to-noise ratio in dB"`
	ENOBBits          float64 `json:"enob_bits" doc:"Effective number of bits"`
}

// ComputeBudgetResponse represents the computed noise budget
type ComputeBudgetResponse struct {
	Body ComputeBudgetResponseBody
}

// SweepSpecModel describes the swept variable and range
type SweepSpecModel struct {
	Variable string `json:"variable" enum:"frequency,jitter" required:"true" doc:"Parameter to sweep"`
	Scale    string `json:"scale,omitempty" enum:"dec,lin" default:"dec" doc:"Point spacing"`
	From     string `json:"from" required:"true" example:"1M" doc:"Sweep start value (SI notation accepted)"`
	To       string `json:"to" required:"true" example:"1G" doc:"Sweep end value (SI notation accepted)"`
	Points   int    `json:"points" minimum:"2" required:"true" example:"10" doc:"Number of evaluated points"`
}

// SweepBudgetRequestBody is the budget body plus the sweep spec
type SweepBudgetRequestBody struct {
	ComputeBudgetRequestBody
	Sweep SweepSpecModel `json:"sweep" required:"true" doc:"Sweep specification"`
}

// SweepBudgetRequest represents a request to sweep one budget variable
type SweepBudgetRequest struct {
	Body SweepBudgetRequestBody
}

// SweepPointModel is one evaluated operating point
type SweepPointModel struct {
	Value    float64 `json:"value" doc:"Swept variable value (Hz or s)"`
	SNRdB    float64 `json:"snr_db" doc:"Signal-to-noise ratio in dB"`
	ENOBBits float64 `json:"enob_bits" doc:"Effective number of bits"`
}

// SweepBudgetResponseBody is the body of the sweep response
type SweepBudgetResponseBody struct {
	Points []SweepPointModel `json:"points" doc:"Evaluated sweep points in sweep order"`
}

// SweepBudgetResponse represents the evaluated sweep series
type SweepBudgetResponse struct {
	Body SweepBudgetResponseBody
}

// EstimateSNDRRequest represents a request to back-calculate noise from
// a measured SNDR figure
type EstimateSNDRRequest struct {
	Body struct {
		FullScale    string  `json:"full_scale" required:"true" example:"1" doc:"Full-scale voltage in volts (SI notation accepted)"`
		MeasuredSNDR float64 `json:"measured_sndr_db" required:"true" example:"50" doc:"Measured SNDR in dB"`
	}
}

// EstimateSNDRResponseBody is the body of the SNDR estimation response
type EstimateSNDRResponseBody struct {
	EstimatedNoiseRMS float64 `json:"estimated_noise_rms" doc:"Implied total noise in RMS volts"`
	ENOBBits          float64 `json:"enob_bits" doc:"Effective number of bits"`
}

// EstimateSNDRResponse represents the SNDR estimation result
type EstimateSNDRResponse struct {
	Body EstimateSNDRResponseBody
}

// ParseValueRequest represents a request to parse one SI string
type ParseValueRequest struct {
	Body struct {
		Value string `json:"value" required:"true" example:"1.5k" doc:"Engineering-notation value to parse"`
	}
}

// ParseValueResponseBody is the body of the parse response
type ParseValueResponseBody struct {
	Magnitude float64 `json:"magnitude" doc:"Parsed magnitude"`
}

// ParseValueResponse represents the parsed magnitude
type ParseValueResponse struct {
	Body ParseValueResponseBody
}
