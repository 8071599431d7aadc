package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Ilhoon-Jang/adc-noise-calculation/internal/api/handlers"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API) {
	// Initialize handlers
	budgetHandler := handlers.NewBudgetHandler()

	// Register budget routes
	huma.Register(api, huma.Operation{
		OperationID: "computeBudget",
		Method:      http.MethodPost,
		Path:        "/api/budget",
		Summary:     "Compute a noise budget",
		Description: "Combines quantization, thermal, kT/C and jitter noise powers and derives SNR and ENOB",
		Tags:        []string{"Budget"},
	}, budgetHandler.ComputeBudget)

	huma.Register(api, huma.Operation{
		OperationID: "sweepBudget",
		Method:      http.MethodPost,
		Path:        "/api/budget/sweep",
		Summary:     "Sweep one budget variable",
		Description: "Evaluates the noise budget across a range of input frequency or clock jitter",
		Tags:        []string{"Budget"},
	}, budgetHandler.SweepBudget)

	huma.Register(api, huma.Operation{
		OperationID: "estimateSNDR",
		Method:      http.MethodPost,
		Path:        "/api/sndr",
		Summary:     "Estimate noise from measured SNDR",
		Description: "Back-calculates the implied total noise RMS and ENOB from a measured SNDR figure",
		Tags:        []string{"SNDR"},
	}, budgetHandler.EstimateSNDR)

	huma.Register(api, huma.Operation{
		OperationID: "parseValue",
		Method:      http.MethodPost,
		Path:        "/api/parse",
		Summary:     "Parse an engineering-notation value",
		Description: "Exposes the SI string parser for client-side validation",
		Tags:        []string{"Parse"},
	}, budgetHandler.ParseValue)
}
