package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSNDRCommand(t *testing.T) {
	out, err := executeCommand(t, "sndr", "--full-scale", "1", "--sndr", "50")
	require.NoError(t, err)

	assert.Contains(t, out, "Estimated Noise RMS:  1.118 mV")
	assert.Contains(t, out, "ENOB:                 8.01 bits")
}

func TestSNDRCommandJSON(t *testing.T) {
	out, err := executeCommand(t, "sndr", "--sndr", "74", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			EstimatedNoiseRMS float64 `json:"estimated_noise_rms"`
			ENOBBits          float64 `json:"enob_bits"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, (74.0-1.76)/6.02, resp.Data.ENOBBits)
	assert.Greater(t, resp.Data.EstimatedNoiseRMS, 0.0)
}

func TestSNDRCommandRequiresSNDR(t *testing.T) {
	_, err := executeCommand(t, "sndr")
	require.Error(t, err)
}

func TestSNDRCommandInvalidFullScale(t *testing.T) {
	out, err := executeCommand(t, "sndr", "--full-scale", "0", "--sndr", "50")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "INVALID_PARAMETER")
}
