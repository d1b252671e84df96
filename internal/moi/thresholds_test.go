package moi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThresholdsFromConfig(t *testing.T) {
	conf := map[string]any{
		"gnomad_dominant":           0.001,
		"gnomad_max_ac_dominant":    10,
		"gnomad_max_homs_dominant":  5,
		"gnomad_max_homs_recessive": 15,
	}

	thresholds, err := ThresholdsFromConfig(conf)
	require.NoError(t, err)
	assert.Equal(t, 0.001, thresholds.DominantAF)
	assert.Equal(t, 10, thresholds.DominantAC)
	assert.Equal(t, 5, thresholds.DominantHom)
	assert.Equal(t, 15, thresholds.RecessiveHom)
}

func TestThresholdsFromConfigMissingKey(t *testing.T) {
	conf := map[string]any{
		"gnomad_dominant":          0.001,
		"gnomad_max_ac_dominant":   10,
		"gnomad_max_homs_dominant": 5,
	}

	_, err := ThresholdsFromConfig(conf)
	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.Contains(t, confErr.Message, "gnomad_max_homs_recessive")
}

func TestThresholdsFromConfigNonNumeric(t *testing.T) {
	conf := map[string]any{
		"gnomad_dominant":           "plenty",
		"gnomad_max_ac_dominant":    10,
		"gnomad_max_homs_dominant":  5,
		"gnomad_max_homs_recessive": 15,
	}

	_, err := ThresholdsFromConfig(conf)
	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
}
