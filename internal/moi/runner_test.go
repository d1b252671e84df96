package moi

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterClasses(r *MOIRunner) []string {
	classes := make([]string, 0, len(r.FilterList()))
	for _, filter := range r.FilterList() {
		classes = append(classes, fmt.Sprintf("%T", filter))
	}
	return classes
}

func TestNewMOIRunnerDispatch(t *testing.T) {
	ped := singletonPed("sam", true, false)

	tests := []struct {
		moi     string
		classes []string
	}{
		{MOIMonoallelic, []string{"*moi.DominantAutosomal"}},
		{MOIMonoAndBiallelic, []string{"*moi.DominantAutosomal", "*moi.RecessiveAutosomal"}},
		{MOIUnknown, []string{"*moi.DominantAutosomal", "*moi.RecessiveAutosomal"}},
		{MOIBiallelic, []string{"*moi.RecessiveAutosomal"}},
		{MOIHemiMonoInFemale, []string{"*moi.XRecessive", "*moi.XDominant"}},
		{MOIHemiBiInFemale, []string{"*moi.XRecessive"}},
		{MOIYChromVariant, []string{"*moi.YHemi"}},
	}

	for _, tt := range tests {
		t.Run(tt.moi, func(t *testing.T) {
			runner, err := NewMOIRunner(ped, tt.moi, testThresholds, CompHetIndex{})
			require.NoError(t, err)
			assert.Equal(t, tt.moi, runner.TargetMOI())
			assert.Equal(t, tt.classes, filterClasses(runner))
		})
	}
}

func TestNewMOIRunnerUnknownLabel(t *testing.T) {
	ped := singletonPed("sam", true, false)

	_, err := NewMOIRunner(ped, "not_a_moi", testThresholds, CompHetIndex{})
	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.Contains(t, confErr.Message, "not_a_moi")
}

func TestMOIRunnerConcatenatesFindings(t *testing.T) {
	// a het proband with a comp-het partner satisfies both the dominant and
	// the recessive model under Mono_And_Biallelic
	ped := singletonPed("sam", true, false)
	index := indexWithPartner("sam", "ENSG00000012345", "1-100-A-G", "1-200-A-G")
	runner, err := NewMOIRunner(ped, MOIMonoAndBiallelic, testThresholds, index)
	require.NoError(t, err)

	results, err := runner.Run(withHet(testVariant("1", 100), "sam"))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, []string{"Autosomal Dominant"}, results[0].Reasons.Sorted())
	assert.Equal(t, []string{"Autosomal Recessive Compound-Het"}, results[1].Reasons.Sorted())
}

func TestMOIRunnerPropagatesErrors(t *testing.T) {
	ped := singletonPed("sam", true, false)
	runner, err := NewMOIRunner(ped, MOIHemiBiInFemale, testThresholds, CompHetIndex{})
	require.NoError(t, err)

	// an autosomal variant reaching an X-linked runner is a dispatch error
	_, err = runner.Run(withHet(testVariant("1", 100), "sam"))
	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
}
