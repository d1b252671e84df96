package moi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/populationgenomics/automated-interpretation-pipeline/internal/variant"
)

func TestFamilialSingletonAffectedCalled(t *testing.T) {
	ped := singletonPed("only", true, false)
	called := variant.NewStringSet("only")

	passing, checked := CheckFamilialInheritance(ped, "only", called, nil, true)
	assert.True(t, passing)
	assert.True(t, checked.Has("only"))
}

func TestFamilialAffectedNotCalled(t *testing.T) {
	ped := singletonPed("only", true, false)

	passing, _ := CheckFamilialInheritance(ped, "only", variant.NewStringSet(), nil, true)
	assert.False(t, passing)
}

func TestFamilialTrioDeNovo(t *testing.T) {
	// affected proband called, unaffected parents uncalled: passes
	ped := trioPed()
	called := variant.NewStringSet("proband")

	passing, checked := CheckFamilialInheritance(ped, "proband", called, nil, true)
	assert.True(t, passing)
	for _, id := range []string{"proband", "mum", "dad"} {
		assert.True(t, checked.Has(id), "expected %s visited", id)
	}
}

func TestFamilialUnaffectedCarrierFailsUnderCompletePenetrance(t *testing.T) {
	ped := trioPed()
	called := variant.NewStringSet("proband", "mum")

	passing, _ := CheckFamilialInheritance(ped, "proband", called, nil, true)
	assert.False(t, passing)
}

func TestFamilialUnaffectedCarrierPassesForRecessiveCarriage(t *testing.T) {
	// het parents carrying one half of a recessive pair must not fail the family
	ped := trioPed()
	called := variant.NewStringSet("proband", "mum")

	passing, _ := CheckFamilialInheritance(ped, "proband", called, nil, false)
	assert.True(t, passing)
}

func TestFamilialUnknownSampleFails(t *testing.T) {
	ped := trioPed()

	passing, checked := CheckFamilialInheritance(ped, "stranger", variant.NewStringSet("stranger"), nil, true)
	assert.False(t, passing)
	assert.True(t, checked.Has("stranger"))
}

func TestFamilialVisitedSetPreventsRevisit(t *testing.T) {
	ped := trioPed()
	checked := variant.NewStringSet("mum", "dad")

	// the parents would fail as called-unaffected, but they are pre-visited
	called := variant.NewStringSet("proband", "mum", "dad")
	passing, checked := CheckFamilialInheritance(ped, "proband", called, checked, true)
	assert.True(t, passing)
	require.NotNil(t, checked)
	assert.True(t, checked.Has("proband"))
}
