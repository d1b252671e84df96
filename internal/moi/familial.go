package moi

import (
	"github.com/populationgenomics/automated-interpretation-pipeline/internal/pedigree"
	"github.com/populationgenomics/automated-interpretation-pipeline/internal/variant"
)

// CheckFamilialInheritance verifies that a hypothesised inheritance pattern
// holds across the whole connected family, starting from one sample. The check
// is sex- and zygosity-agnostic: the caller prepares calledVariants for the
// model under test (het plus hom for dominant, hom only for recessive).
//
// At each visited sample:
//   - affected but not called fails the family
//   - called but unaffected fails the family, under complete penetrance
//
// checkedSamples guards against re-visiting a sample reachable by more than
// one path (half-siblings make the family graph a DAG, not a tree). Callers
// may pass nil; the populated set is returned for reuse.
func CheckFamilialInheritance(
	ped *pedigree.Pedigree,
	sampleID string,
	calledVariants variant.StringSet,
	checkedSamples variant.StringSet,
	completePenetrance bool,
) (bool, variant.StringSet) {
	if checkedSamples == nil {
		checkedSamples = variant.NewStringSet()
	}
	checkedSamples.Add(sampleID)

	participant := ped.Get(sampleID)
	if participant == nil {
		return false, checkedSamples
	}

	called := calledVariants.Has(sampleID)
	if (participant.Affected && !called) ||
		(called && completePenetrance && !participant.Affected) {
		return false, checkedSamples
	}

	// walk the immediate family: children first, then parents
	relatives := make([]*pedigree.Participant, 0, len(participant.Children)+2)
	relatives = append(relatives, participant.Children...)
	relatives = append(relatives, participant.Mother, participant.Father)

	for _, relative := range relatives {
		if relative == nil || checkedSamples.Has(relative.ID) {
			continue
		}

		var passing bool
		passing, checkedSamples = CheckFamilialInheritance(
			ped, relative.ID, calledVariants, checkedSamples, completePenetrance,
		)

		// one broken check fails the variant for the whole family
		if !passing {
			return false, checkedSamples
		}
	}

	return true, checkedSamples
}
