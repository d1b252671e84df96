package moi

import (
	"go.uber.org/zap"

	"github.com/populationgenomics/automated-interpretation-pipeline/internal/pedigree"
	"github.com/populationgenomics/automated-interpretation-pipeline/internal/variant"
)

// RecessiveAutosomal accepts a variant in an affected sample either as a
// direct homozygote, or as a heterozygote paired with a compound-het partner
// in the same gene.
type RecessiveAutosomal struct {
	base
	homThreshold int
	compHet      CompHetIndex
}

// NewRecessiveAutosomal builds the autosomal recessive test.
func NewRecessiveAutosomal(
	ped *pedigree.Pedigree,
	thresholds Thresholds,
	compHet CompHetIndex,
) *RecessiveAutosomal {
	return &RecessiveAutosomal{
		base:         newBase(ped, "Autosomal Recessive"),
		homThreshold: thresholds.RecessiveHom,
		compHet:      compHet,
	}
}

// SetLogger sets the logger used for evaluation messages.
func (r *RecessiveAutosomal) SetLogger(l *zap.Logger) {
	if l != nil {
		r.logger = l
	}
}

// Run applies the recessive model: homozygous calls directly, het calls via
// the compound-het index.
func (r *RecessiveAutosomal) Run(principal *variant.Variant) ([]*variant.ReportedVariant, error) {
	// reject when too many homozygotes appear in population databases;
	// no stricter AF gate here, that belongs to the labelling stage
	if anyHomAtOrAbove(principal, r.homThreshold) {
		return nil, nil
	}

	var classifications []*variant.ReportedVariant

	// homozygous calls are relevant directly
	for _, sampleID := range principal.HomSamples.Sorted() {
		if !r.isAffected(sampleID) {
			continue
		}

		passes, _ := CheckFamilialInheritance(r.pedigree, sampleID, principal.HomSamples, nil, true)
		if !passes {
			continue
		}

		classifications = append(classifications, &variant.ReportedVariant{
			Sample:      sampleID,
			Family:      r.familyOf(sampleID),
			Gene:        principal.Gene(),
			Var:         principal,
			Reasons:     variant.NewStringSet(r.appliedMOI + " Homozygous"),
			SupportVars: variant.NewStringSet(),
			Flags:       principal.GetSampleFlags(sampleID),
		})
	}

	// het calls need a second hit in the same gene
	for _, sampleID := range principal.HetSamples.Sorted() {
		if !r.isAffected(sampleID) {
			continue
		}

		found, partners := CheckForSecondHit(
			principal.Coordinates.StringFormat(), r.compHet, sampleID, principal.Gene(),
		)
		if !found {
			continue
		}

		classifications = append(classifications, &variant.ReportedVariant{
			Sample:      sampleID,
			Family:      r.familyOf(sampleID),
			Gene:        principal.Gene(),
			Var:         principal,
			Reasons:     variant.NewStringSet(r.appliedMOI + " Compound-Het"),
			Supported:   true,
			SupportVars: variant.NewStringSet(partners...),
			Flags:       principal.GetSampleFlags(sampleID),
		})
	}

	return classifications, nil
}
