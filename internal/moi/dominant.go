package moi

import (
	"go.uber.org/zap"

	"github.com/populationgenomics/automated-interpretation-pipeline/internal/pedigree"
	"github.com/populationgenomics/automated-interpretation-pipeline/internal/variant"
)

// DominantAutosomal accepts a variant in any affected carrier, het or hom,
// provided the variant is sufficiently rare and the pattern holds across the
// carrier's family.
type DominantAutosomal struct {
	base
	afThreshold  float64
	acThreshold  int
	homThreshold int
}

// NewDominantAutosomal builds the autosomal dominant test.
func NewDominantAutosomal(ped *pedigree.Pedigree, thresholds Thresholds) *DominantAutosomal {
	return &DominantAutosomal{
		base:         newBase(ped, "Autosomal Dominant"),
		afThreshold:  thresholds.DominantAF,
		acThreshold:  thresholds.DominantAC,
		homThreshold: thresholds.DominantHom,
	}
}

// SetLogger sets the logger used for evaluation messages.
func (d *DominantAutosomal) SetLogger(l *zap.Logger) {
	if l != nil {
		d.logger = l
	}
}

// Run applies the dominant model to every affected carrier.
func (d *DominantAutosomal) Run(principal *variant.Variant) ([]*variant.ReportedVariant, error) {
	// stringent population gate for dominant conditions
	if principal.InfoFloat(infoAFKey) > d.afThreshold ||
		anyHomAbove(principal, d.homThreshold) ||
		principal.InfoInt(infoACKey) > d.acThreshold {
		return nil, nil
	}

	var classifications []*variant.ReportedVariant

	// dominant needs no support, so consider het and hom together
	carriers := principal.HetSamples.Union(principal.HomSamples)
	for _, sampleID := range carriers.Sorted() {
		if !d.isAffected(sampleID) {
			continue
		}

		passes, _ := CheckFamilialInheritance(d.pedigree, sampleID, carriers, nil, true)
		if !passes {
			continue
		}

		classifications = append(classifications, &variant.ReportedVariant{
			Sample:      sampleID,
			Family:      d.familyOf(sampleID),
			Gene:        principal.Gene(),
			Var:         principal,
			Reasons:     variant.NewStringSet(d.appliedMOI),
			SupportVars: variant.NewStringSet(),
			Flags:       principal.GetSampleFlags(sampleID),
		})
	}

	return classifications, nil
}
