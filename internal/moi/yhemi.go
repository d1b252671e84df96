package moi

import (
	"go.uber.org/zap"

	"github.com/populationgenomics/automated-interpretation-pipeline/internal/pedigree"
	"github.com/populationgenomics/automated-interpretation-pipeline/internal/variant"
)

// YHemi flags every carrier of a Y-chromosome variant for manual review,
// regardless of affected status. Homozygous calls on Y and calls in females
// should not occur; both are logged as anomalies but still reported.
type YHemi struct {
	base
	afThreshold float64
	acThreshold int
}

// NewYHemi builds the Y-linked hemizygous test.
func NewYHemi(ped *pedigree.Pedigree, thresholds Thresholds) *YHemi {
	return &YHemi{
		base:        newBase(ped, "Y_Hemi"),
		afThreshold: thresholds.DominantAF,
		acThreshold: thresholds.DominantAC,
	}
}

// SetLogger sets the logger used for anomaly reporting.
func (y *YHemi) SetLogger(l *zap.Logger) {
	if l != nil {
		y.logger = l
	}
}

// Run flags all carriers of the Y variant. A non-Y variant is a dispatch error.
func (y *YHemi) Run(principal *variant.Variant) ([]*variant.ReportedVariant, error) {
	if err := requireChrom(principal, "Y", y.appliedMOI); err != nil {
		return nil, err
	}

	// dominant-style rarity gate, inclusive comparisons
	if principal.InfoFloat(infoAFKey) >= y.afThreshold ||
		principal.InfoInt(infoACKey) >= y.acThreshold {
		return nil, nil
	}

	// a hom call on Y shouldn't be possible
	for _, sampleID := range principal.HomSamples.Sorted() {
		y.logger.Warn("homozygous call on Y",
			zap.String("sample", sampleID),
			zap.String("variant", principal.Coordinates.StringFormat()))
	}

	var classifications []*variant.ReportedVariant

	for _, sampleID := range principal.HetSamples.Union(principal.HomSamples).Sorted() {
		// no confident Y calls are expected in females
		if y.pedigree.IsFemale(sampleID) {
			y.logger.Error("female sample with call on Y",
				zap.String("sample", sampleID),
				zap.String("variant", principal.Coordinates.StringFormat()))
		}
		classifications = append(classifications, &variant.ReportedVariant{
			Sample:      sampleID,
			Family:      y.familyOf(sampleID),
			Gene:        principal.Gene(),
			Var:         principal,
			Reasons:     variant.NewStringSet(y.appliedMOI),
			SupportVars: variant.NewStringSet(),
			Flags:       principal.GetSampleFlags(sampleID),
		})
	}

	return classifications, nil
}
