package moi

import (
	"go.uber.org/zap"

	"github.com/populationgenomics/automated-interpretation-pipeline/internal/pedigree"
	"github.com/populationgenomics/automated-interpretation-pipeline/internal/variant"
)

// XDominant accepts het and hom calls on the X chromosome in carriers of
// either sex, labelling each finding with the carrier's sex. Male X calls
// arrive as either het or hom depending on the caller, so both are taken.
type XDominant struct {
	base
	afThreshold  float64
	acThreshold  int
	homThreshold int
}

// NewXDominant builds the X-linked dominant test.
func NewXDominant(ped *pedigree.Pedigree, thresholds Thresholds) *XDominant {
	return &XDominant{
		base:         newBase(ped, "X_Dominant"),
		afThreshold:  thresholds.DominantAF,
		acThreshold:  thresholds.DominantAC,
		homThreshold: thresholds.DominantHom,
	}
}

// SetLogger sets the logger used for evaluation messages.
func (x *XDominant) SetLogger(l *zap.Logger) {
	if l != nil {
		x.logger = l
	}
}

// Run applies the X-dominant model. A non-X variant is a dispatch error.
func (x *XDominant) Run(principal *variant.Variant) ([]*variant.ReportedVariant, error) {
	if err := requireChrom(principal, "X", x.appliedMOI); err != nil {
		return nil, err
	}

	// same stringent population gate as the autosomal dominant test
	if principal.InfoFloat(infoAFKey) > x.afThreshold ||
		anyHomAbove(principal, x.homThreshold) ||
		principal.InfoInt(infoACKey) > x.acThreshold {
		return nil, nil
	}

	var classifications []*variant.ReportedVariant

	carriers := principal.HetSamples.Union(principal.HomSamples)
	for _, sampleID := range carriers.Sorted() {
		// the familial check is what restricts findings to affected
		// carriers here: an unaffected carrier fails its own family
		// under complete penetrance
		passes, _ := CheckFamilialInheritance(x.pedigree, sampleID, carriers, nil, true)
		if !passes {
			continue
		}

		sex := "Male"
		if x.pedigree.IsFemale(sampleID) {
			sex = "Female"
		}
		classifications = append(classifications, &variant.ReportedVariant{
			Sample:      sampleID,
			Family:      x.familyOf(sampleID),
			Gene:        principal.Gene(),
			Var:         principal,
			Reasons:     variant.NewStringSet(x.appliedMOI + " " + sex),
			SupportVars: variant.NewStringSet(),
			Flags:       principal.GetSampleFlags(sampleID),
		})
	}

	return classifications, nil
}

// XRecessive accepts male calls (het or hom) and female homozygotes directly,
// and female het calls through a compound-het partner.
type XRecessive struct {
	base
	homDomThreshold int
	homRecThreshold int
	compHet         CompHetIndex
}

// NewXRecessive builds the X-linked recessive test.
func NewXRecessive(
	ped *pedigree.Pedigree,
	thresholds Thresholds,
	compHet CompHetIndex,
) *XRecessive {
	return &XRecessive{
		base:            newBase(ped, "X_Recessive"),
		homDomThreshold: thresholds.DominantHom,
		homRecThreshold: thresholds.RecessiveHom,
		compHet:         compHet,
	}
}

// SetLogger sets the logger used for evaluation messages.
func (x *XRecessive) SetLogger(l *zap.Logger) {
	if l != nil {
		x.logger = l
	}
}

// Run applies the X-recessive model. A non-X variant is a dispatch error.
func (x *XRecessive) Run(principal *variant.Variant) ([]*variant.ReportedVariant, error) {
	if err := requireChrom(principal, "X", x.appliedMOI); err != nil {
		return nil, err
	}

	// the stricter dominant ceiling gates the whole test
	if anyHomAtOrAbove(principal, x.homDomThreshold) {
		return nil, nil
	}

	var classifications []*variant.ReportedVariant

	// males are taken het or hom, we don't trust the variant callers on X
	males := variant.NewStringSet()
	hetFemales := variant.NewStringSet()
	homFemales := variant.NewStringSet()
	for sampleID := range principal.HetSamples.Union(principal.HomSamples) {
		if !x.pedigree.IsFemale(sampleID) {
			males.Add(sampleID)
		}
	}
	for sampleID := range principal.HetSamples {
		if x.pedigree.IsFemale(sampleID) {
			hetFemales.Add(sampleID)
		}
	}
	for sampleID := range principal.HomSamples {
		if x.pedigree.IsFemale(sampleID) {
			homFemales.Add(sampleID)
		}
	}

	// het females need a second hit
	for _, sampleID := range hetFemales.Sorted() {
		found, partners := CheckForSecondHit(
			principal.Coordinates.StringFormat(), x.compHet, sampleID, principal.Gene(),
		)
		if !found {
			continue
		}

		classifications = append(classifications, &variant.ReportedVariant{
			Sample:      sampleID,
			Family:      x.familyOf(sampleID),
			Gene:        principal.Gene(),
			Var:         principal,
			Reasons:     variant.NewStringSet(x.appliedMOI + " Compound-Het Female"),
			Supported:   true,
			SupportVars: variant.NewStringSet(partners...),
			Flags:       principal.GetSampleFlags(sampleID),
		})
	}

	// the looser recessive ceiling gates the hemizygous/homozygous branch
	if anyHomAtOrAbove(principal, x.homRecThreshold) {
		return classifications, nil
	}

	directCalls := males.Union(homFemales)
	for _, sampleID := range directCalls.Sorted() {
		passes, _ := CheckFamilialInheritance(x.pedigree, sampleID, directCalls, nil, true)
		if !passes {
			continue
		}

		sex := "Male"
		if x.pedigree.IsFemale(sampleID) {
			sex = "Female"
		}
		classifications = append(classifications, &variant.ReportedVariant{
			Sample:      sampleID,
			Family:      x.familyOf(sampleID),
			Gene:        principal.Gene(),
			Var:         principal,
			Reasons:     variant.NewStringSet(x.appliedMOI + " " + sex),
			SupportVars: variant.NewStringSet(),
			Flags:       principal.GetSampleFlags(sampleID),
		})
	}

	return classifications, nil
}
