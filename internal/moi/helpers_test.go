package moi

import (
	"github.com/populationgenomics/automated-interpretation-pipeline/internal/pedigree"
	"github.com/populationgenomics/automated-interpretation-pipeline/internal/variant"
)

// testThresholds are permissive ceilings shared by most tests.
var testThresholds = Thresholds{
	DominantAF:   0.01,
	DominantAC:   10,
	DominantHom:  5,
	RecessiveHom: 5,
}

// singletonPed builds a pedigree with one unrelated participant.
func singletonPed(id string, affected, female bool) *pedigree.Pedigree {
	ped := pedigree.New()
	ped.Add(&pedigree.Participant{ID: id, Family: "FAM1", Affected: affected, IsFemale: female})
	return ped
}

// trioPed builds an affected male proband with two unaffected parents.
func trioPed() *pedigree.Pedigree {
	ped := pedigree.New()
	proband := &pedigree.Participant{ID: "proband", Family: "FAM1", Affected: true}
	mum := &pedigree.Participant{ID: "mum", Family: "FAM1", IsFemale: true}
	dad := &pedigree.Participant{ID: "dad", Family: "FAM1"}
	proband.Mother = mum
	proband.Father = dad
	mum.Children = []*pedigree.Participant{proband}
	dad.Children = []*pedigree.Participant{proband}
	ped.Add(proband)
	ped.Add(mum)
	ped.Add(dad)
	return ped
}

// testVariant builds a rare classified variant with no calls attached.
func testVariant(chrom string, pos int64) *variant.Variant {
	return &variant.Variant{
		Coordinates: variant.Coordinates{Chrom: chrom, Pos: pos, Ref: "A", Alt: "G"},
		Info: map[string]any{
			"gene_id":    "ENSG00000012345",
			"gnomad_af":  0.0001,
			"gnomad_ac":  0,
			"gnomad_hom": 0,
		},
		Categories: []variant.Category{{Name: "1", Kind: variant.CategoryBoolean}},
		HetSamples: variant.NewStringSet(),
		HomSamples: variant.NewStringSet(),
		Depths:     make(map[string]int),
		ABRatios:   make(map[string]float64),
	}
}

// withHet attaches a clean heterozygous call for a sample.
func withHet(v *variant.Variant, sample string) *variant.Variant {
	v.HetSamples.Add(sample)
	v.Depths[sample] = 50
	v.ABRatios[sample] = 0.5
	return v
}

// withHom attaches a clean homozygous call for a sample.
func withHom(v *variant.Variant, sample string) *variant.Variant {
	v.HomSamples.Add(sample)
	v.Depths[sample] = 50
	v.ABRatios[sample] = 1.0
	return v
}

// indexWithPartner builds a comp-het index holding one partnership.
func indexWithPartner(sample, gene, key string, partners ...string) CompHetIndex {
	return CompHetIndex{
		sample: {gene: {key: partners}},
	}
}
