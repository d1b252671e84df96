package moi

import (
	"github.com/populationgenomics/automated-interpretation-pipeline/internal/variant"
)

// CompHetIndex maps sample ID -> gene ID -> variant key -> partner variant
// keys. Absence at any level means "no partner". The index is built once per
// gene scope and is read-only during MOI evaluation.
type CompHetIndex map[string]map[string]map[string][]string

// CheckForSecondHit looks up compound-het partners for a variant in a gene.
//
// This is a pure lookup: it does not verify the phase of the pair, and it
// does not check parental genotypes.
func CheckForSecondHit(
	firstVariant string,
	compHets CompHetIndex,
	sample string,
	gene string,
) (bool, []string) {
	sampleIndex, ok := compHets[sample]
	if !ok {
		return false, nil
	}
	geneIndex, ok := sampleIndex[gene]
	if !ok {
		return false, nil
	}
	partners, ok := geneIndex[firstVariant]
	if !ok {
		return false, nil
	}
	return true, partners
}

// BuildCompHetIndex pairs up heterozygous calls within one gene's variants.
// For each sample, every pair of categorised het calls becomes a mutual
// partnership, except pairs where both halves are support-only: supporting
// evidence can never support other supporting evidence.
func BuildCompHetIndex(gene string, variants []*variant.Variant) CompHetIndex {
	index := make(CompHetIndex)

	// per sample, the het calls which carry any category for that sample
	hets := make(map[string][]*variant.Variant)
	for _, v := range variants {
		for sample := range v.HetSamples {
			if v.SampleCategoryCheck(sample, true) {
				hets[sample] = append(hets[sample], v)
			}
		}
	}

	for sample, calls := range hets {
		for i := 0; i < len(calls); i++ {
			for j := i + 1; j < len(calls); j++ {
				first, second := calls[i], calls[j]
				if first.SampleSupportOnly(sample) && second.SampleSupportOnly(sample) {
					continue
				}
				addPartner(index, sample, gene, first.Coordinates.StringFormat(), second.Coordinates.StringFormat())
				addPartner(index, sample, gene, second.Coordinates.StringFormat(), first.Coordinates.StringFormat())
			}
		}
	}

	return index
}

// Merge folds another index into this one. Gene scopes are disjoint between
// per-gene indexes, so partner lists never collide; if they do, lists append.
func (index CompHetIndex) Merge(other CompHetIndex) {
	for sample, genes := range other {
		for gene, partners := range genes {
			for key, list := range partners {
				addPartnerList(index, sample, gene, key, list)
			}
		}
	}
}

func addPartnerList(index CompHetIndex, sample, gene, key string, partners []string) {
	for _, partner := range partners {
		addPartner(index, sample, gene, key, partner)
	}
}

func addPartner(index CompHetIndex, sample, gene, key, partner string) {
	sampleIndex, ok := index[sample]
	if !ok {
		sampleIndex = make(map[string]map[string][]string)
		index[sample] = sampleIndex
	}
	geneIndex, ok := sampleIndex[gene]
	if !ok {
		geneIndex = make(map[string][]string)
		sampleIndex[gene] = geneIndex
	}
	geneIndex[key] = append(geneIndex[key], partner)
}
