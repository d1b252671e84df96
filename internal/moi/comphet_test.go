package moi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/populationgenomics/automated-interpretation-pipeline/internal/variant"
)

func TestCheckForSecondHit(t *testing.T) {
	index := CompHetIndex{
		"sample": {
			"gene": {"1-1-A-G": []string{"partner-key"}},
		},
	}

	tests := []struct {
		name     string
		first    string
		sample   string
		gene     string
		found    bool
		partners []string
	}{
		{"hit", "1-1-A-G", "sample", "gene", true, []string{"partner-key"}},
		{"unknown sample", "1-1-A-G", "sample2", "gene", false, nil},
		{"unknown gene", "1-1-A-G", "sample", "gene2", false, nil},
		{"unknown variant", "1-2-A-G", "sample", "gene", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, partners := CheckForSecondHit(tt.first, index, tt.sample, tt.gene)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.partners, partners)
		})
	}
}

func TestBuildCompHetIndexPairsHets(t *testing.T) {
	first := withHet(testVariant("1", 100), "sam")
	second := withHet(testVariant("1", 200), "sam")

	index := BuildCompHetIndex("GENE1", []*variant.Variant{first, second})

	found, partners := CheckForSecondHit("1-100-A-G", index, "sam", "GENE1")
	require.True(t, found)
	assert.Equal(t, []string{"1-200-A-G"}, partners)

	// partnership is mutual
	found, partners = CheckForSecondHit("1-200-A-G", index, "sam", "GENE1")
	require.True(t, found)
	assert.Equal(t, []string{"1-100-A-G"}, partners)
}

func TestBuildCompHetIndexIgnoresHoms(t *testing.T) {
	het := withHet(testVariant("1", 100), "sam")
	hom := withHom(testVariant("1", 200), "sam")

	index := BuildCompHetIndex("GENE1", []*variant.Variant{het, hom})
	assert.Empty(t, index)
}

func TestBuildCompHetIndexIgnoresUncategorised(t *testing.T) {
	first := withHet(testVariant("1", 100), "sam")
	second := withHet(testVariant("1", 200), "sam")
	second.Categories = nil

	index := BuildCompHetIndex("GENE1", []*variant.Variant{first, second})
	assert.Empty(t, index)
}

func TestBuildCompHetIndexSkipsSupportOnlyPairs(t *testing.T) {
	support := variant.Category{Name: "support", Kind: variant.CategorySupport}

	first := withHet(testVariant("1", 100), "sam")
	first.Categories = []variant.Category{support}
	second := withHet(testVariant("1", 200), "sam")
	second.Categories = []variant.Category{support}

	index := BuildCompHetIndex("GENE1", []*variant.Variant{first, second})
	assert.Empty(t, index)

	// support paired with a full category survives
	second.Categories = []variant.Category{{Name: "1", Kind: variant.CategoryBoolean}}
	index = BuildCompHetIndex("GENE1", []*variant.Variant{first, second})
	found, _ := CheckForSecondHit("1-100-A-G", index, "sam", "GENE1")
	assert.True(t, found)
}

func TestBuildCompHetIndexSeparatesSamples(t *testing.T) {
	first := withHet(testVariant("1", 100), "sam1")
	second := withHet(testVariant("1", 200), "sam2")

	index := BuildCompHetIndex("GENE1", []*variant.Variant{first, second})
	assert.Empty(t, index)
}

func TestCompHetIndexMerge(t *testing.T) {
	index := indexWithPartner("sam", "GENE1", "1-100-A-G", "1-200-A-G")
	other := indexWithPartner("sam", "GENE2", "2-100-A-G", "2-200-A-G")

	index.Merge(other)

	found, _ := CheckForSecondHit("1-100-A-G", index, "sam", "GENE1")
	assert.True(t, found)
	found, _ = CheckForSecondHit("2-100-A-G", index, "sam", "GENE2")
	assert.True(t, found)
}
