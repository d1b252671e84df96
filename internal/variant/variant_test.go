package variant

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSetJSONSorted(t *testing.T) {
	s := NewStringSet("zulu", "alpha", "mike")
	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["alpha","mike","zulu"]`, string(out))
}

func TestStringSetUnionIdempotent(t *testing.T) {
	s := NewStringSet("a", "b")
	s.Update(NewStringSet("b", "c"))
	s.Update(NewStringSet("b", "c"))
	assert.Equal(t, []string{"a", "b", "c"}, s.Sorted())
}

func TestCategoryAppliesTo(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		sample   string
		applies  bool
	}{
		{"boolean applies to anyone", Category{Name: "1", Kind: CategoryBoolean}, "sam", true},
		{"support applies to anyone", Category{Name: "support", Kind: CategorySupport}, "sam", true},
		{"sample category hits listed sample", Category{Name: "4", Kind: CategorySample, Samples: []string{"sam"}}, "sam", true},
		{"sample category misses others", Category{Name: "4", Kind: CategorySample, Samples: []string{"sam"}}, "other", false},
		{"sample category wildcard", Category{Name: "4", Kind: CategorySample, Samples: []string{"all"}}, "anyone", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.applies, tt.category.AppliesTo(tt.sample))
		})
	}
}

func TestVariantCategoryPredicates(t *testing.T) {
	boolCat := Category{Name: "1", Kind: CategoryBoolean}
	sampleCat := Category{Name: "4", Kind: CategorySample, Samples: []string{"sam"}}
	supportCat := Category{Name: "support", Kind: CategorySupport}

	unclassified := &Variant{}
	assert.False(t, unclassified.IsClassified())
	assert.False(t, unclassified.CategoryNonSupport())

	boolOnly := &Variant{Categories: []Category{boolCat}}
	assert.True(t, boolOnly.HasBooleanCategories())
	assert.True(t, boolOnly.CategoryNonSupport())
	assert.False(t, boolOnly.HasSupport())
	assert.False(t, boolOnly.SupportOnly())

	supportOnly := &Variant{Categories: []Category{supportCat}}
	assert.True(t, supportOnly.IsClassified())
	assert.True(t, supportOnly.SupportOnly())
	assert.False(t, supportOnly.CategoryNonSupport())

	mixed := &Variant{Categories: []Category{sampleCat, supportCat}}
	assert.True(t, mixed.SampleCategoryCheck("sam", false))
	assert.False(t, mixed.SampleCategoryCheck("other", false))
	assert.True(t, mixed.SampleCategoryCheck("other", true))
	assert.True(t, mixed.SampleSupportOnly("other"))
	assert.False(t, mixed.SampleSupportOnly("sam"))
}

func TestCategoryValues(t *testing.T) {
	v := &Variant{Categories: []Category{
		{Name: "1", Kind: CategoryBoolean},
		{Name: "4", Kind: CategorySample, Samples: []string{"sam"}},
		{Name: "support", Kind: CategorySupport},
	}}

	assert.ElementsMatch(t, []string{"1", "4", "support"}, v.CategoryValues("sam"))
	assert.ElementsMatch(t, []string{"1", "support"}, v.CategoryValues("other"))
}

func TestInfoNumericDefaults(t *testing.T) {
	v := &Variant{Info: map[string]any{
		"gnomad_af":  0.002,
		"gnomad_ac":  7,
		"gnomad_hom": "3",
	}}

	assert.InDelta(t, 0.002, v.InfoFloat("gnomad_af"), 1e-9)
	assert.Equal(t, 7, v.InfoInt("gnomad_ac"))
	assert.Equal(t, 3, v.InfoInt("gnomad_hom"))

	// absent annotations mean "not yet seen in population"
	assert.Zero(t, v.InfoFloat("exac_ac_hom"))
	assert.Zero(t, v.InfoInt("missing_entirely"))
}

func TestGetSampleFlags(t *testing.T) {
	v := &Variant{
		HetSamples: NewStringSet("low_depth", "bad_ab", "clean"),
		HomSamples: NewStringSet("hom_low_ab"),
		Depths:     map[string]int{"low_depth": 5, "bad_ab": 50, "clean": 50, "hom_low_ab": 50},
		ABRatios:   map[string]float64{"low_depth": 0.5, "bad_ab": 0.1, "clean": 0.5, "hom_low_ab": 0.7},
	}

	assert.Equal(t, []string{"Low Read Depth"}, v.GetSampleFlags("low_depth"))
	assert.Equal(t, []string{"AB Ratio"}, v.GetSampleFlags("bad_ab"))
	assert.Empty(t, v.GetSampleFlags("clean"))
	assert.Equal(t, []string{"AB Ratio"}, v.GetSampleFlags("hom_low_ab"))
}

func TestStructuralVariantFlags(t *testing.T) {
	v := &Variant{
		Kind:       KindStructural,
		HetSamples: NewStringSet("sam"),
	}
	assert.Nil(t, v.GetSampleFlags("sam"))
}

func TestReportedVariantIdentity(t *testing.T) {
	a := &ReportedVariant{
		Sample: "sam",
		Var:    &Variant{Coordinates: Coordinates{Chrom: "1", Pos: 100, Ref: "A", Alt: "G"}},
	}
	b := &ReportedVariant{
		Sample: "sam",
		Var:    &Variant{Coordinates: Coordinates{Chrom: "1", Pos: 100, Ref: "A", Alt: "G"}},
	}
	c := &ReportedVariant{
		Sample: "sam",
		Var:    &Variant{Coordinates: Coordinates{Chrom: "2", Pos: 50, Ref: "A", Alt: "G"}},
	}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.Less(c))
	assert.True(t, a.IsIndependent())

	a.SupportVars = NewStringSet("1-200-G-T")
	assert.False(t, a.IsIndependent())
}
