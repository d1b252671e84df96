package variant

import "strconv"

// Kind separates small variants from structural variants; call-quality flag
// checks only apply to small variant calls.
type Kind int

const (
	KindSmall Kind = iota
	KindStructural
)

// Flag thresholds for per-sample call quality checks.
const (
	lowDepthThreshold = 10

	abLowerBound    = 0.15
	abHetLowerBound = 0.25
	abHetUpperBound = 0.75
	abHomLowerBound = 0.85
)

// Variant is one variant site, pre-annotated by the labelling stage.
// MOI evaluation reads it, and only writes to it when attaching flags.
type Variant struct {
	Coordinates Coordinates    `json:"coordinates"`
	Info        map[string]any `json:"info"`
	Categories  []Category     `json:"categories"`
	Kind        Kind           `json:"-"`

	HetSamples StringSet `json:"-"`
	HomSamples StringSet `json:"-"`

	// per-sample call quality metrics, keyed by sample ID
	Depths   map[string]int     `json:"-"`
	ABRatios map[string]float64 `json:"-"`
}

// Equal reports coordinate identity with another variant.
func (v *Variant) Equal(other *Variant) bool {
	return v.Coordinates == other.Coordinates
}

// Less orders variants positionally.
func (v *Variant) Less(other *Variant) bool {
	return v.Coordinates.Less(other.Coordinates)
}

// InfoFloat returns a numeric INFO value, defaulting to 0 when the annotation
// is absent or not numeric. Missing population data is treated as "not yet
// seen in population", never as a reason to exclude.
func (v *Variant) InfoFloat(key string) float64 {
	switch val := v.Info[key].(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// InfoInt returns an integer INFO value, defaulting to 0 when absent.
func (v *Variant) InfoInt(key string) int {
	return int(v.InfoFloat(key))
}

// InfoString returns a string INFO value, or "" when absent.
func (v *Variant) InfoString(key string) string {
	s, _ := v.Info[key].(string)
	return s
}

// Gene returns the gene annotation attached to this variant.
func (v *Variant) Gene() string {
	return v.InfoString("gene_id")
}

// HasBooleanCategories reports at least one assigned cohort-wide category.
func (v *Variant) HasBooleanCategories() bool {
	for _, c := range v.Categories {
		if c.Kind == CategoryBoolean {
			return true
		}
	}
	return false
}

// HasSampleCategories reports at least one assigned sample-scoped category.
func (v *Variant) HasSampleCategories() bool {
	for _, c := range v.Categories {
		if c.Kind == CategorySample {
			return true
		}
	}
	return false
}

// HasSupport reports whether the support category is assigned.
func (v *Variant) HasSupport() bool {
	for _, c := range v.Categories {
		if c.Kind == CategorySupport {
			return true
		}
	}
	return false
}

// CategoryNonSupport reports at least one non-support category.
func (v *Variant) CategoryNonSupport() bool {
	return v.HasBooleanCategories() || v.HasSampleCategories()
}

// IsClassified reports at least one assigned category, support included.
func (v *Variant) IsClassified() bool {
	return v.CategoryNonSupport() || v.HasSupport()
}

// SupportOnly reports whether the variant is exclusively supporting evidence.
func (v *Variant) SupportOnly() bool {
	return v.HasSupport() && !v.CategoryNonSupport()
}

// CategoryValues returns the names of all categories applying to a sample.
func (v *Variant) CategoryValues(sample string) []string {
	var names []string
	for _, c := range v.Categories {
		if c.AppliesTo(sample) {
			names = append(names, c.Name)
		}
	}
	return names
}

// sampleCategorised reports any non-support category applying to this sample.
func (v *Variant) sampleCategorised(sample string) bool {
	for _, c := range v.Categories {
		if c.Kind != CategorySupport && c.AppliesTo(sample) {
			return true
		}
	}
	return false
}

// SampleCategoryCheck reports whether the variant is categorised for a sample,
// optionally counting a support-only assignment.
func (v *Variant) SampleCategoryCheck(sample string, allowSupport bool) bool {
	if v.sampleCategorised(sample) {
		return true
	}
	return allowSupport && v.HasSupport()
}

// SampleSupportOnly reports whether the variant is support-only for this
// sample: it carries the support label but no other category names the sample.
func (v *Variant) SampleSupportOnly(sample string) bool {
	return v.HasSupport() && !v.sampleCategorised(sample)
}

// GetSampleFlags returns call-quality warning strings for this sample's call.
// Structural variant calls carry no per-sample quality metrics.
func (v *Variant) GetSampleFlags(sample string) []string {
	if v.Kind == KindStructural {
		return nil
	}
	flags := v.checkABRatio(sample)
	return append(flags, v.checkReadDepth(sample)...)
}

func (v *Variant) checkReadDepth(sample string) []string {
	if v.Depths[sample] < lowDepthThreshold {
		return []string{"Low Read Depth"}
	}
	return nil
}

func (v *Variant) checkABRatio(sample string) []string {
	het := v.HetSamples.Has(sample)
	hom := v.HomSamples.Has(sample)
	ab := v.ABRatios[sample]
	if ab <= abLowerBound ||
		(het && !(abHetLowerBound <= ab && ab <= abHetUpperBound)) ||
		(hom && ab <= abHomLowerBound) {
		return []string{"AB Ratio"}
	}
	return nil
}
