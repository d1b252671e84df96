package variant

import "encoding/json"

// CategoryKind distinguishes how a category label applies to samples.
type CategoryKind int

const (
	// CategoryBoolean applies to every sample carrying the variant.
	CategoryBoolean CategoryKind = iota
	// CategorySample applies only to the samples it names.
	CategorySample
	// CategorySupport marks the variant as supporting evidence only; it can
	// partner a compound-het but never drives a finding on its own.
	CategorySupport
)

// SampleWildcard in a sample-scoped category means the label applies to all samples.
const SampleWildcard = "all"

// Category is one classification label assigned by the labelling stage.
type Category struct {
	Name    string
	Kind    CategoryKind
	Samples []string // sample-scoped categories only
}

// AppliesTo reports whether this category applies to the given sample.
func (c Category) AppliesTo(sample string) bool {
	if c.Kind != CategorySample {
		return true
	}
	for _, s := range c.Samples {
		if s == sample || s == SampleWildcard {
			return true
		}
	}
	return false
}

// MarshalJSON encodes a category as its name only; sample scoping is an
// evaluation detail, not report content.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Name)
}
