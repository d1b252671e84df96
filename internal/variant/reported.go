package variant

// ReportedVariant is the inheritance engine's sole output unit: one variant,
// for one sample, with the reasons it was selected. Records are created by
// the MOI tests, merged by result consolidation, and never mutated by the
// pedigree or variant layers.
type ReportedVariant struct {
	Sample      string            `json:"sample"`
	Family      string            `json:"family,omitempty"`
	Gene        string            `json:"gene"`
	Var         *Variant          `json:"var_data"`
	Reasons     StringSet         `json:"reasons"`
	Supported   bool              `json:"supported"`
	SupportVars StringSet         `json:"support_vars"`
	Flags       []string          `json:"flags,omitempty"`
	Genotypes   map[string]string `json:"genotypes,omitempty"`
	Panels      []int             `json:"panels,omitempty"`
	Phenotypes  []string          `json:"phenotypes,omitempty"`
	FirstSeen   string            `json:"first_seen,omitempty"`
}

// IsIndependent reports whether the variant acts without a partner.
func (r *ReportedVariant) IsIndependent() bool {
	return len(r.SupportVars) == 0
}

// Equal reports whether two records describe the same sample and variant.
func (r *ReportedVariant) Equal(other *ReportedVariant) bool {
	return r.Sample == other.Sample && r.Var.Coordinates == other.Var.Coordinates
}

// Less orders records by variant coordinates.
func (r *ReportedVariant) Less(other *ReportedVariant) bool {
	return r.Var.Coordinates.Less(other.Var.Coordinates)
}
