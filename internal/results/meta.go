package results

import (
	"time"

	"github.com/populationgenomics/automated-interpretation-pipeline/internal/pedigree"
)

// FamilyBreakdown summarises the cohort structure for the report header.
type FamilyBreakdown struct {
	Affected int `json:"affected"`
	Male     int `json:"male"`
	Female   int `json:"female"`
	Trios    int `json:"trios"`
}

// Meta is the run metadata block attached to a report.
type Meta struct {
	RunDatetime     string          `json:"run_datetime"`
	InputFile       string          `json:"input_file,omitempty"`
	Cohort          string          `json:"cohort,omitempty"`
	FamilyBreakdown FamilyBreakdown `json:"family_breakdown"`
	Panels          []any           `json:"panels,omitempty"`
}

// NewMeta assembles run metadata from the pedigree and the samples present
// in the joint call.
func NewMeta(ped *pedigree.Pedigree, samples []string) Meta {
	return Meta{
		RunDatetime:     time.Now().Format("2006-01-02 15:04"),
		FamilyBreakdown: summariseFamilies(ped, samples),
	}
}

// summariseFamilies counts affected individuals, sexes, and complete trios
// among the samples present in the joint call.
func summariseFamilies(ped *pedigree.Pedigree, samples []string) FamilyBreakdown {
	var breakdown FamilyBreakdown

	present := make(map[string]bool, len(samples))
	for _, s := range samples {
		present[s] = true
	}

	for _, sample := range samples {
		participant := ped.Get(sample)
		if participant == nil {
			continue
		}
		if participant.Affected {
			breakdown.Affected++
		}
		if participant.IsFemale {
			breakdown.Female++
		} else {
			breakdown.Male++
		}
		if participant.Mother != nil && present[participant.Mother.ID] &&
			participant.Father != nil && present[participant.Father.ID] {
			breakdown.Trios++
		}
	}

	return breakdown
}
