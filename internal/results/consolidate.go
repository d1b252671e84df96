// Package results shapes the inheritance engine's raw findings into the
// final per-sample report structure.
package results

import (
	"fmt"
	"strings"

	"github.com/populationgenomics/automated-interpretation-pipeline/internal/variant"
)

// unsupported is the key segment for variants acting without a partner.
const unsupported = "Unsupported"

// UniqueID forms the deduplication key for one finding: coordinates, gene,
// and sorted compound-het partner keys (or "Unsupported").
func UniqueID(r *variant.ReportedVariant) string {
	supportID := unsupported
	if len(r.SupportVars) > 0 {
		supportID = strings.Join(r.SupportVars.Sorted(), ",")
	}
	return fmt.Sprintf("%s__%s__%s", r.Var.Coordinates.StringFormat(), r.Gene, supportID)
}

// Clean merges repeated findings into unique records per sample. One variant
// can be classified several ways (e.g. dominant and recessive in a
// Mono_And_Biallelic gene); repeat findings of the same (variant, gene,
// support-set) triple union their reasons onto the first-seen record, never
// overwriting. Every expected sample appears in the output, with an empty
// mapping when it produced no findings, so negative results are explicit.
func Clean(
	findings []*variant.ReportedVariant,
	expectedSamples []string,
) map[string]map[string]*variant.ReportedVariant {
	clean := make(map[string]map[string]*variant.ReportedVariant)

	for _, finding := range findings {
		perSample, ok := clean[finding.Sample]
		if !ok {
			perSample = make(map[string]*variant.ReportedVariant)
			clean[finding.Sample] = perSample
		}

		uid := UniqueID(finding)
		if existing, seen := perSample[uid]; seen {
			existing.Reasons.Update(finding.Reasons)
			continue
		}
		perSample[uid] = finding
	}

	// the pedigree can hold more samples than the joint call after QC
	// sub-setting; report them all, with explicit negative findings
	for _, sample := range expectedSamples {
		if _, ok := clean[sample]; !ok {
			clean[sample] = make(map[string]*variant.ReportedVariant)
		}
	}

	return clean
}
