// Package moi implements the Mendelian mode-of-inheritance tests that decide
// whether a candidate variant's het/hom calls across a family are consistent
// with a given inheritance model, and the runner dispatching those tests per
// simplified MOI label.
//
// The compound-het branches do not verify phase and do not check parental
// genotypes; behaviour parity with the reference pipeline is expected, so
// singleton-style evaluation is deliberate.
package moi

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/populationgenomics/automated-interpretation-pipeline/internal/pedigree"
	"github.com/populationgenomics/automated-interpretation-pipeline/internal/variant"
)

// infoHomKeys are the population homozygote-count annotations checked by every
// population gate. Absent keys count as zero observed homozygotes.
var infoHomKeys = []string{"gnomad_hom", "gnomad_ex_hom", "exac_ac_hom"}

// INFO keys for population frequency gates.
const (
	infoAFKey = "gnomad_af"
	infoACKey = "gnomad_ac"
)

// InheritanceTest evaluates one inheritance model against a principal variant.
// Implementations hold no mutable state after construction, so a single
// instance is safe to share across goroutines.
type InheritanceTest interface {
	// Run returns every reportable (sample, reason) finding for the variant.
	// A ConfigurationError means the test was dispatched against the wrong
	// chromosome class and the batch must abort.
	Run(principal *variant.Variant) ([]*variant.ReportedVariant, error)
}

// ConfigurationError indicates a broken upstream gene-to-MOI mapping: an MOI
// label with no configured test list, or a test dispatched against the wrong
// chromosome. It must abort the batch, never downgrade to a warning.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// base carries the collaborators every inheritance test shares.
type base struct {
	pedigree   *pedigree.Pedigree
	appliedMOI string
	logger     *zap.Logger
}

func newBase(ped *pedigree.Pedigree, appliedMOI string) base {
	return base{
		pedigree:   ped,
		appliedMOI: appliedMOI,
		logger:     zap.NewNop(),
	}
}

// isAffected reports the affected status of a sample.
func (b *base) isAffected(sampleID string) bool {
	return b.pedigree.IsAffected(sampleID)
}

// familyOf returns the family ID for a sample, or "" when the sample is
// absent from the pedigree.
func (b *base) familyOf(sampleID string) string {
	if p := b.pedigree.Get(sampleID); p != nil {
		return p.Family
	}
	return ""
}

// anyHomAbove reports whether any population homozygote count is above the
// given ceiling (strict comparison, used by dominant gates).
func anyHomAbove(v *variant.Variant, ceiling int) bool {
	for _, key := range infoHomKeys {
		if v.InfoInt(key) > ceiling {
			return true
		}
	}
	return false
}

// anyHomAtOrAbove reports whether any population homozygote count meets the
// given ceiling (used by recessive gates, which tolerate higher counts but
// compare inclusively).
func anyHomAtOrAbove(v *variant.Variant, ceiling int) bool {
	for _, key := range infoHomKeys {
		if v.InfoInt(key) >= ceiling {
			return true
		}
	}
	return false
}

// requireChrom fails with a ConfigurationError when a sex-chromosome test is
// dispatched against a variant on the wrong chromosome.
func requireChrom(v *variant.Variant, chrom string, appliedMOI string) error {
	if !strings.EqualFold(v.Coordinates.Chrom, chrom) {
		return &ConfigurationError{
			Message: fmt.Sprintf(
				"%s-chromosome MOI %q given for variant on %s",
				chrom, appliedMOI, v.Coordinates.Chrom,
			),
		}
	}
	return nil
}
