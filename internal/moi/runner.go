package moi

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/populationgenomics/automated-interpretation-pipeline/internal/pedigree"
	"github.com/populationgenomics/automated-interpretation-pipeline/internal/variant"
)

// Simplified MOI labels, as produced by the panel-data reduction.
const (
	MOIMonoallelic      = "Monoallelic"
	MOIMonoAndBiallelic = "Mono_And_Biallelic"
	MOIBiallelic        = "Biallelic"
	MOIUnknown          = "Unknown"
	MOIHemiMonoInFemale = "Hemi_Mono_In_Female"
	MOIHemiBiInFemale   = "Hemi_Bi_In_Female"
	MOIYChromVariant    = "Y_Chrom_Variant"
)

// MOIRunner holds the ordered inheritance tests for one simplified MOI label.
// Construction happens once per distinct label, not once per variant; after
// construction a runner holds no mutable state and is safe to share.
type MOIRunner struct {
	targetMOI string
	filters   []InheritanceTest
}

// NewMOIRunner selects the inheritance tests for a simplified MOI label.
// A label with no configured test list is a ConfigurationError: the upstream
// gene-to-MOI mapping is deterministically wrong, and silently skipping it
// would produce false-negative results.
func NewMOIRunner(
	ped *pedigree.Pedigree,
	targetMOI string,
	thresholds Thresholds,
	compHet CompHetIndex,
) (*MOIRunner, error) {
	var filters []InheritanceTest

	switch targetMOI {
	case MOIMonoallelic:
		filters = []InheritanceTest{
			NewDominantAutosomal(ped, thresholds),
		}
	case MOIMonoAndBiallelic, MOIUnknown:
		filters = []InheritanceTest{
			NewDominantAutosomal(ped, thresholds),
			NewRecessiveAutosomal(ped, thresholds, compHet),
		}
	case MOIBiallelic:
		filters = []InheritanceTest{
			NewRecessiveAutosomal(ped, thresholds, compHet),
		}
	case MOIHemiMonoInFemale:
		filters = []InheritanceTest{
			NewXRecessive(ped, thresholds, compHet),
			NewXDominant(ped, thresholds),
		}
	case MOIHemiBiInFemale:
		filters = []InheritanceTest{
			NewXRecessive(ped, thresholds, compHet),
		}
	case MOIYChromVariant:
		filters = []InheritanceTest{
			NewYHemi(ped, thresholds),
		}
	default:
		return nil, &ConfigurationError{
			Message: fmt.Sprintf("MOI type %q is not addressed in MOI tests", targetMOI),
		}
	}

	return &MOIRunner{targetMOI: targetMOI, filters: filters}, nil
}

// TargetMOI returns the simplified MOI label this runner serves.
func (r *MOIRunner) TargetMOI() string {
	return r.targetMOI
}

// FilterList returns the configured inheritance tests, in evaluation order.
func (r *MOIRunner) FilterList() []InheritanceTest {
	return r.filters
}

type loggerSetter interface {
	SetLogger(*zap.Logger)
}

// SetLogger propagates a logger to every configured test.
func (r *MOIRunner) SetLogger(l *zap.Logger) {
	for _, filter := range r.filters {
		if setter, ok := filter.(loggerSetter); ok {
			setter.SetLogger(l)
		}
	}
}

// Run triggers each relevant inheritance model in order and concatenates the
// findings. Order carries no semantics but keeps output deterministic.
func (r *MOIRunner) Run(principal *variant.Variant) ([]*variant.ReportedVariant, error) {
	var matched []*variant.ReportedVariant
	for _, filter := range r.filters {
		found, err := filter.Run(principal)
		if err != nil {
			return nil, err
		}
		matched = append(matched, found...)
	}
	return matched, nil
}
