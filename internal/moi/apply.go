package moi

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/populationgenomics/automated-interpretation-pipeline/internal/pedigree"
	"github.com/populationgenomics/automated-interpretation-pipeline/internal/variant"
)

// SetUpInheritanceFilters builds one MOIRunner per distinct simplified MOI
// label in the gene-to-MOI mapping. A billion variants and six distinct MOIs
// still mean six runner constructions, each happening exactly once.
func SetUpInheritanceFilters(
	ped *pedigree.Pedigree,
	thresholds Thresholds,
	geneMOI map[string]string,
	compHet CompHetIndex,
	logger *zap.Logger,
) (map[string]*MOIRunner, error) {
	runners := make(map[string]*MOIRunner)

	for _, moiLabel := range geneMOI {
		if _, seen := runners[moiLabel]; seen {
			continue
		}
		runner, err := NewMOIRunner(ped, moiLabel, thresholds, compHet)
		if err != nil {
			return nil, fmt.Errorf("set up inheritance filters: %w", err)
		}
		runner.SetLogger(logger)
		runners[moiLabel] = runner
	}

	return runners, nil
}

// ApplyMOIToVariants runs the configured inheritance tests over a gene-grouped
// variant collection, fanning gene batches out to a worker pool and collecting
// findings in deterministic gene order. Only variants carrying a non-support
// category act as principals; support-only variants participate solely as
// compound-het partners.
func ApplyMOIToVariants(
	geneDict map[string][]*variant.Variant,
	runners map[string]*MOIRunner,
	geneMOI map[string]string,
	workers int,
	logger *zap.Logger,
) ([]*variant.ReportedVariant, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	genes := make([]string, 0, len(geneDict))
	for gene := range geneDict {
		genes = append(genes, gene)
	}
	sort.Strings(genes)

	batches := make(chan GeneBatch, len(genes))
	for i, gene := range genes {
		batches <- GeneBatch{Seq: i, Gene: gene, Variants: geneDict[gene]}
	}
	close(batches)

	evaluate := func(batch GeneBatch) ([]*variant.ReportedVariant, error) {
		moiLabel, ok := geneMOI[batch.Gene]
		if !ok {
			// variant appears to be in a gene outside the panel scope
			logger.Error("gene missing from panel data", zap.String("gene", batch.Gene))
			return nil, nil
		}
		runner, ok := runners[moiLabel]
		if !ok {
			return nil, &ConfigurationError{
				Message: fmt.Sprintf("no runner configured for MOI %q (gene %s)", moiLabel, batch.Gene),
			}
		}

		var findings []*variant.ReportedVariant
		for _, v := range batch.Variants {
			if !v.CategoryNonSupport() {
				continue
			}
			found, err := runner.Run(v)
			if err != nil {
				return nil, fmt.Errorf("gene %s: %w", batch.Gene, err)
			}
			findings = append(findings, found...)
		}
		return findings, nil
	}

	// the merge is a single serialized reduction over per-batch results
	var results []*variant.ReportedVariant
	err := OrderedCollect(ParallelEvaluate(batches, evaluate, workers), func(r BatchResult) error {
		if r.Err != nil {
			return r.Err
		}
		results = append(results, r.Findings...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// BuildCohortCompHetIndex merges the per-gene compound-het indexes for a
// gene-grouped variant collection into one cohort-wide lookup.
func BuildCohortCompHetIndex(geneDict map[string][]*variant.Variant) CompHetIndex {
	index := make(CompHetIndex)
	for gene, variants := range geneDict {
		index.Merge(BuildCompHetIndex(gene, variants))
	}
	return index
}
