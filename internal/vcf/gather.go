package vcf

import (
	"fmt"
	"strings"

	"github.com/populationgenomics/automated-interpretation-pipeline/internal/variant"
)

// GatherGeneDict reads every variant from the parser and groups the
// classified ones by gene. A variant annotated against multiple genes is
// listed under each, so compound-het pairing sees it in every gene scope;
// genes absent from the green-gene set are dropped.
func GatherGeneDict(p *Parser, greenGenes map[string]bool) (map[string][]*variant.Variant, error) {
	geneDict := make(map[string][]*variant.Variant)

	for {
		v, err := p.Next()
		if err != nil {
			return nil, fmt.Errorf("gather variants: %w", err)
		}
		if v == nil {
			break
		}

		if !v.IsClassified() {
			continue
		}

		for _, gene := range strings.Split(v.Gene(), ",") {
			if gene == "" {
				continue
			}
			if greenGenes != nil && !greenGenes[gene] {
				continue
			}
			geneDict[gene] = append(geneDict[gene], v)
		}
	}

	return geneDict, nil
}
