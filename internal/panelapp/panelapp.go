// Package panelapp models curated gene-panel data: per-gene mode-of-inheritance
// descriptions, panel membership, and new-gene status. Panel retrieval itself
// is upstream; this package consumes its JSON output.
package panelapp

import (
	"encoding/json"
	"fmt"
	"os"
)

// GeneData is the panel-derived metadata for one green gene.
type GeneData struct {
	Symbol string `json:"symbol"`
	Chrom  string `json:"chrom,omitempty"`
	MOI    string `json:"moi"`
	New    bool   `json:"new,omitempty"`
	Panels []int  `json:"panels,omitempty"`
}

// PanelMeta identifies one panel contributing to the analysis.
type PanelMeta struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// PanelApp is the gathered panel data for a run.
type PanelApp struct {
	Metadata []PanelMeta         `json:"metadata,omitempty"`
	Genes    map[string]GeneData `json:"genes"`
}

// Load reads gathered panel data from a JSON file.
func Load(path string) (*PanelApp, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read panelapp data: %w", err)
	}

	var panel PanelApp
	if err := json.Unmarshal(data, &panel); err != nil {
		return nil, fmt.Errorf("parse panelapp data: %w", err)
	}
	if panel.Genes == nil {
		panel.Genes = make(map[string]GeneData)
	}
	return &panel, nil
}

// SimpleMOIMap reduces every gene's raw MOI description to its simplified
// label, keyed by gene ID.
func (p *PanelApp) SimpleMOIMap() map[string]string {
	mois := make(map[string]string, len(p.Genes))
	for geneID, gene := range p.Genes {
		mois[geneID] = SimplifyMOI(gene.MOI, gene.Chrom)
	}
	return mois
}
