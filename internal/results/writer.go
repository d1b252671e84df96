package results

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/populationgenomics/automated-interpretation-pipeline/internal/variant"
)

// Report is the serialisable shape of one run's output: consolidated findings
// per sample, plus run metadata. Sets encode as sorted lists through the
// StringSet JSON codec.
type Report struct {
	Meta    Meta                                           `json:"metadata"`
	Results map[string]map[string]*variant.ReportedVariant `json:"results"`
}

// WriteJSON serialises the report with stable, human-diffable formatting.
func WriteJSON(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}
