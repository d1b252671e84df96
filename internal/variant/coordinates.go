// Package variant holds the abstracted variant representations shared by the
// categorisation and inheritance-checking stages.
package variant

import "fmt"

// chromOrder is the canonical chromosome ordering used for positional sorting.
// Contigs not in this list (HLA, decoys, unplaced scaffolds) sort last.
var chromOrder = []string{
	"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12",
	"13", "14", "15", "16", "17", "18", "19", "20", "21", "22",
	"X", "Y", "MT", "M",
}

var chromRank = func() map[string]int {
	m := make(map[string]int, len(chromOrder))
	for i, c := range chromOrder {
		m[c] = i
	}
	return m
}()

// Coordinates is the genomic identity of a variant.
type Coordinates struct {
	Chrom string `json:"chrom"`
	Pos   int64  `json:"pos"`
	Ref   string `json:"ref"`
	Alt   string `json:"alt"`
}

// StringFormat returns the canonical chrom-pos-ref-alt representation.
func (c Coordinates) StringFormat() string {
	return fmt.Sprintf("%s-%d-%s-%s", c.Chrom, c.Pos, c.Ref, c.Alt)
}

// Less enables positional sorting. Same chromosome compares by position,
// different chromosomes by canonical order, with off-list contigs last.
func (c Coordinates) Less(other Coordinates) bool {
	if c.Chrom == other.Chrom {
		return c.Pos < other.Pos
	}
	selfRank, selfCanonical := chromRank[c.Chrom]
	otherRank, otherCanonical := chromRank[other.Chrom]
	if selfCanonical && otherCanonical {
		return selfRank < otherRank
	}
	// a canonical chromosome sorts before any off-list contig
	return selfCanonical
}
