// Package pedigree models the family structure of a joint call, exposing per
// sample affected status, sex, and parent/child links for inheritance checks.
package pedigree

// Participant is one individual in the pedigree. Mother and Father are nil
// for founders; Children holds every individual naming this one as a parent.
type Participant struct {
	ID       string
	Family   string
	Affected bool
	IsFemale bool
	Mother   *Participant
	Father   *Participant
	Children []*Participant
}

// Pedigree is the read-only family structure for a cohort.
type Pedigree struct {
	Participants map[string]*Participant
}

// New builds an empty pedigree.
func New() *Pedigree {
	return &Pedigree{Participants: make(map[string]*Participant)}
}

// Add inserts a participant.
func (p *Pedigree) Add(part *Participant) {
	p.Participants[part.ID] = part
}

// Get returns a participant by sample ID, or nil if absent.
func (p *Pedigree) Get(sampleID string) *Participant {
	return p.Participants[sampleID]
}

// IsAffected reports the affected status for a sample ID.
// Unknown samples are treated as unaffected.
func (p *Pedigree) IsAffected(sampleID string) bool {
	part := p.Participants[sampleID]
	return part != nil && part.Affected
}

// IsFemale reports the recorded sex for a sample ID.
func (p *Pedigree) IsFemale(sampleID string) bool {
	part := p.Participants[sampleID]
	return part != nil && part.IsFemale
}

// SampleIDs returns all participant IDs, in map order.
func (p *Pedigree) SampleIDs() []string {
	ids := make([]string, 0, len(p.Participants))
	for id := range p.Participants {
		ids = append(ids, id)
	}
	return ids
}
