// Package dna assigns the human-legible composite identifier carried by
// every article: {region}-{category}-{year}-{sequence}.
package dna

import (
	"fmt"

	"github.com/satyaprakashdhfm/news-categorize/internal/model"
)

// SequenceStore reports the highest sequence number already persisted for a
// (region, category, year) partition, zero when the partition is empty.
type SequenceStore interface {
	MaxSequence(region model.Region, category model.Category, year int) (int, error)
}

type Assigner struct {
	store SequenceStore
}

func NewAssigner(store SequenceStore) *Assigner {
	return &Assigner{store: store}
}

// Next returns the next free sequence number and the composed DNA code.
// The read-then-write window is safe only because runs are serialized; the
// unique index on dna_code catches anything that slips through.
func (a *Assigner) Next(region model.Region, category model.Category, year int) (int, string, error) {
	max, err := a.store.MaxSequence(region, category, year)
	if err != nil {
		return 0, "", fmt.Errorf("max sequence: %w", err)
	}

	seq := max + 1
	return seq, Compose(region, category, year, seq), nil
}

func Compose(region model.Region, category model.Category, year, seq int) string {
	return fmt.Sprintf("%s-%s-%d-%04d", region, category, year, seq)
}
