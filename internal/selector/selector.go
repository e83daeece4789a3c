// Package selector samples corpus words under selection criteria.
package selector

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/tokitype/internal/corpus"
	"github.com/verte-zerg/tokitype/internal/model"
)

// Selector samples words with its own random source.
type Selector struct {
	rnd *rand.Rand
}

// New returns a Selector seeded with the current time.
func New() *Selector {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns a Selector drawing from src.
func NewWithSource(src rand.Source) *Selector {
	return &Selector{rnd: rand.New(src)}
}

// Select keeps the records passing every filter of c, truncates them to
// c.Size in corpus order and shuffles what survived. The result has
// min(c.Size, matching) elements and points into the corpus.
func (s *Selector) Select(c model.Criteria, words *corpus.Corpus) []*model.WordRecord {
	records := words.Records()
	out := make([]*model.WordRecord, 0, min(max(c.Size, 0), len(records)))
	for i := range records {
		if len(out) >= c.Size {
			break
		}
		if Matches(c, &records[i]) {
			out = append(out, &records[i])
		}
	}
	s.rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Matches reports whether r passes every filter of c.
func Matches(c model.Criteria, r *model.WordRecord) bool {
	if !c.AllowsTier(r.Tier) {
		return false
	}
	if !c.Deprecation.Allows(r.Deprecated) {
		return false
	}
	if !c.KU && r.KUData == nil {
		return false
	}
	if !c.PU && r.PUVerbatim == nil {
		return false
	}
	if !c.Commentary && r.Commentary == nil {
		return false
	}
	if !c.Definitions && r.Definitions == nil {
		return false
	}
	return true
}
