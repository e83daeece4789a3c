// Package corpus loads and publishes the immutable word corpus.
package corpus

import (
	"errors"

	"golang.org/x/text/unicode/norm"

	"github.com/verte-zerg/tokitype/internal/model"
)

// ErrEmpty is returned when a corpus source holds no records.
var ErrEmpty = errors.New("corpus is empty")

// Corpus is an immutable collection of word records. It is built once and
// shared by reference afterwards; nothing mutates it after New returns.
type Corpus struct {
	records []model.WordRecord
	source  string
}

// New builds a corpus from records, normalising word text to NFC so that typed
// precomposed characters compare equal to the stored words.
func New(source string, records []model.WordRecord) *Corpus {
	out := make([]model.WordRecord, len(records))
	for i, r := range records {
		r.Word = norm.NFC.String(r.Word)
		out[i] = r
	}
	return &Corpus{records: out, source: source}
}

// Records returns the records in load order. Callers must not modify them.
func (c *Corpus) Records() []model.WordRecord {
	if c == nil {
		return nil
	}
	return c.records
}

// Len returns the number of records.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Source describes where the corpus was loaded from.
func (c *Corpus) Source() string {
	if c == nil {
		return ""
	}
	return c.source
}

// Summary counts records per tier and deprecation state.
type Summary struct {
	Total      int
	ByTier     map[model.UsageTier]int
	Deprecated int
	WithDefs   int
}

// Summarize counts the corpus records.
func (c *Corpus) Summarize() Summary {
	s := Summary{ByTier: map[model.UsageTier]int{}}
	for _, r := range c.Records() {
		s.Total++
		s.ByTier[r.Tier]++
		if r.Deprecated {
			s.Deprecated++
		}
		if r.Definitions != nil {
			s.WithDefs++
		}
	}
	return s
}
