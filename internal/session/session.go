// Package session tracks the words of one typing session and their timing.
package session

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/tokitype/internal/align"
	"github.com/verte-zerg/tokitype/internal/model"
)

// Clock returns the current time.
type Clock func() time.Time

// Options tune session behaviour.
type Options struct {
	// FinishOnLastWord completes the session as soon as the last word's
	// buffer matches its target, without a trailing separator.
	FinishOnLastWord bool
}

// Session is an ordered run of words with a cursor on the word being typed.
// The cursor stays within [0, len(words)]; reaching len(words) completes it.
type Session struct {
	ID        string
	StartedAt time.Time

	words    []Word
	cursor   int
	finished bool
	opts     Options
	now      Clock
}

// New builds a session over the selected records.
func New(records []*model.WordRecord, opts Options, now Clock) *Session {
	if now == nil {
		now = time.Now
	}
	words := make([]Word, len(records))
	for i, r := range records {
		words[i] = Word{
			Text:       r.Word,
			Definition: r.Definition(),
			Tier:       r.Tier.String(),
		}
	}
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: now(),
		words:     words,
		opts:      opts,
		now:       now,
	}
}

// Len returns the number of words.
func (s *Session) Len() int {
	return len(s.words)
}

// Cursor returns the index of the word being typed.
func (s *Session) Cursor() int {
	return s.cursor
}

// Word returns the word at i.
func (s *Session) Word(i int) *Word {
	if i < 0 || i >= len(s.words) {
		return nil
	}
	return &s.words[i]
}

// Current returns the word under the cursor, or nil once complete.
func (s *Session) Current() *Word {
	return s.Word(s.cursor)
}

// Complete reports whether the session reached its completion boundary.
func (s *Session) Complete() bool {
	return s.finished || s.cursor >= len(s.words)
}

// TypeRune applies a typed character. The separator advances to the next word.
func (s *Session) TypeRune(r rune) {
	if s.Complete() {
		return
	}
	if r == align.Separator {
		s.Advance()
		return
	}
	now := s.now()
	w := &s.words[s.cursor]
	w.typeRune(r, now)
	if s.opts.FinishOnLastWord && s.cursor == len(s.words)-1 && w.Correct() {
		w.stop(now)
		s.finished = true
	}
}

// Advance closes the current word's burst and moves to the next word,
// whatever the buffer holds.
func (s *Session) Advance() {
	if s.Complete() {
		return
	}
	s.words[s.cursor].stop(s.now())
	s.cursor = s.clamp(s.cursor + 1)
}

// Backspace removes the last typed character of the current word. With an
// empty buffer the cursor retreats to the previous word instead.
func (s *Session) Backspace() {
	if s.Complete() {
		return
	}
	if s.words[s.cursor].backspace(s.now()) {
		return
	}
	s.cursor = s.clamp(s.cursor - 1)
}

func (s *Session) clamp(i int) int {
	return min(max(i, 0), len(s.words))
}

// Targets returns the word texts in order.
func (s *Session) Targets() []string {
	out := make([]string, len(s.words))
	for i := range s.words {
		out[i] = s.words[i].Text
	}
	return out
}

// InputText rebuilds the full typed text: completed words joined by the
// separator, followed by the current word's buffer.
func (s *Session) InputText() string {
	var b strings.Builder
	last := min(s.cursor, len(s.words)-1)
	for i := 0; i <= last; i++ {
		b.WriteString(s.words[i].Input())
		if i < s.cursor {
			b.WriteRune(align.Separator)
		}
	}
	return b.String()
}

// ActiveTime sums the closed bursts of every word.
func (s *Session) ActiveTime() time.Duration {
	var total time.Duration
	for i := range s.words {
		total += s.words[i].duration
	}
	return total
}

// Snapshot copies the session state for rendering.
func (s *Session) Snapshot() Snapshot {
	now := s.now()
	words := make([]WordView, len(s.words))
	for i := range s.words {
		w := &s.words[i]
		words[i] = WordView{
			Text:       w.Text,
			Definition: w.Definition,
			Tier:       w.Tier,
			Input:      w.Input(),
			Duration:   w.Elapsed(now),
			Active:     w.active,
		}
	}
	return Snapshot{
		ID:        s.ID,
		StartedAt: s.StartedAt,
		Words:     words,
		Cursor:    s.cursor,
		Complete:  s.Complete(),
		Targets:   s.Targets(),
		Input:     s.InputText(),
	}
}

// WordView is a read-only copy of one word.
type WordView struct {
	Text       string
	Definition string
	Tier       string
	Input      string
	Duration   time.Duration
	Active     bool
}

// Snapshot is a read-only copy of a session.
type Snapshot struct {
	ID        string
	StartedAt time.Time
	Words     []WordView
	Cursor    int
	Complete  bool
	Targets   []string
	Input     string
}

// Current returns the word under the cursor, if any.
func (s Snapshot) Current() (WordView, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Words) {
		return WordView{}, false
	}
	return s.Words[s.Cursor], true
}
