package session

import (
	"testing"
	"time"

	"github.com/verte-zerg/tokitype/internal/model"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}
}

func records(words ...string) []*model.WordRecord {
	out := make([]*model.WordRecord, len(words))
	for i, w := range words {
		out[i] = &model.WordRecord{ID: w, Word: w, Tier: model.TierCore}
	}
	return out
}

func typeString(s *Session, text string) {
	for _, r := range text {
		s.TypeRune(r)
	}
}

func TestTypingBurstDuration(t *testing.T) {
	clock := newClock()
	s := New(records("toki", "pona"), Options{}, clock.Now)

	s.TypeRune('t')
	clock.Advance(300 * time.Millisecond)
	s.TypeRune('o')
	clock.Advance(200 * time.Millisecond)
	s.Advance()

	w := s.Word(0)
	if w.Active() {
		t.Fatalf("expected burst to close on advance")
	}
	if got := w.Duration(); got != 500*time.Millisecond {
		t.Fatalf("expected 500ms, got %v", got)
	}
	if s.Cursor() != 1 {
		t.Fatalf("expected cursor 1, got %d", s.Cursor())
	}
}

func TestBackspaceToEmptyClosesBurstOnce(t *testing.T) {
	clock := newClock()
	s := New(records("mi"), Options{}, clock.Now)

	s.TypeRune('m')
	clock.Advance(time.Second)
	s.TypeRune('i')
	clock.Advance(time.Second)
	s.Backspace()
	w := s.Word(0)
	if !w.Active() || w.Input() != "m" {
		t.Fatalf("expected active word with input m, got active=%v input=%q", w.Active(), w.Input())
	}

	clock.Advance(time.Second)
	s.Backspace()
	if w.Active() {
		t.Fatalf("expected emptied word to be idle")
	}
	if got := w.Duration(); got != 3*time.Second {
		t.Fatalf("expected 3s, got %v", got)
	}

	clock.Advance(5 * time.Second)
	s.Backspace()
	if got := w.Duration(); got != 3*time.Second {
		t.Fatalf("idle backspace changed duration to %v", got)
	}
}

func TestAdvanceWhileIdleKeepsZeroDuration(t *testing.T) {
	clock := newClock()
	s := New(records("jan", "moku"), Options{}, clock.Now)
	clock.Advance(time.Minute)
	s.TypeRune(' ')
	if s.Cursor() != 1 {
		t.Fatalf("expected separator to advance, cursor %d", s.Cursor())
	}
	if got := s.Word(0).Duration(); got != 0 {
		t.Fatalf("expected zero duration for skipped word, got %v", got)
	}
}

func TestBackspaceOnEmptyBufferRetreats(t *testing.T) {
	s := New(records("telo", "tomo"), Options{}, newClock().Now)
	typeString(s, "telo ")
	if s.Cursor() != 1 {
		t.Fatalf("expected cursor 1, got %d", s.Cursor())
	}
	s.Backspace()
	if s.Cursor() != 0 {
		t.Fatalf("expected retreat to 0, got %d", s.Cursor())
	}
	s.Backspace()
	if got := s.Word(0).Input(); got != "tel" {
		t.Fatalf("expected tel, got %q", got)
	}
	for range 10 {
		s.Backspace()
	}
	if s.Cursor() != 0 {
		t.Fatalf("expected cursor clamped at 0, got %d", s.Cursor())
	}
}

func TestCompletionAtBoundary(t *testing.T) {
	s := New(records("sina", "li"), Options{}, newClock().Now)
	typeString(s, "sina li")
	if s.Complete() {
		t.Fatalf("session completed before the final separator")
	}
	s.TypeRune(' ')
	if !s.Complete() {
		t.Fatalf("expected completion after final separator")
	}
	if s.Current() != nil {
		t.Fatalf("expected no current word once complete")
	}

	s.TypeRune('x')
	s.Backspace()
	s.Advance()
	if s.Cursor() != 2 {
		t.Fatalf("expected cursor to stay at 2, got %d", s.Cursor())
	}
	if got := s.InputText(); got != "sina li " {
		t.Fatalf("unexpected input %q", got)
	}
}

func TestFinishOnLastWord(t *testing.T) {
	clock := newClock()
	s := New(records("ona", "kala"), Options{FinishOnLastWord: true}, clock.Now)
	typeString(s, "ona kal")
	if s.Complete() {
		t.Fatalf("completed early")
	}
	clock.Advance(time.Second)
	s.TypeRune('a')
	if !s.Complete() {
		t.Fatalf("expected completion once last word matches")
	}
	if s.Word(1).Active() {
		t.Fatalf("expected last burst to close")
	}
	if got := s.Word(1).Duration(); got != time.Second {
		t.Fatalf("expected 1s, got %v", got)
	}
}

func TestFinishOnLastWordNeedsMatch(t *testing.T) {
	s := New(records("suno"), Options{FinishOnLastWord: true}, newClock().Now)
	typeString(s, "sunu")
	if s.Complete() {
		t.Fatalf("mismatched word must not complete")
	}
	s.Backspace()
	s.TypeRune('o')
	if !s.Complete() {
		t.Fatalf("expected completion after correction")
	}
}

func TestDurationIsMonotonic(t *testing.T) {
	clock := newClock()
	s := New(records("waso"), Options{}, clock.Now)
	var last time.Duration
	for _, step := range []func(){
		func() { s.TypeRune('w') },
		func() { s.TypeRune('a') },
		func() { s.Backspace() },
		func() { s.Backspace() },
		func() { s.TypeRune('w') },
		func() { s.Backspace() },
		func() { s.TypeRune('x') },
	} {
		clock.Advance(100 * time.Millisecond)
		step()
		got := s.Word(0).Elapsed(clock.Now())
		if got < last {
			t.Fatalf("duration went backwards: %v < %v", got, last)
		}
		last = got
	}
}

func TestSnapshotCopiesState(t *testing.T) {
	clock := newClock()
	s := New(records("lipu", "sitelen"), Options{}, clock.Now)
	typeString(s, "lipu si")
	clock.Advance(time.Second)

	snap := s.Snapshot()
	if snap.ID == "" || snap.ID != s.ID {
		t.Fatalf("unexpected snapshot id %q", snap.ID)
	}
	if snap.Input != "lipu si" {
		t.Fatalf("unexpected input %q", snap.Input)
	}
	cur, ok := snap.Current()
	if !ok || cur.Text != "sitelen" || cur.Input != "si" || !cur.Active {
		t.Fatalf("unexpected current word %+v", cur)
	}
	if cur.Duration != time.Second {
		t.Fatalf("expected open burst in snapshot duration, got %v", cur.Duration)
	}

	s.TypeRune('t')
	if snap.Words[1].Input != "si" {
		t.Fatalf("snapshot changed after typing")
	}
}

func TestEmptySessionIsComplete(t *testing.T) {
	s := New(nil, Options{}, newClock().Now)
	if !s.Complete() {
		t.Fatalf("expected empty session to be complete")
	}
	s.TypeRune('a')
	s.Backspace()
	if s.InputText() != "" || s.Cursor() != 0 {
		t.Fatalf("unexpected state for empty session")
	}
}
