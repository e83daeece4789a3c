package session

import "time"

// Word is one target word with its input buffer and active-time tracking.
//
// A word is Idle while its buffer is empty and no burst is open, and Active
// while a burst is open. Duration only grows, by the length of each closed
// burst.
type Word struct {
	Text       string
	Definition string
	Tier       string

	input      []rune
	burstStart time.Time
	active     bool
	duration   time.Duration
}

// Input returns the typed text for the word.
func (w *Word) Input() string {
	return string(w.input)
}

// Active reports whether a burst is open.
func (w *Word) Active() bool {
	return w.active
}

// Duration returns the accumulated active time, excluding any open burst.
func (w *Word) Duration() time.Duration {
	return w.duration
}

// Elapsed returns the accumulated time including the open burst up to now.
func (w *Word) Elapsed(now time.Time) time.Duration {
	if !w.active {
		return w.duration
	}
	return w.duration + now.Sub(w.burstStart)
}

// Correct reports whether the typed text equals the target.
func (w *Word) Correct() bool {
	return string(w.input) == w.Text
}

func (w *Word) typeRune(r rune, now time.Time) {
	if !w.active {
		w.burstStart = now
		w.active = true
	}
	w.input = append(w.input, r)
}

// backspace removes the last rune and reports whether one was removed.
// Emptying the buffer closes the burst.
func (w *Word) backspace(now time.Time) bool {
	if len(w.input) == 0 {
		return false
	}
	w.input = w.input[:len(w.input)-1]
	if len(w.input) == 0 {
		w.stop(now)
	}
	return true
}

func (w *Word) stop(now time.Time) {
	if !w.active {
		return
	}
	if d := now.Sub(w.burstStart); d > 0 {
		w.duration += d
	}
	w.burstStart = time.Time{}
	w.active = false
}
