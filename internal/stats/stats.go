// Package stats contains session metrics and text reports.
package stats

import (
	"time"
	"unicode/utf8"

	"github.com/verte-zerg/tokitype/internal/align"
	"github.com/verte-zerg/tokitype/internal/session"
)

// SessionMetrics computes WPM, CPM, and accuracy for a session.
func SessionMetrics(correct, incorrect int, durationMs int64) (wpm, cpm, accuracy float64) {
	if durationMs <= 0 {
		return 0, 0, 0
	}
	minutes := float64(durationMs) / 60000.0
	if minutes <= 0 {
		return 0, 0, 0
	}
	wpm = (float64(correct) / 5.0) / minutes
	cpm = float64(correct) / minutes
	den := float64(correct + incorrect)
	if den > 0 {
		accuracy = float64(correct) / den
	}
	return wpm, cpm, accuracy
}

// WordResult summarises one typed word.
type WordResult struct {
	Text      string
	Input     string
	Duration  time.Duration
	Correct   int
	Incorrect int
}

// Exact reports whether the word was typed exactly.
func (w WordResult) Exact() bool {
	return w.Text == w.Input
}

// Results summarises a finished session.
type Results struct {
	Words     []WordResult
	Correct   int
	Incorrect int
	Active    time.Duration
	WPM       float64
	CPM       float64
	Accuracy  float64
}

// Summarize scores every word of snap by aligning its input with its target.
// Missed, wrong and extra runes all count as incorrect.
func Summarize(snap session.Snapshot) Results {
	var res Results
	res.Words = make([]WordResult, 0, len(snap.Words))
	for _, w := range snap.Words {
		wr := WordResult{Text: w.Text, Input: w.Input, Duration: w.Duration}
		for seg := range align.Align([]string{w.Text}, w.Input) {
			switch seg.Kind {
			case align.Correct:
				wr.Correct += utf8.RuneCountInString(trimSeparator(seg.Input))
			case align.Incorrect, align.Excess:
				wr.Incorrect += utf8.RuneCountInString(seg.Input)
			case align.NoInput:
				wr.Incorrect += utf8.RuneCountInString(seg.Target)
			}
		}
		res.Words = append(res.Words, wr)
		res.Correct += wr.Correct
		res.Incorrect += wr.Incorrect
		res.Active += w.Duration
	}
	res.WPM, res.CPM, res.Accuracy = SessionMetrics(res.Correct, res.Incorrect, res.Active.Milliseconds())
	return res
}

func trimSeparator(s string) string {
	if n := len(s); n > 0 && s[n-1] == byte(align.Separator) {
		return s[:n-1]
	}
	return s
}
