package stats

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/tokitype/internal/corpus"
	"github.com/verte-zerg/tokitype/internal/model"
	"github.com/verte-zerg/tokitype/internal/session"
)

func TestSessionMetrics(t *testing.T) {
	wpm, cpm, acc := SessionMetrics(50, 10, 60000)
	if wpm != 10 {
		t.Fatalf("expected wpm 10, got %v", wpm)
	}
	if cpm != 50 {
		t.Fatalf("expected cpm 50, got %v", cpm)
	}
	if math.Abs(acc-50.0/60.0) > 1e-9 {
		t.Fatalf("unexpected accuracy %v", acc)
	}

	wpm, cpm, acc = SessionMetrics(10, 0, 0)
	if wpm != 0 || cpm != 0 || acc != 0 {
		t.Fatalf("expected zero metrics without duration")
	}
}

func TestSummarize(t *testing.T) {
	snap := session.Snapshot{
		Words: []session.WordView{
			{Text: "cat", Input: "cot", Duration: 2 * time.Second},
			{Text: "mi", Input: "mi", Duration: time.Second},
			{Text: "dog", Input: ""},
			{Text: "li", Input: "lii", Duration: 3 * time.Second},
		},
	}
	res := Summarize(snap)
	if len(res.Words) != 4 {
		t.Fatalf("expected 4 word results, got %d", len(res.Words))
	}
	want := []struct{ correct, incorrect int }{{2, 1}, {2, 0}, {0, 3}, {2, 1}}
	for i, w := range want {
		got := res.Words[i]
		if got.Correct != w.correct || got.Incorrect != w.incorrect {
			t.Fatalf("word %d (%s): expected %d/%d, got %d/%d", i, got.Text, w.correct, w.incorrect, got.Correct, got.Incorrect)
		}
	}
	if !res.Words[1].Exact() || res.Words[0].Exact() {
		t.Fatalf("unexpected exact flags")
	}
	if res.Correct != 6 || res.Incorrect != 5 {
		t.Fatalf("unexpected totals %d/%d", res.Correct, res.Incorrect)
	}
	if res.Active != 6*time.Second {
		t.Fatalf("unexpected active time %v", res.Active)
	}
	if math.Abs(res.CPM-60) > 1e-9 {
		t.Fatalf("expected cpm 60, got %v", res.CPM)
	}
}

func TestRenderResults(t *testing.T) {
	res := Summarize(session.Snapshot{Words: []session.WordView{{Text: "mi", Input: "mi", Duration: 6 * time.Second}}})
	var buf bytes.Buffer
	if err := RenderResults(&buf, res); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"WPM: 4.0", "Accuracy: 100.0%", "Active time: 6.0s", "Word", "6.00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderSelection(t *testing.T) {
	def := "bad"
	records := []*model.WordRecord{
		{Word: "ike", Tier: model.TierCore, Definitions: &def},
		{Word: "pake", Tier: model.TierObscure, Deprecated: true},
	}
	var buf bytes.Buffer
	if err := RenderSelection(&buf, records); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "ike  core    bad") || !strings.Contains(out, "(deprecated)") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	buf.Reset()
	if err := RenderSelection(&buf, nil); err != nil {
		t.Fatalf("render empty: %v", err)
	}
	if !strings.Contains(buf.String(), "No words match") {
		t.Fatalf("unexpected empty output %q", buf.String())
	}
}

func TestRenderCorpusSummary(t *testing.T) {
	c := corpus.New("test", []model.WordRecord{
		{ID: "1", Word: "mi", Tier: model.TierCore},
		{ID: "2", Word: "pake", Tier: model.TierObscure, Deprecated: true},
	})
	var buf bytes.Buffer
	if err := RenderCorpusSummary(&buf, c.Source(), c.Summarize()); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "Corpus: test\n") || !strings.Contains(out, "total") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
