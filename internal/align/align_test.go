package align

import (
	"reflect"
	"strings"
	"testing"
)

func TestAlignMistypedRune(t *testing.T) {
	got := Collect([]string{"cat"}, "cot")
	want := []Segment{
		{Kind: Correct, Target: "c", Input: "c"},
		{Kind: Incorrect, Target: "a", Input: "o"},
		{Kind: Correct, Target: "t", Input: "t"},
		{Kind: Correct, Target: " "},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected segments:\n got %+v\nwant %+v", got, want)
	}
}

func TestAlignCompletedWordThenPending(t *testing.T) {
	got := Collect([]string{"cat", "dog"}, "cat ")
	want := []Segment{
		{Kind: Correct, Target: "cat ", Input: "cat "},
		{Kind: NoInput, Target: "dog"},
		{Kind: Correct, Target: " "},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected segments:\n got %+v\nwant %+v", got, want)
	}
}

func TestAlignEmptyInput(t *testing.T) {
	got := Collect([]string{"toki"}, "")
	want := []Segment{
		{Kind: NoInput, Target: "toki"},
		{Kind: Correct, Target: " "},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected segments: %+v", got)
	}
}

func TestAlignEmptyTarget(t *testing.T) {
	got := Collect(nil, "toki")
	want := []Segment{{Kind: Excess, Input: "toki"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected segments: %+v", got)
	}
}

func TestAlignExactMatchIsOneSegment(t *testing.T) {
	got := Collect([]string{"pona"}, "pona")
	if len(got) != 1 {
		t.Fatalf("expected 1 segment, got %d: %+v", len(got), got)
	}
	if got[0].Kind != Correct || got[0].Text() != "pona " {
		t.Fatalf("unexpected segment: %+v", got[0])
	}
}

func TestAlignCoalescesIncorrectRuns(t *testing.T) {
	got := Collect([]string{"abcd"}, "axyd")
	want := []Segment{
		{Kind: Correct, Target: "a", Input: "a"},
		{Kind: Incorrect, Target: "bc", Input: "xy"},
		{Kind: Correct, Target: "d", Input: "d"},
		{Kind: Correct, Target: " "},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected segments: %+v", got)
	}
}

func TestAlignExcessRunesAndTokens(t *testing.T) {
	got := Collect([]string{"mi"}, "mii sina")
	want := []Segment{
		{Kind: Correct, Target: "mi", Input: "mi"},
		{Kind: Excess, Input: "i"},
		{Kind: Correct, Target: " ", Input: " "},
		{Kind: Excess, Input: "sina"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected segments: %+v", got)
	}
}

func TestAlignSeparatorNeverIncorrect(t *testing.T) {
	for seg := range Align([]string{"a", "b", "c"}, "x  yy zzz") {
		if strings.Contains(seg.Text(), " ") && seg.Kind != Correct {
			t.Fatalf("separator classified %s: %+v", seg.Kind, seg)
		}
	}
}

func TestAlignRoundTrip(t *testing.T) {
	cases := []struct {
		target []string
		input  string
	}{
		{[]string{"cat"}, "cot"},
		{[]string{"cat", "dog"}, "cat "},
		{[]string{"cat", "dog"}, ""},
		{nil, "stray words here "},
		{[]string{"toki", "pona"}, "tok ponaaa extra"},
		{[]string{"a", "b"}, "a  b"},
		{[]string{"kijetesantakalu"}, "kije"},
		{[]string{"sina", "li", "pona"}, "sina li pona "},
		{[]string{"ilo"}, "ilo"},
		{[]string{"ünï", "côdé"}, "üni cöde"},
	}
	for _, tc := range cases {
		segs := Collect(tc.target, tc.input)
		if got, want := TargetText(segs), Terminated(tc.target); got != want {
			t.Fatalf("target round trip for %q/%q: got %q want %q", tc.target, tc.input, got, want)
		}
		if got := InputText(segs); got != tc.input {
			t.Fatalf("input round trip for %q/%q: got %q", tc.target, tc.input, got)
		}
	}
}

func TestAlignStopsWhenConsumerStops(t *testing.T) {
	count := 0
	for range Align([]string{"abc", "def", "ghi"}, "xyz xyz xyz") {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Fatalf("expected to stop after 2 segments, got %d", count)
	}
}

func TestAlignIsRestartable(t *testing.T) {
	seq := Align([]string{"moku", "telo"}, "moku tel")
	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	if first == 0 || first != second {
		t.Fatalf("expected equal non-zero counts, got %d and %d", first, second)
	}
}
