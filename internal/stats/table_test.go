package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Word", "Time (s)", "Correct"}
	rows := [][]string{
		{"soweli", "1.25", "6"},
		{"mi", "0.40", "12"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Word   Time (s) Correct" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "soweli     1.25       6" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "mi         0.40      12" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableTrimsTrailingPadding(t *testing.T) {
	lines := formatTable([]string{"Word", "Definition"}, [][]string{{"mi", "I"}}, nil)
	if lines[1] != "mi   I" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
}
