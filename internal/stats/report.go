package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/tokitype/internal/corpus"
	"github.com/verte-zerg/tokitype/internal/model"
)

// RenderCorpusSummary prints record counts per tier.
func RenderCorpusSummary(w io.Writer, source string, s corpus.Summary) error {
	if _, err := fmt.Fprintf(w, "Corpus: %s\n", source); err != nil {
		return err
	}
	headers := []string{"Tier", "Words"}
	rows := make([][]string, 0, len(model.Tiers())+3)
	for _, tier := range model.Tiers() {
		rows = append(rows, []string{tier.String(), fmt.Sprintf("%d", s.ByTier[tier])})
	}
	rows = append(rows,
		[]string{"deprecated", fmt.Sprintf("%d", s.Deprecated)},
		[]string{"with definitions", fmt.Sprintf("%d", s.WithDefs)},
		[]string{"total", fmt.Sprintf("%d", s.Total)},
	)
	return writeLines(w, formatTable(headers, rows, map[int]bool{1: true}))
}

// RenderSelection prints selected records, one per row.
func RenderSelection(w io.Writer, records []*model.WordRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No words match the selection.")
		return err
	}
	headers := []string{"Word", "Tier", "Definition"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		def := r.Definition()
		if r.Deprecated {
			def = strings.TrimSpace("(deprecated) " + def)
		}
		rows = append(rows, []string{r.Word, r.Tier.String(), def})
	}
	return writeLines(w, formatTable(headers, rows, nil))
}

// RenderResults prints a finished session's totals and per-word rows.
func RenderResults(w io.Writer, res Results) error {
	lines := []string{
		fmt.Sprintf("WPM: %.1f", res.WPM),
		fmt.Sprintf("Accuracy: %.1f%%", res.Accuracy*100),
		fmt.Sprintf("Active time: %.1fs", res.Active.Seconds()),
		"",
	}
	headers := []string{"Word", "Typed", "Time (s)", "Correct", "Incorrect"}
	rows := make([][]string, 0, len(res.Words))
	for _, wr := range res.Words {
		rows = append(rows, []string{
			wr.Text,
			wr.Input,
			fmt.Sprintf("%.2f", wr.Duration.Seconds()),
			fmt.Sprintf("%d", wr.Correct),
			fmt.Sprintf("%d", wr.Incorrect),
		})
	}
	lines = append(lines, formatTable(headers, rows, map[int]bool{2: true, 3: true, 4: true})...)
	return writeLines(w, lines)
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
