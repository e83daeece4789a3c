// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tokitype/internal/align"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// caret locates the typing position: a word index and a rune offset within
// that word's displayed text.
type caret struct {
	word   int
	offset int
}

// buildStyledRunes styles every displayed rune of segs. Runes of the word
// under the caret that are still untyped use the current-word style, and the
// rune at the caret is underlined.
func buildStyledRunes(segs []align.Segment, at caret) []styledRune {
	out := []styledRune{}
	word := 0
	offset := 0
	for _, seg := range segs {
		for _, r := range seg.Text() {
			isSpace := r == align.Separator
			style := styleFor(seg.Kind, word == at.word)
			if isSpace {
				style = separatorStyle
			}
			if word == at.word && offset == at.offset {
				style = style.Underline(true)
			}
			out = append(out, styledRune{
				s:       style.Render(string(r)),
				width:   runewidth.RuneWidth(r),
				isSpace: isSpace,
			})
			if isSpace {
				word++
				offset = 0
				continue
			}
			offset++
		}
	}
	return out
}

func styleFor(kind align.Kind, current bool) lipgloss.Style {
	switch kind {
	case align.Correct:
		return correctStyle
	case align.Incorrect:
		return incorrectStyle
	case align.Excess:
		return excessStyle
	default:
		if current {
			return currentWordStyle
		}
		return pendingStyle
	}
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wordCell is one displayed word and the separator that follows it, if any.
type wordCell struct {
	runes []styledRune
	width int
	sep   *styledRune
}

// splitWords groups styled runes into words at separators. A run of
// separators yields empty words, one per separator.
func splitWords(runes []styledRune) []wordCell {
	var words []wordCell
	var cur wordCell
	for i := range runes {
		if runes[i].isSpace {
			cur.sep = &runes[i]
			words = append(words, cur)
			cur = wordCell{}
			continue
		}
		cur.runes = append(cur.runes, runes[i])
		cur.width += runes[i].width
	}
	if len(cur.runes) > 0 {
		words = append(words, cur)
	}
	return words
}

// wrapStyledRunes lays words out on lines of at most width cells. A word never
// starts a line with its predecessor's separator; the separator stays at the
// end of the previous line when it fits there, so a caret on it stays
// visible. Words wider than a line are split across lines.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	lineWidth := 0
	var pending *styledRune
	flushSep := func() {
		if pending != nil && lineWidth+pending.width <= width {
			out.WriteString(pending.s)
			lineWidth += pending.width
		}
		pending = nil
	}

	for _, w := range splitWords(runes) {
		sepWidth := 0
		if pending != nil {
			sepWidth = pending.width
		}
		if lineWidth > 0 && lineWidth+sepWidth+w.width > width {
			flushSep()
			out.WriteByte('\n')
			lineWidth = 0
		}
		flushSep()
		for _, r := range w.runes {
			if lineWidth > 0 && lineWidth+r.width > width {
				out.WriteByte('\n')
				lineWidth = 0
			}
			out.WriteString(r.s)
			lineWidth += r.width
		}
		pending = w.sep
	}
	flushSep()
	return out.String()
}
