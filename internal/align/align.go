// Package align classifies typed input against target text for display.
//
// Alignment runs at two levels. Target and input tokens are paired by position,
// padding the shorter side with absence; paired tokens are then aligned rune by
// rune the same way. Each token is followed by a separator segment that is
// always Correct, so word boundaries are never shown as mistakes.
package align

import (
	"iter"
	"slices"
	"strings"
)

// Separator splits tokens in both target and input text.
const Separator = ' '

const sep = string(Separator)

// Kind classifies a segment.
type Kind int

// Segment kinds.
const (
	Correct Kind = iota
	Incorrect
	Excess
	NoInput
)

func (k Kind) String() string {
	switch k {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case Excess:
		return "excess"
	case NoInput:
		return "no-input"
	default:
		return "unknown"
	}
}

// Segment is a classified run of text. Target and Input hold the text each
// side contributes: NoInput has no input side, Excess has no target side.
type Segment struct {
	Kind   Kind
	Target string
	Input  string
}

// Text returns what a renderer shows for the segment.
func (s Segment) Text() string {
	if s.Kind == Excess || s.Target == "" {
		return s.Input
	}
	return s.Target
}

// Align pairs target tokens with the tokens of input and yields classified
// segments. It keeps no state between calls and never fails.
func Align(target []string, input string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		var inputs []string
		if input != "" {
			inputs = strings.Split(input, sep)
		}
		n := max(len(target), len(inputs))
		for i := 0; i < n; i++ {
			hasTarget := i < len(target)
			hasInput := i < len(inputs)
			// Every input token except the last was followed by a separator.
			terminated := hasInput && i < len(inputs)-1

			var t, in string
			if hasTarget {
				t = target[i]
			}
			if hasInput {
				in = inputs[i]
			}

			switch {
			case hasTarget && hasInput && t == in && terminated:
				if !yield(Segment{Kind: Correct, Target: t + sep, Input: in + sep}) {
					return
				}
				continue
			case hasTarget && hasInput && t == in:
				if !yield(Segment{Kind: Correct, Target: t + sep, Input: in}) {
					return
				}
				continue
			case hasTarget && hasInput:
				if !alignRunes(t, in, yield) {
					return
				}
			case hasTarget:
				if t != "" && !yield(Segment{Kind: NoInput, Target: t}) {
					return
				}
			default:
				if in != "" && !yield(Segment{Kind: Excess, Input: in}) {
					return
				}
			}

			boundary := Segment{Kind: Correct}
			if hasTarget {
				boundary.Target = sep
			}
			if terminated {
				boundary.Input = sep
			}
			if boundary.Target == "" && boundary.Input == "" {
				continue
			}
			if !yield(boundary) {
				return
			}
		}
	}
}

// Collect runs Align to completion.
func Collect(target []string, input string) []Segment {
	return slices.Collect(Align(target, input))
}

// alignRunes yields runs of same-kind runes for one token pair. It reports
// false when the consumer stopped early.
func alignRunes(target, input string, yield func(Segment) bool) bool {
	t := []rune(target)
	in := []rune(input)
	n := max(len(t), len(in))

	var (
		run    Segment
		active bool
		tbuf   strings.Builder
		ibuf   strings.Builder
	)
	flush := func() bool {
		if !active {
			return true
		}
		run.Target = tbuf.String()
		run.Input = ibuf.String()
		tbuf.Reset()
		ibuf.Reset()
		active = false
		return yield(run)
	}

	for i := 0; i < n; i++ {
		var kind Kind
		switch {
		case i < len(t) && i < len(in) && t[i] == in[i]:
			kind = Correct
		case i < len(t) && i < len(in):
			kind = Incorrect
		case i < len(t):
			kind = NoInput
		default:
			kind = Excess
		}
		if active && run.Kind != kind {
			if !flush() {
				return false
			}
		}
		if !active {
			run = Segment{Kind: kind}
			active = true
		}
		if i < len(t) {
			tbuf.WriteRune(t[i])
		}
		if i < len(in) {
			ibuf.WriteRune(in[i])
		}
	}
	return flush()
}

// TargetText concatenates the target sides of segs.
func TargetText(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		if s.Kind != Excess {
			b.WriteString(s.Target)
		}
	}
	return b.String()
}

// InputText concatenates the input sides of segs.
func InputText(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		if s.Kind != NoInput {
			b.WriteString(s.Input)
		}
	}
	return b.String()
}

// Terminated joins tokens with each one followed by the separator, the layout
// TargetText reconstructs.
func Terminated(tokens []string) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok)
		b.WriteRune(Separator)
	}
	return b.String()
}
