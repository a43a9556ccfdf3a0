package codec

import "hanjamo/pkg/syllable"

// CompatJamo writes every syllable as its bare leading+medial[+trailing]
// compatibility jamo with no separators. Composing scans greedily: a
// leading jamo followed by a medial jamo starts a syllable, and a
// trailing-capable jamo right after is always folded in as the trailing
// consonant. A jamo that could instead open the next syllable is not
// reconsidered; the encoding relies on the composer consuming exactly
// what Decompose emitted.
type CompatJamo struct{}

func (CompatJamo) Decompose(text string) string {
	return decomposeScan(text, expandCompat)
}

func (CompatJamo) Compose(text string) string {
	return composeScan(text, composeCompatStep)
}

func expandCompat(r rune) []rune {
	lead, medial, tail, ok := syllable.Split(r)
	if !ok {
		return []rune{r}
	}
	out := []rune{syllable.Leading(lead), syllable.Medial(medial)}
	if tail != 0 {
		out = append(out, syllable.Trailing(tail))
	}
	return out
}

func composeCompatStep(in []rune, pos int) step {
	lead, ok := syllable.LeadingIndex(in[pos])
	if !ok || pos+1 >= len(in) {
		return literal(in[pos])
	}
	medial, ok := syllable.MedialIndex(in[pos+1])
	if !ok {
		return literal(in[pos])
	}

	consumed := 2
	tail := 0
	if pos+2 < len(in) {
		if ti, ok := syllable.TrailingIndex(in[pos+2]); ok {
			tail = ti
			consumed = 3
		}
	}
	return step{emit: []rune{syllable.Join(lead, medial, tail)}, consumed: consumed}
}
