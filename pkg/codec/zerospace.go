package codec

import "hanjamo/pkg/syllable"

// Marker separates an initial+medial block from its trailing jamo in the
// zero-space encoding. It must not occur in composed input text for the
// encoding to round-trip.
const Marker = '\u200b'

// ZeroSpace writes every syllable as a trailing-less syllable codepoint,
// followed by Marker and the trailing compatibility jamo when the
// syllable has one. Composing peeks past an optional Marker for a
// trailing jamo; a Marker with nothing matching after it is left in the
// stream and copied through on the next step.
type ZeroSpace struct{}

func (ZeroSpace) Decompose(text string) string {
	return decomposeScan(text, expandZeroSpace)
}

func (ZeroSpace) Compose(text string) string {
	return composeScan(text, composeZeroSpaceStep)
}

func expandZeroSpace(r rune) []rune {
	lead, medial, tail, ok := syllable.Split(r)
	if !ok {
		return []rune{r}
	}
	out := []rune{syllable.Join(lead, medial, 0)}
	if tail != 0 {
		out = append(out, Marker, syllable.Trailing(tail))
	}
	return out
}

func composeZeroSpaceStep(in []rune, pos int) step {
	lead, medial, _, ok := syllable.Split(in[pos])
	if !ok {
		return literal(in[pos])
	}

	// The block's own trailing index is forced to zero; only a trailing
	// jamo after the optional marker counts.
	peek := pos + 1
	if peek < len(in) && in[peek] == Marker {
		peek++
	}
	if peek < len(in) {
		if tail, ok := syllable.TrailingIndex(in[peek]); ok {
			return step{emit: []rune{syllable.Join(lead, medial, tail)}, consumed: peek + 1 - pos}
		}
	}
	return step{emit: []rune{syllable.Join(lead, medial, 0)}, consumed: 1}
}
