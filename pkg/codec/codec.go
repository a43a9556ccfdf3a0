// Package codec converts Hangul text between precomposed syllables and
// two decomposed compatibility-jamo encodings.
package codec

import "strings"

// A Codec rewrites text between its composed and decomposed forms. Both
// directions are total: runes that do not fit the encoding are copied
// through unchanged, never rejected.
type Codec interface {
	Decompose(text string) string
	Compose(text string) string
}

var codecNames = []string{"compat", "zerospace"}

// New returns the codec registered under name.
func New(name string) (Codec, bool) {
	switch name {
	case "compat":
		return CompatJamo{}, true
	case "zerospace":
		return ZeroSpace{}, true
	default:
		return nil, false
	}
}

// Names returns the registered codec names.
func Names() []string {
	copyOf := make([]string, len(codecNames))
	copy(copyOf, codecNames)
	return copyOf
}

// step is the outcome of one composer scan step: the runes to emit and
// how far the cursor advances. A literal step emits the current rune and
// advances by one; a matched step emits one syllable and advances past
// everything it consumed.
type step struct {
	emit     []rune
	consumed int
}

func literal(r rune) step {
	return step{emit: []rune{r}, consumed: 1}
}

// composeScan drives a composer step function across the input. The step
// function is called once per cursor position and must consume at least
// one rune.
func composeScan(text string, next func(in []rune, pos int) step) string {
	in := []rune(text)
	builder := strings.Builder{}
	builder.Grow(len(text))
	for pos := 0; pos < len(in); {
		st := next(in, pos)
		builder.WriteString(string(st.emit))
		pos += st.consumed
	}
	return builder.String()
}

// decomposeScan applies a per-rune expansion across the input.
func decomposeScan(text string, expand func(r rune) []rune) string {
	builder := strings.Builder{}
	builder.Grow(len(text))
	for _, r := range text {
		builder.WriteString(string(expand(r)))
	}
	return builder.String()
}
