// Package syllable maps precomposed Hangul syllables (U+AC00..U+D7A3)
// to and from their compatibility-jamo index triple.
package syllable

const (
	Base = 0xAC00
	End  = 0xD7A3

	LeadingCount  = 19
	MedialCount   = 21
	TrailingCount = 28
)

var (
	leadingJamo  = []rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	medialJamo   = []rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ'}
	trailingJamo = []rune{0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
)

var (
	leadingIndex  = buildIndex(leadingJamo)
	medialIndex   = buildIndex(medialJamo)
	trailingIndex = buildIndex(trailingJamo)
)

func buildIndex(list []rune) map[rune]int {
	idx := make(map[rune]int, len(list))
	for i, r := range list {
		if r == 0 {
			continue
		}
		idx[r] = i
	}
	return idx
}

// IsSyllable reports whether r is a precomposed Hangul syllable.
func IsSyllable(r rune) bool {
	return r >= Base && r <= End
}

// Split returns the leading, medial and trailing indices of a syllable.
// ok is false when r is outside the syllable block; callers are expected
// to pass such runes through untouched rather than treat this as an error.
func Split(r rune) (lead, medial, tail int, ok bool) {
	if !IsSyllable(r) {
		return 0, 0, 0, false
	}
	offset := int(r - Base)
	lead = offset / (MedialCount * TrailingCount)
	medial = (offset / TrailingCount) % MedialCount
	tail = offset % TrailingCount
	return lead, medial, tail, true
}

// Join composes a syllable from its indices. The indices must come from
// Split or from the jamo tables; out-of-range values are a caller bug.
func Join(lead, medial, tail int) rune {
	return rune(Base + (lead*MedialCount+medial)*TrailingCount + tail)
}

// Leading returns the compatibility jamo for a leading index.
func Leading(i int) rune {
	return leadingJamo[i]
}

// Medial returns the compatibility jamo for a medial index.
func Medial(i int) rune {
	return medialJamo[i]
}

// Trailing returns the compatibility jamo for a trailing index, or 0 for
// index 0 (no trailing consonant).
func Trailing(i int) rune {
	return trailingJamo[i]
}

// LeadingIndex looks up the leading index of a compatibility jamo.
func LeadingIndex(r rune) (int, bool) {
	i, ok := leadingIndex[r]
	return i, ok
}

// MedialIndex looks up the medial index of a compatibility jamo.
func MedialIndex(r rune) (int, bool) {
	i, ok := medialIndex[r]
	return i, ok
}

// TrailingIndex looks up the trailing index of a compatibility jamo.
// It never reports index 0; the absent trailing consonant has no jamo.
func TrailingIndex(r rune) (int, bool) {
	i, ok := trailingIndex[r]
	return i, ok
}
