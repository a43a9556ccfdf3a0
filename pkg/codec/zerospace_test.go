package codec

import "testing"

func TestZeroSpaceDecompose(t *testing.T) {
	c := ZeroSpace{}

	if got := c.Decompose("실행"); got != "시\u200bㄹ해\u200bㅇ" {
		t.Fatalf("Decompose(\"실행\") = %q, want %q", got, "시\u200bㄹ해\u200bㅇ")
	}
	// No trailing consonant means no marker at all.
	if got := c.Decompose("가"); got != "가" {
		t.Fatalf("Decompose(\"가\") = %q, want %q", got, "가")
	}
	if got := c.Decompose("행"); got != "해\u200bㅇ" {
		t.Fatalf("Decompose(\"행\") = %q, want %q", got, "해\u200bㅇ")
	}
}

func TestZeroSpaceCompose(t *testing.T) {
	c := ZeroSpace{}

	if got := c.Compose("시\u200bㄹ해\u200bㅇ"); got != "실행" {
		t.Fatalf("Compose = %q, want %q", got, "실행")
	}
	// The marker is optional on compose; a bare trailing jamo still binds.
	if got := c.Compose("시ㄹ"); got != "실" {
		t.Fatalf("Compose(\"시ㄹ\") = %q, want %q", got, "실")
	}
}

func TestZeroSpaceRoundTrip(t *testing.T) {
	c := ZeroSpace{}

	// Unlike the bare-jamo encoding, the marker keeps trailing jamo
	// unambiguous, so arbitrary syllable text survives the trip.
	inputs := []string{
		"가", "행", "값", "실행", "안녕하세요", "바람과 함께", "힣",
	}
	for _, s := range inputs {
		if got := c.Compose(c.Decompose(s)); got != s {
			t.Fatalf("round trip of %q produced %q", s, got)
		}
	}
}

func TestZeroSpacePassThrough(t *testing.T) {
	c := ZeroSpace{}
	inputs := []string{"", "hello", "123 abc!", "日本語"}
	for _, s := range inputs {
		if got := c.Decompose(s); got != s {
			t.Fatalf("Decompose(%q) = %q, want unchanged", s, got)
		}
		if got := c.Compose(s); got != s {
			t.Fatalf("Compose(%q) = %q, want unchanged", s, got)
		}
	}
}

func TestZeroSpaceMixedContent(t *testing.T) {
	c := ZeroSpace{}
	original := "run 실행 now!"
	if got := c.Compose(c.Decompose(original)); got != original {
		t.Fatalf("Compose(Decompose(%q)) = %q", original, got)
	}
}

func TestZeroSpaceComposeBareBlock(t *testing.T) {
	c := ZeroSpace{}

	// A trailing-less block with nothing after it composes to itself.
	if got := c.Compose("시"); got != "시" {
		t.Fatalf("Compose(\"시\") = %q, want %q", got, "시")
	}
	// A block's own trailing consonant is forced to zero unless a
	// trailing jamo follows.
	if got := c.Compose("실"); got != "시" {
		t.Fatalf("Compose(\"실\") = %q, want %q", got, "시")
	}
}

func TestZeroSpaceComposeDanglingMarker(t *testing.T) {
	c := ZeroSpace{}

	// A marker with no trailing jamo after it is left alone and copied
	// through on the next step.
	if got := c.Compose("시\u200b!"); got != "시\u200b!" {
		t.Fatalf("Compose = %q, want the dangling marker kept", got)
	}
	if got := c.Compose("시\u200b"); got != "시\u200b" {
		t.Fatalf("Compose = %q, want the trailing marker kept", got)
	}
	// A marker not preceded by a syllable block is ordinary pass-through.
	if got := c.Compose("\u200bㄹ"); got != "\u200bㄹ" {
		t.Fatalf("Compose = %q, want untouched", got)
	}
}

func TestZeroSpaceDecomposeUnitCounts(t *testing.T) {
	c := ZeroSpace{}

	if got := []rune(c.Decompose("가")); len(got) != 1 {
		t.Fatalf("expected 1 unit for a trailing-less syllable, got %d", len(got))
	}
	got := []rune(c.Decompose("행"))
	if len(got) != 3 {
		t.Fatalf("expected 3 units for a trailing syllable, got %d", len(got))
	}
	if got[1] != Marker {
		t.Fatalf("expected marker between block and trailing jamo, got %#x", got[1])
	}
}

func TestZeroSpaceBoundaryRunes(t *testing.T) {
	c := ZeroSpace{}

	if got := c.Decompose(string(rune(0xAC00))); got != "가" {
		t.Fatalf("Decompose(U+AC00) = %q, want %q", got, "가")
	}
	if got := c.Compose(c.Decompose(string(rune(0xD7A3)))); got != "힣" {
		t.Fatalf("round trip of U+D7A3 produced %q", got)
	}
	for _, r := range []rune{0xABFF, 0xD7A4} {
		if got := c.Decompose(string(r)); got != string(r) {
			t.Fatalf("Decompose(%#x) = %q, want pass-through", r, got)
		}
	}
}
