package urlenc

import "testing"

func TestUnreserved(t *testing.T) {
	for i := 0; i < 256; i++ {
		c := byte(i)
		want := c >= '0' && c <= '9' ||
			c >= 'A' && c <= 'Z' ||
			c >= 'a' && c <= 'z' ||
			c == '-' || c == '.' || c == '_' || c == '~'

		if got := Unreserved(c); got != want {
			t.Errorf("Unreserved(%#x): got %v, want %v", c, got, want)
		}
	}
}

func TestCharset_Zero(t *testing.T) {
	var x Charset
	for i := 0; i < 256; i++ {
		if x.Is(byte(i)) {
			t.Fatalf("empty set contains %#x", i)
		}
	}
}

func TestCharset_Merge(t *testing.T) {
	x := NewCharset("/:@")

	for _, c := range []byte("/:@") {
		if !x.Is(c) {
			t.Errorf("expected %q in set", c)
		}
	}
	for _, c := range []byte("a?# ") {
		if x.Is(c) {
			t.Errorf("unexpected %q in set", c)
		}
	}
}

func TestCharset_BoundaryBytes(t *testing.T) {
	// 63 and 64 straddle the two words of the bitmap
	x := NewCharset("?@\x00\x7f")

	for _, c := range []byte{'?', '@', 0, 0x7f} {
		if !x.Is(c) {
			t.Errorf("expected %#x in set", c)
		}
	}
	if x.Is('>') || x.Is('A') {
		t.Errorf("neighbours of the word boundary must not be set")
	}
}

func TestCharset_NonASCIIIgnored(t *testing.T) {
	x := NewCharset("\x80\xff").Set(0xC3).MergeRange(0x7e, 0xff)

	if !x.Is('~') || !x.Is(0x7f) {
		t.Errorf("expected 0x7e and 0x7f in set")
	}
	for i := 0x80; i < 256; i++ {
		if x.Is(byte(i)) {
			t.Errorf("non-ASCII %#x in set", i)
		}
	}
}

func TestCharset_MergeRange_Full(t *testing.T) {
	x := Charset{}.MergeRange(0, 255)

	for i := 0; i < 128; i++ {
		if !x.Is(byte(i)) {
			t.Errorf("expected %#x in set", i)
		}
	}
}

func TestCharset_Or(t *testing.T) {
	x := NewCharset("a").Or(NewCharset("~"))

	if !x.Is('a') || !x.Is('~') {
		t.Errorf("union lost a member")
	}
	if x.Is('b') {
		t.Errorf("union gained a member")
	}
}

func TestWiden(t *testing.T) {
	p := Widen(Unreserved, "/:é")

	for _, c := range []byte("/:aZ9-._~") {
		if !p(c) {
			t.Errorf("expected %q to be safe", c)
		}
	}
	for _, c := range []byte{'?', ' ', '%', 0xC3, 0xA9} {
		if p(c) {
			t.Errorf("expected %#x to be unsafe", c)
		}
	}
}

func TestWiden_NothingToAdd(t *testing.T) {
	p := Widen(Unreserved, "\xff")

	if p('/') {
		t.Errorf("expected '/' to stay unsafe")
	}
	if !p('a') {
		t.Errorf("expected 'a' to stay safe")
	}
}
