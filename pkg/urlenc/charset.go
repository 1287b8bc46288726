package urlenc

import "unicode/utf8"

// Predicate reports whether c may be written without escaping.
type Predicate func(c byte) bool

// Charset is a set of ASCII bytes. The zero value is the empty set.
// Bytes at or above 0x80 are never members.
type Charset [2]uint64

var unreserved = NewCharset("-._~").
	MergeRange('0', '9').
	MergeRange('A', 'Z').
	MergeRange('a', 'z')

// Unreserved is the default Predicate. It accepts ASCII letters, digits
// and '-', '.', '_', '~'.
func Unreserved(c byte) bool {
	return unreserved.Is(c)
}

// Widen returns a Predicate accepting everything p accepts plus the ASCII
// bytes of chars. Non-ASCII bytes in chars are ignored. A nil p means
// Unreserved.
//
// Example:
//
//	safe := urlenc.Widen(urlenc.Unreserved, "/:")
func Widen(p Predicate, chars string) Predicate {
	if p == nil {
		p = Unreserved
	}

	extra := NewCharset(chars)
	if extra == (Charset{}) {
		return p
	}

	return func(c byte) bool {
		return extra.Is(c) || p(c)
	}
}

// NewCharset returns the set of ASCII bytes in s.
func NewCharset(s string) (x Charset) {
	return x.Merge(s)
}

func (x Charset) Is(c byte) bool {
	if c >= utf8.RuneSelf {
		return false
	}

	return x[c>>6]&(1<<(c&63)) != 0
}

func (x Charset) Set(c byte) Charset {
	if c >= utf8.RuneSelf {
		return x
	}

	x[c>>6] |= 1 << (c & 63)

	return x
}

func (x Charset) Merge(s string) Charset {
	for i := 0; i < len(s); i++ {
		x = x.Set(s[i])
	}

	return x
}

// MergeRange adds every byte in [a, b].
func (x Charset) MergeRange(a, b byte) Charset {
	for c := int(a); c <= int(b); c++ {
		x = x.Set(byte(c))
	}

	return x
}

func (x Charset) Or(y Charset) Charset {
	x[0] |= y[0]
	x[1] |= y[1]

	return x
}

// Predicate returns x as a Predicate.
func (x Charset) Predicate() Predicate {
	return x.Is
}
