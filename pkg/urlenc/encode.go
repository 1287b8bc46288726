package urlenc

import (
	"unicode/utf8"
	"unsafe"
)

// escapes holds "%XX" for every byte value.
var escapes [256][3]byte

func init() {
	for i := range escapes {
		escapes[i] = [3]byte{'%', hexDigit(byte(i) >> 4), hexDigit(byte(i) & 15)}
	}
}

func hexDigit(v byte) byte {
	if v < 10 {
		return '0' + v
	}

	return 'A' - 10 + v
}

// Encode percent-encodes s, leaving only unreserved characters as they are.
//
// If nothing needs escaping s itself is returned and nothing is allocated.
//
// Example:
//
//	urlenc.Encode("hello!") // "hello%21"
func Encode(s string) string {
	return EncodeFunc(s, Unreserved)
}

// EncodeExclude is like Encode but also leaves the ASCII characters of
// exclude unescaped.
//
// Example:
//
//	urlenc.EncodeExclude("/path/to/resource", "/") // "/path/to/resource"
func EncodeExclude(s, exclude string) string {
	return EncodeFunc(s, Widen(Unreserved, exclude))
}

// EncodeFunc percent-encodes s, leaving bytes accepted by safe unescaped.
// Bytes at or above 0x80 are always escaped. A nil safe means Unreserved.
func EncodeFunc(s string, safe Predicate) string {
	return encodeString(stringBytes(s), safe)
}

// EncodeBinary percent-encodes arbitrary bytes.
//
// If nothing needs escaping the result shares memory with b.
// b must not be modified while the result is in use.
func EncodeBinary(b []byte) string {
	return encodeString(b, Unreserved)
}

// AppendEncode appends the percent-encoded form of src to dst
// and returns the extended buffer.
func AppendEncode(dst, src []byte) []byte {
	return AppendEncodeFunc(dst, src, Unreserved)
}

// AppendEncodeFunc is like AppendEncode but leaves bytes accepted by safe
// unescaped.
func AppendEncodeFunc(dst, src []byte, safe Predicate) []byte {
	if safe == nil {
		safe = Unreserved
	}

	_, _ = encodeInto(src, false, safe, func(p []byte) error {
		dst = append(dst, p...)
		return nil
	})

	return dst
}

func encodeString(data []byte, safe Predicate) string {
	if safe == nil {
		safe = Unreserved
	}

	var buf []byte

	unchanged, _ := encodeInto(data, true, safe, func(p []byte) error {
		if buf == nil {
			// len|15 lands just under a 16-byte size class
			buf = make([]byte, 0, len(data)|15)
		}

		buf = append(buf, p...)
		return nil
	})
	if unchanged {
		// every byte passed the ASCII check in encodeInto
		return bytesString(data)
	}

	return bytesString(buf)
}

// encodeInto calls emit for every output chunk: a run of safe bytes or
// a single "%XX" escape. If maySkip is set and data needs no escaping
// emit is never called and unchanged is true.
func encodeInto(data []byte, maySkip bool, safe Predicate, emit func([]byte) error) (unchanged bool, err error) {
	pushed := false

	for {
		n := safeRun(data, safe)

		if n == len(data) && !pushed && maySkip {
			return true, nil
		}

		pushed = true

		if n != 0 {
			if err = emit(data[:n]); err != nil {
				return false, err
			}
		}

		if n == len(data) {
			return false, nil
		}

		if err = emit(escapes[data[n]][:]); err != nil {
			return false, err
		}

		data = data[n+1:]
	}
}

func safeRun(data []byte, safe Predicate) (n int) {
	for n < len(data) && data[n] < utf8.RuneSelf && safe(data[n]) {
		n++
	}

	return n
}

func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func bytesString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
