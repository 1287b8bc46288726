package urlenc

import (
	"fmt"
	"io"
)

// Encoded wraps data that is percent-encoded only when it is rendered.
// Holding an Encoded costs nothing; each method encodes on the fly.
//
// Example:
//
//	fmt.Printf("https://example.com/?q=%s\n", urlenc.Encoded("a&b"))
type Encoded []byte

// EncodedString wraps s without copying it.
func EncodedString(s string) Encoded {
	return Encoded(stringBytes(s))
}

// Str returns the encoded form. If nothing needs escaping the result
// shares memory with e.
func (e Encoded) Str() string {
	return encodeString(e, Unreserved)
}

// String returns the encoded form as a newly allocated string.
func (e Encoded) String() string {
	return string(e.AppendTo(make([]byte, 0, len(e)|15)))
}

// AppendTo appends the encoded form to dst.
func (e Encoded) AppendTo(dst []byte) []byte {
	return AppendEncodeFunc(dst, e, Unreserved)
}

// AppendText implements encoding.TextAppender.
func (e Encoded) AppendText(dst []byte) ([]byte, error) {
	return e.AppendTo(dst), nil
}

// MarshalText implements encoding.TextMarshaler.
func (e Encoded) MarshalText() ([]byte, error) {
	return e.AppendText(nil)
}

// WriteTo writes the encoded form to w chunk by chunk.
// It implements io.WriterTo. Errors from w are returned as is.
func (e Encoded) WriteTo(w io.Writer) (n int64, err error) {
	_, err = encodeInto(e, false, Unreserved, func(p []byte) error {
		m, err := w.Write(p)
		n += int64(m)
		if err == nil && m < len(p) {
			err = io.ErrShortWrite
		}

		return err
	})

	return n, err
}

// Format implements fmt.Formatter. The %s and %v verbs without width or
// precision stream the encoded form into the formatter. Other verbs format
// the encoded string as fmt would.
func (e Encoded) Format(f fmt.State, verb rune) {
	_, wok := f.Width()
	_, pok := f.Precision()

	if (verb == 's' || verb == 'v') && !wok && !pok && !f.Flag('#') {
		_, _ = e.WriteTo(f)
		return
	}

	fmt.Fprintf(f, fmt.FormatString(f, verb), e.String())
}
