package urlenc

import "io"

// Encoder writes percent-encoded data to an io.Writer.
//
// Writes are unbuffered: every safe run and every escape is a separate
// Write call. Wrap the destination in a bufio.Writer for streams:
//
//	enc := urlenc.NewEncoder(bufio.NewWriter(conn))
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	w    io.Writer
	safe Predicate
}

// NewEncoder creates a new encoder that writes to w.
//
// By default only unreserved characters are left as they are.
// Options widen or replace the safe set:
//
//	enc := urlenc.NewEncoder(w, urlenc.Exclude("/:"))
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	cfg := &config{
		safe: Unreserved,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	safe := cfg.safe
	if cfg.exclude != "" {
		safe = Widen(safe, cfg.exclude)
	}

	return &Encoder{
		w:    w,
		safe: safe,
	}
}

// Encode writes the percent-encoded form of data.
//
// Errors returned by the underlying writer are returned as is. Output
// written before the error stays written.
//
// Example:
//
//	enc.Encode([]byte("<tag>")) // writes "%3C", "tag", "%3E"
func (e *Encoder) Encode(data []byte) error {
	_, err := encodeInto(data, false, e.safe, e.write)
	return err
}

// EncodeString is a convenience method that encodes a string.
func (e *Encoder) EncodeString(s string) error {
	return e.Encode(stringBytes(s))
}

func (e *Encoder) write(p []byte) error {
	n, err := e.w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}

	return err
}
