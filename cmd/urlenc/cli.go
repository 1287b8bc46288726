package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prodbyola/urlencoding/pkg/urlenc"
)

const (
	// Read size for streaming stdin through the encoder
	chunkSize = 32 * 1024

	// Longest line accepted in --lines mode (1MB)
	maxLineLength = 1024 * 1024
)

// CLI is the urlenc command line.
type CLI struct {
	Verbose   int      `help:"Increase log verbosity (-v info, -vv debug)." short:"v" type:"counter"`
	Config    []string `help:"Config files or glob patterns (yaml, json, cue). Later files must agree with earlier ones." short:"c" placeholder:"PATH" env:"URLENC_CONFIG"`
	Exclude   string   `help:"Extra characters to leave unescaped, e.g. '/:'." short:"x" placeholder:"CHARS"`
	Lines     bool     `help:"Encode stdin one line at a time." short:"l"`
	NoNewline bool     `help:"Do not print a newline after each encoded argument." short:"n"`
	Args      []string `arg:"" optional:"" help:"Strings to encode. Reads stdin when none are given."`

	stdin  io.Reader
	stdout io.Writer
}

func (c *CLI) Run(logger *slog.Logger) error {
	s, err := c.resolve(logger)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(c.out())

	switch {
	case len(c.Args) > 0:
		err = encodeArgs(out, c.Args, s)
	case s.lines:
		logger.Info("encoding stdin by line")
		err = encodeLines(out, c.in(), s, logger)
	default:
		logger.Info("encoding stdin")
		err = encodeStream(out, c.in(), s, logger)
	}
	if err != nil {
		return err
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func (c *CLI) in() io.Reader {
	if c.stdin == nil {
		return os.Stdin
	}
	return c.stdin
}

func (c *CLI) out() io.Writer {
	if c.stdout == nil {
		return os.Stdout
	}
	return c.stdout
}

// encodeArgs encodes each argument to a string and prints it.
func encodeArgs(w *bufio.Writer, args []string, s settings) error {
	for _, arg := range args {
		if _, err := w.WriteString(urlenc.EncodeExclude(arg, s.exclude)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if s.newline {
			if err := w.WriteByte('\n'); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}

	return nil
}

// encodeLines encodes each line of r separately, reusing one buffer.
// Line terminators are not encoded.
func encodeLines(w *bufio.Writer, r io.Reader, s settings, logger *slog.Logger) error {
	safe := urlenc.Widen(urlenc.Unreserved, s.exclude)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, chunkSize), maxLineLength)

	var buf []byte
	lines := 0

	for scanner.Scan() {
		buf = urlenc.AppendEncodeFunc(buf[:0], scanner.Bytes(), safe)
		buf = append(buf, '\n')

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("line %d exceeds %d bytes: %w", lines+1, maxLineLength, err)
		}
		return fmt.Errorf("failed to read input: %w", err)
	}

	logger.Debug("encoded lines", slog.Int("lines", lines))

	return nil
}

// encodeStream copies r through an Encoder in fixed-size chunks. Every
// byte is encoded, newlines included.
func encodeStream(w *bufio.Writer, r io.Reader, s settings, logger *slog.Logger) error {
	enc := urlenc.NewEncoder(w, urlenc.Exclude(s.exclude))

	chunk := make([]byte, chunkSize)
	total := 0

	for {
		n, err := r.Read(chunk)
		if n > 0 {
			if werr := enc.Encode(chunk[:n]); werr != nil {
				return fmt.Errorf("failed to write output: %w", werr)
			}
			total += n
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	}

	if s.newline && total > 0 {
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	logger.Debug("encoded stream", slog.Int("bytes", total))

	return nil
}
