package core

// streaming.go wraps raw input files before they reach encoding/csv:
//
//   - the UTF-8 byte order mark written by Windows tools is dropped
//   - invalid UTF-8 bytes are replaced with '?'
//   - bytes read are counted for load logging
//
// Use WrapInput to apply all three in the correct order.

import (
	"bufio"
	"bytes"
	"io"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SanitizingReader strips a leading BOM and replaces invalid UTF-8 bytes.
type SanitizingReader struct {
	br         *bufio.Reader
	bomChecked bool
	pending    []byte // rest of a rune that did not fit the caller's buffer
	runeBuf    [utf8.UTFMax]byte
}

// NewSanitizingReader creates a new sanitizing reader over r.
func NewSanitizingReader(r io.Reader) *SanitizingReader {
	return &SanitizingReader{br: bufio.NewReader(r)}
}

// Read implements io.Reader. A multi-byte rune is only split across calls
// when p is too small to hold it.
func (s *SanitizingReader) Read(p []byte) (int, error) {
	if !s.bomChecked {
		s.bomChecked = true
		if head, _ := s.br.Peek(len(utf8BOM)); bytes.Equal(head, utf8BOM) {
			if _, err := s.br.Discard(len(utf8BOM)); err != nil {
				return 0, err
			}
		}
	}

	n := copy(p, s.pending)
	s.pending = s.pending[n:]
	for n < len(p) {
		r, size, err := s.br.ReadRune()
		if err != nil {
			if n > 0 && err == io.EOF {
				return n, nil
			}
			return n, err
		}

		if r == utf8.RuneError && size == 1 {
			p[n] = '?'
			n++
			continue
		}

		if n+size > len(p) {
			if n > 0 {
				_ = s.br.UnreadRune()
				break
			}
			// p cannot hold the rune at all: emit what fits, keep the rest.
			enc := s.runeBuf[:utf8.EncodeRune(s.runeBuf[:], r)]
			n = copy(p, enc)
			s.pending = enc[n:]
			break
		}
		n += utf8.EncodeRune(p[n:], r)
	}
	return n, nil
}

// CountingReader wraps an io.Reader to track bytes read.
type CountingReader struct {
	reader    io.Reader
	BytesRead int64
}

// NewCountingReader creates a counting reader.
func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{reader: r}
}

// Read implements io.Reader.
func (r *CountingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	return n, err
}

// WrapInput counts raw bytes and sanitizes them for the CSV parser.
// The counter sits below the sanitizer so it reports on-disk size.
func WrapInput(r io.Reader) (io.Reader, *CountingReader) {
	counter := NewCountingReader(r)
	return NewSanitizingReader(counter), counter
}
