// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package csvlex

import (
	"bufio"
	"errors"
	"io"
)

// NUL is the sentinel returned by a Source once the end of its input has
// been reached. Input text must not contain NUL bytes: a NUL in the input
// is indistinguishable from end of input and terminates the scan.
//
const NUL byte = 0

// ErrNoSeek is returned by ReaderSource.Rewind when the underlying
// io.Reader does not support Seek.
//
var ErrNoSeek = errors.New("io.Reader does not support Seek")

// A Source supplies input bytes to a Lexer one at a time. It decouples the
// state machine from how the input is physically stored or streamed.
//
// Implementations are not safe for concurrent use; each Lexer owns its
// Source exclusively.
//
type Source interface {
	// Cur returns the byte under the cursor without advancing, or NUL at
	// end of input.
	Cur() byte

	// Next advances the cursor by exactly one byte and returns the new
	// current byte. Once past the end of input it keeps returning NUL.
	Next() byte

	// ScanCell scans an unquoted cell: starting at the current byte, it
	// collects bytes up to but not including the next comma, CR, LF or
	// NUL, leaving that delimiter under the cursor. The returned slice is
	// only valid until the next call into the Source.
	ScanCell() []byte

	// Rewind resets the cursor to the start of the input, restoring the
	// Source to its as-constructed state.
	Rewind() error

	// Err returns the first I/O error encountered, if any. Sources over
	// in-memory input always return nil.
	Err() error
}

// StringSource is a Source over an in-memory string.
//
type StringSource struct {
	data []byte
	pos  int
}

// NewStringSource returns a StringSource reading from s.
//
func NewStringSource(s string) *StringSource {
	return &StringSource{data: []byte(s)}
}

// Cur implements Source.
//
func (s *StringSource) Cur() byte {
	if s.pos >= len(s.data) {
		return NUL
	}
	return s.data[s.pos]
}

// Next implements Source.
//
func (s *StringSource) Next() byte {
	if s.pos < len(s.data) {
		s.pos++
	}
	return s.Cur()
}

// ScanCell implements Source. The returned slice aliases the source's
// backing store: no copying takes place.
//
func (s *StringSource) ScanCell() []byte {
	start := s.pos
	for s.pos < len(s.data) {
		switch s.data[s.pos] {
		case ',', '\r', '\n', NUL:
			return s.data[start:s.pos]
		}
		s.pos++
	}
	return s.data[start:s.pos]
}

// Rewind implements Source. It always succeeds.
//
func (s *StringSource) Rewind() error {
	s.pos = 0
	return nil
}

// Err implements Source. It always returns nil.
//
func (s *StringSource) Err() error {
	return nil
}

// ReaderSource is a Source over a streaming io.Reader. Reads are buffered
// and the current byte acts as a one byte look-ahead over the stream.
//
// Rewind requires the underlying reader to implement io.Seeker.
//
type ReaderSource struct {
	r    io.Reader
	br   *bufio.Reader
	cur  byte
	done bool
	err  error  // sticky I/O error
	cell []byte // reusable unquoted cell buffer
}

// NewReaderSource returns a ReaderSource reading from r. The first byte of
// input is fetched immediately, so construction may block on r.
//
func NewReaderSource(r io.Reader) *ReaderSource {
	s := &ReaderSource{r: r, br: bufio.NewReader(r)}
	s.cur = s.read()
	return s
}

func (s *ReaderSource) read() byte {
	if s.done {
		return NUL
	}
	b, err := s.br.ReadByte()
	if err != nil || b == NUL {
		s.done = true
		if err != nil && err != io.EOF {
			s.err = err
		}
		return NUL
	}
	return b
}

// Cur implements Source.
//
func (s *ReaderSource) Cur() byte {
	return s.cur
}

// Next implements Source.
//
func (s *ReaderSource) Next() byte {
	s.cur = s.read()
	return s.cur
}

// ScanCell implements Source. Cell bytes are accumulated in an internal
// buffer that is reused across calls.
//
func (s *ReaderSource) ScanCell() []byte {
	buf := s.cell[:0]
	for c := s.cur; ; c = s.Next() {
		switch c {
		case NUL, ',', '\r', '\n':
			s.cell = buf
			return buf
		}
		buf = append(buf, c)
	}
}

// Rewind implements Source. If the underlying reader does not implement
// io.Seeker, Rewind returns ErrNoSeek and the source is left untouched.
//
func (s *ReaderSource) Rewind() error {
	rs, ok := s.r.(io.Seeker)
	if !ok {
		return ErrNoSeek
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return err
	}
	s.br.Reset(s.r)
	s.done = false
	s.err = nil
	s.cur = s.read()
	return nil
}

// Err implements Source.
//
func (s *ReaderSource) Err() error {
	return s.err
}
