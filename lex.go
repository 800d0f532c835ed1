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
	"fmt"
	"io"
)

// Position describes a source position as a 1-based line and byte column.
// A line terminator ends at column 0 of the following line.
//
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// A SyntaxError reports malformed CSV input together with the position at
// which scanning failed.
//
type SyntaxError struct {
	Msg    string
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: malformed csv: %s", e.Line, e.Column, e.Msg)
}

// A Lexer holds the tokenizer state while processing a given input. A new
// Lexer must be created for every input to be tokenized; Rewind allows
// re-scanning the same input from the start.
//
// A Lexer is not safe for concurrent use. Concurrent tokenization requires
// one Lexer per goroutine, each with its own Source.
//
type Lexer struct {
	src     Source
	tok     Token
	scratch []byte // quoted cell unescaping buffer
	line    int
	col     int
	pending bool // next call must yield an empty Cell without reading input
}

// New creates a Lexer reading from the given Source.
//
func New(src Source) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// NewString creates a Lexer over an in-memory string.
//
func NewString(s string) *Lexer {
	return New(NewStringSource(s))
}

// NewReader creates a Lexer over a streaming reader.
//
func NewReader(r io.Reader) *Lexer {
	return New(NewReaderSource(r))
}

// Next returns the next token. The token sequence for any input terminates
// in exactly one EOF token; calling Next again after EOF keeps returning
// EOF until Rewind is called.
//
// The returned token's Value is only valid until the next call to Next or
// Rewind; see Token.
//
// Next returns a *SyntaxError for malformed input, or the underlying I/O
// error if the Source failed. After a non-nil error the lexer is left at
// the point of failure: callers must Rewind or discard it, the behavior of
// further calls is unspecified.
//
func (l *Lexer) Next() (Token, error) {
	if l.pending {
		l.pending = false
		l.tok.Kind = Cell
		l.tok.Value = l.tok.Value[:0]
		return l.tok, nil
	}
	switch c := l.src.Cur(); c {
	case NUL:
		return l.eof()
	case ',':
		l.tok.Kind = Cell
		l.tok.Value = l.tok.Value[:0]
		l.lookAhead()
	case '\r':
		if c = l.next(); c == '\n' {
			c = l.next()
		}
		// a lone CR is a full line terminator
		if c == NUL {
			return l.eof()
		}
		l.tok.Kind = Newline
	case '\n':
		if l.next() == NUL {
			return l.eof()
		}
		l.tok.Kind = Newline
	case '"':
		v, err := l.scanQuoted()
		if err != nil {
			return Token{}, err
		}
		l.tok.Kind = Cell
		l.tok.Value = v
	default:
		v := l.src.ScanCell()
		l.col += len(v)
		if l.src.Cur() == ',' {
			l.lookAhead()
		}
		l.tok.Kind = Cell
		l.tok.Value = v
	}
	return l.tok, nil
}

// Rewind resets the Source to its origin and the position counters to 1:1,
// clearing any pending empty cell. The scratch buffer keeps its capacity.
//
func (l *Lexer) Rewind() error {
	if err := l.src.Rewind(); err != nil {
		return err
	}
	l.line, l.col = 1, 1
	l.pending = false
	return nil
}

// Token returns the most recently produced token.
//
func (l *Lexer) Token() Token {
	return l.tok
}

// Pos returns the current position of the lexer within its input.
//
func (l *Lexer) Pos() Position {
	return Position{Line: l.line, Column: l.col}
}

// next advances the source by one byte, keeping the line and column
// counters in step with the byte being consumed. Advancing past the end of
// input leaves the counters untouched.
//
func (l *Lexer) next() byte {
	switch l.src.Cur() {
	case NUL:
		return l.src.Next()
	case '\r', '\n':
		l.line++
		l.col = 0
	default:
		l.col++
	}
	return l.src.Next()
}

// eof emits the EOF token, or surfaces the Source's I/O error if input
// ended because a read failed.
//
func (l *Lexer) eof() (Token, error) {
	if err := l.src.Err(); err != nil {
		return Token{}, err
	}
	l.tok.Kind = EOF
	return l.tok, nil
}

// lookAhead consumes the comma under the cursor and checks whether it is
// the last delimiter before a row terminator or end of input. If so, CSV
// semantics require one extra empty trailing cell, which the following
// call to Next surfaces via the pending flag.
//
func (l *Lexer) lookAhead() {
	switch l.next() {
	case NUL, '\r', '\n':
		l.pending = true
	}
}

// scanQuoted scans a quoted cell. On entry the cursor is on the opening
// quote. The unescaped cell contents accumulate in the scratch buffer,
// with doubled quotes collapsed to a single literal quote.
//
func (l *Lexer) scanQuoted() ([]byte, error) {
	buf := l.scratch[:0]
	for {
		c := l.next()
		switch c {
		case NUL:
			if err := l.src.Err(); err != nil {
				return nil, err
			}
			return nil, l.syntaxError("unclosed quote")
		case '"':
			switch c = l.next(); c {
			case ',':
				l.lookAhead()
				l.scratch = buf
				return buf, nil
			case '\r', '\n', NUL:
				// the terminator stays under the cursor for the next call;
				// end of input right after the closing quote is valid.
				l.scratch = buf
				return buf, nil
			case '"':
				buf = append(buf, '"')
			default:
				return nil, l.syntaxError("expecting comma, newline or end")
			}
		default:
			buf = append(buf, c)
		}
	}
}

func (l *Lexer) syntaxError(msg string) *SyntaxError {
	return &SyntaxError{Msg: msg, Line: l.line, Column: l.col}
}
