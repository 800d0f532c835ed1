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

/*
Package csvlex provides a pull-based, allocation-minimizing tokenizer for
CSV text per RFC 4180 conventions: comma delimiter, double-quote quoting
with doubled-quote escapes, and CR, LF or CRLF row terminators.

The tokenizer converts raw CSV text into a flat stream of tokens — Cell,
Newline and EOF — without materializing rows or records. It is intended to
be driven one token at a time by a higher-level reader:

	l := csvlex.NewString("a,b\nc")
	for {
		tok, err := l.Next()
		if err != nil {
			// *SyntaxError with line and column, or an I/O error
		}
		if tok.Kind == csvlex.EOF {
			break
		}
		// ...
	}

Character sources

Input bytes are supplied through the Source interface, which decouples the
state machine from how the input is stored: StringSource serves an
in-memory string by indexing, ReaderSource streams from an io.Reader with
one byte of look-ahead. The Lexer holds its Source polymorphically and
behaves identically over both.

Implementation details

Tokenization is synchronous: each call to Next runs the state machine to
completion and returns. There is no goroutine and no channel between the
lexer and its caller. Asynchronous emission would buy nothing here since
every call produces exactly one token; what it would cost is an allocation
or a synchronization point per token.

For the same reason the Lexer reuses a single Token value instead of
allocating one per call. The price of that reuse is an aliasing contract:
a token's Value is only valid until the next call to Next or Rewind, so
callers that keep cell contents around must copy them. Unquoted cells
scanned from a StringSource are subslices of the input and involve no
copying at all; quoted cells are unescaped into a scratch buffer that is
reused across calls.

The only lookahead beyond the current byte is a single deferred flag used
to surface the trailing empty cell that CSV semantics require when a comma
is immediately followed by a row terminator or end of input ("a," is two
cells, "a" and an empty one).

Positions are tracked as 1-based line and byte column and serve only to
annotate errors. Malformed input — an unclosed quote, or a stray character
after a closing quote — is always fatal to the current scan: Next returns
a *SyntaxError and the lexer must be Rewind-ed or discarded.

The tokenizer operates on bytes. All structural characters are ASCII and
cell content is passed through verbatim, so UTF-8 input round-trips
unchanged. NUL (0x00) is reserved as the end-of-input sentinel and must
not appear in the input.
*/
package csvlex
