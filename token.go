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

import "strconv"

// A Kind identifies the type of a Token.
//
type Kind int8

// Token kinds. This is a closed set: Next never produces any other value.
//
const (
	Cell    Kind = iota // one field of a row, quoted or unquoted
	Newline             // row terminator: CR, LF or CRLF
	EOF                 // end of input
)

var kindNames = [...]string{
	Cell:    "Cell",
	Newline: "Newline",
	EOF:     "EOF",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// A Token is the unit of lexer output.
//
// Value is meaningful only when Kind is Cell. For Newline and EOF tokens it
// retains whatever bytes the last Cell left behind and must not be read.
//
// Value aliases a buffer owned by the Lexer or its Source and is only valid
// until the next call to Next or Rewind. Callers that need to keep a cell's
// contents must copy them before requesting the next token.
//
type Token struct {
	Kind  Kind
	Value []byte
}

// String returns a string representation of the token for debugging purposes.
// The output format is not guaranteed to be stable.
//
func (t Token) String() string {
	if t.Kind == Cell {
		return "Cell " + strconv.Quote(string(t.Value))
	}
	return t.Kind.String()
}
