package csvlex

import (
	"strings"
	"testing"
)

const benchRow = "alpha,beta,\"ga,mma\",delta,\r\n"

// loopReader serves the same CSV row over and over.
type loopReader struct {
	data []byte
	pos  int
}

func (r *loopReader) Read(p []byte) (int, error) {
	n := copy(p, r.data[r.pos:])
	r.pos = (r.pos + n) % len(r.data)
	return n, nil
}

func BenchmarkLexer_Reader(b *testing.B) {
	l := NewReader(&loopReader{data: []byte(benchRow)})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := l.Next(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLexer_String(b *testing.B) {
	l := NewString(strings.Repeat(benchRow, 1024))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tok, err := l.Next()
		if err != nil {
			b.Fatal(err)
		}
		if tok.Kind == EOF {
			if err = l.Rewind(); err != nil {
				b.Fatal(err)
			}
		}
	}
}
