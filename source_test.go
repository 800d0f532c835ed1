package csvlex_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/db47h/csvlex"
)

// nonSeeker hides the Seek method of its underlying reader.
type nonSeeker struct {
	io.Reader
}

// errReader fails every Read with a fixed error.
type errReader struct {
	err error
}

func (r errReader) Read([]byte) (int, error) {
	return 0, r.err
}

func TestSource_Contract(t *testing.T) {
	mks := []struct {
		name string
		mk   func(string) csvlex.Source
	}{
		{"string", func(s string) csvlex.Source { return csvlex.NewStringSource(s) }},
		{"reader", func(s string) csvlex.Source { return csvlex.NewReaderSource(strings.NewReader(s)) }},
	}
	for _, m := range mks {
		t.Run(m.name, func(t *testing.T) {
			src := m.mk("ab")
			if c := src.Cur(); c != 'a' {
				t.Fatalf("Cur at start: got %q, expected 'a'", c)
			}
			if c := src.Cur(); c != 'a' {
				t.Fatalf("Cur must not advance: got %q", c)
			}
			if c := src.Next(); c != 'b' {
				t.Fatalf("Next: got %q, expected 'b'", c)
			}
			// idempotence past the end
			for i := 0; i < 3; i++ {
				if c := src.Next(); c != csvlex.NUL {
					t.Fatalf("Next past end: got %q, expected NUL", c)
				}
				if c := src.Cur(); c != csvlex.NUL {
					t.Fatalf("Cur past end: got %q, expected NUL", c)
				}
			}
			if err := src.Err(); err != nil {
				t.Fatalf("Err: got %v, expected nil", err)
			}
			// rewind restores the as-constructed state
			if err := src.Rewind(); err != nil {
				t.Fatal(err)
			}
			if c := src.Cur(); c != 'a' {
				t.Fatalf("Cur after Rewind: got %q, expected 'a'", c)
			}
		})
	}
}

func TestSource_ScanCell(t *testing.T) {
	data := []struct {
		name  string
		input string
		cell  string
		stop  byte // byte left under the cursor
	}{
		{"to comma", "abc,d", "abc", ','},
		{"to lf", "abc\nd", "abc", '\n'},
		{"to cr", "abc\rd", "abc", '\r'},
		{"to end", "abc", "abc", csvlex.NUL},
		{"quote is content", `a"b,c`, `a"b`, ','},
		{"empty at delimiter", ",x", "", ','},
	}
	mks := []struct {
		name string
		mk   func(string) csvlex.Source
	}{
		{"string", func(s string) csvlex.Source { return csvlex.NewStringSource(s) }},
		{"reader", func(s string) csvlex.Source { return csvlex.NewReaderSource(strings.NewReader(s)) }},
	}
	for _, m := range mks {
		for _, td := range data {
			t.Run(m.name+"/"+td.name, func(t *testing.T) {
				src := m.mk(td.input)
				if got := string(src.ScanCell()); got != td.cell {
					t.Errorf("got %q, expected %q", got, td.cell)
				}
				if c := src.Cur(); c != td.stop {
					t.Errorf("cursor on %q, expected %q", c, td.stop)
				}
			})
		}
	}
}

func TestReaderSource_RewindNoSeek(t *testing.T) {
	src := csvlex.NewReaderSource(nonSeeker{strings.NewReader("a,b")})
	if c := src.Cur(); c != 'a' {
		t.Fatalf("Cur: got %q, expected 'a'", c)
	}
	if err := src.Rewind(); err != csvlex.ErrNoSeek {
		t.Fatalf("Rewind: got %v, expected ErrNoSeek", err)
	}
	// a failed Rewind must leave the source usable
	if c := src.Cur(); c != 'a' {
		t.Fatalf("Cur after failed Rewind: got %q, expected 'a'", c)
	}
}

func TestReaderSource_Err(t *testing.T) {
	errBoom := errors.New("boom")

	// the error hits after two good bytes: the unquoted scan still yields
	// the cell, the error surfaces on the next call.
	l := csvlex.NewReader(io.MultiReader(strings.NewReader("ab"), errReader{errBoom}))
	tok, err := l.Next()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Kind != csvlex.Cell || string(tok.Value) != "ab" {
		t.Fatalf("got %s, expected Cell \"ab\"", tok)
	}
	if _, err = l.Next(); err != errBoom {
		t.Fatalf("got %v, expected boom", err)
	}

	// inside a quoted cell the I/O error takes precedence over the
	// unclosed quote diagnostic.
	l = csvlex.NewReader(io.MultiReader(strings.NewReader(`"ab`), errReader{errBoom}))
	if _, err = l.Next(); err != errBoom {
		t.Fatalf("quoted: got %v, expected boom", err)
	}
}

func TestReaderSource_LexAndRewind(t *testing.T) {
	// strings.Reader is seekable, so a full Rewind round trip must work
	// through the streaming source as well.
	l := csvlex.NewReader(strings.NewReader("a,b\nc,"))
	want := []string{`Cell "a"`, `Cell "b"`, `Newline`, `Cell "c"`, `Cell ""`, `EOF`}
	for run := 0; run < 2; run++ {
		for i, w := range want {
			tok, err := l.Next()
			if err != nil {
				t.Fatal(err)
			}
			if got := tok.String(); got != w {
				t.Errorf("run %d, token %d: got %s, expected %s", run, i, got, w)
			}
		}
		if err := l.Rewind(); err != nil {
			t.Fatal(err)
		}
	}
}
