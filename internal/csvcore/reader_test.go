package csvcore

import (
	"io"
	"strings"
	"testing"
)

func readAllStrings(t *testing.T, input string) [][]string {
	t.Helper()
	r := NewReader(strings.NewReader(input))
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		vals := make([]string, len(row))
		for j, f := range row {
			vals[j] = f.Value
		}
		out[i] = vals
	}
	return out
}

func TestRead_Simple(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]string
	}{
		{name: "single row single field", input: "hello\n", want: [][]string{{"hello"}}},
		{name: "single row multiple fields", input: "a,b,c\n", want: [][]string{{"a", "b", "c"}}},
		{name: "multiple rows", input: "a,b,c\n1,2,3\nx,y,z\n", want: [][]string{{"a", "b", "c"}, {"1", "2", "3"}, {"x", "y", "z"}}},
		{name: "no trailing newline", input: "a,b,c", want: [][]string{{"a", "b", "c"}}},
		{name: "crlf line endings", input: "a,b\r\n1,2\r\n", want: [][]string{{"a", "b"}, {"1", "2"}}},
		{name: "bare cr line ending", input: "a,b\r1,2\r", want: [][]string{{"a", "b"}, {"1", "2"}}},
		{name: "empty input", input: "", want: nil},
		{name: "header only", input: "a,b,c\n", want: [][]string{{"a", "b", "c"}}},
		{name: "trailing blank line is not a row", input: "a,b\n1,2\n\n", want: [][]string{{"a", "b"}, {"1", "2"}}},
		{name: "blank line mid-file is a row", input: "a\n\nb\n", want: [][]string{{"a"}, {""}, {"b"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := readAllStrings(t, tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v rows, want %v (got=%v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if len(got[i]) != len(tt.want[i]) {
					t.Fatalf("row %d: got %v, want %v", i, got[i], tt.want[i])
				}
				for j := range got[i] {
					if got[i][j] != tt.want[i][j] {
						t.Errorf("row %d field %d: got %q, want %q", i, j, got[i][j], tt.want[i][j])
					}
				}
			}
		})
	}
}

func TestRead_Quoted(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple quoted field", input: `"hello"` + "\n", want: "hello"},
		{name: "quoted field with comma", input: `"a,b"` + "\n", want: "a,b"},
		{name: "quoted field with doubled quote", input: `"say ""hi"""` + "\n", want: `say "hi"`},
		{name: "quoted field with embedded newline", input: "\"a\nb\"\n", want: "a\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := readAllStrings(t, tt.input)
			if len(rows) != 1 || len(rows[0]) != 1 {
				t.Fatalf("unexpected shape: %v", rows)
			}
			if rows[0][0] != tt.want {
				t.Errorf("got %q, want %q", rows[0][0], tt.want)
			}
		})
	}
}

func TestRead_UnterminatedQuoteFails(t *testing.T) {
	r := NewReader(strings.NewReader(`"unterminated`))
	_, err := r.Read()
	if err == nil {
		t.Fatal("expected an error for an unterminated quoted field")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("got error of type %T, want *ParseError", err)
	}
	if pe.Err != ErrQuote {
		t.Errorf("got underlying error %v, want ErrQuote", pe.Err)
	}
}

func TestRead_BareQuoteFails(t *testing.T) {
	r := NewReader(strings.NewReader(`a"b,c`))
	_, err := r.Read()
	if err == nil {
		t.Fatal("expected an error for a bare quote in an unquoted field")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("got error of type %T, want *ParseError", err)
	}
	if pe.Err != ErrBareQuote {
		t.Errorf("got underlying error %v, want ErrBareQuote", pe.Err)
	}
}

func TestRead_LazyQuotes(t *testing.T) {
	r := NewReader(strings.NewReader(`a"b,c` + "\n"))
	r.LazyQuotes = true
	row, err := r.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if row[0].Value != `a"b` {
		t.Errorf("got %q, want `a\"b`", row[0].Value)
	}
}

func TestRead_TrimPolicy(t *testing.T) {
	r := NewReader(strings.NewReader("  a  , b\n"))
	r.Trim = TrimAll
	row, err := r.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if row[0].Value != "a" || row[1].Value != "b" {
		t.Errorf("got %q, want trimmed fields", row)
	}
}

func TestRead_TrimNeverAffectsQuotedContent(t *testing.T) {
	r := NewReader(strings.NewReader(`"  a  "` + "\n"))
	r.Trim = TrimAll
	row, err := r.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if row[0].Value != "  a  " {
		t.Errorf("trim policy altered quoted content: got %q", row[0].Value)
	}
}

func TestReader_SkipRows(t *testing.T) {
	r := NewReader(strings.NewReader("skip1\nskip2\na,b\n1,2\n"))
	if err := r.SkipRows(2); err != nil {
		t.Fatalf("SkipRows() error = %v", err)
	}
	row, err := r.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if row[0].Value != "a" || row[1].Value != "b" {
		t.Errorf("got %v after skip", row)
	}
}

func TestReader_RunRows_StopIteration(t *testing.T) {
	r := NewReader(strings.NewReader("a\nb\nc\n"))
	var seen []string
	err := r.RunRows(func(row Row) error {
		seen = append(seen, row[0].Value)
		if row[0].Value == "b" {
			return ErrStopIteration
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunRows() error = %v", err)
	}
	if len(seen) != 2 {
		t.Fatalf("got %v, want 2 rows visited before stopping", seen)
	}
}

func TestRead_EmptyStreamReturnsEOF(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	_, err := r.Read()
	if err != io.EOF {
		t.Fatalf("got %v, want io.EOF", err)
	}
}
