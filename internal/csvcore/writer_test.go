package csvcore

import (
	"bytes"
	"testing"
)

func TestWriter_PlainFields(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteStrings([]string{"a", "b", "c"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if buf.String() != "a,b,c\n" {
		t.Errorf("got %q, want %q", buf.String(), "a,b,c\n")
	}
}

func TestWriter_QuotesFieldsContainingDelimiter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	_ = w.WriteStrings([]string{"a,b", "c"})
	_ = w.Flush()
	if buf.String() != "\"a,b\",c\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestWriter_EscapesEmbeddedQuotes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	_ = w.WriteStrings([]string{`say "hi"`})
	_ = w.Flush()
	if buf.String() != "\"say \"\"hi\"\"\"\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestWriter_CRLFLineEnding(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.UseCRLF = true
	_ = w.WriteStrings([]string{"a", "b"})
	_ = w.Flush()
	if buf.String() != "a,b\r\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestWriter_PreservesReaderQuotedProvenance(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	row := Row{{Value: "5", Quoted: true}, {Value: "plain"}}
	_ = w.Write(row)
	_ = w.Flush()
	if buf.String() != "\"5\",plain\n" {
		t.Errorf("got %q, want the quoted-in-source field to stay quoted", buf.String())
	}
}

func TestWriter_RoundTripThroughReader(t *testing.T) {
	input := "a,\"b,c\",\"d\"\"e\"\n1,2,3\n"
	r := NewReader(bytes.NewReader([]byte(input)))
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	r2 := NewReader(bytes.NewReader(buf.Bytes()))
	rows2, err := r2.ReadAll()
	if err != nil {
		t.Fatalf("re-parsing the written output failed: %v", err)
	}
	if len(rows2) != len(rows) {
		t.Fatalf("got %d rows after round trip, want %d", len(rows2), len(rows))
	}
	for i := range rows {
		for j := range rows[i] {
			if rows[i][j].Value != rows2[i][j].Value {
				t.Errorf("row %d field %d: got %q, want %q", i, j, rows2[i][j].Value, rows[i][j].Value)
			}
		}
	}
}
