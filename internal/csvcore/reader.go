package csvcore

import (
	"bufio"
	"io"
)

// Field is one cell as tokenized off the wire: its unescaped text and
// whether the source delimited it with quotes. Quoting is carried forward
// because it changes how a TypedCell interprets the value (§3, invariant 2).
type Field struct {
	Value  string
	Quoted bool
}

// Row is one tokenized record.
type Row []Field

// ErrStopIteration is the sentinel a RunRows visitor returns to request
// early termination without it being treated as a failure (§4.1).
var ErrStopIteration = &stopIteration{}

type stopIteration struct{}

func (*stopIteration) Error() string { return "csvcore: iteration stopped" }

// Reader is the CSV tokenizer (§4.1). It produces a stream of Rows from a
// byte stream, honoring RFC-4180 quoting, a configurable delimiter, and a
// TrimPolicy applied to unquoted fields.
//
// Reader's shape — exported policy fields plus an unexported mutable
// scanning state — follows the teacher's separation of "what to parse" from
// "how": compare Reader.Comma/LazyQuotes (policy) against the teacher's
// identically named fields in reader.go, and Reader.line/col (mechanism)
// against the teacher's readerState.
type Reader struct {
	// Comma is the field delimiter. NewReader sets it to ','.
	Comma rune
	// LazyQuotes relaxes quote-structure validation: a quote may appear in
	// an unquoted field, and a non-doubled quote may appear in a quoted one.
	LazyQuotes bool
	// Trim selects how unquoted field bytes are stripped before they reach
	// the caller. Quoted content is never affected.
	Trim TrimPolicy

	br   *bufio.Reader
	line int // 1-indexed line of the byte about to be read
	col  int // 1-indexed column (byte offset within the line) about to be read
	eof  bool
}

// NewReader returns a Reader with comma delimiter and no trimming.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		Comma: ',',
		br:    bufio.NewReaderSize(r, 64*1024),
		line:  1,
		col:   1,
	}
}

func (r *Reader) readByte() (byte, error) {
	b, err := r.br.ReadByte()
	if err != nil {
		return 0, err
	}
	if b == '\n' {
		r.line++
		r.col = 1
	} else {
		r.col++
	}
	return b, nil
}

func (r *Reader) unreadByte() {
	_ = r.br.UnreadByte()
	// col/line bookkeeping on unread is only ever used to re-peek the same
	// byte, so we must undo the advance we made in readByte.
	if r.col > 1 {
		r.col--
	}
}

func (r *Reader) peekByte() (byte, bool) {
	b, err := r.br.ReadByte()
	if err != nil {
		return 0, false
	}
	_ = r.br.UnreadByte()
	return b, true
}

// Read reads and returns the next row. It returns io.EOF (nil row) once the
// stream is exhausted. A malformed quoted field at end of stream produces a
// *ParseError.
func (r *Reader) Read() (Row, error) {
	if r.eof {
		return nil, io.EOF
	}
	return r.readRecord()
}

// ReadAll reads every remaining row. A successful call returns nil error,
// never io.EOF, matching encoding/csv.
func (r *Reader) ReadAll() ([]Row, error) {
	var rows []Row
	for {
		row, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return rows, err
		}
		rows = append(rows, row)
	}
}

// RunRows drives the row sequence, invoking visit once per row. Returning
// ErrStopIteration from visit ends iteration without error; any other
// non-nil error aborts and is returned to the caller.
func (r *Reader) RunRows(visit func(Row) error) error {
	for {
		row, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := visit(row); err != nil {
			if err == ErrStopIteration {
				return nil
			}
			return err
		}
	}
}

// SkipRows discards the next n rows. Each skipped row is tokenized in full
// (its fields are built and then dropped).
func (r *Reader) SkipRows(n int) error {
	for i := 0; i < n; i++ {
		if _, err := r.readRecord(); err != nil {
			return err
		}
	}
	return nil
}

// readRecord tokenizes one line of input into fields. A field is unquoted
// (terminated by the delimiter or a line terminator) or quoted (enclosed in
// double quotes, with doubled quotes denoting a literal quote). Any of
// LF/CRLF/CR terminates an unquoted field or, inside quotes, is literal
// content.
func (r *Reader) readRecord() (Row, error) {
	first, ok := r.peekByte()
	if !ok {
		r.eof = true
		return nil, io.EOF
	}
	if first == '\n' || first == '\r' {
		_, _ = r.readByte()
		if first == '\r' {
			if nb, ok := r.peekByte(); ok && nb == '\n' {
				_, _ = r.readByte()
			}
		}
		if _, ok := r.peekByte(); !ok {
			// Trailing blank line right before EOF: not a row (§4.1).
			r.eof = true
			return nil, io.EOF
		}
		return Row{{Value: ""}}, nil
	}

	startLine := r.line
	var fields Row

	for {
		peeked, havePeek := r.peekByte()
		quoted := havePeek && peeked == '"'

		var value []byte
		var perr error
		if quoted {
			value, perr = r.readQuotedField(startLine)
		} else {
			value, perr = r.readUnquotedField()
		}
		if perr != nil {
			return fields, perr
		}
		if !quoted {
			value = r.Trim.apply(value)
		}
		fields = append(fields, Field{Value: string(value), Quoted: quoted})

		sep, serr := r.readByte()
		if serr == io.EOF {
			r.eof = true
			return fields, nil
		}
		switch sep {
		case byte(r.Comma):
			continue
		case '\n':
			return fields, nil
		case '\r':
			if nb, ok := r.peekByte(); ok && nb == '\n' {
				_, _ = r.readByte()
			}
			return fields, nil
		default:
			// Shouldn't happen: readUnquotedField/readQuotedField consume up
			// to (but not including) the next separator or terminator.
			return fields, nil
		}
	}
}

// readUnquotedField reads bytes up to (not including) the next delimiter or
// line terminator.
func (r *Reader) readUnquotedField() ([]byte, error) {
	var out []byte
	for {
		b, ok := r.peekByte()
		if !ok {
			return out, nil
		}
		if b == byte(r.Comma) || b == '\n' || b == '\r' {
			return out, nil
		}
		if b == '"' && !r.LazyQuotes {
			_, _ = r.readByte()
			return out, &ParseError{StartLine: r.line, Line: r.line, Column: r.col - 1, Err: ErrBareQuote}
		}
		_, _ = r.readByte()
		out = append(out, b)
	}
}

// readQuotedField consumes the opening quote, the field content with
// doubled-quote unescaping, and the closing quote.
func (r *Reader) readQuotedField(startLine int) ([]byte, error) {
	_, _ = r.readByte() // opening quote
	var out []byte
	for {
		b, err := r.readByte()
		if err == io.EOF {
			return out, &ParseError{StartLine: startLine, Line: r.line, Column: r.col, Err: ErrQuote}
		}
		if b == '"' {
			if nb, ok := r.peekByte(); ok && nb == '"' {
				_, _ = r.readByte()
				out = append(out, '"')
				continue
			}
			// Closing quote. Anything up to the next delimiter/terminator is
			// either nothing (well-formed) or, under LazyQuotes, trailing
			// garbage that is appended verbatim.
			if r.LazyQuotes {
				trailing, _ := r.readUnquotedField()
				out = append(out, trailing...)
			}
			return out, nil
		}
		if b == '\r' {
			if nb, ok := r.peekByte(); ok && nb == '\n' {
				_, _ = r.readByte()
				out = append(out, '\n')
				continue
			}
		}
		out = append(out, b)
	}
}
