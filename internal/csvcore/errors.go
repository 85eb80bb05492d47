// Package csvcore implements the shared CSV processing core used by every
// tool in the suite: a streaming tokenizer with configurable trimming and
// quoting, a column-identifier resolver, a locale-aware type inference
// engine, a lazy typed-cell view, and the in-memory table used by sort,
// join and stat.
package csvcore

import "fmt"

// ParseError reports malformed quoting in the source, located by line and
// column (1-indexed).
type ParseError struct {
	StartLine int
	Line      int
	Column    int
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ParseError: parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Sentinel causes wrapped by ParseError.
var (
	ErrBareQuote  = fmt.Errorf("bare \" in non-quoted-field")
	ErrQuote      = fmt.Errorf("extraneous or missing \" in quoted-field")
	ErrFieldCount = fmt.Errorf("wrong number of fields")
)

// EncodingError reports that the byte stream is not valid UTF-8 after
// transport-level decoding (§4.2).
type EncodingError struct {
	Byte   byte
	Offset int64
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("EncodingError: invalid UTF-8 byte 0x%02x at offset %d", e.Byte, e.Offset)
}

// RaggedRowError reports that a row's width disagrees with the header (or
// first body row) width, as found by the quick-check (§4.7).
type RaggedRowError struct {
	Expected int
	Got      int
	Rows     []int
}

func (e *RaggedRowError) Error() string {
	return fmt.Sprintf(
		"RaggedRowError: CSV file has rows of inconsistent width (expected %d, got %d, on lines %v). "+
			"Use --check-integrity to see all errors, or csvclean to fix the file.",
		e.Expected, e.Got, e.Rows,
	)
}

// FieldSizeLimitError reports a single cell exceeding --maxfieldsize (§4.7).
type FieldSizeLimitError struct {
	Limit int
	Line  int
}

func (e *FieldSizeLimitError) Error() string {
	return fmt.Sprintf(
		"FieldSizeLimitError: CSV contains a field longer than the maximum length of %d characters on line %d.",
		e.Limit, e.Line,
	)
}

// ColumnIdentifierError reports an invalid atom in a column-selection
// expression (§4.3).
type ColumnIdentifierError struct {
	Atom string
	Why  string
}

func (e *ColumnIdentifierError) Error() string {
	return fmt.Sprintf("ColumnIdentifierError: %q: %s", e.Atom, e.Why)
}

// LookupError reports an unknown encoding or locale name.
type LookupError struct {
	Kind string // "encoding" or "locale"
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("LookupError: unknown %s %q", e.Kind, e.Name)
}

// ValueError reports a semantic post-parse failure, e.g. a non-unique join
// key when uniqueness was required, or a mismatched grouping-label count
// in csvstack -g.
type ValueError struct {
	Msg string
}

func (e *ValueError) Error() string { return "ValueError: " + e.Msg }

// ConfigurationError reports mutually exclusive options, e.g. --csv
// combined with an aggregate-selecting flag in csvstat.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return "ConfigurationError: " + e.Msg }
