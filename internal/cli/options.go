// Package cli wires the options common to every csvsuite tool (§6's CLI
// surface table) onto a cobra.Command, and builds the csvcore.Context each
// tool needs from the resulting flag values.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wiluite/csvsuite-sub000/internal/csvcore"
)

// CommonFlags holds the shared option values after parsing (§6).
type CommonFlags struct {
	Delimiter       string
	SkipLines       int
	NoHeader        bool
	CheckIntegrity  bool
	MaxFieldSize    int
	Encoding        string
	Locale          string
	Blanks          bool
	NullValues      []string
	NoInference     bool
	DateFormat      string
	DateTimeFormat  string
	NoLeadingZeroes bool
	DateLibParser   bool
	Columns         string
	NotColumns      string
	Names           bool
	LineNumbers     bool
}

// AddCommonFlags registers §6's shared option table on fs.
func AddCommonFlags(fs *pflag.FlagSet, f *CommonFlags) {
	fs.StringVarP(&f.Delimiter, "delimiter", "d", ",", "field delimiter")
	fs.IntVar(&f.SkipLines, "skip-lines", 0, "drop N preamble lines before the header")
	fs.BoolVarP(&f.NoHeader, "no-header", "H", false, "treat the first row as data")
	fs.BoolVarP(&f.CheckIntegrity, "check-integrity", "K", false, "report every ragged row instead of only the first")
	fs.IntVar(&f.MaxFieldSize, "maxfieldsize", 0, "per-cell character-count limit")
	fs.StringVarP(&f.Encoding, "encoding", "e", "utf-8", "declare source encoding (post-recode to UTF-8)")
	fs.StringVarP(&f.Locale, "locale", "L", "C", "numeric locale")
	fs.BoolVarP(&f.Blanks, "blanks", "b", false, "treat NA/N/A/NONE/NULL/. as literal text")
	fs.StringArrayVar(&f.NullValues, "null-value", nil, "add a value to the null-token set (repeatable)")
	fs.BoolVarP(&f.NoInference, "no-inference", "I", false, "force every column to text")
	fs.StringVar(&f.DateFormat, "date-format", "2006-01-02", "date format string")
	fs.StringVar(&f.DateTimeFormat, "datetime-format", "2006-01-02T15:04:05", "datetime format string")
	fs.BoolVar(&f.NoLeadingZeroes, "no-leading-zeroes", false, "reject numerics with leading zeroes")
	fs.BoolVar(&f.DateLibParser, "date-lib-parser", true, "use the portable library temporal backend")
	fs.StringVarP(&f.Columns, "columns", "c", "", "column selection expression")
	fs.StringVarP(&f.NotColumns, "not-columns", "C", "", "column exclusion expression")
	fs.BoolVarP(&f.Names, "names", "n", false, "print header and exit")
	fs.BoolVarP(&f.LineNumbers, "linenumbers", "y", false, "prepend a synthetic line_number column")
}

// BuildContext assembles a csvcore.Context from parsed CommonFlags.
func BuildContext(f *CommonFlags) (csvcore.Context, error) {
	ctx := csvcore.DefaultContext()
	if !f.Blanks {
		ctx = ctx.WithBlanksAsNull()
	}
	for _, v := range f.NullValues {
		ctx.NullTokens[strings.ToLower(strings.TrimSpace(v))] = true
	}
	if f.Locale != "" && f.Locale != "C" {
		loc, err := csvcore.NewLocale(f.Locale)
		if err != nil {
			return ctx, err
		}
		ctx.Locale = loc
	}
	ctx.NoInference = f.NoInference
	ctx.NoLeadingZeroes = f.NoLeadingZeroes
	ctx.MaxFieldSize = f.MaxFieldSize
	ctx.DateFormat = f.DateFormat
	ctx.DateTimeFormat = f.DateTimeFormat
	if f.DateLibParser {
		ctx.TemporalBackend = csvcore.LibraryBackend
	} else {
		ctx.TemporalBackend = csvcore.FormatStringBackend
	}
	return ctx, nil
}

// DelimiterRune returns f.Delimiter as a rune, defaulting to ',' on anything
// other than exactly one byte.
func (f *CommonFlags) DelimiterRune() rune {
	if len(f.Delimiter) != 1 {
		return ','
	}
	return rune(f.Delimiter[0])
}

// Fail writes err's diagnostic to stderr (§6, "Diagnostic messages to
// stderr begin with the error class name") and exits 1. Every cmd/*
// main calls this instead of panicking or returning an exit code itself.
func Fail(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}

// Execute runs cmd and translates a returned error into Fail's diagnostic
// exit, matching §6's "0 on success; non-zero on uncaught error" contract.
func Execute(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		Fail(err)
	}
}
