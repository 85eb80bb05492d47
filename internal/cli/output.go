package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/wiluite/csvsuite-sub000/internal/csvcore"
)

// OpenAndTokenize opens source (a path or "-"/"" for stdin), applies
// skip-lines, and returns the resolved header (real or synthesized) plus
// every body row, ready for column resolution / quick-check / inference.
// Closer is returned so the caller can release the underlying file.
func OpenAndTokenize(source string, f *CommonFlags) (header []string, rows []csvcore.Row, closer io.Closer, err error) {
	raw, closer, err := csvcore.OpenSource(source)
	if err != nil {
		return nil, nil, nil, err
	}
	validated := csvcore.NewValidatingReader(raw)

	reader := csvcore.NewReader(validated)
	reader.Comma = f.DelimiterRune()

	if err := reader.SkipRows(f.SkipLines); err != nil && err != io.EOF {
		return nil, nil, closer, err
	}

	if f.NoHeader {
		first, ferr := reader.Read()
		if ferr != nil && ferr != io.EOF {
			return nil, nil, closer, ferr
		}
		header, err = SynthesizeHeader(len(first))
		if err != nil {
			return nil, nil, closer, err
		}
		if ferr != io.EOF {
			rows = append(rows, first)
		}
	} else {
		first, ferr := reader.Read()
		if ferr != nil && ferr != io.EOF {
			return nil, nil, closer, ferr
		}
		header = fieldsToStrings(first)
	}

	rest, err := reader.ReadAll()
	if err != nil {
		return nil, nil, closer, err
	}
	rows = append(rows, rest...)

	opts := csvcore.QuickCheckOptions{
		PreambleLines:  f.SkipLines,
		MaxFieldSize:   f.MaxFieldSize,
		CheckIntegrity: f.CheckIntegrity,
	}
	if err := csvcore.CheckRows(rows, len(header), opts); err != nil {
		return header, rows, closer, err
	}
	return header, rows, closer, nil
}

func fieldsToStrings(row csvcore.Row) []string {
	out := make([]string, len(row))
	for i, f := range row {
		out[i] = f.Value
	}
	return out
}

// SynthesizeHeader produces the "a, b, c, ..., z, aa, ..." header spec.md
// §3 describes for a headerless stream, capped at 702 columns (zz).
func SynthesizeHeader(n int) ([]string, error) {
	if n > 702 {
		return nil, &csvcore.ConfigurationError{Msg: "cannot synthesize a header beyond 702 columns (zz)"}
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = columnLabel(i)
	}
	return out, nil
}

// columnLabel renders the 0-based index as a spreadsheet-style label:
// 0->"a", 25->"z", 26->"aa", ...
func columnLabel(i int) string {
	var label []byte
	for {
		label = append([]byte{byte('a' + i%26)}, label...)
		i = i/26 - 1
		if i < 0 {
			break
		}
	}
	return string(label)
}

// ApplyLineNumbers prepends a synthetic "line_number" column to header and
// every row when enabled is true.
func ApplyLineNumbers(header []string, rows []csvcore.Row, enabled bool) ([]string, []csvcore.Row) {
	if !enabled {
		return header, rows
	}
	newHeader := append([]string{"line_number"}, header...)
	newRows := make([]csvcore.Row, len(rows))
	for i, row := range rows {
		newRows[i] = append(csvcore.Row{{Value: strconv.Itoa(i + 1)}}, row...)
	}
	return newHeader, newRows
}

// WriteCSV writes header and rows as CSV to w.
func WriteCSV(w io.Writer, header []string, rows []csvcore.Row) error {
	cw := csvcore.NewWriter(w)
	if err := cw.WriteStrings(header); err != nil {
		return err
	}
	return cw.WriteAll(rows)
}

// WriteGrid renders header and rows as a Markdown-like grid via
// tablewriter (csvlook's output shape, §6 "Markdown-like grid").
func WriteGrid(w io.Writer, header []string, rows []csvcore.Row) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	for _, row := range rows {
		rec := make([]string, len(row))
		for i, f := range row {
			rec[i] = f.Value
		}
		table.Append(rec)
	}
	table.Render()
}

// PrintNamesAndExit implements -n/--names: print the header, one column
// per line, numbered from 1, and let the caller exit 0.
func PrintNamesAndExit(header []string) {
	for i, h := range header {
		fmt.Printf("%3d: %s\n", i+1, h)
	}
}
