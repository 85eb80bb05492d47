package csvcore

// Quick-check (§4.7): verifies row-width consistency against the header
// (or first body row) and enforces the maximum field-size limit, with
// line numbers that account for any skipped preamble and the header row.

import "unicode/utf8"

// QuickCheckOptions configures quick-check enforcement.
type QuickCheckOptions struct {
	// PreambleLines is the count of rows skipped before the header, added
	// to every reported line number.
	PreambleLines int
	// MaxFieldSize is the field-size guard's limit in Unicode characters.
	// Zero disables the guard.
	MaxFieldSize int
	// CheckIntegrity, when true, collects every ragged row instead of
	// failing on the first one.
	CheckIntegrity bool
}

// CheckRow validates one body row (1-indexed bodyLine counting from the
// row immediately after the header) against expected width and
// opts.MaxFieldSize. It returns a *RaggedRowError or *FieldSizeLimitError
// on the first violation found, nil otherwise.
func CheckRow(row Row, expected int, bodyLine int, opts QuickCheckOptions) error {
	reportLine := opts.PreambleLines + 1 + bodyLine // +1 for the header row

	if opts.MaxFieldSize > 0 {
		for _, f := range row {
			if utf8.RuneCountInString(f.Value) > opts.MaxFieldSize {
				return &FieldSizeLimitError{Limit: opts.MaxFieldSize, Line: reportLine}
			}
		}
	}

	if len(row) != expected {
		if expected == 1 && len(row) == 1 && row[0].Value == "" {
			// A single-column file's blank lines are valid empty-string rows
			// (§4.7, "A solitary empty body line is always invalid except
			// when the file has exactly one column").
			return nil
		}
		return &RaggedRowError{Expected: expected, Got: len(row), Rows: []int{reportLine}}
	}
	return nil
}

// CheckRows runs CheckRow over every row of rows. Without CheckIntegrity it
// returns the first violation. With CheckIntegrity it collects every
// ragged line into a single *RaggedRowError (field-size violations still
// fail immediately, as they are not a width problem).
func CheckRows(rows []Row, expected int, opts QuickCheckOptions) error {
	var raggedLines []int
	var gotWidth int

	for i, row := range rows {
		err := CheckRow(row, expected, i+1, opts)
		if err == nil {
			continue
		}
		rre, ok := err.(*RaggedRowError)
		if !ok {
			return err
		}
		if !opts.CheckIntegrity {
			return rre
		}
		raggedLines = append(raggedLines, rre.Rows[0])
		gotWidth = rre.Got
	}
	if len(raggedLines) > 0 {
		return &RaggedRowError{Expected: expected, Got: gotWidth, Rows: raggedLines}
	}
	return nil
}
