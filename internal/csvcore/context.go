package csvcore

// Context is the frozen, run-wide configuration every parse path reads
// from. It is built once per tool invocation from parsed flags and passed
// by value or pointer thereafter — no global mutable state (§5, "Global
// configuration... is set once per run and is read-only thereafter").
type Context struct {
	Locale Locale

	// NullTokens is the case-insensitive set a trimmed, unquoted field must
	// match to be considered null. The zero value behaves as {""}.
	NullTokens map[string]bool

	// NoInference forces every column to text type.
	NoInference bool

	// IgnoreCase records whether case-insensitive text comparison was
	// requested. Nothing in csvcore reads it: NewComparator and SortTable
	// take case-insensitivity as an explicit argument.
	IgnoreCase bool

	// NoLeadingZeroes rejects 0-prefixed multi-digit sequences as numeric.
	NoLeadingZeroes bool

	// TemporalBackend selects the format-string or library date backend.
	TemporalBackend TemporalBackend

	// DateFormat / DateTimeFormat are Go reference-time layouts (e.g.
	// "2006-01-02"), passed to time.ParseInLocation; strptime-style %
	// directives are not translated. FormatStringBackend uses only these;
	// LibraryBackend tries them first, before the ISO-8601 fallbacks.
	DateFormat     string
	DateTimeFormat string

	// MaxFieldSize is the quick-check field-size guard's limit, in Unicode
	// characters. Zero means unlimited.
	MaxFieldSize int
}

// DefaultContext returns the Context csvkit-alike tools use absent any
// locale/format flags: C locale, blank-only null token, library temporal
// backend, no field-size limit.
func DefaultContext() Context {
	return Context{
		Locale:          CLocale(),
		NullTokens:      map[string]bool{"": true},
		TemporalBackend: LibraryBackend,
		DateFormat:      "2006-01-02",
		DateTimeFormat:  "2006-01-02T15:04:05",
	}
}

// WithBlanksAsNull returns a copy of c using the wider null-token set
// ("na", "n/a", "none", "null", ".") in addition to "".
func (c Context) WithBlanksAsNull() Context {
	c.NullTokens = map[string]bool{
		"":     true,
		"na":   true,
		"n/a":  true,
		"none": true,
		"null": true,
		".":    true,
	}
	return c
}

// isNullToken reports whether the lower-cased, trimmed text matches the
// configured null-token set.
func (c Context) isNullToken(trimmedLower string) bool {
	if len(c.NullTokens) == 0 {
		return trimmedLower == ""
	}
	return c.NullTokens[trimmedLower]
}
