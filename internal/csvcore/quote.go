package csvcore

// Quote-structure helpers over a byte slice. Adapted from the teacher's
// quote.go: the same opening/closing-quote scan, generalized to operate on a
// line at a time instead of a SIMD-scanned whole-buffer field table. Nothing
// in the module calls them: reader.go scans quotes byte by byte itself.

// skipLeadingWhitespace returns the number of leading space/tab bytes.
func skipLeadingWhitespace(data []byte) int {
	i := 0
	for i < len(data) && (data[i] == ' ' || data[i] == '\t') {
		i++
	}
	return i
}

// isQuotedFieldStart reports whether data starts a quoted field, optionally
// after leading whitespace when trimLeadingSpace is set. It returns the
// offset of the opening quote.
func isQuotedFieldStart(data []byte, trimLeadingSpace bool) (bool, int) {
	if len(data) == 0 {
		return false, 0
	}
	if data[0] == '"' {
		return true, 0
	}
	if trimLeadingSpace {
		offset := skipLeadingWhitespace(data)
		if offset > 0 && offset < len(data) && data[offset] == '"' {
			return true, offset
		}
	}
	return false, 0
}

// findClosingQuote finds the index of the unescaped closing quote in data,
// starting the scan at startAfterOpenQuote. Doubled quotes ("") are treated
// as an escaped literal quote, not a close. Returns -1 if none is found.
func findClosingQuote(data []byte, startAfterOpenQuote int) int {
	i := startAfterOpenQuote
	for i < len(data) {
		if data[i] == '"' {
			if i+1 < len(data) && data[i+1] == '"' {
				i += 2
				continue
			}
			return i
		}
		i++
	}
	return -1
}

// unescapeQuoted returns the content between an opening quote (at index 0)
// and the closing quote at closingIdx, with doubled quotes collapsed to one.
func unescapeQuoted(data []byte, closingIdx int) string {
	if closingIdx <= 1 {
		return ""
	}
	content := data[1:closingIdx]
	if !containsByte(content, '"') {
		return string(content)
	}
	out := make([]byte, 0, len(content))
	for i := 0; i < len(content); i++ {
		out = append(out, content[i])
		if content[i] == '"' {
			i++ // skip the doubled partner
		}
	}
	return string(out)
}

func containsByte(b []byte, c byte) bool {
	for _, x := range b {
		if x == c {
			return true
		}
	}
	return false
}
