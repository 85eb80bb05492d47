package csvcore

// Column identifier resolver (§4.3): translates a comma-separated
// expression of 1-based indices, header names, and A-B ranges into an
// ordered, de-duplicated-by-nothing list of zero-based column positions,
// preserving order of first appearance.

import (
	"strconv"
	"strings"
)

// ResolveColumns returns the zero-based indices selected by expr against
// header, in order of first appearance, after subtracting offset from any
// numeric atom. An empty expr selects every column in header order.
func ResolveColumns(expr string, header []string, offset int) ([]int, error) {
	if strings.TrimSpace(expr) == "" {
		all := make([]int, len(header))
		for i := range header {
			all[i] = i
		}
		return all, nil
	}

	var out []int
	for _, atom := range strings.Split(expr, ",") {
		atom = strings.TrimSpace(atom)
		if atom == "" {
			continue
		}
		if lo, hi, ok := splitRange(atom); ok {
			a, err := resolveAtom(lo, header, offset)
			if err != nil {
				return nil, err
			}
			b, err := resolveAtom(hi, header, offset)
			if err != nil {
				return nil, err
			}
			if a > b {
				a, b = b, a
			}
			for i := a; i <= b; i++ {
				out = append(out, i)
			}
			continue
		}
		idx, err := resolveAtom(atom, header, offset)
		if err != nil {
			return nil, err
		}
		out = append(out, idx)
	}
	return out, nil
}

// ResolveExcludes returns include with every index also selected by
// excludeExpr removed, preserving include's order.
func ResolveExcludes(include []int, excludeExpr string, header []string, offset int) ([]int, error) {
	if strings.TrimSpace(excludeExpr) == "" {
		return include, nil
	}
	excluded, err := ResolveColumns(excludeExpr, header, offset)
	if err != nil {
		return nil, err
	}
	skip := make(map[int]bool, len(excluded))
	for _, i := range excluded {
		skip[i] = true
	}
	out := make([]int, 0, len(include))
	for _, i := range include {
		if !skip[i] {
			out = append(out, i)
		}
	}
	return out, nil
}

// splitRange splits "A-B" into its two sides. A bare leading '-' (a
// negative number) is not a range; only a single internal hyphen counts.
func splitRange(atom string) (lo, hi string, ok bool) {
	i := strings.IndexByte(atom, '-')
	if i <= 0 || i == len(atom)-1 {
		return "", "", false
	}
	return atom[:i], atom[i+1:], true
}

// resolveAtom resolves one non-range atom (an index or a header name) to a
// zero-based column position.
func resolveAtom(atom string, header []string, offset int) (int, error) {
	atom = strings.TrimSpace(atom)
	if atom == "" {
		return 0, &ColumnIdentifierError{Atom: atom, Why: "empty column identifier"}
	}
	if n, err := strconv.Atoi(atom); err == nil {
		if n <= 0 {
			return 0, &ColumnIdentifierError{Atom: atom, Why: "index must be positive"}
		}
		idx := n - offset - 1
		if idx < 0 || idx >= len(header) {
			return 0, &ColumnIdentifierError{Atom: atom, Why: "index out of range"}
		}
		return idx, nil
	}
	for i, h := range header {
		if h == atom {
			return i, nil
		}
	}
	return 0, &ColumnIdentifierError{Atom: atom, Why: "no column named " + strconv.Quote(atom)}
}
