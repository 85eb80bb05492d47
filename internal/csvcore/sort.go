package csvcore

// Sort (§4.9): a comparator derived from the selected key columns and
// their inferred types; stable or plain sort, chosen by the caller. Sorting
// runs on a single goroutine; there is no parallel sort. Text comparison is
// Unicode case-insensitive when requested, grounded on
// golang.org/x/text/collate the way the corpus's locale-aware repos
// (UNO-SOFT-dbcsv, nao1215-fileprep) fold case before comparing.

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// KeyColumn is one sort/join key: its column index and inferred type.
type KeyColumn struct {
	Index int
	Type  ColumnType
}

// Comparator compares two rows' typed cells at a set of key columns,
// returning -1/0/1.
type Comparator struct {
	keys   []KeyColumn
	coll   *collate.Collator
	folder bool
}

// NewComparator builds a Comparator over keys. When ignoreCase is true,
// text columns compare Unicode-case-insensitively via a root-locale
// collator; otherwise text compares byte-for-byte.
func NewComparator(keys []KeyColumn, ignoreCase bool) *Comparator {
	cmp := &Comparator{keys: keys, folder: ignoreCase}
	if ignoreCase {
		cmp.coll = collate.New(language.Und, collate.IgnoreCase)
	}
	return cmp
}

// Compare compares a and b's key columns in order, returning the first
// non-zero result.
func (cmp *Comparator) Compare(a, b []*TypedCell) int {
	for _, k := range cmp.keys {
		if r := cmp.compareCell(a[k.Index], b[k.Index], k.Type); r != 0 {
			return r
		}
	}
	return 0
}

func (cmp *Comparator) compareCell(a, b *TypedCell, t ColumnType) int {
	aNull, bNull := a.IsNull(), b.IsNull()
	if aNull && bNull {
		return 0
	}
	if aNull {
		return -1
	}
	if bNull {
		return 1
	}

	switch t {
	case TypeNumber:
		av, bv := a.Num(), b.Num()
		return av.Value.Cmp(bv.Value)
	case TypeBoolean:
		av, bv := a.Bool(), b.Bool()
		if av == bv {
			return 0
		}
		if !av {
			return -1
		}
		return 1
	case TypeDate:
		av, _ := a.Date()
		bv, _ := b.Date()
		return compareTimes(av, bv)
	case TypeDateTime:
		av, _ := a.DateTime()
		bv, _ := b.DateTime()
		return compareTimes(av, bv)
	case TypeTimedelta:
		av, _ := a.TimedeltaTuple()
		bv, _ := b.TimedeltaTuple()
		return compareFloats(av.Duration().Seconds(), bv.Duration().Seconds())
	default:
		if cmp.folder {
			return cmp.coll.CompareString(a.field.Value, b.field.Value)
		}
		return strings.Compare(a.field.Value, b.field.Value)
	}
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// SortTable reorders t.Rows by keys. When stable is true (required for
// join) ties preserve input order; otherwise a plain (unstable) sort is
// used, matching spec.md §4.9's "stable sort for join, normal sort for
// user-facing sort" split. When reverse is true, non-equal key
// comparisons are flipped but ties still preserve input order — "reverse
// stable order" (spec.md §8, the csvsort -r round-trip property), not a
// reversal of the whole output.
func SortTable(t *Table, keys []KeyColumn, ignoreCase bool, stable bool, reverse bool) {
	cols := t.Transpose()
	rowCells := make([][]*TypedCell, len(t.Rows))
	for r := range t.Rows {
		rc := make([]*TypedCell, len(cols))
		for c := range cols {
			rc[c] = cols[c][r]
		}
		rowCells[r] = rc
	}

	cmp := NewComparator(keys, ignoreCase)
	idx := make([]int, len(t.Rows))
	for i := range idx {
		idx[i] = i
	}

	less := func(i, j int) bool {
		c := cmp.Compare(rowCells[idx[i]], rowCells[idx[j]])
		if reverse {
			return c > 0
		}
		return c < 0
	}
	if stable {
		sort.SliceStable(idx, less)
	} else {
		sort.Slice(idx, less)
	}

	newRows := make([]Row, len(t.Rows))
	for i, oi := range idx {
		newRows[i] = t.Rows[oi]
	}
	t.Rows = newRows
	t.typed = nil // row order changed; cached transpose/meta are stale
	t.meta = nil
}
