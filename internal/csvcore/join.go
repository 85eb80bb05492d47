package csvcore

// Join (§4.9), grounded on original_source/suite/include/csvjoin/inner_join.h:
// the right relation is stable-sorted on its key column, then for each left
// row an equal_range-style scan over the sorted right table yields all
// matches; the right's key column is dropped from the joined output
// (join_vec inserts next[0:c_ids[1]) then next[c_ids[1]+1:end)). Keys
// compare successfully only when both sides share an inferred type, or
// inference is disabled (can_compare in the header).

import "sort"

// JoinKind selects which unmatched rows are emitted alongside matches.
type JoinKind int

const (
	InnerJoin JoinKind = iota
	LeftJoin
	RightJoin
	OuterJoin
	LeftAntiJoin  // only unmatched left rows
	RightAntiJoin // only unmatched right rows
)

// JoinResult is the joined header and rows.
type JoinResult struct {
	Header []string
	Rows   []Row
}

// Join joins left against right on leftKey/rightKey per kind. It calls
// InferTypes on both tables itself (reusing any cached result); the key
// type check is skipped when noInference is set.
func Join(left, right *Table, leftKey, rightKey int, kind JoinKind, ignoreCase bool, noInference bool) (*JoinResult, error) {
	leftMeta := left.InferTypes()
	rightMeta := right.InferTypes()
	if !noInference && leftMeta[leftKey].Type != rightMeta[rightKey].Type {
		return nil, &ValueError{Msg: "join key columns have incompatible inferred types"}
	}

	rightRowCells := rowCellsOf(right)
	order := make([]int, len(right.Rows))
	for i := range order {
		order[i] = i
	}
	cmp := NewComparator([]KeyColumn{{Index: rightKey, Type: rightMeta[rightKey].Type}}, ignoreCase)
	sort.SliceStable(order, func(i, j int) bool {
		return cmp.Compare(rightRowCells[order[i]], rightRowCells[order[j]]) < 0
	})

	header := make([]string, 0, len(left.Header)+len(right.Header)-1)
	header = append(header, left.Header...)
	for i, h := range right.Header {
		if i == rightKey {
			continue
		}
		header = append(header, h)
	}

	leftRowCells := rowCellsOf(left)
	rightMatched := make([]bool, len(right.Rows))
	var rows []Row
	for li, leftRow := range left.Rows {
		lo, hi := equalRange(order, rightRowCells, leftRowCells[li][leftKey], cmp, rightKey)
		matched := hi > lo
		for k := lo; k < hi; k++ {
			ri := order[k]
			rightMatched[ri] = true
			if kind == LeftAntiJoin || kind == RightAntiJoin {
				continue
			}
			rows = append(rows, joinRow(leftRow, right.Rows[ri], rightKey))
		}
		if !matched && (kind == LeftJoin || kind == OuterJoin || kind == LeftAntiJoin) {
			rows = append(rows, joinRow(leftRow, emptyRow(len(right.Header)), rightKey))
		}
	}

	if kind == RightJoin || kind == OuterJoin || kind == RightAntiJoin {
		for ri, row := range right.Rows {
			if rightMatched[ri] {
				continue
			}
			rows = append(rows, joinRow(emptyRow(len(left.Header)), row, rightKey))
		}
	}

	return &JoinResult{Header: header, Rows: rows}, nil
}

func rowCellsOf(t *Table) [][]*TypedCell {
	cols := t.Transpose()
	out := make([][]*TypedCell, len(t.Rows))
	for r := range t.Rows {
		rc := make([]*TypedCell, len(cols))
		for c := range cols {
			rc[c] = cols[c][r]
		}
		out[r] = rc
	}
	return out
}

// equalRange returns the [lo, hi) slice of order whose right rows compare
// equal to leftCell at column key, using binary search since order is
// sorted on that same key.
func equalRange(order []int, rightRowCells [][]*TypedCell, leftCell *TypedCell, cmp *Comparator, key int) (int, int) {
	lo := sort.Search(len(order), func(i int) bool {
		return cmp.compareCell(rightRowCells[order[i]][key], leftCell, cmp.keys[0].Type) >= 0
	})
	hi := sort.Search(len(order), func(i int) bool {
		return cmp.compareCell(rightRowCells[order[i]][key], leftCell, cmp.keys[0].Type) > 0
	})
	return lo, hi
}

func joinRow(leftRow, rightRow Row, rightKey int) Row {
	out := make(Row, 0, len(leftRow)+len(rightRow))
	out = append(out, leftRow...)
	for i, f := range rightRow {
		if i == rightKey {
			continue
		}
		out = append(out, f)
	}
	return out
}

func emptyRow(n int) Row {
	return make(Row, n)
}
