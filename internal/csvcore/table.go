package csvcore

// In-memory table (§3, "In-memory table"; §4.9): materializes a stream
// into rows x columns for sort, join and stat, with a column-major
// transposed view for cache-friendly column operations.

// Table is an ordered sequence of fixed-width rows sharing one header.
type Table struct {
	Header []string
	Rows   []Row
	ctx    *Context

	typed [][]*TypedCell // lazily built column-major typed view
	meta  []ColumnMeta
}

// NewTable builds a Table from header and rows under ctx.
func NewTable(header []string, rows []Row, ctx *Context) *Table {
	return &Table{Header: header, Rows: rows, ctx: ctx}
}

// NumCols reports the table's column count (header width).
func (t *Table) NumCols() int { return len(t.Header) }

// Transpose returns the table's columns as contiguous TypedCell slices,
// building the typed-cell view for every column on first call and caching
// it thereafter.
func (t *Table) Transpose() [][]*TypedCell {
	if t.typed != nil {
		return t.typed
	}
	cols := make([][]*TypedCell, len(t.Header))
	for c := range cols {
		cols[c] = make([]*TypedCell, len(t.Rows))
	}
	for r, row := range t.Rows {
		for c := range t.Header {
			var f Field
			if c < len(row) {
				f = row[c]
			}
			cols[c][r] = NewTypedCell(f, t.ctx)
		}
	}
	t.typed = cols
	return cols
}

// InferTypes infers every column's metadata in parallel, caching the
// result for reuse by the stats engine and by comparators.
func (t *Table) InferTypes() []ColumnMeta {
	if t.meta != nil {
		return t.meta
	}
	t.meta = InferColumnsParallel(t.Transpose(), t.ctx)
	return t.meta
}

// Column returns the typed cells of column idx.
func (t *Table) Column(idx int) []*TypedCell {
	return t.Transpose()[idx]
}

// Select returns a new Table containing only the given zero-based column
// indices, in the given order, with a synthesized matching header.
func (t *Table) Select(indices []int) *Table {
	header := make([]string, len(indices))
	for i, idx := range indices {
		if idx < len(t.Header) {
			header[i] = t.Header[idx]
		}
	}
	rows := make([]Row, len(t.Rows))
	for r, row := range t.Rows {
		nr := make(Row, len(indices))
		for i, idx := range indices {
			if idx < len(row) {
				nr[i] = row[idx]
			}
		}
		rows[r] = nr
	}
	return NewTable(header, rows, t.ctx)
}
