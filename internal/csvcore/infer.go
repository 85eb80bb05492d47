package csvcore

// Type inference engine (§4.4). Scans a materialized column and chooses
// the most specific type every non-null cell satisfies, in the fixed
// precedence boolean -> timedelta -> datetime -> date -> number -> text.

// ColumnType is the inferred classification of a column.
type ColumnType int

const (
	TypeText ColumnType = iota
	TypeBoolean
	TypeTimedelta
	TypeDateTime
	TypeDate
	TypeNumber
)

func (t ColumnType) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeTimedelta:
		return "timedelta"
	case TypeDateTime:
		return "datetime"
	case TypeDate:
		return "date"
	case TypeNumber:
		return "number"
	default:
		return "text"
	}
}

// ColumnMeta is the per-column record spec.md §3 names: the inferred
// type, whether any cell was null, and (for numeric columns) the observed
// maximum decimal precision — computed exactly once (SPEC_FULL.md §5.2).
type ColumnMeta struct {
	Type         ColumnType
	ContainsNull bool
	MaxPrecision int
}

// InferColumn scans cells (one column's worth, in row order) and returns
// its ColumnMeta. ctx.NoInference forces TypeText for every column except
// that ContainsNull is still computed.
func InferColumn(cells []*TypedCell, ctx *Context) ColumnMeta {
	var meta ColumnMeta
	nonNull := make([]*TypedCell, 0, len(cells))
	for _, c := range cells {
		if c.IsNull() {
			meta.ContainsNull = true
			continue
		}
		nonNull = append(nonNull, c)
	}

	if ctx.NoInference {
		meta.Type = TypeText
		return meta
	}

	switch {
	case len(nonNull) == 0:
		meta.Type = TypeText
	case allSatisfy(nonNull, (*TypedCell).IsBoolean):
		meta.Type = TypeBoolean
	case allSatisfyTimedelta(nonNull):
		meta.Type = TypeTimedelta
	case allSatisfyDateTime(nonNull):
		meta.Type = TypeDateTime
	case allSatisfyDate(nonNull):
		meta.Type = TypeDate
	case allSatisfy(nonNull, (*TypedCell).IsNum):
		meta.Type = TypeNumber
		for _, c := range nonNull {
			if p := c.Precision(); p > meta.MaxPrecision {
				meta.MaxPrecision = p
			}
		}
	default:
		meta.Type = TypeText
	}
	return meta
}

func allSatisfy(cells []*TypedCell, pred func(*TypedCell) bool) bool {
	for _, c := range cells {
		if !pred(c) {
			return false
		}
	}
	return true
}

func allSatisfyTimedelta(cells []*TypedCell) bool {
	for _, c := range cells {
		if _, ok := c.TimedeltaTuple(); !ok {
			return false
		}
	}
	return true
}

func allSatisfyDateTime(cells []*TypedCell) bool {
	for _, c := range cells {
		if _, ok := c.DateTime(); !ok {
			return false
		}
	}
	return true
}

func allSatisfyDate(cells []*TypedCell) bool {
	for _, c := range cells {
		if _, ok := c.Date(); !ok {
			return false
		}
	}
	return true
}

// InferColumnsParallel infers every column of table independently, one
// worker-pool task per column (§4.4, "the engine exposes parallel
// inference across columns"; §5, "Scheduling model").
func InferColumnsParallel(columns [][]*TypedCell, ctx *Context) []ColumnMeta {
	results := make([]ColumnMeta, len(columns))
	RunPool(len(columns), func(i int) {
		results[i] = InferColumn(columns[i], ctx)
	})
	return results
}
