package csvcore

import "testing"

func tableFor(header []string, rows [][]string) *Table {
	ctx := DefaultContext()
	tableRows := make([]Row, len(rows))
	for i, r := range rows {
		row := make(Row, len(r))
		for j, v := range r {
			row[j] = Field{Value: v}
		}
		tableRows[i] = row
	}
	return NewTable(header, tableRows, &ctx)
}

func colValues(t *Table, col int) []string {
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[col].Value
	}
	return out
}

func TestSortTable_Numeric(t *testing.T) {
	tbl := tableFor([]string{"n"}, [][]string{{"10"}, {"2"}, {"33"}, {"4"}})
	keys := []KeyColumn{{Index: 0, Type: TypeNumber}}
	SortTable(tbl, keys, false, true, false)
	got := colValues(tbl, 0)
	want := []string{"2", "4", "10", "33"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSortTable_StablePreservesTieOrder(t *testing.T) {
	tbl := tableFor([]string{"n", "tag"}, [][]string{
		{"100", "first"}, {"50", "x"}, {"100", "second"}, {"100", "third"},
	})
	keys := []KeyColumn{{Index: 0, Type: TypeNumber}}
	SortTable(tbl, keys, false, true, false)
	got := colValues(tbl, 1)
	want := []string{"x", "first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSortTable_NullsSortFirst(t *testing.T) {
	tbl := tableFor([]string{"n"}, [][]string{{"5"}, {""}, {"1"}})
	keys := []KeyColumn{{Index: 0, Type: TypeNumber}}
	SortTable(tbl, keys, false, true, false)
	got := colValues(tbl, 0)
	if got[0] != "" {
		t.Errorf("got %v, want the null cell first", got)
	}
}

func TestSortTable_TextCaseSensitiveByDefault(t *testing.T) {
	tbl := tableFor([]string{"s"}, [][]string{{"banana"}, {"Apple"}, {"cherry"}})
	keys := []KeyColumn{{Index: 0, Type: TypeText}}
	SortTable(tbl, keys, false, true, false)
	got := colValues(tbl, 0)
	// Byte-for-byte: uppercase 'A' sorts before lowercase letters.
	if got[0] != "Apple" {
		t.Errorf("got %v, want Apple first under case-sensitive compare", got)
	}
}

func TestSortTable_ReverseIsStableNotMirrored(t *testing.T) {
	tbl := tableFor([]string{"n", "tag"}, [][]string{
		{"100", "first"}, {"50", "x"}, {"100", "second"}, {"100", "third"},
	})
	keys := []KeyColumn{{Index: 0, Type: TypeNumber}}
	SortTable(tbl, keys, false, true, true)
	got := colValues(tbl, 1)
	// Descending by n (100s before 50), but ties among the 100s keep their
	// original input order rather than being mirrored too.
	want := []string{"first", "second", "third", "x"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSortTable_ReverseRoundTrip(t *testing.T) {
	tbl := tableFor([]string{"n"}, [][]string{{"10"}, {"2"}, {"33"}, {"4"}})
	keys := []KeyColumn{{Index: 0, Type: TypeNumber}}
	SortTable(tbl, keys, false, true, false)
	ascending := append([]string(nil), colValues(tbl, 0)...)

	tbl2 := tableFor([]string{"n"}, [][]string{{"10"}, {"2"}, {"33"}, {"4"}})
	SortTable(tbl2, keys, false, true, true)
	descending := colValues(tbl2, 0)

	for i := range ascending {
		if ascending[i] != descending[len(descending)-1-i] {
			t.Fatalf("ascending %v is not descending %v reversed", ascending, descending)
		}
	}
}

func TestSortTable_InvalidatesCachedTranspose(t *testing.T) {
	tbl := tableFor([]string{"n"}, [][]string{{"2"}, {"1"}})
	tbl.Transpose()
	keys := []KeyColumn{{Index: 0, Type: TypeNumber}}
	SortTable(tbl, keys, false, true, false)
	if tbl.typed != nil {
		t.Error("expected cached transpose to be invalidated after sort")
	}
}
