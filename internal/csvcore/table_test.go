package csvcore

import "testing"

func newTestTable() *Table {
	ctx := DefaultContext()
	header := []string{"id", "name", "score"}
	rows := []Row{
		{{Value: "1"}, {Value: "alice"}, {Value: "9.5"}},
		{{Value: "2"}, {Value: "bob"}, {Value: "7"}},
		{{Value: "3"}, {Value: "carol"}, {Value: ""}},
	}
	return NewTable(header, rows, &ctx)
}

func TestTable_Transpose(t *testing.T) {
	tbl := newTestTable()
	cols := tbl.Transpose()
	if len(cols) != 3 {
		t.Fatalf("got %d columns, want 3", len(cols))
	}
	if len(cols[0]) != 3 {
		t.Fatalf("got %d rows in column 0, want 3", len(cols[0]))
	}
	if cols[1][1].FieldValue() != "bob" {
		t.Errorf("got %q, want bob", cols[1][1].FieldValue())
	}
}

func TestTable_TransposeIsCached(t *testing.T) {
	tbl := newTestTable()
	first := tbl.Transpose()
	second := tbl.Transpose()
	if &first[0][0] != &second[0][0] {
		t.Error("Transpose() rebuilt instead of returning the cached view")
	}
}

func TestTable_InferTypes(t *testing.T) {
	tbl := newTestTable()
	metas := tbl.InferTypes()
	if metas[0].Type != TypeNumber {
		t.Errorf("id column: got %s, want number", metas[0].Type)
	}
	if metas[1].Type != TypeText {
		t.Errorf("name column: got %s, want text", metas[1].Type)
	}
	if metas[2].Type != TypeNumber {
		t.Errorf("score column: got %s, want number", metas[2].Type)
	}
	if !metas[2].ContainsNull {
		t.Error("score column: expected ContainsNull = true for the blank cell")
	}
}

func TestTable_Select(t *testing.T) {
	tbl := newTestTable()
	sub := tbl.Select([]int{2, 0})
	if len(sub.Header) != 2 || sub.Header[0] != "score" || sub.Header[1] != "id" {
		t.Fatalf("got header %v, want [score id]", sub.Header)
	}
	if sub.Rows[1][1].Value != "2" {
		t.Errorf("got %q, want 2", sub.Rows[1][1].Value)
	}
}
