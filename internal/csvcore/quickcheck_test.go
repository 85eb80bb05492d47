package csvcore

import "testing"

func TestCheckRow_RaggedRow(t *testing.T) {
	row := Row{{Value: "a"}, {Value: "b"}}
	err := CheckRow(row, 3, 1, QuickCheckOptions{})
	if err == nil {
		t.Fatal("expected a ragged row error")
	}
	rre, ok := err.(*RaggedRowError)
	if !ok {
		t.Fatalf("got error of type %T, want *RaggedRowError", err)
	}
	if rre.Expected != 3 || rre.Got != 2 {
		t.Errorf("got %+v", rre)
	}
}

func TestCheckRow_LineNumberAccountsForPreambleAndHeader(t *testing.T) {
	row := Row{{Value: "a"}, {Value: "b"}}
	err := CheckRow(row, 3, 1, QuickCheckOptions{PreambleLines: 2})
	rre, ok := err.(*RaggedRowError)
	if !ok {
		t.Fatalf("got error of type %T, want *RaggedRowError", err)
	}
	if rre.Rows[0] != 4 { // 2 preamble + 1 header + bodyLine 1
		t.Errorf("got line %d, want 4", rre.Rows[0])
	}
}

func TestCheckRow_SingleColumnBlankLineIsValid(t *testing.T) {
	row := Row{{Value: ""}}
	if err := CheckRow(row, 1, 1, QuickCheckOptions{}); err != nil {
		t.Errorf("expected no error for a blank row in a single-column file, got %v", err)
	}
}

func TestCheckRow_FieldSizeLimit(t *testing.T) {
	row := Row{{Value: "abcdef"}}
	err := CheckRow(row, 1, 1, QuickCheckOptions{MaxFieldSize: 3})
	fse, ok := err.(*FieldSizeLimitError)
	if !ok {
		t.Fatalf("got error of type %T, want *FieldSizeLimitError", err)
	}
	if fse.Limit != 3 {
		t.Errorf("got limit %d, want 3", fse.Limit)
	}
}

func TestCheckRows_FirstViolationByDefault(t *testing.T) {
	rows := []Row{
		{{Value: "a"}, {Value: "b"}},
		{{Value: "c"}},
		{{Value: "d"}},
	}
	err := CheckRows(rows, 2, QuickCheckOptions{})
	rre, ok := err.(*RaggedRowError)
	if !ok {
		t.Fatalf("got error of type %T, want *RaggedRowError", err)
	}
	if len(rre.Rows) != 1 || rre.Rows[0] != 3 { // header(1) + bodyLine 2
		t.Errorf("got %v, want a single violation on line 3", rre.Rows)
	}
}

func TestCheckRows_CheckIntegrityCollectsAll(t *testing.T) {
	rows := []Row{
		{{Value: "a"}, {Value: "b"}},
		{{Value: "c"}},
		{{Value: "d"}},
	}
	err := CheckRows(rows, 2, QuickCheckOptions{CheckIntegrity: true})
	rre, ok := err.(*RaggedRowError)
	if !ok {
		t.Fatalf("got error of type %T, want *RaggedRowError", err)
	}
	if len(rre.Rows) != 2 {
		t.Fatalf("got %v, want 2 collected violations", rre.Rows)
	}
}

func TestCheckRows_NoViolations(t *testing.T) {
	rows := []Row{
		{{Value: "a"}, {Value: "b"}},
		{{Value: "c"}, {Value: "d"}},
	}
	if err := CheckRows(rows, 2, QuickCheckOptions{}); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}
