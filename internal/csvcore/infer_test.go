package csvcore

import "testing"

func cellsOf(values []string, ctx *Context) []*TypedCell {
	cells := make([]*TypedCell, len(values))
	for i, v := range values {
		cells[i] = NewTypedCell(Field{Value: v}, ctx)
	}
	return cells
}

func TestInferColumn(t *testing.T) {
	ctx := DefaultContext()
	tests := []struct {
		name   string
		values []string
		want   ColumnType
	}{
		{name: "all numbers", values: []string{"1", "2.5", "-3"}, want: TypeNumber},
		{name: "all booleans", values: []string{"true", "false", "yes"}, want: TypeBoolean},
		{name: "pure 0/1 prefers boolean", values: []string{"0", "1", "1"}, want: TypeBoolean},
		{name: "mixed numeric and text falls back to text", values: []string{"1", "abc"}, want: TypeText},
		{name: "dates", values: []string{"2024-01-01", "2024-02-02"}, want: TypeDate},
		{name: "plain text", values: []string{"hello", "world"}, want: TypeText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := InferColumn(cellsOf(tt.values, &ctx), &ctx)
			if meta.Type != tt.want {
				t.Errorf("InferColumn(%v) type = %s, want %s", tt.values, meta.Type, tt.want)
			}
		})
	}
}

func TestInferColumn_ContainsNull(t *testing.T) {
	ctx := DefaultContext()
	meta := InferColumn(cellsOf([]string{"1", "", "3"}, &ctx), &ctx)
	if !meta.ContainsNull {
		t.Error("expected ContainsNull = true")
	}
	if meta.Type != TypeNumber {
		t.Errorf("got type %s, want number", meta.Type)
	}
}

func TestInferColumn_MaxPrecision(t *testing.T) {
	ctx := DefaultContext()
	meta := InferColumn(cellsOf([]string{"1.5", "2.25", "3"}, &ctx), &ctx)
	if meta.MaxPrecision != 2 {
		t.Errorf("got max precision %d, want 2", meta.MaxPrecision)
	}
}

func TestInferColumn_NoInferenceForcesText(t *testing.T) {
	ctx := DefaultContext()
	ctx.NoInference = true
	meta := InferColumn(cellsOf([]string{"1", "2", "3"}, &ctx), &ctx)
	if meta.Type != TypeText {
		t.Errorf("got type %s, want text under NoInference", meta.Type)
	}
}
