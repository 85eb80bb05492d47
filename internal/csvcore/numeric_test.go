package csvcore

import "testing"

func TestParseNumber(t *testing.T) {
	loc := CLocale()
	tests := []struct {
		name      string
		input     string
		wantOK    bool
		wantPrec  int
		noLeadZer bool
	}{
		{name: "plain integer", input: "123", wantOK: true, wantPrec: 0},
		{name: "signed integer", input: "-123", wantOK: true, wantPrec: 0},
		{name: "decimal", input: "3.14", wantOK: true, wantPrec: 2},
		{name: "leading decimal point", input: ".5", wantOK: true, wantPrec: 1},
		{name: "scientific notation", input: "1.5e3", wantOK: true, wantPrec: 1},
		{name: "nan", input: "NaN", wantOK: true},
		{name: "infinity", input: "Infinity", wantOK: true},
		{name: "negative infinity", input: "-Infinity", wantOK: true},
		{name: "not a number", input: "abc", wantOK: false},
		{name: "empty string", input: "", wantOK: false},
		{name: "leading zero rejected", input: "0123", wantOK: false, noLeadZer: true},
		{name: "leading zero allowed by default", input: "0123", wantOK: true},
		{name: "single zero is not a leading zero", input: "0", wantOK: true, noLeadZer: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumber(tt.input, loc, tt.noLeadZer)
			if ok != tt.wantOK {
				t.Fatalf("ParseNumber(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && tt.wantPrec != 0 && got.Precision != tt.wantPrec {
				t.Errorf("ParseNumber(%q) precision = %d, want %d", tt.input, got.Precision, tt.wantPrec)
			}
		})
	}
}

func TestParseNumber_Grouping(t *testing.T) {
	loc, err := NewLocale("en-US")
	if err != nil {
		t.Fatalf("NewLocale() error = %v", err)
	}
	tests := []struct {
		input  string
		wantOK bool
	}{
		{"1,234,567", true},
		{"1,23,567", false}, // non-3-digit group after the first
		{"12,345", true},
		{"1234", true}, // ungrouped is still fine
	}
	for _, tt := range tests {
		_, ok := ParseNumber(tt.input, loc, false)
		if ok != tt.wantOK {
			t.Errorf("ParseNumber(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
		}
	}
}
