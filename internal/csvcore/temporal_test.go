package csvcore

import "testing"

func TestParseDate(t *testing.T) {
	ctx := DefaultContext()
	tests := []struct {
		name   string
		input  string
		wantOK bool
	}{
		{name: "iso date", input: "2024-01-01", wantOK: true},
		{name: "single digit month/day", input: "2024-1-1", wantOK: true},
		{name: "slash form", input: "2024/01/02", wantOK: true},
		{name: "not a date", input: "hello", wantOK: false},
		{name: "compact YYYYMMDD form", input: "20240101", wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseDate(tt.input, ctx)
			if ok != tt.wantOK {
				t.Errorf("ParseDate(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
		})
	}
}

func TestParseDateTime(t *testing.T) {
	ctx := DefaultContext()
	tests := []struct {
		name   string
		input  string
		wantOK bool
	}{
		{name: "iso datetime", input: "2024-01-01T10:30:00", wantOK: true},
		{name: "space separated", input: "2024-01-01 10:30:00", wantOK: true},
		{name: "rfc3339 with offset", input: "2024-01-01T10:30:00Z", wantOK: true},
		{name: "not a datetime", input: "nope", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseDateTime(tt.input, ctx)
			if ok != tt.wantOK {
				t.Errorf("ParseDateTime(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
		})
	}
}

func TestParseTimedelta(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
		want   Timedelta
	}{
		{name: "plain clock", input: "1:02:03", wantOK: true, want: Timedelta{Hours: 1, Minutes: 2, Seconds: 3}},
		{name: "with days", input: "2 days, 1:02:03", wantOK: true, want: Timedelta{Days: 2, Hours: 1, Minutes: 2, Seconds: 3}},
		{name: "singular day", input: "1 day, 0:00:00", wantOK: true, want: Timedelta{Days: 1}},
		{name: "negative", input: "-1:00:00", wantOK: true, want: Timedelta{Negative: true, Hours: 1}},
		{name: "fractional seconds", input: "0:00:01.5", wantOK: true, want: Timedelta{Seconds: 1.5}},
		{name: "not a timedelta", input: "abc", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimedelta(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseTimedelta(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got != tt.want {
				t.Errorf("ParseTimedelta(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
