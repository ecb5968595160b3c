package parser

import "testing"

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{"1", 1, true},
		{"1,000", 1000, true},
		{"1.000", 1000, true},
		{"1 000", 1000, true},
		{"1\u00a0000", 1000, true},
		{"1'000'000", 1000000, true},
		{"2x", 2, true},
		{"x2", 2, true},
		{"X10", 10, true},
		{" 42 ", 42, true},
		{"", 0, false},
		{"x", 0, false},
		{"abc", 0, false},
		{"-5", 0, false},
		{"1.5k", 0, false},
		{"99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseQuantity(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseQuantity(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseQuantity(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
