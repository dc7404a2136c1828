package timestamp

import "testing"

func TestParseMillis(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"00:00:00.000", 0},
		{"00:00:01.000", 1000},
		{"00:02:05.900", 125900},
		{"01:00:00.000", 3600000},
		{"99:59:59.999", 359999999},
		{"100:00:00.000", 360000000},
	}

	for _, tt := range tests {
		if got := ParseMillis(tt.input); got != tt.expected {
			t.Errorf("ParseMillis(%q) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestParseMillisReturnsZeroOnMismatch(t *testing.T) {
	inputs := []string{
		"",
		"garbage",
		"1:02:03.004",
		"00:2:03.004",
		"00:02:03,004",
		"00:02:03.04",
		"00:02:03",
		" 00:02:03.004",
		"00:02:03.004 ",
	}

	for _, input := range inputs {
		if got := ParseMillis(input); got != 0 {
			t.Errorf("ParseMillis(%q) = %d, want 0", input, got)
		}
	}
}

func TestFormatMillis(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "00:00:00.000"},
		{1, "00:00:00.001"},
		{125900, "00:02:05.900"},
		{3600000, "01:00:00.000"},
		{359999999, "99:59:59.999"},
		{360000000, "100:00:00.000"},
		{-5, "00:00:00.000"},
	}

	for _, tt := range tests {
		if got := FormatMillis(tt.input); got != tt.expected {
			t.Errorf("FormatMillis(%d) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	// Sample the full supported range up to 99:59:59.999 rather than
	// iterating every value.
	values := []int64{0, 1, 999, 1000, 59999, 60000, 3599999, 3600000, 86399999, 359999999}

	for _, v := range values {
		if got := ParseMillis(FormatMillis(v)); got != v {
			t.Errorf("ParseMillis(FormatMillis(%d)) = %d", v, got)
		}
	}
}
