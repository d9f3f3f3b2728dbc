package notify

import "testing"

func TestIsDomestic(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"+14155552671", true},
		{"+1 415 555 2671", true},
		{"14155552671", true},
		{"1-415-555-2671", true},
		{"+442071838750", false},
		{"442071838750", false},
		{"4155552671", false},    // bare 10 digits, no leading 1
		{"1415555267", false},    // leading 1 but only 10 digits
		{"+15555550100", true},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsDomestic(tc.phone); got != tc.want {
			t.Errorf("IsDomestic(%q) = %v, want %v", tc.phone, got, tc.want)
		}
	}
}
