package discovery

import "testing"

func TestFilter_FilterByName(t *testing.T) {
	cases := []string{
		"tests/fib.قتام",
		"tests/loops/while.قتام",
		"tests/loops/for.قتام",
	}

	tests := []struct {
		name     string
		pattern  string
		expected int
	}{
		{name: "empty pattern keeps everything", pattern: "", expected: 3},
		{name: "wildcard prefix", pattern: "f*", expected: 2},
		{name: "wildcard both sides", pattern: "*hile*", expected: 1},
		{name: "substring without wildcards", pattern: "fib", expected: 1},
		{name: "no match", pattern: "zzz", expected: 0},
	}

	filter := NewFilter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filter.FilterByName(cases, tt.pattern)
			if len(got) != tt.expected {
				t.Errorf("pattern %q: expected %d cases, got %d (%v)", tt.pattern, tt.expected, len(got), got)
			}
		})
	}
}
