//nolint:testpackage // using package name 'fuzzy' to access unexported fields for testing
package fuzzy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMatcher_Closest(t *testing.T) {
	matcher := NewMatcher(2)

	tests := []struct {
		name       string
		input      string
		candidates []string
		want       string
		ok         bool
	}{
		{
			name:       "long flag typo",
			input:      "--verbse",
			candidates: []string{"-h", "--help", "-v", "--verbose"},
			want:       "--verbose",
			ok:         true,
		},
		{
			name:       "exact match excluded",
			input:      "help",
			candidates: []string{"help"},
		},
		{
			name:       "too short",
			input:      "x",
			candidates: []string{"xy"},
		},
		{
			name:       "case insensitive transposition",
			input:      "BIULD",
			candidates: []string{"build", "test"},
			want:       "build",
			ok:         true,
		},
		{
			name:       "nothing in range",
			input:      "deploy",
			candidates: []string{"build", "test"},
		},
		{
			name:       "ties keep declaration order",
			input:      "bat",
			candidates: []string{"cat", "hat"},
			want:       "cat",
			ok:         true,
		},
		{
			name:       "longer prefix wins tie",
			input:      "star",
			candidates: []string{"scar", "stab"},
			want:       "stab",
			ok:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := matcher.Closest(tt.input, tt.candidates)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Closest(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMatcher_Distance(t *testing.T) {
	tests := []struct {
		a, b string
		max  int
		want int
	}{
		{"kitten", "sitting", 5, 3},
		{"", "abc", 5, 3},
		{"same", "same", 2, 0},
		{"abcdef", "uvwxyz", 1, 2}, // cut off at max+1
		{"a", "abcd", 2, 3},        // length difference alone exceeds max
		{"héllo", "hello", 2, 1},   // runes, not bytes
	}
	for _, tt := range tests {
		m := NewMatcher(tt.max)
		if got := m.distance([]rune(tt.a), []rune(tt.b)); got != tt.want {
			t.Errorf("distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRank(t *testing.T) {
	got := NewMatcher(2).Rank("stat", []string{"start", "stop", "status", "stat"})
	want := []Match{
		{Value: "start", Distance: 1, Prefix: 3},
		{Value: "stop", Distance: 2, Prefix: 2},
		{Value: "status", Distance: 2, Prefix: 4},
	}
	// stop and status share distance 2; status has the longer prefix.
	want[1], want[2] = want[2], want[1]
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rank mismatch (-want +got):\n%s", diff)
	}
}

func TestSuggest(t *testing.T) {
	got := Suggest("stat", []string{"start", "stop", "status"}, 2, 2)
	if diff := cmp.Diff([]string{"start", "status"}, got); diff != "" {
		t.Errorf("Suggest mismatch (-want +got):\n%s", diff)
	}
	if got := Suggest("zzzz", []string{"start"}, 2, 3); len(got) != 0 {
		t.Errorf("expected no suggestions, got %v", got)
	}
}
