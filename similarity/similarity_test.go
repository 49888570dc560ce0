package similarity

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "Hello world", "Hello world", 1},
		{"both empty", "", "", 1},
		{"empty vs non-empty", "", "abc", 0},
		{"disjoint", "aaaa", "bbbb", 0},
		{"one of twenty", "abcdefghijklmnopqrst", "abcdefghijklmnopqrsu", 0.95},
		{"half", "abcd", "abxy", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.a, tt.b); got != tt.want {
				t.Errorf("Score(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestScoreSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"Hello world", "Hello, world!"},
		{"abcdefghij", "abcdefgxyz"},
		{"short", "a much longer payload than the other"},
	}
	for _, p := range pairs {
		ab := Score(p[0], p[1])
		ba := Score(p[1], p[0])
		if ab != ba {
			t.Errorf("Score(%q, %q) = %v but reversed = %v", p[0], p[1], ab, ba)
		}
		if ab < 0 || ab > 1 {
			t.Errorf("Score(%q, %q) = %v out of range", p[0], p[1], ab)
		}
	}
}

func TestScoreThresholdBoundary(t *testing.T) {
	// one substituted rune over twenty: exactly at the default move
	// acceptance threshold
	got := Score("abcdefghijklmnopqrst", "abcdefghijklmnopqrsu")
	if !(got >= 0.95) {
		t.Errorf("boundary score %v not >= 0.95", got)
	}
	// one more edit falls below
	below := Score("abcdefghijklmnopqrst", "abcdefghijklmnopqrxy")
	if below >= 0.95 {
		t.Errorf("score %v unexpectedly >= 0.95", below)
	}
}
