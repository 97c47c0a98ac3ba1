package analyzer

import (
	"math"
	"testing"
)

func TestEntropyLowercaseOnly(t *testing.T) {
	bits, size := Entropy("abcdefgh")
	if size != 26 {
		t.Fatalf("expected charset 26, got %d", size)
	}
	expected := 8 * math.Log2(26)
	if math.Abs(bits-expected) > 1e-9 {
		t.Fatalf("expected %.4f bits, got %.4f", expected, bits)
	}
}

func TestEntropyEmptyPassword(t *testing.T) {
	bits, size := Entropy("")
	if bits != 0 || size != 0 {
		t.Fatalf("expected zero entropy for empty password, got %.2f bits, charset %d", bits, size)
	}
}

func TestEntropyMonotonicInLength(t *testing.T) {
	// Same class composition, growing length.
	prev := 0.0
	for _, password := range []string{"ab1", "abc12", "abcd123", "abcdef1234"} {
		bits, _ := Entropy(password)
		if bits <= prev {
			t.Fatalf("entropy not increasing at %q: %.2f <= %.2f", password, bits, prev)
		}
		prev = bits
	}
}

func TestEntropyBands(t *testing.T) {
	cases := []struct {
		bits float64
		band string
	}{
		{75, "excellent"},
		{60, "excellent"},
		{45, "good"},
		{30, "fair"},
		{10, "low"},
	}
	for _, tc := range cases {
		if got := EntropyBand(tc.bits); got != tc.band {
			t.Fatalf("band for %.0f bits: expected %q, got %q", tc.bits, tc.band, got)
		}
	}
}
