package stats

import "testing"

func TestMovingAverage(t *testing.T) {
	values := []float64{10, 20, 30, 40}
	out := MovingAverage(values, 2)
	expected := []float64{10, 15, 25, 35}
	for i, want := range expected {
		if out[i] != want {
			t.Fatalf("position %d: expected %.1f, got %.1f", i, want, out[i])
		}
	}
}

func TestMovingAverageWindowOneCopies(t *testing.T) {
	values := []float64{1, 2, 3}
	out := MovingAverage(values, 1)
	for i, v := range values {
		if out[i] != v {
			t.Fatalf("expected copy, got %v", out)
		}
	}
}

func TestSparklineConstantSeries(t *testing.T) {
	line := Sparkline([]float64{5, 5, 5})
	if len(line) != 3 {
		t.Fatalf("expected 3 cells, got %q", line)
	}
	if line[0] != line[1] || line[1] != line[2] {
		t.Fatalf("expected uniform cells for constant series, got %q", line)
	}
}

func TestSparklineEmpty(t *testing.T) {
	if line := Sparkline(nil); line != "" {
		t.Fatalf("expected empty sparkline, got %q", line)
	}
}
