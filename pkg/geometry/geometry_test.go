package geometry

import (
	"math"
	"testing"
)

func TestSafeLength(t *testing.T) {
	tests := []struct {
		name      string
		r         float64
		thickness float64
		gap       float64
		want      float64
	}{
		{"reference proportions", 32, 12, 6, 40},
		{"knockout with derived gap", 38, 0, 7, 62},
		{"zero gap zero thickness", 10, 0, 0, 20},
		{"gap plus half thickness exceeds radius", 10, 20, 6, 0},
		{"exactly degenerate", 10, 8, 6, 0},
		{"zero radius", 0, 4, 2, 0},
		{"thin slash wide gap", 46, 4, 16, 56},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeLength(tt.r, tt.thickness, tt.gap)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SafeLength(%v, %v, %v) = %v, want %v", tt.r, tt.thickness, tt.gap, got, tt.want)
			}
		})
	}
}

func TestSafeLengthNeverNegative(t *testing.T) {
	for _, r := range []float64{0, 5, 10, 32, 48} {
		for _, th := range []float64{0, 4, 12, 24, 100} {
			for _, gap := range []float64{0, 2, 6, 16, 100} {
				if got := SafeLength(r, th, gap); got < 0 {
					t.Fatalf("SafeLength(%v, %v, %v) = %v, must not be negative", r, th, gap, got)
				}
			}
		}
	}
}

func TestOvershootLength(t *testing.T) {
	tests := []struct {
		name      string
		r         float64
		overshoot float64
		want      float64
	}{
		{"ring with overshoot", 38, 6, 88},
		{"zero overshoot", 32, 0, 64},
		{"zero radius", 0, 5, 10},
		{"both zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OvershootLength(tt.r, tt.overshoot)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("OvershootLength(%v, %v) = %v, want %v", tt.r, tt.overshoot, got, tt.want)
			}
		})
	}
}

func TestOvershootLengthMonotonic(t *testing.T) {
	prev := OvershootLength(20, 0)
	for v := 1.0; v <= 12; v++ {
		cur := OvershootLength(20, v)
		if cur <= prev {
			t.Fatalf("OvershootLength(20, %v) = %v, not increasing from %v", v, cur, prev)
		}
		prev = cur
	}

	prev = OvershootLength(0, 4)
	for r := 1.0; r <= 48; r++ {
		cur := OvershootLength(r, 4)
		if cur <= prev {
			t.Fatalf("OvershootLength(%v, 4) = %v, not increasing from %v", r, cur, prev)
		}
		prev = cur
	}
}
