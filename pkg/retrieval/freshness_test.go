package retrieval

import (
	"math"
	"testing"
)

func TestFreshnessWeight(t *testing.T) {
	tests := []struct {
		name         string
		ageDays      float64
		halfLifeDays float64
		want         float64
	}{
		{"zero age is full weight", 0, 70, 1.0},
		{"half life halves the weight", 70, 70, 0.5},
		{"two half lives quarter the weight", 140, 70, 0.25},
		{"negative age clamps to full weight", -5, 70, 1.0},
		{"non-positive half life falls back to default", 70, 0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FreshnessWeight(tt.ageDays, tt.halfLifeDays)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("FreshnessWeight(%v, %v) = %v, want %v", tt.ageDays, tt.halfLifeDays, got, tt.want)
			}
		})
	}
}

func TestFreshnessWeightDayOldContentBarelyDecays(t *testing.T) {
	if w := FreshnessWeight(1, 70); w <= 0.99 {
		t.Errorf("FreshnessWeight(1, 70) = %v, want > 0.99", w)
	}
}

func TestFreshnessWeightMonotonicDecreasing(t *testing.T) {
	prev := math.Inf(1)
	for age := 0.0; age <= 700; age += 7 {
		w := FreshnessWeight(age, 70)
		if w <= 0 || w > 1 {
			t.Fatalf("weight at age %v is %v, out of (0,1]", age, w)
		}
		if w >= prev {
			t.Fatalf("weight at age %v is %v, not below previous %v", age, w, prev)
		}
		prev = w
	}
}

func TestRound6(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.1234567, 0.123457},
		{0.1234564, 0.123456},
		{1.0, 1.0},
		{0, 0},
		{0.9999995, 1.0},
	}

	for _, tt := range tests {
		if got := Round6(tt.in); got != tt.want {
			t.Errorf("Round6(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
