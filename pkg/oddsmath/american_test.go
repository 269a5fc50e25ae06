package oddsmath_test

import (
	"math"
	"testing"

	"github.com/XavierBriggs/propboard/pkg/oddsmath"
)

func TestAmericanToDecimal(t *testing.T) {
	tests := []struct {
		name     string
		american int
		want     float64
	}{
		{"Even odds +100", 100, 2.0},
		{"Positive odds +150", 150, 2.5},
		{"Positive odds +200", 200, 3.0},
		{"Negative odds -110", -110, 1.909090909},
		{"Negative odds -150", -150, 1.666666667},
		{"Negative odds -200", -200, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := oddsmath.AmericanToDecimal(tt.american)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			// Allow small floating point differences
			if math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("AmericanToDecimal(%d) = %f, want %f", tt.american, got, tt.want)
			}
		})
	}
}

func TestAmericanToDecimal_ZeroIsInvalid(t *testing.T) {
	if _, err := oddsmath.AmericanToDecimal(0); err == nil {
		t.Error("expected error for 0 odds")
	}
}

func TestAmericanToImpliedProbability(t *testing.T) {
	tests := []struct {
		name     string
		american int
		want     float64
	}{
		{"Even odds +100", 100, 0.50},
		{"Favorite -110", -110, 0.5238},
		{"Heavy favorite -200", -200, 0.6667},
		{"Underdog +150", 150, 0.40},
		{"Heavy underdog +300", 300, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := oddsmath.AmericanToImpliedProbability(tt.american)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("AmericanToImpliedProbability(%d) = %f, want %f", tt.american, got, tt.want)
			}
		})
	}
}

func TestBetterAmerican_UniformAcrossSignBoundary(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want bool
	}{
		{"+200 beats +150", 200, 150, true},
		{"+150 beats -105", 150, -105, true},
		{"-105 beats -110", -105, -110, true},
		{"-110 does not beat -105", -110, -105, false},
		{"equal prices", -110, -110, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := oddsmath.BetterAmerican(tt.a, tt.b); got != tt.want {
				t.Errorf("BetterAmerican(%d, %d) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestBestAmerican(t *testing.T) {
	if got := oddsmath.BestAmerican(150, -110); got != 150 {
		t.Errorf("BestAmerican(150, -110) = %d, want 150", got)
	}
	if got := oddsmath.BestAmerican(-120, -105); got != -105 {
		t.Errorf("BestAmerican(-120, -105) = %d, want -105", got)
	}
}
