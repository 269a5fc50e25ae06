package oddsmath

import "fmt"

// AmericanToDecimal converts American odds to decimal odds
// American +150 → Decimal 2.50
// American -150 → Decimal 1.67
func AmericanToDecimal(american int) (float64, error) {
	if american == 0 {
		return 0, fmt.Errorf("invalid American odds: cannot be 0")
	}

	if american > 0 {
		return (float64(american) / 100.0) + 1.0, nil
	}

	return (100.0 / float64(-american)) + 1.0, nil
}

// AmericanToImpliedProbability converts American odds to the book's
// implied probability (vig included)
// +100 → 0.50, -200 → 0.667
func AmericanToImpliedProbability(american int) (float64, error) {
	decimal, err := AmericanToDecimal(american)
	if err != nil {
		return 0, err
	}

	return 1.0 / decimal, nil
}

// BetterAmerican reports whether price a is a more favorable American
// price than b for the bettor. Higher signed value is always better:
// +200 beats +150 beats -105 beats -110. The comparison holds
// uniformly across the positive/negative boundary, so a straight
// integer comparison is correct.
func BetterAmerican(a, b int) bool {
	return a > b
}

// BestAmerican returns the more favorable of two American prices
func BestAmerican(a, b int) int {
	if BetterAmerican(a, b) {
		return a
	}
	return b
}
