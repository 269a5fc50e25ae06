package props

import "github.com/XavierBriggs/propboard/pkg/models"

// IsValueBet decides whether a prediction clears the value and
// confidence thresholds on at least one side. A side only counts when
// the model produced a value for it, so a prediction with both sides
// missing never qualifies, even with thresholds at or below zero.
// Applied over the full set regardless of any upstream filtering.
func IsValueBet(p models.Prediction, minValue, minConfidence float64) bool {
	if p.ConfidenceScore < minConfidence {
		return false
	}
	if p.PredictedValueOver == nil && p.PredictedValueUnder == nil {
		return false
	}
	return deref0(p.PredictedValueOver) >= minValue || deref0(p.PredictedValueUnder) >= minValue
}

// FilterValueBets returns the predictions that qualify as value bets,
// preserving input order. The input is not mutated.
func FilterValueBets(list []models.Prediction, minValue, minConfidence float64) []models.Prediction {
	out := make([]models.Prediction, 0, len(list))
	for _, p := range list {
		if IsValueBet(p, minValue, minConfidence) {
			out = append(out, p)
		}
	}
	return out
}
