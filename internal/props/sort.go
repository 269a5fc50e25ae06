package props

import (
	"math"
	"sort"
	"strings"

	"github.com/XavierBriggs/propboard/pkg/models"
	"github.com/XavierBriggs/propboard/pkg/oddsmath"
)

// Directive selects the comparator applied to the prediction list
type Directive string

const (
	SortValueDesc      Directive = "value_desc"
	SortValueAsc       Directive = "value_asc"
	SortConfidenceDesc Directive = "confidence_desc"
	SortConfidenceAsc  Directive = "confidence_asc"
	SortPropType       Directive = "prop_type"
	SortPlayerName     Directive = "player_name"
	SortOddsDesc       Directive = "odds_desc"
	SortOddsAsc        Directive = "odds_asc"
)

// ParseDirective normalizes a user-supplied sort token. Unknown tokens
// return ok=false; callers keep the input order rather than erroring.
func ParseDirective(s string) (Directive, bool) {
	d := Directive(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	switch d {
	case SortValueDesc, SortValueAsc,
		SortConfidenceDesc, SortConfidenceAsc,
		SortPropType, SortPlayerName,
		SortOddsDesc, SortOddsAsc:
		return d, true
	}
	return d, false
}

// BestValue returns the larger of the over/under predicted values,
// treating a missing side as 0. ok is false when both sides are nil,
// which sorts the entry after every entry with a present value.
func BestValue(p models.Prediction) (float64, bool) {
	if p.PredictedValueOver == nil && p.PredictedValueUnder == nil {
		return 0, false
	}
	return math.Max(deref0(p.PredictedValueOver), deref0(p.PredictedValueUnder)), true
}

// BestOdds returns the more favorable of the two American prices.
// ok is false when both sides are missing; such entries are unranked
// and sort strictly last in either direction.
func BestOdds(p models.Prediction) (int, bool) {
	switch {
	case p.BestOverOdds == nil && p.BestUnderOdds == nil:
		return 0, false
	case p.BestOverOdds == nil:
		return *p.BestUnderOdds, true
	case p.BestUnderOdds == nil:
		return *p.BestOverOdds, true
	}
	return oddsmath.BestAmerican(*p.BestOverOdds, *p.BestUnderOdds), true
}

// Sort returns a new slice ordered by the directive. The input is
// never mutated and the sort is stable, so ties keep their input
// order. An unrecognized directive returns the input order unchanged.
func Sort(list []models.Prediction, directive Directive) []models.Prediction {
	out := make([]models.Prediction, len(list))
	copy(out, list)

	var less func(a, b models.Prediction) bool

	switch directive {
	case SortValueDesc:
		less = func(a, b models.Prediction) bool {
			va, oka := BestValue(a)
			vb, okb := BestValue(b)
			if oka != okb {
				return oka // unranked entries always sink
			}
			return va > vb
		}
	case SortValueAsc:
		less = func(a, b models.Prediction) bool {
			va, oka := BestValue(a)
			vb, okb := BestValue(b)
			if oka != okb {
				return oka
			}
			return va < vb
		}
	case SortConfidenceDesc:
		less = func(a, b models.Prediction) bool {
			return a.ConfidenceScore > b.ConfidenceScore
		}
	case SortConfidenceAsc:
		less = func(a, b models.Prediction) bool {
			return a.ConfidenceScore < b.ConfidenceScore
		}
	case SortPropType:
		less = func(a, b models.Prediction) bool {
			if a.PropType != b.PropType {
				return a.PropType < b.PropType
			}
			// Within a prop type the strongest edge goes first
			va, _ := BestValue(a)
			vb, _ := BestValue(b)
			return va > vb
		}
	case SortPlayerName:
		less = func(a, b models.Prediction) bool {
			return a.PlayerName() < b.PlayerName()
		}
	case SortOddsDesc:
		less = func(a, b models.Prediction) bool {
			oa, oka := BestOdds(a)
			ob, okb := BestOdds(b)
			if oka != okb {
				return oka
			}
			return oa > ob
		}
	case SortOddsAsc:
		less = func(a, b models.Prediction) bool {
			oa, oka := BestOdds(a)
			ob, okb := BestOdds(b)
			if oka != okb {
				return oka
			}
			return oa < ob
		}
	default:
		// Unknown directive: keep the caller's order
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})

	return out
}

func deref0(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
