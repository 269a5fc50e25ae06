package props

import (
	"github.com/XavierBriggs/propboard/pkg/models"
	"github.com/XavierBriggs/propboard/pkg/oddsmath"
)

// CategoryOrder is the fixed display order for prop categories.
// Grouping never reorders categories, only the predictions inside
// each one, so this sequence is identical for every sort directive.
var CategoryOrder = []models.PropType{
	models.PropPoints,
	models.PropAssists,
	models.PropRebounds,
	models.PropSteals,
	models.PropBlocks,
	models.PropThrees,
}

// Group is one rendered section of the predictions view
type Group struct {
	PropType    models.PropType     `json:"prop_type"`
	Predictions []models.Prediction `json:"predictions"`
}

// GroupByCategory partitions an already-sorted prediction list by
// prop type, preserving the relative order inside each partition
func GroupByCategory(sorted []models.Prediction) map[models.PropType][]models.Prediction {
	groups := make(map[models.PropType][]models.Prediction)
	for _, p := range sorted {
		groups[p.PropType] = append(groups[p.PropType], p)
	}
	return groups
}

// DisplayCategories returns the categories to render: the fixed
// CategoryOrder intersected with the categories that still have at
// least one prediction. When only is non-empty the result is
// restricted to that single category. Empty categories are omitted.
func DisplayCategories(groups map[models.PropType][]models.Prediction, only models.PropType) []models.PropType {
	shown := make([]models.PropType, 0, len(CategoryOrder))
	for _, cat := range CategoryOrder {
		if only != "" && cat != only {
			continue
		}
		if len(groups[cat]) == 0 {
			continue
		}
		shown = append(shown, cat)
	}
	return shown
}

// BuildView runs the full pipeline over a raw prediction list:
// value-bet filter, sort, implied-probability annotation, group,
// fixed category ordering
func BuildView(list []models.Prediction, directive Directive, minValue, minConfidence float64, only models.PropType) []Group {
	filtered := FilterValueBets(list, minValue, minConfidence)
	sorted := attachImpliedProb(Sort(filtered, directive))
	groups := GroupByCategory(sorted)

	view := make([]Group, 0, len(groups))
	for _, cat := range DisplayCategories(groups, only) {
		view = append(view, Group{PropType: cat, Predictions: groups[cat]})
	}
	return view
}

// attachImpliedProb annotates each entry with the implied probability
// of its best price, so clients can show the market's side of the
// predicted edge. Entries with no odds stay unannotated. The sentinel
// handling lives in BestOdds; it never leaks into displayed values.
func attachImpliedProb(list []models.Prediction) []models.Prediction {
	for i := range list {
		odds, ok := BestOdds(list[i])
		if !ok {
			continue
		}
		prob, err := oddsmath.AmericanToImpliedProbability(odds)
		if err != nil {
			continue
		}
		list[i].BestOddsImpliedProb = &prob
	}
	return list
}
