package props

import "github.com/XavierBriggs/propboard/pkg/models"

// AttachOpponents resolves each prediction's opponent team from the
// games list. Pure lookup join: predictions whose game is unknown are
// passed through untouched. Returns a new slice.
func AttachOpponents(list []models.Prediction, games []models.Game) []models.Prediction {
	byID := make(map[string]models.Game, len(games))
	for _, g := range games {
		byID[g.GameID] = g
	}

	out := make([]models.Prediction, len(list))
	copy(out, list)

	for i := range out {
		game, ok := byID[out[i].GameID]
		if !ok {
			continue
		}
		switch out[i].PlayerTeam {
		case game.HomeTeam:
			out[i].OpponentTeam = game.AwayTeam
		case game.AwayTeam:
			out[i].OpponentTeam = game.HomeTeam
		default:
			// Player's team isn't in the linked game: bad data, leave unset
		}
	}

	return out
}
