// Package scorecard renders a game as the paper scorecard it replaces.
package scorecard

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/ohhell/internal/models"
	"github.com/pterm/pterm"
)

// Table returns the scorecard as table data: a header of player names, then
// Bid, Won, Pts and running Total rows for every round.
func Table(players []string, rounds []*models.Round) pterm.TableData {
	header := append([]string{"Round"}, players...)
	data := pterm.TableData{header}

	totals := make(map[string]int, len(players))
	for _, round := range rounds {
		bid := []string{fmt.Sprintf("R%d Bid", round.RoundNumber)}
		won := []string{fmt.Sprintf("R%d Won", round.RoundNumber)}
		pts := []string{fmt.Sprintf("R%d Pts", round.RoundNumber)}
		total := []string{"Total"}

		for _, player := range players {
			totals[player] += round.Scores[player]
			bid = append(bid, fmt.Sprintf("%d", round.Bids[player]))
			won = append(won, fmt.Sprintf("%d", round.Tricks[player]))
			pts = append(pts, fmt.Sprintf("%+d", round.Scores[player]))
			total = append(total, fmt.Sprintf("%d", totals[player]))
		}

		data = append(data, bid, won, pts, total)
	}

	return data
}

// Render returns the scorecard followed by the final scores
func Render(players []string, rounds []*models.Round, scores map[string]int) (string, error) {
	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(Table(players, rounds)).
		Srender()
	if err != nil {
		return "", fmt.Errorf("failed to render scorecard: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(pterm.DefaultSection.Sprint("OH HELL SCORECARD"))
	sb.WriteString(table)
	sb.WriteString("\n")
	sb.WriteString(pterm.DefaultSection.WithLevel(2).Sprint("FINAL SCORES"))
	for _, player := range players {
		sb.WriteString(fmt.Sprintf("%s: %d\n", player, scores[player]))
	}

	return sb.String(), nil
}
