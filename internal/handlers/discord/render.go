package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/ohhell/internal/models"
	"github.com/KirkDiggler/ohhell/internal/services/game"
	"github.com/bwmarrin/discordgo"
)

// ButtonUndoRound undoes the last round of the channel's game
const ButtonUndoRound = "ohhell_undo_round"

// renderScoreboard builds the scoreboard embed for a game
func renderScoreboard(title string, state *game.GameState) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(state.Players))
	for _, player := range state.Players {
		name := player
		if state.Complete && player == state.Leader {
			name = "🏆 " + player
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   name,
			Value:  fmt.Sprintf("%d", state.Scores[player]),
			Inline: true,
		})
	}

	color := colorGreen
	if state.Complete {
		color = colorGold
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: nextHandLine(state),
		Color:       color,
		Fields:      fields,
	}
}

// nextHandLine describes what is dealt next, or the winner once the game is over
func nextHandLine(state *game.GameState) string {
	if state.Complete {
		return fmt.Sprintf("Game complete! **%s** wins with %d.", state.Leader, state.LeaderScore)
	}

	cards := "cards"
	if state.HandSize == 1 {
		cards = "card"
	}
	return fmt.Sprintf("Round %d of %d: **%d %s**, %s deals.",
		state.CurrentRound, state.TotalRounds, state.HandSize, cards, state.Dealer)
}

// renderRound lists each player's bid, tricks and points for a scored round
func renderRound(players []string, round *models.Round) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Round %d (%d cards, %s dealt)\n", round.RoundNumber, round.HandSize, round.Dealer)
	for _, player := range players {
		marker := "❌"
		if round.Bids[player] == round.Tricks[player] {
			marker = "✅"
		}
		fmt.Fprintf(&sb, "%s %s: bid %d, won %d, %+d\n",
			marker, player, round.Bids[player], round.Tricks[player], round.Scores[player])
	}
	return sb.String()
}

func renderStarted(output *game.CreateGameOutput) *discordgo.InteractionResponseData {
	state := output.Game
	description := fmt.Sprintf("%s\n%d rounds, up to %d cards.\n\n%s",
		strings.Join(state.Players, ", "), state.TotalRounds, state.MaxCards, nextHandLine(state))
	if output.ReplacedGameID != "" {
		description += "\n\nThe previous game in this channel was discarded."
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "Oh Hell! New game",
				Description: description,
				Color:       colorGreen,
			},
		},
	}
}

func renderRoundAdded(output *game.AddRoundOutput, comment string) *discordgo.InteractionResponseData {
	title := "Scores"
	if output.GameComplete {
		title = "Final scores"
	}

	undoButton := discordgo.Button{
		Label:    "Undo round",
		Style:    discordgo.SecondaryButton,
		CustomID: ButtonUndoRound,
	}

	content := renderRound(output.Game.Players, output.Round)
	if comment != "" {
		content += "\n*" + comment + "*"
	}

	return &discordgo.InteractionResponseData{
		Content: content,
		Embeds:  []*discordgo.MessageEmbed{renderScoreboard(title, output.Game)},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{undoButton},
			},
		},
	}
}

// renderUndone shows the removed round in the form /ohhell round accepts so it can be corrected
func renderUndone(output *game.UndoRoundOutput) *discordgo.InteractionResponseData {
	round := output.Round
	players := output.Game.Players
	content := fmt.Sprintf("Undid round %d. To re-enter it:\n`bids: %s`\n`tricks: %s`",
		round.RoundNumber, formatCounts(players, round.Bids), formatCounts(players, round.Tricks))

	return &discordgo.InteractionResponseData{
		Content: content,
		Embeds:  []*discordgo.MessageEmbed{renderScoreboard("Scores", output.Game)},
	}
}

func renderEnded(state *game.GameState) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Content: "Game ended.",
		Embeds:  []*discordgo.MessageEmbed{renderScoreboard("Scores at the end", state)},
	}
}
