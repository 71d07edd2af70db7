package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/ohhell/internal/ledger"
	"github.com/KirkDiggler/ohhell/internal/services/game"
	"github.com/KirkDiggler/ohhell/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

const noGameMessage = "There's no game in this channel. Use `/ohhell start` to begin one."

// OhHellCommand handles the /ohhell command. The channel is the table, so each
// channel scores at most one game at a time.
type OhHellCommand struct {
	BaseCommand
	gameService      game.Service
	messagingService messaging.Service
}

// NewOhHellCommand creates a new ohhell command handler. messagingService may
// be nil, in which case round results carry no commentary.
func NewOhHellCommand(gameService game.Service, messagingService messaging.Service) *OhHellCommand {
	minRounds := float64(1)

	return &OhHellCommand{
		BaseCommand: BaseCommand{
			Name:        "ohhell",
			Description: "Keep score for a game of Oh Hell",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a new game in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "players",
							Description: "Players in seating order, first dealer first: Alice, Bob, Carol",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "rounds",
							Description: "Stop after this many rounds",
							MinValue:    &minRounds,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "round",
					Description: "Score the current round",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "bids",
							Description: "Each player's bid: Alice=1 Bob=0 Carol=1",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "tricks",
							Description: "Tricks each player won: Alice=1 Bob=0 Carol=0",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "undo",
					Description: "Remove the last scored round",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "scores",
					Description: "Show the scoreboard",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "end",
					Description: "End the game in this channel",
				},
			},
		},
		gameService:      gameService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the ohhell command
func (c *OhHellCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	response, err := c.run(context.Background(), i.ChannelID, data.Options[0])
	if err != nil {
		return RespondWithError(s, i, c.errorMessage(err))
	}
	return Respond(s, i, response)
}

// Buttons returns the handlers for the buttons attached to round results
func (c *OhHellCommand) Buttons() map[string]ButtonHandler {
	return map[string]ButtonHandler{
		ButtonUndoRound: c.handleUndoButton,
	}
}

func (c *OhHellCommand) handleUndoButton(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	response, err := c.undo(context.Background(), i.ChannelID)
	if err != nil {
		return RespondWithError(s, i, c.errorMessage(err))
	}
	return Respond(s, i, response)
}

// run executes a subcommand for the game at channelID
func (c *OhHellCommand) run(ctx context.Context, channelID string, sub *discordgo.ApplicationCommandInteractionDataOption) (*discordgo.InteractionResponseData, error) {
	options := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, opt := range sub.Options {
		options[opt.Name] = opt
	}

	switch sub.Name {
	case "start":
		var players string
		if opt, ok := options["players"]; ok {
			players = opt.StringValue()
		}
		rounds := 0
		if opt, ok := options["rounds"]; ok {
			rounds = int(opt.IntValue())
		}
		return c.start(ctx, channelID, players, rounds)
	case "round":
		var bids, tricks string
		if opt, ok := options["bids"]; ok {
			bids = opt.StringValue()
		}
		if opt, ok := options["tricks"]; ok {
			tricks = opt.StringValue()
		}
		return c.round(ctx, channelID, bids, tricks)
	case "undo":
		return c.undo(ctx, channelID)
	case "scores":
		return c.scores(ctx, channelID)
	case "end":
		return c.end(ctx, channelID)
	default:
		return nil, fmt.Errorf("unknown subcommand %q", sub.Name)
	}
}

func (c *OhHellCommand) start(ctx context.Context, channelID, playerList string, rounds int) (*discordgo.InteractionResponseData, error) {
	players, err := parsePlayers(playerList)
	if err != nil {
		return nil, err
	}

	output, err := c.gameService.CreateGame(ctx, &game.CreateGameInput{
		TableID:   channelID,
		Players:   players,
		MaxRounds: rounds,
	})
	if err != nil {
		return nil, err
	}

	return renderStarted(output), nil
}

func (c *OhHellCommand) round(ctx context.Context, channelID, bidList, trickList string) (*discordgo.InteractionResponseData, error) {
	current, err := c.gameService.GetGameByTable(ctx, &game.GetGameByTableInput{
		TableID: channelID,
	})
	if err != nil {
		return nil, err
	}
	players := current.Game.Players

	bids, err := parseCounts(bidList, players)
	if err != nil {
		return nil, fmt.Errorf("bids: %w", err)
	}
	tricks, err := parseCounts(trickList, players)
	if err != nil {
		return nil, fmt.Errorf("tricks: %w", err)
	}

	output, err := c.gameService.AddRound(ctx, &game.AddRoundInput{
		GameID: current.Game.GameID,
		Bids:   bids,
		Tricks: tricks,
	})
	if err != nil {
		return nil, err
	}

	return renderRoundAdded(output, c.comment(ctx, output)), nil
}

// comment returns commentary on a scored round, or on the result once the game is over
func (c *OhHellCommand) comment(ctx context.Context, output *game.AddRoundOutput) string {
	if c.messagingService == nil {
		return ""
	}

	if output.GameComplete {
		msg, err := c.messagingService.GetGameOverMessage(ctx, &messaging.GetGameOverMessageInput{
			Players: output.Game.Players,
			Scores:  output.Game.Scores,
		})
		if err != nil {
			log.Printf("Error getting game over message: %v", err)
			return ""
		}
		return msg.Message
	}

	msg, err := c.messagingService.GetRoundMessage(ctx, &messaging.GetRoundMessageInput{
		Players: output.Game.Players,
		Round:   output.Round,
	})
	if err != nil {
		log.Printf("Error getting round message: %v", err)
		return ""
	}
	return msg.Message
}

func (c *OhHellCommand) undo(ctx context.Context, channelID string) (*discordgo.InteractionResponseData, error) {
	current, err := c.gameService.GetGameByTable(ctx, &game.GetGameByTableInput{
		TableID: channelID,
	})
	if err != nil {
		return nil, err
	}

	output, err := c.gameService.UndoRound(ctx, &game.UndoRoundInput{
		GameID: current.Game.GameID,
	})
	if err != nil {
		return nil, err
	}

	return renderUndone(output), nil
}

func (c *OhHellCommand) scores(ctx context.Context, channelID string) (*discordgo.InteractionResponseData, error) {
	current, err := c.gameService.GetGameByTable(ctx, &game.GetGameByTableInput{
		TableID: channelID,
	})
	if err != nil {
		return nil, err
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{renderScoreboard("Scores", current.Game)},
	}, nil
}

func (c *OhHellCommand) end(ctx context.Context, channelID string) (*discordgo.InteractionResponseData, error) {
	current, err := c.gameService.GetGameByTable(ctx, &game.GetGameByTableInput{
		TableID: channelID,
	})
	if err != nil {
		return nil, err
	}

	if _, err := c.gameService.ResetGame(ctx, &game.ResetGameInput{
		GameID: current.Game.GameID,
	}); err != nil {
		return nil, err
	}

	return renderEnded(current.Game), nil
}

// errorMessage turns an error into something to show the channel
func (c *OhHellCommand) errorMessage(err error) string {
	var ruleErr ledger.RuleError
	var parseErr ParseError
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		return noGameMessage
	case errors.Is(err, ledger.ErrEmptyHistory):
		return "There are no rounds to undo."
	case errors.As(err, &ruleErr), errors.As(err, &parseErr):
		return err.Error()
	default:
		log.Printf("Error handling ohhell command: %v", err)
		return "Something went wrong, please try again."
	}
}
