package discord

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/KirkDiggler/ohhell/internal/ledger"
	"github.com/KirkDiggler/ohhell/internal/models"
	"github.com/KirkDiggler/ohhell/internal/services/game"
	gameMocks "github.com/KirkDiggler/ohhell/internal/services/game/mocks"
	"github.com/KirkDiggler/ohhell/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/ohhell/internal/services/messaging/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OhHellCommandTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockGameService *gameMocks.MockService
	mockMessaging   *messagingMocks.MockService
	command         *OhHellCommand
	ctx             context.Context

	testChannelID string
	testGameID    string
	testState     *game.GameState
}

func (s *OhHellCommandTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameService = gameMocks.NewMockService(s.mockCtrl)
	s.mockMessaging = messagingMocks.NewMockService(s.mockCtrl)
	s.command = NewOhHellCommand(s.mockGameService, s.mockMessaging)
	s.ctx = context.Background()

	s.testChannelID = "test-channel-id"
	s.testGameID = "test-game-id"
	s.testState = &game.GameState{
		GameID:       s.testGameID,
		TableID:      s.testChannelID,
		Players:      []string{"Alice", "Bob", "Carol"},
		Scores:       map[string]int{"Alice": 0, "Bob": 0, "Carol": 0},
		CurrentRound: 1,
		HandSize:     1,
		Dealer:       "Alice",
		MaxCards:     16,
		TotalRounds:  31,
		Leader:       "Alice",
	}
}

func (s *OhHellCommandTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOhHellCommandSuite(t *testing.T) {
	suite.Run(t, new(OhHellCommandTestSuite))
}

func subcommand(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:    name,
		Type:    discordgo.ApplicationCommandOptionSubCommand,
		Options: options,
	}
}

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func intOption(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}

func (s *OhHellCommandTestSuite) expectCurrentGame() {
	s.mockGameService.EXPECT().
		GetGameByTable(gomock.Any(), &game.GetGameByTableInput{TableID: s.testChannelID}).
		Return(&game.GetGameByTableOutput{Game: s.testState}, nil)
}

func (s *OhHellCommandTestSuite) TestCommandDefinition() {
	cmd := s.command.GetCommand()
	s.Equal("ohhell", cmd.Name)

	names := make([]string, 0, len(cmd.Options))
	for _, opt := range cmd.Options {
		names = append(names, opt.Name)
	}
	s.Equal([]string{"start", "round", "undo", "scores", "end"}, names)
	s.Contains(s.command.Buttons(), ButtonUndoRound)
}

func (s *OhHellCommandTestSuite) TestStart() {
	s.mockGameService.EXPECT().
		CreateGame(gomock.Any(), &game.CreateGameInput{
			TableID:   s.testChannelID,
			Players:   []string{"Alice", "Bob", "Carol"},
			MaxRounds: 5,
		}).
		Return(&game.CreateGameOutput{Game: s.testState}, nil)

	response, err := s.command.run(s.ctx, s.testChannelID,
		subcommand("start", stringOption("players", "Alice, Bob, Carol"), intOption("rounds", 5)))

	s.Require().NoError(err)
	s.Require().Len(response.Embeds, 1)
	s.Contains(response.Embeds[0].Description, "Alice, Bob, Carol")
	s.Contains(response.Embeds[0].Description, "**1 card**, Alice deals")
	s.NotContains(response.Embeds[0].Description, "discarded")
}

func (s *OhHellCommandTestSuite) TestStart_ReplacesGame() {
	s.mockGameService.EXPECT().
		CreateGame(gomock.Any(), gomock.Any()).
		Return(&game.CreateGameOutput{Game: s.testState, ReplacedGameID: "old"}, nil)

	response, err := s.command.run(s.ctx, s.testChannelID,
		subcommand("start", stringOption("players", "Alice, Bob, Carol")))

	s.Require().NoError(err)
	s.Contains(response.Embeds[0].Description, "discarded")
}

func (s *OhHellCommandTestSuite) TestStart_TooFewPlayers() {
	ruleErr := fmt.Errorf("%w: need 3 to 7 players, got 2", ledger.ErrInvalidPlayerCount)
	s.mockGameService.EXPECT().
		CreateGame(gomock.Any(), gomock.Any()).
		Return(nil, ruleErr)

	_, err := s.command.run(s.ctx, s.testChannelID,
		subcommand("start", stringOption("players", "Alice, Bob")))

	s.Require().ErrorIs(err, ledger.ErrInvalidPlayerCount)
	s.Equal(ruleErr.Error(), s.command.errorMessage(err))
}

func (s *OhHellCommandTestSuite) TestRound() {
	s.expectCurrentGame()
	scored := &game.GameState{
		GameID:       s.testGameID,
		Players:      s.testState.Players,
		Scores:       map[string]int{"Alice": 6, "Bob": 5, "Carol": -1},
		CurrentRound: 2,
		HandSize:     2,
		Dealer:       "Bob",
		TotalRounds:  31,
	}
	round := &models.Round{
		RoundNumber: 1,
		HandSize:    1,
		Dealer:      "Alice",
		Bids:        map[string]int{"Alice": 1, "Bob": 0, "Carol": 1},
		Tricks:      map[string]int{"Alice": 1, "Bob": 0, "Carol": 0},
		Scores:      map[string]int{"Alice": 6, "Bob": 5, "Carol": -1},
	}
	s.mockGameService.EXPECT().
		AddRound(gomock.Any(), &game.AddRoundInput{
			GameID: s.testGameID,
			Bids:   round.Bids,
			Tricks: round.Tricks,
		}).
		Return(&game.AddRoundOutput{Round: round, Game: scored}, nil)
	s.mockMessaging.EXPECT().
		GetRoundMessage(gomock.Any(), &messaging.GetRoundMessageInput{Players: scored.Players, Round: round}).
		Return(&messaging.GetRoundMessageOutput{Message: "Only Alice and Bob made it."}, nil)

	response, err := s.command.run(s.ctx, s.testChannelID, subcommand("round",
		stringOption("bids", "alice=1 bob=0 carol=1"),
		stringOption("tricks", "Alice=1, Bob=0, Carol=0")))

	s.Require().NoError(err)
	s.Contains(response.Content, "✅ Alice: bid 1, won 1, +6")
	s.Contains(response.Content, "❌ Carol: bid 1, won 0, -1")
	s.Equal("Scores", response.Embeds[0].Title)
	s.Contains(response.Embeds[0].Description, "Round 2 of 31: **2 cards**, Bob deals.")
	s.Require().Len(response.Components, 1)
	s.Contains(response.Content, "*Only Alice and Bob made it.*")
}

func (s *OhHellCommandTestSuite) TestRound_FinalRound() {
	s.expectCurrentGame()
	final := &game.GameState{
		Players:     s.testState.Players,
		Scores:      map[string]int{"Alice": 12, "Bob": 4, "Carol": 4},
		Complete:    true,
		Leader:      "Alice",
		LeaderScore: 12,
	}
	s.mockGameService.EXPECT().
		AddRound(gomock.Any(), gomock.Any()).
		Return(&game.AddRoundOutput{
			Round:        &models.Round{RoundNumber: 2, HandSize: 2, Dealer: "Bob"},
			Game:         final,
			GameComplete: true,
		}, nil)
	s.mockMessaging.EXPECT().
		GetGameOverMessage(gomock.Any(), &messaging.GetGameOverMessageInput{Players: final.Players, Scores: final.Scores}).
		Return(&messaging.GetGameOverMessageOutput{Message: "All hail Alice!"}, nil)

	response, err := s.command.run(s.ctx, s.testChannelID, subcommand("round",
		stringOption("bids", "Alice=1 Bob=0 Carol=0"),
		stringOption("tricks", "Alice=1 Bob=1 Carol=0")))

	s.Require().NoError(err)
	embed := response.Embeds[0]
	s.Equal("Final scores", embed.Title)
	s.Contains(embed.Description, "**Alice** wins with 12")
	s.Equal("🏆 Alice", embed.Fields[0].Name)
	s.Contains(response.Content, "All hail Alice!")
}

func (s *OhHellCommandTestSuite) TestRound_CommentaryFailureIsIgnored() {
	s.expectCurrentGame()
	s.mockGameService.EXPECT().
		AddRound(gomock.Any(), gomock.Any()).
		Return(&game.AddRoundOutput{
			Round: &models.Round{RoundNumber: 1, HandSize: 1, Dealer: "Alice"},
			Game:  s.testState,
		}, nil)
	s.mockMessaging.EXPECT().
		GetRoundMessage(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("no messages"))

	response, err := s.command.run(s.ctx, s.testChannelID, subcommand("round",
		stringOption("bids", "Alice=1 Bob=0 Carol=1"),
		stringOption("tricks", "Alice=1 Bob=0 Carol=0")))

	s.Require().NoError(err)
	s.NotContains(response.Content, "*")
}

func (s *OhHellCommandTestSuite) TestRound_WithoutCommentary() {
	command := NewOhHellCommand(s.mockGameService, nil)
	s.expectCurrentGame()
	s.mockGameService.EXPECT().
		AddRound(gomock.Any(), gomock.Any()).
		Return(&game.AddRoundOutput{
			Round: &models.Round{RoundNumber: 1, HandSize: 1, Dealer: "Alice"},
			Game:  s.testState,
		}, nil)

	response, err := command.run(s.ctx, s.testChannelID, subcommand("round",
		stringOption("bids", "Alice=1 Bob=0 Carol=1"),
		stringOption("tricks", "Alice=1 Bob=0 Carol=0")))

	s.Require().NoError(err)
	s.Contains(response.Content, "Round 1 (1 cards, Alice dealt)")
}

func (s *OhHellCommandTestSuite) TestRound_UnknownPlayer() {
	s.expectCurrentGame()

	_, err := s.command.run(s.ctx, s.testChannelID, subcommand("round",
		stringOption("bids", "Alice=1 Bob=0 Dave=1"),
		stringOption("tricks", "Alice=1 Bob=0 Carol=0")))

	s.Require().ErrorIs(err, ErrUnknownPlayer)
	message := s.command.errorMessage(err)
	s.Contains(message, "bids")
	s.Contains(message, "Dave")
}

func (s *OhHellCommandTestSuite) TestRound_RuleViolation() {
	s.expectCurrentGame()
	s.mockGameService.EXPECT().
		AddRound(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: bids total 1 (dealer Alice must bid differently)", ledger.ErrDealerRuleViolation))

	_, err := s.command.run(s.ctx, s.testChannelID, subcommand("round",
		stringOption("bids", "Alice=0 Bob=0 Carol=1"),
		stringOption("tricks", "Alice=1 Bob=0 Carol=0")))

	s.Require().ErrorIs(err, ledger.ErrDealerRuleViolation)
	s.Contains(s.command.errorMessage(err), "dealer Alice must bid differently")
}

func (s *OhHellCommandTestSuite) TestRound_NoGame() {
	s.mockGameService.EXPECT().
		GetGameByTable(gomock.Any(), gomock.Any()).
		Return(nil, game.ErrGameNotFound)

	_, err := s.command.run(s.ctx, s.testChannelID, subcommand("round",
		stringOption("bids", "Alice=1"), stringOption("tricks", "Alice=1")))

	s.Equal(noGameMessage, s.command.errorMessage(err))
}

func (s *OhHellCommandTestSuite) TestUndo() {
	s.expectCurrentGame()
	s.mockGameService.EXPECT().
		UndoRound(gomock.Any(), &game.UndoRoundInput{GameID: s.testGameID}).
		Return(&game.UndoRoundOutput{
			Round: &models.Round{
				RoundNumber: 1,
				Bids:        map[string]int{"Alice": 1, "Bob": 0, "Carol": 1},
				Tricks:      map[string]int{"Alice": 1, "Bob": 0, "Carol": 0},
			},
			Game: s.testState,
		}, nil)

	response, err := s.command.run(s.ctx, s.testChannelID, subcommand("undo"))

	s.Require().NoError(err)
	s.Contains(response.Content, "Undid round 1")
	s.Contains(response.Content, "`bids: Alice=1 Bob=0 Carol=1`")
	s.Contains(response.Content, "`tricks: Alice=1 Bob=0 Carol=0`")
}

func (s *OhHellCommandTestSuite) TestUndo_NothingToUndo() {
	s.expectCurrentGame()
	s.mockGameService.EXPECT().
		UndoRound(gomock.Any(), gomock.Any()).
		Return(nil, ledger.ErrEmptyHistory)

	_, err := s.command.run(s.ctx, s.testChannelID, subcommand("undo"))

	s.Equal("There are no rounds to undo.", s.command.errorMessage(err))
}

func (s *OhHellCommandTestSuite) TestScores() {
	s.expectCurrentGame()

	response, err := s.command.run(s.ctx, s.testChannelID, subcommand("scores"))

	s.Require().NoError(err)
	s.Require().Len(response.Embeds[0].Fields, 3)
	s.Equal("Bob", response.Embeds[0].Fields[1].Name)
	s.Equal("0", response.Embeds[0].Fields[1].Value)
}

func (s *OhHellCommandTestSuite) TestEnd() {
	s.expectCurrentGame()
	s.mockGameService.EXPECT().
		ResetGame(gomock.Any(), &game.ResetGameInput{GameID: s.testGameID}).
		Return(&game.ResetGameOutput{Success: true}, nil)

	response, err := s.command.run(s.ctx, s.testChannelID, subcommand("end"))

	s.Require().NoError(err)
	s.Equal("Game ended.", response.Content)
}

func (s *OhHellCommandTestSuite) TestErrorMessage_HidesInternalErrors() {
	s.Equal("Something went wrong, please try again.",
		s.command.errorMessage(errors.New("failed to save game: connection refused")))
}

func (s *OhHellCommandTestSuite) TestUnknownSubcommand() {
	_, err := s.command.run(s.ctx, s.testChannelID, subcommand("deal"))
	s.Error(err)
}
