package game

import (
	"context"
	"testing"

	"github.com/KirkDiggler/ohhell/internal/common/clock"
	"github.com/KirkDiggler/ohhell/internal/common/id"
	gameRepo "github.com/KirkDiggler/ohhell/internal/repositories/game"
	historyRepo "github.com/KirkDiggler/ohhell/internal/repositories/history"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

// RedisServiceTestSuite runs the service against real repositories to cover
// restoring games after a restart
type RedisServiceTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	ctx    context.Context
}

func (s *RedisServiceTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})
	s.ctx = context.Background()
}

func (s *RedisServiceTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisServiceSuite(t *testing.T) {
	suite.Run(t, new(RedisServiceTestSuite))
}

// newService builds a service with an empty registry, as after a restart
func (s *RedisServiceTestSuite) newService() Service {
	games, err := gameRepo.NewRedis(&gameRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	history, err := historyRepo.NewRedis(&historyRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	svc, err := New(&Config{
		GameRepo:    games,
		HistoryRepo: history,
		Clock:       clock.System{},
		IDGenerator: id.NewUUIDGenerator(),
	})
	s.Require().NoError(err)
	return svc
}

func (s *RedisServiceTestSuite) TestGameSurvivesRestart() {
	svc := s.newService()
	created, err := svc.CreateGame(s.ctx, &CreateGameInput{
		TableID:   "channel-1",
		Players:   []string{"Alice", "Bob", "Carol"},
		MaxRounds: 3,
	})
	s.Require().NoError(err)
	gameID := created.Game.GameID

	_, err = svc.AddRound(s.ctx, &AddRoundInput{
		GameID: gameID,
		Bids:   map[string]int{"Alice": 1, "Bob": 0, "Carol": 1},
		Tricks: map[string]int{"Alice": 1, "Bob": 0, "Carol": 0},
	})
	s.Require().NoError(err)

	restarted := s.newService()
	byTable, err := restarted.GetGameByTable(s.ctx, &GetGameByTableInput{TableID: "channel-1"})
	s.Require().NoError(err)
	s.Equal(gameID, byTable.Game.GameID)
	s.Equal(2, byTable.Game.CurrentRound)
	s.Equal("Bob", byTable.Game.Dealer)
	s.Equal(map[string]int{"Alice": 6, "Bob": 5, "Carol": -1}, byTable.Game.Scores)

	// Undo reaches back past the restart
	undone, err := restarted.UndoRound(s.ctx, &UndoRoundInput{GameID: gameID})
	s.Require().NoError(err)
	s.Equal(1, undone.Round.RoundNumber)
	s.Equal(1, undone.Game.CurrentRound)
}

func (s *RedisServiceTestSuite) TestCompletedGameIsArchived() {
	svc := s.newService()
	created, err := svc.CreateGame(s.ctx, &CreateGameInput{
		Players:   []string{"Alice", "Bob", "Carol"},
		MaxRounds: 2,
	})
	s.Require().NoError(err)
	gameID := created.Game.GameID

	_, err = svc.AddRound(s.ctx, &AddRoundInput{
		GameID: gameID,
		Bids:   map[string]int{"Alice": 1, "Bob": 0, "Carol": 1},
		Tricks: map[string]int{"Alice": 1, "Bob": 0, "Carol": 0},
	})
	s.Require().NoError(err)
	done, err := svc.AddRound(s.ctx, &AddRoundInput{
		GameID: gameID,
		Bids:   map[string]int{"Alice": 1, "Bob": 0, "Carol": 0},
		Tricks: map[string]int{"Alice": 1, "Bob": 1, "Carol": 0},
	})
	s.Require().NoError(err)
	s.True(done.GameComplete)

	list, err := svc.ListHistory(s.ctx, &ListHistoryInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Records, 1)
	s.Equal("Alice", list.Records[0].Winner)
	s.Equal(map[string]int{"Alice": 12, "Bob": 4, "Carol": 4}, list.Records[0].FinalScores)

	// Undoing the final round takes the game back out of the archive
	_, err = svc.UndoRound(s.ctx, &UndoRoundInput{GameID: gameID})
	s.Require().NoError(err)

	list, err = svc.ListHistory(s.ctx, &ListHistoryInput{})
	s.Require().NoError(err)
	s.Empty(list.Records)
}

func (s *RedisServiceTestSuite) TestNewGameReplacesTableGame() {
	svc := s.newService()
	first, err := svc.CreateGame(s.ctx, &CreateGameInput{
		TableID: "channel-1",
		Players: []string{"Alice", "Bob", "Carol"},
	})
	s.Require().NoError(err)

	second, err := svc.CreateGame(s.ctx, &CreateGameInput{
		TableID: "channel-1",
		Players: []string{"Dave", "Erin", "Frank", "Grace"},
	})
	s.Require().NoError(err)
	s.Equal(first.Game.GameID, second.ReplacedGameID)

	_, err = svc.GetGame(s.ctx, &GetGameInput{GameID: first.Game.GameID})
	s.ErrorIs(err, ErrGameNotFound)

	byTable, err := svc.GetGameByTable(s.ctx, &GetGameByTableInput{TableID: "channel-1"})
	s.Require().NoError(err)
	s.Equal(second.Game.GameID, byTable.Game.GameID)
	s.Equal(12, byTable.Game.MaxCards)
}
