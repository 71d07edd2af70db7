package game

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/ohhell/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newGame(id, tableID string, status models.GameStatus) *models.Game {
	return &models.Game{
		ID:            id,
		TableID:       tableID,
		Status:        status,
		Players:       []string{"Alice", "Bob", "Carol"},
		MaxCards:      16,
		TotalRounds:   31,
		ExactBidBonus: 5,
		Rounds: []*models.Round{
			{
				RoundNumber: 1,
				HandSize:    1,
				Dealer:      "Alice",
				Bids:        map[string]int{"Alice": 1, "Bob": 0, "Carol": 1},
				Tricks:      map[string]int{"Alice": 1, "Bob": 0, "Carol": 0},
				Scores:      map[string]int{"Alice": 6, "Bob": 5, "Carol": -1},
			},
		},
		Scores:    map[string]int{"Alice": 6, "Bob": 5, "Carol": -1},
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetGame() {
	game := s.newGame("test-game-id", "test-table-id", models.GameStatusActive)

	err := s.repo.SaveGame(s.ctx, &SaveGameInput{Game: game})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "test-game-id"})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal(game.ID, retrieved.ID)
	s.Equal(game.TableID, retrieved.TableID)
	s.Equal(models.GameStatusActive, retrieved.Status)
	s.Equal(game.Players, retrieved.Players)
	s.Equal(game.Rounds, retrieved.Rounds)
	s.Equal(game.Scores, retrieved.Scores)
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetGameNotFound() {
	game, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "missing"})
	s.Nil(game)
	s.ErrorIs(err, ErrGameNotFound)

	game, err = s.repo.GetGameByTable(s.ctx, &GetGameByTableInput{TableID: "missing"})
	s.Nil(game)
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveGameRequiresID() {
	err := s.repo.SaveGame(s.ctx, &SaveGameInput{Game: &models.Game{}})
	s.Error(err)

	err = s.repo.SaveGame(s.ctx, nil)
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestGetGameByTable() {
	first := s.newGame("first-game", "table-1", models.GameStatusActive)
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: first}))

	retrieved, err := s.repo.GetGameByTable(s.ctx, &GetGameByTableInput{TableID: "table-1"})
	s.Require().NoError(err)
	s.Equal("first-game", retrieved.ID)

	second := s.newGame("second-game", "table-1", models.GameStatusActive)
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: second}))

	retrieved, err = s.repo.GetGameByTable(s.ctx, &GetGameByTableInput{TableID: "table-1"})
	s.Require().NoError(err)
	s.Equal("second-game", retrieved.ID)
}

func (s *RedisRepositoryTestSuite) TestGetActiveGames() {
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{
		Game: s.newGame("active-game", "table-1", models.GameStatusActive),
	}))
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{
		Game: s.newGame("done-game", "table-2", models.GameStatusCompleted),
	}))

	output, err := s.repo.GetActiveGames(s.ctx, &GetActiveGamesInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Games, 1)
	s.Equal("active-game", output.Games[0].ID)

	// Completing a game drops it from the active set
	done := s.newGame("active-game", "table-1", models.GameStatusCompleted)
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: done}))

	output, err = s.repo.GetActiveGames(s.ctx, &GetActiveGamesInput{})
	s.Require().NoError(err)
	s.Empty(output.Games)
}

func (s *RedisRepositoryTestSuite) TestGetActiveGamesSkipsMissing() {
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{
		Game: s.newGame("active-game", "table-1", models.GameStatusActive),
	}))
	s.mr.SAdd(activeGamesKey, "ghost-game")

	output, err := s.repo.GetActiveGames(s.ctx, &GetActiveGamesInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Games, 1)
	s.Equal("active-game", output.Games[0].ID)
}

func (s *RedisRepositoryTestSuite) TestDeleteGame() {
	game := s.newGame("test-game-id", "test-table-id", models.GameStatusActive)
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: game}))

	err := s.repo.DeleteGame(s.ctx, &DeleteGameInput{GameID: "test-game-id"})
	s.Require().NoError(err)

	_, err = s.repo.GetGame(s.ctx, &GetGameInput{GameID: "test-game-id"})
	s.ErrorIs(err, ErrGameNotFound)

	_, err = s.repo.GetGameByTable(s.ctx, &GetGameByTableInput{TableID: "test-table-id"})
	s.ErrorIs(err, ErrGameNotFound)

	members, err := s.client.SMembers(s.ctx, activeGamesKey).Result()
	s.Require().NoError(err)
	s.Empty(members)

	err = s.repo.DeleteGame(s.ctx, &DeleteGameInput{GameID: "test-game-id"})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteGameKeepsNewerTableMapping() {
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{
		Game: s.newGame("old-game", "table-1", models.GameStatusActive),
	}))
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{
		Game: s.newGame("new-game", "table-1", models.GameStatusActive),
	}))

	s.Require().NoError(s.repo.DeleteGame(s.ctx, &DeleteGameInput{GameID: "old-game"}))

	retrieved, err := s.repo.GetGameByTable(s.ctx, &GetGameByTableInput{TableID: "table-1"})
	s.Require().NoError(err)
	s.Equal("new-game", retrieved.ID)
}
