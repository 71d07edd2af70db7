package app

import (
	"context"
	"testing"

	"github.com/KirkDiggler/ohhell/internal/config"
	"github.com/KirkDiggler/ohhell/internal/services/game"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
)

type AppTestSuite struct {
	suite.Suite
	mr  *miniredis.Miniredis
	cfg *config.Config
	ctx context.Context
}

func (s *AppTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.cfg = &config.Config{
		RedisAddr:     s.mr.Addr(),
		HistoryLimit:  10,
		ExactBidBonus: 10,
	}
	s.ctx = context.Background()
}

func (s *AppTestSuite) TearDownTest() {
	s.mr.Close()
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (s *AppTestSuite) TestNew_WiresGameService() {
	a, err := New(s.ctx, s.cfg, "test")
	s.Require().NoError(err)
	defer a.Close()

	created, err := a.GameService.CreateGame(s.ctx, &game.CreateGameInput{
		Players: []string{"Alice", "Bob", "Carol"},
	})
	s.Require().NoError(err)

	output, err := a.GameService.AddRound(s.ctx, &game.AddRoundInput{
		GameID: created.Game.GameID,
		Bids:   map[string]int{"Alice": 1, "Bob": 0, "Carol": 1},
		Tricks: map[string]int{"Alice": 1, "Bob": 0, "Carol": 0},
	})
	s.Require().NoError(err)

	// The configured bonus is used
	s.Equal(11, output.Round.Scores["Alice"])
	s.True(s.mr.Exists("game:" + created.Game.GameID))
}

func (s *AppTestSuite) TestNew_RedisUnavailable() {
	s.cfg.RedisAddr = "127.0.0.1:1"

	_, err := New(s.ctx, s.cfg, "test")
	s.ErrorContains(err, "failed to connect to Redis")
}

func (s *AppTestSuite) TestNew_NilConfig() {
	_, err := New(s.ctx, nil, "test")
	s.Error(err)
}
