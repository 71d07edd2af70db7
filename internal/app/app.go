// Package app wires the stores, event publisher and game service shared by the
// server and the bot.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/KirkDiggler/ohhell/internal/common/clock"
	"github.com/KirkDiggler/ohhell/internal/common/id"
	"github.com/KirkDiggler/ohhell/internal/config"
	"github.com/KirkDiggler/ohhell/internal/events"
	gameRepo "github.com/KirkDiggler/ohhell/internal/repositories/game"
	historyRepo "github.com/KirkDiggler/ohhell/internal/repositories/history"
	"github.com/KirkDiggler/ohhell/internal/services/game"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
)

// App holds the connections and the game service built from a Config
type App struct {
	GameService game.Service

	redisClient *redis.Client
	natsConn    *nats.Conn
}

// New connects to Redis, and to NATS when a URL is configured, and builds the game service.
// name identifies the process to NATS.
func New(ctx context.Context, cfg *config.Config, name string) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	a := &App{redisClient: redisClient}

	games, err := gameRepo.NewRedis(&gameRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create game repository: %w", err)
	}

	history, err := historyRepo.NewRedis(&historyRepo.Config{
		RedisClient: redisClient,
		MaxRecords:  cfg.HistoryLimit,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create history repository: %w", err)
	}

	var publisher events.Publisher = events.Nop{}
	if cfg.NATSURL != "" {
		conn, err := events.Connect(cfg.NATSURL, name)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		a.natsConn = conn

		publisher, err = events.NewNATS(&events.NATSConfig{
			Conn:          conn,
			SubjectPrefix: cfg.NATSSubjectPrefix,
		})
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to create event publisher: %w", err)
		}
		log.Printf("Publishing game events to %s", cfg.NATSURL)
	}

	svc, err := game.New(&game.Config{
		ExactBidBonus: cfg.ExactBidBonus,
		GameRepo:      games,
		HistoryRepo:   history,
		Publisher:     publisher,
		Clock:         clock.System{},
		IDGenerator:   id.NewUUIDGenerator(),
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create game service: %w", err)
	}
	a.GameService = svc

	active, err := games.GetActiveGames(ctx, &gameRepo.GetActiveGamesInput{})
	if err != nil {
		log.Printf("Error counting active games: %v", err)
	} else {
		log.Printf("%d games in progress", len(active.Games))
	}

	return a, nil
}

// Close drains NATS and closes the Redis client
func (a *App) Close() {
	if a.natsConn != nil {
		if err := a.natsConn.Drain(); err != nil {
			log.Printf("Error draining NATS connection: %v", err)
		}
	}
	if err := a.redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}
}
