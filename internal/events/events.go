// Package events publishes score changes so other processes (scoreboards,
// chat bots) can follow a game without polling.
package events

import (
	"context"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_publisher.go github.com/KirkDiggler/ohhell/internal/events Publisher

// Type names what happened to a game
type Type string

const (
	TypeGameCreated   Type = "game_created"
	TypeRoundAdded    Type = "round_added"
	TypeRoundUndone   Type = "round_undone"
	TypeGameCompleted Type = "game_completed"
	TypeGameReset     Type = "game_reset"
)

// Event is a change to a game's scores
type Event struct {
	Type        Type           `json:"type"`
	GameID      string         `json:"game_id"`
	TableID     string         `json:"table_id,omitempty"`
	RoundNumber int            `json:"round_num,omitempty"`
	Scores      map[string]int `json:"scores,omitempty"`
	OccurredAt  time.Time      `json:"occurred_at"`
}

// Publisher delivers events
type Publisher interface {
	Publish(ctx context.Context, event *Event) error
}

// Nop discards every event
type Nop struct{}

// Publish does nothing
func (Nop) Publish(context.Context, *Event) error {
	return nil
}
