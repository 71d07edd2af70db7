package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusActive indicates rounds are still being played
	GameStatusActive GameStatus = "active"

	// GameStatusCompleted indicates every round in the hand-size sequence has been scored
	GameStatusCompleted GameStatus = "completed"
)

// IsActive returns true if the game still accepts rounds
func (s GameStatus) IsActive() bool {
	return s == GameStatusActive
}

// IsCompleted returns true if the game has no rounds left
func (s GameStatus) IsCompleted() bool {
	return s == GameStatusCompleted
}

// Game is the persisted snapshot of a scored game. It carries enough to rebuild
// the round ledger by replaying Rounds in order.
type Game struct {
	// ID is the unique identifier for the game
	ID string `json:"id"`

	// TableID is where the game is being played (a Discord channel or a web session)
	TableID string `json:"table_id,omitempty"`

	// Status is the current state of the game
	Status GameStatus `json:"status"`

	// Players contains the player names in seating order
	Players []string `json:"players"`

	// MaxRounds caps the number of rounds, zero means the full sequence
	MaxRounds int `json:"max_rounds,omitempty"`

	// MaxCards is the largest hand dealt in the game
	MaxCards int `json:"max_cards"`

	// TotalRounds is the length of the hand-size sequence
	TotalRounds int `json:"total_rounds"`

	// ExactBidBonus is the bonus awarded for making a bid exactly
	ExactBidBonus int `json:"exact_bid_bonus"`

	// Rounds contains every scored round in order
	Rounds []*Round `json:"rounds"`

	// Scores contains the cumulative score per player
	Scores map[string]int `json:"scores"`

	// CreatedAt is when the game was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time `json:"updated_at"`
}
