package models

import (
	"time"
)

// HistoryRecord is an archived, completed game
type HistoryRecord struct {
	// ID is the unique identifier for the record
	ID string `json:"id"`

	// GameID is the game the record was archived from
	GameID string `json:"game_id"`

	// CompletedAt is when the final round was scored
	CompletedAt time.Time `json:"completed_at"`

	// Players contains the player names in seating order
	Players []string `json:"players"`

	// FinalScores maps each player to their final score
	FinalScores map[string]int `json:"final_scores"`

	// Rounds contains every scored round
	Rounds []*Round `json:"rounds"`

	// MaxCards is the largest hand dealt in the game
	MaxCards int `json:"max_cards"`

	// TotalRounds is the number of rounds played
	TotalRounds int `json:"total_rounds"`

	// Winner is the player with the highest final score
	Winner string `json:"winner"`
}
