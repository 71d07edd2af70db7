package web

import (
	"time"

	"github.com/KirkDiggler/ohhell/internal/models"
)

type newGameRequest struct {
	Players   []string `json:"players"`
	MaxRounds int      `json:"max_rounds"`
}

type newGameResponse struct {
	GameID      string   `json:"game_id"`
	Players     []string `json:"players"`
	MaxCards    int      `json:"max_cards"`
	TotalRounds int      `json:"total_rounds"`
	HandSize    *int     `json:"hand_size"`
	Dealer      *string  `json:"dealer"`
}

type roundRequest struct {
	Bids   map[string]int `json:"bids"`
	Tricks map[string]int `json:"tricks"`
}

type addRoundResponse struct {
	Success      bool            `json:"success"`
	Scores       map[string]int  `json:"scores"`
	Rounds       []*models.Round `json:"rounds"`
	HandSize     *int            `json:"hand_size"`
	Dealer       *string         `json:"dealer"`
	GameComplete bool            `json:"game_complete"`
}

type undoRoundResponse struct {
	Success      bool            `json:"success"`
	UndoneRound  *models.Round   `json:"undone_round"`
	Scores       map[string]int  `json:"scores"`
	Rounds       []*models.Round `json:"rounds"`
	HandSize     *int            `json:"hand_size"`
	Dealer       *string         `json:"dealer"`
	GameComplete bool            `json:"game_complete"`
}

type gameStateResponse struct {
	Players      []string        `json:"players"`
	Scores       map[string]int  `json:"scores"`
	Rounds       []*models.Round `json:"rounds"`
	CurrentRound int             `json:"current_round"`
	HandSize     *int            `json:"hand_size"`
	Dealer       *string         `json:"dealer"`
	MaxCards     int             `json:"max_cards"`
	TotalRounds  int             `json:"total_rounds"`
	GameComplete bool            `json:"game_complete"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type historySummary struct {
	ID          string         `json:"id"`
	CompletedAt time.Time      `json:"completed_at"`
	Players     []string       `json:"players"`
	FinalScores map[string]int `json:"final_scores"`
	Winner      string         `json:"winner"`
	TotalRounds int            `json:"total_rounds"`
}

type historyListResponse struct {
	Games []*historySummary `json:"games"`
}

type deleteHistoryResponse struct {
	Success bool `json:"success"`
	Deleted bool `json:"deleted"`
}

type errorResponse struct {
	Error string `json:"error"`
}
