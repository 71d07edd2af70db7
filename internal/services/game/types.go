package game

import (
	"time"

	"github.com/KirkDiggler/ohhell/internal/common/clock"
	"github.com/KirkDiggler/ohhell/internal/common/id"
	"github.com/KirkDiggler/ohhell/internal/events"
	"github.com/KirkDiggler/ohhell/internal/models"
	gameRepo "github.com/KirkDiggler/ohhell/internal/repositories/game"
	historyRepo "github.com/KirkDiggler/ohhell/internal/repositories/history"
)

// Config holds configuration for the game service
type Config struct {
	// ExactBidBonus is the bonus for making a bid exactly, zero uses the ledger default
	ExactBidBonus int

	// Repository dependencies
	GameRepo    gameRepo.Repository
	HistoryRepo historyRepo.Repository

	// Publisher receives score changes; nil discards them
	Publisher events.Publisher

	// Service dependencies
	Clock       clock.Clock
	IDGenerator id.Generator
}

// GameState is a read-only view of a game
type GameState struct {
	// GameID is the unique identifier for the game
	GameID string

	// TableID is where the game is being played
	TableID string

	// Players contains the player names in seating order
	Players []string

	// Scores contains the cumulative score per player
	Scores map[string]int

	// Rounds contains every scored round in order
	Rounds []*models.Round

	// CurrentRound is the 1-based number of the next round to score
	CurrentRound int

	// HandSize is the hand size of the next round, zero when complete
	HandSize int

	// Dealer is the dealer of the next round, empty when complete
	Dealer string

	// MaxCards is the largest hand in the game
	MaxCards int

	// TotalRounds is the number of rounds in the game
	TotalRounds int

	// Complete is true once every round has been scored
	Complete bool

	// Leader is the player currently in front, earliest seat on ties
	Leader string

	// LeaderScore is the leader's score
	LeaderScore int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// TableID optionally ties the game to a channel or session
	TableID string

	// Players in seating order; the first player deals first
	Players []string

	// MaxRounds caps the number of rounds when positive
	MaxRounds int
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	Game *GameState

	// ReplacedGameID is the game previously at the table, if any
	ReplacedGameID string
}

// GetGameInput defines the input for retrieving a game by ID
type GetGameInput struct {
	GameID string
}

// GetGameOutput contains the result of retrieving a game by ID
type GetGameOutput struct {
	Game *GameState
}

// GetGameByTableInput defines the input for retrieving a game by table ID
type GetGameByTableInput struct {
	TableID string
}

// GetGameByTableOutput defines the output for retrieving a game by table ID
type GetGameByTableOutput struct {
	Game *GameState
}

// AddRoundInput contains the bids and tricks for a round
type AddRoundInput struct {
	GameID string

	// Bids maps every player to their bid
	Bids map[string]int

	// Tricks maps every player to the tricks they took
	Tricks map[string]int
}

// AddRoundOutput contains the result of scoring a round
type AddRoundOutput struct {
	// Round is the scored round
	Round *models.Round

	// Game is the state after the round
	Game *GameState

	// GameComplete is true when this was the final round
	GameComplete bool

	// HistoryID is the archive record written when the game completed
	HistoryID string
}

// UndoRoundInput contains parameters for undoing a round
type UndoRoundInput struct {
	GameID string
}

// UndoRoundOutput contains the removed round and the state after removal
type UndoRoundOutput struct {
	// Round is the removed round, for correcting and re-entering
	Round *models.Round

	// Game is the state after the undo
	Game *GameState
}

// ResetGameInput contains parameters for discarding a game
type ResetGameInput struct {
	GameID string
}

// ResetGameOutput contains the result of discarding a game
type ResetGameOutput struct {
	Success bool
}

// ListHistoryInput contains parameters for listing completed games
type ListHistoryInput struct {
	// Limit caps the number of records, zero returns all kept records
	Limit int
}

// ListHistoryOutput contains completed games, most recent first
type ListHistoryOutput struct {
	Records []*models.HistoryRecord
}

// GetHistoryRecordInput contains parameters for retrieving a completed game
type GetHistoryRecordInput struct {
	RecordID string
}

// GetHistoryRecordOutput contains a completed game
type GetHistoryRecordOutput struct {
	Record *models.HistoryRecord
}

// DeleteHistoryRecordInput contains parameters for deleting a completed game
type DeleteHistoryRecordInput struct {
	RecordID string
}

// DeleteHistoryRecordOutput reports whether the record existed
type DeleteHistoryRecordOutput struct {
	Deleted bool
}
