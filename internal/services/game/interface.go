package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/ohhell/internal/services/game Service

import "context"

// Service defines the interface for scoring games
type Service interface {
	// CreateGame starts a new game, replacing any game already at the same table
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGame returns the current state of a game
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// GetGameByTable returns the current state of the game played at a table
	GetGameByTable(ctx context.Context, input *GetGameByTableInput) (*GetGameByTableOutput, error)

	// AddRound scores a round of bids and tricks
	AddRound(ctx context.Context, input *AddRoundInput) (*AddRoundOutput, error)

	// UndoRound removes the most recently scored round
	UndoRound(ctx context.Context, input *UndoRoundInput) (*UndoRoundOutput, error)

	// ResetGame discards a game
	ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error)

	// ListHistory returns completed games, most recent first
	ListHistory(ctx context.Context, input *ListHistoryInput) (*ListHistoryOutput, error)

	// GetHistoryRecord returns one completed game
	GetHistoryRecord(ctx context.Context, input *GetHistoryRecordInput) (*GetHistoryRecordOutput, error)

	// DeleteHistoryRecord removes a completed game from the archive
	DeleteHistoryRecord(ctx context.Context, input *DeleteHistoryRecordInput) (*DeleteHistoryRecordOutput, error)
}
