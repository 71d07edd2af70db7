package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/ohhell/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/ohhell/internal/models"
)

// Repository defines the interface for in-progress game persistence
type Repository interface {
	// SaveGame persists a game snapshot
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// GetGameByTable retrieves the game currently played at a table
	GetGameByTable(ctx context.Context, input *GetGameByTableInput) (*models.Game, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// GetActiveGames retrieves all games that still have rounds to play
	GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error)
}
