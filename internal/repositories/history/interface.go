package history

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/ohhell/internal/repositories/history Repository

import (
	"context"

	"github.com/KirkDiggler/ohhell/internal/models"
)

// Repository defines the interface for the completed game archive
type Repository interface {
	// SaveRecord archives a completed game, replacing any record with the same ID
	SaveRecord(ctx context.Context, input *SaveRecordInput) error

	// ListRecords retrieves archived games, most recently completed first
	ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error)

	// GetRecord retrieves an archived game by ID
	GetRecord(ctx context.Context, input *GetRecordInput) (*models.HistoryRecord, error)

	// DeleteRecord removes an archived game
	DeleteRecord(ctx context.Context, input *DeleteRecordInput) (*DeleteRecordOutput, error)
}
