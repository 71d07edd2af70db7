package history

import "github.com/KirkDiggler/ohhell/internal/models"

// SaveRecordInput contains the record to archive
type SaveRecordInput struct {
	Record *models.HistoryRecord
}

// ListRecordsInput contains parameters for listing archived games
type ListRecordsInput struct {
	// Limit caps the number of records returned, zero returns everything kept
	Limit int
}

// ListRecordsOutput contains archived games, most recent first
type ListRecordsOutput struct {
	Records []*models.HistoryRecord
}

// GetRecordInput contains parameters for retrieving an archived game
type GetRecordInput struct {
	RecordID string
}

// DeleteRecordInput contains parameters for deleting an archived game
type DeleteRecordInput struct {
	RecordID string
}

// DeleteRecordOutput reports whether a record was removed
type DeleteRecordOutput struct {
	Deleted bool
}
