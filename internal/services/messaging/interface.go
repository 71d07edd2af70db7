package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/ohhell/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetRoundMessage returns a comment on how a round went
	GetRoundMessage(ctx context.Context, input *GetRoundMessageInput) (*GetRoundMessageOutput, error)

	// GetGameOverMessage returns a comment on the final standings
	GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error)
}
