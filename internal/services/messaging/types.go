package messaging

import (
	"github.com/KirkDiggler/ohhell/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	ToneNeutral     MessageTone = "neutral"
	ToneFunny       MessageTone = "funny"
	ToneSarcastic   MessageTone = "sarcastic"
	ToneCelebration MessageTone = "celebration"
)

// Config holds configuration for the messaging service
type Config struct {
	// Seed fixes the message choice for tests; zero seeds from the clock
	Seed int64
}

// GetRoundMessageInput contains the round to comment on
type GetRoundMessageInput struct {
	// Players in seating order
	Players []string

	// Round is the scored round
	Round *models.Round
}

// GetRoundMessageOutput contains a comment on a round
type GetRoundMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetGameOverMessageInput contains the final standings
type GetGameOverMessageInput struct {
	// Players in seating order
	Players []string

	// Scores contains the final score per player
	Scores map[string]int
}

// GetGameOverMessageOutput contains a comment on the result
type GetGameOverMessageOutput struct {
	Message string
	Tone    MessageTone
}
