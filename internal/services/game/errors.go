package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound   GameError = "game not found"
	ErrRecordNotFound GameError = "history record not found"
	ErrInvalidInput   GameError = "invalid input"
	ErrCorruptGame    GameError = "stored game does not match its rounds"
	ErrNilConfig      GameError = "config cannot be nil"
	ErrNilGameRepo    GameError = "game repository cannot be nil"
	ErrNilHistoryRepo GameError = "history repository cannot be nil"
	ErrNilClock       GameError = "clock cannot be nil"
	ErrNilIDGenerator GameError = "ID generator cannot be nil"
)
