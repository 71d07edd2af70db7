package ledger

// RuleError is returned when a round or roster breaks the rules of the game.
// Errors returned by the ledger wrap one of the constants below with the
// offending players and values.
type RuleError string

// Error implements the error interface
func (e RuleError) Error() string {
	return string(e)
}

const (
	ErrInvalidPlayerCount  RuleError = "invalid player count"
	ErrInvalidPlayerName   RuleError = "invalid player name"
	ErrDuplicatePlayer     RuleError = "duplicate player"
	ErrInvalidMaxRounds    RuleError = "invalid max rounds"
	ErrInvalidBonus        RuleError = "invalid exact bid bonus"
	ErrPlayerSetMismatch   RuleError = "all players must have bids and tricks"
	ErrGameComplete        RuleError = "game is complete"
	ErrBidOutOfRange       RuleError = "bid out of range"
	ErrTrickOutOfRange     RuleError = "tricks out of range"
	ErrTrickSumMismatch    RuleError = "total tricks must equal hand size"
	ErrDealerRuleViolation RuleError = "total bids cannot equal hand size"
	ErrEmptyHistory        RuleError = "no rounds to undo"
	ErrReplayMismatch      RuleError = "replayed round does not match record"
)
