// Package ledger scores Oh Hell rounds. A Ledger owns the hand-size sequence,
// the dealer rotation, the round history and the cumulative scores of one game.
//
// A Ledger is not safe for concurrent use; callers serialize AddRound and
// UndoLastRound per game.
package ledger

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/ohhell/internal/models"
)

const (
	// DeckSize is the number of cards in the deck the hand sizes are derived from
	DeckSize = 52

	// MinPlayers is the fewest players a game can seat
	MinPlayers = 3

	// MaxPlayers is the most players a game can seat
	MaxPlayers = 7

	// DefaultExactBidBonus is added to the tricks taken when a bid is made exactly
	DefaultExactBidBonus = 5
)

// Config holds the settings a game is created with
type Config struct {
	// Players in seating order; the first player deals the first round
	Players []string

	// MaxRounds truncates the hand-size sequence when positive
	MaxRounds int

	// ExactBidBonus overrides DefaultExactBidBonus when positive
	ExactBidBonus int
}

// Ledger tracks the rounds and scores of a single game
type Ledger struct {
	players       []string
	seats         map[string]int
	maxCards      int
	maxRounds     int
	exactBidBonus int
	handSizes     []int
	roundNumber   int
	dealerIndex   int
	scores        map[string]int
	rounds        []*models.Round
}

// New creates a ledger positioned at round one with the first player dealing
func New(cfg *Config) (*Ledger, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config cannot be nil", ErrInvalidPlayerCount)
	}

	n := len(cfg.Players)
	if n < MinPlayers || n > MaxPlayers {
		return nil, fmt.Errorf("%w: need %d to %d players, got %d", ErrInvalidPlayerCount, MinPlayers, MaxPlayers, n)
	}
	if cfg.MaxRounds < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxRounds, cfg.MaxRounds)
	}
	if cfg.ExactBidBonus < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBonus, cfg.ExactBidBonus)
	}

	players := make([]string, n)
	seats := make(map[string]int, n)
	scores := make(map[string]int, n)
	for i, name := range cfg.Players {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: player %d has no name", ErrInvalidPlayerName, i+1)
		}
		if _, ok := seats[name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, name)
		}
		players[i] = name
		seats[name] = i
		scores[name] = 0
	}

	bonus := cfg.ExactBidBonus
	if bonus == 0 {
		bonus = DefaultExactBidBonus
	}

	return &Ledger{
		players:       players,
		seats:         seats,
		maxCards:      MaxCardsFor(n),
		maxRounds:     cfg.MaxRounds,
		exactBidBonus: bonus,
		handSizes:     HandSizeSequence(n, cfg.MaxRounds),
		roundNumber:   1,
		dealerIndex:   0,
		scores:        scores,
		rounds:        []*models.Round{},
	}, nil
}

// MaxCardsFor returns the largest hand dealt to playerCount players
func MaxCardsFor(playerCount int) int {
	if playerCount <= 0 {
		return 0
	}
	return DeckSize/playerCount - 1
}

// HandSizeSequence returns the hand sizes for a game: up from one card to the
// maximum and back down to one, truncated to maxRounds when it is positive and shorter.
func HandSizeSequence(playerCount, maxRounds int) []int {
	maxCards := MaxCardsFor(playerCount)
	if maxCards < 1 {
		return []int{}
	}

	seq := make([]int, 0, 2*maxCards-1)
	for size := 1; size <= maxCards; size++ {
		seq = append(seq, size)
	}
	for size := maxCards - 1; size >= 1; size-- {
		seq = append(seq, size)
	}

	if maxRounds > 0 && maxRounds < len(seq) {
		seq = seq[:maxRounds]
	}
	return seq
}

// Score returns the points for one player's round
func Score(bid, tricks, exactBidBonus int) int {
	if bid == tricks {
		return exactBidBonus + tricks
	}
	if bid > tricks {
		return tricks - bid
	}
	return bid - tricks
}

// Players returns the player names in seating order
func (l *Ledger) Players() []string {
	return append([]string(nil), l.players...)
}

// MaxCards returns the largest hand in the full sequence
func (l *Ledger) MaxCards() int {
	return l.maxCards
}

// MaxRounds returns the round cap the ledger was created with
func (l *Ledger) MaxRounds() int {
	return l.maxRounds
}

// ExactBidBonus returns the bonus for an exact bid
func (l *Ledger) ExactBidBonus() int {
	return l.exactBidBonus
}

// HandSizes returns the hand-size sequence
func (l *Ledger) HandSizes() []int {
	return append([]int(nil), l.handSizes...)
}

// TotalRounds returns the number of rounds in the game
func (l *Ledger) TotalRounds() int {
	return len(l.handSizes)
}

// RoundNumber returns the 1-based number of the next round to be scored
func (l *Ledger) RoundNumber() int {
	return l.roundNumber
}

// DealerIndex returns the seat of the current dealer
func (l *Ledger) DealerIndex() int {
	return l.dealerIndex
}

// CurrentHandSize returns the hand size of the round being played.
// The second result is false once every round has been scored.
func (l *Ledger) CurrentHandSize() (int, bool) {
	if l.roundNumber-1 < len(l.handSizes) {
		return l.handSizes[l.roundNumber-1], true
	}
	return 0, false
}

// CurrentDealer returns the name of the player dealing the current round
func (l *Ledger) CurrentDealer() string {
	return l.players[l.dealerIndex]
}

// IsComplete returns true when there are no rounds left to play
func (l *Ledger) IsComplete() bool {
	_, ok := l.CurrentHandSize()
	return !ok
}

// AddRound validates and scores a round, then advances to the next round and dealer.
// Nothing is modified when an error is returned.
func (l *Ledger) AddRound(bids, tricks map[string]int) (*models.Round, error) {
	if err := l.checkPlayerSet(bids, tricks); err != nil {
		return nil, err
	}

	handSize, ok := l.CurrentHandSize()
	if !ok {
		return nil, fmt.Errorf("%w: all %d rounds have been scored", ErrGameComplete, len(l.handSizes))
	}

	for _, player := range l.players {
		if bid := bids[player]; bid < 0 || bid > handSize {
			return nil, fmt.Errorf("%w: bid for %s must be between 0 and %d, got %d", ErrBidOutOfRange, player, handSize, bid)
		}
	}

	totalTricks := 0
	for _, player := range l.players {
		won := tricks[player]
		if won < 0 || won > handSize {
			return nil, fmt.Errorf("%w: tricks for %s must be between 0 and %d, got %d", ErrTrickOutOfRange, player, handSize, won)
		}
		totalTricks += won
	}
	if totalTricks != handSize {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrTrickSumMismatch, handSize, totalTricks)
	}

	dealer := l.CurrentDealer()
	totalBids := 0
	for _, player := range l.players {
		totalBids += bids[player]
	}
	if totalBids == handSize {
		return nil, fmt.Errorf("%w: bids total %d (dealer %s must bid differently)", ErrDealerRuleViolation, handSize, dealer)
	}

	round := &models.Round{
		RoundNumber: l.roundNumber,
		HandSize:    handSize,
		Dealer:      dealer,
		Bids:        make(map[string]int, len(l.players)),
		Tricks:      make(map[string]int, len(l.players)),
		Scores:      make(map[string]int, len(l.players)),
	}
	for _, player := range l.players {
		round.Bids[player] = bids[player]
		round.Tricks[player] = tricks[player]
		round.Scores[player] = Score(bids[player], tricks[player], l.exactBidBonus)
	}

	l.rounds = append(l.rounds, round)
	for player, points := range round.Scores {
		l.scores[player] += points
	}
	l.roundNumber++
	l.dealerIndex = (l.dealerIndex + 1) % len(l.players)

	return round.Clone(), nil
}

// UndoLastRound removes the most recent round and reverses its effects.
// The removed round is returned so it can be corrected and re-entered.
func (l *Ledger) UndoLastRound() (*models.Round, error) {
	if len(l.rounds) == 0 {
		return nil, ErrEmptyHistory
	}

	last := l.rounds[len(l.rounds)-1]
	l.rounds[len(l.rounds)-1] = nil
	l.rounds = l.rounds[:len(l.rounds)-1]

	for player, points := range last.Scores {
		l.scores[player] -= points
	}
	l.roundNumber--
	l.dealerIndex = (l.dealerIndex - 1 + len(l.players)) % len(l.players)

	return last, nil
}

// CurrentScores returns a copy of the cumulative scores
func (l *Ledger) CurrentScores() map[string]int {
	scores := make(map[string]int, len(l.scores))
	for player, score := range l.scores {
		scores[player] = score
	}
	return scores
}

// Rounds returns copies of the scored rounds in order
func (l *Ledger) Rounds() []*models.Round {
	rounds := make([]*models.Round, len(l.rounds))
	for i, r := range l.rounds {
		rounds[i] = r.Clone()
	}
	return rounds
}

// Leader returns the player with the highest score. Ties go to the earliest seat.
func (l *Ledger) Leader() (string, int) {
	leader := l.players[0]
	best := l.scores[leader]
	for _, player := range l.players[1:] {
		if l.scores[player] > best {
			leader, best = player, l.scores[player]
		}
	}
	return leader, best
}

// Replay creates a ledger and re-scores the recorded rounds through AddRound,
// so a restored game goes through the same validation as a live one.
func Replay(cfg *Config, rounds []*models.Round) (*Ledger, error) {
	l, err := New(cfg)
	if err != nil {
		return nil, err
	}

	for i, r := range rounds {
		if r == nil {
			return nil, fmt.Errorf("%w: round %d is missing", ErrReplayMismatch, i+1)
		}
		if r.RoundNumber != 0 && r.RoundNumber != l.roundNumber {
			return nil, fmt.Errorf("%w: round %d recorded as round %d", ErrReplayMismatch, l.roundNumber, r.RoundNumber)
		}
		if _, err := l.AddRound(r.Bids, r.Tricks); err != nil {
			return nil, fmt.Errorf("replay round %d: %w", i+1, err)
		}
	}

	return l, nil
}

func (l *Ledger) checkPlayerSet(bids, tricks map[string]int) error {
	var problems []string
	for _, player := range l.players {
		if _, ok := bids[player]; !ok {
			problems = append(problems, "missing bid for "+player)
		}
		if _, ok := tricks[player]; !ok {
			problems = append(problems, "missing tricks for "+player)
		}
	}
	for _, name := range unknownNames(l.seats, bids) {
		problems = append(problems, "unexpected bid for "+name)
	}
	for _, name := range unknownNames(l.seats, tricks) {
		problems = append(problems, "unexpected tricks for "+name)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrPlayerSetMismatch, strings.Join(problems, ", "))
	}
	return nil
}

func unknownNames(seats map[string]int, counts map[string]int) []string {
	var names []string
	for name := range counts {
		if _, ok := seats[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
