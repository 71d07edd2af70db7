package models

// Round records one scored hand
type Round struct {
	// RoundNumber is the 1-based position of the round in the game
	RoundNumber int `json:"round_num"`

	// HandSize is the number of cards dealt to each player
	HandSize int `json:"hand_size"`

	// Dealer is the name of the player who dealt
	Dealer string `json:"dealer"`

	// Bids maps each player to the number of tricks they bid
	Bids map[string]int `json:"bids"`

	// Tricks maps each player to the number of tricks they took
	Tricks map[string]int `json:"tricks"`

	// Scores maps each player to the points earned this round
	Scores map[string]int `json:"round_scores"`
}

// Clone returns a deep copy of the round
func (r *Round) Clone() *Round {
	if r == nil {
		return nil
	}
	return &Round{
		RoundNumber: r.RoundNumber,
		HandSize:    r.HandSize,
		Dealer:      r.Dealer,
		Bids:        copyCounts(r.Bids),
		Tricks:      copyCounts(r.Tricks),
		Scores:      copyCounts(r.Scores),
	}
}

func copyCounts(src map[string]int) map[string]int {
	if src == nil {
		return nil
	}
	dst := make(map[string]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
