package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// service implements the Service interface
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(cfg *Config) (*service, error) {
	seed := time.Now().UnixNano()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetRoundMessage returns a comment on how a round went
func (s *service) GetRoundMessage(ctx context.Context, input *GetRoundMessageInput) (*GetRoundMessageOutput, error) {
	if input == nil || input.Round == nil {
		return nil, errors.New("round cannot be nil")
	}

	round := input.Round
	var made, missed []string
	worst, worstMiss := "", 0
	for _, player := range input.Players {
		diff := round.Bids[player] - round.Tricks[player]
		if diff == 0 {
			made = append(made, player)
			continue
		}
		missed = append(missed, player)
		if diff < 0 {
			diff = -diff
		}
		if diff > worstMiss {
			worst, worstMiss = player, diff
		}
	}

	var messages []string
	var tone MessageTone
	switch {
	case len(missed) == 0:
		tone = ToneCelebration
		messages = []string{
			"Everybody made it! Somebody check the deck.",
			"A clean round. Nobody got set.",
			"Perfect bidding all round. Enjoy it while it lasts.",
		}
	case len(made) == 0:
		tone = ToneSarcastic
		messages = []string{
			"Nobody made their bid. Oh hell indeed.",
			"Total carnage. Everyone got set.",
			"Not a single bid made. Impressive, in a way.",
		}
	case worstMiss >= 2:
		tone = ToneFunny
		messages = []string{
			fmt.Sprintf("%s missed by %d. Bold strategy.", worst, worstMiss),
			fmt.Sprintf("%s was off by %d. Maybe count the trumps next time?", worst, worstMiss),
			fmt.Sprintf("Ouch, %s. Off by %d.", worst, worstMiss),
		}
	case len(made) == 1:
		tone = ToneNeutral
		messages = []string{
			fmt.Sprintf("Only %s made it this round.", made[0]),
			fmt.Sprintf("%s alone made their bid.", made[0]),
		}
	default:
		tone = ToneNeutral
		messages = []string{
			fmt.Sprintf("Made it: %s.", strings.Join(made, ", ")),
			fmt.Sprintf("Set: %s.", strings.Join(missed, ", ")),
		}
	}

	return &GetRoundMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetGameOverMessage returns a comment on the final standings
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil || len(input.Players) == 0 {
		return nil, errors.New("players cannot be empty")
	}

	// Seat order breaks ties, as on the scoreboard
	winner := input.Players[0]
	for _, player := range input.Players[1:] {
		if input.Scores[player] > input.Scores[winner] {
			winner = player
		}
	}
	runnerUp := ""
	for _, player := range input.Players {
		if player == winner {
			continue
		}
		if runnerUp == "" || input.Scores[player] > input.Scores[runnerUp] {
			runnerUp = player
		}
	}

	margin := input.Scores[winner] - input.Scores[runnerUp]
	var messages []string
	tone := ToneCelebration
	switch {
	case runnerUp == "":
		messages = []string{fmt.Sprintf("%s wins.", winner)}
	case margin == 0:
		tone = ToneFunny
		messages = []string{
			fmt.Sprintf("%s and %s tied! %s takes it on seating. Rematch?", winner, runnerUp, winner),
			fmt.Sprintf("Dead heat between %s and %s. Somebody call it.", winner, runnerUp),
		}
	case margin <= 3:
		messages = []string{
			fmt.Sprintf("%s edges out %s by %d. Close one!", winner, runnerUp, margin),
			fmt.Sprintf("A photo finish: %s by %d over %s.", winner, margin, runnerUp),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s runs away with it, %d clear of %s.", winner, margin, runnerUp),
			fmt.Sprintf("Never in doubt. %s wins by %d.", winner, margin),
			fmt.Sprintf("All hail %s!", winner),
		}
	}

	return &GetGameOverMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}
