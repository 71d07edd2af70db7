// Package terminal runs an interactive scoring session at the terminal.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/ohhell/internal/ledger"
	"github.com/KirkDiggler/ohhell/internal/scorecard"
	"github.com/pterm/pterm"
)

// Prompter asks the player a question and returns the answer
type Prompter interface {
	Ask(prompt string) (string, error)
}

// Config holds configuration for a terminal session
type Config struct {
	Prompter Prompter
	Out      io.Writer

	// ExactBidBonus overrides the default bonus when positive
	ExactBidBonus int
}

// Session scores a single game from prompts
type Session struct {
	prompter      Prompter
	out           io.Writer
	exactBidBonus int
	ledger        *ledger.Ledger
}

// New creates a new terminal session
func New(cfg *Config) (*Session, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Prompter == nil {
		return nil, errors.New("prompter cannot be nil")
	}
	if cfg.Out == nil {
		return nil, errors.New("output cannot be nil")
	}

	return &Session{
		prompter:      cfg.Prompter,
		out:           cfg.Out,
		exactBidBonus: cfg.ExactBidBonus,
	}, nil
}

// Run sets up a game and scores rounds until the game ends or the player is
// done, then prints the final scorecard. Running out of input ends the game.
func (s *Session) Run() error {
	if err := s.setup(); err != nil {
		return err
	}

	for {
		stopped, err := s.playRounds()
		if err != nil {
			return err
		}
		if stopped {
			return s.finish()
		}

		reopened, err := s.review()
		if err != nil {
			return err
		}
		if !reopened {
			return s.finish()
		}
	}
}

// playRounds scores rounds until the game is complete. It reports whether the
// player stopped early or input ran out.
func (s *Session) playRounds() (bool, error) {
	for !s.ledger.IsComplete() {
		handSize, _ := s.ledger.CurrentHandSize()
		pterm.Fprintln(s.out, pterm.DefaultSection.Sprintf("Round %d of %d: %d cards, %s deals",
			s.ledger.RoundNumber(), s.ledger.TotalRounds(), handSize, s.ledger.CurrentDealer()))

		answer, err := s.ask("Enter round data? (y/n, 'score' for the scorecard, 'undo' to remove the last round): ")
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "n", "done":
			return true, nil
		case "score", "s":
			if err := s.printScorecard(); err != nil {
				return false, err
			}
			continue
		case "undo", "u":
			s.undo()
			continue
		}

		if err := s.playRound(); err != nil {
			if errors.Is(err, io.EOF) {
				return true, nil
			}
			return false, err
		}
	}
	return false, nil
}

// review offers a last look at a completed game. It reports whether the last
// round was undone and play should resume.
func (s *Session) review() (bool, error) {
	leader, score := s.ledger.Leader()
	pterm.Fprintln(s.out, pterm.Success.Sprintf("Game complete! %s wins with %d.", leader, score))

	for {
		answer, err := s.ask("Game over. ('undo' to remove the last round, 'score' for the scorecard, anything else to finish): ")
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "score", "s":
			if err := s.printScorecard(); err != nil {
				return false, err
			}
		case "undo", "u":
			s.undo()
			return true, nil
		default:
			return false, nil
		}
	}
}

func (s *Session) setup() error {
	for {
		count, err := s.askInt("How many players? ")
		if err != nil {
			return err
		}
		if count < ledger.MinPlayers || count > ledger.MaxPlayers {
			s.printError(fmt.Errorf("%w: need %d to %d players", ledger.ErrInvalidPlayerCount, ledger.MinPlayers, ledger.MaxPlayers))
			continue
		}

		players := make([]string, count)
		for i := range players {
			if players[i], err = s.ask(fmt.Sprintf("Player %d name: ", i+1)); err != nil {
				return err
			}
		}

		maxRounds, err := s.askOptionalInt("Stop after how many rounds? (blank for a full game): ")
		if err != nil {
			return err
		}

		l, err := ledger.New(&ledger.Config{
			Players:       players,
			MaxRounds:     maxRounds,
			ExactBidBonus: s.exactBidBonus,
		})
		if err != nil {
			s.printError(err)
			continue
		}

		s.ledger = l
		pterm.Fprintln(s.out, pterm.Info.Sprintf("Starting game with players: %s (%d rounds, up to %d cards)",
			strings.Join(players, ", "), l.TotalRounds(), l.MaxCards()))
		return nil
	}
}

// playRound collects bids and tricks until the round is accepted
func (s *Session) playRound() error {
	for {
		pterm.Fprintln(s.out, "Enter bids:")
		bids, err := s.askCounts("  %s's bid: ")
		if err != nil {
			return err
		}

		pterm.Fprintln(s.out, "Enter actual tricks won:")
		tricks, err := s.askCounts("  %s won: ")
		if err != nil {
			return err
		}

		if _, err := s.ledger.AddRound(bids, tricks); err != nil {
			s.printError(err)
			pterm.Fprintln(s.out, "Re-enter the round.")
			continue
		}

		s.printScores()
		return nil
	}
}

func (s *Session) undo() {
	round, err := s.ledger.UndoLastRound()
	if err != nil {
		s.printError(err)
		return
	}

	pterm.Fprintln(s.out, pterm.Warning.Sprintf("Removed round %d (%d cards, %s dealt)",
		round.RoundNumber, round.HandSize, round.Dealer))
	s.printScores()
}

func (s *Session) finish() error {
	return s.printScorecard()
}

func (s *Session) printScorecard() error {
	out, err := scorecard.Render(s.ledger.Players(), s.ledger.Rounds(), s.ledger.CurrentScores())
	if err != nil {
		return err
	}
	pterm.Fprint(s.out, out)
	return nil
}

func (s *Session) printScores() {
	scores := s.ledger.CurrentScores()
	pterm.Fprintln(s.out, "Current scores:")
	for _, player := range s.ledger.Players() {
		pterm.Fprintln(s.out, fmt.Sprintf("  %s: %d", player, scores[player]))
	}
}

func (s *Session) printError(err error) {
	pterm.Fprintln(s.out, pterm.Error.Sprint(err.Error()))
}

func (s *Session) ask(prompt string) (string, error) {
	answer, err := s.prompter.Ask(prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// askInt asks until it gets a whole number
func (s *Session) askInt(prompt string) (int, error) {
	for {
		answer, err := s.ask(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil {
			return n, nil
		}
		s.printError(fmt.Errorf("%q is not a number", answer))
	}
}

func (s *Session) askOptionalInt(prompt string) (int, error) {
	for {
		answer, err := s.ask(prompt)
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(answer)
		if err == nil {
			return n, nil
		}
		s.printError(fmt.Errorf("%q is not a number", answer))
	}
}

// askCounts asks each player in seating order; format receives the player's name
func (s *Session) askCounts(format string) (map[string]int, error) {
	players := s.ledger.Players()
	counts := make(map[string]int, len(players))
	for _, player := range players {
		n, err := s.askInt(fmt.Sprintf(format, player))
		if err != nil {
			return nil, err
		}
		counts[player] = n
	}
	return counts, nil
}
