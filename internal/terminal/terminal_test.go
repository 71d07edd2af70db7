package terminal

import (
	"bytes"
	"io"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/suite"
)

// scriptedPrompter answers prompts from a fixed list, then reports EOF
type scriptedPrompter struct {
	answers []string
	prompts []string
}

func (p *scriptedPrompter) Ask(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

type TerminalTestSuite struct {
	suite.Suite
	out *bytes.Buffer
}

func (s *TerminalTestSuite) SetupSuite() {
	pterm.DisableStyling()
}

func (s *TerminalTestSuite) TearDownSuite() {
	pterm.EnableStyling()
}

func (s *TerminalTestSuite) SetupTest() {
	s.out = &bytes.Buffer{}
}

func TestTerminalSuite(t *testing.T) {
	suite.Run(t, new(TerminalTestSuite))
}

func (s *TerminalTestSuite) run(answers ...string) *scriptedPrompter {
	prompter := &scriptedPrompter{answers: answers}
	session, err := New(&Config{Prompter: prompter, Out: s.out})
	s.Require().NoError(err)
	s.Require().NoError(session.Run())
	return prompter
}

func (s *TerminalTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{Out: s.out})
	s.Error(err)

	_, err = New(&Config{Prompter: &scriptedPrompter{}})
	s.Error(err)
}

func (s *TerminalTestSuite) TestFullTruncatedGame() {
	s.run(
		"3", "Alice", "Bob", "Carol", "2",
		// Round 1
		"y", "1", "0", "1", "1", "0", "0",
		// Round 2
		"y", "1", "0", "0", "1", "1", "0",
	)

	out := s.out.String()
	s.Contains(out, "Starting game with players: Alice, Bob, Carol (2 rounds, up to 16 cards)")
	s.Contains(out, "Round 2 of 2: 2 cards, Bob deals")
	s.Contains(out, "Game complete! Alice wins with 12.")
	s.Contains(out, "FINAL SCORES")
	s.Contains(out, "Bob: 4\n")
}

func (s *TerminalTestSuite) TestRuleViolationReentersRound() {
	prompter := s.run(
		"3", "Alice", "Bob", "Carol", "",
		// Dealer rule broken, then corrected
		"y", "0", "0", "1", "1", "0", "0",
		"1", "0", "1", "1", "0", "0",
		"done",
	)

	out := s.out.String()
	s.Contains(out, "dealer Alice must bid differently")
	s.Contains(out, "Re-enter the round.")
	s.Contains(out, "Alice: 6\n")
	s.Contains(prompter.prompts, "  Carol won: ")
}

func (s *TerminalTestSuite) TestInvalidPlayerCountAsksAgain() {
	s.run("2", "x", "3", "Alice", "Bob", "Carol", "", "done")

	out := s.out.String()
	s.Contains(out, "need 3 to 7 players")
	s.Contains(out, `"x" is not a number`)
	s.Contains(out, "Starting game with players: Alice, Bob, Carol (31 rounds, up to 16 cards)")
}

func (s *TerminalTestSuite) TestScoreAndUndo() {
	s.run(
		"3", "Alice", "Bob", "Carol", "",
		"undo",
		"y", "1", "0", "1", "1", "0", "0",
		"score",
		"undo",
		"n",
	)

	out := s.out.String()
	s.Contains(out, "no rounds to undo")
	s.Contains(out, "R1 Pts")
	s.Contains(out, "Removed round 1 (1 cards, Alice dealt)")
	s.Contains(out, "Round 1 of 31: 1 cards, Alice deals")
}

func (s *TerminalTestSuite) TestEndOfInputFinishes() {
	s.run("3", "Alice", "Bob", "Carol", "", "y", "1")

	s.Contains(s.out.String(), "FINAL SCORES")
}

func (s *TerminalTestSuite) TestUndoAfterGameComplete() {
	prompter := s.run(
		"3", "Alice", "Bob", "Carol", "1",
		"y", "1", "0", "1", "1", "0", "0",
		// Last round was wrong; take it back and re-enter it
		"undo",
		"y", "0", "0", "0", "1", "0", "0",
		"done",
	)

	out := s.out.String()
	s.Contains(out, "Game complete! Alice wins with 6.")
	s.Contains(out, "Removed round 1 (1 cards, Alice dealt)")
	s.Contains(out, "Game complete! Bob wins with 5.")
	s.Contains(out, "FINAL SCORES")
	s.Contains(prompter.prompts, "Game over. ('undo' to remove the last round, 'score' for the scorecard, anything else to finish): ")
	s.Empty(prompter.answers)
}
