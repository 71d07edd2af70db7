package discord

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ParseError is returned when a command argument cannot be read
type ParseError string

// Error implements the error interface
func (e ParseError) Error() string {
	return string(e)
}

const (
	ErrNoPlayers      ParseError = "no players given"
	ErrMalformedPair  ParseError = "expected name=number"
	ErrUnknownPlayer  ParseError = "unknown player"
	ErrDuplicateEntry ParseError = "player listed twice"
)

var spacedEquals = regexp.MustCompile(`\s*=\s*`)

// parsePlayers splits a comma separated list of names in seating order
func parsePlayers(input string) ([]string, error) {
	var players []string
	for _, name := range strings.Split(input, ",") {
		if name = strings.TrimSpace(name); name != "" {
			players = append(players, name)
		}
	}
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	return players, nil
}

// parseCounts reads a list like "Alice=1 Bob=0, Mary Ann=2" into counts keyed
// by the matching player's name. Names match case-insensitively.
func parseCounts(input string, players []string) (map[string]int, error) {
	byName := make(map[string]string, len(players))
	for _, player := range players {
		byName[strings.ToLower(player)] = player
	}

	normalized := spacedEquals.ReplaceAllString(strings.ReplaceAll(input, ",", " "), "=")

	counts := make(map[string]int, len(players))
	var unknown, malformed []string
	var words []string
	for _, token := range strings.Fields(normalized) {
		before, value, found := strings.Cut(token, "=")
		if !found {
			words = append(words, token)
			continue
		}

		name := strings.Join(append(words, before), " ")
		words = nil

		n, err := strconv.Atoi(value)
		if name == "" || err != nil {
			malformed = append(malformed, token)
			continue
		}

		player, ok := byName[strings.ToLower(name)]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		if _, seen := counts[player]; seen {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEntry, player)
		}
		counts[player] = n
	}
	if len(words) > 0 {
		malformed = append(malformed, strings.Join(words, " "))
	}

	if len(malformed) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMalformedPair, strings.Join(malformed, ", "))
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s (players are %s)", ErrUnknownPlayer, strings.Join(unknown, ", "), strings.Join(players, ", "))
	}

	return counts, nil
}

// formatCounts writes counts back in the form parseCounts reads, in seating order
func formatCounts(players []string, counts map[string]int) string {
	pairs := make([]string, 0, len(players))
	for _, player := range players {
		if n, ok := counts[player]; ok {
			pairs = append(pairs, fmt.Sprintf("%s=%d", player, n))
		}
	}
	return strings.Join(pairs, " ")
}
