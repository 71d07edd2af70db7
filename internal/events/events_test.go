package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	event := &Event{Type: TypeRoundAdded, GameID: "game-1"}
	assert.Equal(t, "ohhell.games.game-1.round_added", Subject(DefaultSubjectPrefix, event))
	assert.Equal(t, "scores.game-1.round_added", Subject("scores", event))
}

func TestNewNATSValidatesConfig(t *testing.T) {
	_, err := NewNATS(nil)
	assert.Error(t, err)

	_, err = NewNATS(&NATSConfig{SubjectPrefix: "scores"})
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.Publish(context.Background(), &Event{Type: TypeGameReset}))
}
