package game

import (
	"sync"

	"github.com/KirkDiggler/ohhell/internal/ledger"
	"github.com/KirkDiggler/ohhell/internal/models"
)

// table is a live game. mu serializes every read and mutation of the ledger.
type table struct {
	mu      sync.Mutex
	game    *models.Game
	ledger  *ledger.Ledger
	removed bool
}

// registry holds the live games keyed by game ID
type registry struct {
	mu     sync.Mutex
	tables map[string]*table
}

func newRegistry() *registry {
	return &registry{
		tables: make(map[string]*table),
	}
}

func (r *registry) get(gameID string) (*table, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tables[gameID]
	return t, ok
}

// put stores t unless another caller loaded the same game first, in which
// case the existing table is returned
func (r *registry) put(t *table) *table {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.tables[t.game.ID]; ok {
		return existing
	}
	r.tables[t.game.ID] = t
	return t
}

func (r *registry) remove(gameID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tables, gameID)
}
