package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/KirkDiggler/ohhell/internal/common/clock"
	"github.com/KirkDiggler/ohhell/internal/common/id"
	"github.com/KirkDiggler/ohhell/internal/events"
	"github.com/KirkDiggler/ohhell/internal/ledger"
	"github.com/KirkDiggler/ohhell/internal/models"
	gameRepo "github.com/KirkDiggler/ohhell/internal/repositories/game"
	historyRepo "github.com/KirkDiggler/ohhell/internal/repositories/history"
)

// service implements the Service interface
type service struct {
	exactBidBonus int
	gameRepo      gameRepo.Repository
	historyRepo   historyRepo.Repository
	publisher     events.Publisher
	clock         clock.Clock
	idGenerator   id.Generator
	registry      *registry
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}
	if cfg.HistoryRepo == nil {
		return nil, ErrNilHistoryRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.IDGenerator == nil {
		return nil, ErrNilIDGenerator
	}
	if cfg.ExactBidBonus < 0 {
		return nil, fmt.Errorf("%w: exact bid bonus cannot be negative", ErrInvalidInput)
	}

	publisher := cfg.Publisher
	if publisher == nil {
		publisher = events.Nop{}
	}

	return &service{
		exactBidBonus: cfg.ExactBidBonus,
		gameRepo:      cfg.GameRepo,
		historyRepo:   cfg.HistoryRepo,
		publisher:     publisher,
		clock:         cfg.Clock,
		idGenerator:   cfg.IDGenerator,
		registry:      newRegistry(),
	}, nil
}

// CreateGame starts a new game, replacing any game already at the same table
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	players := make([]string, len(input.Players))
	for i, name := range input.Players {
		players[i] = strings.TrimSpace(name)
	}

	l, err := ledger.New(&ledger.Config{
		Players:       players,
		MaxRounds:     input.MaxRounds,
		ExactBidBonus: s.exactBidBonus,
	})
	if err != nil {
		return nil, err
	}

	var replacedGameID string
	if input.TableID != "" {
		existing, err := s.gameRepo.GetGameByTable(ctx, &gameRepo.GetGameByTableInput{
			TableID: input.TableID,
		})
		if err != nil && !errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, fmt.Errorf("failed to check table: %w", err)
		}
		if existing != nil {
			replacedGameID = existing.ID
		}
	}

	now := s.clock.Now()
	t := &table{
		game: &models.Game{
			ID:        s.idGenerator.NewID(),
			TableID:   input.TableID,
			CreatedAt: now,
		},
		ledger: l,
	}
	snap := snapshot(t.game, l, now)

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: snap}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}
	t.game = snap

	if replacedGameID != "" {
		s.discard(ctx, replacedGameID)
	}
	s.registry.put(t)

	log.Printf("Created game %s for %d players (%d rounds)", snap.ID, len(players), snap.TotalRounds)
	s.publish(ctx, &events.Event{
		Type:       events.TypeGameCreated,
		GameID:     snap.ID,
		TableID:    snap.TableID,
		Scores:     l.CurrentScores(),
		OccurredAt: now,
	})

	return &CreateGameOutput{
		Game:           newGameState(t),
		ReplacedGameID: replacedGameID,
	}, nil
}

// GetGame returns the current state of a game
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, fmt.Errorf("%w: game ID is required", ErrInvalidInput)
	}

	t, err := s.lockTable(ctx, input.GameID)
	if err != nil {
		return nil, err
	}
	defer t.mu.Unlock()

	return &GetGameOutput{
		Game: newGameState(t),
	}, nil
}

// GetGameByTable returns the current state of the game played at a table
func (s *service) GetGameByTable(ctx context.Context, input *GetGameByTableInput) (*GetGameByTableOutput, error) {
	if input == nil || input.TableID == "" {
		return nil, fmt.Errorf("%w: table ID is required", ErrInvalidInput)
	}

	game, err := s.gameRepo.GetGameByTable(ctx, &gameRepo.GetGameByTableInput{
		TableID: input.TableID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game for table: %w", err)
	}

	t, err := s.lockTable(ctx, game.ID)
	if err != nil {
		return nil, err
	}
	defer t.mu.Unlock()

	return &GetGameByTableOutput{
		Game: newGameState(t),
	}, nil
}

// AddRound scores a round. Rule violations are returned as ledger errors and
// leave the game untouched; a failed save rolls the round back.
func (s *service) AddRound(ctx context.Context, input *AddRoundInput) (*AddRoundOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, fmt.Errorf("%w: game ID is required", ErrInvalidInput)
	}

	t, err := s.lockTable(ctx, input.GameID)
	if err != nil {
		return nil, err
	}
	defer t.mu.Unlock()

	round, err := t.ledger.AddRound(input.Bids, input.Tricks)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	previous := t.game
	snap := snapshot(previous, t.ledger, now)
	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: snap}); err != nil {
		s.rollbackAdd(ctx, t, false)
		return nil, fmt.Errorf("failed to save game: %w", err)
	}
	t.game = snap

	output := &AddRoundOutput{
		Round: round,
	}

	if t.ledger.IsComplete() {
		record := newHistoryRecord(snap, t.ledger, now)
		if err := s.historyRepo.SaveRecord(ctx, &historyRepo.SaveRecordInput{Record: record}); err != nil {
			// The record may have been written before the failure
			if _, delErr := s.historyRepo.DeleteRecord(ctx, &historyRepo.DeleteRecordInput{RecordID: record.ID}); delErr != nil {
				log.Printf("Error removing partial archive for game %s: %v", record.ID, delErr)
			}
			t.game = previous
			s.rollbackAdd(ctx, t, true)
			return nil, fmt.Errorf("failed to archive game: %w", err)
		}
		output.GameComplete = true
		output.HistoryID = record.ID
	}

	output.Game = newGameState(t)

	s.publish(ctx, &events.Event{
		Type:        events.TypeRoundAdded,
		GameID:      snap.ID,
		TableID:     snap.TableID,
		RoundNumber: round.RoundNumber,
		Scores:      t.ledger.CurrentScores(),
		OccurredAt:  now,
	})
	if output.GameComplete {
		log.Printf("Game %s complete, winner %s", snap.ID, output.Game.Leader)
		s.publish(ctx, &events.Event{
			Type:       events.TypeGameCompleted,
			GameID:     snap.ID,
			TableID:    snap.TableID,
			Scores:     t.ledger.CurrentScores(),
			OccurredAt: now,
		})
	}

	return output, nil
}

// rollbackAdd removes the round just added and, when the new snapshot was
// already written, restores the stored one
func (s *service) rollbackAdd(ctx context.Context, t *table, restoreStored bool) {
	if _, err := t.ledger.UndoLastRound(); err != nil {
		log.Printf("Error rolling back round for game %s: %v", t.game.ID, err)
		return
	}
	if !restoreStored {
		return
	}
	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: t.game}); err != nil {
		log.Printf("Error restoring game %s after failed archive: %v", t.game.ID, err)
	}
}

// UndoRound removes the most recently scored round
func (s *service) UndoRound(ctx context.Context, input *UndoRoundInput) (*UndoRoundOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, fmt.Errorf("%w: game ID is required", ErrInvalidInput)
	}

	t, err := s.lockTable(ctx, input.GameID)
	if err != nil {
		return nil, err
	}
	defer t.mu.Unlock()

	wasComplete := t.ledger.IsComplete()
	round, err := t.ledger.UndoLastRound()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	snap := snapshot(t.game, t.ledger, now)
	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: snap}); err != nil {
		if _, redoErr := t.ledger.AddRound(round.Bids, round.Tricks); redoErr != nil {
			log.Printf("Error restoring round %d for game %s: %v", round.RoundNumber, t.game.ID, redoErr)
		}
		return nil, fmt.Errorf("failed to save game: %w", err)
	}
	t.game = snap

	// A game that is no longer complete does not belong in the archive
	if wasComplete {
		if _, err := s.historyRepo.DeleteRecord(ctx, &historyRepo.DeleteRecordInput{RecordID: snap.ID}); err != nil {
			log.Printf("Error removing archived game %s: %v", snap.ID, err)
		}
	}

	s.publish(ctx, &events.Event{
		Type:        events.TypeRoundUndone,
		GameID:      snap.ID,
		TableID:     snap.TableID,
		RoundNumber: round.RoundNumber,
		Scores:      t.ledger.CurrentScores(),
		OccurredAt:  now,
	})

	return &UndoRoundOutput{
		Round: round,
		Game:  newGameState(t),
	}, nil
}

// ResetGame discards a game
func (s *service) ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, fmt.Errorf("%w: game ID is required", ErrInvalidInput)
	}

	t, err := s.lockTable(ctx, input.GameID)
	if err != nil {
		return nil, err
	}
	defer t.mu.Unlock()

	if err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{GameID: input.GameID}); err != nil && !errors.Is(err, gameRepo.ErrGameNotFound) {
		return nil, fmt.Errorf("failed to delete game: %w", err)
	}
	t.removed = true
	s.registry.remove(input.GameID)

	s.publish(ctx, &events.Event{
		Type:       events.TypeGameReset,
		GameID:     t.game.ID,
		TableID:    t.game.TableID,
		OccurredAt: s.clock.Now(),
	})

	return &ResetGameOutput{
		Success: true,
	}, nil
}

// ListHistory returns completed games, most recent first
func (s *service) ListHistory(ctx context.Context, input *ListHistoryInput) (*ListHistoryOutput, error) {
	limit := 0
	if input != nil {
		limit = input.Limit
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit cannot be negative", ErrInvalidInput)
	}

	output, err := s.historyRepo.ListRecords(ctx, &historyRepo.ListRecordsInput{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	return &ListHistoryOutput{
		Records: output.Records,
	}, nil
}

// GetHistoryRecord returns one completed game
func (s *service) GetHistoryRecord(ctx context.Context, input *GetHistoryRecordInput) (*GetHistoryRecordOutput, error) {
	if input == nil || input.RecordID == "" {
		return nil, fmt.Errorf("%w: record ID is required", ErrInvalidInput)
	}

	record, err := s.historyRepo.GetRecord(ctx, &historyRepo.GetRecordInput{RecordID: input.RecordID})
	if err != nil {
		if errors.Is(err, historyRepo.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get history record: %w", err)
	}

	return &GetHistoryRecordOutput{
		Record: record,
	}, nil
}

// DeleteHistoryRecord removes a completed game from the archive
func (s *service) DeleteHistoryRecord(ctx context.Context, input *DeleteHistoryRecordInput) (*DeleteHistoryRecordOutput, error) {
	if input == nil || input.RecordID == "" {
		return nil, fmt.Errorf("%w: record ID is required", ErrInvalidInput)
	}

	output, err := s.historyRepo.DeleteRecord(ctx, &historyRepo.DeleteRecordInput{RecordID: input.RecordID})
	if err != nil {
		return nil, fmt.Errorf("failed to delete history record: %w", err)
	}

	return &DeleteHistoryRecordOutput{
		Deleted: output.Deleted,
	}, nil
}

// lockTable returns the live game locked for the caller, loading it from the
// repository on first use. Callers must unlock t.mu.
func (s *service) lockTable(ctx context.Context, gameID string) (*table, error) {
	for {
		t, ok := s.registry.get(gameID)
		if !ok {
			loaded, err := s.loadTable(ctx, gameID)
			if err != nil {
				return nil, err
			}
			t = s.registry.put(loaded)
		}

		t.mu.Lock()
		if !t.removed {
			return t, nil
		}
		t.mu.Unlock()

		// Reset while we waited
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
}

// loadTable rebuilds a live game from its stored snapshot by replaying its rounds
func (s *service) loadTable(ctx context.Context, gameID string) (*table, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{GameID: gameID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	l, err := ledger.Replay(&ledger.Config{
		Players:       game.Players,
		MaxRounds:     game.MaxRounds,
		ExactBidBonus: game.ExactBidBonus,
	}, game.Rounds)
	if err != nil {
		return nil, fmt.Errorf("%w: game %s: %v", ErrCorruptGame, gameID, err)
	}

	if game.Scores != nil {
		replayed := l.CurrentScores()
		for _, player := range game.Players {
			if replayed[player] != game.Scores[player] {
				return nil, fmt.Errorf("%w: game %s: %s has %d stored but %d replayed",
					ErrCorruptGame, gameID, player, game.Scores[player], replayed[player])
			}
		}
	}

	log.Printf("Restored game %s at round %d", gameID, l.RoundNumber())
	return &table{
		game:   game,
		ledger: l,
	}, nil
}

// discard drops a game that has been replaced at its table
func (s *service) discard(ctx context.Context, gameID string) {
	if t, ok := s.registry.get(gameID); ok {
		t.mu.Lock()
		t.removed = true
		t.mu.Unlock()
		s.registry.remove(gameID)
	}

	if err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{GameID: gameID}); err != nil && !errors.Is(err, gameRepo.ErrGameNotFound) {
		log.Printf("Error deleting replaced game %s: %v", gameID, err)
	}
}

func (s *service) publish(ctx context.Context, event *events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("Error publishing %s event for game %s: %v", event.Type, event.GameID, err)
	}
}

// snapshot builds the stored form of a game from its ledger
func snapshot(base *models.Game, l *ledger.Ledger, now time.Time) *models.Game {
	status := models.GameStatusActive
	if l.IsComplete() {
		status = models.GameStatusCompleted
	}

	return &models.Game{
		ID:            base.ID,
		TableID:       base.TableID,
		Status:        status,
		Players:       l.Players(),
		MaxRounds:     l.MaxRounds(),
		MaxCards:      l.MaxCards(),
		TotalRounds:   l.TotalRounds(),
		ExactBidBonus: l.ExactBidBonus(),
		Rounds:        l.Rounds(),
		Scores:        l.CurrentScores(),
		CreatedAt:     base.CreatedAt,
		UpdatedAt:     now,
	}
}

func newHistoryRecord(game *models.Game, l *ledger.Ledger, completedAt time.Time) *models.HistoryRecord {
	winner, _ := l.Leader()
	rounds := l.Rounds()

	return &models.HistoryRecord{
		ID:          game.ID,
		GameID:      game.ID,
		CompletedAt: completedAt,
		Players:     l.Players(),
		FinalScores: l.CurrentScores(),
		Rounds:      rounds,
		MaxCards:    l.MaxCards(),
		TotalRounds: len(rounds),
		Winner:      winner,
	}
}

func newGameState(t *table) *GameState {
	l := t.ledger
	handSize, ok := l.CurrentHandSize()
	dealer := ""
	if ok {
		dealer = l.CurrentDealer()
	}
	leader, leaderScore := l.Leader()

	return &GameState{
		GameID:       t.game.ID,
		TableID:      t.game.TableID,
		Players:      l.Players(),
		Scores:       l.CurrentScores(),
		Rounds:       l.Rounds(),
		CurrentRound: l.RoundNumber(),
		HandSize:     handSize,
		Dealer:       dealer,
		MaxCards:     l.MaxCards(),
		TotalRounds:  l.TotalRounds(),
		Complete:     !ok,
		Leader:       leader,
		LeaderScore:  leaderScore,
		CreatedAt:    t.game.CreatedAt,
		UpdatedAt:    t.game.UpdatedAt,
	}
}
