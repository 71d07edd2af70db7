package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/ohhell/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	recordKeyPrefix = "history:"
	historyIndexKey = "history_index"

	// DefaultMaxRecords is how many completed games are kept
	DefaultMaxRecords = 100
)

// ErrRecordNotFound is returned when an archived game is not found
var ErrRecordNotFound = errors.New("history record not found")

// Config holds configuration for the Redis history repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// MaxRecords is how many records to keep; older ones are dropped on save
	MaxRecords int
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client     *redis.Client
	maxRecords int
}

// NewRedis creates a new Redis-backed history repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.MaxRecords < 0 {
		return nil, errors.New("max records cannot be negative")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	maxRecords := cfg.MaxRecords
	if maxRecords == 0 {
		maxRecords = DefaultMaxRecords
	}

	return &redisRepository{
		client:     cfg.RedisClient,
		maxRecords: maxRecords,
	}, nil
}

func recordKey(recordID string) string {
	return fmt.Sprintf("%s%s", recordKeyPrefix, recordID)
}

// SaveRecord archives a completed game and trims the archive to the newest records
func (r *redisRepository) SaveRecord(ctx context.Context, input *SaveRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record
	if record.ID == "" {
		return errors.New("history record ID cannot be empty")
	}
	if record.CompletedAt.IsZero() {
		return errors.New("history record completion time cannot be empty")
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal history record: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, recordKey(record.ID), recordJSON, 0)
	pipe.ZAdd(ctx, historyIndexKey, redis.Z{
		Score:  float64(record.CompletedAt.UnixMilli()),
		Member: record.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save history record: %w", err)
	}

	return r.trim(ctx)
}

// trim removes everything but the newest maxRecords entries
func (r *redisRepository) trim(ctx context.Context) error {
	staleIDs, err := r.client.ZRange(ctx, historyIndexKey, 0, int64(-r.maxRecords-1)).Result()
	if err != nil {
		return fmt.Errorf("failed to find stale history records: %w", err)
	}
	if len(staleIDs) == 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	members := make([]interface{}, 0, len(staleIDs))
	for _, id := range staleIDs {
		pipe.Del(ctx, recordKey(id))
		members = append(members, id)
	}
	pipe.ZRem(ctx, historyIndexKey, members...)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to trim history: %w", err)
	}

	return nil
}

// ListRecords retrieves archived games, most recently completed first
func (r *redisRepository) ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error) {
	stop := int64(-1)
	if input != nil && input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	recordIDs, err := r.client.ZRevRange(ctx, historyIndexKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get history record IDs: %w", err)
	}

	if len(recordIDs) == 0 {
		return &ListRecordsOutput{
			Records: []*models.HistoryRecord{},
		}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(recordIDs))
	for i, id := range recordIDs {
		commands[i] = pipe.Get(ctx, recordKey(id))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get history records: %w", err)
	}

	records := make([]*models.HistoryRecord, 0, len(recordIDs))
	for i, cmd := range commands {
		recordJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get history record %s: %w", recordIDs[i], err)
		}

		var record models.HistoryRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal history record %s: %w", recordIDs[i], err)
		}

		records = append(records, &record)
	}

	return &ListRecordsOutput{
		Records: records,
	}, nil
}

// GetRecord retrieves an archived game by ID
func (r *redisRepository) GetRecord(ctx context.Context, input *GetRecordInput) (*models.HistoryRecord, error) {
	if input == nil || input.RecordID == "" {
		return nil, errors.New("input and record ID cannot be empty")
	}

	recordJSON, err := r.client.Get(ctx, recordKey(input.RecordID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get history record: %w", err)
	}

	var record models.HistoryRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history record: %w", err)
	}

	return &record, nil
}

// DeleteRecord removes an archived game
func (r *redisRepository) DeleteRecord(ctx context.Context, input *DeleteRecordInput) (*DeleteRecordOutput, error) {
	if input == nil || input.RecordID == "" {
		return nil, errors.New("input and record ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	delCmd := pipe.Del(ctx, recordKey(input.RecordID))
	pipe.ZRem(ctx, historyIndexKey, input.RecordID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete history record: %w", err)
	}

	return &DeleteRecordOutput{
		Deleted: delCmd.Val() > 0,
	}, nil
}
