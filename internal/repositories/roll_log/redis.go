package rolllog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/swn-ship-api/internal/errors"
	"github.com/KirkDiggler/swn-ship-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/swn-ship-api/internal/redis"
)

const (
	// Key pattern: roll_log:{ship_id}
	logKeyPrefix = "roll_log:"

	// DefaultTTL is how long an idle ship keeps its log
	DefaultTTL = 24 * time.Hour
	// DefaultMaxEntries is how many rolls a ship keeps
	DefaultMaxEntries = 50

	errEntryNil     = "entry cannot be nil"
	errShipIDEmpty  = "ship ID cannot be empty"
	errEntryIDEmpty = "entry ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// MaxEntries defaults to DefaultMaxEntries
	MaxEntries int64
	// TTL applies when an append carries none; defaults to DefaultTTL
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.MaxEntries < 0 {
		return errors.InvalidArgument("max entries cannot be negative")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client     redisclient.Client
	clock      clock.Clock
	maxEntries int64
	ttl        time.Duration
}

// NewRedisRepository creates a new Redis repository for roll logs
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxEntries := cfg.MaxEntries
	if maxEntries == 0 {
		maxEntries = DefaultMaxEntries
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client:     cfg.Client,
		clock:      cfg.Clock,
		maxEntries: maxEntries,
		ttl:        ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Append records a roll and trims the log to its maximum length
func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.Entry == nil {
		return nil, errors.InvalidArgument(errEntryNil)
	}
	if input.Entry.ShipID == "" {
		return nil, errors.InvalidArgument(errShipIDEmpty)
	}
	if input.Entry.ID == "" {
		return nil, errors.InvalidArgument(errEntryIDEmpty)
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = r.ttl
	}

	entry := *input.Entry
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.clock.Now()
	}

	data, err := json.Marshal(&entry)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal roll")
	}

	key := logKeyPrefix + entry.ShipID
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, r.maxEntries-1)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store roll in Redis")
	}

	return &AppendOutput{Entry: &entry}, nil
}

// List returns a ship's recent rolls, newest first
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.ShipID == "" {
		return nil, errors.InvalidArgument(errShipIDEmpty)
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit cannot be negative")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	raw, err := r.client.LRange(ctx, logKeyPrefix+input.ShipID, 0, stop).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get rolls from Redis")
	}

	entries := make([]*Entry, 0, len(raw))
	for _, item := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal roll")
		}
		entries = append(entries, &e)
	}

	return &ListOutput{Entries: entries}, nil
}

// Delete removes a ship's log
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ShipID == "" {
		return nil, errors.InvalidArgument(errShipIDEmpty)
	}

	key := logKeyPrefix + input.ShipID
	pipe := r.client.TxPipeline()
	count := pipe.LLen(ctx, key)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete rolls from Redis")
	}

	return &DeleteOutput{
		// nolint:gosec // bounded by maxEntries
		EntriesDeleted: int32(count.Val()),
	}, nil
}
