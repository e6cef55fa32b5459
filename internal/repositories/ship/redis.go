package ship

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	"github.com/KirkDiggler/swn-ship-api/internal/errors"
	"github.com/KirkDiggler/swn-ship-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/swn-ship-api/internal/redis"
)

const (
	shipKeyPrefix    = "ship:"
	ownerIndexPrefix = "ship:owner:"
	allShipsKey      = "ship:index"

	errShipNil     = "ship cannot be nil"
	errShipIDEmpty = "ship ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis ship repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed ship repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func validateShip(s *swn.Ship) error {
	if s == nil {
		return errors.InvalidArgument(errShipNil)
	}
	if s.ID == "" {
		return errors.InvalidArgument(errShipIDEmpty)
	}
	return nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateShip(input.Ship); err != nil {
		return nil, err
	}

	key := shipKeyPrefix + input.Ship.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("ship with ID %s already exists", input.Ship.ID)
	}

	stored := input.Ship.Clone()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.clock.Now()
	}
	stored.UpdatedAt = stored.CreatedAt

	data, err := json.Marshal(stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal ship")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, allShipsKey, stored.ID)
	if stored.OwnerID != "" {
		pipe.SAdd(ctx, ownerIndexPrefix+stored.OwnerID, stored.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create ship")
	}

	return &CreateOutput{Ship: stored}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errShipIDEmpty)
	}

	result, err := r.client.Get(ctx, shipKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("ship with ID %s not found", input.ID).WithMeta("ship_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get ship")
	}

	var s swn.Ship
	if err := json.Unmarshal([]byte(result), &s); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal ship")
	}

	return &GetOutput{Ship: &s}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateShip(input.Ship); err != nil {
		return nil, err
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Ship.ID})
	if err != nil {
		return nil, err
	}

	stored := input.Ship.Clone()
	stored.CreatedAt = existing.Ship.CreatedAt
	stored.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal ship")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, shipKeyPrefix+stored.ID, data, 0)
	if existing.Ship.OwnerID != stored.OwnerID {
		if existing.Ship.OwnerID != "" {
			pipe.SRem(ctx, ownerIndexPrefix+existing.Ship.OwnerID, stored.ID)
		}
		if stored.OwnerID != "" {
			pipe.SAdd(ctx, ownerIndexPrefix+stored.OwnerID, stored.ID)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update ship")
	}

	return &UpdateOutput{Ship: stored}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errShipIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, shipKeyPrefix+input.ID)
	pipe.SRem(ctx, allShipsKey, input.ID)
	if existing.Ship.OwnerID != "" {
		pipe.SRem(ctx, ownerIndexPrefix+existing.Ship.OwnerID, input.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete ship")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	indexKey := allShipsKey
	if input.OwnerID != "" {
		indexKey = ownerIndexPrefix + input.OwnerID
	}

	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get ships from index %s", indexKey)
	}

	ships := make([]*swn.Ship, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "ship not found, cleaning up index",
					"ship_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get ship %s", id)
		}
		ships = append(ships, out.Ship)
	}

	sort.Slice(ships, func(i, j int) bool {
		if ships[i].CreatedAt.Equal(ships[j].CreatedAt) {
			return ships[i].ID < ships[j].ID
		}
		return ships[i].CreatedAt.Before(ships[j].CreatedAt)
	})

	return &ListOutput{Ships: ships}, nil
}
