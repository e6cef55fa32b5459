package crew

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	"github.com/KirkDiggler/swn-ship-api/internal/errors"
	redisclient "github.com/KirkDiggler/swn-ship-api/internal/redis"
)

const (
	crewKeyPrefix = "crew:"

	errMemberNil     = "crew member cannot be nil"
	errMemberIDEmpty = "crew member ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for crew members
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func validateMember(m *swn.CrewMember) error {
	if m == nil {
		return errors.InvalidArgument(errMemberNil)
	}
	if m.ID == "" {
		return errors.InvalidArgument(errMemberIDEmpty)
	}
	if m.Type != swn.CrewTypeCharacter && m.Type != swn.CrewTypeNPC {
		return errors.InvalidArgumentf("unknown crew type %q", m.Type)
	}
	for name, rank := range m.Skills {
		if rank < swn.MinSkillRank || rank > swn.MaxSkillRank {
			return errors.InvalidArgumentf("skill %s rank %d out of range", name, rank)
		}
	}
	return nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateMember(input.Member); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Member)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal crew member")
	}

	// SETNX keeps concurrent creates from overwriting each other
	ok, err := r.client.SetNX(ctx, crewKeyPrefix+input.Member.ID, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store crew member")
	}
	if !ok {
		return nil, errors.AlreadyExistsf("crew member with ID %s already exists", input.Member.ID)
	}

	return &CreateOutput{Member: input.Member}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMemberIDEmpty)
	}

	result, err := r.client.Get(ctx, crewKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("crew member with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get crew member")
	}

	var m swn.CrewMember
	if err := json.Unmarshal([]byte(result), &m); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal crew member")
	}

	return &GetOutput{Member: &m}, nil
}

func (r *redisRepository) GetMany(ctx context.Context, input GetManyInput) (*GetManyOutput, error) {
	out := &GetManyOutput{}
	if len(input.IDs) == 0 {
		return out, nil
	}

	keys := make([]string, len(input.IDs))
	for i, id := range input.IDs {
		keys[i] = crewKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get crew members")
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			out.Missing = append(out.Missing, input.IDs[i])
			continue
		}
		var m swn.CrewMember
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal crew member %s", input.IDs[i])
		}
		out.Members = append(out.Members, &m)
	}

	return out, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateMember(input.Member); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Member)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal crew member")
	}

	// SET XX only writes keys that already exist
	ok, err := r.client.SetXX(ctx, crewKeyPrefix+input.Member.ID, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update crew member")
	}
	if !ok {
		return nil, errors.NotFoundf("crew member with ID %s not found", input.Member.ID)
	}

	return &UpdateOutput{Member: input.Member}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMemberIDEmpty)
	}

	n, err := r.client.Del(ctx, crewKeyPrefix+input.ID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete crew member")
	}
	if n == 0 {
		return nil, errors.NotFoundf("crew member with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}
