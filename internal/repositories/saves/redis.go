package saves

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-adventure/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-adventure/internal/redis"
)

const (
	defaultKeyPrefix = "save:slot:"
)

type redisRepository struct {
	client    redisclient.Client
	keyPrefix string
}

// RedisConfig contains configuration for the Redis save repository.
type RedisConfig struct {
	Client redisclient.Client
	// KeyPrefix defaults to "save:slot:"
	KeyPrefix string
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed save repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &redisRepository{
		client:    cfg.Client,
		keyPrefix: prefix,
	}, nil
}

func (r *redisRepository) key(slot int) string {
	return fmt.Sprintf("%s%d", r.keyPrefix, slot)
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal save data")
	}

	key := r.key(input.Slot)
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save slot %d", input.Slot)
	}

	return &SaveOutput{Location: key}, nil
}

func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}

	result, err := r.client.Get(ctx, r.key(input.Slot)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("save slot %d is empty", input.Slot)
		}
		return nil, errors.Wrapf(err, "failed to load slot %d", input.Slot)
	}

	data, err := decode(input.Slot, []byte(result))
	if err != nil {
		return nil, err
	}

	return &LoadOutput{Data: data}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}

	deleted, err := r.client.Del(ctx, r.key(input.Slot)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete slot %d", input.Slot)
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("save slot %d is empty", input.Slot)
	}

	return &DeleteOutput{}, nil
}
