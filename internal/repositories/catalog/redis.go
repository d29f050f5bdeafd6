package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dragonwilds-editor/internal/entities"
	"github.com/KirkDiggler/dragonwilds-editor/internal/errors"
	"github.com/KirkDiggler/dragonwilds-editor/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/dragonwilds-editor/internal/redis"
)

const (
	catalogKeyPrefix = "catalog:"
	updatedAtSuffix  = ":updated_at"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis catalog repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
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

// NewRedis creates a Redis-backed catalog repository. Catalogs are stored
// as the same JSON array the files use, so a shared Redis can serve every
// editor install.
func NewRedis(cfg *RedisConfig) (SharedRepository, error) {
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

func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	key := GetKey(input.Kind)
	values, err := r.client.MGet(ctx, key, key+updatedAtSuffix).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get catalog %s", key)
	}

	data, ok := values[0].(string)
	if !ok {
		return nil, errors.NotFoundf("catalog %s not found", key)
	}

	entries, err := decodeEntries([]byte(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse catalog %s", key)
	}

	var updatedAt time.Time
	if stamp, ok := values[1].(string); ok {
		if updatedAt, err = clock.ParseStamp(stamp); err != nil {
			slog.WarnContext(ctx, "ignoring catalog import time", "key", key, "error", err)
		}
	}

	slog.DebugContext(ctx, "catalog loaded from redis",
		"kind", input.Kind,
		"key", key,
		"entries", len(entries))

	return &LoadOutput{
		Kind:      input.Kind,
		Source:    "redis:" + key,
		Entries:   entries,
		UpdatedAt: updatedAt,
	}, nil
}

func (r *redisRepository) Store(ctx context.Context, input StoreInput) (*StoreOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	data, err := encodeEntries(input.Entries)
	if err != nil {
		return nil, err
	}

	key := GetKey(input.Kind)
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.Set(ctx, key+updatedAtSuffix, clock.Stamp(r.clock), 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store catalog %s", key)
	}

	slog.InfoContext(ctx, "catalog stored in redis",
		"kind", input.Kind,
		"key", key,
		"entries", len(input.Entries))

	return &StoreOutput{
		Source:  "redis:" + key,
		Entries: len(input.Entries),
	}, nil
}

func (r *redisRepository) Verify(ctx context.Context, _ VerifyInput) (*VerifyOutput, error) {
	output := &VerifyOutput{}

	iter := r.client.Scan(ctx, 0, catalogKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasSuffix(key, updatedAtSuffix) {
			continue
		}
		output.Checked++

		data, err := r.client.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, errors.Wrapf(err, "failed to get catalog %s", key)
		}

		if _, err := decodeEntries([]byte(data)); err != nil {
			slog.WarnContext(ctx, "corrupt catalog in redis", "key", key, "error", err)
			output.Corrupted = append(output.Corrupted, CorruptCatalog{
				Key:    key,
				Reason: errors.GetMessage(err),
			})
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan catalogs")
	}

	return output, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument("key is required")
	}

	deleted, err := r.client.Del(ctx, input.Key, input.Key+updatedAtSuffix).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete catalog %s", input.Key)
	}

	slog.InfoContext(ctx, "catalog deleted from redis", "key", input.Key, "keys", deleted)

	return &DeleteOutput{Deleted: deleted}, nil
}

// GetKey returns the Redis key holding a catalog
// Exposed for testing purposes
func GetKey(kind entities.CatalogKind) string {
	return fmt.Sprintf("%s%s", catalogKeyPrefix, kind)
}

// GetUpdatedAtKey returns the Redis key holding a catalog's import time
func GetUpdatedAtKey(kind entities.CatalogKind) string {
	return GetKey(kind) + updatedAtSuffix
}
