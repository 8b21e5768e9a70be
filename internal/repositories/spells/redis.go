package spells

import (
	"context"
	"sort"

	"github.com/chronicles-of-arvandor/spell-converter/internal/encoding/document"
	"github.com/chronicles-of-arvandor/spell-converter/internal/errors"
	redisclient "github.com/chronicles-of-arvandor/spell-converter/internal/redis"
)

const (
	spellKeyPrefix = "spell:"
	// spellIndexKey maps document file names to spell IDs
	spellIndexKey = "spells:index"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis spell repository.
type RedisConfig struct {
	Client redisclient.Client
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

// NewRedis creates a repository that publishes documents to Redis, keyed by
// spell ID, with a name index alongside
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Spell == nil {
		return nil, errors.InvalidArgument(errSpellNil)
	}
	if input.Spell.ID == "" {
		return nil, errors.InvalidArgument("spell ID cannot be empty")
	}
	if len(input.Document) == 0 {
		return nil, errors.InvalidArgument(errDocumentEmpty)
	}

	key := spellKeyPrefix + input.Spell.ID

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, input.Document, 0)
	pipe.HSet(ctx, spellIndexKey, document.FileName(input.Spell.Name), input.Spell.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to publish spell %q", input.Spell.Name).
			WithMeta(errors.MetaSpell, input.Spell.Name)
	}

	return &SaveOutput{Key: input.Spell.ID, Location: key}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	data, err := r.client.Get(ctx, spellKeyPrefix+input.Key).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("spell %s not found", input.Key)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get spell %s", input.Key)
	}

	return &GetOutput{Key: input.Key, Document: data}, nil
}

// List returns the IDs in the name index
func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	index, err := r.client.HGetAll(ctx, spellIndexKey).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read spell index")
	}

	keys := make([]string, 0, len(index))
	for _, id := range index {
		keys = append(keys, id)
	}
	sort.Strings(keys)

	return &ListOutput{Keys: keys}, nil
}

// LookupByName resolves a spell name to its ID through the name index
func LookupByName(ctx context.Context, client redisclient.Client, name string) (string, error) {
	id, err := client.HGet(ctx, spellIndexKey, document.FileName(name)).Result()
	if err != nil {
		if err == redisclient.Nil {
			return "", errors.NotFoundf("spell %q not indexed", name)
		}
		return "", errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to look up spell %q", name)
	}
	return id, nil
}
