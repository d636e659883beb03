package workbench

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/framewright/framewright/pkg/errors"
	"github.com/framewright/framewright/pkg/frame"
)

// RedisConfig configures a Redis-backed workbench.
type RedisConfig struct {
	// Addr is the host:port of the Redis server.
	Addr string

	// Password is optional.
	Password string

	// DB selects the Redis database number.
	DB int

	// KeyPrefix namespaces all workbench keys. Empty means "framewright".
	KeyPrefix string
}

// RedisStore is a Redis-backed workbench for multi-instance API
// deployments. Designs and sizes live in hashes keyed by their
// identity, settings in a single string key.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to redis at %s", cfg.Addr)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "framewright"
	}
	return &RedisStore{client: client, prefix: prefix}, nil
}

func (s *RedisStore) designsKey() string  { return s.prefix + ":designs" }
func (s *RedisStore) sizesKey() string    { return s.prefix + ":sizes" }
func (s *RedisStore) settingsKey() string { return s.prefix + ":settings" }

func (s *RedisStore) ListDesigns(ctx context.Context) ([]SavedDesign, error) {
	raw, err := s.client.HGetAll(ctx, s.designsKey()).Result()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list designs")
	}

	list := make([]SavedDesign, 0, len(raw))
	for name, val := range raw {
		var d SavedDesign
		if err := json.Unmarshal([]byte(val), &d); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "parse design %q", name)
		}
		list = append(list, d)
	}
	// Hash iteration order is arbitrary; restore creation order.
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

func (s *RedisStore) GetDesign(ctx context.Context, name string) (SavedDesign, error) {
	val, err := s.client.HGet(ctx, s.designsKey(), name).Result()
	if err == redis.Nil {
		return SavedDesign{}, errors.New(errors.ErrCodeDesignNotFound, "design %q not found", name)
	}
	if err != nil {
		return SavedDesign{}, errors.Wrap(errors.ErrCodeStore, err, "get design %q", name)
	}

	var d SavedDesign
	if err := json.Unmarshal([]byte(val), &d); err != nil {
		return SavedDesign{}, errors.Wrap(errors.ErrCodeStore, err, "parse design %q", name)
	}
	return d, nil
}

func (s *RedisStore) SaveDesign(ctx context.Context, d SavedDesign) (SavedDesign, error) {
	if err := errors.ValidateDesignName(d.Name); err != nil {
		return SavedDesign{}, err
	}

	now := nowUTC()
	d.UpdatedAt = now

	existing, err := s.GetDesign(ctx, d.Name)
	switch {
	case err == nil:
		d.ID = existing.ID
		d.CreatedAt = existing.CreatedAt
	case errors.Is(err, errors.ErrCodeDesignNotFound):
		d.ID = uuid.NewString()
		d.CreatedAt = now
	default:
		return SavedDesign{}, err
	}

	val, err := json.Marshal(d)
	if err != nil {
		return SavedDesign{}, errors.Wrap(errors.ErrCodeStore, err, "marshal design %q", d.Name)
	}
	if err := s.client.HSet(ctx, s.designsKey(), d.Name, val).Err(); err != nil {
		return SavedDesign{}, errors.Wrap(errors.ErrCodeStore, err, "save design %q", d.Name)
	}
	return d, nil
}

func (s *RedisStore) DeleteDesign(ctx context.Context, name string) error {
	n, err := s.client.HDel(ctx, s.designsKey(), name).Result()
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete design %q", name)
	}
	if n == 0 {
		return errors.New(errors.ErrCodeDesignNotFound, "design %q not found", name)
	}
	return nil
}

func (s *RedisStore) ListSizes(ctx context.Context) ([]frame.Size, error) {
	raw, err := s.client.HGetAll(ctx, s.sizesKey()).Result()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list sizes")
	}

	list := make([]frame.Size, 0, len(raw))
	for key, val := range raw {
		var sz frame.Size
		if err := json.Unmarshal([]byte(val), &sz); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "parse size %q", key)
		}
		list = append(list, sz)
	}
	sortSizes(list)
	return list, nil
}

func (s *RedisStore) SaveSize(ctx context.Context, size frame.Size) error {
	if err := validateSize(size); err != nil {
		return err
	}
	val, err := json.Marshal(size)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "marshal size %q", size.Name)
	}
	if err := s.client.HSet(ctx, s.sizesKey(), sizeKey(size.Name), val).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "save size %q", size.Name)
	}
	return nil
}

func (s *RedisStore) DeleteSize(ctx context.Context, name string) error {
	n, err := s.client.HDel(ctx, s.sizesKey(), sizeKey(name)).Result()
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete size %q", name)
	}
	if n == 0 {
		return errors.New(errors.ErrCodeNotFound, "size %q not found", name)
	}
	return nil
}

func (s *RedisStore) LoadSettings(ctx context.Context) (Settings, error) {
	val, err := s.client.Get(ctx, s.settingsKey()).Result()
	if err == redis.Nil {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, errors.Wrap(errors.ErrCodeStore, err, "load settings")
	}

	settings := DefaultSettings()
	if err := json.Unmarshal([]byte(val), &settings); err != nil {
		return Settings{}, errors.Wrap(errors.ErrCodeStore, err, "parse settings")
	}
	return settings, nil
}

func (s *RedisStore) SaveSettings(ctx context.Context, settings Settings) error {
	val, err := json.Marshal(settings)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "marshal settings")
	}
	if err := s.client.Set(ctx, s.settingsKey(), val, 0).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "save settings")
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "ping redis")
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
