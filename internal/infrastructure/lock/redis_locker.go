package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/plantrent/backend/internal/domain/shared"
)

const (
	defaultKeyPrefix  = "statement:lock:"
	defaultTTL        = 30 * time.Second
	defaultRetryDelay = 50 * time.Millisecond
	releaseTimeout    = 5 * time.Second
)

// releaseScript deletes the lock key only while it still carries the
// holder's token. A key that expired and was reclaimed by another instance
// must never be released by the previous holder.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisKeyedLocker implements KeyedLocker on Redis SET NX with a per-holder
// token. This is suitable for distributed deployments where multiple
// instances mutate the same statement slots.
type RedisKeyedLocker struct {
	client     *redis.Client
	keyPrefix  string
	ttl        time.Duration
	retryDelay time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisKeyedLocker creates a new Redis-backed keyed locker
func NewRedisKeyedLocker(cfg RedisConfig) (*RedisKeyedLocker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisKeyedLocker{
		client:     client,
		keyPrefix:  defaultKeyPrefix,
		ttl:        defaultTTL,
		retryDelay: defaultRetryDelay,
	}, nil
}

// NewRedisKeyedLockerWithClient creates a locker with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisKeyedLockerWithClient(client *redis.Client, keyPrefix string) *RedisKeyedLocker {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisKeyedLocker{
		client:     client,
		keyPrefix:  keyPrefix,
		ttl:        defaultTTL,
		retryDelay: defaultRetryDelay,
	}
}

// Acquire polls SET NX until the key is taken or ctx is done. The TTL caps
// how long a crashed holder can keep the key occupied.
func (l *RedisKeyedLocker) Acquire(ctx context.Context, key string) (func(), error) {
	lockKey := l.keyPrefix + key
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, lockKey, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, shared.ErrUnavailable
		}
		if ok {
			break
		}

		select {
		case <-time.After(l.retryDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			// The request context may already be done when release runs.
			ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
			defer cancel()

			_ = releaseScript.Run(ctx, l.client, []string{lockKey}, token).Err()
		})
	}
	return release, nil
}

// Close closes the Redis client
func (l *RedisKeyedLocker) Close() error {
	return l.client.Close()
}

// GetClient returns the underlying Redis client (for testing/monitoring)
func (l *RedisKeyedLocker) GetClient() *redis.Client {
	return l.client
}

// Ensure RedisKeyedLocker implements KeyedLocker
var _ shared.KeyedLocker = (*RedisKeyedLocker)(nil)
