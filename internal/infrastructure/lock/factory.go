package lock

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/plantrent/backend/internal/domain/shared"
	"github.com/plantrent/backend/internal/infrastructure/config"
)

// LockerFactory creates statement mutation lockers based on configuration
type LockerFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// LockerFactoryOption is a functional option for configuring the factory
type LockerFactoryOption func(*LockerFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) LockerFactoryOption {
	return func(f *LockerFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to the in-process locker
// when Redis is enabled but unreachable
// Default is true (allow fallback)
func WithInMemoryFallback(allow bool) LockerFactoryOption {
	return func(f *LockerFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewLockerFactory creates a new factory
func NewLockerFactory(cfg config.RedisConfig, opts ...LockerFactoryOption) *LockerFactory {
	f := &LockerFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true, // Default to allowing fallback
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateRedisLocker creates a Redis-backed keyed locker
func (f *LockerFactory) CreateRedisLocker() (shared.KeyedLocker, error) {
	locker, err := NewRedisKeyedLocker(RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis locker: %w", err)
	}

	return locker, nil
}

// CreateInMemoryLocker creates an in-process keyed locker
// This is suitable for single-instance deployments and testing
func (f *LockerFactory) CreateInMemoryLocker() shared.KeyedLocker {
	return NewMemoryKeyedLocker()
}

// CreateLocker creates a keyed locker based on the Redis configuration. When
// Redis is disabled the in-process locker is used directly; when it is
// enabled but unreachable the factory falls back to the in-process locker
// unless WithInMemoryFallback(false) was set.
func (f *LockerFactory) CreateLocker() (shared.KeyedLocker, error) {
	if !f.redisConfig.Enabled {
		f.logger.Info("using in-process statement mutation lock")
		return f.CreateInMemoryLocker(), nil
	}

	locker, err := f.CreateRedisLocker()
	if err == nil {
		f.logger.Info("using Redis statement mutation lock")
		return locker, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for statement locking but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-process statement mutation lock. "+
		"Concurrent mutations from other instances are only caught by the database.",
		zap.Error(err),
	)
	return f.CreateInMemoryLocker(), nil
}
