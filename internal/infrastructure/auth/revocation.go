package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationList tracks tokens withdrawn before their natural expiry. The
// identity provider writes revocations into the shared store on logout and
// password change; this service reads them during verification.
type RevocationList interface {
	// Revoke marks a single token id (jti) as withdrawn.
	// ttl should cover the remaining lifetime of the token.
	Revoke(ctx context.Context, jti string, ttl time.Duration) error

	// IsRevoked reports whether a token id has been withdrawn.
	IsRevoked(ctx context.Context, jti string) (bool, error)

	// InvalidateUser withdraws every token the user currently holds by
	// recording an invalidation timestamp.
	InvalidateUser(ctx context.Context, userID string, ttl time.Duration) error

	// IsUserInvalidated reports whether a token issued at tokenIssuedAt
	// predates the user's invalidation timestamp.
	IsUserInvalidated(ctx context.Context, userID string, tokenIssuedAt time.Time) (bool, error)
}

const revocationKeyPrefix = "token:revoked:"

// RedisRevocationList implements RevocationList on Redis. The key space is
// shared with the identity provider, which owns the write side in production.
type RedisRevocationList struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisRevocationListWithClient creates a revocation list sharing an
// existing Redis client
func NewRedisRevocationListWithClient(client *redis.Client) *RedisRevocationList {
	return &RedisRevocationList{
		client:    client,
		keyPrefix: revocationKeyPrefix,
	}
}

func (r *RedisRevocationList) jtiKey(jti string) string {
	return r.keyPrefix + "jti:" + jti
}

func (r *RedisRevocationList) userKey(userID string) string {
	return r.keyPrefix + "user:" + userID
}

// Revoke marks a token id as withdrawn until its natural expiry
func (r *RedisRevocationList) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.jtiKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether a token id has been withdrawn
func (r *RedisRevocationList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	exists, err := r.client.Exists(ctx, r.jtiKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return exists > 0, nil
}

// InvalidateUser records the current time as the user's invalidation
// timestamp. Tokens issued before it are rejected.
func (r *RedisRevocationList) InvalidateUser(ctx context.Context, userID string, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.userKey(userID), time.Now().Unix(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to invalidate user tokens: %w", err)
	}
	return nil
}

// IsUserInvalidated reports whether a token predates the user's invalidation
// timestamp
func (r *RedisRevocationList) IsUserInvalidated(ctx context.Context, userID string, tokenIssuedAt time.Time) (bool, error) {
	value, err := r.client.Get(ctx, r.userKey(userID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check user invalidation: %w", err)
	}

	var invalidatedAt int64
	if _, err := fmt.Sscanf(value, "%d", &invalidatedAt); err != nil {
		return false, fmt.Errorf("failed to parse invalidation timestamp: %w", err)
	}

	return tokenIssuedAt.Unix() <= invalidatedAt, nil
}

// Ensure RedisRevocationList implements RevocationList
var _ RevocationList = (*RedisRevocationList)(nil)

// MemoryRevocationList is an in-process RevocationList for tests and
// single-instance deployments without Redis.
type MemoryRevocationList struct {
	mu            sync.RWMutex
	revokedJTIs   map[string]time.Time // jti -> revocation entry expiry
	invalidatedAt map[string]time.Time // userID -> invalidation time
}

// NewMemoryRevocationList creates an empty in-memory revocation list
func NewMemoryRevocationList() *MemoryRevocationList {
	return &MemoryRevocationList{
		revokedJTIs:   make(map[string]time.Time),
		invalidatedAt: make(map[string]time.Time),
	}
}

// Revoke marks a token id as withdrawn for ttl
func (m *MemoryRevocationList) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revokedJTIs[jti] = time.Now().Add(ttl)
	return nil
}

// IsRevoked reports whether a token id has been withdrawn and the entry has
// not lapsed
func (m *MemoryRevocationList) IsRevoked(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	expiry, ok := m.revokedJTIs[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(m.revokedJTIs, jti)
		return false, nil
	}
	return true, nil
}

// InvalidateUser records the current time as the user's invalidation timestamp
func (m *MemoryRevocationList) InvalidateUser(_ context.Context, userID string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidatedAt[userID] = time.Now()
	return nil
}

// IsUserInvalidated reports whether a token predates the user's invalidation
// timestamp. Sub-second precision matters here because tests issue and
// invalidate within the same second.
func (m *MemoryRevocationList) IsUserInvalidated(_ context.Context, userID string, tokenIssuedAt time.Time) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	invalidated, ok := m.invalidatedAt[userID]
	if !ok {
		return false, nil
	}
	return tokenIssuedAt.UnixNano() <= invalidated.UnixNano(), nil
}

// Ensure MemoryRevocationList implements RevocationList
var _ RevocationList = (*MemoryRevocationList)(nil)
