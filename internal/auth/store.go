package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RefreshTokenStore tracks which refresh tokens are currently valid. A
// refresh token is only trusted if its signature verifies AND it is present
// here, which is what makes logout an actual revocation.
type RefreshTokenStore interface {
	Add(ctx context.Context, token string) error
	Contains(ctx context.Context, token string) (bool, error)
	Remove(ctx context.Context, token string) error
}

const refreshKeyPrefix = "auth:refresh:"

// RedisTokenStore keeps the revocation set in Redis so sessions survive
// restarts and are shared across instances. Entries expire together with the
// token itself. Only a SHA-256 of the token is stored.
type RedisTokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTokenStore(client *redis.Client, ttl time.Duration) *RedisTokenStore {
	return &RedisTokenStore{client: client, ttl: ttl}
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *RedisTokenStore) Add(ctx context.Context, token string) error {
	key := refreshKeyPrefix + hashToken(token)
	if err := s.client.Set(ctx, key, "1", s.ttl).Err(); err != nil {
		return fmt.Errorf("refresh store add: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Contains(ctx context.Context, token string) (bool, error) {
	key := refreshKeyPrefix + hashToken(token)
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("refresh store lookup: %w", err)
	}
	return n > 0, nil
}

func (s *RedisTokenStore) Remove(ctx context.Context, token string) error {
	key := refreshKeyPrefix + hashToken(token)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("refresh store remove: %w", err)
	}
	return nil
}

// MemoryTokenStore is a mutex-guarded in-process set. Suitable for tests and
// single-instance deployments without Redis; all sessions are lost on
// restart.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]struct{}
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]struct{})}
}

func (s *MemoryTokenStore) Add(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[hashToken(token)] = struct{}{}
	return nil
}

func (s *MemoryTokenStore) Contains(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[hashToken(token)]
	return ok, nil
}

func (s *MemoryTokenStore) Remove(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, hashToken(token))
	return nil
}
