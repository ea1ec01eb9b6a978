package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrNotFound = errors.New("otp: code not found or expired")
	ErrMismatch = errors.New("otp: code mismatch")
)

// Store keeps one-time codes keyed by phone number. Codes are single-use:
// a successful Verify consumes the code.
type Store interface {
	Save(ctx context.Context, phone string, code string, ttl time.Duration) error
	Verify(ctx context.Context, phone string, code string) error
}

// NewCode returns a 6-digit numeric code.
func NewCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "otp"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(phone string) string {
	return s.prefix + ":" + phone
}

func (s *RedisStore) Save(ctx context.Context, phone string, code string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(phone), code, ttl).Err()
}

func (s *RedisStore) Verify(ctx context.Context, phone string, code string) error {
	stored, err := s.client.Get(ctx, s.key(phone)).Result()
	if err == redis.Nil {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if stored != code {
		return ErrMismatch
	}
	return s.client.Del(ctx, s.key(phone)).Err()
}

type memoryEntry struct {
	code      string
	expiresAt time.Time
}

// MemoryStore is the fallback when no Redis is configured (local dev, tests).
// Expiry is checked on read; there is no background sweeper.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: map[string]memoryEntry{},
		now:     time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, phone string, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[phone] = memoryEntry{code: code, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Verify(_ context.Context, phone string, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[phone]
	if !ok {
		return ErrNotFound
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, phone)
		return ErrNotFound
	}
	if entry.code != code {
		return ErrMismatch
	}
	delete(s.entries, phone)
	return nil
}
