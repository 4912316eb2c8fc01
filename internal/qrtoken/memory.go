package qrtoken

import (
	"context"
	"sync"
	"time"

	"github.com/ironhall/gym-service/internal/clock"
)

// MemoryStore keeps tokens in process memory. Tokens do not survive a
// restart and are not shared between replicas.
type MemoryStore struct {
	mu       sync.Mutex
	tokens   map[string]time.Time
	ttl      time.Duration
	clock    clock.Clock
	generate Generator
}

// MemoryOption customises a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithGenerator replaces the token value generator.
func WithGenerator(g Generator) MemoryOption {
	return func(s *MemoryStore) { s.generate = g }
}

// NewMemoryStore builds an empty store.
func NewMemoryStore(clk clock.Clock, ttl time.Duration, opts ...MemoryOption) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clk == nil {
		clk = clock.Real{}
	}
	s := &MemoryStore{
		tokens:   make(map[string]time.Time),
		ttl:      ttl,
		clock:    clk,
		generate: RandomValue,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Issue(_ context.Context) (Token, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked(now)

	var value string
	for {
		v, err := s.generate()
		if err != nil {
			return Token{}, err
		}
		if _, taken := s.tokens[v]; !taken {
			value = v
			break
		}
	}

	token := Token{Value: value, ExpiresAt: now.Add(s.ttl)}
	s.tokens[token.Value] = token.ExpiresAt
	return token, nil
}

func (s *MemoryStore) Check(_ context.Context, value string) error {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.tokens[value]
	if !ok {
		return ErrNotFound
	}
	if expired(expiresAt, now) {
		delete(s.tokens, value)
		return ErrExpired
	}
	return nil
}

func (s *MemoryStore) Redeem(_ context.Context, value string) error {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.tokens[value]
	if !ok {
		return ErrNotFound
	}
	delete(s.tokens, value)
	if expired(expiresAt, now) {
		return ErrExpired
	}
	return nil
}

func (s *MemoryStore) Sweep(_ context.Context) (int, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(now), nil
}

// TTL returns the token lifetime.
func (s *MemoryStore) TTL() time.Duration {
	return s.ttl
}

// Len returns the number of stored tokens, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}

func (s *MemoryStore) sweepLocked(now time.Time) int {
	removed := 0
	for value, expiresAt := range s.tokens {
		if expired(expiresAt, now) {
			delete(s.tokens, value)
			removed++
		}
	}
	return removed
}
