package qrtoken

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ironhall/gym-service/internal/clock"
)

const (
	// DefaultRedisPrefix namespaces token keys.
	DefaultRedisPrefix = "qr:"
	// DefaultRetention keeps an expired token visible long enough to report
	// it as expired rather than unknown.
	DefaultRetention = 5 * time.Minute

	issueAttempts = 3
)

// RedisStore keeps tokens in Redis so several API replicas share them. Each
// key holds the token deadline in unix nanoseconds; the deadline, not the
// Redis key TTL, decides expiry. A sorted set scored by deadline (in
// milliseconds) indexes live tokens so a sweep costs two round trips however
// many tokens are stored.
type RedisStore struct {
	client    redis.Cmdable
	prefix    string
	index     string
	ttl       time.Duration
	retention time.Duration
	clock     clock.Clock
	generate  Generator
}

// RedisOptions configures a RedisStore.
type RedisOptions struct {
	Prefix    string
	TTL       time.Duration
	Retention time.Duration
	Clock     clock.Clock
	Generator Generator
}

// NewRedisStore builds a Redis-backed store. The deadline index lives at
// "idx:<prefix>", outside the token key space.
func NewRedisStore(client redis.Cmdable, opts RedisOptions) *RedisStore {
	s := &RedisStore{
		client:    client,
		prefix:    opts.Prefix,
		ttl:       opts.TTL,
		retention: opts.Retention,
		clock:     opts.Clock,
		generate:  opts.Generator,
	}
	if s.prefix == "" {
		s.prefix = DefaultRedisPrefix
	}
	s.index = "idx:" + s.prefix
	if s.ttl <= 0 {
		s.ttl = DefaultTTL
	}
	if s.retention <= 0 {
		s.retention = DefaultRetention
	}
	if s.clock == nil {
		s.clock = clock.Real{}
	}
	if s.generate == nil {
		s.generate = RandomValue
	}
	return s
}

func (s *RedisStore) Issue(ctx context.Context) (Token, error) {
	if _, err := s.Sweep(ctx); err != nil {
		return Token{}, err
	}

	expiresAt := s.clock.Now().Add(s.ttl)
	deadline := strconv.FormatInt(expiresAt.UnixNano(), 10)

	for i := 0; i < issueAttempts; i++ {
		value, err := s.generate()
		if err != nil {
			return Token{}, err
		}
		created, err := s.client.SetNX(ctx, s.key(value), deadline, s.ttl+s.retention).Result()
		if err != nil {
			return Token{}, fmt.Errorf("store qr token: %w", err)
		}
		if !created {
			continue
		}
		score := redis.Z{Score: float64(expiresAt.UnixMilli()), Member: value}
		if err := s.client.ZAdd(ctx, s.index, score).Err(); err != nil {
			return Token{}, fmt.Errorf("index qr token: %w", err)
		}
		return Token{Value: value, ExpiresAt: expiresAt}, nil
	}
	return Token{}, errors.New("store qr token: value collision")
}

func (s *RedisStore) Check(ctx context.Context, value string) error {
	raw, err := s.client.Get(ctx, s.key(value)).Result()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("load qr token: %w", err)
	}

	expiresAt, err := parseDeadline(raw)
	if err != nil {
		return err
	}
	if expired(expiresAt, s.clock.Now()) {
		if err := s.remove(ctx, value); err != nil {
			return fmt.Errorf("delete qr token: %w", err)
		}
		return ErrExpired
	}
	return nil
}

func (s *RedisStore) Redeem(ctx context.Context, value string) error {
	var getDel *redis.StringCmd
	_, err := s.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		getDel = p.GetDel(ctx, s.key(value))
		p.ZRem(ctx, s.index, value)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redeem qr token: %w", err)
	}

	raw, err := getDel.Result()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("redeem qr token: %w", err)
	}

	expiresAt, err := parseDeadline(raw)
	if err != nil {
		return err
	}
	if expired(expiresAt, s.clock.Now()) {
		return ErrExpired
	}
	return nil
}

// Sweep removes tokens whose deadline passed. Index scores are truncated to
// milliseconds and the bound is exclusive, so a live token is never removed;
// one expired within the current millisecond waits for the next sweep.
func (s *RedisStore) Sweep(ctx context.Context) (int, error) {
	bound := "(" + strconv.FormatInt(s.clock.Now().UnixMilli(), 10)
	values, err := s.client.ZRangeByScore(ctx, s.index, &redis.ZRangeBy{Min: "-inf", Max: bound}).Result()
	if err != nil {
		return 0, fmt.Errorf("sweep qr tokens: %w", err)
	}
	if len(values) == 0 {
		return 0, nil
	}

	keys := make([]string, len(values))
	members := make([]any, len(values))
	for i, v := range values {
		keys[i] = s.key(v)
		members[i] = v
	}

	var del *redis.IntCmd
	_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		del = p.Del(ctx, keys...)
		p.ZRem(ctx, s.index, members...)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("sweep qr tokens: %w", err)
	}
	return int(del.Val()), nil
}

func (s *RedisStore) remove(ctx context.Context, value string) error {
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, s.key(value))
		p.ZRem(ctx, s.index, value)
		return nil
	})
	return err
}

// TTL returns the token lifetime.
func (s *RedisStore) TTL() time.Duration {
	return s.ttl
}

func (s *RedisStore) key(value string) string {
	return s.prefix + value
}

func parseDeadline(raw string) (time.Time, error) {
	nanos, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("corrupt qr token deadline %q: %w", raw, err)
	}
	return time.Unix(0, nanos), nil
}
