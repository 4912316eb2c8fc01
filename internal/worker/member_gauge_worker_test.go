package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ironhall/gym-service/internal/domain"
)

type stubCounter struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (s *stubCounter) MemberCounts(context.Context) (domain.MemberCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return domain.MemberCounts{}, s.err
	}
	return domain.MemberCounts{Total: s.calls, Active: 1}, nil
}

type recordingSink struct {
	mu   sync.Mutex
	last domain.MemberCounts
	sets int
}

func (r *recordingSink) SetMemberCounts(c domain.MemberCounts) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = c
	r.sets++
}

func (r *recordingSink) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sets
}

func TestMemberGaugeWorker_RefreshesUntilCancelled(t *testing.T) {
	counter := &stubCounter{}
	sink := &recordingSink{}
	w := NewMemberGaugeWorker(5*time.Millisecond, counter, sink, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	assert.Eventually(t, func() bool { return sink.count() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestMemberGaugeWorker_SkipsSinkOnError(t *testing.T) {
	counter := &stubCounter{err: errors.New("db down")}
	sink := &recordingSink{}
	w := NewMemberGaugeWorker(time.Hour, counter, sink, nil)

	w.refresh(context.Background())
	require.Equal(t, 1, counter.calls)
	assert.Equal(t, 0, sink.count())
}
