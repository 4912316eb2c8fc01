package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ironhall/gym-service/internal/domain"
)

// MemberCounter reports current membership totals.
type MemberCounter interface {
	MemberCounts(ctx context.Context) (domain.MemberCounts, error)
}

// GaugeSink receives membership totals.
type GaugeSink interface {
	SetMemberCounts(domain.MemberCounts)
}

// MemberGaugeWorker periodically refreshes the membership gauges.
type MemberGaugeWorker struct {
	interval time.Duration
	counter  MemberCounter
	sink     GaugeSink
	log      *zap.Logger
}

// NewMemberGaugeWorker builds the worker.
func NewMemberGaugeWorker(interval time.Duration, counter MemberCounter, sink GaugeSink, logger *zap.Logger) *MemberGaugeWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemberGaugeWorker{
		interval: interval,
		counter:  counter,
		sink:     sink,
		log:      logger.With(zap.String("component", "MemberGaugeWorker")),
	}
}

// Run refreshes once immediately, then on every tick until ctx is done.
func (w *MemberGaugeWorker) Run(ctx context.Context) error {
	w.log.Info("starting member gauge worker", zap.Duration("interval", w.interval))
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			w.log.Info("stopping member gauge worker")
			return ctx.Err()
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *MemberGaugeWorker) refresh(ctx context.Context) {
	counts, err := w.counter.MemberCounts(ctx)
	if err != nil {
		w.log.Error("member gauge refresh failed", zap.Error(err))
		return
	}
	w.sink.SetMemberCounts(counts)
}
