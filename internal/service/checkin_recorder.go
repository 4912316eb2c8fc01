package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ironhall/gym-service/internal/domain"
	"github.com/ironhall/gym-service/internal/events"
	"github.com/ironhall/gym-service/internal/observability"
	"github.com/ironhall/gym-service/internal/repository"
)

// CheckInRecorder turns membership events into login logs and metrics.
type CheckInRecorder struct {
	dispatcher events.Dispatcher
	logins     repository.LoginLogRepository
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewCheckInRecorder creates the recorder.
func NewCheckInRecorder(dispatcher events.Dispatcher, logins repository.LoginLogRepository, metrics *observability.Metrics, logger *zap.Logger) *CheckInRecorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckInRecorder{
		dispatcher: dispatcher,
		logins:     logins,
		metrics:    metrics,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (r *CheckInRecorder) RegisterHandlers() {
	if r.dispatcher == nil {
		return
	}
	r.dispatcher.Subscribe(events.EventMemberCheckedIn, r.handleMemberCheckedIn)
	r.dispatcher.Subscribe(events.EventMemberCreated, r.handleMemberCreated)
}

func (r *CheckInRecorder) handleMemberCheckedIn(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.MemberCheckedInPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}

	memberID := payload.Member.ID
	log := &domain.LoginLog{MemberID: &memberID, Method: payload.Method}
	if err := r.logins.Create(ctx, log); err != nil {
		return fmt.Errorf("record check-in: %w", err)
	}
	r.metrics.CheckIn()
	r.logger.Info("MemberCheckedIn",
		zap.String("event_id", event.ID),
		zap.Int64("member_id", memberID),
		zap.String("method", string(payload.Method)))
	return nil
}

func (r *CheckInRecorder) handleMemberCreated(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.MemberCreatedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}
	r.logger.Info("MemberCreated",
		zap.String("event_id", event.ID),
		zap.Int64("member_id", payload.MemberID),
		zap.Time("membership_end", payload.MembershipEnd))
	return nil
}
