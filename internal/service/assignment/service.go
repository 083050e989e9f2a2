// Package assignment handles deliverer applications to delivery requests and
// their resolution into a single assignment.
package assignment

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"ecodeli-dispatch/internal/apperr"
	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/logx"
	"ecodeli-dispatch/internal/metrics"
)

const (
	notifyTimeout = 5 * time.Second
	// maxPendingNotifications bounds the sends in flight. Beyond it new
	// notifications are dropped.
	maxPendingNotifications = 256
)

// Service - application submission and resolution.
type Service struct {
	repo             assignmentRepository
	notifier         Notifier
	metrics          *metrics.Business
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
	newID            func() string
	newTracking      func() string

	mu      sync.Mutex
	closed  bool
	slots   chan struct{}
	pending sync.WaitGroup
}

// NewService creates a new assignment Service.
func NewService(
	r assignmentRepository,
	n Notifier,
	m *metrics.Business,
	timeout time.Duration,
	logger logx.Logger,
) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             r,
		notifier:         n,
		metrics:          m,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
		newID:            uuid.NewString,
		newTracking:      NewTrackingNumber,
		slots:            make(chan struct{}, maxPendingNotifications),
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// notify hands n to a background send and returns at once. The send is
// detached from the request context and bounded by notifyTimeout.
func (s *Service) notify(ctx context.Context, n domain.Notification) {
	if s.notifier == nil {
		return
	}
	if !s.acquire() {
		s.logger.Warn("notification dropped",
			logx.String("event", "notification_dropped"),
			logx.String("user_id", n.UserID),
			logx.String("type", n.Type),
		)
		return
	}

	ctx = context.WithoutCancel(ctx)
	go func() {
		defer s.release()
		ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
		defer cancel()

		if err := s.notifier.Notify(ctx, n); err != nil {
			s.logger.Warn("notification failed",
				logx.String("event", "notification_failed"),
				logx.String("user_id", n.UserID),
				logx.String("type", n.Type),
				logx.Err(err),
			)
		}
	}()
}

func (s *Service) acquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.slots <- struct{}{}:
		s.pending.Add(1)
		return true
	default:
		return false
	}
}

func (s *Service) release() {
	<-s.slots
	s.pending.Done()
}

// Drain stops accepting notifications and waits for the ones in flight
// until ctx ends.
func (s *Service) Drain(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, apperr.ErrConflict):
		return "conflict"
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrInvalid):
		return "rejected_input"
	default:
		return "error"
	}
}
