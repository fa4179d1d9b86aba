// Package domain defines the business logic for the school activities service.
package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"example.com/schoolactivities/internal/events"
	"example.com/schoolactivities/internal/observability"
)

var (
	// ErrActivityNotFound is returned when the named activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered indicates a signup for an email already on the roster.
	ErrAlreadyRegistered = errors.New("student already signed up for activity")
	// ErrNotRegistered indicates an unregister for an email not on the roster.
	ErrNotRegistered = errors.New("student not signed up for activity")
)

// RosterStore captures the operations the roster storage must provide.
// Mutating calls return the updated activity snapshot.
type RosterStore interface {
	List(ctx context.Context) (map[string]Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	Signup(ctx context.Context, name, email string) (*Activity, error)
	Unregister(ctx context.Context, name, email string) (*Activity, error)
}

// Service orchestrates roster workflows: store mutations, metrics, and
// best-effort event publication.
type Service struct {
	store     RosterStore
	publisher events.Publisher
	logger    *zap.Logger
}

// NewService constructs a Service.
func NewService(store RosterStore, publisher events.Publisher, logger *zap.Logger) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, publisher: publisher, logger: logger}
}

// ListActivities returns the full catalog keyed by activity name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.store.List(ctx)
}

// GetActivity fetches a single activity by name.
func (s *Service) GetActivity(ctx context.Context, name string) (*Activity, error) {
	activity, err := s.store.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}
	return activity, nil
}

// SignupParticipant adds the email to the activity roster and returns the
// confirmation message. Capacity is not checked; the roster may exceed
// MaxParticipants.
func (s *Service) SignupParticipant(ctx context.Context, name, email string) (string, error) {
	activity, err := s.store.Signup(ctx, name, email)
	if err != nil {
		observability.RecordRejection(rejectionReason(err))
		return "", err
	}

	observability.RecordSignup(name, len(activity.Participants))
	s.publish(ctx, events.ActionSignup, name, email, len(activity.Participants))

	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// UnregisterParticipant removes the email from the activity roster and
// returns the confirmation message.
func (s *Service) UnregisterParticipant(ctx context.Context, name, email string) (string, error) {
	activity, err := s.store.Unregister(ctx, name, email)
	if err != nil {
		observability.RecordRejection(rejectionReason(err))
		return "", err
	}

	observability.RecordUnregistration(name, len(activity.Participants))
	s.publish(ctx, events.ActionUnregister, name, email, len(activity.Participants))

	return fmt.Sprintf("Unregistered %s from %s", email, name), nil
}

// publish emits a roster change event. Failures are logged and swallowed so
// the HTTP contract never depends on the broker.
func (s *Service) publish(ctx context.Context, action, name, email string, rosterSize int) {
	event := events.RosterChanged{
		Activity:   name,
		Email:      email,
		Action:     action,
		RosterSize: rosterSize,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishRosterChanged(ctx, event); err != nil {
		s.logger.Warn("roster event publish failed",
			zap.String("activity", name),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return "activity_not_found"
	case errors.Is(err, ErrAlreadyRegistered):
		return "already_registered"
	case errors.Is(err, ErrNotRegistered):
		return "not_registered"
	default:
		return "internal"
	}
}
