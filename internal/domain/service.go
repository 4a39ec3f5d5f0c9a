// Package domain defines the business logic for the sign-up service.
package domain

import (
	"context"
	"errors"

	"example.com/signup/internal/observability"
)

var (
	// ErrActivityNotFound is returned when an activity name is not in the directory.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the email is already on the activity roster.
	ErrAlreadySignedUp = errors.New("already signed up")
	// ErrNotSignedUp indicates the email is not on the activity roster.
	ErrNotSignedUp = errors.New("not signed up")
)

// Directory captures the operations on the activity catalog.
type Directory interface {
	List(ctx context.Context) (map[string]Activity, error)
	Signup(ctx context.Context, activity, email string) error
	Unregister(ctx context.Context, activity, email string) error
}

// Service orchestrates sign-up workflows over the directory.
type Service struct {
	directory Directory
}

// NewService constructs a Service.
func NewService(directory Directory) *Service {
	return &Service{directory: directory}
}

// ListActivities returns the full catalog keyed by activity name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.directory.List(ctx)
}

// Signup adds email to the activity roster.
func (s *Service) Signup(ctx context.Context, activity, email string) error {
	if err := s.directory.Signup(ctx, activity, email); err != nil {
		observability.RecordRejection(rejectionReason(err))
		return err
	}
	observability.RecordSignup()
	return nil
}

// Unregister removes email from the activity roster.
func (s *Service) Unregister(ctx context.Context, activity, email string) error {
	if err := s.directory.Unregister(ctx, activity, email); err != nil {
		observability.RecordRejection(rejectionReason(err))
		return err
	}
	observability.RecordUnregistration()
	return nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadySignedUp):
		return "already_signed_up"
	case errors.Is(err, ErrNotSignedUp):
		return "not_signed_up"
	default:
		return "error"
	}
}
