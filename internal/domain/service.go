package domain

import "context"

// Registry captures the operations the activity store must support.
type Registry interface {
	List(ctx context.Context) ([]Activity, error)
	Signup(ctx context.Context, activity, email string) error
	Unregister(ctx context.Context, activity, email string) error
}

// Service orchestrates activity workflows.
type Service struct {
	registry Registry
}

// NewService constructs a Service.
func NewService(registry Registry) *Service {
	return &Service{registry: registry}
}

// ListActivities returns a snapshot of every activity in the registry.
func (s *Service) ListActivities(ctx context.Context) ([]Activity, error) {
	return s.registry.List(ctx)
}

// Signup adds the email to the named activity's roster. The roster may grow
// past MaxParticipants; capacity is reported to clients but not enforced here.
// TODO: enforce MaxParticipants once the front-end can surface a capacity error.
func (s *Service) Signup(ctx context.Context, activity, email string) error {
	return s.registry.Signup(ctx, activity, email)
}

// Unregister removes the email from the named activity's roster.
func (s *Service) Unregister(ctx context.Context, activity, email string) error {
	return s.registry.Unregister(ctx, activity, email)
}
