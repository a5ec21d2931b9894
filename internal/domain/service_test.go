package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubRegistry struct {
	listed     []Activity
	signupErr  error
	removeErr  error
	lastAction string
	lastName   string
	lastEmail  string
}

var _ Registry = (*stubRegistry)(nil)

func (s *stubRegistry) List(context.Context) ([]Activity, error) {
	return s.listed, nil
}

func (s *stubRegistry) Signup(_ context.Context, activity, email string) error {
	s.lastAction, s.lastName, s.lastEmail = "signup", activity, email
	return s.signupErr
}

func (s *stubRegistry) Unregister(_ context.Context, activity, email string) error {
	s.lastAction, s.lastName, s.lastEmail = "unregister", activity, email
	return s.removeErr
}

func TestServiceDelegatesToRegistry(t *testing.T) {
	stub := &stubRegistry{listed: []Activity{{Name: "Chess Club", MaxParticipants: 12}}}
	service := NewService(stub)
	ctx := context.Background()

	activities, err := service.ListActivities(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 1)

	require.NoError(t, service.Signup(ctx, "Chess Club", "new@mergington.edu"))
	require.Equal(t, "signup", stub.lastAction)
	require.Equal(t, "Chess Club", stub.lastName)
	require.Equal(t, "new@mergington.edu", stub.lastEmail)

	require.NoError(t, service.Unregister(ctx, "Chess Club", "new@mergington.edu"))
	require.Equal(t, "unregister", stub.lastAction)
}

func TestServicePropagatesRegistryErrors(t *testing.T) {
	stub := &stubRegistry{signupErr: ErrAlreadySignedUp, removeErr: ErrNotSignedUp}
	service := NewService(stub)
	ctx := context.Background()

	require.ErrorIs(t, service.Signup(ctx, "Chess Club", "dup@mergington.edu"), ErrAlreadySignedUp)
	require.ErrorIs(t, service.Unregister(ctx, "Chess Club", "gone@mergington.edu"), ErrNotSignedUp)
}
