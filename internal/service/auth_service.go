package service

import (
	"context"

	"reentrybuddy/internal/models"
	"reentrybuddy/internal/repository"
	"reentrybuddy/internal/validation"
)

// AuthService resolves who is signed in. Identification is by name pair;
// there are no credentials. SignIn returns an explicit Session that callers
// pass into every domain call.
type AuthService struct {
	store repository.RecordStore
}

// NewAuthService returns an AuthService over store.
func NewAuthService(store repository.RecordStore) *AuthService {
	return &AuthService{store: store}
}

// SignIn validates the name pair, reuses the existing user for that pair or
// creates one, and records the session pointer.
func (a *AuthService) SignIn(ctx context.Context, insert models.InsertUser) (*models.User, *models.Session, error) {
	if err := validation.ValidateInsertUser(insert); err != nil {
		return nil, nil, err
	}

	user, err := a.store.GetUser(ctx, insert.FirstName, insert.LastName)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		user, err = a.store.CreateUser(ctx, insert)
		if err != nil {
			return nil, nil, err
		}
	}

	session := models.Session{FirstName: user.FirstName, LastName: user.LastName}
	if err := a.store.SetCurrentSession(ctx, session); err != nil {
		return nil, nil, err
	}

	return user, &session, nil
}

// SignOut clears the session pointer only; user and check-in records remain.
func (a *AuthService) SignOut(ctx context.Context) error {
	return a.store.ClearCurrentSession(ctx)
}

// CurrentSession returns the persisted session pointer, or nil when signed out.
func (a *AuthService) CurrentSession(ctx context.Context) (*models.Session, error) {
	return a.store.CurrentSession(ctx)
}

// CurrentUser resolves the session pointer to its user record, nil when
// signed out or when the pointed-at user no longer exists.
func (a *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	session, err := a.store.CurrentSession(ctx)
	if err != nil || session == nil {
		return nil, err
	}
	return a.store.GetUser(ctx, session.FirstName, session.LastName)
}

// IsAuthenticated reports whether a session resolves to an existing user.
func (a *AuthService) IsAuthenticated(ctx context.Context) bool {
	user, err := a.CurrentUser(ctx)
	return err == nil && user != nil
}
