package service

import (
	"context"
	"testing"

	"reentrybuddy/internal/models"
	"reentrybuddy/internal/repository"
	"reentrybuddy/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*AuthService, repository.RecordStore) {
	t.Helper()

	kv, err := storage.NewSQLiteKV(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	store := repository.NewRecordStore(kv, "reentry_buddy")
	return NewAuthService(store), store
}

func TestAuthService_SignIn_CreatesUser(t *testing.T) {
	auth, store := newAuthFixture(t)
	ctx := context.Background()

	user, session, err := auth.SignIn(ctx, models.InsertUser{FirstName: "Ana", LastName: "Lee"})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Ana", user.FirstName)
	require.NotNil(t, session)
	assert.Equal(t, "Ana", session.FirstName)

	stored, err := store.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, *session, *stored)
}

func TestAuthService_SignIn_ReusesExistingUser(t *testing.T) {
	auth, _ := newAuthFixture(t)
	ctx := context.Background()

	first, _, err := auth.SignIn(ctx, models.InsertUser{FirstName: "Ana", LastName: "Lee"})
	require.NoError(t, err)

	// Capitalization differs but the normalized name pair is the same person
	second, _, err := auth.SignIn(ctx, models.InsertUser{FirstName: "ANA", LastName: "lee"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Ana", second.FirstName, "stored capitalization is kept")
}

func TestAuthService_SignIn_Validation(t *testing.T) {
	auth, _ := newAuthFixture(t)

	_, _, err := auth.SignIn(context.Background(), models.InsertUser{FirstName: "Ana"})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Contains(t, appErr.Fields, "lastName")
}

func TestAuthService_SignOut_KeepsRecords(t *testing.T) {
	auth, store := newAuthFixture(t)
	ctx := context.Background()

	_, _, err := auth.SignIn(ctx, models.InsertUser{FirstName: "Ana", LastName: "Lee"})
	require.NoError(t, err)

	require.NoError(t, auth.SignOut(ctx))

	session, err := auth.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)

	// Sign-out never deletes the user record
	user, err := store.GetUser(ctx, "Ana", "Lee")
	require.NoError(t, err)
	assert.NotNil(t, user)
}

func TestAuthService_CurrentUser(t *testing.T) {
	auth, store := newAuthFixture(t)
	ctx := context.Background()

	got, err := auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, auth.IsAuthenticated(ctx))

	created, _, err := auth.SignIn(ctx, models.InsertUser{FirstName: "Ana", LastName: "Lee"})
	require.NoError(t, err)

	got, err = auth.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, auth.IsAuthenticated(ctx))

	// A dangling pointer (user cleared underneath) resolves to nil
	require.NoError(t, store.ClearUser(ctx, "Ana", "Lee"))
	got, err = auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}
