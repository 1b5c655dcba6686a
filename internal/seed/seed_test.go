package seed

import (
	"context"
	"testing"
	"time"

	"reentrybuddy/internal/repository"
	"reentrybuddy/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFactory(t *testing.T) (*Factory, repository.RecordStore) {
	t.Helper()
	kv, err := storage.NewSQLiteKV(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	store := repository.NewRecordStore(kv, "reentry_buddy")
	return NewFactory(store), store
}

func TestFactory_CreateUser(t *testing.T) {
	factory, store := newTestFactory(t)
	ctx := context.Background()

	user, err := factory.CreateUser(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, user.FirstName)
	assert.NotEmpty(t, user.LastName)

	got, err := store.GetUser(ctx, user.FirstName, user.LastName)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
}

func TestFactory_BuildCheckIn(t *testing.T) {
	factory, _ := newTestFactory(t)
	ctx := context.Background()

	user, err := factory.CreateUser(ctx)
	require.NoError(t, err)

	date := time.Now().AddDate(0, 0, -2)
	checkIn := factory.BuildCheckIn(user, date)

	assert.NotEmpty(t, checkIn.ID)
	assert.Equal(t, user.ID, checkIn.UserID)
	assert.Equal(t, date, checkIn.Date)
	assert.NotEmpty(t, checkIn.Feeling)
	assert.NotEmpty(t, checkIn.Goal)
}

func TestFactory_SeedHistory(t *testing.T) {
	factory, store := newTestFactory(t)
	ctx := context.Background()

	user, err := factory.CreateUser(ctx)
	require.NoError(t, err)

	created, err := factory.SeedHistory(ctx, user, 7, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, created)

	list, err := store.ListCheckIns(ctx, user.FirstName, user.LastName)
	require.NoError(t, err)
	assert.Len(t, list, 7)
}

func TestSeeder_SeedDemo(t *testing.T) {
	kv, err := storage.NewSQLiteKV(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	store := repository.NewRecordStore(kv, "reentry_buddy")

	seeder := NewSeeder(store)
	assert.NoError(t, seeder.SeedDemo(context.Background(), 3, 5))
}
