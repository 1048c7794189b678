package kvstore

import (
	"context"
	"testing"
	"time"

	"github.com/billkhata/billkhata/internal/clock"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Record{}))
	return db
}

func newTestStore(t *testing.T) Store {
	t.Helper()
	return New(newTestDB(t), clock.NewSystemClock(), zap.NewNop())
}

func TestGet_MissingKey(t *testing.T) {
	store := newTestStore(t)

	value, err := store.Get(context.Background(), "absent")
	assert.NoError(t, err)
	assert.Nil(t, value)
}

func TestSetGet_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "services_v1", []byte(`{"version":1,"services":[]}`)))

	value, err := store.Get(ctx, "services_v1")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"services":[]}`, string(value))
}

func TestSet_ReplacesExistingValue(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte(`{"version":1}`)))
	require.NoError(t, store.Set(ctx, "k", []byte(`{"version":2}`)))

	value, err := store.Get(ctx, "k")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"version":2}`, string(value))
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte(`{}`)))
	require.NoError(t, store.Delete(ctx, "k"))

	value, err := store.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, value)

	// Deleting an absent key must not error.
	assert.NoError(t, store.Delete(ctx, "k"))
}

func TestSet_StampsUpdatedAtFromClock(t *testing.T) {
	db := newTestDB(t)
	fake := clock.NewFakeClock(time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	store := New(db, fake, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte(`{}`)))

	var rec Record
	require.NoError(t, db.First(&rec, "key = ?", "k").Error)
	assert.True(t, fake.Now().Equal(rec.UpdatedAt), "got %v", rec.UpdatedAt)

	fake.Advance(time.Hour)
	require.NoError(t, store.Set(ctx, "k", []byte(`{"v":2}`)))

	require.NoError(t, db.First(&rec, "key = ?", "k").Error)
	assert.True(t, fake.Now().Equal(rec.UpdatedAt), "got %v", rec.UpdatedAt)
}
