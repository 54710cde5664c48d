package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinyakov/criptopedia/internal/models"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newTestStore(ttl time.Duration) (*MemoryStore, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	store := NewMemoryStore(ttl)
	store.now = clock.Now
	return store, clock
}

func TestMemoryStore_CreateAndGet(t *testing.T) {
	store, clock := newTestStore(time.Hour)
	ctx := context.Background()

	sess, err := store.Create(ctx, "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "admin", sess.Username)
	assert.Equal(t, clock.t.Add(time.Hour), sess.ExpiresAt)

	got, err := store.Get(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess, got)
}

func TestMemoryStore_TokensAreUnique(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	ctx := context.Background()

	a, err := store.Create(ctx, "admin")
	require.NoError(t, err)
	b, err := store.Create(ctx, "admin")
	require.NoError(t, err)
	assert.NotEqual(t, a.Token, b.Token)
}

func TestMemoryStore_GetUnknown(t *testing.T) {
	store, _ := newTestStore(time.Hour)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store, clock := newTestStore(time.Minute)
	ctx := context.Background()

	sess, err := store.Create(ctx, "admin")
	require.NoError(t, err)

	clock.t = clock.t.Add(time.Minute)
	_, err = store.Get(ctx, sess.Token)
	assert.ErrorIs(t, err, models.ErrNotFound)

	removed, err := store.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Empty(t, store.sessions)
}

func TestMemoryStore_Delete(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	ctx := context.Background()

	sess, err := store.Create(ctx, "admin")
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, sess.Token))
	require.NoError(t, store.Delete(ctx, "unknown"))

	_, err = store.Get(ctx, sess.Token)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMemoryStore_DeleteExpiredKeepsLive(t *testing.T) {
	store, clock := newTestStore(time.Hour)
	ctx := context.Background()

	old, err := store.Create(ctx, "admin")
	require.NoError(t, err)
	clock.t = clock.t.Add(30 * time.Minute)
	fresh, err := store.Create(ctx, "admin")
	require.NoError(t, err)
	clock.t = clock.t.Add(45 * time.Minute)

	removed, err := store.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = store.Get(ctx, old.Token)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = store.Get(ctx, fresh.Token)
	assert.NoError(t, err)
}
