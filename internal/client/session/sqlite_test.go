package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoad_EmptyStoreIsAnonymous(t *testing.T) {
	s := setupStore(t)

	sess, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, sess.Anonymous())
	assert.Empty(t, sess.RefreshToken)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, Session{AccessToken: "acc", RefreshToken: "ref"}))

	sess, err := s.Load(ctx)
	require.NoError(t, err)
	assert.False(t, sess.Anonymous())
	assert.Equal(t, "acc", sess.AccessToken)
	assert.Equal(t, "ref", sess.RefreshToken)
}

func TestSave_WithoutRefreshDropsStoredOne(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, Session{AccessToken: "a1", RefreshToken: "r1"}))
	require.NoError(t, s.Save(ctx, Session{AccessToken: "a2"}))

	sess, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a2", sess.AccessToken)
	assert.Empty(t, sess.RefreshToken)
}

func TestSave_OverwritesExistingPair(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, Session{AccessToken: "old", RefreshToken: "oldr"}))
	require.NoError(t, s.Save(ctx, Session{AccessToken: "new", RefreshToken: "newr"}))

	sess, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", sess.AccessToken)
	assert.Equal(t, "newr", sess.RefreshToken)
}

func TestClear_ReturnsToAnonymous(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, Session{AccessToken: "acc", RefreshToken: "ref"}))
	require.NoError(t, s.Clear(ctx))

	sess, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, sess.Anonymous())
}
