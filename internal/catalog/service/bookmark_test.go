package service

import (
	"context"
	"testing"

	"github.com/prepdeck/prepdeck/internal/catalog/domain"
	"github.com/prepdeck/prepdeck/internal/catalog/store"
	"github.com/stretchr/testify/require"
)

func TestBookmarks(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	users := &UserService{Store: st, Tokens: newTestTokens(t)}
	courses := &CourseService{Store: st}
	bookmarks := &BookmarkService{Store: st}
	ctx := context.Background()

	user, err := users.Register(ctx, "9876543210", "user@example.com", "secret", "secret")
	require.NoError(t, err)

	algo, err := courses.Create(ctx, CourseParams{Title: "Algorithms", Branch: "cse"})
	require.NoError(t, err)
	circuits, err := courses.Create(ctx, CourseParams{Title: "Circuit Theory", Branch: "eee"})
	require.NoError(t, err)

	t.Run("add and list", func(t *testing.T) {
		require.NoError(t, bookmarks.Add(ctx, user.ID, algo.ID))
		require.NoError(t, bookmarks.Add(ctx, user.ID, circuits.ID))

		got, err := bookmarks.List(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, algo.ID, got[0].ID)
		require.Equal(t, circuits.ID, got[1].ID)
	})

	t.Run("add is idempotent", func(t *testing.T) {
		require.NoError(t, bookmarks.Add(ctx, user.ID, algo.ID))

		got, err := bookmarks.List(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("deleted course is omitted from listings", func(t *testing.T) {
		require.NoError(t, courses.Delete(ctx, circuits.ID))

		got, err := bookmarks.List(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, algo.ID, got[0].ID)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		require.NoError(t, bookmarks.Remove(ctx, user.ID, algo.ID))
		require.NoError(t, bookmarks.Remove(ctx, user.ID, algo.ID))

		got, err := bookmarks.List(ctx, user.ID)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("unknown user", func(t *testing.T) {
		missing := domain.User{ID: "01K00000000000000000000000"}
		require.ErrorIs(t, bookmarks.Add(ctx, missing.ID, algo.ID), store.ErrNotFound)
		require.ErrorIs(t, bookmarks.Remove(ctx, missing.ID, algo.ID), store.ErrNotFound)
		_, err := bookmarks.List(ctx, missing.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("empty course id", func(t *testing.T) {
		var verr *ValidationError
		require.ErrorAs(t, bookmarks.Add(ctx, user.ID, "  "), &verr)
	})
}
