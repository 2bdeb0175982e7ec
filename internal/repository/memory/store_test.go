package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/forum-api/domain"
)

func TestStore_OrdersByDateThenInsertion(t *testing.T) {
	ctx := context.Background()
	s := New()
	fixed := time.Date(2021, 8, 8, 7, 0, 0, 0, time.UTC)
	s.Now = func() time.Time { return fixed }

	th, err := s.Threads().Add(ctx, domain.AddThread{Title: "t", Body: "b", Owner: "user-1"})
	require.NoError(t, err)

	var ids []string
	for range 5 {
		c, err := s.Comments().Add(ctx, domain.AddComment{ThreadID: th.ID, Owner: "user-1", Content: "x"})
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}

	list, err := s.Comments().ListByThread(ctx, th.ID)
	require.NoError(t, err)
	got := make([]string, len(list))
	for i := range list {
		got[i] = list[i].ID
	}
	assert.Equal(t, ids, got)
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.Threads().GetByID(ctx, "thread-x")
	assert.ErrorIs(t, err, domain.ErrThreadNotFound)
	_, err = s.Comments().GetByID(ctx, "comment-x")
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)
	assert.ErrorIs(t, s.Comments().SoftDelete(ctx, "comment-x"), domain.ErrCommentNotFound)
	assert.ErrorIs(t, s.Replies().VerifyOwnership(ctx, "reply-x", "user-1"), domain.ErrReplyNotFound)
	_, err = s.Replies().GetByID(ctx, "reply-x")
	assert.ErrorIs(t, err, domain.ErrReplyNotFound)
}

func TestStore_Likes(t *testing.T) {
	ctx := context.Background()
	s := New()
	likes := s.Comments()

	require.NoError(t, likes.AddLike(ctx, "user-1", "comment-1"))
	assert.ErrorIs(t, likes.AddLike(ctx, "user-1", "comment-1"), domain.ErrLikeExists)
	require.NoError(t, likes.AddLike(ctx, "user-2", "comment-1"))

	n, err := likes.CountLikes(ctx, "comment-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, likes.RemoveLike(ctx, "user-1", "comment-1"))
	assert.ErrorIs(t, likes.RemoveLike(ctx, "user-1", "comment-1"), domain.ErrLikeMissing)
}

func TestStore_FetchIDsPages(t *testing.T) {
	ctx := context.Background()
	s := New()
	for range 3 {
		_, err := s.Threads().Add(ctx, domain.AddThread{Title: "t", Body: "b", Owner: "u"})
		require.NoError(t, err)
	}

	first, err := s.Threads().FetchIDs(ctx, "", 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	rest, err := s.Threads().FetchIDs(ctx, first[1], 2)
	require.NoError(t, err)
	assert.Len(t, rest, 1)
	assert.Greater(t, rest[0], first[1])
}
