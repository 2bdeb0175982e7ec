package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/forum-api/domain"
)

func TestNewAddThread(t *testing.T) {
	tests := []struct {
		name    string
		payload domain.Payload
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing body",
			payload: domain.Payload{"owner": "user-123", "title": "testing"},
			wantErr: domain.ErrMissingProperty,
			wantMsg: "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada",
		},
		{
			name:    "empty title counts as missing",
			payload: domain.Payload{"owner": "user-123", "title": "", "body": "x"},
			wantErr: domain.ErrMissingProperty,
		},
		{
			name:    "null owner counts as missing",
			payload: domain.Payload{"owner": nil, "title": "a", "body": "x"},
			wantErr: domain.ErrMissingProperty,
		},
		{
			name:    "wrong types",
			payload: domain.Payload{"owner": true, "title": "testing", "body": float64(123)},
			wantErr: domain.ErrInvalidType,
			wantMsg: "tidak dapat membuat thread baru karena tipe data tidak sesuai",
		},
		{
			name:    "missing wins over wrong type",
			payload: domain.Payload{"owner": true, "title": "testing"},
			wantErr: domain.ErrMissingProperty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewAddThread(tt.payload)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		got, err := domain.NewAddThread(domain.Payload{
			"owner": "user-123",
			"title": "testing",
			"body":  "automated testing",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.AddThread{Title: "testing", Body: "automated testing", Owner: "user-123"}, got)
	})
}

func TestNewAddComment(t *testing.T) {
	_, err := domain.NewAddComment(domain.Payload{"threadId": "thread-123", "owner": "user-123"})
	assert.ErrorIs(t, err, domain.ErrMissingProperty)
	assert.EqualError(t, err, "tidak dapat membuat comment baru karena properti yang dibutuhkan tidak ada")

	_, err = domain.NewAddComment(domain.Payload{"threadId": "thread-123", "owner": "user-123", "content": float64(123)})
	assert.ErrorIs(t, err, domain.ErrInvalidType)
	assert.EqualError(t, err, "tidak dapat membuat comment baru karena tipe data tidak sesuai")

	_, err = domain.NewAddComment(domain.Payload{"threadId": "thread-123", "owner": "user-123", "content": []any{"a"}})
	assert.ErrorIs(t, err, domain.ErrInvalidType)

	got, err := domain.NewAddComment(domain.Payload{"threadId": "thread-123", "owner": "user-123", "content": "testing"})
	require.NoError(t, err)
	assert.Equal(t, domain.AddComment{ThreadID: "thread-123", Owner: "user-123", Content: "testing"}, got)
}

func TestNewAddReply(t *testing.T) {
	_, err := domain.NewAddReply(domain.Payload{"threadId": "thread-123", "commentId": "comment-123", "owner": "user-123"})
	assert.ErrorIs(t, err, domain.ErrMissingProperty)
	assert.EqualError(t, err, "tidak dapat membuat reply baru karena properti yang dibutuhkan tidak ada")

	_, err = domain.NewAddReply(domain.Payload{
		"threadId": "thread-123", "commentId": "comment-123", "owner": "user-123", "content": float64(123),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidType)
	assert.EqualError(t, err, "tidak dapat membuat reply baru karena tipe data tidak sesuai")

	got, err := domain.NewAddReply(domain.Payload{
		"threadId": "thread-123", "commentId": "comment-123", "owner": "user-123", "content": "testing",
	})
	require.NoError(t, err)
	assert.Equal(t, "comment-123", got.CommentID)
	assert.Equal(t, "testing", got.Content)
	assert.Equal(t, "thread-123", got.ThreadID)
}

func TestVisibleContent(t *testing.T) {
	c := domain.Comment{ID: "comment-1", Content: "hello"}
	assert.Equal(t, "hello", c.VisibleContent())
	c.IsDelete = true
	assert.Equal(t, domain.DeletedCommentContent, c.VisibleContent())
	assert.Equal(t, "hello", c.Content)

	r := domain.Reply{ID: "reply-1", Content: "hi", IsDelete: true}
	assert.Equal(t, "**balasan telah dihapus**", r.VisibleContent())
}

func TestErrorKinds(t *testing.T) {
	assert.True(t, errors.Is(domain.ErrThreadNotFound, domain.ErrNotFound))
	assert.True(t, errors.Is(domain.ErrReplyForbidden, domain.ErrForbidden))
	assert.False(t, errors.Is(domain.ErrCommentForbidden, domain.ErrNotFound))
	assert.True(t, errors.Is(domain.ErrLikeExists, domain.ErrInvariant))

	assert.Equal(t, "comment like added", domain.Like.Message())
	assert.Equal(t, "comment like deleted", domain.Unlike.Message())
	assert.Equal(t, "REMOVE", domain.Unlike.String())
}
