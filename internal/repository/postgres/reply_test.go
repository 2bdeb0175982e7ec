package postgres

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/forum-api/domain"
)

var replyColumns = []string{"id", "comment_id", "owner", "content", "date", "is_delete"}

func TestReplyRepository_Add(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReplyRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "replies"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.Add(context.Background(), domain.AddReply{
		ThreadID: "thread-123", CommentID: "comment-123", Owner: "user-123", Content: "sebuah balasan",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got.ID, "reply-"))
	assert.Equal(t, "user-123", got.Owner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplyRepository_ListByComment(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReplyRepository(db)
	date := time.Date(2021, 8, 8, 7, 59, 48, 766000000, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`LEFT JOIN users ON users.id = replies.owner WHERE replies.comment_id = $1`)).
		WithArgs("comment-123").
		WillReturnRows(sqlmock.NewRows(append(replyColumns, "username")).
			AddRow("reply-1", "comment-123", "user-2", "sebuah balasan", date, true, "johndoe"))

	got, err := repo.ListByComment(context.Background(), "comment-123")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "johndoe", got[0].Username)
	assert.True(t, got[0].IsDelete)
	assert.Equal(t, domain.DeletedReplyContent, got[0].VisibleContent())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplyRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReplyRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "replies" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows(replyColumns).AddRow("reply-123", "comment-123", "user-1", "x", time.Now(), true))

	rp, err := repo.GetByID(context.Background(), "reply-123")
	assert.NoError(t, err)
	assert.Equal(t, "comment-123", rp.CommentID)
	assert.True(t, rp.IsDelete)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplyRepository_VerifyOwnership(t *testing.T) {
	t.Run("other user", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewReplyRepository(db)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "replies" WHERE id = $1`)).
			WillReturnRows(sqlmock.NewRows(replyColumns).AddRow("reply-123", "comment-123", "user-1", "x", time.Now(), false))

		assert.ErrorIs(t, repo.VerifyOwnership(context.Background(), "reply-123", "user-2"), domain.ErrReplyForbidden)
	})

	t.Run("missing reply", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewReplyRepository(db)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "replies" WHERE id = $1`)).
			WillReturnRows(sqlmock.NewRows(replyColumns))

		assert.ErrorIs(t, repo.VerifyOwnership(context.Background(), "reply-123", "user-1"), domain.ErrReplyNotFound)
	})
}

func TestReplyRepository_SoftDelete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReplyRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "replies" SET "is_delete"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.SoftDelete(context.Background(), "reply-123"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
