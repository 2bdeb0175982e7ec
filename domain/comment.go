package domain

import (
	"context"
	"time"
)

// DeletedCommentContent replaces the content of a soft deleted comment in read views.
const DeletedCommentContent = "**komentar telah dihapus**"

// Comment domain model
type Comment struct {
	ID       string
	ThreadID string
	Owner    string
	Username string
	Content  string // kept as written even after deletion
	Date     time.Time
	IsDelete bool
}

// VisibleContent is the content shown to readers.
func (c Comment) VisibleContent() string {
	if c.IsDelete {
		return DeletedCommentContent
	}
	return c.Content
}

// AddComment is a validated comment creation request.
type AddComment struct {
	ThreadID string
	Owner    string
	Content  string
}

// NewAddComment validates a raw payload holding threadId, owner and content.
func NewAddComment(p Payload) (AddComment, error) {
	f, err := readStrings(p, "comment", "threadId", "owner", "content")
	if err != nil {
		return AddComment{}, err
	}
	return AddComment{ThreadID: f["threadId"], Owner: f["owner"], Content: f["content"]}, nil
}

type AddedComment struct {
	ID      string
	Content string
	Owner   string
}

// CommentDetail is one comment inside a ThreadDetail.
type CommentDetail struct {
	ID        string
	Username  string
	Date      time.Time
	Content   string
	LikeCount int64
	Replies   []ReplyDetail
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	AddComment(ctx context.Context, c AddComment) (AddedComment, error)
	DeleteComment(ctx context.Context, threadID, commentID, owner string) error
	ToggleLike(ctx context.Context, threadID, commentID, userID string) (LikeAction, error)
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	Add(ctx context.Context, c AddComment) (AddedComment, error)

	// GetByID returns ErrCommentNotFound if the comment doesn't exist.
	// Soft deleted comments still resolve.
	GetByID(ctx context.Context, id string) (Comment, error)

	// ListByThread returns the thread's comments ordered by date ascending.
	ListByThread(ctx context.Context, threadID string) ([]Comment, error)

	// VerifyOwnership returns ErrCommentNotFound before it ever returns ErrCommentForbidden.
	VerifyOwnership(ctx context.Context, id, owner string) error

	// SoftDelete flags the comment as deleted. Deleting twice is not an error.
	SoftDelete(ctx context.Context, id string) error

	CountLikes(ctx context.Context, id string) (int64, error)
	HasLike(ctx context.Context, userID, commentID string) (bool, error)

	// AddLike returns ErrLikeExists if the pair is already stored.
	AddLike(ctx context.Context, userID, commentID string) error

	// RemoveLike returns ErrLikeMissing if there was nothing to remove.
	RemoveLike(ctx context.Context, userID, commentID string) error
}
