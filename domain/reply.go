package domain

import (
	"context"
	"time"
)

// DeletedReplyContent replaces the content of a soft deleted reply in read views.
const DeletedReplyContent = "**balasan telah dihapus**"

// Reply is an answer to a comment. Replies do not nest further.
type Reply struct {
	ID        string
	CommentID string
	Owner     string
	Username  string
	Content   string
	Date      time.Time
	IsDelete  bool
}

func (r Reply) VisibleContent() string {
	if r.IsDelete {
		return DeletedReplyContent
	}
	return r.Content
}

// AddReply is a validated reply creation request. ThreadID is only used to
// walk the ownership chain, it is not stored on the reply.
type AddReply struct {
	ThreadID  string
	CommentID string
	Owner     string
	Content   string
}

func NewAddReply(p Payload) (AddReply, error) {
	f, err := readStrings(p, "reply", "threadId", "commentId", "owner", "content")
	if err != nil {
		return AddReply{}, err
	}
	return AddReply{
		ThreadID:  f["threadId"],
		CommentID: f["commentId"],
		Owner:     f["owner"],
		Content:   f["content"],
	}, nil
}

type AddedReply struct {
	ID      string
	Content string
	Owner   string
}

type ReplyDetail struct {
	ID       string
	Content  string
	Date     time.Time
	Username string
}

type ReplyRepository interface {
	Add(ctx context.Context, r AddReply) (AddedReply, error)

	// ListByComment returns the comment's replies ordered by date ascending.
	ListByComment(ctx context.Context, commentID string) ([]Reply, error)

	// GetByID returns the reply even when it is soft deleted.
	GetByID(ctx context.Context, id string) (Reply, error)

	// VerifyOwnership returns ErrReplyNotFound before it ever returns ErrReplyForbidden.
	VerifyOwnership(ctx context.Context, id, owner string) error

	SoftDelete(ctx context.Context, id string) error
}

type ReplyUsecase interface {
	AddReply(ctx context.Context, r AddReply) (AddedReply, error)
	DeleteReply(ctx context.Context, threadID, commentID, replyID, owner string) error
}
