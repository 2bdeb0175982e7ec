// Package access walks the thread -> comment -> reply path of a request and
// checks existence and ownership in a fixed order before any mutation runs.
package access

import (
	"context"

	"github.com/Guyuepp/forum-api/domain"
)

// Path names the resources a request touches. Empty ids are not walked.
// When Owner is set the deepest resource on the path must belong to it.
type Path struct {
	ThreadID  string
	CommentID string
	ReplyID   string
	Owner     string
}

type Verifier struct {
	threads  domain.ThreadRepository
	comments domain.CommentRepository
	replies  domain.ReplyRepository
}

func NewVerifier(t domain.ThreadRepository, c domain.CommentRepository, r domain.ReplyRepository) *Verifier {
	return &Verifier{
		threads:  t,
		comments: c,
		replies:  r,
	}
}

// Verify checks, in order: the thread exists, the comment exists (or is
// owned by p.Owner when it is the last hop), the reply exists (and is owned
// by p.Owner when one is given). The first failing step's error is returned
// unchanged.
func (v *Verifier) Verify(ctx context.Context, p Path) error {
	if _, err := v.threads.GetByID(ctx, p.ThreadID); err != nil {
		return err
	}
	if p.CommentID == "" {
		return nil
	}

	if p.ReplyID == "" && p.Owner != "" {
		return v.comments.VerifyOwnership(ctx, p.CommentID, p.Owner)
	}
	if _, err := v.comments.GetByID(ctx, p.CommentID); err != nil {
		return err
	}
	if p.ReplyID == "" {
		return nil
	}

	if p.Owner == "" {
		_, err := v.replies.GetByID(ctx, p.ReplyID)
		return err
	}
	return v.replies.VerifyOwnership(ctx, p.ReplyID, p.Owner)
}
