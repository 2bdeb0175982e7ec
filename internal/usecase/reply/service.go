package reply

import (
	"context"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/usecase/access"
)

type service struct {
	replyRepo domain.ReplyRepository
	verifier  *access.Verifier
}

var _ domain.ReplyUsecase = (*service)(nil)

func NewService(replyRepo domain.ReplyRepository, verifier *access.Verifier) *service {
	return &service{
		replyRepo: replyRepo,
		verifier:  verifier,
	}
}

func (s *service) AddReply(ctx context.Context, r domain.AddReply) (domain.AddedReply, error) {
	err := s.verifier.Verify(ctx, access.Path{ThreadID: r.ThreadID, CommentID: r.CommentID})
	if err != nil {
		return domain.AddedReply{}, err
	}
	return s.replyRepo.Add(ctx, r)
}

func (s *service) DeleteReply(ctx context.Context, threadID, commentID, replyID, owner string) error {
	err := s.verifier.Verify(ctx, access.Path{
		ThreadID:  threadID,
		CommentID: commentID,
		ReplyID:   replyID,
		Owner:     owner,
	})
	if err != nil {
		return err
	}
	return s.replyRepo.SoftDelete(ctx, replyID)
}
