package comment

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/observability"
	"github.com/Guyuepp/forum-api/internal/usecase/access"
)

type service struct {
	commentRepo domain.CommentRepository
	verifier    *access.Verifier
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, verifier *access.Verifier) *service {
	return &service{
		commentRepo: commentRepo,
		verifier:    verifier,
	}
}

func (s *service) AddComment(ctx context.Context, c domain.AddComment) (domain.AddedComment, error) {
	if err := s.verifier.Verify(ctx, access.Path{ThreadID: c.ThreadID}); err != nil {
		return domain.AddedComment{}, err
	}
	return s.commentRepo.Add(ctx, c)
}

func (s *service) DeleteComment(ctx context.Context, threadID, commentID, owner string) error {
	err := s.verifier.Verify(ctx, access.Path{
		ThreadID:  threadID,
		CommentID: commentID,
		Owner:     owner,
	})
	if err != nil {
		return err
	}
	return s.commentRepo.SoftDelete(ctx, commentID)
}

// ToggleLike flips the caller's like on a comment. The read and the write
// are separate statements; the store's unique (user, comment) index turns a
// concurrent double toggle into ErrInvariant instead of a duplicate row.
func (s *service) ToggleLike(ctx context.Context, threadID, commentID, userID string) (domain.LikeAction, error) {
	err := s.verifier.Verify(ctx, access.Path{ThreadID: threadID, CommentID: commentID})
	if err != nil {
		return 0, err
	}

	liked, err := s.commentRepo.HasLike(ctx, userID, commentID)
	if err != nil {
		return 0, err
	}

	if liked {
		if err := s.commentRepo.RemoveLike(ctx, userID, commentID); err != nil {
			logInvariant(err, userID, commentID)
			return 0, err
		}
		observability.LikeToggles.WithLabelValues(domain.Unlike.String()).Inc()
		return domain.Unlike, nil
	}

	if err := s.commentRepo.AddLike(ctx, userID, commentID); err != nil {
		logInvariant(err, userID, commentID)
		return 0, err
	}
	observability.LikeToggles.WithLabelValues(domain.Like.String()).Inc()
	return domain.Like, nil
}

func logInvariant(err error, userID, commentID string) {
	if errors.Is(err, domain.ErrInvariant) {
		logrus.Warnf("like toggle raced for user %s on comment %s: %v", userID, commentID, err)
	}
}
