package thread

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/forum-api/domain"
)

// maxDetailFetches bounds the per-comment goroutines of a single detail request.
const maxDetailFetches = 8

type Service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
}

var _ domain.ThreadUsecase = (*Service)(nil)

// NewService will create a new thread service object
func NewService(t domain.ThreadRepository, c domain.CommentRepository, r domain.ReplyRepository) *Service {
	return &Service{
		threadRepo:  t,
		commentRepo: c,
		replyRepo:   r,
	}
}

func (s *Service) AddThread(ctx context.Context, t domain.AddThread) (domain.AddedThread, error) {
	return s.threadRepo.Add(ctx, t)
}

// GetThreadDetail composes the thread with its comments, each comment's
// replies and like count. Deleted comments and replies keep their place in
// the result, only their content is swapped for the deletion sentinel.
func (s *Service) GetThreadDetail(ctx context.Context, threadID string) (domain.ThreadDetail, error) {
	thread, err := s.threadRepo.GetByID(ctx, threadID)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	comments, err := s.commentRepo.ListByThread(ctx, threadID)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	details, err := s.fillCommentDetails(ctx, comments)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	return domain.ThreadDetail{
		Thread:   thread,
		Comments: details,
	}, nil
}

/*
* Replies and like counts are fetched per comment with an errgroup.
* Every goroutine writes only its own slot of res, so the output keeps the
* order ListByThread returned no matter which fetch finishes first.
 */
func (s *Service) fillCommentDetails(ctx context.Context, comments []domain.Comment) ([]domain.CommentDetail, error) {
	res := make([]domain.CommentDetail, len(comments))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxDetailFetches)

	for i, c := range comments {
		res[i] = domain.CommentDetail{
			ID:       c.ID,
			Username: c.Username,
			Date:     c.Date,
			Content:  c.VisibleContent(),
		}

		g.Go(func() error {
			replies, err := s.replyRepo.ListByComment(ctx, c.ID)
			if err != nil {
				return err
			}
			likes, err := s.commentRepo.CountLikes(ctx, c.ID)
			if err != nil {
				return err
			}

			res[i].Replies = maskReplies(replies)
			res[i].LikeCount = likes
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func maskReplies(replies []domain.Reply) []domain.ReplyDetail {
	res := make([]domain.ReplyDetail, len(replies))
	for i, r := range replies {
		res[i] = domain.ReplyDetail{
			ID:       r.ID,
			Content:  r.VisibleContent(),
			Date:     r.Date,
			Username: r.Username,
		}
	}
	return res
}
