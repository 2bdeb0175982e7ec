package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/forum-api/domain"
)

// ThreadUsecase is a mock type for the domain.ThreadUsecase type
type ThreadUsecase struct {
	mock.Mock
}

func (_m *ThreadUsecase) AddThread(ctx context.Context, t domain.AddThread) (domain.AddedThread, error) {
	ret := _m.Called(ctx, t)
	return ret.Get(0).(domain.AddedThread), ret.Error(1)
}

func (_m *ThreadUsecase) GetThreadDetail(ctx context.Context, threadID string) (domain.ThreadDetail, error) {
	ret := _m.Called(ctx, threadID)
	return ret.Get(0).(domain.ThreadDetail), ret.Error(1)
}

// CommentUsecase is a mock type for the domain.CommentUsecase type
type CommentUsecase struct {
	mock.Mock
}

func (_m *CommentUsecase) AddComment(ctx context.Context, c domain.AddComment) (domain.AddedComment, error) {
	ret := _m.Called(ctx, c)
	return ret.Get(0).(domain.AddedComment), ret.Error(1)
}

func (_m *CommentUsecase) DeleteComment(ctx context.Context, threadID, commentID, owner string) error {
	ret := _m.Called(ctx, threadID, commentID, owner)
	return ret.Error(0)
}

func (_m *CommentUsecase) ToggleLike(ctx context.Context, threadID, commentID, userID string) (domain.LikeAction, error) {
	ret := _m.Called(ctx, threadID, commentID, userID)
	return ret.Get(0).(domain.LikeAction), ret.Error(1)
}

// ReplyUsecase is a mock type for the domain.ReplyUsecase type
type ReplyUsecase struct {
	mock.Mock
}

func (_m *ReplyUsecase) AddReply(ctx context.Context, r domain.AddReply) (domain.AddedReply, error) {
	ret := _m.Called(ctx, r)
	return ret.Get(0).(domain.AddedReply), ret.Error(1)
}

func (_m *ReplyUsecase) DeleteReply(ctx context.Context, threadID, commentID, replyID, owner string) error {
	ret := _m.Called(ctx, threadID, commentID, replyID, owner)
	return ret.Error(0)
}
