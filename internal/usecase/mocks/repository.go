package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/forum-api/domain"
)

// ThreadRepository is a mock type for the domain.ThreadDBRepository type
type ThreadRepository struct {
	mock.Mock
}

func (_m *ThreadRepository) Add(ctx context.Context, t domain.AddThread) (domain.AddedThread, error) {
	ret := _m.Called(ctx, t)
	return ret.Get(0).(domain.AddedThread), ret.Error(1)
}

func (_m *ThreadRepository) GetByID(ctx context.Context, id string) (domain.Thread, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Thread), ret.Error(1)
}

func (_m *ThreadRepository) FetchIDs(ctx context.Context, cursor string, limit int) ([]string, error) {
	ret := _m.Called(ctx, cursor, limit)
	var r0 []string
	if rf, ok := ret.Get(0).([]string); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

// CommentRepository is a mock type for the domain.CommentRepository type
type CommentRepository struct {
	mock.Mock
}

func (_m *CommentRepository) Add(ctx context.Context, c domain.AddComment) (domain.AddedComment, error) {
	ret := _m.Called(ctx, c)
	return ret.Get(0).(domain.AddedComment), ret.Error(1)
}

func (_m *CommentRepository) GetByID(ctx context.Context, id string) (domain.Comment, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Comment), ret.Error(1)
}

func (_m *CommentRepository) ListByThread(ctx context.Context, threadID string) ([]domain.Comment, error) {
	ret := _m.Called(ctx, threadID)
	var r0 []domain.Comment
	if rf, ok := ret.Get(0).([]domain.Comment); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

func (_m *CommentRepository) VerifyOwnership(ctx context.Context, id, owner string) error {
	ret := _m.Called(ctx, id, owner)
	return ret.Error(0)
}

func (_m *CommentRepository) SoftDelete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *CommentRepository) CountLikes(ctx context.Context, id string) (int64, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *CommentRepository) HasLike(ctx context.Context, userID, commentID string) (bool, error) {
	ret := _m.Called(ctx, userID, commentID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *CommentRepository) AddLike(ctx context.Context, userID, commentID string) error {
	ret := _m.Called(ctx, userID, commentID)
	return ret.Error(0)
}

func (_m *CommentRepository) RemoveLike(ctx context.Context, userID, commentID string) error {
	ret := _m.Called(ctx, userID, commentID)
	return ret.Error(0)
}

// ReplyRepository is a mock type for the domain.ReplyRepository type
type ReplyRepository struct {
	mock.Mock
}

func (_m *ReplyRepository) Add(ctx context.Context, r domain.AddReply) (domain.AddedReply, error) {
	ret := _m.Called(ctx, r)
	return ret.Get(0).(domain.AddedReply), ret.Error(1)
}

func (_m *ReplyRepository) ListByComment(ctx context.Context, commentID string) ([]domain.Reply, error) {
	ret := _m.Called(ctx, commentID)
	var r0 []domain.Reply
	if rf, ok := ret.Get(0).([]domain.Reply); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

func (_m *ReplyRepository) GetByID(ctx context.Context, id string) (domain.Reply, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Reply), ret.Error(1)
}

func (_m *ReplyRepository) VerifyOwnership(ctx context.Context, id, owner string) error {
	ret := _m.Called(ctx, id, owner)
	return ret.Error(0)
}

func (_m *ReplyRepository) SoftDelete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// BloomRepository is a mock type for the domain.BloomRepository type
type BloomRepository struct {
	mock.Mock
}

func (_m *BloomRepository) Add(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *BloomRepository) Exists(ctx context.Context, id string) (bool, error) {
	ret := _m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

func (_m *BloomRepository) BulkAdd(ctx context.Context, ids []string) error {
	ret := _m.Called(ctx, ids)
	return ret.Error(0)
}

// ThreadCache is a mock type for the domain.ThreadCache type
type ThreadCache struct {
	mock.Mock
}

func (_m *ThreadCache) GetThread(ctx context.Context, id string) (domain.Thread, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Thread), ret.Error(1)
}

func (_m *ThreadCache) SetThread(ctx context.Context, t *domain.Thread) error {
	ret := _m.Called(ctx, t)
	return ret.Error(0)
}
