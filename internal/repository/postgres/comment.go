package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository"
	"github.com/Guyuepp/forum-api/internal/repository/postgres/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Add(ctx context.Context, in domain.AddComment) (domain.AddedComment, error) {
	m := model.NewCommentFromDomain(in, repository.NewID(repository.CommentIDPrefix), time.Now().UTC())
	if err := c.DB.WithContext(ctx).Create(m).Error; err != nil {
		return domain.AddedComment{}, fmt.Errorf("insert comment: %w", err)
	}
	return domain.AddedComment{ID: m.ID, Content: m.Content, Owner: m.Owner}, nil
}

func (c *commentRepository) GetByID(ctx context.Context, id string) (domain.Comment, error) {
	var m model.Comment
	err := c.DB.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Comment{}, domain.ErrCommentNotFound
	}
	if err != nil {
		return domain.Comment{}, fmt.Errorf("get comment %s: %w", id, err)
	}
	return m.ToDomain(), nil
}

// ListByThread returns the thread's comments, deleted ones included, oldest first.
func (c *commentRepository) ListByThread(ctx context.Context, threadID string) ([]domain.Comment, error) {
	var rows []model.CommentRow
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Select("comments.id, comments.thread_id, comments.owner, comments.content, comments.date, comments.is_delete, users.username").
		Joins("LEFT JOIN users ON users.id = comments.owner").
		Where("comments.thread_id = ?", threadID).
		Order("comments.date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list comments of %s: %w", threadID, err)
	}

	res := make([]domain.Comment, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (c *commentRepository) VerifyOwnership(ctx context.Context, id, owner string) error {
	cm, err := c.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cm.Owner != owner {
		return domain.ErrCommentForbidden
	}
	return nil
}

func (c *commentRepository) SoftDelete(ctx context.Context, id string) error {
	result := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Update("is_delete", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (c *commentRepository) CountLikes(ctx context.Context, id string) (int64, error) {
	var n int64
	err := c.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("comment_id = ?", id).
		Count(&n).Error
	return n, err
}

func (c *commentRepository) HasLike(ctx context.Context, userID, commentID string) (bool, error) {
	var n int64
	err := c.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// AddLike relies on the (user_id, comment_id) unique index. A concurrent
// insert that wins the race surfaces as gorm.ErrDuplicatedKey, which needs
// the connection to be opened with TranslateError.
func (c *commentRepository) AddLike(ctx context.Context, userID, commentID string) error {
	like := model.CommentLike{
		ID:        repository.NewID(repository.LikeIDPrefix),
		UserID:    userID,
		CommentID: commentID,
	}
	err := c.DB.WithContext(ctx).Create(&like).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrLikeExists
	}
	return err
}

func (c *commentRepository) RemoveLike(ctx context.Context, userID, commentID string) error {
	result := c.DB.WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Delete(&model.CommentLike{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrLikeMissing
	}
	return nil
}
