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

type replyRepository struct {
	DB *gorm.DB
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB) *replyRepository {
	return &replyRepository{
		DB: db,
	}
}

func (r *replyRepository) Add(ctx context.Context, in domain.AddReply) (domain.AddedReply, error) {
	m := model.NewReplyFromDomain(in, repository.NewID(repository.ReplyIDPrefix), time.Now().UTC())
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return domain.AddedReply{}, fmt.Errorf("insert reply: %w", err)
	}
	return domain.AddedReply{ID: m.ID, Content: m.Content, Owner: m.Owner}, nil
}

func (r *replyRepository) ListByComment(ctx context.Context, commentID string) ([]domain.Reply, error) {
	var rows []model.ReplyRow
	err := r.DB.WithContext(ctx).
		Model(&model.Reply{}).
		Select("replies.id, replies.comment_id, replies.owner, replies.content, replies.date, replies.is_delete, users.username").
		Joins("LEFT JOIN users ON users.id = replies.owner").
		Where("replies.comment_id = ?", commentID).
		Order("replies.date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list replies of %s: %w", commentID, err)
	}

	res := make([]domain.Reply, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (r *replyRepository) GetByID(ctx context.Context, id string) (domain.Reply, error) {
	var m model.Reply
	err := r.DB.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Reply{}, domain.ErrReplyNotFound
	}
	if err != nil {
		return domain.Reply{}, fmt.Errorf("get reply %s: %w", id, err)
	}
	return m.ToDomain(), nil
}

func (r *replyRepository) VerifyOwnership(ctx context.Context, id, owner string) error {
	rp, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rp.Owner != owner {
		return domain.ErrReplyForbidden
	}
	return nil
}

func (r *replyRepository) SoftDelete(ctx context.Context, id string) error {
	result := r.DB.WithContext(ctx).
		Model(&model.Reply{}).
		Where("id = ?", id).
		Update("is_delete", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrReplyNotFound
	}
	return nil
}
