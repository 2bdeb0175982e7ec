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

type threadRepository struct {
	DB *gorm.DB
}

var _ domain.ThreadDBRepository = (*threadRepository)(nil)

func NewThreadRepository(db *gorm.DB) *threadRepository {
	return &threadRepository{
		DB: db,
	}
}

func (t *threadRepository) Add(ctx context.Context, in domain.AddThread) (domain.AddedThread, error) {
	m := model.NewThreadFromDomain(in, repository.NewID(repository.ThreadIDPrefix), time.Now().UTC())
	if err := t.DB.WithContext(ctx).Create(m).Error; err != nil {
		return domain.AddedThread{}, fmt.Errorf("insert thread: %w", err)
	}
	return domain.AddedThread{ID: m.ID, Title: m.Title, Owner: m.Owner}, nil
}

func (t *threadRepository) GetByID(ctx context.Context, id string) (domain.Thread, error) {
	var row model.ThreadRow
	err := t.DB.WithContext(ctx).
		Model(&model.Thread{}).
		Select("threads.id, threads.title, threads.body, threads.owner, threads.date, users.username").
		Joins("LEFT JOIN users ON users.id = threads.owner").
		Where("threads.id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Thread{}, domain.ErrThreadNotFound
	}
	if err != nil {
		return domain.Thread{}, fmt.Errorf("get thread %s: %w", id, err)
	}
	return row.ToDomain(), nil
}

// FetchIDs pages through thread ids in ascending order, starting after cursor.
func (t *threadRepository) FetchIDs(ctx context.Context, cursor string, limit int) ([]string, error) {
	var ids []string
	err := t.DB.WithContext(ctx).
		Model(&model.Thread{}).
		Where("id > ?", cursor).
		Order("id ASC").
		Limit(limit).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
