package model

import (
	"database/sql"
	"time"

	"github.com/Guyuepp/forum-api/domain"
)

type Comment struct {
	ID       string    `gorm:"primaryKey;size:50"`
	ThreadID string    `gorm:"column:thread_id;size:50;not null;index"`
	Owner    string    `gorm:"size:50;not null"`
	Content  string    `gorm:"type:text;not null"`
	Date     time.Time `gorm:"not null"`
	IsDelete bool      `gorm:"column:is_delete;not null"`
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDomain(c domain.AddComment, id string, date time.Time) *Comment {
	return &Comment{
		ID:       id,
		ThreadID: c.ThreadID,
		Owner:    c.Owner,
		Content:  c.Content,
		Date:     date,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:       m.ID,
		ThreadID: m.ThreadID,
		Owner:    m.Owner,
		Content:  m.Content,
		Date:     m.Date,
		IsDelete: m.IsDelete,
	}
}

type CommentRow struct {
	Comment
	Username sql.NullString
}

func (r *CommentRow) ToDomain() domain.Comment {
	c := r.Comment.ToDomain()
	c.Username = r.Username.String
	return c
}
