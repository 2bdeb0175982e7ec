package model

import (
	"database/sql"
	"time"

	"github.com/Guyuepp/forum-api/domain"
)

type Reply struct {
	ID        string    `gorm:"primaryKey;size:50"`
	CommentID string    `gorm:"column:comment_id;size:50;not null;index"`
	Owner     string    `gorm:"size:50;not null"`
	Content   string    `gorm:"type:text;not null"`
	Date      time.Time `gorm:"not null"`
	IsDelete  bool      `gorm:"column:is_delete;not null"`
}

func (Reply) TableName() string {
	return "replies"
}

func NewReplyFromDomain(r domain.AddReply, id string, date time.Time) *Reply {
	return &Reply{
		ID:        id,
		CommentID: r.CommentID,
		Owner:     r.Owner,
		Content:   r.Content,
		Date:      date,
	}
}

func (m *Reply) ToDomain() domain.Reply {
	return domain.Reply{
		ID:        m.ID,
		CommentID: m.CommentID,
		Owner:     m.Owner,
		Content:   m.Content,
		Date:      m.Date,
		IsDelete:  m.IsDelete,
	}
}

type ReplyRow struct {
	Reply
	Username sql.NullString
}

func (r *ReplyRow) ToDomain() domain.Reply {
	rp := r.Reply.ToDomain()
	rp.Username = r.Username.String
	return rp
}
