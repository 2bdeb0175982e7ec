package model

import (
	"database/sql"
	"time"

	"github.com/Guyuepp/forum-api/domain"
)

type Thread struct {
	ID    string    `gorm:"primaryKey;size:50"`
	Title string    `gorm:"type:text;not null"`
	Body  string    `gorm:"type:text;not null"`
	Owner string    `gorm:"size:50;not null;index"`
	Date  time.Time `gorm:"not null"`
}

func (Thread) TableName() string {
	return "threads"
}

func NewThreadFromDomain(t domain.AddThread, id string, date time.Time) *Thread {
	return &Thread{
		ID:    id,
		Title: t.Title,
		Body:  t.Body,
		Owner: t.Owner,
		Date:  date,
	}
}

// ThreadRow is a thread joined with its owner's username.
type ThreadRow struct {
	ID       string
	Title    string
	Body     string
	Owner    string
	Date     time.Time
	Username sql.NullString
}

func (r *ThreadRow) ToDomain() domain.Thread {
	return domain.Thread{
		ID:       r.ID,
		Title:    r.Title,
		Body:     r.Body,
		Owner:    r.Owner,
		Username: r.Username.String,
		Date:     r.Date,
	}
}
