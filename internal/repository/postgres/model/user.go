package model

import "github.com/Guyuepp/forum-api/domain"

// User is read only here. Accounts are owned by the authentication service.
type User struct {
	ID       string `gorm:"primaryKey;size:50"`
	Username string `gorm:"size:50;not null;uniqueIndex"`
}

func (User) TableName() string {
	return "users"
}

func (m *User) ToDomain() domain.User {
	return domain.User{ID: m.ID, Username: m.Username}
}

// All lists the tables AutoMigrate manages.
func All() []any {
	return []any{&User{}, &Thread{}, &Comment{}, &Reply{}, &CommentLike{}}
}
