package model

// CommentLike is unique per (user_id, comment_id).
type CommentLike struct {
	ID        string `gorm:"primaryKey;size:50"`
	UserID    string `gorm:"column:user_id;size:50;not null;uniqueIndex:idx_comment_likes_user_comment"`
	CommentID string `gorm:"column:comment_id;size:50;not null;uniqueIndex:idx_comment_likes_user_comment;index"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
