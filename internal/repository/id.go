package repository

import "github.com/google/uuid"

const (
	ThreadIDPrefix  = "thread"
	CommentIDPrefix = "comment"
	ReplyIDPrefix   = "reply"
	LikeIDPrefix    = "like"
)

// NewID returns a fresh identifier such as "comment-9b2d...". The result
// fits the varchar(50) id columns.
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
