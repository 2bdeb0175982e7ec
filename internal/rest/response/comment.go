package response

import "github.com/Guyuepp/forum-api/domain"

type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedCommentFromDomain(c domain.AddedComment) AddedComment {
	return AddedComment{ID: c.ID, Content: c.Content, Owner: c.Owner}
}

type Comment struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Date      string `json:"date"`
	Content   string `json:"content"`
	LikeCount int64  `json:"likeCount"`
	// Replies is always an array, empty when there are none
	Replies []Reply `json:"replies"`
}

func NewCommentFromDomain(c *domain.CommentDetail) Comment {
	replies := make([]Reply, len(c.Replies))
	for i := range c.Replies {
		replies[i] = NewReplyFromDomain(&c.Replies[i])
	}
	return Comment{
		ID:        c.ID,
		Username:  c.Username,
		Date:      c.Date.UTC().Format(DateTimeFormat),
		Content:   c.Content,
		LikeCount: c.LikeCount,
		Replies:   replies,
	}
}
