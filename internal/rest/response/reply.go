package response

import "github.com/Guyuepp/forum-api/domain"

type AddedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedReplyFromDomain(r domain.AddedReply) AddedReply {
	return AddedReply{ID: r.ID, Content: r.Content, Owner: r.Owner}
}

type Reply struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Username string `json:"username"`
}

func NewReplyFromDomain(r *domain.ReplyDetail) Reply {
	return Reply{
		ID:       r.ID,
		Content:  r.Content,
		Date:     r.Date.UTC().Format(DateTimeFormat),
		Username: r.Username,
	}
}
