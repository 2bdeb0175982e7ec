package response

import "github.com/Guyuepp/forum-api/domain"

type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewAddedThreadFromDomain(t domain.AddedThread) AddedThread {
	return AddedThread{ID: t.ID, Title: t.Title, Owner: t.Owner}
}

type ThreadDetail struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Date     string    `json:"date"`
	Username string    `json:"username"`
	Comments []Comment `json:"comments"`
}

// NewThreadDetailFromDomain: Domain -> Response
func NewThreadDetailFromDomain(d *domain.ThreadDetail) ThreadDetail {
	comments := make([]Comment, len(d.Comments))
	for i := range d.Comments {
		comments[i] = NewCommentFromDomain(&d.Comments[i])
	}
	return ThreadDetail{
		ID:       d.ID,
		Title:    d.Title,
		Body:     d.Body,
		Date:     d.Date.UTC().Format(DateTimeFormat),
		Username: d.Username,
		Comments: comments,
	}
}
