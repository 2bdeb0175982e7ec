package domain

// LikeAction is the outcome of toggling a like.
type LikeAction int8

const (
	Like   LikeAction = 1
	Unlike LikeAction = -1
)

func (l LikeAction) String() string {
	switch l {
	case Like:
		return "ADD"
	case Unlike:
		return "REMOVE"
	default:
		return "UNKNOWN"
	}
}

// Message is the text returned to the client after a toggle.
func (l LikeAction) Message() string {
	switch l {
	case Like:
		return "comment like added"
	case Unlike:
		return "comment like deleted"
	default:
		return ""
	}
}

// CommentLike is a user's like on a comment. At most one exists per
// (UserID, CommentID) pair.
type CommentLike struct {
	ID        string
	UserID    string
	CommentID string
}
