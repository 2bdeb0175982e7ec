package domain

import (
	"context"
	"time"
)

// Thread is a top level discussion topic.
type Thread struct {
	ID       string
	Title    string
	Body     string
	Owner    string    // user id of the creator
	Username string    // resolved from Owner, empty when the user row is gone
	Date     time.Time // creation timestamp
}

// AddThread is a validated thread creation request.
type AddThread struct {
	Title string
	Body  string
	Owner string
}

// NewAddThread validates a raw payload holding title, body and owner.
func NewAddThread(p Payload) (AddThread, error) {
	f, err := readStrings(p, "thread", "title", "body", "owner")
	if err != nil {
		return AddThread{}, err
	}
	return AddThread{Title: f["title"], Body: f["body"], Owner: f["owner"]}, nil
}

// AddedThread is what the store reports back after an insert.
type AddedThread struct {
	ID    string
	Title string
	Owner string
}

// ThreadDetail is the composed read view of a thread with every comment,
// reply and like count, deleted content already masked.
type ThreadDetail struct {
	Thread
	Comments []CommentDetail
}

// ThreadRepository defines the contract for thread persistence
type ThreadRepository interface {
	// Add stores a new thread and backfills its generated id.
	Add(ctx context.Context, t AddThread) (AddedThread, error)

	// GetByID retrieves a thread by its id.
	// Returns ErrThreadNotFound if the thread doesn't exist.
	GetByID(ctx context.Context, id string) (Thread, error)
}

// ThreadDBRepository is the SQL side of ThreadRepository.
type ThreadDBRepository interface {
	ThreadRepository

	// FetchIDs pages through every thread id in ascending order, starting
	// after cursor ("" for the first page).
	FetchIDs(ctx context.Context, cursor string, limit int) ([]string, error)
}

// ThreadCache holds immutable thread rows.
type ThreadCache interface {
	// GetThread returns ErrCacheMiss when the thread is not cached.
	GetThread(ctx context.Context, id string) (Thread, error)
	SetThread(ctx context.Context, t *Thread) error
}

type ThreadUsecase interface {
	AddThread(ctx context.Context, t AddThread) (AddedThread, error)
	GetThreadDetail(ctx context.Context, threadID string) (ThreadDetail, error)
}
