// Package memory keeps every forum store in process memory. It backs the
// usecase scenario tests and DB_DRIVER=memory for local runs.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository"
)

type likeKey struct {
	userID, commentID string
}

type Store struct {
	mu       sync.RWMutex
	users    map[string]domain.User
	threads  map[string]domain.Thread
	comments map[string]*domain.Comment
	replies  map[string]*domain.Reply
	likes    map[likeKey]string
	seq      map[string]int // insertion order, breaks date ties

	// Now stamps new rows. Tests replace it to control ordering.
	Now func() time.Time
}

func New() *Store {
	return &Store{
		users:    make(map[string]domain.User),
		threads:  make(map[string]domain.Thread),
		comments: make(map[string]*domain.Comment),
		replies:  make(map[string]*domain.Reply),
		likes:    make(map[likeKey]string),
		seq:      make(map[string]int),
		Now:      func() time.Time { return time.Now().UTC() },
	}
}

// AddUser registers a user so reads can resolve its username.
func (s *Store) AddUser(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *Store) Threads() *ThreadRepository   { return &ThreadRepository{s} }
func (s *Store) Comments() *CommentRepository { return &CommentRepository{s} }
func (s *Store) Replies() *ReplyRepository    { return &ReplyRepository{s} }

func (s *Store) username(id string) string {
	return s.users[id].Username
}

func (s *Store) track(id string) {
	s.seq[id] = len(s.seq)
}

func (s *Store) before(idA string, a time.Time, idB string, b time.Time) bool {
	if a.Equal(b) {
		return s.seq[idA] < s.seq[idB]
	}
	return a.Before(b)
}

type ThreadRepository struct {
	s *Store
}

var _ domain.ThreadDBRepository = (*ThreadRepository)(nil)

func (r *ThreadRepository) Add(_ context.Context, t domain.AddThread) (domain.AddedThread, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	th := domain.Thread{
		ID:    repository.NewID(repository.ThreadIDPrefix),
		Title: t.Title,
		Body:  t.Body,
		Owner: t.Owner,
		Date:  r.s.Now(),
	}
	r.s.threads[th.ID] = th
	return domain.AddedThread{ID: th.ID, Title: th.Title, Owner: th.Owner}, nil
}

func (r *ThreadRepository) GetByID(_ context.Context, id string) (domain.Thread, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	th, ok := r.s.threads[id]
	if !ok {
		return domain.Thread{}, domain.ErrThreadNotFound
	}
	th.Username = r.s.username(th.Owner)
	return th, nil
}

func (r *ThreadRepository) FetchIDs(_ context.Context, cursor string, limit int) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := make([]string, 0, len(r.s.threads))
	for id := range r.s.threads {
		if id > cursor {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

type CommentRepository struct {
	s *Store
}

var _ domain.CommentRepository = (*CommentRepository)(nil)

func (r *CommentRepository) Add(_ context.Context, c domain.AddComment) (domain.AddedComment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cm := &domain.Comment{
		ID:       repository.NewID(repository.CommentIDPrefix),
		ThreadID: c.ThreadID,
		Owner:    c.Owner,
		Content:  c.Content,
		Date:     r.s.Now(),
	}
	r.s.comments[cm.ID] = cm
	r.s.track(cm.ID)
	return domain.AddedComment{ID: cm.ID, Content: cm.Content, Owner: cm.Owner}, nil
}

func (r *CommentRepository) GetByID(_ context.Context, id string) (domain.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	cm, ok := r.s.comments[id]
	if !ok {
		return domain.Comment{}, domain.ErrCommentNotFound
	}
	res := *cm
	res.Username = r.s.username(cm.Owner)
	return res, nil
}

func (r *CommentRepository) ListByThread(_ context.Context, threadID string) ([]domain.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]domain.Comment, 0)
	for _, cm := range r.s.comments {
		if cm.ThreadID != threadID {
			continue
		}
		c := *cm
		c.Username = r.s.username(cm.Owner)
		res = append(res, c)
	}
	sort.Slice(res, func(i, j int) bool {
		return r.s.before(res[i].ID, res[i].Date, res[j].ID, res[j].Date)
	})
	return res, nil
}

func (r *CommentRepository) VerifyOwnership(_ context.Context, id, owner string) error {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	cm, ok := r.s.comments[id]
	if !ok {
		return domain.ErrCommentNotFound
	}
	if cm.Owner != owner {
		return domain.ErrCommentForbidden
	}
	return nil
}

func (r *CommentRepository) SoftDelete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cm, ok := r.s.comments[id]
	if !ok {
		return domain.ErrCommentNotFound
	}
	cm.IsDelete = true
	return nil
}

func (r *CommentRepository) CountLikes(_ context.Context, id string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for k := range r.s.likes {
		if k.commentID == id {
			n++
		}
	}
	return n, nil
}

func (r *CommentRepository) HasLike(_ context.Context, userID, commentID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.likes[likeKey{userID, commentID}]
	return ok, nil
}

func (r *CommentRepository) AddLike(_ context.Context, userID, commentID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	k := likeKey{userID, commentID}
	if _, ok := r.s.likes[k]; ok {
		return domain.ErrLikeExists
	}
	r.s.likes[k] = repository.NewID(repository.LikeIDPrefix)
	return nil
}

func (r *CommentRepository) RemoveLike(_ context.Context, userID, commentID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	k := likeKey{userID, commentID}
	if _, ok := r.s.likes[k]; !ok {
		return domain.ErrLikeMissing
	}
	delete(r.s.likes, k)
	return nil
}

type ReplyRepository struct {
	s *Store
}

var _ domain.ReplyRepository = (*ReplyRepository)(nil)

func (r *ReplyRepository) Add(_ context.Context, in domain.AddReply) (domain.AddedReply, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rp := &domain.Reply{
		ID:        repository.NewID(repository.ReplyIDPrefix),
		CommentID: in.CommentID,
		Owner:     in.Owner,
		Content:   in.Content,
		Date:      r.s.Now(),
	}
	r.s.replies[rp.ID] = rp
	r.s.track(rp.ID)
	return domain.AddedReply{ID: rp.ID, Content: rp.Content, Owner: rp.Owner}, nil
}

func (r *ReplyRepository) ListByComment(_ context.Context, commentID string) ([]domain.Reply, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]domain.Reply, 0)
	for _, rp := range r.s.replies {
		if rp.CommentID != commentID {
			continue
		}
		c := *rp
		c.Username = r.s.username(rp.Owner)
		res = append(res, c)
	}
	sort.Slice(res, func(i, j int) bool {
		return r.s.before(res[i].ID, res[i].Date, res[j].ID, res[j].Date)
	})
	return res, nil
}

func (r *ReplyRepository) GetByID(_ context.Context, id string) (domain.Reply, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rp, ok := r.s.replies[id]
	if !ok {
		return domain.Reply{}, domain.ErrReplyNotFound
	}
	res := *rp
	res.Username = r.s.username(rp.Owner)
	return res, nil
}

func (r *ReplyRepository) VerifyOwnership(_ context.Context, id, owner string) error {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rp, ok := r.s.replies[id]
	if !ok {
		return domain.ErrReplyNotFound
	}
	if rp.Owner != owner {
		return domain.ErrReplyForbidden
	}
	return nil
}

func (r *ReplyRepository) SoftDelete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rp, ok := r.s.replies[id]
	if !ok {
		return domain.ErrReplyNotFound
	}
	rp.IsDelete = true
	return nil
}
