package services

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"marketplace-api/internal/domain/rating"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/infrastructure/mq"
)

// memStore backs both fake repositories so user deletes cascade and rating
// inserts see the user foreign key, like the real schema.
type memStore struct {
	mu      sync.Mutex
	users   map[uuid.UUID]user.User
	ratings map[uuid.UUID]rating.Rating
	now     time.Time
}

func newMemStore() *memStore {
	return &memStore{
		users:   map[uuid.UUID]user.User{},
		ratings: map[uuid.UUID]rating.Rating{},
		now:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func (s *memStore) tick() time.Time {
	s.now = s.now.Add(time.Second)
	return s.now
}

type memUserRepo struct{ s *memStore }

func (r memUserRepo) FetchUsers(context.Context) (user.Users, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	us := make(user.Users, 0, len(r.s.users))
	for _, u := range r.s.users {
		u := u
		us = append(us, &u)
	}
	sort.Slice(us, func(i, j int) bool { return us[i].CreatedAt.Before(us[j].CreatedAt) })
	return us, nil
}

func (r memUserRepo) FetchUserByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r memUserRepo) FetchUserByUsername(_ context.Context, username string) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r memUserRepo) CreateUser(_ context.Context, req user.User) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == req.Username {
			return nil, user.ErrUsernameTaken
		}
	}
	req.ID = uuid.New()
	req.CreatedAt = r.s.tick()
	req.UpdatedAt = req.CreatedAt
	r.s.users[req.ID] = req
	return &req, nil
}

func (r memUserRepo) UpdateUser(_ context.Context, req user.User) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.users[req.ID]
	if !ok {
		return nil, nil
	}
	for _, u := range r.s.users {
		if u.Username == req.Username && u.ID != req.ID {
			return nil, user.ErrUsernameTaken
		}
	}
	cur.Username = req.Username
	cur.FirstName = req.FirstName
	cur.LastName = req.LastName
	cur.PhoneNumber = req.PhoneNumber
	cur.Address = req.Address
	cur.IsFarmer = req.IsFarmer
	cur.PasswordHash = req.PasswordHash
	cur.UpdatedAt = r.s.tick()
	r.s.users[cur.ID] = cur
	return &cur, nil
}

func (r memUserRepo) UpdateProfilePicture(_ context.Context, id uuid.UUID, url string) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cur.ProfilePictureURL = url
	cur.UpdatedAt = r.s.tick()
	r.s.users[id] = cur
	return &cur, nil
}

func (r memUserRepo) DeleteUser(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	delete(r.s.users, id)
	for rid, rt := range r.s.ratings {
		if rt.UserID == id {
			delete(r.s.ratings, rid)
		}
	}
	return &u, nil
}

type memRatingRepo struct {
	s *memStore
	// forceMiss makes the advisory lookup miss, as when two requests race.
	forceMiss bool
}

func (r memRatingRepo) withUsername(rt rating.Rating) *rating.Rating {
	if u, ok := r.s.users[rt.UserID]; ok {
		rt.Username = u.Username
	}
	return &rt
}

func (r memRatingRepo) FetchRatings(context.Context) (rating.Ratings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rs := make(rating.Ratings, 0, len(r.s.ratings))
	for _, rt := range r.s.ratings {
		rs = append(rs, r.withUsername(rt))
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].CreatedAt.Before(rs[j].CreatedAt) })
	return rs, nil
}

func (r memRatingRepo) FetchRatingByID(_ context.Context, id uuid.UUID) (*rating.Rating, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rt, ok := r.s.ratings[id]
	if !ok {
		return nil, nil
	}
	return r.withUsername(rt), nil
}

func (r memRatingRepo) FetchRatingsByProduct(_ context.Context, productID uuid.UUID) (rating.Ratings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rs := rating.Ratings{}
	for _, rt := range r.s.ratings {
		if rt.ProductID == productID {
			rs = append(rs, r.withUsername(rt))
		}
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].CreatedAt.Before(rs[j].CreatedAt) })
	return rs, nil
}

func (r memRatingRepo) ExistsForUserProduct(_ context.Context, userID, productID uuid.UUID) (bool, error) {
	if r.forceMiss {
		return false, nil
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, rt := range r.s.ratings {
		if rt.UserID == userID && rt.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r memRatingRepo) CreateRating(_ context.Context, req rating.Rating) (*rating.Rating, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[req.UserID]; !ok {
		return nil, rating.ErrUnknownUser
	}
	for _, rt := range r.s.ratings {
		if rt.UserID == req.UserID && rt.ProductID == req.ProductID {
			return nil, rating.ErrAlreadyRated
		}
	}
	req.ID = uuid.New()
	req.CreatedAt = r.s.tick()
	req.UpdatedAt = req.CreatedAt
	r.s.ratings[req.ID] = req
	return r.withUsername(req), nil
}

func (r memRatingRepo) UpdateRating(_ context.Context, req rating.Rating) (*rating.Rating, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.ratings[req.ID]
	if !ok {
		return nil, nil
	}
	cur.Score = req.Score
	cur.Comment = req.Comment
	cur.UpdatedAt = r.s.tick()
	r.s.ratings[cur.ID] = cur
	return r.withUsername(cur), nil
}

func (r memRatingRepo) DeleteRating(_ context.Context, id uuid.UUID) (*rating.Rating, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rt, ok := r.s.ratings[id]
	if !ok {
		return nil, nil
	}
	delete(r.s.ratings, id)
	return r.withUsername(rt), nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []mq.Event
}

func (p *fakePublisher) Publish(_ context.Context, e mq.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *fakePublisher) Close() {}

func (p *fakePublisher) actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Action
	}
	return out
}

type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	err     error
}

func (f *fakeS3) PutObject(_ context.Context, key, _ string, body io.Reader, _ int64) error {
	if f.err != nil {
		return f.err
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[key] = b
	return nil
}

func (f *fakeS3) GetPublicURL(key string) string { return "https://uploads.test/" + key }

func (f *fakeS3) object(url string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.objects[strings.TrimPrefix(url, "https://uploads.test/")]
	return b, ok
}

// newCounter is not registered, so tests can build as many as they like.
func newCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace_test",
		Name:      "general_counters",
	}, []string{"result"})
}
