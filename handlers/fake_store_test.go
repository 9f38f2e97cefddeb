package handlers_test

import (
	"sort"
	"time"

	"gamereviews/models"
	"gamereviews/store"
)

// fakeStore is an in-memory store.Store used to exercise the handlers
// without a database. Setting failWith makes every operation return it.
type fakeStore struct {
	users    []*models.User
	games    []*models.Game
	reviews  []*models.ReviewItem
	follows  []*models.Follow
	nextID   uint
	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1}
}

func (f *fakeStore) id() uint {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeStore) addUser(auth0ID, name string) *models.User {
	u := &models.User{
		ID:        f.id(),
		Auth0ID:   auth0ID,
		Name:      name,
		CreatedAt: time.Now(),
	}
	f.users = append(f.users, u)
	return u
}

func (f *fakeStore) addReview(user *models.User, game *models.Game, title, content string, star int) *models.ReviewItem {
	r := &models.ReviewItem{
		ID:        f.id(),
		Title:     title,
		Content:   content,
		Star:      star,
		GameID:    game.ID,
		Game:      *game,
		UserID:    user.ID,
		User:      *user,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.reviews = append(f.reviews, r)
	return r
}

func (f *fakeStore) FindUserByAuth0ID(auth0ID string) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, u := range f.users {
		if u.Auth0ID == auth0ID {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) FindUserByID(id uint) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) FindOrCreateUser(u *models.User) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, existing := range f.users {
		if existing.Auth0ID == u.Auth0ID {
			copied := *existing
			return &copied, nil
		}
	}
	u.ID = f.id()
	u.CreatedAt = time.Now()
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeStore) SaveUser(u *models.User) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i, existing := range f.users {
		if existing.ID == u.ID {
			copied := *u
			f.users[i] = &copied
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) FindOrCreateGame(name string) (*models.Game, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, g := range f.games {
		if g.Name == name {
			copied := *g
			return &copied, nil
		}
	}
	g := &models.Game{ID: f.id(), Name: name, CreatedAt: time.Now()}
	f.games = append(f.games, g)
	return g, nil
}

func (f *fakeStore) ListReviews(limit int) ([]models.ReviewItem, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	sorted := make([]*models.ReviewItem, len(f.reviews))
	copy(sorted, f.reviews)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	out := make([]models.ReviewItem, len(sorted))
	for i, r := range sorted {
		out[i] = *r
	}
	return out, nil
}

func (f *fakeStore) GetReview(id uint) (*models.ReviewItem, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, r := range f.reviews {
		if r.ID == id {
			copied := *r
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) ListReviewsByUser(userID uint) ([]models.ReviewItem, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var mine []*models.ReviewItem
	for _, r := range f.reviews {
		if r.UserID == userID {
			mine = append(mine, r)
		}
	}
	sort.Slice(mine, func(i, j int) bool {
		return mine[i].UpdatedAt.After(mine[j].UpdatedAt)
	})
	out := make([]models.ReviewItem, len(mine))
	for i, r := range mine {
		out[i] = *r
	}
	return out, nil
}

func (f *fakeStore) CreateReview(r *models.ReviewItem) error {
	if f.failWith != nil {
		return f.failWith
	}
	r.ID = f.id()
	r.CreatedAt = time.Now()
	r.UpdatedAt = time.Now()
	copied := *r
	f.reviews = append(f.reviews, &copied)
	return nil
}

func (f *fakeStore) SaveReview(r *models.ReviewItem) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i, existing := range f.reviews {
		if existing.ID == r.ID {
			r.UpdatedAt = time.Now()
			copied := *r
			f.reviews[i] = &copied
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) DeleteReview(id uint) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i, r := range f.reviews {
		if r.ID == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStore) CreateFollow(followerID, followingID uint) (*models.Follow, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, edge := range f.follows {
		if edge.FollowerID == followerID && edge.FollowingID == followingID {
			return nil, store.ErrDuplicateFollow
		}
	}
	edge := &models.Follow{
		ID:          f.id(),
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now(),
	}
	f.follows = append(f.follows, edge)
	return edge, nil
}

func (f *fakeStore) DeleteFollow(followerID, followingID uint) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i, edge := range f.follows {
		if edge.FollowerID == followerID && edge.FollowingID == followingID {
			f.follows = append(f.follows[:i], f.follows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStore) ListFollowings(userID uint) ([]models.PublicUser, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.PublicUser
	for _, edge := range f.follows {
		if edge.FollowerID != userID {
			continue
		}
		if u, err := f.FindUserByID(edge.FollowingID); err == nil {
			out = append(out, models.PublicUser{ID: u.ID, Name: u.Name, Nickname: u.Nickname, Picture: u.Picture})
		}
	}
	return out, nil
}

func (f *fakeStore) ListFollowers(userID uint) ([]models.PublicUser, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.PublicUser
	for _, edge := range f.follows {
		if edge.FollowingID != userID {
			continue
		}
		if u, err := f.FindUserByID(edge.FollowerID); err == nil {
			out = append(out, models.PublicUser{ID: u.ID, Name: u.Name, Nickname: u.Nickname, Picture: u.Picture})
		}
	}
	return out, nil
}
