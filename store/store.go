package store

import (
	"errors"

	"gamereviews/models"
)

var (
	// ErrNotFound is returned when a lookup by key or id finds no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateFollow is returned when the follow edge already exists.
	ErrDuplicateFollow = errors.New("already following")
)

// UserStore resolves and bootstraps users keyed by their Auth0 subject id.
type UserStore interface {
	FindUserByAuth0ID(auth0ID string) (*models.User, error)
	FindUserByID(id uint) (*models.User, error)
	// FindOrCreateUser returns the existing user for u.Auth0ID, or inserts u
	// and returns it. Safe under concurrent first requests for the same subject.
	FindOrCreateUser(u *models.User) (*models.User, error)
	SaveUser(u *models.User) error
}

// GameStore manages the games natural-keyed by name.
type GameStore interface {
	// FindOrCreateGame inserts the game if the name is unseen, otherwise
	// returns the existing row. Backed by the unique index on name.
	FindOrCreateGame(name string) (*models.Game, error)
}

// ReviewStore provides the review CRUD operations used by the handlers.
type ReviewStore interface {
	ListReviews(limit int) ([]models.ReviewItem, error)
	GetReview(id uint) (*models.ReviewItem, error)
	ListReviewsByUser(userID uint) ([]models.ReviewItem, error)
	CreateReview(r *models.ReviewItem) error
	SaveReview(r *models.ReviewItem) error
	DeleteReview(id uint) error
}

// FollowStore manages the directed follow edges between users.
type FollowStore interface {
	// CreateFollow inserts the edge, returning ErrDuplicateFollow if it
	// already exists. The duplicate check rides on the unique index rather
	// than a separate lookup, so concurrent identical requests cannot both win.
	CreateFollow(followerID, followingID uint) (*models.Follow, error)
	// DeleteFollow removes any matching edge. Deleting a missing edge is not
	// an error.
	DeleteFollow(followerID, followingID uint) error
	ListFollowings(userID uint) ([]models.PublicUser, error)
	ListFollowers(userID uint) ([]models.PublicUser, error)
}

// Store is the full persistence surface the handlers depend on.
type Store interface {
	UserStore
	GameStore
	ReviewStore
	FollowStore
}
