package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"gamereviews/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMe(t *testing.T) {
	s := newFakeStore()
	alice := s.addUser("auth0|alice", "Alice")
	alice.Bio = "I review JRPGs"

	h := newTestHandler(s)
	r := newRouter()
	r.GET("/me", authAs("auth0|alice", nil), h.GetMe)

	rr := doJSON(r, http.MethodGet, "/me", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var user models.User
	decodeBody(t, rr, &user)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "I review JRPGs", user.Bio)
}

func TestGetMe_UnknownUser(t *testing.T) {
	h := newTestHandler(newFakeStore())
	r := newRouter()
	r.GET("/me", authAs("auth0|ghost", nil), h.GetMe)

	rr := doJSON(r, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateBio(t *testing.T) {
	s := newFakeStore()
	s.addUser("auth0|alice", "Alice")

	h := newTestHandler(s)
	r := newRouter()
	r.PUT("/me/bio", authAs("auth0|alice", nil), h.UpdateBio)

	rr := doJSON(r, http.MethodPut, "/me/bio", map[string]string{"bio": "Now into roguelikes"})
	require.Equal(t, http.StatusOK, rr.Code)

	var user models.User
	decodeBody(t, rr, &user)
	assert.Equal(t, "Now into roguelikes", user.Bio)

	stored, err := s.FindUserByAuth0ID("auth0|alice")
	require.NoError(t, err)
	assert.Equal(t, "Now into roguelikes", stored.Bio)
}

func TestGetMyReviews_OrderedByUpdate(t *testing.T) {
	s := newFakeStore()
	alice := s.addUser("auth0|alice", "Alice")
	bob := s.addUser("auth0|bob", "Bob")
	game, _ := s.FindOrCreateGame("Disco Elysium")

	older := s.addReview(alice, game, "First pass impressions", "The writing is unlike anything else in the medium today.", 5)
	older.UpdatedAt = time.Now().Add(-time.Hour)
	s.addReview(alice, game, "Revised after finishing", "On a second playthrough the systems reveal even more depth.", 5)
	s.addReview(bob, game, "Bob's take on this one", "It was fine but I bounced off the dice rolls pretty hard.", 3)

	h := newTestHandler(s)
	r := newRouter()
	r.GET("/me/reviews", authAs("auth0|alice", nil), h.GetMyReviews)

	rr := doJSON(r, http.MethodGet, "/me/reviews", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var reviews []models.ReviewItem
	decodeBody(t, rr, &reviews)
	require.Len(t, reviews, 2, "only the caller's reviews")
	assert.Equal(t, "Revised after finishing", reviews[0].Title)
	assert.Equal(t, "First pass impressions", reviews[1].Title)
}
