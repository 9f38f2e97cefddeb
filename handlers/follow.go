package handlers

import (
	"errors"
	"net/http"

	"gamereviews/models"
	"gamereviews/monitoring"
	"gamereviews/store"

	"github.com/gin-gonic/gin"
)

// GetFollowings lists the users the caller follows, profile subset only.
func (h *Handler) GetFollowings(c *gin.Context) {
	user, err := h.store.FindUserByAuth0ID(subject(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	followings, err := h.store.ListFollowings(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if followings == nil {
		followings = []models.PublicUser{}
	}

	c.JSON(http.StatusOK, followings)
}

// GetFollowers lists the users following the caller, profile subset only.
func (h *Handler) GetFollowers(c *gin.Context) {
	user, err := h.store.FindUserByAuth0ID(subject(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	followers, err := h.store.ListFollowers(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if followers == nil {
		followers = []models.PublicUser{}
	}

	c.JSON(http.StatusOK, followers)
}

// FollowUser creates a follow edge from the caller to the target user.
// Duplicate edges and self-follows are rejected with 400.
func (h *Handler) FollowUser(c *gin.Context) {
	follower, err := h.store.FindUserByAuth0ID(subject(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Follower not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	targetID, ok := parseID(c.Param("userId"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	if targetID == follower.ID {
		c.JSON(http.StatusBadRequest, gin.H{"message": "You cannot follow yourself"})
		return
	}

	if _, err := h.store.FindUserByID(targetID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Following user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	follow, err := h.store.CreateFollow(follower.ID, targetID)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateFollow) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "You are already following this user"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	monitoring.FollowsCreatedTotal.Inc()
	c.JSON(http.StatusCreated, follow)
}

// UnfollowUser removes the caller's follow edge to the target, if any.
// Unfollowing someone the caller never followed is a no-op 204.
func (h *Handler) UnfollowUser(c *gin.Context) {
	follower, err := h.store.FindUserByAuth0ID(subject(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Follower not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	targetID, ok := parseID(c.Param("userId"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	if err := h.store.DeleteFollow(follower.ID, targetID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
