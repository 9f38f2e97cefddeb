package handlers

import (
	"errors"
	"net/http"

	"gamereviews/models"
	"gamereviews/store"

	"github.com/gin-gonic/gin"
)

// GetMe returns the caller's full profile row.
func (h *Handler) GetMe(c *gin.Context) {
	user, err := h.store.FindUserByAuth0ID(subject(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateBio overwrites the caller's bio and returns the updated profile.
func (h *Handler) UpdateBio(c *gin.Context) {
	var input models.UpdateBioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.FindUserByAuth0ID(subject(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user.Bio = input.Bio
	if err := h.store.SaveUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetMyReviews returns the caller's reviews, most recently updated first.
func (h *Handler) GetMyReviews(c *gin.Context) {
	user, err := h.store.FindUserByAuth0ID(subject(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	reviews, err := h.store.ListReviewsByUser(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if reviews == nil {
		reviews = []models.ReviewItem{}
	}

	c.JSON(http.StatusOK, reviews)
}
