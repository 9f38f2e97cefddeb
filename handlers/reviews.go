package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gamereviews/cache"
	"gamereviews/models"
	"gamereviews/monitoring"
	"gamereviews/store"
	"gamereviews/utils"

	"github.com/gin-gonic/gin"
)

// GetReviews returns all reviews, newest first, with an optional limit.
// Public route. Listings are served from Redis when a fresh copy exists.
func (h *Handler) GetReviews(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	if cache.IsRedisAvailable() {
		var cached []models.ReviewItem
		if err := cache.GetReviews(limit, &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	reviews, err := h.store.ListReviews(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if reviews == nil {
		reviews = []models.ReviewItem{}
	}

	if cache.IsRedisAvailable() {
		cache.SetReviews(limit, reviews)
	}

	c.JSON(http.StatusOK, reviews)
}

// GetReviewByID returns one review with its game and author. Public route.
func (h *Handler) GetReviewByID(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review item not found"})
		return
	}

	review, err := h.store.GetReview(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, review)
}

// CreateReview validates the payload, resolves the caller, finds or creates
// the named game, and inserts the review.
func (h *Handler) CreateReview(c *gin.Context) {
	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg := utils.ValidateReviewInput(input); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
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

	game, err := h.store.FindOrCreateGame(input.GameName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	review := models.ReviewItem{
		Title:   input.Title,
		Content: input.ReviewContent,
		Star:    input.Rating,
		GameID:  game.ID,
		UserID:  user.ID,
	}
	if err := h.store.CreateReview(&review); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	review.Game = *game
	review.User = *user

	monitoring.ReviewsCreatedTotal.Inc()

	go func() {
		if cache.IsRedisAvailable() {
			cache.InvalidateReviews()
			utils.Log.Debug("Review listings cache invalidated (ASYNC)")
		}
	}()

	c.JSON(http.StatusCreated, review)
}

// UpdateReview applies the same validations as create and rejects callers
// who do not own the review.
func (h *Handler) UpdateReview(c *gin.Context) {
	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg := utils.ValidateReviewInput(input); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	review, err := h.store.GetReview(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if review.User.Auth0ID != subject(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to update this review"})
		return
	}

	game, err := h.store.FindOrCreateGame(input.GameName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	review.Title = input.Title
	review.Content = input.ReviewContent
	review.Star = input.Rating
	review.GameID = game.ID
	review.Game = *game

	if err := h.store.SaveReview(review); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	go func() {
		if cache.IsRedisAvailable() {
			cache.InvalidateReviews()
		}
	}()

	c.JSON(http.StatusOK, review)
}

// DeleteReview removes a review and returns the deleted row. Only the
// review's author may delete it.
func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	review, err := h.store.GetReview(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if review.User.Auth0ID != subject(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to delete this review"})
		return
	}

	if err := h.store.DeleteReview(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	go func() {
		if cache.IsRedisAvailable() {
			cache.InvalidateReviews()
		}
	}()

	c.JSON(http.StatusOK, review)
}
