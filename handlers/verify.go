package handlers

import (
	"net/http"

	"gamereviews/models"

	"github.com/gin-gonic/gin"
)

// VerifyUser bootstraps the caller's account after Auth0 sign-up: the user
// row is created from the token's profile claims on first sight, otherwise
// the existing row is returned. Idempotent by construction.
func (h *Handler) VerifyUser(c *gin.Context) {
	claims := tokenClaims(c)

	user := &models.User{
		Auth0ID:  subject(c),
		Email:    h.claim(claims, "email"),
		Name:     h.claim(claims, "name"),
		Nickname: h.claim(claims, "nickname"),
		Picture:  h.claim(claims, "picture"),
		Bio:      "",
	}

	result, err := h.store.FindOrCreateUser(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
